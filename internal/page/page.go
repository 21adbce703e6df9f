package page

// Contact is the shop's contact block, shared by the contact and
// address pages.
type Contact struct {
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
	Hours   string `json:"hours,omitempty"`
	Zalo    string `json:"zalo,omitempty"`
	MapURL  string `json:"mapUrl,omitempty"`
}

// Page is a static storefront page.
type Page struct {
	Slug    string   `json:"slug"`
	Title   string   `json:"title"`
	Body    string   `json:"body"`
	Contact *Contact `json:"contact,omitempty"`
}

var shopContact = Contact{
	Phone:   "0968745748",
	Email:   "dambody.vn@gmail.com",
	Address: "A5, Vĩnh Lộc, Bình Chánh, TP.HCM",
	Hours:   "08:00 – 23:00 (Thứ 2 – Chủ nhật)",
	Zalo:    "https://zalo.me/0968745748",
	MapURL:  "https://www.google.com/maps?q=Đầm+Váy+Body,+Bình+Chánh,+TP.HCM",
}

var pages = map[string]Page{
	"about": {
		Slug:  "about",
		Title: "Giới thiệu",
		Body: "Mua sắm thú vị mỗi ngày.\n\n" +
			"Chúng tôi xây dựng trải nghiệm mua sắm hiện đại, tốc độ, minh bạch " +
			"với giá tốt và dịch vụ tận tâm.\n\n" +
			"- Hàng chính hãng\n- Đổi trả dễ\n- Giao nhanh\n- Hỗ trợ 24/7",
	},
	"contact": {
		Slug:    "contact",
		Title:   "Liên hệ",
		Body:    "Liên hệ trực tiếp qua hotline, email hoặc Zalo.",
		Contact: &shopContact,
	},
	"address": {
		Slug:  "address",
		Title: "Địa chỉ cửa hàng",
		Body: "Mời bạn ghé thăm cửa hàng của chúng tôi hoặc đặt hàng và nhận " +
			"tại cửa hàng.",
		Contact: &shopContact,
	},
	"thankyou": {
		Slug:  "thankyou",
		Title: "Cảm ơn bạn!",
		Body: "Đơn hàng của bạn đã được ghi nhận. Chúng tôi sẽ liên hệ xác nhận " +
			"và giao hàng trong thời gian sớm nhất.",
	},
}

// Get looks up a static page by slug.
func Get(slug string) (Page, bool) {
	p, ok := pages[slug]
	return p, ok
}
