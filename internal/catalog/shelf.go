package catalog

import (
	"fmt"
	"sort"
	"time"
)

// HotProducts returns up to n products flagged isHot; when none are flagged
// it falls back to the best sellers by sold count.
func HotProducts(products []Product, n int) []Product {
	out := make([]Product, 0, n)
	for _, p := range products {
		if p.IsHot {
			out = append(out, p)
			if len(out) == n {
				return out
			}
		}
	}
	if len(out) > 0 {
		return out
	}
	sorted := append([]Product(nil), products...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Sold > sorted[j].Sold })
	return capLen(sorted, n)
}

// NewProducts returns up to n products flagged isNew; when none are flagged
// it falls back to the most recently created.
func NewProducts(products []Product, n int) []Product {
	out := make([]Product, 0, n)
	for _, p := range products {
		if p.IsNew {
			out = append(out, p)
			if len(out) == n {
				return out
			}
		}
	}
	if len(out) > 0 {
		return out
	}
	sorted := append([]Product(nil), products...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return createdAtUnix(sorted[i]) > createdAtUnix(sorted[j])
	})
	return capLen(sorted, n)
}

func createdAtUnix(p Product) int64 {
	if p.CreatedAt == "" {
		return 0
	}
	t, err := time.Parse(time.RFC3339, p.CreatedAt)
	if err != nil {
		return 0
	}
	return t.Unix()
}

func capLen(products []Product, n int) []Product {
	if n >= 0 && len(products) > n {
		return products[:n]
	}
	return products
}

// PriceLabel renders the card price: the flat price when set, a min–max
// range over variant prices otherwise, or empty when nothing is priced.
func PriceLabel(p Product) string {
	if p.Price != nil {
		return formatVND(*p.Price)
	}
	if len(p.Variants) == 0 {
		return ""
	}
	min, max := p.Variants[0].Price, p.Variants[0].Price
	for _, v := range p.Variants[1:] {
		if v.Price < min {
			min = v.Price
		}
		if v.Price > max {
			max = v.Price
		}
	}
	if min == max {
		return formatVND(min)
	}
	return formatVND(min) + " - " + formatVND(max)
}

// formatVND renders an amount with dot thousand separators and the dong
// sign, e.g. 150000 -> "150.000₫".
func formatVND(amount float64) string {
	n := int64(amount)
	s := fmt.Sprintf("%d", n)
	neg := false
	if n < 0 {
		neg = true
		s = s[1:]
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	out := ""
	for i, part := range parts {
		if i > 0 {
			out += "."
		}
		out += part
	}
	if neg {
		out = "-" + out
	}
	return out + "₫"
}
