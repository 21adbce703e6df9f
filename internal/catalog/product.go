package catalog

// Variant is one sellable (color, size) combination of a product. Legacy
// records may pack several sizes into one Size field ("M,L,XL"); callers must
// split it before comparing labels.
type Variant struct {
	Color       string  `json:"color"`
	Size        string  `json:"size"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	Material    string  `json:"material,omitempty"`
	Description string  `json:"description,omitempty"`
	Status      string  `json:"status,omitempty"`
	Image       string  `json:"image,omitempty"`
}

// Product maps the upstream product document. When Variants is non-empty it
// is the authoritative source for per-(color,size) price/stock/image; the
// Colors and Sizes strings then only enumerate labels. Without variants the
// comma-separated strings are the only selectable labels and the flat fields
// apply to every combination.
type Product struct {
	ID          string    `json:"_id"`
	Name        string    `json:"name"`
	Price       *float64  `json:"price,omitempty"`
	Image       string    `json:"image,omitempty"`
	Images      []string  `json:"images,omitempty"`
	Description string    `json:"description,omitempty"`
	Material    string    `json:"material,omitempty"`
	Colors      string    `json:"colors,omitempty"`
	Sizes       string    `json:"sizes,omitempty"`
	Category    string    `json:"category,omitempty"`
	Status      string    `json:"status,omitempty"`
	Variants    []Variant `json:"variants,omitempty"`
	IsHot       bool      `json:"isHot,omitempty"`
	IsNew       bool      `json:"isNew,omitempty"`
	Sold        int       `json:"sold,omitempty"`
	CreatedAt   string    `json:"createdAt,omitempty"`
}

// Gallery returns the product's image references in display order: the
// images list when present, else the legacy single image field.
func (p Product) Gallery() []string {
	if len(p.Images) > 0 {
		return p.Images
	}
	if p.Image != "" {
		return []string{p.Image}
	}
	return nil
}
