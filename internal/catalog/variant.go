package catalog

import "strings"

// splitLabels splits a comma-separated label string, trims each part, drops
// empties and deduplicates keeping first-seen order.
func splitLabels(s string) []string {
	out := make([]string, 0)
	seen := map[string]bool{}
	for _, part := range strings.Split(s, ",") {
		label := strings.TrimSpace(part)
		if label == "" || seen[label] {
			continue
		}
		seen[label] = true
		out = append(out, label)
	}
	return out
}

// AvailableColors returns the selectable color labels in declaration order.
// The legacy Colors string wins when present; otherwise the distinct variant
// colors in first-seen order.
func AvailableColors(p Product) []string {
	if strings.TrimSpace(p.Colors) != "" {
		return splitLabels(p.Colors)
	}
	out := make([]string, 0)
	seen := map[string]bool{}
	for _, v := range p.Variants {
		if v.Color == "" || seen[v.Color] {
			continue
		}
		seen[v.Color] = true
		out = append(out, v.Color)
	}
	return out
}

// AvailableSizes returns the size labels selectable for color. Empty when no
// color is selected. Variants matching the color win over the legacy Sizes
// string. Callers must clear a previously selected size whenever the color
// changes; it may no longer be in the new result.
func AvailableSizes(p Product, color string) []string {
	if color == "" {
		return []string{}
	}
	hasColor := false
	out := make([]string, 0)
	seen := map[string]bool{}
	for _, v := range p.Variants {
		if v.Color != color {
			continue
		}
		hasColor = true
		for _, size := range splitLabels(v.Size) {
			if seen[size] {
				continue
			}
			seen[size] = true
			out = append(out, size)
		}
	}
	if hasColor {
		return out
	}
	if strings.TrimSpace(p.Sizes) != "" {
		return splitLabels(p.Sizes)
	}
	return []string{}
}

// ResolveVariant finds the first variant matching both labels exactly. The
// color must equal the variant's color; the size must equal one of the
// labels in the variant's (possibly comma-packed) size field after
// split/trim. No case folding, no best-effort fallback. Returns nil when
// nothing matches.
func ResolveVariant(p Product, color, size string) *Variant {
	if color == "" || size == "" {
		return nil
	}
	for i := range p.Variants {
		v := &p.Variants[i]
		if v.Color != color {
			continue
		}
		for _, label := range splitLabels(v.Size) {
			if label == size {
				return v
			}
		}
	}
	return nil
}

// Display is the view state resolved for a (color, size) selection. Stock is
// nil when no variant matched; an explicit zero means sold out.
type Display struct {
	Image       string  `json:"image"`
	Price       float64 `json:"price"`
	Material    string  `json:"material,omitempty"`
	Description string  `json:"description,omitempty"`
	Status      string  `json:"status,omitempty"`
	Stock       *int    `json:"stock"`
}

// ResolveDisplay applies the field-by-field fallback chain: variant values
// when a variant matches, then the product's flat values, then zero values.
// manualImage is a raw image reference chosen by a thumbnail click and takes
// precedence over everything.
func ResolveDisplay(p Product, color, size, manualImage string) Display {
	v := ResolveVariant(p, color, size)

	d := Display{
		Material:    p.Material,
		Description: p.Description,
		Status:      p.Status,
	}

	rawImage := manualImage
	if rawImage == "" && v != nil {
		rawImage = v.Image
	}
	if rawImage == "" {
		if gallery := p.Gallery(); len(gallery) > 0 {
			rawImage = gallery[0]
		}
	}
	d.Image = NormalizeImage(rawImage)

	switch {
	case v != nil:
		d.Price = v.Price
	case p.Price != nil:
		d.Price = *p.Price
	case len(p.Variants) > 0:
		d.Price = p.Variants[0].Price
	}

	if v != nil {
		if v.Material != "" {
			d.Material = v.Material
		}
		if v.Description != "" {
			d.Description = v.Description
		}
		if v.Status != "" {
			d.Status = v.Status
		}
		stock := v.Stock
		d.Stock = &stock
	}
	return d
}
