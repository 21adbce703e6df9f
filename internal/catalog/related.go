package catalog

// DefaultRelatedLimit caps the related-products strip on the detail page.
const DefaultRelatedLimit = 8

// FindRelated picks products sharing p's top-level category ancestor,
// excluding p itself, capped to limit, in source order. When p's category has
// no resolvable ancestor the result is empty rather than "all products".
func FindRelated(p Product, categories []Category, products []Product, limit int) []Product {
	if limit <= 0 {
		limit = DefaultRelatedLimit
	}
	root := TopLevelAncestorOf(p.Category, categories)
	if root == "" {
		return []Product{}
	}
	under := SubtreeIDs(root, categories)

	out := make([]Product, 0, limit)
	for _, candidate := range products {
		if candidate.ID == p.ID || !under[candidate.Category] {
			continue
		}
		out = append(out, candidate)
		if len(out) == limit {
			break
		}
	}
	return out
}
