package catalog

import "encoding/json"

// PathSeparator joins ancestor names when building a category's breadcrumb
// path.
const PathSeparator = " > "

// Category is one node of the flat category list. The upstream encodes the
// parent reference three different ways (raw id string, embedded object with
// an _id, or null/absent); UnmarshalJSON collapses them into ParentID once,
// at ingest, so nothing downstream re-implements the disambiguation.
type Category struct {
	ID       string  `json:"_id"`
	Name     string  `json:"name"`
	ParentID *string `json:"parent,omitempty"`
}

func (c *Category) UnmarshalJSON(b []byte) error {
	var raw struct {
		ID     string          `json:"_id"`
		Name   string          `json:"name"`
		Parent json.RawMessage `json:"parent"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	c.ID = raw.ID
	c.Name = raw.Name
	c.ParentID = parseParentRef(raw.Parent)
	return nil
}

// parseParentRef resolves the three wire encodings of a parent reference to
// an id or nil.
func parseParentRef(raw json.RawMessage) *string {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	var id string
	if err := json.Unmarshal(raw, &id); err == nil {
		if id == "" {
			return nil
		}
		return &id
	}
	var obj struct {
		ID string `json:"_id"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil && obj.ID != "" {
		return &obj.ID
	}
	return nil
}

// Node is a category attached to its children, with the breadcrumb path from
// its root.
type Node struct {
	Category
	Path     string  `json:"path"`
	Children []*Node `json:"children"`
}

// BuildTree assembles the forest from a flat category list. A category whose
// declared parent is missing from the list is kept as a root, not dropped.
// Paths are resolved lazily so input order does not matter.
func BuildTree(flat []Category) []*Node {
	nodes := make(map[string]*Node, len(flat))
	ordered := make([]*Node, 0, len(flat))
	for _, c := range flat {
		if _, ok := nodes[c.ID]; ok {
			continue
		}
		n := &Node{Category: c, Children: []*Node{}}
		nodes[c.ID] = n
		ordered = append(ordered, n)
	}

	var pathOf func(n *Node, seen map[string]bool) string
	pathOf = func(n *Node, seen map[string]bool) string {
		if n.Path != "" {
			return n.Path
		}
		seen[n.ID] = true
		if n.ParentID != nil {
			if parent, ok := nodes[*n.ParentID]; ok && !seen[parent.ID] {
				n.Path = pathOf(parent, seen) + PathSeparator + n.Name
				return n.Path
			}
		}
		n.Path = n.Name
		return n.Path
	}

	roots := make([]*Node, 0)
	for _, n := range ordered {
		pathOf(n, map[string]bool{})
		if n.ParentID != nil {
			if parent, ok := nodes[*n.ParentID]; ok && parent != n {
				parent.Children = append(parent.Children, n)
				continue
			}
		}
		roots = append(roots, n)
	}
	return roots
}

func indexByID(flat []Category) map[string]Category {
	byID := make(map[string]Category, len(flat))
	for _, c := range flat {
		byID[c.ID] = c
	}
	return byID
}

func topAncestor(id string, byID map[string]Category) string {
	cur, ok := byID[id]
	if !ok {
		return ""
	}
	seen := map[string]bool{cur.ID: true}
	for cur.ParentID != nil {
		parent, ok := byID[*cur.ParentID]
		if !ok || seen[parent.ID] {
			// dangling reference or cycle: current node counts as the root
			break
		}
		seen[parent.ID] = true
		cur = parent
	}
	return cur.ID
}

// TopLevelAncestorOf walks parent references upward from id until it reaches
// a node with no parent (or a dangling one) and returns that root's id. A
// category with no parent is its own top-level ancestor. Returns "" when id
// is not in the list.
func TopLevelAncestorOf(id string, flat []Category) string {
	return topAncestor(id, indexByID(flat))
}

// SubtreeIDs returns every category id whose top-level ancestor is rootID,
// including rootID itself when present.
func SubtreeIDs(rootID string, flat []Category) map[string]bool {
	out := make(map[string]bool)
	if rootID == "" {
		return out
	}
	byID := indexByID(flat)
	for _, c := range flat {
		if topAncestor(c.ID, byID) == rootID {
			out[c.ID] = true
		}
	}
	return out
}

// NameByID looks a category name up in the flat list; empty when absent.
func NameByID(id string, flat []Category) string {
	for _, c := range flat {
		if c.ID == id {
			return c.Name
		}
	}
	return ""
}
