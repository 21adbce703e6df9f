package cart

import "errors"

var (
	ErrIndexOutOfRange = errors.New("cart index out of range")
	ErrInvalidLine     = errors.New("invalid cart line")
)

// ChosenVariant is the (color, size) pair the buyer picked.
type ChosenVariant struct {
	Color string `json:"color"`
	Size  string `json:"size"`
}

// Line is one cart entry. Image and Price are resolved at add time so the
// cart renders without re-fetching the product. Lines are addressed by
// position within one session; indices shift after removals.
type Line struct {
	ProductID string        `json:"productId"`
	Name      string        `json:"name"`
	Image     string        `json:"image"`
	Price     float64       `json:"price"`
	Variant   ChosenVariant `json:"variant"`
	Quantity  int           `json:"quantity"`
}

// Repository persists one ordered line list per cart id.
type Repository interface {
	Get(cartID string) ([]Line, error)
	Save(cartID string, lines []Line) error
}
