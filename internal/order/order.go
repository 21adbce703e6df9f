package order

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrMissingName    = errors.New("customer name is required")
	ErrInvalidPhone   = errors.New("invalid phone number")
	ErrMissingAddress = errors.New("delivery address is required")
	ErrInvalidQty     = errors.New("quantity must be at least 1")
	ErrNoSelection    = errors.New("no cart lines selected")
)

// vnMobile matches Vietnamese mobile numbers after whitespace is stripped:
// leading 0 or optional +84, then 8-10 digits.
var vnMobile = regexp.MustCompile(`^(0|\+?84)\d{8,10}$`)

// ValidatePhone reports whether phone is a plausible Vietnamese mobile
// number. Whitespace anywhere in the input is ignored.
func ValidatePhone(phone string) bool {
	cleaned := strings.Join(strings.Fields(phone), "")
	return vnMobile.MatchString(cleaned)
}

// Customer is the delivery contact attached to every order.
type Customer struct {
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Note     string `json:"note"`
}

// Validate runs the local, synchronous form checks that must pass before any
// network call is made.
func (c Customer) Validate() error {
	if strings.TrimSpace(c.FullName) == "" {
		return ErrMissingName
	}
	if !ValidatePhone(c.Phone) {
		return ErrInvalidPhone
	}
	if strings.TrimSpace(c.Address) == "" {
		return ErrMissingAddress
	}
	return nil
}

// Trimmed returns the customer with surrounding whitespace removed from
// every field, the form the upstream expects.
func (c Customer) Trimmed() Customer {
	return Customer{
		FullName: strings.TrimSpace(c.FullName),
		Phone:    strings.TrimSpace(c.Phone),
		Address:  strings.TrimSpace(c.Address),
		Note:     strings.TrimSpace(c.Note),
	}
}

// ChosenVariant mirrors the (color, size) pair on the order wire format.
type ChosenVariant struct {
	Color string `json:"color"`
	Size  string `json:"size"`
}

// Request is one order document as the upstream /api/orders endpoint expects
// it. Source distinguishes a direct buy from a cart checkout.
type Request struct {
	ProductID    string        `json:"productId"`
	Name         string        `json:"name"`
	Image        string        `json:"image"`
	CategoryName string        `json:"categoryName"`
	Price        float64       `json:"price"`
	Variant      ChosenVariant `json:"variant"`
	Quantity     int           `json:"quantity"`
	Customer     Customer      `json:"customer"`
	Source       string        `json:"source"`
}

const (
	SourceProductDetail = "product-detail"
	SourceCart          = "cart"
)
