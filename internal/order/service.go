package order

import (
	"context"
	"sync"

	"github.com/kydtrai11/dambody-storefront/internal/cart"
)

// Submitter delivers one order document upstream. Implemented by the
// upstream client.
type Submitter interface {
	CreateOrder(ctx context.Context, payload interface{}) error
}

// CartAccess is the slice of the cart service checkout needs.
type CartAccess interface {
	Lines(cartID string) ([]cart.Line, error)
	RemoveMany(cartID string, indices []int) ([]cart.Line, error)
}

type Service struct {
	submitter Submitter
	cart      CartAccess
}

func NewService(submitter Submitter, cartAccess CartAccess) *Service {
	return &Service{submitter: submitter, cart: cartAccess}
}

// Direct places a single order from the product detail page.
func (s *Service) Direct(ctx context.Context, req Request) error {
	if err := req.Customer.Validate(); err != nil {
		return err
	}
	if req.Quantity < 1 {
		return ErrInvalidQty
	}
	req.Customer = req.Customer.Trimmed()
	if req.Source == "" {
		req.Source = SourceProductDetail
	}
	return s.submitter.CreateOrder(ctx, req)
}

// Checkout submits one order per selected cart line, all requests in
// flight concurrently. The batch is all-or-nothing from the cart's point of
// view: lines are removed only after every request has resolved
// successfully; on any failure the cart is left untouched so the user can
// retry.
func (s *Service) Checkout(ctx context.Context, cartID string, indices []int, customer Customer) ([]cart.Line, error) {
	if err := customer.Validate(); err != nil {
		return nil, err
	}
	lines, err := s.cart.Lines(cartID)
	if err != nil {
		return nil, err
	}

	selected := dedupe(indices)
	reqs := make([]Request, 0, len(selected))
	for _, i := range selected {
		if i < 0 || i >= len(lines) {
			return nil, cart.ErrIndexOutOfRange
		}
		l := lines[i]
		qty := l.Quantity
		if qty < 1 {
			qty = 1
		}
		reqs = append(reqs, Request{
			ProductID: l.ProductID,
			Name:      l.Name,
			Image:     l.Image,
			Price:     l.Price,
			Variant:   ChosenVariant{Color: l.Variant.Color, Size: l.Variant.Size},
			Quantity:  qty,
			Customer:  customer.Trimmed(),
			Source:    SourceCart,
		})
	}
	if len(reqs) == 0 {
		return nil, ErrNoSelection
	}

	errs := make([]error, len(reqs))
	var wg sync.WaitGroup
	for i := range reqs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = s.submitter.CreateOrder(ctx, reqs[i])
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return s.cart.RemoveMany(cartID, selected)
}

func dedupe(indices []int) []int {
	seen := make(map[int]bool, len(indices))
	out := make([]int, 0, len(indices))
	for _, i := range indices {
		if seen[i] {
			continue
		}
		seen[i] = true
		out = append(out, i)
	}
	return out
}
