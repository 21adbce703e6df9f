package order

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/kydtrai11/dambody-storefront/internal/cart"
)

// fakeSubmitter fails the requests whose productId appears in failFor.
type fakeSubmitter struct {
	mu      sync.Mutex
	got     []Request
	failFor map[string]bool
}

func (f *fakeSubmitter) CreateOrder(ctx context.Context, payload interface{}) error {
	req := payload.(Request)
	f.mu.Lock()
	f.got = append(f.got, req)
	f.mu.Unlock()
	if f.failFor[req.ProductID] {
		return errors.New("upstream rejected order")
	}
	return nil
}

func seededCart(t *testing.T, pids ...string) (*cart.Service, string) {
	t.Helper()
	svc := cart.NewService(cart.NewInMemoryRepository())
	for _, pid := range pids {
		_, err := svc.Add("c1", cart.Line{
			ProductID: pid, Name: pid, Price: 100000, Quantity: 1,
			Variant: cart.ChosenVariant{Color: "Đen", Size: "M"},
		})
		if err != nil {
			t.Fatalf("seed cart: %v", err)
		}
	}
	return svc, "c1"
}

var customer = Customer{FullName: "Nguyễn Văn A", Phone: "0901234567", Address: "1 Lê Lợi, Q1"}

func TestCheckout_AllSucceedRemovesSelected(t *testing.T) {
	cartSvc, cartID := seededCart(t, "p0", "p1", "p2")
	sub := &fakeSubmitter{failFor: map[string]bool{}}
	svc := NewService(sub, cartSvc)

	remain, err := svc.Checkout(context.Background(), cartID, []int{0, 2}, customer)
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}
	if len(remain) != 1 || remain[0].ProductID != "p1" {
		t.Fatalf("unexpected remainder: %+v", remain)
	}
	if len(sub.got) != 2 {
		t.Fatalf("expected 2 upstream orders, got %d", len(sub.got))
	}
	for _, r := range sub.got {
		if r.Source != SourceCart {
			t.Fatalf("checkout orders must carry source %q, got %q", SourceCart, r.Source)
		}
	}
}

func TestCheckout_PartialFailureLeavesCartUntouched(t *testing.T) {
	cartSvc, cartID := seededCart(t, "p0", "p1", "p2")
	sub := &fakeSubmitter{failFor: map[string]bool{"p2": true}}
	svc := NewService(sub, cartSvc)

	// line 0 succeeds, line 2 fails: the whole batch is a failure
	_, err := svc.Checkout(context.Background(), cartID, []int{0, 2}, customer)
	if err == nil {
		t.Fatalf("expected checkout failure")
	}

	lines, _ := cartSvc.Lines(cartID)
	if len(lines) != 3 {
		t.Fatalf("cart must retain all 3 lines after partial failure, got %d", len(lines))
	}
}

func TestCheckout_ValidatesBeforeAnySubmission(t *testing.T) {
	cartSvc, cartID := seededCart(t, "p0")
	sub := &fakeSubmitter{failFor: map[string]bool{}}
	svc := NewService(sub, cartSvc)

	_, err := svc.Checkout(context.Background(), cartID, []int{0}, Customer{FullName: "A", Phone: "xx", Address: "x"})
	if err != ErrInvalidPhone {
		t.Fatalf("expected ErrInvalidPhone, got %v", err)
	}
	if len(sub.got) != 0 {
		t.Fatalf("validation failure must block all network calls, saw %d", len(sub.got))
	}

	if _, err := svc.Checkout(context.Background(), cartID, nil, customer); err != ErrNoSelection {
		t.Fatalf("expected ErrNoSelection, got %v", err)
	}
	if _, err := svc.Checkout(context.Background(), cartID, []int{9}, customer); err != cart.ErrIndexOutOfRange {
		t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
	}
}

func TestCheckout_DuplicateIndicesCollapse(t *testing.T) {
	cartSvc, cartID := seededCart(t, "p0", "p1")
	sub := &fakeSubmitter{failFor: map[string]bool{}}
	svc := NewService(sub, cartSvc)

	remain, err := svc.Checkout(context.Background(), cartID, []int{0, 0, 0}, customer)
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}
	if len(sub.got) != 1 {
		t.Fatalf("duplicate indices must submit once, got %d", len(sub.got))
	}
	if len(remain) != 1 || remain[0].ProductID != "p1" {
		t.Fatalf("unexpected remainder: %+v", remain)
	}
}

func TestDirect(t *testing.T) {
	sub := &fakeSubmitter{failFor: map[string]bool{}}
	svc := NewService(sub, cart.NewService(cart.NewInMemoryRepository()))

	req := Request{ProductID: "p1", Name: "Đầm body", Price: 150000, Quantity: 2,
		Variant: ChosenVariant{Color: "Đen", Size: "M"}, Customer: customer}
	if err := svc.Direct(context.Background(), req); err != nil {
		t.Fatalf("direct: %v", err)
	}
	if sub.got[0].Source != SourceProductDetail {
		t.Fatalf("direct orders default to source %q, got %q", SourceProductDetail, sub.got[0].Source)
	}

	req.Quantity = 0
	if err := svc.Direct(context.Background(), req); err != ErrInvalidQty {
		t.Fatalf("expected ErrInvalidQty, got %v", err)
	}
}
