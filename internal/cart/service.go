package cart

// Service owns the cart mutation rules. Every mutation is written through
// the repository before it returns, so the next request observes the new
// state; the repository content is the single source of truth for both the
// badge count and the cart page.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Lines(cartID string) ([]Line, error) {
	return s.repo.Get(cartID)
}

// Count backs the header cart badge: the number of lines, not the summed
// quantity.
func (s *Service) Count(cartID string) (int, error) {
	lines, err := s.repo.Get(cartID)
	if err != nil {
		return 0, err
	}
	return len(lines), nil
}

// Add appends the line. Repeated adds of the same (product, color, size)
// deliberately create separate lines; merging is an unresolved product
// decision.
func (s *Service) Add(cartID string, line Line) ([]Line, error) {
	if line.ProductID == "" || line.Quantity < 1 {
		return nil, ErrInvalidLine
	}
	lines, err := s.repo.Get(cartID)
	if err != nil {
		return nil, err
	}
	lines = append(lines, line)
	if err := s.repo.Save(cartID, lines); err != nil {
		return nil, err
	}
	return lines, nil
}

// AdjustQuantity adds delta to the line's quantity. A result of zero or less
// leaves the line untouched: quantity floors at 1 and a line is never
// removed implicitly.
func (s *Service) AdjustQuantity(cartID string, index, delta int) ([]Line, error) {
	lines, err := s.repo.Get(cartID)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(lines) {
		return nil, ErrIndexOutOfRange
	}
	next := lines[index].Quantity + delta
	if next <= 0 {
		return lines, nil
	}
	lines[index].Quantity = next
	if err := s.repo.Save(cartID, lines); err != nil {
		return nil, err
	}
	return lines, nil
}

// Remove deletes exactly one line; later indices shift down by one.
func (s *Service) Remove(cartID string, index int) ([]Line, error) {
	lines, err := s.repo.Get(cartID)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(lines) {
		return nil, ErrIndexOutOfRange
	}
	lines = append(lines[:index], lines[index+1:]...)
	if err := s.repo.Save(cartID, lines); err != nil {
		return nil, err
	}
	return lines, nil
}

// RemoveMany drops every listed position in one atomic update, so index
// shifting never corrupts a bulk removal. Unknown positions are ignored.
func (s *Service) RemoveMany(cartID string, indices []int) ([]Line, error) {
	lines, err := s.repo.Get(cartID)
	if err != nil {
		return nil, err
	}
	drop := make(map[int]bool, len(indices))
	for _, i := range indices {
		drop[i] = true
	}
	remain := make([]Line, 0, len(lines))
	for i, line := range lines {
		if !drop[i] {
			remain = append(remain, line)
		}
	}
	if err := s.repo.Save(cartID, remain); err != nil {
		return nil, err
	}
	return remain, nil
}
