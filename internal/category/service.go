package category

import (
	"context"

	"github.com/kydtrai11/dambody-storefront/internal/catalog"
)

// Source is the slice of the catalog the category views need.
type Source interface {
	Categories(ctx context.Context) ([]catalog.Category, error)
	Category(ctx context.Context, id string) (catalog.Category, error)
}

type Service struct {
	source Source
}

func NewService(source Source) *Service {
	return &Service{source: source}
}

func (s *Service) List(ctx context.Context) ([]catalog.Category, error) {
	return s.source.Categories(ctx)
}

// Tree returns the category forest with the breadcrumb path on each node.
func (s *Service) Tree(ctx context.Context) ([]*catalog.Node, error) {
	categories, err := s.source.Categories(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.BuildTree(categories), nil
}

func (s *Service) Get(ctx context.Context, id string) (catalog.Category, error) {
	return s.source.Category(ctx, id)
}
