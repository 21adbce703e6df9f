package product

import (
	"context"
	"log"

	"github.com/kydtrai11/dambody-storefront/internal/catalog"
)

// Catalog is the read surface the storefront product views are built from.
type Catalog interface {
	Products(ctx context.Context, search, category string) ([]catalog.Product, error)
	Product(ctx context.Context, id string) (catalog.Product, error)
	Categories(ctx context.Context) ([]catalog.Category, error)
	Category(ctx context.Context, id string) (catalog.Category, error)
}

// Updater pushes admin edits upstream.
type Updater interface {
	UpdateProduct(ctx context.Context, id string, payload interface{}) (catalog.Product, error)
}

// Card is the product-list tile.
type Card struct {
	ID           string `json:"_id"`
	Name         string `json:"name"`
	Image        string `json:"image"`
	PriceLabel   string `json:"priceLabel"`
	CategoryName string `json:"categoryName,omitempty"`
	Sold         int    `json:"sold,omitempty"`
	IsHot        bool   `json:"isHot,omitempty"`
	IsNew        bool   `json:"isNew,omitempty"`
}

// Detail is the product page payload. CategoryName and Related degrade to
// empty when their lookups fail; the page itself never does.
type Detail struct {
	Product      catalog.Product `json:"product"`
	Gallery      []string        `json:"gallery"`
	Colors       []string        `json:"colors"`
	CategoryName string          `json:"categoryName"`
	Related      []Card          `json:"related"`
}

// DisplayState is the resolved view for a (color, size) selection.
type DisplayState struct {
	catalog.Display
	Sizes          []string `json:"sizes"`
	VariantMatched bool     `json:"variantMatched"`
}

// Home carries the hot / new shelves for the landing page.
type Home struct {
	Hot []Card `json:"hot"`
	New []Card `json:"new"`
}

const shelfSize = 12

type Service struct {
	catalog Catalog
	updater Updater
}

func NewService(c Catalog, u Updater) *Service {
	return &Service{catalog: c, updater: u}
}

func card(p catalog.Product, categories []catalog.Category) Card {
	image := ""
	if gallery := p.Gallery(); len(gallery) > 0 {
		image = gallery[0]
	}
	return Card{
		ID:           p.ID,
		Name:         p.Name,
		Image:        catalog.NormalizeImage(image),
		PriceLabel:   catalog.PriceLabel(p),
		CategoryName: catalog.NameByID(p.Category, categories),
		Sold:         p.Sold,
		IsHot:        p.IsHot,
		IsNew:        p.IsNew,
	}
}

func cards(products []catalog.Product, categories []catalog.Category) []Card {
	out := make([]Card, 0, len(products))
	for _, p := range products {
		out = append(out, card(p, categories))
	}
	return out
}

// List returns product cards, optionally filtered by search term or
// category. A category lookup failure only blanks the names.
func (s *Service) List(ctx context.Context, search, category string) ([]Card, error) {
	products, err := s.catalog.Products(ctx, search, category)
	if err != nil {
		return nil, err
	}
	categories, err := s.catalog.Categories(ctx)
	if err != nil {
		log.Printf("product list: categories unavailable: %v", err)
		categories = nil
	}
	return cards(products, categories), nil
}

// Detail loads one product and enriches it. The category-name lookup runs
// only after the product fetch resolved; the related strip needs both the
// category and product lists. Either enrichment failing degrades to empty,
// never to an error page.
func (s *Service) Detail(ctx context.Context, id string) (Detail, error) {
	p, err := s.catalog.Product(ctx, id)
	if err != nil {
		return Detail{}, err
	}

	d := Detail{
		Product: p,
		Colors:  catalog.AvailableColors(p),
		Related: []Card{},
	}
	for _, raw := range p.Gallery() {
		d.Gallery = append(d.Gallery, catalog.NormalizeImage(raw))
	}
	if len(d.Gallery) == 0 {
		d.Gallery = []string{catalog.PlaceholderImage}
	}

	if p.Category != "" {
		if cat, err := s.catalog.Category(ctx, p.Category); err == nil {
			d.CategoryName = cat.Name
		} else {
			log.Printf("product %s: category lookup failed: %v", id, err)
		}
	}

	categories, catErr := s.catalog.Categories(ctx)
	products, prodErr := s.catalog.Products(ctx, "", "")
	if catErr != nil || prodErr != nil {
		log.Printf("product %s: related lookup failed: %v %v", id, catErr, prodErr)
		return d, nil
	}
	related := catalog.FindRelated(p, categories, products, catalog.DefaultRelatedLimit)
	d.Related = cards(related, categories)
	return d, nil
}

// Display resolves the view state for a selection; every page shares this
// one resolver.
func (s *Service) Display(ctx context.Context, id, color, size, manualImage string) (DisplayState, error) {
	p, err := s.catalog.Product(ctx, id)
	if err != nil {
		return DisplayState{}, err
	}
	return DisplayState{
		Display:        catalog.ResolveDisplay(p, color, size, manualImage),
		Sizes:          catalog.AvailableSizes(p, color),
		VariantMatched: catalog.ResolveVariant(p, color, size) != nil,
	}, nil
}

// Home builds the hot and new shelves.
func (s *Service) Home(ctx context.Context) (Home, error) {
	products, err := s.catalog.Products(ctx, "", "")
	if err != nil {
		return Home{}, err
	}
	categories, err := s.catalog.Categories(ctx)
	if err != nil {
		log.Printf("home: categories unavailable: %v", err)
		categories = nil
	}
	return Home{
		Hot: cards(catalog.HotProducts(products, shelfSize), categories),
		New: cards(catalog.NewProducts(products, shelfSize), categories),
	}, nil
}

// Update forwards an admin edit upstream.
func (s *Service) Update(ctx context.Context, id string, payload map[string]interface{}) (catalog.Product, error) {
	return s.updater.UpdateProduct(ctx, id, payload)
}
