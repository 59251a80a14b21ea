package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/TemirB/storefront/internal/cache"
	"github.com/TemirB/storefront/internal/commerce"
	"github.com/TemirB/storefront/internal/domain"
	"github.com/TemirB/storefront/internal/observability"
)

//go:generate mockgen -source=catalog.go -destination=catalog_mock_test.go -package=catalog

type Backend interface {
	ListRegions(ctx context.Context) ([]domain.Region, error)
	ListProducts(ctx context.Context, q commerce.ProductQuery) (commerce.ProductPage, error)
	ListCategories(ctx context.Context, q commerce.ListQuery) ([]domain.Category, int, error)
	ListCollections(ctx context.Context, q commerce.ListQuery) ([]domain.Collection, int, error)
}

const (
	pageSize = 50
	// maxPages bounds pagination against a backend that misreports count.
	maxPages = 200

	DefaultProductLimit = 12
	PriceFilterLimit    = 200

	listingFields        = "title,handle,thumbnail,variants.id,*variants.calculated_price"
	recommendationFields = "title,handle,thumbnail,*images,variants.id,*variants.calculated_price"
)

type Service struct {
	backend     Backend
	regions     *RegionResolver
	categories  *cache.Cache[[]domain.Category]
	collections *cache.Cache[[]domain.Collection]
	logger      *zap.Logger
}

func New(backend Backend, regions *RegionResolver, ttl time.Duration, metrics observability.Metrics, logger *zap.Logger) *Service {
	return &Service{
		backend:     backend,
		regions:     regions,
		categories:  cache.New[[]domain.Category]("categories", 1, ttl, metrics),
		collections: cache.New[[]domain.Collection]("collections", 1, ttl, metrics),
		logger:      logger,
	}
}

// Warm preloads the category and collection lists.
func (s *Service) Warm(ctx context.Context) {
	if _, err := s.AllCategories(ctx); err != nil {
		s.logger.Warn("warm categories failed", zap.Error(err))
	}
	if _, err := s.AllCollections(ctx); err != nil {
		s.logger.Warn("warm collections failed", zap.Error(err))
	}
}

func (s *Service) Regions(ctx context.Context) ([]domain.Region, error) {
	regions, err := s.backend.ListRegions(ctx)
	if err != nil {
		return nil, fmt.Errorf("list regions: %w", err)
	}
	if regions == nil {
		regions = []domain.Region{}
	}
	return regions, nil
}

func (s *Service) DefaultRegion(ctx context.Context) *domain.Region {
	return s.regions.Resolve(ctx)
}

// AllCategories pages through every category, pageSize at a time.
func (s *Service) AllCategories(ctx context.Context) ([]domain.Category, error) {
	return s.categories.GetOrLoad(ctx, "all", func(ctx context.Context) ([]domain.Category, error) {
		all := []domain.Category{}
		for page, offset := 0, 0; page < maxPages; page, offset = page+1, offset+pageSize {
			batch, count, err := s.backend.ListCategories(ctx, commerce.ListQuery{
				Limit: pageSize, Offset: offset, Fields: "+metadata",
			})
			if err != nil {
				return nil, fmt.Errorf("list categories: %w", err)
			}
			all = append(all, batch...)
			if len(batch) == 0 || len(all) >= count {
				break
			}
		}
		return all, nil
	})
}

func (s *Service) CategoryTree(ctx context.Context) ([]*domain.CategoryNode, error) {
	flat, err := s.AllCategories(ctx)
	if err != nil {
		return nil, err
	}
	if ids := CycleIDs(flat); len(ids) > 0 {
		s.logger.Warn("category parents form a cycle, showing them as top level",
			zap.String("op", "catalog.category_tree"), zap.Strings("category_ids", ids))
	}
	return BuildTree(flat), nil
}

func (s *Service) CategoryByHandle(ctx context.Context, handle string) (*domain.Category, error) {
	found, _, err := s.backend.ListCategories(ctx, commerce.ListQuery{Handle: handle, Limit: 1, Fields: "+metadata"})
	if err != nil && !commerce.IsNotFound(err) {
		return nil, fmt.Errorf("category by handle: %w", err)
	}
	if len(found) > 0 {
		return &found[0], nil
	}
	all, err := s.AllCategories(ctx)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].Handle == handle {
			return &all[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *Service) AllCollections(ctx context.Context) ([]domain.Collection, error) {
	return s.collections.GetOrLoad(ctx, "all", func(ctx context.Context) ([]domain.Collection, error) {
		all := []domain.Collection{}
		for page, offset := 0, 0; page < maxPages; page, offset = page+1, offset+pageSize {
			batch, count, err := s.backend.ListCollections(ctx, commerce.ListQuery{
				Limit: pageSize, Offset: offset, Fields: "+metadata",
			})
			if err != nil {
				return nil, fmt.Errorf("list collections: %w", err)
			}
			all = append(all, batch...)
			if len(batch) == 0 || len(all) >= count {
				break
			}
		}
		return all, nil
	})
}

func (s *Service) CollectionByHandle(ctx context.Context, handle string) (*domain.Collection, error) {
	found, _, err := s.backend.ListCollections(ctx, commerce.ListQuery{Handle: handle, Limit: 1, Fields: "+metadata"})
	if err != nil {
		if commerce.IsNotFound(err) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("collection by handle: %w", err)
	}
	if len(found) == 0 {
		return nil, domain.ErrNotFound
	}
	return &found[0], nil
}

func (s *Service) listProducts(ctx context.Context, q commerce.ProductQuery) (commerce.ProductPage, error) {
	if q.Limit <= 0 {
		q.Limit = DefaultProductLimit
	}
	if q.Fields == "" {
		q.Fields = commerce.DefaultProductFields
	}
	q.RegionID = s.regions.RegionID(ctx)
	page, err := s.backend.ListProducts(ctx, q)
	if err != nil {
		return page, fmt.Errorf("list products: %w", err)
	}
	if page.Products == nil {
		page.Products = []domain.Product{}
	}
	return page, nil
}

type ProductFilter struct {
	Q             string
	Limit         int
	Offset        int
	Fields        string
	CategoryIDs   []string
	CollectionIDs []string
	Price         PriceRange
}

type Listing struct {
	Products       []domain.Product `json:"products"`
	Count          int              `json:"count"`
	FilteredCount  int              `json:"filtered_count"`
	HasPriceFilter bool             `json:"has_price_filter"`
	Limit          int              `json:"limit"`
	Offset         int              `json:"offset"`
	NextOffset     int              `json:"next_offset"`
	HasMore        bool             `json:"has_more"`
}

// Products lists products and applies the price range locally. With a price
// range the page is widened to PriceFilterLimit so filtering has enough
// candidates.
func (s *Service) Products(ctx context.Context, f ProductFilter) (Listing, error) {
	limit := f.Limit
	if limit <= 0 {
		limit = 20
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	if f.Price.Active() && limit < PriceFilterLimit {
		limit = PriceFilterLimit
	}

	page, err := s.listProducts(ctx, commerce.ProductQuery{
		ListQuery:     commerce.ListQuery{Limit: limit, Offset: f.Offset, Fields: f.Fields, Q: f.Q},
		CategoryIDs:   f.CategoryIDs,
		CollectionIDs: f.CollectionIDs,
	})
	if err != nil {
		return Listing{}, err
	}

	filtered := f.Price.Filter(page.Products)
	return Listing{
		Products:       filtered,
		Count:          page.Count,
		FilteredCount:  len(filtered),
		HasPriceFilter: f.Price.Active(),
		Limit:          limit,
		Offset:         f.Offset,
		NextOffset:     f.Offset + limit,
		HasMore:        f.Offset+limit < page.Count,
	}, nil
}

// BasicProducts is the light listing used by infinite scroll and the sitemap.
func (s *Service) BasicProducts(ctx context.Context, limit, offset int) (commerce.ProductPage, error) {
	return s.listProducts(ctx, commerce.ProductQuery{
		ListQuery: commerce.ListQuery{Limit: limit, Offset: offset, Fields: commerce.BasicProductFields},
	})
}

type ProductDetail struct {
	Product         *domain.Product  `json:"product"`
	RecByCategory   []domain.Product `json:"rec_by_category"`
	RecByCollection []domain.Product `json:"rec_by_collection"`
}

func (s *Service) ProductByHandle(ctx context.Context, handle string) (*ProductDetail, error) {
	page, err := s.listProducts(ctx, commerce.ProductQuery{
		ListQuery: commerce.ListQuery{Handle: handle, Limit: 1},
	})
	if err != nil {
		if errors.Is(err, commerce.ErrNotConfigured) || commerce.IsNotFound(err) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if len(page.Products) == 0 {
		return nil, domain.ErrNotFound
	}
	p := page.Products[0]
	detail := &ProductDetail{Product: &p, RecByCategory: []domain.Product{}, RecByCollection: []domain.Product{}}

	// Recommendations are decoration; failures only cost the section.
	if len(p.Categories) > 0 {
		ids := make([]string, 0, len(p.Categories))
		for _, c := range p.Categories {
			ids = append(ids, c.ID)
		}
		rec, err := s.listProducts(ctx, commerce.ProductQuery{
			ListQuery:   commerce.ListQuery{Limit: 8, Fields: recommendationFields},
			CategoryIDs: ids,
		})
		if err != nil {
			s.logger.Warn("category recommendations failed", zap.String("handle", handle), zap.Error(err))
		} else {
			detail.RecByCategory = withoutHandle(rec.Products, handle)
		}
	}
	if p.Collection != nil && p.Collection.ID != "" {
		rec, err := s.listProducts(ctx, commerce.ProductQuery{
			ListQuery:     commerce.ListQuery{Limit: 8, Fields: recommendationFields},
			CollectionIDs: []string{p.Collection.ID},
		})
		if err != nil {
			s.logger.Warn("collection recommendations failed", zap.String("handle", handle), zap.Error(err))
		} else {
			detail.RecByCollection = withoutHandle(rec.Products, handle)
		}
	}
	return detail, nil
}

func withoutHandle(products []domain.Product, handle string) []domain.Product {
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if p.Handle != handle {
			out = append(out, p)
		}
	}
	return out
}

type CategoryPage struct {
	Category      *domain.Category       `json:"category"`
	Subcategories []*domain.CategoryNode `json:"subcategories"`
	AllIDs        []string               `json:"all_ids"`
	Products      []domain.Product       `json:"products"`
	Total         int                    `json:"total"`
	SubCounts     map[string]int         `json:"sub_counts"`
}

// CategoryPage lists products of the category and its descendants and counts
// products per direct subcategory, concurrently.
func (s *Service) CategoryPage(ctx context.Context, handle string) (*CategoryPage, error) {
	cat, err := s.CategoryByHandle(ctx, handle)
	if err != nil {
		return nil, err
	}
	all, err := s.AllCategories(ctx)
	if err != nil {
		return nil, err
	}
	subs := SubTree(all, cat.ID)

	allIDs := []string{cat.ID}
	for _, sc := range subs {
		allIDs = append(allIDs, CollectIDs(sc)...)
	}

	page, err := s.listProducts(ctx, commerce.ProductQuery{
		ListQuery:   commerce.ListQuery{Limit: 15, Fields: listingFields},
		CategoryIDs: allIDs,
	})
	if err != nil {
		return nil, err
	}

	counts := make([]int, len(subs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for i, sc := range subs {
		i, ids := i, CollectIDs(sc)
		g.Go(func() error {
			res, err := s.listProducts(gctx, commerce.ProductQuery{
				ListQuery:   commerce.ListQuery{Limit: 1, Fields: "id"},
				CategoryIDs: ids,
			})
			if err != nil {
				return err
			}
			counts[i] = res.Count
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.logger.Warn("subcategory counts incomplete", zap.String("handle", handle), zap.Error(err))
	}

	subCounts := make(map[string]int, len(subs))
	for i, sc := range subs {
		subCounts[sc.ID] = counts[i]
	}

	return &CategoryPage{
		Category:      cat,
		Subcategories: subs,
		AllIDs:        allIDs,
		Products:      page.Products,
		Total:         page.Count,
		SubCounts:     subCounts,
	}, nil
}

type CollectionPage struct {
	Collection *domain.Collection `json:"collection"`
	Emoji      string             `json:"emoji,omitempty"`
	Products   []domain.Product   `json:"products"`
	Total      int                `json:"total"`
}

func (s *Service) CollectionPage(ctx context.Context, handle string) (*CollectionPage, error) {
	col, err := s.CollectionByHandle(ctx, handle)
	if err != nil {
		return nil, err
	}
	page, err := s.listProducts(ctx, commerce.ProductQuery{
		ListQuery:     commerce.ListQuery{Limit: 24, Fields: listingFields},
		CollectionIDs: []string{col.ID},
	})
	if err != nil {
		return nil, err
	}
	return &CollectionPage{Collection: col, Emoji: col.Emoji(), Products: page.Products, Total: page.Count}, nil
}
