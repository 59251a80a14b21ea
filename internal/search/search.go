package search

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/meilisearch/meilisearch-go"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/TemirB/storefront/internal/config"
)

const (
	ProductsIndex   = "products"
	CategoriesIndex = "categories"

	DefaultLimit   = 6
	MaxLimit       = 20
	MaxQueryLength = 200
)

var highlights = map[string][]string{
	ProductsIndex:   {"title", "description", "thumbnail"},
	CategoriesIndex: {"name", "description", "metadata"},
}

// Hit is one raw index document.
type Hit map[string]any

// Index is the slice of the Meilisearch index API we use.
type Index interface {
	Search(query string, req *meilisearch.SearchRequest) (*meilisearch.SearchResponse, error)
}

type ProductResult struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Handle    string `json:"handle"`
	Thumbnail string `json:"thumbnail,omitempty"`
}

type CategoryResult struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Handle    string `json:"handle"`
	Thumbnail string `json:"thumbnail,omitempty"`
}

type Results struct {
	Products   []ProductResult  `json:"products"`
	Categories []CategoryResult `json:"categories"`
}

// Service queries the two fixed indices. A Service built without a valid
// host answers every query with empty results.
type Service struct {
	indexes map[string]Index
	logger  *zap.Logger
}

// New returns an unconfigured Service when cfg.URL is not an http(s) URL.
func New(cfg config.Search, logger *zap.Logger) *Service {
	if !config.ValidBaseURL(cfg.URL) {
		logger.Warn("search unconfigured, queries return no hits")
		return &Service{logger: logger}
	}
	client := meilisearch.NewClient(meilisearch.ClientConfig{
		Host:    cfg.URL,
		APIKey:  cfg.APIKey,
		Timeout: cfg.Timeout,
	})
	return NewWithIndexes(map[string]Index{
		ProductsIndex:   client.Index(ProductsIndex),
		CategoriesIndex: client.Index(CategoriesIndex),
	}, logger)
}

func NewWithIndexes(indexes map[string]Index, logger *zap.Logger) *Service {
	return &Service{indexes: indexes, logger: logger}
}

func (s *Service) Configured() bool { return len(s.indexes) > 0 }

func (s *Service) Products(ctx context.Context, q string, limit int) ([]Hit, error) {
	return s.search(ctx, ProductsIndex, q, limit)
}

func (s *Service) Categories(ctx context.Context, q string, limit int) ([]Hit, error) {
	return s.search(ctx, CategoriesIndex, q, limit)
}

func (s *Service) search(ctx context.Context, uid, q string, limit int) ([]Hit, error) {
	idx, ok := s.indexes[uid]
	if !ok {
		return nil, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	resp, err := idx.Search(q, &meilisearch.SearchRequest{
		Limit:                 int64(limit),
		AttributesToRetrieve:  []string{"*"},
		AttributesToHighlight: highlights[uid],
	})
	if err != nil {
		return nil, fmt.Errorf("search %s: %w", uid, err)
	}
	return toHits(resp.Hits)
}

// toHits normalises whatever hit representation the client returns.
func toHits(raw any) ([]Hit, error) {
	b, err := json.Marshal(raw)
	if err != nil {
		return nil, err
	}
	var hits []Hit
	if err := json.Unmarshal(b, &hits); err != nil {
		return nil, err
	}
	return hits, nil
}

// Query sanitises q, clamps limit and searches both indices in parallel.
// A failing index contributes no results instead of failing the query.
func (s *Service) Query(ctx context.Context, q string, limit int) Results {
	q = Sanitize(q)
	limit = ClampLimit(limit)
	out := Results{Products: []ProductResult{}, Categories: []CategoryResult{}}
	if q == "" {
		return out
	}

	var (
		mu         sync.Mutex
		products   []Hit
		categories []Hit
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		hits, err := s.Products(gctx, q, limit)
		if err != nil {
			s.logger.Warn("product search failed", zap.String("op", "search.products"), zap.Error(err))
			return nil
		}
		mu.Lock()
		products = hits
		mu.Unlock()
		return nil
	})
	g.Go(func() error {
		hits, err := s.Categories(gctx, q, limit)
		if err != nil {
			s.logger.Warn("category search failed", zap.String("op", "search.categories"), zap.Error(err))
			return nil
		}
		mu.Lock()
		categories = hits
		mu.Unlock()
		return nil
	})
	_ = g.Wait()

	for _, h := range products {
		out.Products = append(out.Products, shapeProduct(h))
	}
	for _, h := range categories {
		out.Categories = append(out.Categories, shapeCategory(h))
	}
	return out
}

func shapeProduct(h Hit) ProductResult {
	id := h.first("id", "_id", "objectID")
	thumb := h.first("thumbnail", "image")
	if thumb == "" {
		if imgs, ok := h["images"].([]any); ok && len(imgs) > 0 {
			if m, ok := imgs[0].(map[string]any); ok {
				thumb, _ = m["url"].(string)
			}
		}
	}
	return ProductResult{
		ID:        id,
		Title:     orDefault(h.first("title", "name"), "Untitled"),
		Handle:    orDefault(h.first("handle", "slug"), id),
		Thumbnail: thumb,
	}
}

func shapeCategory(h Hit) CategoryResult {
	id := h.first("id", "objectID")
	thumb := ""
	if md, ok := h["metadata"].(map[string]any); ok {
		thumb, _ = md["thumbnail"].(string)
	}
	if thumb == "" {
		thumb = h.first("thumbnail")
	}
	return CategoryResult{
		ID:        id,
		Name:      orDefault(h.first("name", "title"), "Category"),
		Handle:    orDefault(h.first("handle", "slug"), id),
		Thumbnail: thumb,
	}
}

func (h Hit) first(keys ...string) string {
	for _, k := range keys {
		if s, ok := h[k].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// Sanitize strips markup-ish characters and caps the query length.
func Sanitize(q string) string {
	q = strings.TrimSpace(q)
	q = strings.Map(func(r rune) rune {
		switch r {
		case '<', '>', '{', '}', '[', ']', '\\':
			return -1
		}
		return r
	}, q)
	if r := []rune(q); len(r) > MaxQueryLength {
		q = string(r[:MaxQueryLength])
	}
	return strings.TrimSpace(q)
}

func ClampLimit(n int) int {
	if n <= 0 {
		return DefaultLimit
	}
	if n > MaxLimit {
		return MaxLimit
	}
	return n
}
