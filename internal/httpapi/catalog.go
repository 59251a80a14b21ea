package httpapi

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/TemirB/storefront/internal/catalog"
	"github.com/TemirB/storefront/internal/domain"
	"github.com/TemirB/storefront/internal/ratelimit"
	"github.com/TemirB/storefront/internal/recaptcha"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

func queryInt(q url.Values, key string, def int) int {
	v := strings.TrimSpace(q.Get(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func pageParams(q url.Values) (limit, offset int) {
	limit = queryInt(q, "limit", defaultPageSize)
	if limit < 1 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	offset = queryInt(q, "offset", 0)
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

func queryDecimal(q url.Values, key string) (*decimal.Decimal, error) {
	v := strings.TrimSpace(q.Get(key))
	if v == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return nil, fmt.Errorf("%s must be a number", key)
	}
	return &d, nil
}

// multi collects repeated keys, also accepting the key[] form.
func multi(q url.Values, key string) []string {
	var out []string
	for _, k := range []string{key, key + "[]"} {
		for _, v := range q[k] {
			if v = strings.TrimSpace(v); v != "" {
				out = append(out, v)
			}
		}
	}
	return out
}

func (s *Server) catalogError(w http.ResponseWriter, op string, err error) {
	status := backendStatus(err)
	if status == http.StatusNotFound {
		writeError(w, status, "not found")
		return
	}
	s.logger.Warn("catalog request failed", zap.String("op", op), zap.Int("status", status), zap.Error(err))
	writeError(w, status, "catalog backend error")
}

func (s *Server) listProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit, offset := pageParams(q)
	minPrice, err := queryDecimal(q, "price_min")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	maxPrice, err := queryDecimal(q, "price_max")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	listing, err := s.d.Catalog.Products(r.Context(), catalog.ProductFilter{
		Q:             strings.TrimSpace(q.Get("q")),
		Limit:         limit,
		Offset:        offset,
		CategoryIDs:   multi(q, "category_id"),
		CollectionIDs: multi(q, "collection_id"),
		Price:         catalog.PriceRange{Min: minPrice, Max: maxPrice},
	})
	if err != nil {
		s.catalogError(w, "http.catalog.products", err)
		return
	}
	writeJSON(w, http.StatusOK, listing)
}

func (s *Server) loadMoreProducts(w http.ResponseWriter, r *http.Request) {
	limit, offset := pageParams(r.URL.Query())
	page, err := s.d.Catalog.BasicProducts(r.Context(), limit, offset)
	if err != nil {
		s.catalogError(w, "http.catalog.load_more", err)
		return
	}
	products := page.Products
	if products == nil {
		products = []domain.Product{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"products":    products,
		"count":       page.Count,
		"next_offset": offset + len(products),
		"has_more":    offset+len(products) < page.Count,
	})
}

func (s *Server) getProduct(w http.ResponseWriter, r *http.Request) {
	detail, err := s.d.Catalog.ProductByHandle(r.Context(), chi.URLParam(r, "handle"))
	if err != nil {
		s.catalogError(w, "http.catalog.product", err)
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

func (s *Server) listCategories(w http.ResponseWriter, r *http.Request) {
	tree, err := s.d.Catalog.CategoryTree(r.Context())
	if err != nil {
		s.catalogError(w, "http.catalog.categories", err)
		return
	}
	if tree == nil {
		tree = []*domain.CategoryNode{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"categories": tree})
}

func (s *Server) getCategory(w http.ResponseWriter, r *http.Request) {
	page, err := s.d.Catalog.CategoryPage(r.Context(), chi.URLParam(r, "handle"))
	if err != nil {
		s.catalogError(w, "http.catalog.category", err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func (s *Server) listCollections(w http.ResponseWriter, r *http.Request) {
	list, err := s.d.Catalog.AllCollections(r.Context())
	if err != nil {
		s.catalogError(w, "http.catalog.collections", err)
		return
	}
	if list == nil {
		list = []domain.Collection{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"collections": list})
}

func (s *Server) getCollection(w http.ResponseWriter, r *http.Request) {
	page, err := s.d.Catalog.CollectionPage(r.Context(), chi.URLParam(r, "handle"))
	if err != nil {
		s.catalogError(w, "http.catalog.collection", err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func (s *Server) listRegions(w http.ResponseWriter, r *http.Request) {
	list, err := s.d.Catalog.Regions(r.Context())
	if err != nil {
		s.catalogError(w, "http.catalog.regions", err)
		return
	}
	if list == nil {
		list = []domain.Region{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"regions": list})
}

func (s *Server) sitemap(w http.ResponseWriter, r *http.Request) {
	body, err := s.d.Catalog.Sitemap(r.Context(), s.d.BaseURL, s.now())
	if err != nil {
		s.logger.Error("sitemap failed", zap.String("op", "http.sitemap"), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "sitemap unavailable")
		return
	}
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

// search degrades to empty results instead of failing; only the per-IP limit
// turns a request away.
func (s *Server) search(w http.ResponseWriter, r *http.Request) {
	if s.d.SearchLimit != nil && !s.d.SearchLimit.Allow(ratelimit.ClientIP(r)) {
		w.Header().Set("Retry-After", "60")
		writeError(w, http.StatusTooManyRequests, "Too many search requests")
		return
	}
	q := r.URL.Query()
	writeJSON(w, http.StatusOK, s.d.Search.Query(r.Context(), q.Get("q"), queryInt(q, "limit", 0)))
}

type recaptchaRequest struct {
	Token  string `json:"token"`
	Action string `json:"action"`
}

func recaptchaStatus(err error) int {
	switch {
	case errors.Is(err, recaptcha.ErrLowScore):
		return http.StatusForbidden
	case errors.Is(err, recaptcha.ErrNoToken),
		errors.Is(err, recaptcha.ErrRejected),
		errors.Is(err, recaptcha.ErrActionMismatch):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) verifyRecaptcha(w http.ResponseWriter, r *http.Request) {
	var req recaptchaRequest
	if err := decodeJSON(r, recaptchaSchema, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	res, err := s.d.Captcha.Verify(r.Context(), req.Token, req.Action)
	if err != nil {
		msg := err.Error()
		if errors.Is(err, recaptcha.ErrProviderFailure) {
			msg = recaptcha.ErrProviderFailure.Error()
		}
		writeJSON(w, recaptchaStatus(err), map[string]any{
			"success":    false,
			"error":      msg,
			"score":      res.Score,
			"errorCodes": res.ErrorCodes,
		})
		return
	}
	writeJSON(w, http.StatusOK, res)
}
