package catalog

import (
	"context"
	"encoding/xml"
	"strings"
	"time"

	"go.uber.org/zap"
)

var staticPaths = []string{"/", "/products", "/collections", "/categories", "/about", "/privacy", "/tos"}

const sitemapProductLimit = 1000

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// Sitemap renders static pages plus every product, category and collection.
// Dynamic sources that fail are skipped so the static part is always served.
func (s *Service) Sitemap(ctx context.Context, origin string, now time.Time) ([]byte, error) {
	paths := append([]string{}, staticPaths...)

	if page, err := s.BasicProducts(ctx, sitemapProductLimit, 0); err != nil {
		s.logger.Warn("sitemap products failed", zap.Error(err))
	} else {
		for _, p := range page.Products {
			if p.Handle != "" {
				paths = append(paths, "/products/"+p.Handle)
			}
		}
	}
	if cats, err := s.AllCategories(ctx); err != nil {
		s.logger.Warn("sitemap categories failed", zap.Error(err))
	} else {
		for _, c := range cats {
			if c.Handle != "" {
				paths = append(paths, "/categories/"+c.Handle)
			}
		}
	}
	if cols, err := s.AllCollections(ctx); err != nil {
		s.logger.Warn("sitemap collections failed", zap.Error(err))
	} else {
		for _, c := range cols {
			if c.Handle != "" {
				paths = append(paths, "/collections/"+c.Handle)
			}
		}
	}

	origin = strings.TrimSuffix(origin, "/")
	lastmod := now.UTC().Format(time.RFC3339)
	set := urlSet{XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	for _, p := range paths {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        origin + p,
			LastMod:    lastmod,
			ChangeFreq: changeFreq(p),
			Priority:   priority(p),
		})
	}

	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), body...), nil
}

func priority(p string) string {
	switch {
	case p == "/":
		return "1.0"
	case strings.HasPrefix(p, "/products/"):
		return "0.8"
	case strings.HasPrefix(p, "/categories/"), strings.HasPrefix(p, "/collections/"):
		return "0.7"
	default:
		return "0.6"
	}
}

func changeFreq(p string) string {
	switch {
	case p == "/":
		return "daily"
	case strings.HasPrefix(p, "/products/"):
		return "weekly"
	default:
		return "monthly"
	}
}
