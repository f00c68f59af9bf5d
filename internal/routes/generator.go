// Package routes enumerates every static page identity the site exposes.
// Page identities drive build-time page generation and the sitemap; they are
// derived from the catalog, never stored, so a route can only exist for an
// entity that exists.
package routes

import (
	"fmt"

	"github.com/vincegoalt/rydercup2027-api/internal/content"
	"github.com/vincegoalt/rydercup2027-api/internal/model"
)

// PageCategory buckets pages for sitemap priority and change frequency
type PageCategory string

const (
	CategoryHome     PageCategory = "home"
	CategoryHub      PageCategory = "hub"
	CategoryLocation PageCategory = "location"
	CategoryDetail   PageCategory = "detail"
	CategoryService  PageCategory = "service"
	CategoryFAQ      PageCategory = "faq"
)

// PageIdentity is one (locale, path) pair the site publishes. Path carries no
// locale prefix; the locale is explicit.
type PageIdentity struct {
	Locale   model.Locale
	Path     string
	Category PageCategory
}

// StaticPages is the fixed list of non-parameterized site pages
var StaticPages = []PageIdentity{
	{Path: "/", Category: CategoryHome},
	{Path: "/courses", Category: CategoryHub},
	{Path: "/hotels", Category: CategoryHub},
	{Path: "/locations", Category: CategoryHub},
	{Path: "/faq", Category: CategoryHub},
	{Path: "/contact", Category: CategoryHub},
}

// servicePages are the per-location page templates
var servicePages = []string{"golf-near", "hotels-near", "getting-to"}

// Generate enumerates the full cross product of locales and pages: static
// pages, one detail page per course, hotel and location, three service pages
// per location, and one page per FAQ. An entity with a missing slug is a
// data defect and fails generation rather than emitting a broken URL.
func Generate(c *content.Catalog) ([]PageIdentity, error) {
	paths, err := entityPaths(c)
	if err != nil {
		return nil, err
	}

	identities := make([]PageIdentity, 0, len(model.Locales)*len(paths))
	for _, locale := range model.Locales {
		for _, p := range paths {
			identities = append(identities, PageIdentity{Locale: locale, Path: p.Path, Category: p.Category})
		}
	}
	return identities, nil
}

// entityPaths builds the locale-independent path set
func entityPaths(c *content.Catalog) ([]PageIdentity, error) {
	paths := make([]PageIdentity, 0, len(StaticPages))
	paths = append(paths, StaticPages...)

	for _, gc := range c.Courses {
		if gc.Slug == "" {
			return nil, fmt.Errorf("course %q has no slug", gc.ID)
		}
		paths = append(paths, PageIdentity{Path: "/courses/" + gc.Slug, Category: CategoryDetail})
	}
	for _, h := range c.Hotels {
		if h.Slug == "" {
			return nil, fmt.Errorf("hotel %q has no slug", h.ID)
		}
		paths = append(paths, PageIdentity{Path: "/hotels/" + h.Slug, Category: CategoryDetail})
	}
	for _, l := range c.Locations {
		if l.Slug == "" {
			return nil, fmt.Errorf("location %q has no slug", l.ID)
		}
		paths = append(paths, PageIdentity{Path: "/locations/" + l.Slug, Category: CategoryLocation})
		for _, svc := range servicePages {
			paths = append(paths, PageIdentity{Path: "/locations/" + l.Slug + "/" + svc, Category: CategoryService})
		}
	}
	for _, f := range c.FAQs {
		if f.ID == "" {
			return nil, fmt.Errorf("faq has no id")
		}
		paths = append(paths, PageIdentity{Path: "/faq/" + f.ID, Category: CategoryFAQ})
	}
	return paths, nil
}

// ValidateCrossLinks checks that every FAQ related-page path points at a
// generated route, so the catalog can never ship a dangling link
func ValidateCrossLinks(c *content.Catalog, identities []PageIdentity) error {
	known := make(map[string]bool, len(identities))
	for _, id := range identities {
		known[id.Path] = true
	}

	for _, f := range c.FAQs {
		for _, p := range f.RelatedPages {
			if !known[p] {
				return fmt.Errorf("faq %q links to unknown page %q", f.ID, p)
			}
		}
	}
	return nil
}
