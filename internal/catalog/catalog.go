// Package catalog holds the fixed list of services a visitor can ask a quote
// for. The page view and the quote form share one Catalog value.
package catalog

import "strings"

const (
	ZohoIntegration      = "Zoho Integration"
	WebsiteDesigning     = "Website Designing"
	SoftwareDevelopment  = "Software Development"
	SEOOptimization      = "SEO Optimization"
	EcommerceDevelopment = "E-commerce Development"
	MobileAppDevelopment = "Mobile App Development"
	LegacySupport        = "Legacy & Support"
)

var defaultTags = []string{
	ZohoIntegration,
	WebsiteDesigning,
	SoftwareDevelopment,
	SEOOptimization,
	EcommerceDevelopment,
	MobileAppDevelopment,
	LegacySupport,
}

// Catalog is an ordered, duplicate-free set of service tags.
type Catalog struct {
	tags  []string
	index map[string]struct{}
}

// Default returns the agency's standard catalog.
func Default() *Catalog {
	return New(defaultTags...)
}

// New builds a catalog from tags. Blank entries and repeats are dropped and
// the first-seen order is kept.
func New(tags ...string) *Catalog {
	c := &Catalog{index: make(map[string]struct{}, len(tags))}
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if _, dup := c.index[tag]; dup {
			continue
		}
		c.index[tag] = struct{}{}
		c.tags = append(c.tags, tag)
	}
	return c
}

// Parse builds a catalog from a comma-separated list, falling back to the
// default catalog when the list is empty.
func Parse(list string) *Catalog {
	c := New(strings.Split(list, ",")...)
	if c.Len() == 0 {
		return Default()
	}
	return c
}

// Contains reports whether tag belongs to the catalog.
func (c *Catalog) Contains(tag string) bool {
	if c == nil {
		return false
	}
	_, ok := c.index[tag]
	return ok
}

// Tags returns a copy of the catalog in display order.
func (c *Catalog) Tags() []string {
	if c == nil {
		return nil
	}
	out := make([]string, len(c.tags))
	copy(out, c.tags)
	return out
}

// Len returns the number of tags.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.tags)
}
