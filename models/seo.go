package models

// SEO contains metadata for search engine optimization and social sharing
type SEO struct {
	Title       string // Page title
	Description string // Meta description (150-160 chars recommended)
	Keywords    string // Meta keywords (comma-separated)
	Canonical   string // Canonical URL
	OGImage     string // Open Graph image URL
	OGType      string // Open Graph type (website, article, etc.)
	NoIndex     bool   // If true, adds noindex directive
}

// DefaultSEO returns SEO with sensible defaults
func DefaultSEO(title, description string) *SEO {
	return &SEO{
		Title:       title,
		Description: description,
		OGType:      "website",
	}
}

// WithCanonical sets the canonical URL
func (s *SEO) WithCanonical(url string) *SEO {
	s.Canonical = url
	return s
}

// Private marks the page as excluded from indexing
func (s *SEO) Private() *SEO {
	s.NoIndex = true
	return s
}
