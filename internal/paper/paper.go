// Package paper defines the core domain types for the curated bibliography.
package paper

// Paper represents one curated paper as loaded from its YAML file or from
// the prebuilt papers.json artifact.
type Paper struct {
	// Metadata
	Title   string       `json:"title,omitempty" yaml:"title,omitempty"`
	Authors AuthorsField `json:"authors" yaml:"authors,omitempty"`
	Labels  []string     `json:"labels,omitempty" yaml:"labels,omitempty"`

	// Venues this paper appeared in (preprint servers, conferences, journals)
	Publications []Publication `json:"publications,omitempty" yaml:"publications,omitempty"`

	Abstract string `json:"abstract,omitempty" yaml:"abstract,omitempty"`
	Year     int    `json:"year,omitempty" yaml:"year,omitempty"`

	// External Identifiers
	ArXiv string `json:"arxiv,omitempty" yaml:"arxiv,omitempty"`
	S2ID  string `json:"s2_id,omitempty" yaml:"s2_id,omitempty"`

	// Runtime metadata, set by the loader. Never serialized.
	Filename string `json:"-" yaml:"-"`
}

// Publication represents one venue appearance of a paper.
type Publication struct {
	Name    string `json:"name" yaml:"name"`
	URL     string `json:"url,omitempty" yaml:"url,omitempty"`
	Year    int    `json:"year,omitempty" yaml:"year,omitempty"`
	Month   int    `json:"month,omitempty" yaml:"month,omitempty"` // 1-12, 0 if unknown
	Day     int    `json:"day,omitempty" yaml:"day,omitempty"`     // 1-31, 0 if unknown
	DBLPKey string `json:"dblp_key,omitempty" yaml:"dblp_key,omitempty"`
	BibTeX  string `json:"bibtex,omitempty" yaml:"bibtex,omitempty"`
}

// PublicationYear returns the paper's year if set, otherwise the earliest
// publication year, otherwise 0.
func (p Paper) PublicationYear() int {
	if p.Year > 0 {
		return p.Year
	}
	year := 0
	for _, pub := range p.Publications {
		if pub.Year > 0 && (year == 0 || pub.Year < year) {
			year = pub.Year
		}
	}
	return year
}

// VenueNames returns the set of venue names this paper appeared at.
func (p Paper) VenueNames() map[string]bool {
	names := make(map[string]bool, len(p.Publications))
	for _, pub := range p.Publications {
		names[pub.Name] = true
	}
	return names
}
