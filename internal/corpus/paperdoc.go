package corpus

import (
	"encoding/json"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/alps-papers/alpstool/internal/paper"
)

// FlexibleInt unmarshals from either an integer or a numeric string.
// Hand-edited YAML and scraped JSON disagree on whether years are quoted.
type FlexibleInt int

// UnmarshalJSON accepts null, a number, or a numeric string.
func (f *FlexibleInt) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*f = 0
		return nil
	}

	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*f = FlexibleInt(n)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		return f.fromString(s)
	}

	return fmt.Errorf("cannot unmarshal %s into FlexibleInt", string(data))
}

// UnmarshalYAML accepts an integer scalar or a numeric string scalar.
func (f *FlexibleInt) UnmarshalYAML(value *yaml.Node) error {
	if value.Tag == "!!null" {
		*f = 0
		return nil
	}

	var n int
	if err := value.Decode(&n); err == nil {
		*f = FlexibleInt(n)
		return nil
	}

	var s string
	if err := value.Decode(&s); err == nil {
		return f.fromString(s)
	}

	return fmt.Errorf("cannot unmarshal %q into FlexibleInt", value.Value)
}

func (f *FlexibleInt) fromString(s string) error {
	if s == "" {
		*f = 0
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("invalid number: %q", s)
	}
	*f = FlexibleInt(n)
	return nil
}

// paperDoc is the on-disk shape of one paper, tolerant of the type drift
// found in real files. It is converted to the strict paper.Paper type
// after decoding.
type paperDoc struct {
	Title        string             `json:"title" yaml:"title"`
	Authors      paper.AuthorsField `json:"authors" yaml:"authors"`
	Labels       []string           `json:"labels" yaml:"labels"`
	Publications []publicationDoc   `json:"publications" yaml:"publications"`
	Abstract     string             `json:"abstract" yaml:"abstract"`
	Year         FlexibleInt        `json:"year" yaml:"year"`
	ArXiv        string             `json:"arxiv" yaml:"arxiv"`
	S2ID         string             `json:"s2_id" yaml:"s2_id"`
}

type publicationDoc struct {
	Name    string      `json:"name" yaml:"name"`
	Year    FlexibleInt `json:"year" yaml:"year"`
	Month   FlexibleInt `json:"month" yaml:"month"`
	Day     FlexibleInt `json:"day" yaml:"day"`
	URL     string      `json:"url" yaml:"url"`
	DBLPKey string      `json:"dblp_key" yaml:"dblp_key"`
	BibTeX  string      `json:"bibtex" yaml:"bibtex"`
}

func (d paperDoc) isEmpty() bool {
	return d.Title == "" && d.Authors.Kind() == paper.AuthorsMissing &&
		len(d.Labels) == 0 && len(d.Publications) == 0
}

func (d paperDoc) toPaper() paper.Paper {
	pubs := make([]paper.Publication, 0, len(d.Publications))
	for _, pd := range d.Publications {
		pubs = append(pubs, paper.Publication{
			Name:    pd.Name,
			Year:    int(pd.Year),
			Month:   int(pd.Month),
			Day:     int(pd.Day),
			URL:     pd.URL,
			DBLPKey: pd.DBLPKey,
			BibTeX:  pd.BibTeX,
		})
	}
	if len(pubs) == 0 {
		pubs = nil
	}
	return paper.Paper{
		Title:        d.Title,
		Authors:      d.Authors,
		Labels:       d.Labels,
		Publications: pubs,
		Abstract:     d.Abstract,
		Year:         int(d.Year),
		ArXiv:        d.ArXiv,
		S2ID:         d.S2ID,
	}
}
