package paper

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// AuthorsKind discriminates the shapes the raw authors field can take in
// source data: absent, a single free-text string, or a list of strings.
type AuthorsKind int

const (
	AuthorsMissing AuthorsKind = iota
	AuthorsSingle
	AuthorsList
)

// AuthorsField is the raw authors field of a paper, exactly as scraped or
// entered. Source files are inconsistent: some carry one comma- or
// semicolon-separated string, some carry a YAML/JSON list, some carry
// nothing at all. The field is kept as an explicit tagged value so callers
// never have to type-probe at use sites; splitting it into individual
// names is the authorname package's job.
type AuthorsField struct {
	kind   AuthorsKind
	single string
	list   []string
}

// NoAuthors returns the missing-authors value. It is also the zero value.
func NoAuthors() AuthorsField {
	return AuthorsField{}
}

// SingleAuthors wraps one raw free-text authors string.
func SingleAuthors(s string) AuthorsField {
	return AuthorsField{kind: AuthorsSingle, single: s}
}

// ListAuthors wraps a list of raw author strings.
func ListAuthors(names []string) AuthorsField {
	return AuthorsField{kind: AuthorsList, list: names}
}

// Kind reports which shape the field has.
func (f AuthorsField) Kind() AuthorsKind {
	return f.kind
}

// Single returns the raw string for an AuthorsSingle field, "" otherwise.
func (f AuthorsField) Single() string {
	return f.single
}

// List returns the raw strings for an AuthorsList field, nil otherwise.
func (f AuthorsField) List() []string {
	return f.list
}

// IsZero reports whether the field is missing. yaml.v3 consults this for
// omitempty handling.
func (f AuthorsField) IsZero() bool {
	return f.kind == AuthorsMissing
}

// UnmarshalJSON accepts null, a string, or an array of strings.
func (f *AuthorsField) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*f = NoAuthors()
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = SingleAuthors(s)
		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*f = ListAuthors(list)
		return nil
	}

	return fmt.Errorf("authors must be a string or a list of strings, got %s", string(data))
}

// MarshalJSON emits the field in the same shape it was read in.
func (f AuthorsField) MarshalJSON() ([]byte, error) {
	switch f.kind {
	case AuthorsSingle:
		return json.Marshal(f.single)
	case AuthorsList:
		return json.Marshal(f.list)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalYAML accepts a scalar string or a sequence of strings.
func (f *AuthorsField) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		if value.Tag == "!!null" {
			*f = NoAuthors()
			return nil
		}
		var s string
		if err := value.Decode(&s); err != nil {
			return fmt.Errorf("decoding authors scalar: %w", err)
		}
		*f = SingleAuthors(s)
		return nil
	case yaml.SequenceNode:
		var list []string
		if err := value.Decode(&list); err != nil {
			return fmt.Errorf("decoding authors list: %w", err)
		}
		*f = ListAuthors(list)
		return nil
	default:
		return fmt.Errorf("authors must be a string or a list of strings, got %s node", value.Tag)
	}
}

// MarshalYAML emits the field in the same shape it was read in.
func (f AuthorsField) MarshalYAML() (interface{}, error) {
	switch f.kind {
	case AuthorsSingle:
		return f.single, nil
	case AuthorsList:
		return f.list, nil
	default:
		return nil, nil
	}
}
