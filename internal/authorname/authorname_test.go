package authorname

import (
	"reflect"
	"testing"

	"github.com/alps-papers/alpstool/internal/paper"
)

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain name lowercased",
			input: "John Smith",
			want:  "john smith",
		},
		{
			name:  "diacritics stripped",
			input: "Christoph Dürr",
			want:  "christoph durr",
		},
		{
			name:  "accented name",
			input: "José Álvarez",
			want:  "jose alvarez",
		},
		{
			name:  "apostrophe removed entirely",
			input: "O'Brien",
			want:  "obrien",
		},
		{
			name:  "unicode apostrophe removed",
			input: "O’Brien",
			want:  "obrien",
		},
		{
			name:  "hyphen becomes space",
			input: "Smith-Jones",
			want:  "smith jones",
		},
		{
			name:  "en dash becomes space",
			input: "Smith–Jones",
			want:  "smith jones",
		},
		{
			name:  "last-first reordered before keying",
			input: "Smith, John",
			want:  "john smith",
		},
		{
			name:  "initials keep their letters",
			input: "J. R. Smith",
			want:  "j r smith",
		},
		{
			name:  "html entity apostrophe",
			input: "O&apos;Brien",
			want:  "obrien",
		},
		{
			name:  "numeric entity apostrophe",
			input: "O&#39;Brien",
			want:  "obrien",
		},
		{
			name:  "ampersand entity then stripped",
			input: "Smith &amp; Jones",
			want:  "smith jones",
		},
		{
			name:  "whitespace collapsed",
			input: "  John   Smith  ",
			want:  "john smith",
		},
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeKey(tt.input)
			if got != tt.want {
				t.Errorf("NormalizeKey(%q) = %q, want %q", tt.input, got, tt.want)
			}
			// Same input must always produce the same key.
			if again := NormalizeKey(tt.input); again != got {
				t.Errorf("NormalizeKey(%q) not deterministic: %q then %q", tt.input, got, again)
			}
		})
	}
}

func TestNormalizeKeyVariantsAgree(t *testing.T) {
	variants := []string{
		"John Smith",
		"john smith",
		"JOHN SMITH",
		"John  Smith",
		"Smith, John",
	}
	want := NormalizeKey(variants[0])
	for _, v := range variants {
		if got := NormalizeKey(v); got != want {
			t.Errorf("NormalizeKey(%q) = %q, want %q", v, got, want)
		}
	}
}

func TestReorderLastFirst(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "no comma unchanged",
			input: "John Smith",
			want:  "John Smith",
		},
		{
			name:  "last comma first",
			input: "Smith, John",
			want:  "John Smith",
		},
		{
			name:  "whitespace normalized",
			input: "  Smith ,   John  ",
			want:  "John Smith",
		},
		{
			name:  "empty first side keeps original",
			input: "Smith,",
			want:  "Smith,",
		},
		{
			name:  "empty last side keeps original",
			input: ", John",
			want:  ", John",
		},
		{
			name:  "only first comma splits, later commas dropped",
			input: "Smith, John, Jr",
			want:  "John Jr Smith",
		},
		{
			name:  "entities decoded",
			input: "O&apos;Brien, Pat",
			want:  "Pat O'Brien",
		},
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ReorderLastFirst(tt.input)
			if got != tt.want {
				t.Errorf("ReorderLastFirst(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input paper.AuthorsField
		want  []string
	}{
		{
			name:  "missing field",
			input: paper.NoAuthors(),
			want:  nil,
		},
		{
			name:  "empty string",
			input: paper.SingleAuthors(""),
			want:  nil,
		},
		{
			name:  "whitespace only",
			input: paper.SingleAuthors("   "),
			want:  nil,
		},
		{
			name:  "single name",
			input: paper.SingleAuthors("John Smith"),
			want:  []string{"John Smith"},
		},
		{
			name:  "comma separated list",
			input: paper.SingleAuthors("Alice Foo, Bob Bar, Carol Baz"),
			want:  []string{"Alice Foo", "Bob Bar", "Carol Baz"},
		},
		{
			name:  "semicolon list with reordering",
			input: paper.SingleAuthors("Smith, John; Doe, Jane"),
			want:  []string{"John Smith", "Jane Doe"},
		},
		{
			name:  "and separated when no comma",
			input: paper.SingleAuthors("Alice Foo and Bob Bar"),
			want:  []string{"Alice Foo", "Bob Bar"},
		},
		{
			name:  "and is case insensitive",
			input: paper.SingleAuthors("Alice Foo And Bob Bar"),
			want:  []string{"Alice Foo", "Bob Bar"},
		},
		{
			name:  "and inside a word is not a separator",
			input: paper.SingleAuthors("Brandon Sanderson"),
			want:  []string{"Brandon Sanderson"},
		},
		{
			name:  "comma wins over and",
			input: paper.SingleAuthors("A, B, and C"),
			want:  []string{"A", "B", "and C"},
		},
		{
			name:  "list elements parsed independently and flattened",
			input: paper.ListAuthors([]string{"Smith, John", "Alice Foo and Bob Bar"}),
			want:  []string{"John Smith", "Alice Foo", "Bob Bar"},
		},
		{
			name:  "duplicates preserved",
			input: paper.SingleAuthors("John Smith, John Smith"),
			want:  []string{"John Smith", "John Smith"},
		},
		{
			name:  "empty fragments dropped",
			input: paper.SingleAuthors("Alice Foo, , Bob Bar"),
			want:  []string{"Alice Foo", "Bob Bar"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse(%+v) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		display string
		want    NameForm
	}{
		{
			name:    "full given name",
			display: "Christoph Dürr",
			want:    FullName,
		},
		{
			name:    "dotted initial",
			display: "C. Dürr",
			want:    InitialForm,
		},
		{
			name:    "bare initial",
			display: "C Dürr",
			want:    InitialForm,
		},
		{
			name:    "two letter given name is full",
			display: "Jo Smith",
			want:    FullName,
		},
		{
			name:    "single token is full",
			display: "Smith",
			want:    FullName,
		},
		{
			name:    "lone initial is full",
			display: "C.",
			want:    FullName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.display); got != tt.want {
				t.Errorf("Classify(%q) = %v, want %v", tt.display, got, tt.want)
			}
		})
	}
}

func TestDeriveMeta(t *testing.T) {
	tests := []struct {
		name    string
		display string
		want    Meta
	}{
		{
			name:    "initial form with diacritics",
			display: "C. Dürr",
			want:    Meta{Form: InitialForm, FirstInitial: "c", LastNameKey: "durr"},
		},
		{
			name:    "full form shares coordinates with its initial form",
			display: "Christoph Dürr",
			want:    Meta{Form: FullName, FirstInitial: "c", LastNameKey: "durr"},
		},
		{
			name:    "accented initial keeps its diacritic",
			display: "É. Dupont",
			want:    Meta{Form: InitialForm, FirstInitial: "é", LastNameKey: "dupont"},
		},
		{
			name:    "accented full form matches its accented initial",
			display: "Étienne Dupont",
			want:    Meta{Form: FullName, FirstInitial: "é", LastNameKey: "dupont"},
		},
		{
			name:    "non-decomposable initial",
			display: "Ø. Jensen",
			want:    Meta{Form: InitialForm, FirstInitial: "ø", LastNameKey: "jensen"},
		},
		{
			name:    "non-decomposable full form",
			display: "Øystein Jensen",
			want:    Meta{Form: FullName, FirstInitial: "ø", LastNameKey: "jensen"},
		},
		{
			name:    "empty name",
			display: "",
			want:    Meta{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DeriveMeta(tt.display); got != tt.want {
				t.Errorf("DeriveMeta(%q) = %+v, want %+v", tt.display, got, tt.want)
			}
		})
	}
}
