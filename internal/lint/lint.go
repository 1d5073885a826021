// Package lint validates paper files against the expected format: required
// fields, sane publication dates, and labels that are actually shared
// across the corpus.
package lint

import (
	"errors"
	"fmt"
	"sort"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/alps-papers/alpstool/internal/authorname"
	"github.com/alps-papers/alpstool/internal/corpus"
	"github.com/alps-papers/alpstool/internal/paper"
)

// Severity classifies an issue.
type Severity int

const (
	Error Severity = iota
	Warning
)

// String returns the severity label used in reports.
func (s Severity) String() string {
	if s == Warning {
		return "WARN"
	}
	return "ERROR"
}

// Issue is one problem found in one file.
type Issue struct {
	File     string   `json:"file"`
	Severity Severity `json:"-"`
	Level    string   `json:"level"`
	Message  string   `json:"message"`
}

func issue(file string, sev Severity, format string, args ...interface{}) Issue {
	return Issue{
		File:     file,
		Severity: sev,
		Level:    sev.String(),
		Message:  fmt.Sprintf(format, args...),
	}
}

// Check validates a loaded corpus and returns all issues in file order.
// Files the loader skipped are reported as errors; a label used by only
// one paper is reported as a warning, since labels exist to group papers
// and a unique one is usually a typo.
func Check(c *corpus.Corpus) []Issue {
	var issues []Issue

	for _, skipped := range c.Skipped {
		issues = append(issues, issue(skipped.Name, Error, "%s", skipped.Reason))
	}

	labelUse := make(map[string]int)
	for _, p := range c.Papers {
		for _, label := range p.Labels {
			labelUse[label]++
		}
	}

	for _, p := range c.Papers {
		file := p.Filename
		if file == "" {
			file = p.Title
		}

		if err := validatePaper(p); err != nil {
			issues = appendFieldIssues(issues, file, "", err)
		}
		for i, pub := range p.Publications {
			if err := validatePublication(pub); err != nil {
				issues = appendFieldIssues(issues, file, fmt.Sprintf("publications[%d]: ", i), err)
			}
		}
		for _, label := range p.Labels {
			if labelUse[label] == 1 {
				issues = append(issues, issue(file, Warning, "label %q is unique to this file (typo?)", label))
			}
		}
	}

	return issues
}

// ErrorCount returns the number of error-severity issues.
func ErrorCount(issues []Issue) int {
	n := 0
	for _, i := range issues {
		if i.Severity == Error {
			n++
		}
	}
	return n
}

// appendFieldIssues flattens an ozzo validation error (which may be a map
// of per-field errors) into individual issues.
func appendFieldIssues(issues []Issue, file, prefix string, err error) []Issue {
	var fieldErrs validation.Errors
	if errors.As(err, &fieldErrs) {
		for _, field := range sortedKeys(fieldErrs) {
			issues = append(issues, issue(file, Error, "%s%s %v", prefix, field, fieldErrs[field]))
		}
		return issues
	}
	return append(issues, issue(file, Error, "%s%v", prefix, err))
}

func sortedKeys(errs validation.Errors) []string {
	keys := make([]string, 0, len(errs))
	for k := range errs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// parsableAuthors requires the authors field to be present and to yield at
// least one name.
var parsableAuthors = validation.By(func(value interface{}) error {
	f, ok := value.(paper.AuthorsField)
	if !ok || f.Kind() == paper.AuthorsMissing {
		return errors.New("is required")
	}
	if len(authorname.Parse(f)) == 0 {
		return errors.New("contains no author names")
	}
	return nil
})

func validatePaper(p paper.Paper) error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Title, validation.Required),
		validation.Field(&p.Authors, parsableAuthors),
		validation.Field(&p.Year, validation.When(p.Year != 0,
			validation.Min(1800), validation.Max(2100))),
	)
}

func validatePublication(pub paper.Publication) error {
	return validation.ValidateStruct(&pub,
		validation.Field(&pub.Name, validation.Required),
		validation.Field(&pub.Year, validation.When(pub.Year != 0,
			validation.Min(1800), validation.Max(2100))),
		validation.Field(&pub.Month, validation.Min(0), validation.Max(12)),
		validation.Field(&pub.Day, validation.Min(0), validation.Max(31)),
		validation.Field(&pub.URL, validation.When(pub.URL != "", is.URL)),
	)
}
