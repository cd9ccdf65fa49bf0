// Package form validates and normalizes the add-book form.
package form

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pkg/errors"

	"github.com/drake/shelf/library"
)

// Failure identifies why a submission was rejected.
type Failure int

const (
	MissingFields Failure = iota + 1
	InvalidAuthorFormat
)

func (f Failure) String() string {
	switch f {
	case MissingFields:
		return "missing-fields"
	case InvalidAuthorFormat:
		return "invalid-author-format"
	default:
		return "unknown"
	}
}

// ValidationError is returned for a rejected submission.
// Its message is meant to be shown to the user as-is.
type ValidationError struct {
	Kind Failure
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case MissingFields:
		return "Please fill out missing fields"
	case InvalidAuthorFormat:
		return "Author name can only include letters and single spaces"
	default:
		return "Invalid submission"
	}
}

// KindOf returns the failure kind of err, or 0 if err is not a ValidationError.
func KindOf(err error) Failure {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr.Kind
	}
	return 0
}

// Fields is the raw form content as typed.
type Fields struct {
	Title  string
	Author string
	Pages  string
	Read   bool
}

// Entry is a validated, normalized submission.
type Entry struct {
	Title  string
	Author string
	Pages  int
	Read   bool
}

// Letters with single interior spaces: "Osamu Dazai", not "Osamu  Dazai" or " Osamu".
var authorPattern = regexp.MustCompile(`^[A-Za-z]+( [A-Za-z]+)*$`)

// Validate checks the raw fields and returns the normalized entry.
// Missing fields are reported before an invalid author.
func Validate(f Fields) (Entry, error) {
	title := strings.TrimSpace(f.Title)
	pages, pagesOK := parsePages(f.Pages)

	if title == "" || f.Author == "" || !pagesOK {
		return Entry{}, &ValidationError{Kind: MissingFields}
	}
	if !authorPattern.MatchString(f.Author) {
		return Entry{}, &ValidationError{Kind: InvalidAuthorFormat}
	}

	return Entry{
		Title:  Capitalize(title),
		Author: CapitalizeWords(f.Author),
		Pages:  pages,
		Read:   f.Read,
	}, nil
}

// parsePages reads an integer page count and clamps it to the library bounds.
// Text that is not an integer counts as an empty field.
func parsePages(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && numErr.Err == strconv.ErrRange {
			if strings.HasPrefix(s, "-") {
				return 0, true
			}
			return library.MaxPages, true
		}
		return 0, false
	}
	return library.ClampPages(n), true
}

// Capitalize upper-cases the first letter of s and leaves the rest alone.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// CapitalizeWords capitalizes every space-separated word.
func CapitalizeWords(s string) string {
	words := strings.Split(s, " ")
	for i, w := range words {
		words[i] = Capitalize(w)
	}
	return strings.Join(words, " ")
}
