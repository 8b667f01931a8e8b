// Package pagerange parses page selections such as "1-3, 5, 7-9".
package pagerange

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	ErrInvalidSyntax = errors.New("pagerange: invalid range syntax")
	ErrReversedRange = errors.New("pagerange: range start is greater than its end")
	ErrOutOfBounds   = errors.New("pagerange: page number out of bounds")
)

// tokenPattern matches "N" or "N-M", ignoring whitespace around numbers and the hyphen.
var tokenPattern = regexp.MustCompile(`^\s*(\d+)(?:\s*-\s*(\d+))?\s*$`)

// Error describes which part of an expression failed to parse.
type Error struct {
	Token string // offending comma-separated token
	Page  int    // offending page number, when known
	Err   error  // one of the package sentinels
}

func (e *Error) Error() string {
	if e.Page != 0 || errors.Is(e.Err, ErrOutOfBounds) {
		return fmt.Sprintf("%v: %q (page %d)", e.Err, e.Token, e.Page)
	}
	return fmt.Sprintf("%v: %q", e.Err, e.Token)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Parse resolves expr into an ordered list of 1-based page numbers for a
// document with totalPages pages. Tokens are expanded left to right; the
// result is neither sorted nor deduplicated.
func Parse(expr string, totalPages int) ([]int, error) {
	if totalPages < 1 {
		return nil, &Error{Token: expr, Err: ErrOutOfBounds}
	}

	var pages []int
	for _, token := range strings.Split(expr, ",") {
		m := tokenPattern.FindStringSubmatch(token)
		if m == nil {
			return nil, &Error{Token: token, Err: ErrInvalidSyntax}
		}

		start, err := strconv.Atoi(m[1])
		if err != nil {
			return nil, &Error{Token: token, Err: ErrInvalidSyntax}
		}
		end := start
		if m[2] != "" {
			if end, err = strconv.Atoi(m[2]); err != nil {
				return nil, &Error{Token: token, Err: ErrInvalidSyntax}
			}
			if start > end {
				return nil, &Error{Token: token, Err: ErrReversedRange}
			}
		}

		for p := start; p <= end; p++ {
			if p < 1 || p > totalPages {
				return nil, &Error{Token: token, Page: p, Err: ErrOutOfBounds}
			}
			pages = append(pages, p)
		}
	}

	return pages, nil
}

// All returns every page of a document with totalPages pages, in order.
func All(totalPages int) []int {
	pages := make([]int, 0, totalPages)
	for p := 1; p <= totalPages; p++ {
		pages = append(pages, p)
	}
	return pages
}

// Resolve is Parse with an empty expression meaning every page.
func Resolve(expr string, totalPages int) ([]int, error) {
	if strings.TrimSpace(expr) == "" {
		if totalPages < 1 {
			return nil, &Error{Token: expr, Err: ErrOutOfBounds}
		}
		return All(totalPages), nil
	}
	return Parse(expr, totalPages)
}
