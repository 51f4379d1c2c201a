// Package parser splits comma-separated fortune data into rows of raw cells.
//
// The format is a small subset of CSV: double quotes wrap a field that may
// contain commas or line feeds, and a doubled quote inside a quoted field
// stands for one literal quote. Cells are returned untrimmed; the parser has
// no knowledge of headers or columns.
package parser

import (
	"errors"
	"fmt"
	"strings"
)

const (
	quote     = '"'
	delimiter = ','
	newline   = '\n'
)

// ErrMalformedInput is returned when a quoted field is never closed.
var ErrMalformedInput = errors.New("malformed quoting")

// ParseError reports where an unterminated quoted field started.
type ParseError struct {
	Line int // 1-based line of the opening quote
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v: unterminated quoted field", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

type state int

const (
	unquoted state = iota
	quoted
)

// Parse converts text into rows of cells.
// Line endings are normalised to "\n" before scanning. A final row without a
// trailing line feed is still emitted; empty input yields no rows.
func Parse(text string) ([][]string, error) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	src := []rune(text)
	var (
		rows      [][]string
		row       []string
		cell      strings.Builder
		st        = unquoted
		line      = 1
		quoteLine int
	)

	for i := 0; i < len(src); i++ {
		c := src[i]

		if st == quoted && c == quote && i+1 < len(src) && src[i+1] == quote {
			cell.WriteRune(quote)
			i++
			continue
		}

		switch {
		case c == quote:
			if st == unquoted {
				st = quoted
				quoteLine = line
			} else {
				st = unquoted
			}
		case c == delimiter && st == unquoted:
			row = append(row, cell.String())
			cell.Reset()
		case c == newline && st == unquoted:
			row = append(row, cell.String())
			rows = append(rows, row)
			row = nil
			cell.Reset()
			line++
		default:
			if c == newline {
				line++
			}
			cell.WriteRune(c)
		}
	}

	if st == quoted {
		return nil, &ParseError{Line: quoteLine, Err: ErrMalformedInput}
	}

	if cell.Len() > 0 || len(row) > 0 {
		rows = append(rows, append(row, cell.String()))
	}

	return rows, nil
}
