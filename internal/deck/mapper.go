package deck

import (
	"fmt"
	"strings"

	"github.com/arcanaland/omikuji/internal/fortune"
)

// Column labels recognised in the header row.
const (
	ColumnID        = "id"
	ColumnTitle     = "title"
	ColumnLuckyItem = "genre1"
	ColumnLove      = "genre2"
	ColumnStudy     = "genre3"
)

// DetailColumn returns the label of the n-th detail column (1-based).
func DetailColumn(n int) string {
	return fmt.Sprintf("detail%d", n)
}

// KnownColumns lists every label the mapper reads, in display order.
func KnownColumns() []string {
	cols := []string{ColumnID, ColumnTitle, ColumnLuckyItem, ColumnLove, ColumnStudy}
	for i := 1; i <= fortune.MaxDetails; i++ {
		cols = append(cols, DetailColumn(i))
	}
	return cols
}

// HeaderIndex maps a lower-cased header label to its column position.
type HeaderIndex map[string]int

// NewHeaderIndex builds an index from a header row. Empty labels are left
// out, and a repeated label keeps its last position.
func NewHeaderIndex(header []string) HeaderIndex {
	idx := make(HeaderIndex, len(header))
	for i, cell := range header {
		label := normalizeLabel(cell)
		if label != "" {
			idx[label] = i
		}
	}
	return idx
}

// Has reports whether the label is present.
func (h HeaderIndex) Has(label string) bool {
	_, ok := h[normalizeLabel(label)]
	return ok
}

// Value returns the trimmed cell for label, or "" when the label is
// unmapped or the row is too short.
func (h HeaderIndex) Value(cells []string, label string) string {
	i, ok := h[normalizeLabel(label)]
	if !ok || i >= len(cells) {
		return ""
	}
	return strings.TrimSpace(cells[i])
}

func normalizeLabel(label string) string {
	return strings.ToLower(strings.TrimSpace(label))
}

// SkipReason explains why a row produced no fortune.
type SkipReason string

const (
	SkipMissingColumn SkipReason = "missing required column"
	SkipBlankRow      SkipReason = "blank row"
	SkipMissingID     SkipReason = "missing id"
	SkipMissingTitle  SkipReason = "missing title"
)

// SkipFunc is notified about data the mapper drops. Row is the 1-based row
// number in the source (the header is row 1). For SkipMissingColumn, row is
// 1 and the whole dataset is dropped.
type SkipFunc func(row int, reason SkipReason)

// MapFortunes converts parsed rows into fortunes. The first row is the
// header. Invalid rows are dropped without error.
func MapFortunes(rows [][]string) []fortune.Fortune {
	return MapFortunesFunc(rows, nil)
}

// MapFortunesFunc is MapFortunes with a hook reporting every dropped row.
func MapFortunesFunc(rows [][]string, onSkip SkipFunc) []fortune.Fortune {
	if onSkip == nil {
		onSkip = func(int, SkipReason) {}
	}

	fortunes := []fortune.Fortune{}
	if len(rows) == 0 {
		return fortunes
	}

	header := NewHeaderIndex(rows[0])
	if !header.Has(ColumnID) || !header.Has(ColumnTitle) {
		onSkip(1, SkipMissingColumn)
		return fortunes
	}

	for i, cells := range rows[1:] {
		rowNum := i + 2

		if isBlank(cells) {
			onSkip(rowNum, SkipBlankRow)
			continue
		}

		f := fortune.Fortune{
			ID:        header.Value(cells, ColumnID),
			Title:     header.Value(cells, ColumnTitle),
			LuckyItem: header.Value(cells, ColumnLuckyItem),
			Love:      header.Value(cells, ColumnLove),
			Study:     header.Value(cells, ColumnStudy),
		}
		for n := 1; n <= fortune.MaxDetails; n++ {
			if v := header.Value(cells, DetailColumn(n)); v != "" {
				f.Details = append(f.Details, v)
			}
		}

		switch {
		case f.ID == "":
			onSkip(rowNum, SkipMissingID)
		case f.Title == "":
			onSkip(rowNum, SkipMissingTitle)
		default:
			fortunes = append(fortunes, f)
		}
	}

	return fortunes
}

func isBlank(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
