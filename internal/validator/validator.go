package validator

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/arcanaland/omikuji/internal/deck"
	"github.com/arcanaland/omikuji/internal/parser"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

type Validator struct {
	DeckPath string
	Results  ValidationResults
}

func NewValidator(deckPath string) *Validator {
	return &Validator{
		DeckPath: deckPath,
		Results:  ValidationResults{},
	}
}

// Validate checks a deck directory or a single fortunes file. The returned
// error is reserved for paths that cannot be inspected at all.
func (v *Validator) Validate() (ValidationResults, error) {
	info, err := os.Stat(v.DeckPath)
	if err != nil {
		return v.Results, fmt.Errorf("cannot read deck: %w", err)
	}

	csvPath := v.DeckPath
	if info.IsDir() {
		v.validateDeckToml()
		csvPath = filepath.Join(v.DeckPath, deck.FortunesFile)
	}

	v.validateFortunes(csvPath)

	return v.Results, nil
}

func (v *Validator) errorf(format string, args ...any) {
	v.Results.Errors = append(v.Results.Errors, fmt.Sprintf(format, args...))
}

func (v *Validator) warnf(format string, args ...any) {
	v.Results.Warnings = append(v.Results.Warnings, fmt.Sprintf(format, args...))
}

func (v *Validator) validateDeckToml() {
	deckTomlPath := filepath.Join(v.DeckPath, deck.ConfigFile)
	if _, err := os.Stat(deckTomlPath); os.IsNotExist(err) {
		v.warnf("%s not found, using directory name and default labels", deck.ConfigFile)
		return
	}

	var deckConfig deck.DeckConfig
	meta, err := toml.DecodeFile(deckTomlPath, &deckConfig)
	if err != nil {
		v.errorf("error parsing %s: %v", deck.ConfigFile, err)
		return
	}

	if deckConfig.Deck.ID == "" {
		v.warnf("deck.id is empty in %s", deck.ConfigFile)
	}
	if deckConfig.Deck.Name == "" {
		v.warnf("deck.name is empty in %s", deck.ConfigFile)
	}

	for _, key := range meta.Undecoded() {
		v.warnf("unknown key in %s: %s", deck.ConfigFile, key.String())
	}
}

// validateFortunes parses the dataset and reports anything the loader would
// silently drop.
func (v *Validator) validateFortunes(csvPath string) {
	text, found, err := deck.FileSource{Path: csvPath}.ReadFortunes()
	if err != nil {
		v.errorf("%v", err)
		return
	}
	if !found {
		v.warnf("%s not found, deck is empty", filepath.Base(csvPath))
		return
	}

	rows, err := parser.Parse(text)
	if err != nil {
		var perr *parser.ParseError
		if errors.As(err, &perr) {
			v.errorf("%s: quoted field opened on line %d is never closed", filepath.Base(csvPath), perr.Line)
		} else {
			v.errorf("%s: %v", filepath.Base(csvPath), err)
		}
		return
	}

	if len(rows) == 0 {
		v.warnf("%s is empty", filepath.Base(csvPath))
		return
	}

	v.validateHeader(rows[0])

	fortunes := deck.MapFortunesFunc(rows, func(row int, reason deck.SkipReason) {
		switch reason {
		case deck.SkipMissingColumn:
			v.errorf("header must contain %q and %q columns", deck.ColumnID, deck.ColumnTitle)
		case deck.SkipBlankRow:
			// Blank lines are common padding; not worth a warning.
		default:
			v.warnf("row %d skipped: %s", row, reason)
		}
	})

	if len(fortunes) == 0 {
		v.warnf("no fortunes found")
		return
	}

	seen := make(map[string]int, len(fortunes))
	for _, f := range fortunes {
		seen[f.ID]++
	}
	var dups []string
	for id, n := range seen {
		if n > 1 {
			dups = append(dups, id)
		}
	}
	slices.Sort(dups)
	for _, id := range dups {
		v.warnf("duplicate fortune id: %s (%d rows)", id, seen[id])
	}
}

// validateHeader warns about labels the loader will not read or will shadow.
func (v *Validator) validateHeader(header []string) {
	known := deck.KnownColumns()
	counts := make(map[string]int)
	var unknown []string

	for _, cell := range header {
		label := strings.ToLower(strings.TrimSpace(cell))
		if label == "" {
			continue
		}
		counts[label]++
		if counts[label] == 1 && !slices.Contains(known, label) {
			unknown = append(unknown, label)
		}
	}

	for _, label := range known {
		if counts[label] > 1 {
			v.warnf("column %q appears %d times, the last one is used", label, counts[label])
		}
	}
	if len(unknown) > 0 {
		v.warnf("unknown columns ignored: %s", strings.Join(unknown, ", "))
	}
}
