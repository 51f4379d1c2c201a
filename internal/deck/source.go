package deck

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/arcanaland/omikuji/internal/fortune"
	"github.com/arcanaland/omikuji/internal/parser"
)

const byteOrderMark = "\uFEFF"

// Source supplies the raw fortune text. A missing dataset is reported with
// found == false rather than an error.
type Source interface {
	ReadFortunes() (text string, found bool, err error)
}

// FileSource reads fortunes from a file on disk.
type FileSource struct {
	Path string
}

// ReadFortunes implements Source.
func (s FileSource) ReadFortunes() (string, bool, error) {
	data, err := os.ReadFile(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading %s: %w", s.Path, err)
	}
	return strings.TrimPrefix(string(data), byteOrderMark), true, nil
}

// TextSource serves fortunes from memory.
type TextSource string

// ReadFortunes implements Source.
func (s TextSource) ReadFortunes() (string, bool, error) {
	return string(s), true, nil
}

// Load reads, parses and maps fortunes from src. A missing dataset yields
// an empty slice. Malformed quoting fails the whole load.
func Load(src Source) ([]fortune.Fortune, error) {
	return LoadFunc(src, nil)
}

// LoadFunc is Load with a hook for dropped rows.
func LoadFunc(src Source, onSkip SkipFunc) ([]fortune.Fortune, error) {
	text, found, err := src.ReadFortunes()
	if err != nil {
		return nil, err
	}
	if !found {
		return []fortune.Fortune{}, nil
	}

	rows, err := parser.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parsing fortunes: %w", err)
	}

	return MapFortunesFunc(rows, onSkip), nil
}
