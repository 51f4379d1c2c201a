// Package export saves rendered fortunes as PNG images.
package export

import (
	"fmt"
	"image"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/arcanaland/omikuji/internal/render"
)

const (
	// MaxScale caps the export scale factor.
	MaxScale = 3.0

	filePrefix = "omikuji"
	timeLayout = "20060102T150405"
)

// Rasterizer turns a card surface into an image at the given scale.
type Rasterizer interface {
	Rasterize(s *render.Surface, scale float64) (image.Image, error)
}

// ScaleFor picks an export scale for a display's device pixel ratio:
// 2 on high-density displays, 1.5 otherwise.
func ScaleFor(devicePixelRatio float64) float64 {
	scale := 1.5
	if devicePixelRatio > 1 {
		scale = 2
	}
	return math.Min(MaxScale, scale)
}

// ClampScale limits an explicit scale to (0, MaxScale].
func ClampScale(scale float64) (float64, error) {
	if scale <= 0 || math.IsNaN(scale) {
		return 0, fmt.Errorf("scale must be positive, got %v", scale)
	}
	return math.Min(MaxScale, scale), nil
}

// FileName returns the export file name for a fortune ID drawn at t.
func FileName(id string, t time.Time) string {
	base := filePrefix
	if id = sanitize(id); id != "" {
		base = filePrefix + "-" + id
	}
	return fmt.Sprintf("%s-%s.png", base, t.UTC().Format(timeLayout))
}

// sanitize keeps an ID from escaping the export directory.
func sanitize(id string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', 0:
			return '_'
		}
		return r
	}, strings.TrimSpace(id))
}

// Result describes a saved export.
type Result struct {
	Path  string
	Image image.Image
}

// Exporter writes fortune cards to a directory.
type Exporter struct {
	Rasterizer Rasterizer
	Dir        string
	Now        func() time.Time
	Logger     *zap.Logger
}

// New creates an Exporter writing into dir.
func New(r Rasterizer, dir string, logger *zap.Logger) *Exporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Exporter{
		Rasterizer: r,
		Dir:        dir,
		Now:        time.Now,
		Logger:     logger,
	}
}

// Save rasterizes s and writes it as a PNG.
func (e *Exporter) Save(s *render.Surface, scale float64) (*Result, error) {
	img, err := e.Rasterizer.Rasterize(s, scale)
	if err != nil {
		return nil, fmt.Errorf("failed to render card: %w", err)
	}

	if err := os.MkdirAll(e.Dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create export directory: %w", err)
	}

	path := filepath.Join(e.Dir, FileName(s.Fortune.ID, e.Now()))
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return nil, fmt.Errorf("failed to encode png: %w", err)
	}
	if err := file.Close(); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", path, err)
	}

	e.Logger.Debug("Exported card",
		zap.String("id", s.Fortune.ID),
		zap.String("path", path),
		zap.Float64("scale", scale),
		zap.Int("width", img.Bounds().Dx()),
		zap.Int("height", img.Bounds().Dy()))

	return &Result{Path: path, Image: img}, nil
}
