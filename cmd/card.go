package cmd

import (
	"fmt"
	"io"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arcanaland/omikuji/internal/config"
	"github.com/arcanaland/omikuji/internal/deck"
	"github.com/arcanaland/omikuji/internal/export"
	"github.com/arcanaland/omikuji/internal/fortune"
	"github.com/arcanaland/omikuji/internal/render"
)

// previewWidth is the width in cells of the ANSI preview of an export.
const previewWidth = 40

func addDeckFlag(c *cobra.Command) {
	c.Flags().StringP("deck", "d", "", "Specify a deck from your deck library or a path to a deck")
}

func addExportFlags(c *cobra.Command) {
	c.Flags().StringP("out", "o", "", "Directory to write images to (default from config)")
	c.Flags().Float64("scale", 0, "Image scale factor, at most 3 (overrides --pixel-ratio)")
	c.Flags().Float64("pixel-ratio", 0, "Device pixel ratio used to pick the scale (default from config)")
	c.Flags().String("font", "", "TrueType/OpenType font for the image (default from config)")
	c.Flags().Bool("preview", false, "Print the saved image as ANSI art")
}

// loadDeck loads the deck named by the --deck flag or the configured default.
func loadDeck(cmd *cobra.Command) (*deck.Deck, error) {
	deckFlag, _ := cmd.Flags().GetString("deck")

	deckPath, err := config.ResolveDeckPath(deckFlag)
	if err != nil {
		return nil, err
	}

	d, err := deck.LoadDeck(deckPath, logger)
	if err != nil {
		return nil, fmt.Errorf("error loading deck: %w", err)
	}
	return d, nil
}

// printCard prints the deck header and the card for f.
func printCard(out io.Writer, d *deck.Deck, f fortune.Fortune) error {
	fmt.Fprintln(out)
	fmt.Fprintln(out, "  "+colorize.CyanString("Deck: ")+colorize.HiWhiteString(d.Name))
	fmt.Fprintln(out, "  "+colorize.CyanString("ID:   ")+colorize.HiWhiteString(f.ID))
	fmt.Fprintln(out)

	return render.NewTerminal(out).Render(render.NewSurface(f, d.Labels))
}

// printEmpty tells the user the deck has nothing to draw.
func printEmpty(out io.Writer, d *deck.Deck) {
	fmt.Fprintf(out, "No fortunes found in deck %s.\n", d.Name)
	fmt.Fprintf(out, "Add rows to %s to get started.\n", deck.FortunesFile)
}

// exportSettings are export options after merging flags over config.
type exportSettings struct {
	dir      string
	scale    float64
	fontPath string
	fontSize float64
	preview  bool
}

func resolveExportSettings(cmd *cobra.Command) (*exportSettings, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	s := &exportSettings{
		dir:      cfg.ExportDir,
		fontPath: cfg.FontPath,
		fontSize: cfg.FontSize,
	}
	flags := cmd.Flags()

	if out, _ := flags.GetString("out"); out != "" {
		s.dir = out
	}
	if s.dir == "" {
		s.dir = "."
	}
	if font, _ := flags.GetString("font"); font != "" {
		s.fontPath = font
	}
	if s.fontSize <= 0 {
		s.fontSize = config.DefaultFontSize
	}
	s.preview, _ = flags.GetBool("preview")

	ratio := cfg.PixelRatio
	if r, _ := flags.GetFloat64("pixel-ratio"); r > 0 {
		ratio = r
	}
	s.scale = export.ScaleFor(ratio)

	if flags.Changed("scale") {
		scale, _ := flags.GetFloat64("scale")
		if s.scale, err = export.ClampScale(scale); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// exportCard saves the card for f and reports where it went.
func exportCard(cmd *cobra.Command, d *deck.Deck, f fortune.Fortune) error {
	settings, err := resolveExportSettings(cmd)
	if err != nil {
		return err
	}

	face, err := render.LoadFace(settings.fontPath, settings.fontSize)
	if err != nil {
		return err
	}
	if settings.fontPath == "" {
		logger.Warn("No font configured, non-ASCII text will not render; set font_path in config")
	}

	exporter := export.New(render.NewRaster(face), settings.dir, logger)
	res, err := exporter.Save(render.NewSurface(f, d.Labels), settings.scale)
	if err != nil {
		return fmt.Errorf("error saving image: %w", err)
	}

	out := cmd.OutOrStdout()
	if settings.preview {
		fmt.Fprintln(out)
		fmt.Fprint(out, render.ImageToANSI(res.Image, previewWidth))
	}
	fmt.Fprintln(out, "Saved image:", res.Path)

	logger.Debug("Export settings",
		zap.String("dir", settings.dir),
		zap.Float64("scale", settings.scale),
		zap.String("font", settings.fontPath))
	return nil
}
