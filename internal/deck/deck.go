package deck

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap"

	"github.com/arcanaland/omikuji/internal/fortune"
)

const (
	// FortunesFile is the dataset inside a deck directory.
	FortunesFile = "fortunes.csv"
	// ConfigFile holds optional deck metadata.
	ConfigFile = "deck.toml"
)

// Deck represents a set of fortunes to draw from
type Deck struct {
	ID          string
	Name        string
	Description string
	Path        string
	Labels      Labels

	// Fortunes in source order. Never modified after loading.
	Fortunes []fortune.Fortune
}

// Labels are the headings printed above each category column
type Labels struct {
	LuckyItem string
	Love      string
	Study     string
}

// DefaultLabels returns the stock Japanese headings.
func DefaultLabels() Labels {
	return Labels{
		LuckyItem: "ラッキー\nアイテム",
		Love:      "恋愛",
		Study:     "勉学",
	}
}

// LoadDeck loads a deck from a directory holding fortunes.csv and an
// optional deck.toml, or from a single CSV file.
func LoadDeck(deckPath string, logger *zap.Logger) (*Deck, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	info, err := os.Stat(deckPath)
	if err != nil {
		return nil, fmt.Errorf("deck not found: %s: %w", deckPath, err)
	}

	d := &Deck{
		Path:   deckPath,
		Labels: DefaultLabels(),
	}

	csvPath := deckPath
	if info.IsDir() {
		csvPath = filepath.Join(deckPath, FortunesFile)
		if err := d.loadConfig(); err != nil {
			return nil, err
		}
	}
	if d.ID == "" {
		d.ID = strings.TrimSuffix(filepath.Base(deckPath), filepath.Ext(deckPath))
	}
	if d.Name == "" {
		d.Name = d.ID
	}

	log := logger.With(zap.String("deck", d.ID), zap.String("path", csvPath))
	fortunes, err := LoadFunc(FileSource{Path: csvPath}, func(row int, reason SkipReason) {
		log.Debug("Skipping row", zap.Int("row", row), zap.String("reason", string(reason)))
	})
	if err != nil {
		return nil, fmt.Errorf("error loading %s: %w", csvPath, err)
	}
	d.Fortunes = fortunes

	log.Debug("Deck loaded", zap.Int("fortunes", len(fortunes)))
	return d, nil
}

// loadConfig reads deck.toml when present
func (d *Deck) loadConfig() error {
	configPath := filepath.Join(d.Path, ConfigFile)
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil
	}

	var config DeckConfig
	if _, err := toml.DecodeFile(configPath, &config); err != nil {
		return fmt.Errorf("error parsing %s: %w", ConfigFile, err)
	}

	d.ID = config.Deck.ID
	d.Name = config.Deck.Name
	d.Description = config.Deck.Description

	if config.Labels.LuckyItem != "" {
		d.Labels.LuckyItem = config.Labels.LuckyItem
	}
	if config.Labels.Love != "" {
		d.Labels.Love = config.Labels.Love
	}
	if config.Labels.Study != "" {
		d.Labels.Study = config.Labels.Study
	}

	return nil
}

// GetFortune gets a fortune by its ID. With duplicate IDs the first wins.
func (d *Deck) GetFortune(id string) (fortune.Fortune, error) {
	id = strings.TrimSpace(id)
	for _, f := range d.Fortunes {
		if f.ID == id {
			return f, nil
		}
	}
	return fortune.Fortune{}, fmt.Errorf("fortune not found: %s", id)
}

// Deck configuration structures
type DeckConfig struct {
	Deck   DeckSection  `toml:"deck"`
	Labels LabelSection `toml:"labels"`
}

type DeckSection struct {
	ID          string `toml:"id"`
	Name        string `toml:"name"`
	Description string `toml:"description"`
	Author      string `toml:"author"`
	Version     string `toml:"version"`
}

type LabelSection struct {
	LuckyItem string `toml:"lucky_item"`
	Love      string `toml:"love"`
	Study     string `toml:"study"`
}
