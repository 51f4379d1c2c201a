package cmd

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/arcanaland/omikuji/internal/config"
	"github.com/arcanaland/omikuji/internal/deck"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

//go:embed sample_fortunes.csv
var sampleFortunes string

const sampleDeckToml = `[deck]
id = "default"
name = "おみくじ"
description = "Sample fortunes installed by omikuji deck init"
`

// deckCmd represents the deck command group
var deckCmd = &cobra.Command{
	Use:   "deck",
	Short: "Manage fortune decks in your deck library",
	Long:  `Commands for managing fortune decks in your deck library.`,
}

// deckListCmd represents the deck list command
var deckListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List available decks in your deck library",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		libraryPath := config.GetDeckLibraryPath()

		// Check if deck library exists
		if _, err := os.Stat(libraryPath); os.IsNotExist(err) {
			fmt.Fprintf(out, "Deck library at %s does not exist.\n", libraryPath)
			fmt.Fprintln(out, "Run 'omikuji deck init' to create it.")
			return nil
		}

		libraryPath, err := filepath.EvalSymlinks(libraryPath)
		if err != nil {
			return fmt.Errorf("error resolving symbolic link: %w", err)
		}

		defaultDeck, err := config.GetDefaultDeck()
		if err != nil {
			return fmt.Errorf("error getting default deck: %w", err)
		}

		entries, err := os.ReadDir(libraryPath)
		if err != nil {
			return fmt.Errorf("error reading deck library: %w", err)
		}

		found := 0
		for _, entry := range entries {
			// Resolve the symbolic link or regular entry
			entryPath := filepath.Join(libraryPath, entry.Name())
			fileInfo, err := os.Stat(entryPath)
			if err != nil {
				logger.Warn("Cannot resolve deck entry", zap.String("entry", entry.Name()), zap.Error(err))
				continue
			}
			if !fileInfo.IsDir() && !strings.EqualFold(filepath.Ext(entry.Name()), ".csv") {
				continue
			}

			d, err := deck.LoadDeck(entryPath, logger)
			if err != nil {
				logger.Debug("Skipping invalid deck", zap.String("entry", entry.Name()), zap.Error(err))
				continue
			}

			found++
			marker, suffix := " ", ""
			if entry.Name() == defaultDeck {
				marker, suffix = "*", " [DEFAULT]"
			}
			fmt.Fprintf(out, "%s %s (%s, %d fortunes)%s\n", marker, entry.Name(), d.Name, len(d.Fortunes), suffix)
		}

		if found == 0 {
			fmt.Fprintln(out, "No decks found in your deck library.")
			fmt.Fprintln(out, "You can add decks by copying them to:", libraryPath)
		}
		return nil
	},
}

// deckSetDefaultCmd represents the deck set-default command
var deckSetDefaultCmd = &cobra.Command{
	Use:   "set-default [deck_name]",
	Short: "Set the default deck",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deckName := args[0]

		deckPath, err := config.GetDeckPath(deckName)
		if err != nil {
			return err
		}

		// Try to load the deck to make sure it's valid
		if _, err := deck.LoadDeck(deckPath, logger); err != nil {
			return fmt.Errorf("not a valid deck: %w", err)
		}

		if err := config.SetDefaultDeck(deckName); err != nil {
			return fmt.Errorf("error setting default deck: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Default deck set to: %s\n", deckName)
		return nil
	},
}

// deckInitCmd represents the deck init command
var deckInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the deck library with a sample deck",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		libraryPath := config.GetDeckLibraryPath()

		if err := os.MkdirAll(libraryPath, 0755); err != nil {
			return fmt.Errorf("error creating deck library: %w", err)
		}
		fmt.Fprintln(out, "Deck library initialized at:", libraryPath)

		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("error initializing config: %w", err)
		}
		fmt.Fprintln(out, "Config file initialized at:", config.GetConfigFilePath())

		samplePath := filepath.Join(libraryPath, cfg.DefaultDeck)
		if _, err := os.Stat(samplePath); err == nil {
			return nil
		}
		if err := writeSampleDeck(samplePath); err != nil {
			return err
		}
		fmt.Fprintln(out, "Sample deck installed at:", samplePath)
		return nil
	},
}

// writeSampleDeck installs the bundled fortunes as a deck directory
func writeSampleDeck(deckPath string) error {
	if err := os.MkdirAll(deckPath, 0755); err != nil {
		return fmt.Errorf("error creating sample deck: %w", err)
	}
	files := map[string]string{
		deck.ConfigFile:   sampleDeckToml,
		deck.FortunesFile: sampleFortunes,
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(deckPath, name), []byte(content), 0644); err != nil {
			return fmt.Errorf("error writing %s: %w", name, err)
		}
	}
	return nil
}

func init() {
	RootCmd.AddCommand(deckCmd)
	deckCmd.AddCommand(deckListCmd)
	deckCmd.AddCommand(deckSetDefaultCmd)
	deckCmd.AddCommand(deckInitCmd)
}
