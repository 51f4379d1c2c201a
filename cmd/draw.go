package cmd

import (
	"bufio"
	"fmt"
	"strings"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arcanaland/omikuji/internal/deck"
	"github.com/arcanaland/omikuji/internal/draw"
)

var drawCmd = &cobra.Command{
	Use:   "draw",
	Short: "Draw a random fortune",
	Long: `Draw picks a random fortune from the deck and prints it as a card.

With --interactive, draw keeps the card on screen and reads commands:
  enter or d   draw again (never the same fortune twice in a row)
  c            clear the card
  s            save the card as an image
  q            quit`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := loadDeck(cmd)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(d.Fortunes) == 0 {
			printEmpty(out, d)
			return nil
		}

		board := draw.NewBoard(d.Fortunes, nil)
		interactive, _ := cmd.Flags().GetBool("interactive")
		if !interactive {
			f, _ := board.Current()
			return printCard(out, d, f)
		}

		return runInteractive(cmd, d, board)
	},
}

func init() {
	RootCmd.AddCommand(drawCmd)
	addDeckFlag(drawCmd)
	addExportFlags(drawCmd)
	drawCmd.Flags().BoolP("interactive", "i", false, "Keep drawing until you quit")
}

// runInteractive reads one command per line until q or end of input.
func runInteractive(cmd *cobra.Command, d *deck.Deck, board *draw.Board) error {
	out := cmd.OutOrStdout()
	scanner := bufio.NewScanner(cmd.InOrStdin())

	showBoard := func() error {
		f, ok := board.Current()
		if !ok {
			fmt.Fprintln(out, "\n  (cleared)")
		} else if err := printCard(out, d, f); err != nil {
			return err
		}
		fmt.Fprint(out, colorize.CyanString("[enter] draw again  [c] clear  [s] save image  [q] quit > "))
		return nil
	}

	if err := showBoard(); err != nil {
		return err
	}

	for scanner.Scan() {
		switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
		case "", "d":
			board.Draw()
			logger.Debug("Drew fortune", zap.Int("index", board.Index()))
		case "c":
			board.Clear()
		case "s":
			f, ok := board.Current()
			if !ok {
				fmt.Fprintln(out, "Nothing to save. Draw a fortune first.")
				break
			}
			if err := exportCard(cmd, d, f); err != nil {
				// Keep the session alive; the card is still on screen.
				fmt.Fprintln(out, colorize.RedString("Error: %v", err))
			}
		case "q", "quit", "exit":
			return nil
		default:
			fmt.Fprintln(out, "Unknown command.")
		}

		if err := showBoard(); err != nil {
			return err
		}
	}

	return scanner.Err()
}
