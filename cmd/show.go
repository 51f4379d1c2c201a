package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [fortune_id]",
	Short: "Display a specific fortune as a card",
	Long: `Show prints the fortune with the given ID as a vertical card.

You can specify a deck using the --deck flag, which will look for the deck
in your deck library (XDG_DATA_HOME/omikuji/decks) or as a relative path.
If no deck is specified, the default deck from your config will be used.

Examples:
  omikuji show 1
  omikuji show --deck shrine 12
  omikuji show --deck ./fortunes.csv 3`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := loadDeck(cmd)
		if err != nil {
			return err
		}

		f, err := d.GetFortune(args[0])
		if err != nil {
			return fmt.Errorf("error getting fortune: %w", err)
		}

		return printCard(cmd.OutOrStdout(), d, f)
	},
}

func init() {
	RootCmd.AddCommand(showCmd)
	addDeckFlag(showCmd)
}
