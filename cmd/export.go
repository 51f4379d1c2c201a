package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arcanaland/omikuji/internal/draw"
)

var exportCmd = &cobra.Command{
	Use:   "export [fortune_id]",
	Short: "Save a fortune card as a PNG image",
	Long: `Export renders a fortune card to omikuji-<id>-<timestamp>.png.
Without a fortune ID a random fortune is drawn.

The scale defaults to 2 on high-density displays (pixel ratio above 1) and
1.5 otherwise. Japanese text needs a CJK font: pass --font or set font_path
in the config file.

Examples:
  omikuji export
  omikuji export 3 --font /usr/share/fonts/opentype/noto/NotoSansCJK-Regular.ttc
  omikuji export --scale 3 --out ~/Pictures --preview`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := loadDeck(cmd)
		if err != nil {
			return err
		}

		if len(args) == 1 {
			f, err := d.GetFortune(args[0])
			if err != nil {
				return fmt.Errorf("error getting fortune: %w", err)
			}
			return exportCard(cmd, d, f)
		}

		f, ok := draw.NewBoard(d.Fortunes, nil).Current()
		if !ok {
			printEmpty(cmd.OutOrStdout(), d)
			return nil
		}
		return exportCard(cmd, d, f)
	},
}

func init() {
	RootCmd.AddCommand(exportCmd)
	addDeckFlag(exportCmd)
	addExportFlags(exportCmd)
}
