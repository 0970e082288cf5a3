package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/brainquiz/internal/section"
)

var playCmd = &cobra.Command{
	Use:       "play <section>",
	Short:     "Jump straight into a section",
	Args:      cobra.ExactArgs(1),
	ValidArgs: sectionIDs(),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := section.Parse(args[0])
		if err != nil {
			return err
		}
		return runApp(cmd, &kind)
	},
}

func init() {
	playCmd.Flags().String("difficulty", "", "Preselected difficulty: easy, medium or hard")
}

func sectionIDs() []string {
	var ids []string
	for _, k := range section.All() {
		ids = append(ids, k.ID())
	}
	return ids
}
