package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/brainquiz/internal/config"
	"github.com/abhisek/brainquiz/internal/section"
)

var sectionsCmd = &cobra.Command{
	Use:   "sections",
	Short: "List the quiz sections and their rules",
	RunE: func(cmd *cobra.Command, args []string) error {
		configFile, _ := cmd.Flags().GetString("config")
		cfg, err := config.Load(configFile, flagBinder(cmd))
		if err != nil {
			return err
		}
		reg, err := cfg.Registry()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-16s  %-16s  %9s  %7s  %-10s  %s\n",
			"ID", "Title", "Questions", "Timer", "Difficulty", "Description")
		fmt.Fprintln(out, strings.Repeat("─", 90))

		for _, k := range section.All() {
			c, err := reg.Config(k)
			if err != nil {
				return err
			}
			timer := "-"
			if c.Timed() {
				timer = fmt.Sprintf("%ds", c.Seconds())
			}
			diff := "-"
			if c.HasDifficulty {
				diff = "yes"
			}
			fmt.Fprintf(out, "%-16s  %-16s  %9d  %7s  %-10s  %s\n",
				k.ID(), c.Title, c.TotalQuestions, timer, diff, c.Description)
		}
		return nil
	},
}

// sectionTitle maps a stored section ID to its display title.
func sectionTitle(id string) string {
	if k, err := section.Parse(id); err == nil {
		return k.Title()
	}
	return id
}
