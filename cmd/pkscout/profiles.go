package main

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	profileNameStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	profileDimStyle  = lipgloss.NewStyle().Faint(true)
)

// profilesCmd lists the configured search profiles.
var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List configured search profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		names := cfg.ProfileNames()
		sort.Strings(names)

		w := cmd.OutOrStdout()
		for _, name := range names {
			p := cfg.Profiles[name]
			marker := "  "
			if name == cfg.DefaultProfile {
				marker = "* "
			}

			inclusion := p.Inclusion
			if inclusion == "" {
				inclusion = "all"
			}
			if inclusion == "fraction" {
				inclusion = fmt.Sprintf("fraction (%d%%)", p.Percent)
			}

			fmt.Fprintf(w, "%s%s  %s\n", marker, profileNameStyle.Render(name),
				profileDimStyle.Render("inclusion: "+inclusion))
			if p.Sort != "" {
				fmt.Fprintf(w, "    %s\n", profileDimStyle.Render("sort: "+p.Sort))
			}
		}

		fmt.Fprintln(w)
		fmt.Fprintln(w, profileDimStyle.Render("* default profile"))
		return nil
	},
}
