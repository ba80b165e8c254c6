package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pawmart/pawmart/internal/theme"
	domain "github.com/pawmart/pawmart/pkg/types"
)

func themeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "theme [light|dark|toggle]",
		Short: "Show or change the colour theme",
		Example: `  pawmart theme
  pawmart theme dark
  pawmart theme toggle`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{string(domain.ThemeLight), string(domain.ThemeDark), "toggle"},
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			t := a.state.Theme()
			switch {
			case len(args) == 0:
			case args[0] == "toggle":
				if t, err = a.state.ToggleTheme(); err != nil {
					return err
				}
			default:
				t = domain.Theme(args[0])
				if err := a.state.SetTheme(t); err != nil {
					return err
				}
			}

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, theme.NewStyles(w, t).Badge.Render("theme: "+string(t)))
			return nil
		},
	}
}
