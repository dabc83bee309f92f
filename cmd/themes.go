package cmd

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/zjrosen/quill/internal/config"
	"github.com/zjrosen/quill/internal/ui/styles"
)

var themeSet string

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List theme presets, or save one with --set",
	Long: `List the built-in theme presets.

With --set the chosen preset is written to theme.preset in the config file
that was loaded (or ~/.config/quill/config.yaml). Comments and other
settings in the file are kept.

Examples:
  quill themes
  quill themes --set nord`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		out := cmd.OutOrStdout()

		if themeSet != "" {
			if _, ok := styles.Presets[themeSet]; !ok {
				return fmt.Errorf("unknown theme preset: %s", themeSet)
			}
			path := configPath()
			if err := config.SaveThemePreset(path, themeSet); err != nil {
				return fmt.Errorf("saving theme: %w", err)
			}
			_, err := fmt.Fprintf(out, "theme.preset set to %s in %s\n", themeSet, path)
			return err
		}

		current := cfg.Theme.Preset
		if current == "" {
			current = "default"
		}
		names := make([]string, 0, len(styles.Presets))
		for name := range styles.Presets {
			names = append(names, name)
		}
		slices.Sort(names)

		for _, name := range names {
			marker := " "
			if name == current {
				marker = "*"
			}
			if _, err := fmt.Fprintf(out, "%s %-18s %s\n", marker, name, styles.Presets[name].Description); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	themesCmd.Flags().StringVar(&themeSet, "set", "", "save this preset to the config file")
	rootCmd.AddCommand(themesCmd)
}
