package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zjrosen/quill/internal/config"
)

var hostSet string

var hostCmd = &cobra.Command{
	Use:   "host",
	Short: "Show the terminal driver, or save one with --set",
	Long: `Show the terminal driver used when no --host flag is given.

With --set the driver is written to host in the config file that was
loaded (or ~/.config/quill/config.yaml).

Examples:
  quill host
  quill host --set tea`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		out := cmd.OutOrStdout()

		if hostSet != "" {
			path := configPath()
			if err := config.SaveHost(path, hostSet); err != nil {
				return fmt.Errorf("saving host: %w", err)
			}
			_, err := fmt.Fprintf(out, "host set to %s in %s\n", hostSet, path)
			return err
		}

		current := cfg.Host
		if current == "" {
			current = config.HostTerm
		}
		_, err := fmt.Fprintln(out, current)
		return err
	},
}

func init() {
	hostCmd.Flags().StringVar(&hostSet, "set", "", `save "term" or "tea" to the config file`)
	rootCmd.AddCommand(hostCmd)
}
