package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/key"
	"github.com/spf13/cobra"

	"github.com/zjrosen/quill/internal/keys"
	"github.com/zjrosen/quill/internal/vim"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Print the Normal and Insert mode keymaps",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		out := cmd.OutOrStdout()
		if err := printKeymap(out, vim.ModeNormal, keys.Normal.FullHelp()); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(out); err != nil {
			return err
		}
		if err := printKeymap(out, vim.ModeInsert, keys.Insert.FullHelp()); err != nil {
			return err
		}
		_, err := fmt.Fprintln(out, "\nIn INSERT mode any other printable key is inserted at the cursor.")
		return err
	},
}

func init() {
	rootCmd.AddCommand(keysCmd)
}

func printKeymap(w io.Writer, mode vim.Mode, groups [][]key.Binding) error {
	if _, err := fmt.Fprintf(w, "%s\n", mode); err != nil {
		return err
	}
	for _, group := range groups {
		for _, b := range group {
			h := b.Help()
			if _, err := fmt.Fprintf(w, "  %-10s %s\n", h.Key, h.Desc); err != nil {
				return err
			}
		}
	}
	return nil
}
