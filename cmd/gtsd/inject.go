package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/JohnDeved/gts-go/internal/control"
)

var injectControlAddr string

var injectCmd = &cobra.Command{
	Use:   "inject <file>",
	Short: "Stage a .pkm/.pk4/.pk5 file for the next result.asp request",
	Long: `inject validates the given file and tells an already-running "gtsd serve"
to serve it as the next GTS reception, without the interactive file
chooser -- a scriptable alternative to the stdin prompt loop.`,
	Args: cobra.ExactArgs(1),
	RunE: runInject,
}

func init() {
	injectCmd.Flags().StringVar(&injectControlAddr, "control-addr", control.DefaultAddr, "control address of the running gtsd serve")
	rootCmd.AddCommand(injectCmd)
}

func runInject(cmd *cobra.Command, args []string) error {
	path, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("gtsd: resolving %s: %w", args[0], err)
	}
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("gtsd: %w", err)
	}
	if err := control.Stage(injectControlAddr, path); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "staged %s\n", path)
	return nil
}
