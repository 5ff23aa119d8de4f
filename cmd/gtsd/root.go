package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/JohnDeved/gts-go/internal/config"
	"github.com/JohnDeved/gts-go/internal/data"
)

var (
	dataDir                    string
	saveDir                    string
	logLevel                   string
	dev                        bool
	insecureSkipPrivilegeCheck bool
)

var rootCmd = &cobra.Command{
	Use:   "gtsd",
	Short: "Impersonate the Nintendo GTS for Gen IV/V Pokémon games",
	Long: `gtsd redirects a Gen IV/V game's GTS traffic to itself via DNS spoofing
and answers the GTS HTTP endpoints, so a .pkm/.pk4/.pk5 file can be
injected into a running game and a deposited Pokémon captured to disk.

With no subcommand, gtsd runs "serve".`,
	RunE: runServe,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.SetupLogging(dev, logLevel)
		data.Dir = dataDir
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", envOr("GTSD_DATA_DIR", "data"), "directory containing the static JSON tables")
	rootCmd.PersistentFlags().StringVar(&saveDir, "save-dir", envOr("GTSD_SAVE_DIR", "pokemon"), "directory deposited Pokémon are saved to")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level override (trace/debug/info/warn/error); defaults to debug in dev builds, info otherwise")
	rootCmd.PersistentFlags().BoolVar(&dev, "dev", false, "use a human-readable console logger instead of JSON")
	rootCmd.PersistentFlags().BoolVar(&insecureSkipPrivilegeCheck, "insecure-skip-privilege-check", false, "skip the root/CAP_NET_BIND_SERVICE check (useful under container port-remapping)")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
