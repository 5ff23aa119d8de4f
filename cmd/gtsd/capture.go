package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/JohnDeved/gts-go/internal/chooser"
	"github.com/JohnDeved/gts-go/internal/config"
	"github.com/JohnDeved/gts-go/internal/control"
	"github.com/JohnDeved/gts-go/internal/httpgts"
)

var captureHTTPAddr string

var captureCmd = &cobra.Command{
	Use:   "capture",
	Short: "Run only the HTTP deposit endpoints, for testing against a live console",
	Long: `capture runs the GTS HTTP server without the DNS proxy, for exercising
the codec against a real console whose DNS is already redirected
elsewhere (e.g. a router-level rule pointing at this host).`,
	RunE: runCapture,
}

func init() {
	captureCmd.Flags().StringVar(&captureHTTPAddr, "http-listen", ":80", "address the HTTP server listens on")
	captureCmd.Flags().StringVar(&controlListenAddr, "control-listen", control.DefaultAddr, "loopback address gtsd inject talks to")
	rootCmd.AddCommand(captureCmd)
}

func runCapture(cmd *cobra.Command, args []string) error {
	if err := config.RequirePrivilege(insecureSkipPrivilegeCheck); err != nil {
		return err
	}

	saver, err := config.NewFileSaver(saveDir)
	if err != nil {
		return err
	}

	ch := chooser.New()
	srv := httpgts.NewServer(ch, saver)
	httpServer := &http.Server{Addr: captureHTTPAddr, Handler: srv.Handler()}
	controlServer := &http.Server{Addr: controlListenAddr, Handler: control.Handler(ch)}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		_ = httpServer.Shutdown(context.Background())
		_ = controlServer.Shutdown(context.Background())
	}()

	go func() {
		log.Info().Str("addr", controlListenAddr).Msg("gtsd: control listener for `gtsd inject`")
		if err := controlServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Warn().Err(err).Msg("gtsd: control listener failed")
		}
	}()

	log.Info().Str("addr", captureHTTPAddr).Msg("gtsd: HTTP server listening (DNS proxy not started)")
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
