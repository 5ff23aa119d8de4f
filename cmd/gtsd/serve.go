package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/JohnDeved/gts-go/internal/chooser"
	"github.com/JohnDeved/gts-go/internal/config"
	"github.com/JohnDeved/gts-go/internal/control"
	"github.com/JohnDeved/gts-go/internal/dnsproxy"
	"github.com/JohnDeved/gts-go/internal/httpgts"
)

var (
	dnsListenAddr     string
	httpListenAddr    string
	upstreamDNS       string
	controlListenAddr string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the DNS proxy and HTTP server together (the default)",
	Long: `serve runs the DNS proxy (spoofing gamestats2.gs.nintendowifi.net to
this host) and the GTS HTTP server concurrently. It is gtsd's only
mode in the original implementation; either server's fatal error tears
down the process.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&dnsListenAddr, "dns-listen", ":53", "address the DNS proxy listens on")
	serveCmd.Flags().StringVar(&httpListenAddr, "http-listen", ":80", "address the HTTP server listens on")
	serveCmd.Flags().StringVar(&upstreamDNS, "upstream-dns", dnsproxy.DefaultUpstream, "upstream DNS server for everything but the GTS hostname")
	serveCmd.Flags().StringVar(&controlListenAddr, "control-listen", control.DefaultAddr, "loopback address gtsd inject talks to")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	if err := config.RequirePrivilege(insecureSkipPrivilegeCheck); err != nil {
		return err
	}

	saver, err := config.NewFileSaver(saveDir)
	if err != nil {
		return err
	}

	ch := chooser.New()
	srv := httpgts.NewServer(ch, saver)
	httpServer := &http.Server{Addr: httpListenAddr, Handler: srv.Handler()}
	controlServer := &http.Server{Addr: controlListenAddr, Handler: control.Handler(ch)}

	proxy, err := dnsproxy.New(upstreamDNS)
	if err != nil {
		return fmt.Errorf("gtsd: starting DNS proxy: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := ch.Run(ctx, "."); err != nil {
			log.Warn().Err(err).Msg("gtsd: file chooser exited")
		}
	}()

	// The control listener is auxiliary: gtsd inject needs it, but its
	// failure (e.g. the port is already taken) should not take down the
	// DNS/HTTP servers that are the actual GTS impersonation.
	go func() {
		log.Info().Str("addr", controlListenAddr).Msg("gtsd: control listener for `gtsd inject`")
		if err := controlServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Warn().Err(err).Msg("gtsd: control listener failed")
		}
	}()

	// errgroup-style fan-in: whichever of the two servers fails first
	// wins the race and tears the other down, mirroring the original's
	// futures::future::join of two independently-failing futures
	// (SPEC_FULL.md §5).
	errc := make(chan error, 2)
	go func() {
		log.Info().Str("addr", dnsListenAddr).Msg("gtsd: DNS proxy listening")
		errc <- proxy.ListenAndServe(ctx, dnsListenAddr)
	}()
	go func() {
		log.Info().Str("addr", httpListenAddr).Msg("gtsd: HTTP server listening")
		err := httpServer.ListenAndServe()
		if err == http.ErrServerClosed {
			err = nil
		}
		errc <- err
	}()

	go func() {
		<-ctx.Done()
		_ = httpServer.Shutdown(context.Background())
		_ = controlServer.Shutdown(context.Background())
	}()

	if err := <-errc; err != nil {
		return fmt.Errorf("gtsd: server failed: %w", err)
	}
	return <-errc
}
