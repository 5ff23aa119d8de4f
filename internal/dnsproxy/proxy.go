// Package dnsproxy answers DNS queries for a target game-server FQDN
// with this host's own address, and forwards everything else to a
// real upstream resolver unmodified (spec.md §4.7). Grounded on
// gts-rs's dns_server.rs.
package dnsproxy

import (
	"context"
	"fmt"
	"net"
	"strings"

	"github.com/miekg/dns"
	"github.com/rs/zerolog/log"
)

// TargetFQDN is the GTS hostname every DS Pokémon game queries to find
// the trade server. Only A records for this name are rewritten; every
// other query is forwarded untouched.
const TargetFQDN = "gamestats2.gs.nintendowifi.net."

// DefaultUpstream is the resolver queries are forwarded to when no
// override is configured, matching the original's hardcoded default.
const DefaultUpstream = "178.62.43.212:53"

// Proxy answers DNS queries on behalf of the impersonated GTS host.
type Proxy struct {
	client   *dns.Client
	upstream string
	localIP  net.IP
}

// New builds a Proxy that rewrites TargetFQDN to this host's own
// address and forwards every other query to upstream. The local
// address is discovered via a dummy UDP dial to upstream -- it never
// sends a packet, but the kernel picks the route (and therefore source
// address) a real query to that address would use, the same trick
// dns_server.rs's get_proxy_ip uses.
func New(upstream string) (*Proxy, error) {
	if upstream == "" {
		upstream = DefaultUpstream
	}
	conn, err := net.Dial("udp", upstream)
	if err != nil {
		return nil, fmt.Errorf("dnsproxy: discovering local address via %s: %w", upstream, err)
	}
	defer conn.Close()

	localAddr, ok := conn.LocalAddr().(*net.UDPAddr)
	if !ok {
		return nil, fmt.Errorf("dnsproxy: unexpected local address type %T", conn.LocalAddr())
	}

	return &Proxy{
		client:   new(dns.Client),
		upstream: upstream,
		localIP:  localAddr.IP,
	}, nil
}

// ListenAndServe runs the proxy on addr (UDP) until ctx is canceled.
func (p *Proxy) ListenAndServe(ctx context.Context, addr string) error {
	srv := &dns.Server{Addr: addr, Net: "udp", Handler: p}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()

	select {
	case <-ctx.Done():
		return srv.ShutdownContext(context.Background())
	case err := <-errc:
		return err
	}
}

// maxForwardAttempts bounds the retry loop dns_server.rs's run() uses
// when the upstream exchange errors (a dropped UDP packet is routine,
// not fatal).
const maxForwardAttempts = 3

// ServeDNS implements dns.Handler: forward to upstream, rewrite any
// A record answer for TargetFQDN to this host's address, and relay the
// (possibly modified) response back to the original client.
func (p *Proxy) ServeDNS(w dns.ResponseWriter, req *dns.Msg) {
	resp, err := p.forward(req)
	if err != nil {
		log.Warn().Err(err).Str("qname", questionName(req)).Msg("dnsproxy: upstream exchange failed")
		dns.HandleFailed(w, req)
		return
	}

	p.rewrite(resp)
	resp.Id = req.Id

	if err := w.WriteMsg(resp); err != nil {
		log.Warn().Err(err).Msg("dnsproxy: writing response to client failed")
	}
}

func (p *Proxy) forward(req *dns.Msg) (*dns.Msg, error) {
	var lastErr error
	for attempt := 0; attempt < maxForwardAttempts; attempt++ {
		resp, _, err := p.client.Exchange(req, p.upstream)
		if err == nil {
			return resp, nil
		}
		lastErr = err
	}
	return nil, fmt.Errorf("dnsproxy: exchange with %s: %w", p.upstream, lastErr)
}

// rewrite replaces every A record answering for TargetFQDN with this
// host's address, leaving every other record (and every other
// question) as the upstream returned it.
func (p *Proxy) rewrite(resp *dns.Msg) {
	for _, rr := range resp.Answer {
		a, ok := rr.(*dns.A)
		if !ok || !strings.EqualFold(a.Hdr.Name, TargetFQDN) {
			continue
		}
		a.A = p.localIP
	}
}

func questionName(m *dns.Msg) string {
	if len(m.Question) == 0 {
		return ""
	}
	return m.Question[0].Name
}
