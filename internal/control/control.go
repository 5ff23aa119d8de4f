// Package control is the loopback-only side channel `gtsd inject` uses
// to stage a file in an already-running `gtsd serve` process, since the
// two are separate OS processes and the chooser's staged file lives in
// the server's memory (SPEC_FULL.md §1, "a non-interactive alternative
// to the stdin prompt, useful for scripting").
package control

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/JohnDeved/gts-go/internal/chooser"
)

// DefaultAddr is the loopback address gtsd serve listens on and gtsd
// inject talks to by default.
const DefaultAddr = "127.0.0.1:7890"

// Handler returns an http.Handler exposing a single POST /stage
// endpoint: the request body is an absolute path, validated and staged
// via ch.Stage.
func Handler(ch *chooser.Chooser) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /stage", func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(io.LimitReader(r.Body, 4096))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := ch.Stage(string(body)); err != nil {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		w.WriteHeader(http.StatusOK)
	})
	return mux
}

// Stage tells the gtsd serve process listening on addr to stage path.
func Stage(addr, path string) error {
	resp, err := http.Post(fmt.Sprintf("http://%s/stage", addr), "text/plain", strings.NewReader(path))
	if err != nil {
		return fmt.Errorf("control: contacting gtsd serve at %s: %w", addr, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("control: gtsd serve rejected %s: %s", path, body)
	}
	return nil
}
