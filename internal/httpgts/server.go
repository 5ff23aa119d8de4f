// Package httpgts is the HTTP shell impersonating the Gen IV/V GTS web
// service (spec.md §4.8). Grounded on gts-rs's http_server.rs.
package httpgts

import (
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/JohnDeved/gts-go/internal/chooser"
	"github.com/JohnDeved/gts-go/internal/gts"
	"github.com/JohnDeved/gts-go/internal/pkm"
)

// gtsToken is returned, framed as a Gen-4 response, for any request
// carrying exactly one query parameter regardless of path -- the
// original's handle_request_gen4/gen5 middleware special-cases this
// before reaching endpoint routing.
const gtsToken = "c9KcX1Cry3QKS2Ai7yxL6QiQGeBGeQKR"

// Server serves the Gen-4 (/pokemondpds) and Gen-5 (/syachi2ds/web)
// GTS endpoint trees.
type Server struct {
	chooser *chooser.Chooser
	saver   Saver
}

// Saver persists a deposited Pokémon to disk. Implemented by
// internal/config's save routine (spec.md §5); kept as an interface
// here so the handler logic can be tested without real file I/O.
type Saver interface {
	Save(p *pkm.Pokemon) (saved bool, err error)
}

// NewServer builds a Server that stages files through ch and saves
// deposits through saver.
func NewServer(ch *chooser.Chooser, saver Saver) *Server {
	return &Server{chooser: ch, saver: saver}
}

// Handler returns the root http.Handler for both generation scopes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/pokemondpds/", s.scope(false, "/pokemondpds"))
	mux.Handle("/syachi2ds/web/", s.scope(true, "/syachi2ds/web"))
	return mux
}

// scope builds the handler for one generation's route tree: unknown
// subpaths get a bare empty 200 (mirroring the original's "no route
// matched" branch), single-query-param requests get the fixed token,
// and everything else is dispatched to the matching endpoint and
// wrapped in that generation's response framing.
func (s *Server) scope(isGen5 bool, prefix string) http.Handler {
	routes := map[string]func(*http.Request) []byte{
		"/common/setProfile.asp":    setProfile,
		"/worldexchange/info.asp":   info,
		"/worldexchange/search.asp": search,
		"/worldexchange/delete.asp": deleteEndpoint,
		"/worldexchange/post.asp":   s.post(isGen5),
		"/worldexchange/result.asp": s.result(isGen5),
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sub := strings.TrimPrefix(r.URL.Path, prefix)
		handler, ok := routes[sub]
		if !ok {
			log.Warn().Str("path", r.URL.Path).Msg("httpgts: no route found")
			w.WriteHeader(http.StatusOK)
			return
		}

		if len(r.URL.Query()) == 1 {
			writeGen4(w, []byte(gtsToken))
			return
		}

		body := handler(r)
		if isGen5 {
			writeGen5(w, body)
		} else {
			writeGen4(w, body)
		}
	})
}

func setProfile(*http.Request) []byte { return make([]byte, 8) }

func info(*http.Request) []byte {
	log.Info().Msg("httpgts: connection established")
	return []byte{0x01, 0x00}
}

func search(*http.Request) []byte { return []byte{} }

func deleteEndpoint(*http.Request) []byte { return []byte{0x01, 0x00} }

// post parses a Gen-4/Gen-5 deposit from the ?data= query parameter
// and saves it. The response is always 0C 00 -- success and internal
// failure are indistinguishable to the game (spec.md §4.8, §7); the
// difference is only logged.
func (s *Server) post(isGen5 bool) func(*http.Request) []byte {
	return func(r *http.Request) []byte {
		encoded := r.URL.Query().Get("data")
		deposit, err := gts.DepositFromBase64(encoded, isGen5)
		if err != nil {
			log.Warn().Err(err).Msg("httpgts: failed to decode deposit")
			return []byte{0x0c, 0x00}
		}

		saved, err := s.saver.Save(deposit.Pokemon)
		switch {
		case err != nil:
			log.Warn().Err(err).Msg("httpgts: failed to save deposited Pokémon")
		case saved:
			log.Info().Msg("httpgts: Pokémon saved")
		default:
			log.Info().Msg("httpgts: Pokémon already saved, skipping")
		}
		return []byte{0x0c, 0x00}
	}
}

// result serves the currently staged file as a reception, or 05 00 if
// nothing is staged. A generation mismatch between the staged Pokémon
// and the requesting scope is treated the same as nothing staged
// (spec.md §4.8): the chooser needs to be re-run for the right gen.
func (s *Server) result(isGen5 bool) func(*http.Request) []byte {
	return func(*http.Request) []byte {
		p, ok := s.chooser.Current()
		if !ok || p.IsGen5Boxed() != isGen5 {
			return []byte{0x05, 0x00}
		}

		body, err := gts.NewReception(p).Serialize()
		if err != nil {
			log.Error().Err(err).Msg("httpgts: failed to serialize staged reception")
			return []byte{0x05, 0x00}
		}
		return body
	}
}
