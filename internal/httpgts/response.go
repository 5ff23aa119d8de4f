package httpgts

import (
	"net/http"

	"github.com/JohnDeved/gts-go/internal/gts"
)

// gtsHeaders are the IIS-impersonating headers both generations send
// (spec.md §4.8). They are cosmetic: no real Pokémon game inspects
// them, but gts_response_gen4/gen5 in the original set them regardless.
var gtsHeaders = [][2]string{
	{"Server", "Microsoft-IIS/6.0"},
	{"P3P", `CP="NOI ADMa OUR STP"`},
	{"cluster-server", "aphexweb3"},
	{"X-Server-Name", "AW4"},
	{"X-Powered-By", "ASP.NET"},
	{"Content-Type", "text/html"},
	{"Set-Cookie", "ASPSESSIONIDQCDBDDQS=JFDOAMPAGACBDMLNLFBCCNCI; path=/"},
	{"Cache-control", "private"},
}

// writeGen4 frames body with the shared GTS headers and writes it
// verbatim: Gen-4 responses never get a footer.
func writeGen4(w http.ResponseWriter, body []byte) {
	h := w.Header()
	for _, kv := range gtsHeaders {
		h.Add(kv[0], kv[1])
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

// writeGen5 is writeGen4 plus the §4.6 footer on non-empty bodies.
func writeGen5(w http.ResponseWriter, body []byte) {
	writeGen4(w, gts.AppendGen5Footer(body))
}
