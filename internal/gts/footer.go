package gts

import (
	"crypto/sha1"
	"encoding/base64"
	"encoding/hex"
)

// gen5Salt is the 20 ASCII bytes bracketing the Base64 body in the
// Gen-5 HTTP response footer (spec.md §4.6).
const gen5Salt = "HZEdGCzcGGLvguqUEKQN"

// AppendGen5Footer appends the SHA-1 salted hex footer to a non-empty
// Gen-5 HTTP response body: SHA1(SALT || base64url(body) || SALT),
// lowercase-hex-encoded. An empty body is returned unchanged (spec.md
// §4.6): there is nothing to authenticate and real GTS servers never
// footer an empty response.
func AppendGen5Footer(body []byte) []byte {
	if len(body) == 0 {
		return body
	}

	encoded := base64.URLEncoding.EncodeToString(body)

	h := sha1.New()
	h.Write([]byte(gen5Salt))
	h.Write([]byte(encoded))
	h.Write([]byte(gen5Salt))
	footer := hex.EncodeToString(h.Sum(nil))

	out := make([]byte, 0, len(body)+len(footer))
	out = append(out, body...)
	out = append(out, footer...)
	return out
}
