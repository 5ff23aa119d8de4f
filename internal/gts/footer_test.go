package gts

import (
	"crypto/sha1"
	"encoding/base64"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendGen5Footer_EmptyBodyUnchanged(t *testing.T) {
	assert.Empty(t, AppendGen5Footer(nil))
	assert.Equal(t, []byte{}, AppendGen5Footer([]byte{}))
}

func TestAppendGen5Footer_MatchesReferenceComputation(t *testing.T) {
	body := []byte{0x0c, 0x00}

	got := AppendGen5Footer(body)
	require.Greater(t, len(got), len(body))
	assert.Equal(t, body, got[:len(body)])

	encoded := base64.URLEncoding.EncodeToString(body)
	h := sha1.New()
	h.Write([]byte(gen5Salt))
	h.Write([]byte(encoded))
	h.Write([]byte(gen5Salt))
	want := hex.EncodeToString(h.Sum(nil))

	assert.Equal(t, want, string(got[len(body):]))
	assert.Len(t, got, len(body)+sha1.Size*2)
}
