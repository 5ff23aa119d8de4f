package httpgts

import (
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JohnDeved/gts-go/internal/chooser"
	"github.com/JohnDeved/gts-go/internal/pkm"
	"github.com/JohnDeved/gts-go/internal/pkmtype"
)

type fakeSaver struct {
	saved []*pkm.Pokemon
	err   error
}

func (f *fakeSaver) Save(p *pkm.Pokemon) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	f.saved = append(f.saved, p)
	return true, nil
}

func newServer() (*Server, *fakeSaver) {
	saver := &fakeSaver{}
	return NewServer(chooser.New(), saver), saver
}

func TestInfoEndpoint(t *testing.T) {
	s, _ := newServer()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/pokemondpds/worldexchange/info.asp", nil)
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, []byte{0x01, 0x00}, rec.Body.Bytes())
	assert.Equal(t, "Microsoft-IIS/6.0", rec.Header().Get("Server"))
}

func TestSearchEndpointIsEmpty(t *testing.T) {
	s, _ := newServer()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/syachi2ds/web/worldexchange/search.asp", nil)
	s.Handler().ServeHTTP(rec, req)
	assert.Empty(t, rec.Body.Bytes())
}

func TestSetProfileReturnsEightZeroBytes(t *testing.T) {
	s, _ := newServer()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/pokemondpds/common/setProfile.asp", nil)
	s.Handler().ServeHTTP(rec, req)
	assert.Equal(t, make([]byte, 8), rec.Body.Bytes())
}

func TestUnknownRouteIsEmptyOK(t *testing.T) {
	s, _ := newServer()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/pokemondpds/worldexchange/nonexistent.asp", nil)
	s.Handler().ServeHTTP(rec, req)
	assert.Equal(t, 200, rec.Code)
	assert.Empty(t, rec.Body.Bytes())
}

func TestSingleQueryParamReturnsToken(t *testing.T) {
	s, _ := newServer()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/syachi2ds/web/worldexchange/info.asp?foo=bar", nil)
	s.Handler().ServeHTTP(rec, req)
	assert.Equal(t, gtsToken, rec.Body.String())
}

func TestResultWithNothingStaged(t *testing.T) {
	s, _ := newServer()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/pokemondpds/worldexchange/result.asp", nil)
	s.Handler().ServeHTTP(rec, req)
	assert.Equal(t, []byte{0x05, 0x00}, rec.Body.Bytes())
}

func TestResultServesStagedPokemonForMatchingGen(t *testing.T) {
	s, _ := newServer()
	p := &pkm.Pokemon{
		Species:     1,
		TrainerID:   1,
		SecretID:    2,
		Language:    pkmtype.English,
		Gender:      pkmtype.Male,
		Nickname:    "BULBASAUR",
		OriginGame:  pkmtype.Diamond,
		TrainerName: "ASH",
		Ball:        pkmtype.PokeBall,
	}
	p.SetPID(0x1A000)

	raw, err := p.Serialize()
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "bulbasaur.pkm")
	require.NoError(t, os.WriteFile(path, raw, 0o644))
	require.NoError(t, s.chooser.Stage(path))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/pokemondpds/worldexchange/result.asp", nil)
	s.Handler().ServeHTTP(rec, req)

	assert.NotEqual(t, []byte{0x05, 0x00}, rec.Body.Bytes())
	assert.Greater(t, rec.Body.Len(), 2)
}

func TestPostEndpointAlwaysReturnsAck(t *testing.T) {
	// A second query param keeps this below the single-query-param
	// token shortcut (spec.md §4.8) so the post handler actually runs.
	s, saver := newServer()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/pokemondpds/worldexchange/post.asp?data=not-valid-base64!!&profileid=1", nil)
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, []byte{0x0c, 0x00}, rec.Body.Bytes())
	assert.Empty(t, saver.saved)
}
