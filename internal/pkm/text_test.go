package pkm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JohnDeved/gts-go/internal/data"
)

func setDataDir(t *testing.T) {
	t.Helper()
	data.Dir = "../../data"
}

func TestEncodeDecodeNameGen4RoundTrip(t *testing.T) {
	setDataDir(t)
	raw, err := encodeNameGen4("PIKA", nicknameByteLen)
	require.NoError(t, err)
	assert.Len(t, raw, nicknameByteLen)

	name, err := decodeNameGen4(raw)
	require.NoError(t, err)
	assert.Equal(t, "PIKA", name)
}

func TestDecodeNameGen4MissingTerminator(t *testing.T) {
	setDataDir(t)
	raw, err := encodeNameGen4("AB", 4)
	require.NoError(t, err)
	// Overwrite the terminator with a valid character code so no
	// 0xFFFF ever appears.
	raw[2], raw[3] = raw[0], raw[1]
	_, err = decodeNameGen4(raw)
	assert.ErrorIs(t, err, ErrUnencodableName)
}

func TestEncodeDecodeNameGen5RoundTrip(t *testing.T) {
	raw, err := encodeNameGen5("Ash", trainerNameByteLen)
	require.NoError(t, err)
	assert.Len(t, raw, trainerNameByteLen)

	name, err := decodeNameGen5(raw)
	require.NoError(t, err)
	assert.Equal(t, "Ash", name)
}

func TestEncodeNameGen5TruncatesToFit(t *testing.T) {
	raw, err := encodeNameGen5("ThisNameIsWayTooLongToFit", 8)
	require.NoError(t, err)
	assert.Len(t, raw, 8)

	name, err := decodeNameGen5(raw)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(name), 3)
}
