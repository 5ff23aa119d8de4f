package pkm

import (
	"encoding/binary"
	"fmt"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/JohnDeved/gts-go/internal/data"
)

const nameTerminator = 0xFFFF

// EncodeName encodes name for the given generation, 0xFFFF-terminated
// and zero-padded to byteLen. Exported for internal/gts, which encodes
// trainer names into the GTSData reception layout using the same rules
// as the Pokémon record codec (spec.md §4.5).
func EncodeName(name string, byteLen int, isGen5 bool) ([]byte, error) {
	return encodeName(name, byteLen, isGen5)
}

// DecodeName is the inverse of EncodeName.
func DecodeName(raw []byte, isGen5 bool) (string, error) {
	return decodeName(raw, isGen5)
}

// utf16LE is the transcoder used for Gen-5 names: the cartridge's
// UTF-16LE text fields, with no byte-order mark.
var utf16LE = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// encodeNameGen4 encodes a display name into the Gen-4 custom character
// map, 2 bytes per code unit, 0xFFFF-terminated, zero-padded to
// byteLen. Grounded on gts-rs's encode_name_gen4.
func encodeNameGen4(name string, byteLen int) ([]byte, error) {
	out := make([]byte, byteLen)
	i := 0
	for _, r := range name {
		if i+2 > byteLen-2 { // always leave room for the terminator.
			break
		}
		id, ok := data.CharMap().ID(r)
		if !ok {
			return nil, fmt.Errorf("%w: character %q has no Gen-4 code point", ErrUnencodableName, r)
		}
		binary.LittleEndian.PutUint16(out[i:], id)
		i += 2
	}
	binary.LittleEndian.PutUint16(out[i:], nameTerminator)
	for j := i + 2; j+1 < byteLen; j += 2 {
		binary.LittleEndian.PutUint16(out[j:], nameTerminator)
	}
	return out, nil
}

// decodeNameGen4 is the inverse of encodeNameGen4.
func decodeNameGen4(raw []byte) (string, error) {
	var runes []rune
	for i := 0; i+1 < len(raw); i += 2 {
		id := binary.LittleEndian.Uint16(raw[i:])
		if id == nameTerminator {
			return string(runes), nil
		}
		r, ok := data.CharMap().Name(id)
		if !ok {
			return "", fmt.Errorf("%w: code point 0x%04X has no Gen-4 character", ErrUnencodableName, id)
		}
		runes = append(runes, r)
	}
	return "", fmt.Errorf("%w: Gen-4 name missing 0xFFFF terminator", ErrUnencodableName)
}

// encodeNameGen5 encodes a display name as UTF-16LE via x/text's
// unicode transcoder, 0xFFFF-terminated, zero-padded to byteLen.
// Grounded on gts-rs's encode_name_gen5 (there, String::encode_utf16;
// here, golang.org/x/text/encoding/unicode).
func encodeNameGen5(name string, byteLen int) ([]byte, error) {
	body, err := utf16LE.NewEncoder().Bytes([]byte(name))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnencodableName, err)
	}
	if len(body)+2 > byteLen {
		body = body[:(byteLen/2-1)*2]
	}
	out := make([]byte, byteLen)
	i := copy(out, body)
	for j := i; j+1 < byteLen; j += 2 {
		binary.LittleEndian.PutUint16(out[j:], nameTerminator)
	}
	return out, nil
}

// decodeNameGen5 is the inverse of encodeNameGen5.
func decodeNameGen5(raw []byte) (string, error) {
	end := -1
	for i := 0; i+1 < len(raw); i += 2 {
		if binary.LittleEndian.Uint16(raw[i:]) == nameTerminator {
			end = i
			break
		}
	}
	if end == -1 {
		return "", fmt.Errorf("%w: Gen-5 name missing 0xFFFF terminator", ErrUnencodableName)
	}
	out, _, err := transform.Bytes(utf16LE.NewDecoder(), raw[:end])
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnencodableName, err)
	}
	return string(out), nil
}
