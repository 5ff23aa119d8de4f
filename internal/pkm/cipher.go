package pkm

import "encoding/binary"

// shuffleOrders is the canonical lexicographic list of the 24 orderings
// of (0,1,2,3), directly ported from gts-rs's determine_shuffle_block_order.
// Each entry says, for shuffled-block-position i, which of the four
// plaintext blocks (A=0,B=1,C=2,D=3) occupies it.
var shuffleOrders = [24][4]int{
	{0, 1, 2, 3}, {0, 1, 3, 2}, {0, 2, 1, 3}, {0, 2, 3, 1},
	{0, 3, 1, 2}, {0, 3, 2, 1}, {1, 0, 2, 3}, {1, 0, 3, 2},
	{1, 2, 0, 3}, {1, 2, 3, 0}, {1, 3, 0, 2}, {1, 3, 2, 0},
	{2, 0, 1, 3}, {2, 0, 3, 1}, {2, 1, 0, 3}, {2, 1, 3, 0},
	{2, 3, 0, 1}, {2, 3, 1, 0}, {3, 0, 1, 2}, {3, 0, 2, 1},
	{3, 1, 0, 2}, {3, 1, 2, 0}, {3, 2, 0, 1}, {3, 2, 1, 0},
}

const blockSize = 0x20

// shuffleBlockOrder returns the order in which the blocks A/B/C/D (at
// offsets 0x08..0x88) should be shuffled for a Pokémon with this PID.
//
// This is tested by property 3 (spec.md §8): the result is always a
// permutation of (0,1,2,3).
func shuffleBlockOrder(pid uint32) [4]int {
	order := (pid >> 13) & 0x1F % 24
	return shuffleOrders[order]
}

// shuffleBlocks reorders the four 32-byte blocks at data[0x08:0x88] per
// shuffleBlockOrder(pid): shuffled position i receives plaintext block
// order[i].
func shuffleBlocks(data []byte, pid uint32) {
	order := shuffleBlockOrder(pid)
	region := data[offSpecies:BoxedLen]
	var tmp [0x80]byte
	for i, blockID := range order {
		copy(tmp[i*blockSize:(i+1)*blockSize], region[blockID*blockSize:(blockID+1)*blockSize])
	}
	copy(region, tmp[:])
}

// unshuffleBlocks inverts shuffleBlocks.
func unshuffleBlocks(data []byte, pid uint32) {
	order := shuffleBlockOrder(pid)
	region := data[offSpecies:BoxedLen]
	var tmp [0x80]byte
	for i, blockID := range order {
		copy(tmp[blockID*blockSize:(blockID+1)*blockSize], region[i*blockSize:(i+1)*blockSize])
	}
	copy(region, tmp[:])
}

// encryptionStep runs the LCG-XOR stream cipher over region, seeded by
// seed, operating on 16-bit little-endian words (spec.md §4.4). The
// cipher is symmetric: running it twice with the same seed restores the
// original bytes (property 2, spec.md §8).
func encryptionStep(region []byte, seed uint32) {
	state := seed
	for i := 0; i+1 < len(region); i += 2 {
		state = state*0x41C64E6D + 0x6073
		word := binary.LittleEndian.Uint16(region[i:])
		word ^= uint16(state >> 16)
		binary.LittleEndian.PutUint16(region[i:], word)
	}
}

// cryptData applies encryptionStep to the block region (0x08..0x88),
// seeded by the record's checksum, and to the party tail (0x88..end) if
// present, seeded by the PID. This is symmetric: the same function
// encrypts and decrypts.
func cryptData(data []byte, pid uint32, checksum uint16) {
	encryptionStep(data[offSpecies:BoxedLen], uint32(checksum))
	if len(data) > BoxedLen {
		encryptionStep(data[BoxedLen:], pid)
	}
}

// computeChecksum sums the block region (0x08..0x88) as little-endian
// 16-bit words, wrapping on overflow, per spec.md §4.3. It must be
// computed over plaintext, and last, after every other field is set.
func computeChecksum(plaintext []byte) uint16 {
	var sum uint16
	region := plaintext[offSpecies:BoxedLen]
	for i := 0; i+1 < len(region); i += 2 {
		sum += binary.LittleEndian.Uint16(region[i:])
	}
	return sum
}

// toEncryptedData shuffles then encrypts a freshly serialized plaintext
// record, producing the bytes a game cartridge actually stores.
func toEncryptedData(plaintext []byte) []byte {
	data := append([]byte(nil), plaintext...)
	pid := binary.LittleEndian.Uint32(data[offPID:])
	checksum := binary.LittleEndian.Uint16(data[offChecksum:])
	shuffleBlocks(data, pid)
	cryptData(data, pid, checksum)
	return data
}

// toDecryptedData reverses toEncryptedData: decrypt then unshuffle,
// restoring the plaintext byte layout serialize/deserialize expect.
func toDecryptedData(encrypted []byte) []byte {
	data := append([]byte(nil), encrypted...)
	pid := binary.LittleEndian.Uint32(data[offPID:])
	checksum := binary.LittleEndian.Uint16(data[offChecksum:])
	cryptData(data, pid, checksum)
	unshuffleBlocks(data, pid)
	return data
}

// toEncryptionBypassData shuffles but does not encrypt, and sets the
// encryption-bypass flag bit, an alternative packaging games also
// accept (spec.md §4.4).
func toEncryptionBypassData(plaintext []byte) []byte {
	data := append([]byte(nil), plaintext...)
	pid := binary.LittleEndian.Uint32(data[offPID:])
	shuffleBlocks(data, pid)
	data[offFlags] |= flagEncryptionBypass
	return data
}

// ToWire packages a plain record (as Pokemon.Serialize produces) into
// the bytes a game cartridge or the GTS wire protocol actually
// stores/transmits: shuffled, and XOR-enciphered unless bypass is true
// (spec.md §4.4's "alternative encryption-bypass packaging").
func ToWire(plain []byte, bypass bool) []byte {
	if bypass {
		return toEncryptionBypassData(plain)
	}
	return toEncryptedData(plain)
}

// FromWire reverses ToWire: it reads the encryption-bypass bit out of
// the flags byte (stored outside the shuffled region, so it is readable
// before any unshuffling) to decide whether to run the XOR cipher
// before unshuffling, returning the plain record Deserialize expects.
func FromWire(wire []byte) []byte {
	flagsWord := binary.LittleEndian.Uint16(wire[offFlags:])
	if flagsWord&flagEncryptionBypass != 0 {
		data := append([]byte(nil), wire...)
		pid := binary.LittleEndian.Uint32(data[offPID:])
		unshuffleBlocks(data, pid)
		return data
	}
	return toDecryptedData(wire)
}
