package ssz

import (
	"encoding/binary"

	"github.com/minio/sha256-simd"
)

// hash combines two 32-byte inputs using SHA-256.
func hash(a, b [32]byte) [32]byte {
	var combined [64]byte
	copy(combined[:32], a[:])
	copy(combined[32:], b[:])
	return sha256.Sum256(combined[:])
}

// zeroHash returns a zero-filled 32-byte array.
func zeroHash() [32]byte {
	return [32]byte{}
}

// zeroHashes returns a table of zero hashes for each level of a Merkle
// tree: zeroHashes[0] is the zero chunk, zeroHashes[i] =
// hash(zeroHashes[i-1], zeroHashes[i-1]).
func zeroHashes(depth int) [][32]byte {
	hashes := make([][32]byte, depth+1)
	for i := 1; i <= depth; i++ {
		hashes[i] = hash(hashes[i-1], hashes[i-1])
	}
	return hashes
}

// nextPowerOfTwo returns the smallest power of 2 >= n.
func nextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// Pack packs a sequence of SSZ-serialized basic values into 32-byte chunks,
// right-padding the last chunk with zeros if needed. An empty input yields
// zero chunks (spec §4.5); Merkleize handles the resulting empty-chunk-set
// case by padding with a single zero leaf.
func Pack(serialized []byte) [][32]byte {
	if len(serialized) == 0 {
		return nil
	}
	numChunks := (len(serialized) + BytesPerChunk - 1) / BytesPerChunk
	chunks := make([][32]byte, numChunks)
	for i := 0; i < numChunks; i++ {
		start := i * BytesPerChunk
		end := start + BytesPerChunk
		if end > len(serialized) {
			end = len(serialized)
		}
		copy(chunks[i][:], serialized[start:end])
	}
	return chunks
}

// PackBits packs a bit sequence, without any delimiter bit, into 32-byte
// chunks (spec §4.5's pack_bits, used by Bitvector/Bitlist Merkleization).
func PackBits(bits []bool) [][32]byte {
	if len(bits) == 0 {
		return nil
	}
	numBytes := (len(bits) + 7) / 8
	raw := make([]byte, numBytes)
	for i, b := range bits {
		if b {
			raw[i/8] |= 1 << (uint(i) % 8)
		}
	}
	return Pack(raw)
}

// Merkleize computes the Merkle root of chunks, padded to limit (a power of
// two). If limit is 0, the tree is padded to the next power of two of
// len(chunks). If limit > 0 and len(chunks) > limit, it returns
// ErrLimitExceeded (spec §4.5 step 1) rather than silently growing the
// tree.
func Merkleize(chunks [][32]byte, limit int) ([32]byte, error) {
	count := len(chunks)
	if limit > 0 && count > limit {
		return [32]byte{}, ErrLimitExceeded
	}
	if limit == 0 {
		limit = nextPowerOfTwo(count)
	}
	limit = nextPowerOfTwo(limit)

	if count == 0 {
		chunks = [][32]byte{zeroHash()}
		count = 1
	}

	depth := 0
	for (1 << uint(depth)) < limit {
		depth++
	}

	zeros := zeroHashes(depth)

	layer := make([][32]byte, limit)
	copy(layer, chunks)
	for i := count; i < limit; i++ {
		layer[i] = zeros[0]
	}

	for d := 0; d < depth; d++ {
		newSize := len(layer) / 2
		newLayer := make([][32]byte, newSize)
		for i := 0; i < newSize; i++ {
			newLayer[i] = hash(layer[2*i], layer[2*i+1])
		}
		layer = newLayer
	}

	return layer[0], nil
}

// MixInLength mixes a Merkle root with a length value, used for
// variable-size types (lists, bitlists, byte lists): spec §4.5
// mix_in_length(root, length) = hash(root, uint256_le(length)).
func MixInLength(root [32]byte, length uint64) [32]byte {
	var lengthChunk [32]byte
	binary.LittleEndian.PutUint64(lengthChunk[:8], length)
	return hash(root, lengthChunk)
}

// MixInSelector mixes a root with a union type selector: spec §4.5
// mix_in_selector(root, selector) = hash(root, selector_byte ‖ 31·0x00).
// The selector occupies only the chunk's first byte; unlike a length, it is
// never more than one byte wide (spec §3: selector in [0,127]).
func MixInSelector(root [32]byte, selector byte) [32]byte {
	var selectorChunk [32]byte
	selectorChunk[0] = selector
	return hash(root, selectorChunk)
}
