// hash_tree.go implements SSZ hash tree root computation helpers: a
// precomputed zero hash cache, chunk count calculations for basic and
// composite types, and the hash_tree_root convenience wrappers for every
// type spec.md §4.5 enumerates (basic types, Bitvector/Bitlist, Vector/List
// of basic or composite elements, Container, Union).
//
// Generalized-index and multiproof machinery intentionally does not live
// here: proofs are a Non-goal (spec.md §1, §5).
package ssz

import (
	"sync"

	"github.com/holiman/uint256"
	"github.com/minio/sha256-simd"
)

// maxCachedZeroHashDepth is the maximum depth of precomputed zero hashes.
// 64 levels supports trees of up to 2^64 leaves.
const maxCachedZeroHashDepth = 64

// cachedZeroHashTable stores precomputed zero hashes at each tree depth.
// cachedZeroHashTable[0] is the all-zero chunk; cachedZeroHashTable[i] =
// sha256(cachedZeroHashTable[i-1] || cachedZeroHashTable[i-1]).
var (
	cachedZeroHashesOnce sync.Once
	cachedZeroHashTable  [maxCachedZeroHashDepth + 1][32]byte
)

// initZeroHashCache computes the zero hash table once.
func initZeroHashCache() {
	cachedZeroHashesOnce.Do(func() {
		for i := 1; i <= maxCachedZeroHashDepth; i++ {
			cachedZeroHashTable[i] = hash(cachedZeroHashTable[i-1], cachedZeroHashTable[i-1])
		}
	})
}

// ZeroHash returns the cached zero hash at the given tree depth. Depth 0 is
// a 32-byte zero chunk; depth d is the root of a height-d tree of only
// zero leaves.
func ZeroHash(depth int) [32]byte {
	initZeroHashCache()
	if depth < 0 || depth > maxCachedZeroHashDepth {
		h := [32]byte{}
		for i := 0; i < depth; i++ {
			h = hash(h, h)
		}
		return h
	}
	return cachedZeroHashTable[depth]
}

// ConcatHash computes SHA-256(a || b) for two 32-byte inputs. Exported so
// callers assembling their own Container/Union roots can reuse the exact
// hash primitive this package uses internally.
func ConcatHash(a, b [32]byte) [32]byte {
	return hash(a, b)
}

// SHA256 computes SHA-256 over an arbitrary byte slice.
func SHA256(data []byte) [32]byte {
	return sha256.Sum256(data)
}

// --- Chunk count calculation (spec §4.5) ---

// ChunkCountBasic returns the number of 32-byte chunks needed to pack n
// values of the given elemByteSize.
func ChunkCountBasic(n, elemByteSize int) int {
	totalBytes := n * elemByteSize
	return (totalBytes + BytesPerChunk - 1) / BytesPerChunk
}

// ChunkCountByteVector returns the chunk count for a ByteVector[N].
func ChunkCountByteVector(n int) int {
	return (n + BytesPerChunk - 1) / BytesPerChunk
}

// ChunkCountByteList returns the chunk limit for a ByteList[N].
func ChunkCountByteList(maxLen int) int {
	return (maxLen + BytesPerChunk - 1) / BytesPerChunk
}

// --- hash_tree_root convenience wrappers ---

// HashTreeRootBool computes the hash tree root of a boolean.
func HashTreeRootBool(v bool) [32]byte {
	var chunk [32]byte
	if v {
		chunk[0] = 1
	}
	return chunk
}

// HashTreeRootUint8 computes the hash tree root of a uint8.
func HashTreeRootUint8(v uint8) [32]byte {
	var chunk [32]byte
	chunk[0] = v
	return chunk
}

// HashTreeRootUint16 computes the hash tree root of a uint16.
func HashTreeRootUint16(v uint16) [32]byte {
	var chunk [32]byte
	copy(chunk[:2], MarshalUint16(v))
	return chunk
}

// HashTreeRootUint32 computes the hash tree root of a uint32.
func HashTreeRootUint32(v uint32) [32]byte {
	var chunk [32]byte
	copy(chunk[:4], MarshalUint32(v))
	return chunk
}

// HashTreeRootUint64 computes the hash tree root of a uint64.
func HashTreeRootUint64(v uint64) [32]byte {
	var chunk [32]byte
	copy(chunk[:8], MarshalUint64(v))
	return chunk
}

// HashTreeRootUint128 computes the hash tree root of a 128-bit value given
// as (lo, hi) limbs.
func HashTreeRootUint128(lo, hi uint64) [32]byte {
	var chunk [32]byte
	copy(chunk[:16], MarshalUint128(lo, hi))
	return chunk
}

// HashTreeRootUint256 computes the hash tree root of a 256-bit value. A nil
// value roots as zero.
func HashTreeRootUint256(v *uint256.Int) [32]byte {
	var chunk [32]byte
	copy(chunk[:], MarshalUint256(v))
	return chunk
}

// HashTreeRootBytes32 computes the hash tree root of a 32-byte fixed
// vector: it already fits in one chunk, so it is its own root.
func HashTreeRootBytes32(b [32]byte) [32]byte {
	return b
}

// HashTreeRootAddress computes the hash tree root of a 20-byte address,
// left-aligned and zero-padded to a 32-byte chunk.
func HashTreeRootAddress(addr [20]byte) [32]byte {
	var chunk [32]byte
	copy(chunk[:20], addr[:])
	return chunk
}

// HashTreeRootBytes48 computes the hash tree root of a 48-byte fixed vector
// (e.g. a BLS public key): merkleize(pack(value)).
func HashTreeRootBytes48(b [48]byte) ([32]byte, error) {
	return Merkleize(Pack(b[:]), 0)
}

// HashTreeRootBytes96 computes the hash tree root of a 96-byte fixed vector
// (e.g. a BLS signature): merkleize(pack(value)).
func HashTreeRootBytes96(b [96]byte) ([32]byte, error) {
	return Merkleize(Pack(b[:]), 0)
}

// HashTreeRootVector computes the hash tree root of a Vector[T,N] of
// composite-typed elements, each given as its own hash tree root.
func HashTreeRootVector(elementRoots [][32]byte) ([32]byte, error) {
	return Merkleize(elementRoots, 0)
}

// HashTreeRootList computes the hash tree root of a List[T,N_max] of
// composite-typed elements, each given as its own hash tree root.
func HashTreeRootList(elementRoots [][32]byte, maxLen int) ([32]byte, error) {
	root, err := Merkleize(elementRoots, maxLen)
	if err != nil {
		return [32]byte{}, err
	}
	return MixInLength(root, uint64(len(elementRoots))), nil
}

// HashTreeRootContainer computes the hash tree root of a Container, given
// the hash tree root of each field in field order.
func HashTreeRootContainer(fieldRoots [][32]byte) ([32]byte, error) {
	return Merkleize(fieldRoots, 0)
}

// HashTreeRootByteList computes the hash tree root of a ByteList[N].
func HashTreeRootByteList(data []byte, maxLen int) ([32]byte, error) {
	root, err := Merkleize(Pack(data), ChunkCountByteList(maxLen))
	if err != nil {
		return [32]byte{}, err
	}
	return MixInLength(root, uint64(len(data))), nil
}

// HashTreeRootBitvector computes the hash tree root of a Bitvector[N].
func HashTreeRootBitvector(bits []bool) ([32]byte, error) {
	return Merkleize(PackBits(bits), 0)
}

// HashTreeRootBitlistBits computes the hash tree root of a Bitlist[N] given
// as a plain []bool (the data bits, no delimiter) plus its declared max
// length.
func HashTreeRootBitlistBits(bits []bool, maxLen int) ([32]byte, error) {
	root, err := Merkleize(PackBits(bits), ChunkCountBitlist(maxLen))
	if err != nil {
		return [32]byte{}, err
	}
	return MixInLength(root, uint64(len(bits))), nil
}

// HashTreeRootBasicVector computes the hash tree root of a Vector[T,N] of
// basic-typed elements, given as already-concatenated serialized bytes.
func HashTreeRootBasicVector(serialized []byte) ([32]byte, error) {
	return Merkleize(Pack(serialized), 0)
}

// HashTreeRootBasicList computes the hash tree root of a List[T,N_max] of
// basic-typed elements: serialized is the concatenated encoding of count
// elements of elemSize bytes each, and maxLen is N_max.
func HashTreeRootBasicList(serialized []byte, count, elemSize, maxLen int) ([32]byte, error) {
	root, err := Merkleize(Pack(serialized), ChunkCountBasic(maxLen, elemSize))
	if err != nil {
		return [32]byte{}, err
	}
	return MixInLength(root, uint64(count)), nil
}

// HashTreeRootUnion computes the hash tree root of an SSZ Union: the value
// root mixed with the 1-byte selector (spec §4.5). selector must be in
// [0,127]; selector 0 with a None payload roots its value as the zero hash.
func HashTreeRootUnion(valueRoot [32]byte, selector byte) ([32]byte, error) {
	if selector > 127 {
		return [32]byte{}, ErrUnionSelector
	}
	return MixInSelector(valueRoot, selector), nil
}
