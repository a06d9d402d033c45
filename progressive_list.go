package ssz

import (
	"errors"
	"fmt"
)

// EIP-7916: SSZ ProgressiveList
//
// A progressive list uses a recursive Merkle tree structure that grows
// progressively with the actual leaf count. The tree is composed of a
// sequence of binary subtrees with increasing capacity:
//
//	depth 1: 1 chunk  (subtree of 1 leaf)
//	depth 2: 4 chunks (subtree of 4 leaves)
//	depth 3: 16 chunks
//	depth 4: 64 chunks
//	...
//
// At each level, the capacity is 4^(level-1) for level >= 1. The total
// capacity after d subtrees is sum_{i=0}^{d-1} 4^i = (4^d - 1)/3. Unlike a
// standard List[T,N_max], a ProgressiveList has no fixed N_max: it grows to
// whatever length the data has.

var ErrProgressiveListEmpty = errors.New("ssz: progressive list index out of range")

// ProgressiveList is an SSZ list type with a progressive Merkle tree shape
// per EIP-7916. Elements are stored as their 32-byte hash tree roots
// (chunks).
type ProgressiveList struct {
	chunks [][32]byte
}

// NewProgressiveList creates a new ProgressiveList from element hash tree
// roots.
func NewProgressiveList(chunks [][32]byte) *ProgressiveList {
	cp := make([][32]byte, len(chunks))
	copy(cp, chunks)
	return &ProgressiveList{chunks: cp}
}

// NewProgressiveListEmpty creates an empty ProgressiveList.
func NewProgressiveListEmpty() *ProgressiveList {
	return &ProgressiveList{}
}

// Len returns the number of elements.
func (pl *ProgressiveList) Len() int {
	return len(pl.chunks)
}

// Get returns the chunk at the given index.
func (pl *ProgressiveList) Get(index int) ([32]byte, error) {
	if index < 0 || index >= len(pl.chunks) {
		return [32]byte{}, fmt.Errorf("%w: index %d, len %d", ErrProgressiveListEmpty, index, len(pl.chunks))
	}
	return pl.chunks[index], nil
}

// Append adds an element (as its hash tree root) to the list.
func (pl *ProgressiveList) Append(chunk [32]byte) {
	pl.chunks = append(pl.chunks, chunk)
}

// HashTreeRoot computes the progressive list hash tree root per EIP-7916:
// mix_in_length(merkleize_progressive(chunks), len(chunks)).
func (pl *ProgressiveList) HashTreeRoot() ([32]byte, error) {
	root, err := merkleizeProgressive(pl.chunks, 1)
	if err != nil {
		return [32]byte{}, err
	}
	return MixInLength(root, uint64(len(pl.chunks))), nil
}

// merkleizeProgressive implements the recursive progressive Merkle tree.
//
//	merkleize_progressive(chunks, num_leaves):
//	  - If len(chunks) == 0: return Bytes32() (zero hash)
//	  - Otherwise: hash(
//	      merkleize(chunks[:num_leaves], num_leaves),
//	      merkleize_progressive(chunks[num_leaves:], num_leaves * 4))
func merkleizeProgressive(chunks [][32]byte, numLeaves int) ([32]byte, error) {
	if len(chunks) == 0 {
		return zeroHash(), nil
	}

	splitAt := numLeaves
	if splitAt > len(chunks) {
		splitAt = len(chunks)
	}

	left, err := Merkleize(chunks[:splitAt], numLeaves)
	if err != nil {
		return [32]byte{}, err
	}

	right, err := merkleizeProgressive(chunks[splitAt:], numLeaves*4)
	if err != nil {
		return [32]byte{}, err
	}

	return hash(left, right), nil
}

// --- Convenience functions for typed progressive lists ---

// HashTreeRootProgressiveList computes the hash tree root of a progressive
// list where each element is provided as its 32-byte hash tree root.
func HashTreeRootProgressiveList(elementRoots [][32]byte) ([32]byte, error) {
	root, err := merkleizeProgressive(elementRoots, 1)
	if err != nil {
		return [32]byte{}, err
	}
	return MixInLength(root, uint64(len(elementRoots))), nil
}

// HashTreeRootProgressiveBasicList computes the hash tree root of a
// progressive list of basic type elements. The serialized data is packed
// into chunks, then progressive-Merkleized and mixed with length.
func HashTreeRootProgressiveBasicList(serialized []byte, count int) ([32]byte, error) {
	chunks := Pack(serialized)
	root, err := merkleizeProgressive(chunks, 1)
	if err != nil {
		return [32]byte{}, err
	}
	return MixInLength(root, uint64(count)), nil
}

// HashTreeRootProgressiveBitlist computes the hash tree root of a
// ProgressiveBitlist per EIP-7916.
func HashTreeRootProgressiveBitlist(bits []bool) ([32]byte, error) {
	if len(bits) == 0 {
		root, err := merkleizeProgressive(nil, 1)
		if err != nil {
			return [32]byte{}, err
		}
		return MixInLength(root, 0), nil
	}
	packed := MarshalBitvector(bits)
	chunks := Pack(packed)
	root, err := merkleizeProgressive(chunks, 1)
	if err != nil {
		return [32]byte{}, err
	}
	return MixInLength(root, uint64(len(bits))), nil
}

// --- Incremental builder ---
//
// ProgressiveEncoder is a plain in-memory builder for a ProgressiveList: it
// accumulates element chunks and computes the final root on demand. It
// does not stream to an io.Writer and does not support chunked/segmented
// serialization — the core operates on contiguous byte slices, not on
// streaming I/O.

// ErrEncoderFinalized means an append or serialize was attempted after the
// encoder already finalized via Root() or Serialize().
var ErrEncoderFinalized = errors.New("ssz: progressive encoder already finalized")

// ProgressiveEncoder incrementally builds a ProgressiveList's element
// chunks, deferring the progressive Merkleization until Root() is called.
type ProgressiveEncoder struct {
	chunks    [][32]byte
	finalized bool
}

// NewProgressiveEncoder creates a new, empty progressive encoder.
func NewProgressiveEncoder() *ProgressiveEncoder {
	return &ProgressiveEncoder{}
}

// Append adds a single element (as its 32-byte hash tree root) to the
// encoder.
func (pe *ProgressiveEncoder) Append(chunk [32]byte) error {
	if pe.finalized {
		return ErrEncoderFinalized
	}
	pe.chunks = append(pe.chunks, chunk)
	return nil
}

// AppendBatch adds multiple element chunks at once.
func (pe *ProgressiveEncoder) AppendBatch(chunks [][32]byte) error {
	if pe.finalized {
		return ErrEncoderFinalized
	}
	pe.chunks = append(pe.chunks, chunks...)
	return nil
}

// AppendUint64 appends a uint64 value packed into a 32-byte chunk.
func (pe *ProgressiveEncoder) AppendUint64(v uint64) error {
	return pe.Append(HashTreeRootUint64(v))
}

// AppendBytes32 appends raw 32-byte data as a chunk.
func (pe *ProgressiveEncoder) AppendBytes32(data [32]byte) error {
	return pe.Append(data)
}

// Len returns the number of elements appended so far.
func (pe *ProgressiveEncoder) Len() int {
	return len(pe.chunks)
}

// IsFinalized reports whether the encoder has been finalized.
func (pe *ProgressiveEncoder) IsFinalized() bool {
	return pe.finalized
}

// Reset clears the encoder state so it can be reused.
func (pe *ProgressiveEncoder) Reset() {
	pe.chunks = pe.chunks[:0]
	pe.finalized = false
}

// Root computes the progressive list hash tree root, finalizing the
// encoder. After calling Root(), no more elements can be appended.
func (pe *ProgressiveEncoder) Root() ([32]byte, error) {
	if pe.finalized {
		return [32]byte{}, ErrEncoderFinalized
	}
	pe.finalized = true
	root, err := merkleizeProgressive(pe.chunks, 1)
	if err != nil {
		return [32]byte{}, err
	}
	return MixInLength(root, uint64(len(pe.chunks))), nil
}

// Serialize produces the concatenation of all appended chunks, finalizing
// the encoder. The output carries no length prefix; the element count is
// len(output)/BytesPerChunk.
func (pe *ProgressiveEncoder) Serialize() ([]byte, error) {
	if pe.finalized {
		return nil, ErrEncoderFinalized
	}
	pe.finalized = true
	buf := make([]byte, 0, len(pe.chunks)*BytesPerChunk)
	for _, c := range pe.chunks {
		buf = append(buf, c[:]...)
	}
	return buf, nil
}
