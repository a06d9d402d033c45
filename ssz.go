// Package ssz implements Simple Serialize (SSZ), the deterministic binary
// encoding and Merkle hash-tree-root scheme used by the Ethereum consensus
// layer.
//
// The package covers the closure of SSZ type constructors: uintN (N in
// {8,16,32,64,128,256}), bool, Bitvector[N], Bitlist[N], Vector[T,N],
// List[T,N], Container{f_i}, and Union. Domain-specific consensus container
// definitions (BeaconState, Attestation, ...) are not part of this package;
// callers assemble those from the primitives here.
//
// Spec: https://github.com/ethereum/consensus-specs/blob/dev/ssz/simple-serialize.md
package ssz

import "errors"

// Error kinds of the core codec. The union registry and codec (union.go),
// StableContainer/Profile (stable_container.go) and ProgressiveList
// (progressive_list.go) also return error values of their own, declared in
// those files, which are not among these nine.
var (
	// ErrBufferTooShort means the input bytes are insufficient for the
	// declared type.
	ErrBufferTooShort = errors.New("ssz: buffer too short")
	// ErrLengthMismatch means an exact-length type (bitvector, fixed
	// vector, basic list) received wrong-length input.
	ErrLengthMismatch = errors.New("ssz: length mismatch")
	// ErrInvalidValue means a byte or bit failed a value-domain check
	// (boolean other than 0/1, bitlist without delimiter, nonzero
	// padding bits).
	ErrInvalidValue = errors.New("ssz: invalid value")
	// ErrInvalidOffsets means an offset table violates monotonicity,
	// bounds, or the first-offset-equals-fixed-region rule.
	ErrInvalidOffsets = errors.New("ssz: invalid offsets")
	// ErrOffsetOverflow means an offset would exceed 2^32-1 on encode.
	ErrOffsetOverflow = errors.New("ssz: offset overflow")
	// ErrLimitExceeded means an element count exceeds a declared
	// list/vector capacity, or a chunk count exceeds a Merkle limit.
	ErrLimitExceeded = errors.New("ssz: limit exceeded")
	// ErrEmptyVector means a Vector was declared with N = 0.
	ErrEmptyVector = errors.New("ssz: vector length must be positive")
	// ErrOutputTooSmall means the caller-supplied output buffer cannot
	// hold the encoding.
	ErrOutputTooSmall = errors.New("ssz: output buffer too small")
	// ErrUnionSelector means a union selector is > 127, or selector 0
	// was paired with a non-empty payload.
	ErrUnionSelector = errors.New("ssz: invalid union selector")
)

// Wire format constants (spec §6).
const (
	// BytesPerChunk is the width of a Merkle leaf/node.
	BytesPerChunk = 32
	// BytesPerLengthOffset is the width of an offset in a variable-size
	// composite's fixed region.
	BytesPerLengthOffset = 4
	// BitsPerByte is the number of bits packed per byte in bit
	// containers, little-endian bit order within the byte.
	BitsPerByte = 8
	// MaxOffset is the largest value a 4-byte offset may hold.
	MaxOffset = 1<<32 - 1
)

// Marshaler is implemented by types that can serialize themselves to SSZ.
type Marshaler interface {
	MarshalSSZ() ([]byte, error)
	SizeSSZ() int
}

// Unmarshaler is implemented by types that can deserialize themselves from
// SSZ bytes.
type Unmarshaler interface {
	UnmarshalSSZ([]byte) error
}

// HashRoot is implemented by types that can compute their SSZ hash tree
// root.
type HashRoot interface {
	HashTreeRoot() ([32]byte, error)
}
