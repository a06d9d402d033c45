package ssz

import (
	"encoding/binary"

	"github.com/holiman/uint256"
)

// --- Basic type encoding ---

// MarshalBool encodes a boolean as a single byte: 0x01 for true, 0x00 for
// false.
func MarshalBool(v bool) []byte {
	if v {
		return []byte{1}
	}
	return []byte{0}
}

// MarshalUint8 encodes a uint8 as a single byte.
func MarshalUint8(v uint8) []byte {
	return []byte{v}
}

// MarshalUint16 encodes a uint16 as 2 bytes little-endian.
func MarshalUint16(v uint16) []byte {
	b := make([]byte, 2)
	binary.LittleEndian.PutUint16(b, v)
	return b
}

// MarshalUint32 encodes a uint32 as 4 bytes little-endian.
func MarshalUint32(v uint32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, v)
	return b
}

// MarshalUint64 encodes a uint64 as 8 bytes little-endian.
func MarshalUint64(v uint64) []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, v)
	return b
}

// MarshalUint128 encodes a 128-bit unsigned integer, given as little-endian
// limbs (lo, hi), into 16 bytes little-endian.
func MarshalUint128(lo, hi uint64) []byte {
	b := make([]byte, 16)
	binary.LittleEndian.PutUint64(b[0:8], lo)
	binary.LittleEndian.PutUint64(b[8:16], hi)
	return b
}

// MarshalUint256 encodes a 256-bit unsigned integer into 32 bytes
// little-endian. A nil value encodes as zero.
func MarshalUint256(v *uint256.Int) []byte {
	b := make([]byte, 32)
	if v != nil {
		v.MarshalSSZInto(b)
	}
	return b
}

// --- Buffer-writing variants ---
//
// These write into a caller-supplied buffer instead of allocating, failing
// with ErrOutputTooSmall if the buffer cannot hold the encoding (spec §4.1).

// EncodeBoolInto writes a bool into buf[0]. buf must have length >= 1.
func EncodeBoolInto(buf []byte, v bool) error {
	if len(buf) < 1 {
		return ErrOutputTooSmall
	}
	if v {
		buf[0] = 1
	} else {
		buf[0] = 0
	}
	return nil
}

// EncodeUint8Into writes a uint8 into buf[0]. buf must have length >= 1.
func EncodeUint8Into(buf []byte, v uint8) error {
	if len(buf) < 1 {
		return ErrOutputTooSmall
	}
	buf[0] = v
	return nil
}

// EncodeUint16Into writes a uint16 little-endian into buf. buf must have
// length >= 2.
func EncodeUint16Into(buf []byte, v uint16) error {
	if len(buf) < 2 {
		return ErrOutputTooSmall
	}
	binary.LittleEndian.PutUint16(buf, v)
	return nil
}

// EncodeUint32Into writes a uint32 little-endian into buf. buf must have
// length >= 4.
func EncodeUint32Into(buf []byte, v uint32) error {
	if len(buf) < 4 {
		return ErrOutputTooSmall
	}
	binary.LittleEndian.PutUint32(buf, v)
	return nil
}

// EncodeUint64Into writes a uint64 little-endian into buf. buf must have
// length >= 8.
func EncodeUint64Into(buf []byte, v uint64) error {
	if len(buf) < 8 {
		return ErrOutputTooSmall
	}
	binary.LittleEndian.PutUint64(buf, v)
	return nil
}

// EncodeUint128Into writes a 128-bit value, as (lo, hi) limbs, little-endian
// into buf. buf must have length >= 16.
func EncodeUint128Into(buf []byte, lo, hi uint64) error {
	if len(buf) < 16 {
		return ErrOutputTooSmall
	}
	binary.LittleEndian.PutUint64(buf[0:8], lo)
	binary.LittleEndian.PutUint64(buf[8:16], hi)
	return nil
}

// EncodeUint256Into writes a 256-bit value little-endian into buf. buf must
// have length >= 32. A nil value writes zero.
func EncodeUint256Into(buf []byte, v *uint256.Int) error {
	if len(buf) < 32 {
		return ErrOutputTooSmall
	}
	if v == nil {
		for i := range buf[:32] {
			buf[i] = 0
		}
		return nil
	}
	v.MarshalSSZInto(buf[:32])
	return nil
}

// --- Composite type encoding ---

// MarshalVector encodes a fixed-length vector of fixed-size elements by
// concatenating each element's SSZ encoding. N=0 is rejected by callers at
// the collection-codec layer (see EncodeFixedVector).
func MarshalVector(elements [][]byte) []byte {
	var out []byte
	for _, e := range elements {
		out = append(out, e...)
	}
	return out
}

// MarshalFixedContainer encodes a container where all fields are
// fixed-size, by concatenating each field's SSZ encoding (spec invariant 7
// with no variable children).
func MarshalFixedContainer(fields [][]byte) []byte {
	return MarshalVector(fields)
}

// --- Bitfield encoding ---

// MarshalBitvector encodes a bitvector of exactly n bits. Bits are packed
// little-endian within each byte (bit i -> byte i/8, bit i%8); the final
// byte's bits beyond position n-1 are zero.
func MarshalBitvector(bits []bool) []byte {
	numBytes := (len(bits) + 7) / 8
	out := make([]byte, numBytes)
	for i, b := range bits {
		if b {
			out[i/8] |= 1 << (uint(i) % 8)
		}
	}
	return out
}

// MarshalBitlist encodes a bitlist of len(bits) data bits. The encoding
// includes a delimiter bit set at position len(bits), per spec §4.2.
func MarshalBitlist(bits []bool) []byte {
	withDelimiter := make([]bool, len(bits)+1)
	copy(withDelimiter, bits)
	withDelimiter[len(bits)] = true
	numBytes := (len(withDelimiter) + 7) / 8
	out := make([]byte, numBytes)
	for i, b := range withDelimiter {
		if b {
			out[i/8] |= 1 << (uint(i) % 8)
		}
	}
	return out
}

// MarshalByteVector encodes a fixed-length byte vector (ByteVector[N]).
func MarshalByteVector(data []byte) []byte {
	out := make([]byte, len(data))
	copy(out, data)
	return out
}

// MarshalByteList encodes a variable-length byte list (ByteList[N]); its
// length is implicit in the enclosing composite's offset table and is
// mixed in during Merkleization.
func MarshalByteList(data []byte) []byte {
	out := make([]byte, len(data))
	copy(out, data)
	return out
}
