package ssz

import (
	"encoding/binary"

	"github.com/holiman/uint256"
)

// --- Basic type decoding ---

// UnmarshalBool decodes a single-byte boolean. Any value other than 0x00 or
// 0x01 is ErrInvalidValue (booleans have no third state).
func UnmarshalBool(data []byte) (bool, error) {
	if len(data) != 1 {
		return false, ErrLengthMismatch
	}
	switch data[0] {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, ErrInvalidValue
	}
}

// UnmarshalUint8 decodes a single-byte uint8. decode_uint requires exactly
// width/8 bytes (spec §4.1); a short or long buffer is ErrBufferTooShort,
// not ErrLengthMismatch (that kind is scoped to bitvector/fixed-vector/
// basic-list framing, spec §7).
func UnmarshalUint8(data []byte) (uint8, error) {
	if len(data) != 1 {
		return 0, ErrBufferTooShort
	}
	return data[0], nil
}

// UnmarshalUint16 decodes a 2-byte little-endian uint16.
func UnmarshalUint16(data []byte) (uint16, error) {
	if len(data) != 2 {
		return 0, ErrBufferTooShort
	}
	return binary.LittleEndian.Uint16(data), nil
}

// UnmarshalUint32 decodes a 4-byte little-endian uint32.
func UnmarshalUint32(data []byte) (uint32, error) {
	if len(data) != 4 {
		return 0, ErrBufferTooShort
	}
	return binary.LittleEndian.Uint32(data), nil
}

// UnmarshalUint64 decodes an 8-byte little-endian uint64.
func UnmarshalUint64(data []byte) (uint64, error) {
	if len(data) != 8 {
		return 0, ErrBufferTooShort
	}
	return binary.LittleEndian.Uint64(data), nil
}

// UnmarshalUint128 decodes a 16-byte little-endian 128-bit value into (lo, hi)
// limbs.
func UnmarshalUint128(data []byte) (lo, hi uint64, err error) {
	if len(data) != 16 {
		return 0, 0, ErrBufferTooShort
	}
	lo = binary.LittleEndian.Uint64(data[0:8])
	hi = binary.LittleEndian.Uint64(data[8:16])
	return lo, hi, nil
}

// UnmarshalUint256 decodes a 32-byte little-endian 256-bit value.
func UnmarshalUint256(data []byte) (*uint256.Int, error) {
	if len(data) != 32 {
		return nil, ErrBufferTooShort
	}
	v := new(uint256.Int)
	if err := v.UnmarshalSSZ(data); err != nil {
		return nil, ErrInvalidValue
	}
	return v, nil
}

// Vector[T,N], List[T,N_max], and Container{f_i} decoding live in
// collection.go and composite.go. Bitvector[N]/Bitlist[N] decoding lives in
// bitfield.go.
