package ssz

import "encoding/binary"

// FieldShape describes one field of a composite value (a Container, or the
// all-variable-element case of a Vector/List) for the purposes of the C3
// layout protocol: a fixed region of fixed-size fields and inline 4-byte
// offsets for variable-size fields, followed by a variable region holding
// the variable payloads in field order.
type FieldShape struct {
	// Variable is true if this field's size is not known statically.
	Variable bool
	// Size is the fixed-size field's byte width. Ignored when Variable is
	// true.
	Size int
}

// fixedRegionSize returns the byte width of the fixed region implied by
// shapes: Size for fixed fields, BytesPerLengthOffset for variable fields.
func fixedRegionSize(shapes []FieldShape) int {
	n := 0
	for _, s := range shapes {
		if s.Variable {
			n += BytesPerLengthOffset
		} else {
			n += s.Size
		}
	}
	return n
}

// EncodeComposite assembles a composite's SSZ encoding from per-field byte
// slices: fixed-size fields are written in place in the fixed region;
// variable-size fields get a 4-byte offset in the fixed region and their
// payload appended, in field order, to the variable region (spec §4.3).
//
// parts[i] must hold the already-encoded bytes for field i, with
// len(parts[i]) == shapes[i].Size for fixed fields.
func EncodeComposite(parts [][]byte, shapes []FieldShape) ([]byte, error) {
	if len(parts) != len(shapes) {
		return nil, ErrLengthMismatch
	}
	fixedSize := fixedRegionSize(shapes)

	fixed := make([]byte, fixedSize)
	var variable []byte

	pos := 0
	for i, s := range shapes {
		if s.Variable {
			offset := fixedSize + len(variable)
			if offset > MaxOffset {
				return nil, ErrOffsetOverflow
			}
			binary.LittleEndian.PutUint32(fixed[pos:pos+BytesPerLengthOffset], uint32(offset))
			pos += BytesPerLengthOffset
			variable = append(variable, parts[i]...)
		} else {
			if len(parts[i]) != s.Size {
				return nil, ErrLengthMismatch
			}
			copy(fixed[pos:pos+s.Size], parts[i])
			pos += s.Size
		}
	}

	return append(fixed, variable...), nil
}

// DecodeComposite splits a composite's SSZ bytes back into per-field byte
// slices according to shapes, validating every rule of spec invariant 5:
// offsets strictly increase, the first offset equals the fixed-region size
// exactly, and every offset lies within [fixedSize, len(data)].
func DecodeComposite(data []byte, shapes []FieldShape) ([][]byte, error) {
	fixedSize := fixedRegionSize(shapes)
	if len(data) < fixedSize {
		return nil, ErrBufferTooShort
	}

	fields := make([][]byte, len(shapes))

	var varIdx []int   // field indices, in encounter order, that are variable
	var offsets []int  // their decoded offsets, parallel to varIdx

	pos := 0
	for i, s := range shapes {
		if s.Variable {
			offset := binary.LittleEndian.Uint32(data[pos : pos+BytesPerLengthOffset])
			varIdx = append(varIdx, i)
			offsets = append(offsets, int(offset))
			pos += BytesPerLengthOffset
		} else {
			fields[i] = data[pos : pos+s.Size]
			pos += s.Size
		}
	}

	if len(offsets) == 0 {
		return fields, nil
	}

	// First offset must equal the fixed-region size exactly.
	if offsets[0] != fixedSize {
		return nil, ErrInvalidOffsets
	}
	// Offsets must strictly increase and stay within bounds; equal or
	// decreasing offsets are a hard error (spec invariant 5), and so is
	// the implicit final boundary being shorter than the last offset.
	prev := offsets[0]
	for _, off := range offsets[1:] {
		if off <= prev || off > len(data) {
			return nil, ErrInvalidOffsets
		}
		prev = off
	}
	if offsets[len(offsets)-1] > len(data) {
		return nil, ErrInvalidOffsets
	}

	for k, i := range varIdx {
		start := offsets[k]
		var end int
		if k+1 < len(offsets) {
			end = offsets[k+1]
		} else {
			end = len(data)
		}
		if start > end {
			return nil, ErrInvalidOffsets
		}
		fields[i] = data[start:end]
	}

	return fields, nil
}
