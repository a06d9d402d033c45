package ssz

// EncodeFixedVector encodes a Vector[T,N] of fixed-size elements by
// concatenating each element's encoding. N=0 is invalid (spec invariant:
// empty vectors do not exist, only empty lists do).
func EncodeFixedVector(elements [][]byte, elemSize int) ([]byte, error) {
	if len(elements) == 0 {
		return nil, ErrEmptyVector
	}
	for _, e := range elements {
		if len(e) != elemSize {
			return nil, ErrLengthMismatch
		}
	}
	return MarshalVector(elements), nil
}

// DecodeFixedVector decodes a Vector[T,N] of n fixed-size elements, each
// elemSize bytes long. N=0 is invalid.
func DecodeFixedVector(data []byte, n, elemSize int) ([][]byte, error) {
	if n == 0 {
		return nil, ErrEmptyVector
	}
	if len(data) != n*elemSize {
		return nil, ErrLengthMismatch
	}
	elements := make([][]byte, n)
	for i := 0; i < n; i++ {
		elements[i] = data[i*elemSize : (i+1)*elemSize]
	}
	return elements, nil
}

// EncodeFixedList encodes a List[T,N_max] of fixed-size elements, checking
// the element count against nMax.
func EncodeFixedList(elements [][]byte, elemSize, nMax int) ([]byte, error) {
	if len(elements) > nMax {
		return nil, ErrLimitExceeded
	}
	for _, e := range elements {
		if len(e) != elemSize {
			return nil, ErrLengthMismatch
		}
	}
	return MarshalVector(elements), nil
}

// DecodeFixedList decodes a List[T,N_max] of fixed-size elements, each
// elemSize bytes long, rejecting input whose implied element count exceeds
// nMax (ErrLimitExceeded) or whose byte length is not a multiple of
// elemSize (ErrLengthMismatch).
func DecodeFixedList(data []byte, elemSize, nMax int) ([][]byte, error) {
	if elemSize == 0 {
		return nil, ErrInvalidValue
	}
	if len(data)%elemSize != 0 {
		return nil, ErrLengthMismatch
	}
	n := len(data) / elemSize
	if n > nMax {
		return nil, ErrLimitExceeded
	}
	elements := make([][]byte, n)
	for i := 0; i < n; i++ {
		elements[i] = data[i*elemSize : (i+1)*elemSize]
	}
	return elements, nil
}

// variableElementShapes builds a FieldShape slice of n all-variable fields,
// the descriptor Vector[T,N]/List[T,N_max] of variable-size T reduces to
// under the C3 layout protocol (spec design note: "a homogeneous
// variable-element Vector/List is a Container whose fields all share one
// variable type").
func variableElementShapes(n int) []FieldShape {
	shapes := make([]FieldShape, n)
	for i := range shapes {
		shapes[i] = FieldShape{Variable: true}
	}
	return shapes
}

// EncodeVariableVector encodes a Vector[T,N] of variable-size elements via
// the composite offset-table layout. N=0 is invalid.
func EncodeVariableVector(elements [][]byte) ([]byte, error) {
	if len(elements) == 0 {
		return nil, ErrEmptyVector
	}
	return EncodeComposite(elements, variableElementShapes(len(elements)))
}

// DecodeVariableVector decodes a Vector[T,N] of n variable-size elements.
// N=0 is invalid.
func DecodeVariableVector(data []byte, n int) ([][]byte, error) {
	if n == 0 {
		return nil, ErrEmptyVector
	}
	return DecodeComposite(data, variableElementShapes(n))
}

// EncodeVariableList encodes a List[T,N_max] of variable-size elements,
// checking the element count against nMax.
func EncodeVariableList(elements [][]byte, nMax int) ([]byte, error) {
	if len(elements) > nMax {
		return nil, ErrLimitExceeded
	}
	if len(elements) == 0 {
		return nil, nil
	}
	return EncodeComposite(elements, variableElementShapes(len(elements)))
}

// DecodeVariableList decodes a List[T,N_max] of variable-size elements. The
// element count is derived from the offset table: the first offset, divided
// by BytesPerLengthOffset, gives the element count (spec §4.3's offset
// table is the only place the count is recorded for an all-variable
// composite).
func DecodeVariableList(data []byte, nMax int) ([][]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	if len(data) < BytesPerLengthOffset {
		return nil, ErrBufferTooShort
	}
	firstOffset := int(data[0]) | int(data[1])<<8 | int(data[2])<<16 | int(data[3])<<24
	if firstOffset <= 0 || firstOffset%BytesPerLengthOffset != 0 {
		return nil, ErrInvalidOffsets
	}
	n := firstOffset / BytesPerLengthOffset
	if n > nMax {
		return nil, ErrLimitExceeded
	}
	return DecodeComposite(data, variableElementShapes(n))
}
