package ssz

import "testing"

// Fuzz targets for the decode surface: none of these should panic on any
// input, malformed or otherwise. Decode errors are expected and ignored;
// only a panic or an unrecovered index-out-of-range failure counts.

func FuzzUnmarshalBool(f *testing.F) {
	f.Add([]byte{0})
	f.Add([]byte{1})
	f.Add([]byte{2})
	f.Add([]byte{})
	f.Fuzz(func(t *testing.T, data []byte) {
		_, _ = UnmarshalBool(data)
	})
}

func FuzzUnmarshalUint64(f *testing.F) {
	f.Add(MarshalUint64(0))
	f.Add(MarshalUint64(^uint64(0)))
	f.Fuzz(func(t *testing.T, data []byte) {
		_, _ = UnmarshalUint64(data)
	})
}

func FuzzUnmarshalUint256(f *testing.F) {
	f.Add(make([]byte, 32))
	f.Fuzz(func(t *testing.T, data []byte) {
		_, _ = UnmarshalUint256(data)
	})
}

func FuzzDecodeComposite(f *testing.F) {
	shapes := []FieldShape{{Size: 4}, {Variable: true}, {Size: 2}, {Variable: true}}
	parts := [][]byte{MarshalUint32(1), []byte("hello"), MarshalUint16(2), []byte("world!")}
	seed, err := EncodeComposite(parts, shapes)
	if err != nil {
		f.Fatalf("seed EncodeComposite: %v", err)
	}
	f.Add(seed)
	f.Add([]byte{})
	f.Add(make([]byte, 5))
	f.Fuzz(func(t *testing.T, data []byte) {
		_, _ = DecodeComposite(data, shapes)
	})
}

func FuzzDecodeVariableList(f *testing.F) {
	elements := [][]byte{[]byte("a"), []byte("bb"), []byte("ccc")}
	seed, err := EncodeVariableList(elements, 10)
	if err != nil {
		f.Fatalf("seed EncodeVariableList: %v", err)
	}
	f.Add(seed)
	f.Add([]byte{})
	f.Add([]byte{1, 2, 3})
	f.Fuzz(func(t *testing.T, data []byte) {
		_, _ = DecodeVariableList(data, 10)
	})
}

func FuzzDecodeFixedList(f *testing.F) {
	f.Add(make([]byte, 16))
	f.Add([]byte{1, 2, 3})
	f.Fuzz(func(t *testing.T, data []byte) {
		_, _ = DecodeFixedList(data, 4, 10)
	})
}

func FuzzBitlistFromBytes(f *testing.F) {
	b, _ := NewBitlist(10, 32)
	f.Add(b.Bytes())
	f.Add([]byte{0x00})
	f.Add([]byte{})
	f.Fuzz(func(t *testing.T, data []byte) {
		_, _ = BitlistFromBytes(data, 32)
	})
}

func FuzzBitvectorFromBytes(f *testing.F) {
	bv, _ := NewBitvector(12)
	f.Add(bv.Bytes())
	f.Add([]byte{})
	f.Fuzz(func(t *testing.T, data []byte) {
		_, _ = BitvectorFromBytes(data, 12)
	})
}

func FuzzMerkleize(f *testing.F) {
	f.Add(uint8(3))
	f.Fuzz(func(t *testing.T, n uint8) {
		chunks := make([][32]byte, int(n)%64)
		for i := range chunks {
			chunks[i][0] = byte(i)
		}
		_, _ = Merkleize(chunks, 0)
	})
}

func FuzzUnionCodecDecode(f *testing.F) {
	r := NewUnionTypeRegistry()
	r.Register(uint64VariantCodec(1, "amount"))
	uc := NewUnionCodec(r)
	f.Add([]byte{0, 1, 2, 3, 4, 5, 6, 7, 8})
	f.Add([]byte{})
	f.Add([]byte{200})
	f.Fuzz(func(t *testing.T, data []byte) {
		_, _ = uc.Decode(data)
	})
}
