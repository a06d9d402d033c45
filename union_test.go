package ssz

import (
	"bytes"
	"errors"
	"testing"
)

func uint64VariantCodec(selector byte, name string) *UnionVariantCodec {
	return &UnionVariantCodec{
		Selector:  selector,
		Name:      name,
		FixedSize: 8,
		Encode: func(value interface{}) ([]byte, error) {
			v, _ := value.(uint64)
			return MarshalUint64(v), nil
		},
		Decode: func(data []byte) (interface{}, error) {
			return UnmarshalUint64(data)
		},
		HashTreeRootFn: func(value interface{}) ([32]byte, error) {
			v, _ := value.(uint64)
			return HashTreeRootUint64(v), nil
		},
	}
}

func TestUnionRegistryRegisterAndLookup(t *testing.T) {
	r := NewUnionTypeRegistry()
	if err := r.Register(uint64VariantCodec(1, "amount")); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := r.Register(uint64VariantCodec(2, "balance")); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if r.Count() != 2 {
		t.Fatalf("Count() = %d, want 2", r.Count())
	}
	codec, err := r.Lookup(2)
	if err != nil || codec.Name != "balance" {
		t.Fatalf("Lookup(2): codec=%v, err=%v", codec, err)
	}
	codec, err = r.LookupByName("amount")
	if err != nil || codec.Selector != 1 {
		t.Fatalf("LookupByName: codec=%v, err=%v", codec, err)
	}
}

func TestUnionRegistryDuplicateSelector(t *testing.T) {
	r := NewUnionTypeRegistry()
	r.Register(uint64VariantCodec(1, "a"))
	if err := r.Register(uint64VariantCodec(1, "b")); !errors.Is(err, ErrUnionSelectorDuplicate) {
		t.Fatalf("err = %v, want ErrUnionSelectorDuplicate", err)
	}
}

func TestUnionRegistryNilCodec(t *testing.T) {
	r := NewUnionTypeRegistry()
	if err := r.Register(nil); err != ErrUnionNilCodec {
		t.Fatalf("err = %v, want ErrUnionNilCodec", err)
	}
}

func TestUnionRegistrySelectorAbove127Rejected(t *testing.T) {
	r := NewUnionTypeRegistry()
	if err := r.Register(uint64VariantCodec(200, "bad")); err == nil {
		t.Fatal("expected error for selector above 127")
	}
}

func TestUnionRegistrySelectorZeroRejected(t *testing.T) {
	r := NewUnionTypeRegistry()
	if err := r.Register(uint64VariantCodec(0, "bad")); !errors.Is(err, ErrUnionSelector) {
		t.Fatalf("err = %v, want ErrUnionSelector (selector 0 is reserved for None)", err)
	}
}

func TestUnionRegistrySelectorsSorted(t *testing.T) {
	r := NewUnionTypeRegistry()
	r.Register(uint64VariantCodec(5, "x"))
	r.Register(uint64VariantCodec(1, "y"))
	r.Register(uint64VariantCodec(3, "z"))
	sels := r.Selectors()
	want := []byte{1, 3, 5}
	if len(sels) != len(want) {
		t.Fatalf("len(sels) = %d, want %d", len(sels), len(want))
	}
	for i := range want {
		if sels[i] != want[i] {
			t.Errorf("sels[%d] = %d, want %d", i, sels[i], want[i])
		}
	}
}

func TestUnionCodecEncodeDecodeRoundTrip(t *testing.T) {
	r := NewUnionTypeRegistry()
	r.Register(uint64VariantCodec(1, "amount"))
	uc := NewUnionCodec(r)

	uv := &UnionValue{Selector: 1, Value: uint64(42)}
	encoded, err := uc.Encode(uv)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if encoded[0] != 1 {
		t.Fatalf("encoded selector byte = %d, want 1", encoded[0])
	}
	if !bytes.Equal(encoded[1:], MarshalUint64(42)) {
		t.Errorf("encoded value bytes mismatch")
	}

	decoded, err := uc.Decode(encoded)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if decoded.Selector != 1 || decoded.Value.(uint64) != 42 {
		t.Errorf("decoded mismatch: %+v", decoded)
	}
}

func TestUnionCodecEncodeSelectorAbove127(t *testing.T) {
	r := NewUnionTypeRegistry()
	uc := NewUnionCodec(r)
	if _, err := uc.Encode(&UnionValue{Selector: 200, Value: uint64(1)}); err != ErrUnionSelector {
		t.Fatalf("err = %v, want ErrUnionSelector", err)
	}
}

func TestUnionCodecDecodeDataTooShort(t *testing.T) {
	r := NewUnionTypeRegistry()
	uc := NewUnionCodec(r)
	if _, err := uc.Decode(nil); err != ErrUnionDataTooShort {
		t.Fatalf("err = %v, want ErrUnionDataTooShort", err)
	}
}

func TestUnionCodecDecodeSelectorAbove127(t *testing.T) {
	r := NewUnionTypeRegistry()
	uc := NewUnionCodec(r)
	if _, err := uc.Decode([]byte{200, 1, 2, 3}); err != ErrUnionSelector {
		t.Fatalf("err = %v, want ErrUnionSelector", err)
	}
}

func TestUnionCodecDecodeUnknownSelector(t *testing.T) {
	r := NewUnionTypeRegistry()
	uc := NewUnionCodec(r)
	if _, err := uc.Decode([]byte{5, 1}); !errors.Is(err, ErrUnionSelectorUnknown) {
		t.Fatalf("err = %v, want ErrUnionSelectorUnknown", err)
	}
}

func TestUnionCodecHashTreeRoot(t *testing.T) {
	r := NewUnionTypeRegistry()
	r.Register(uint64VariantCodec(2, "x"))
	uc := NewUnionCodec(r)
	uv := &UnionValue{Selector: 2, Value: uint64(7)}
	root, err := uc.HashTreeRoot(uv)
	if err != nil {
		t.Fatalf("HashTreeRoot: %v", err)
	}
	want := MixInSelector(HashTreeRootUint64(7), 2)
	if root != want {
		t.Errorf("HashTreeRoot mismatch")
	}
}

func TestUnionCodecSizeSSZ(t *testing.T) {
	r := NewUnionTypeRegistry()
	r.Register(uint64VariantCodec(1, "x"))
	uc := NewUnionCodec(r)
	size, err := uc.SizeSSZ(&UnionValue{Selector: 1, Value: uint64(1)})
	if err != nil {
		t.Fatalf("SizeSSZ: %v", err)
	}
	if size != 9 {
		t.Errorf("SizeSSZ = %d, want 9", size)
	}
}

func TestUnionCodecValidate(t *testing.T) {
	r := NewUnionTypeRegistry()
	r.Register(uint64VariantCodec(1, "x"))
	uc := NewUnionCodec(r)
	if err := uc.Validate(&UnionValue{Selector: 1}); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if err := uc.Validate(nil); err != ErrUnionNilValue {
		t.Fatalf("Validate(nil): err = %v, want ErrUnionNilValue", err)
	}
	if err := uc.Validate(&UnionValue{Selector: 200}); err != ErrUnionSelector {
		t.Fatalf("err = %v, want ErrUnionSelector", err)
	}
}

func TestUnionCodecRoundTrip(t *testing.T) {
	r := NewUnionTypeRegistry()
	r.Register(uint64VariantCodec(1, "x"))
	uc := NewUnionCodec(r)
	uv := &UnionValue{Selector: 1, Value: uint64(123)}
	decoded, err := uc.RoundTrip(uv)
	if err != nil {
		t.Fatalf("RoundTrip: %v", err)
	}
	if decoded.Value.(uint64) != 123 {
		t.Errorf("RoundTrip value mismatch: %v", decoded.Value)
	}
}

func TestNoneValue(t *testing.T) {
	none := NewNoneValue()
	if !IsNone(none) {
		t.Error("NewNoneValue should be recognized by IsNone")
	}
	if IsNone(&UnionValue{Selector: 1, Value: nil}) {
		t.Error("non-zero selector should not be None")
	}
}

func TestUnionCodecEncodeNoneIsSingleZeroByte(t *testing.T) {
	r := NewUnionTypeRegistry()
	uc := NewUnionCodec(r)
	encoded, err := uc.Encode(NewNoneValue())
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !bytes.Equal(encoded, []byte{0x00}) {
		t.Errorf("encoded None = %v, want [0x00]", encoded)
	}
}

func TestUnionCodecEncodeSelectorZeroWithPayloadRejected(t *testing.T) {
	r := NewUnionTypeRegistry()
	uc := NewUnionCodec(r)
	if _, err := uc.Encode(&UnionValue{Selector: 0, Value: uint64(1)}); err != ErrUnionSelector {
		t.Fatalf("err = %v, want ErrUnionSelector", err)
	}
}

func TestUnionCodecDecodeNone(t *testing.T) {
	r := NewUnionTypeRegistry()
	uc := NewUnionCodec(r)
	decoded, err := uc.Decode([]byte{0x00})
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !IsNone(decoded) {
		t.Errorf("decoded = %+v, want None", decoded)
	}
}

func TestUnionCodecDecodeSelectorZeroWithTrailingBytesRejected(t *testing.T) {
	r := NewUnionTypeRegistry()
	uc := NewUnionCodec(r)
	if _, err := uc.Decode([]byte{0x00, 0x01}); err != ErrUnionSelector {
		t.Fatalf("err = %v, want ErrUnionSelector", err)
	}
}

func TestUnionCodecSizeSSZNone(t *testing.T) {
	r := NewUnionTypeRegistry()
	uc := NewUnionCodec(r)
	size, err := uc.SizeSSZ(NewNoneValue())
	if err != nil {
		t.Fatalf("SizeSSZ: %v", err)
	}
	if size != 1 {
		t.Errorf("SizeSSZ(None) = %d, want 1", size)
	}
	if _, err := uc.SizeSSZ(&UnionValue{Selector: 0, Value: uint64(1)}); err != ErrUnionSelector {
		t.Fatalf("err = %v, want ErrUnionSelector", err)
	}
}

func TestUnionCodecValidateNone(t *testing.T) {
	r := NewUnionTypeRegistry()
	uc := NewUnionCodec(r)
	if err := uc.Validate(NewNoneValue()); err != nil {
		t.Fatalf("Validate(None): %v", err)
	}
	if err := uc.Validate(&UnionValue{Selector: 0, Value: uint64(1)}); err != ErrUnionSelector {
		t.Fatalf("err = %v, want ErrUnionSelector", err)
	}
}

func TestUnionCodecRoundTripNone(t *testing.T) {
	r := NewUnionTypeRegistry()
	uc := NewUnionCodec(r)
	decoded, err := uc.RoundTrip(NewNoneValue())
	if err != nil {
		t.Fatalf("RoundTrip: %v", err)
	}
	if !IsNone(decoded) {
		t.Errorf("RoundTrip(None) = %+v, want None", decoded)
	}
}

func TestUnionCodecHashTreeRootNone(t *testing.T) {
	r := NewUnionTypeRegistry()
	uc := NewUnionCodec(r)
	root, err := uc.HashTreeRoot(NewNoneValue())
	if err != nil {
		t.Fatalf("HashTreeRoot(None): %v", err)
	}
	want, err := HashTreeRootUnion(zeroHash(), 0)
	if err != nil {
		t.Fatalf("HashTreeRootUnion: %v", err)
	}
	if root != want {
		t.Errorf("HashTreeRoot(None) mismatch")
	}
}
