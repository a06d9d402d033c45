// union.go implements SSZ union type encoding and decoding with a selector
// byte, type registry, validation, and round-trip support.
//
// Per the SSZ spec, a union is encoded as:
//
//	[selector_byte (1)] [value_bytes (variable)]
//
// The selector identifies which variant type is active (spec §3: selector
// in [0,127], bit 7 reserved and must be zero). Selector 0 is reserved for
// the None variant: its payload must be absent, and it encodes as the
// single byte 0x00 (spec §4.4); pairing selector 0 with a non-empty payload
// is ErrUnionSelector. The hash tree root is:
//
//	hash(hash_tree_root(value), selector_chunk)
//
// where selector_chunk is a 32-byte chunk with the selector in byte 0.
//
// This codec provides a UnionTypeRegistry for registering variant types and
// UnionValue for encoding/decoding concrete union instances.
package ssz

import (
	"errors"
	"fmt"
)

// Union codec errors.
var (
	ErrUnionSelectorUnknown   = errors.New("ssz: unknown union selector")
	ErrUnionSelectorDuplicate = errors.New("ssz: duplicate union selector")
	ErrUnionRegistryEmpty     = errors.New("ssz: union registry has no types")
	ErrUnionDataTooShort      = errors.New("ssz: union data too short for selector")
	ErrUnionNilCodec          = errors.New("ssz: nil union codec provided")
	ErrUnionNilValue          = errors.New("ssz: nil union value")
	ErrUnionValueMismatch     = errors.New("ssz: union value does not match selector")
)

// MaxUnionVariants is the maximum number of variant types in a union: the
// selector is a single byte with bit 7 reserved (spec §3), so valid
// selectors are 0-127.
const MaxUnionVariants = 128

// UnionVariantCodec defines how to encode, decode, and hash a specific
// union variant type.
type UnionVariantCodec struct {
	// Selector is the unique byte identifying this variant, in [1,127]
	// (selector 0 is the built-in None variant and cannot be registered).
	Selector byte
	// Name is a human-readable name for the variant.
	Name string
	// FixedSize is the fixed SSZ size of the variant, or 0 if variable-size.
	FixedSize int
	// Encode serializes a variant value to SSZ bytes.
	Encode func(value interface{}) ([]byte, error)
	// Decode deserializes SSZ bytes into a variant value.
	Decode func(data []byte) (interface{}, error)
	// HashTreeRootFn computes the hash tree root of a variant value.
	HashTreeRootFn func(value interface{}) ([32]byte, error)
}

// UnionTypeRegistry holds the set of variant types for a union.
type UnionTypeRegistry struct {
	variants map[byte]*UnionVariantCodec
	names    map[string]byte // name -> selector mapping
}

// NewUnionTypeRegistry creates an empty union type registry.
func NewUnionTypeRegistry() *UnionTypeRegistry {
	return &UnionTypeRegistry{
		variants: make(map[byte]*UnionVariantCodec),
		names:    make(map[string]byte),
	}
}

// Register adds a variant codec to the registry. Selectors above 127 are
// rejected with ErrUnionSelector. Selector 0 is reserved for the built-in
// None variant (spec §4.4) and may not be registered as an ordinary payload
// type.
func (r *UnionTypeRegistry) Register(codec *UnionVariantCodec) error {
	if codec == nil {
		return ErrUnionNilCodec
	}
	if codec.Selector > 127 {
		return fmt.Errorf("%w: selector %d exceeds 127", ErrUnionSelector, codec.Selector)
	}
	if codec.Selector == NoneSelector {
		return fmt.Errorf("%w: selector 0 is reserved for None", ErrUnionSelector)
	}
	if _, exists := r.variants[codec.Selector]; exists {
		return fmt.Errorf("%w: selector %d", ErrUnionSelectorDuplicate, codec.Selector)
	}
	r.variants[codec.Selector] = codec
	if codec.Name != "" {
		r.names[codec.Name] = codec.Selector
	}
	return nil
}

// Lookup returns the variant codec for the given selector.
func (r *UnionTypeRegistry) Lookup(selector byte) (*UnionVariantCodec, error) {
	codec, ok := r.variants[selector]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnionSelectorUnknown, selector)
	}
	return codec, nil
}

// LookupByName returns the variant codec for the given name.
func (r *UnionTypeRegistry) LookupByName(name string) (*UnionVariantCodec, error) {
	sel, ok := r.names[name]
	if !ok {
		return nil, fmt.Errorf("%w: name %q", ErrUnionSelectorUnknown, name)
	}
	return r.variants[sel], nil
}

// Count returns the number of registered variants.
func (r *UnionTypeRegistry) Count() int {
	return len(r.variants)
}

// Selectors returns all registered selector bytes in ascending order.
func (r *UnionTypeRegistry) Selectors() []byte {
	sels := make([]byte, 0, len(r.variants))
	for s := range r.variants {
		sels = append(sels, s)
	}
	for i := 0; i < len(sels); i++ {
		for j := i + 1; j < len(sels); j++ {
			if sels[j] < sels[i] {
				sels[i], sels[j] = sels[j], sels[i]
			}
		}
	}
	return sels
}

// UnionValue is an encoded union instance with a selector and value.
type UnionValue struct {
	Selector byte
	Value    interface{}
}

// UnionCodec encodes and decodes union values using a type registry.
type UnionCodec struct {
	registry *UnionTypeRegistry
}

// NewUnionCodec creates a union codec backed by the given registry.
func NewUnionCodec(registry *UnionTypeRegistry) *UnionCodec {
	return &UnionCodec{registry: registry}
}

// Encode serializes a union value to SSZ bytes: [selector][value_bytes].
// Selector 0 is the reserved None variant: its payload must be absent, and
// it encodes as the single byte 0x00 (spec §4.4). A non-nil Value paired
// with selector 0 is ErrUnionSelector.
func (uc *UnionCodec) Encode(uv *UnionValue) ([]byte, error) {
	if uv == nil {
		return nil, ErrUnionNilValue
	}
	if uv.Selector > 127 {
		return nil, ErrUnionSelector
	}
	if uv.Selector == NoneSelector {
		if uv.Value != nil {
			return nil, ErrUnionSelector
		}
		return []byte{NoneSelector}, nil
	}
	codec, err := uc.registry.Lookup(uv.Selector)
	if err != nil {
		return nil, err
	}
	if codec.Encode == nil {
		return nil, fmt.Errorf("%w: no encode function for selector %d",
			ErrUnionNilCodec, uv.Selector)
	}
	valueBytes, err := codec.Encode(uv.Value)
	if err != nil {
		return nil, fmt.Errorf("ssz: union encode variant %d: %w", uv.Selector, err)
	}
	out := make([]byte, 1+len(valueBytes))
	out[0] = uv.Selector
	copy(out[1:], valueBytes)
	return out, nil
}

// Decode deserializes SSZ bytes into a union value. A selector-0 (None)
// encoding must carry no payload bytes; any trailing bytes after the
// selector is ErrUnionSelector.
func (uc *UnionCodec) Decode(data []byte) (*UnionValue, error) {
	if len(data) < 1 {
		return nil, ErrUnionDataTooShort
	}
	selector := data[0]
	if selector > 127 {
		return nil, ErrUnionSelector
	}
	if selector == NoneSelector {
		if len(data) != 1 {
			return nil, ErrUnionSelector
		}
		return NewNoneValue(), nil
	}
	codec, err := uc.registry.Lookup(selector)
	if err != nil {
		return nil, err
	}
	if codec.Decode == nil {
		return nil, fmt.Errorf("%w: no decode function for selector %d",
			ErrUnionNilCodec, selector)
	}
	value, err := codec.Decode(data[1:])
	if err != nil {
		return nil, fmt.Errorf("ssz: union decode variant %d: %w", selector, err)
	}
	return &UnionValue{
		Selector: selector,
		Value:    value,
	}, nil
}

// HashTreeRoot computes the union hash tree root:
//
//	hash(hash_tree_root(value), selector_chunk)
//
// For the None variant (selector 0), the value root is the all-zero chunk
// (spec.md Open Question: "Union selector=0 payload root").
func (uc *UnionCodec) HashTreeRoot(uv *UnionValue) ([32]byte, error) {
	if uv == nil {
		return [32]byte{}, ErrUnionNilValue
	}
	if uv.Selector == NoneSelector {
		if uv.Value != nil {
			return [32]byte{}, ErrUnionSelector
		}
		return HashTreeRootUnion(zeroHash(), NoneSelector)
	}
	codec, err := uc.registry.Lookup(uv.Selector)
	if err != nil {
		return [32]byte{}, err
	}
	if codec.HashTreeRootFn == nil {
		return [32]byte{}, fmt.Errorf("%w: no hash function for selector %d",
			ErrUnionNilCodec, uv.Selector)
	}
	valueRoot, err := codec.HashTreeRootFn(uv.Value)
	if err != nil {
		return [32]byte{}, fmt.Errorf("ssz: union hash variant %d: %w", uv.Selector, err)
	}
	return HashTreeRootUnion(valueRoot, uv.Selector)
}

// SizeSSZ returns the serialized size of a union value (1 + value size).
// The None variant (selector 0) is always exactly 1 byte.
func (uc *UnionCodec) SizeSSZ(uv *UnionValue) (int, error) {
	if uv == nil {
		return 0, ErrUnionNilValue
	}
	if uv.Selector == NoneSelector {
		if uv.Value != nil {
			return 0, ErrUnionSelector
		}
		return 1, nil
	}
	codec, err := uc.registry.Lookup(uv.Selector)
	if err != nil {
		return 0, err
	}
	if codec.FixedSize > 0 {
		return 1 + codec.FixedSize, nil
	}
	if codec.Encode == nil {
		return 0, fmt.Errorf("%w: no encode function for selector %d",
			ErrUnionNilCodec, uv.Selector)
	}
	valueBytes, err := codec.Encode(uv.Value)
	if err != nil {
		return 0, err
	}
	return 1 + len(valueBytes), nil
}

// Validate checks that a union value is valid for the registry. Selector 0
// is valid only when paired with a nil Value (the None variant).
func (uc *UnionCodec) Validate(uv *UnionValue) error {
	if uv == nil {
		return ErrUnionNilValue
	}
	if uv.Selector > 127 {
		return ErrUnionSelector
	}
	if uv.Selector == NoneSelector {
		if uv.Value != nil {
			return ErrUnionSelector
		}
		return nil
	}
	_, err := uc.registry.Lookup(uv.Selector)
	return err
}

// RoundTrip encodes and decodes a union value, verifying lossless
// serialization. Returns the decoded value.
func (uc *UnionCodec) RoundTrip(uv *UnionValue) (*UnionValue, error) {
	encoded, err := uc.Encode(uv)
	if err != nil {
		return nil, fmt.Errorf("ssz: round-trip encode: %w", err)
	}
	decoded, err := uc.Decode(encoded)
	if err != nil {
		return nil, fmt.Errorf("ssz: round-trip decode: %w", err)
	}
	return decoded, nil
}

// NoneSelector is the conventional selector byte for the "None" variant in
// optional unions.
const NoneSelector byte = 0

// IsNone checks whether a union value represents the None variant.
func IsNone(uv *UnionValue) bool {
	return uv != nil && uv.Selector == NoneSelector && uv.Value == nil
}

// NewNoneValue creates a None union value with selector 0 and nil value.
func NewNoneValue() *UnionValue {
	return &UnionValue{Selector: NoneSelector, Value: nil}
}
