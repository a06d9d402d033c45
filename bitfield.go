// bitfield.go implements SSZ bitfield types: Bitlist and Bitvector.
//
// A Bitlist is a variable-length sequence of bits with a trailing delimiter
// bit in the serialized form. It is used in the consensus layer for
// aggregation bitfields in attestations (e.g., which validators participated).
//
// A Bitvector is a fixed-length sequence of bits. It is used for fixed-size
// bitfields like sync committee participation.
//
// Both types support bit get/set, population counting, and SSZ
// Merkleization (hash tree root computation).
//
// Spec: https://github.com/ethereum/consensus-specs/blob/dev/ssz/simple-serialize.md
package ssz

// Bitlist is a variable-length bit array. The underlying byte slice includes
// a trailing delimiter bit to encode the length. The usable bit capacity is
// determined by the position of the highest set bit in the serialized form.
type Bitlist struct {
	data   []byte
	length int // number of usable bits (excludes delimiter)
}

// NewBitlist creates a new Bitlist with the given number of usable bits,
// bounded by maxLength (spec §4.2 bullet 3: len <= N). All bits are
// initially unset. The serialized form includes a delimiter bit.
func NewBitlist(length, maxLength int) (Bitlist, error) {
	if length < 0 || length > maxLength {
		return Bitlist{}, ErrLimitExceeded
	}
	totalBits := length + 1
	numBytes := (totalBits + 7) / 8
	data := make([]byte, numBytes)
	data[length/8] |= 1 << (uint(length) % 8)
	return Bitlist{data: data, length: length}, nil
}

// BitlistFromBytes parses a Bitlist from raw serialized bytes (with
// delimiter), bounded by maxLength. Returns ErrInvalidValue if no delimiter
// bit is found (the convention used throughout consensus-layer SSZ: the
// delimiter is the highest set bit of the last byte, so the last byte must
// be nonzero), ErrInvalidValue if data is longer than the maximum
// ⌈(maxLength+1)/8⌉ bytes a Bitlist[maxLength] can ever need (spec §4.2
// bullet 3: no bits may exist in trailing bytes beyond that boundary), and
// ErrLimitExceeded if the decoded length exceeds maxLength despite data
// fitting within that byte bound.
func BitlistFromBytes(data []byte, maxLength int) (Bitlist, error) {
	if len(data) == 0 {
		return Bitlist{}, ErrBufferTooShort
	}
	maxBytes := (maxLength + 1 + 7) / 8
	if len(data) > maxBytes {
		return Bitlist{}, ErrInvalidValue
	}
	lastByte := data[len(data)-1]
	if lastByte == 0 {
		return Bitlist{}, ErrInvalidValue
	}
	delimiterBitInByte := 0
	for b := lastByte; b > 1; b >>= 1 {
		delimiterBitInByte++
	}
	delimiterPos := (len(data)-1)*8 + delimiterBitInByte
	length := delimiterPos
	if length > maxLength {
		return Bitlist{}, ErrLimitExceeded
	}

	// Any bits in the last byte above the delimiter must be zero.
	for i := delimiterBitInByte + 1; i < 8; i++ {
		if lastByte&(1<<uint(i)) != 0 {
			return Bitlist{}, ErrInvalidValue
		}
	}

	cp := make([]byte, len(data))
	copy(cp, data)
	return Bitlist{data: cp, length: length}, nil
}

// Set sets the bit at the given index. Out-of-bounds indices are ignored.
func (b Bitlist) Set(index int) {
	if index < 0 || index >= b.length {
		return
	}
	b.data[index/8] |= 1 << (uint(index) % 8)
}

// Get returns true if the bit at the given index is set.
func (b Bitlist) Get(index int) bool {
	if index < 0 || index >= b.length {
		return false
	}
	return b.data[index/8]&(1<<(uint(index)%8)) != 0
}

// Len returns the number of usable bits (excludes delimiter).
func (b Bitlist) Len() int {
	return b.length
}

// Count returns the number of set bits (population count), excluding the
// delimiter.
func (b Bitlist) Count() int {
	count := 0
	for i := 0; i < b.length; i++ {
		if b.Get(i) {
			count++
		}
	}
	return count
}

// Bytes returns a copy of the underlying serialized bytes (with delimiter).
func (b Bitlist) Bytes() []byte {
	cp := make([]byte, len(b.data))
	copy(cp, b.data)
	return cp
}

// BitlistHashTreeRoot computes the SSZ hash tree root of a bitlist. The
// bitfield is packed (without delimiter) into chunks, Merkleized with a
// limit derived from maxLength, and mixed in with the actual bit count.
func BitlistHashTreeRoot(b Bitlist, maxLength int) ([32]byte, error) {
	packed := packBitsWithoutDelimiter(b)
	chunks := Pack(packed)
	maxChunks := ChunkCountBitlist(maxLength)
	root, err := Merkleize(chunks, maxChunks)
	if err != nil {
		return [32]byte{}, err
	}
	return MixInLength(root, uint64(b.length)), nil
}

// packBitsWithoutDelimiter extracts the data bits (excluding the delimiter)
// as bytes.
func packBitsWithoutDelimiter(b Bitlist) []byte {
	numBytes := (b.length + 7) / 8
	if numBytes == 0 {
		return nil
	}
	result := make([]byte, numBytes)
	for i := 0; i < b.length; i++ {
		if b.Get(i) {
			result[i/8] |= 1 << (uint(i) % 8)
		}
	}
	return result
}

// --- Bitvector ---

// Bitvector is a fixed-length bit array. Unlike Bitlist, it has no
// delimiter bit. The length is always known at construction time.
type Bitvector struct {
	data   []byte
	length int
}

// NewBitvector creates a new Bitvector with the given length. N=0 is
// invalid (spec invariant: Bitvector[0] does not exist). All bits start
// unset.
func NewBitvector(length int) (Bitvector, error) {
	if length <= 0 {
		return Bitvector{}, ErrEmptyVector
	}
	numBytes := (length + 7) / 8
	return Bitvector{
		data:   make([]byte, numBytes),
		length: length,
	}, nil
}

// BitvectorFromBytes creates a Bitvector from raw bytes with the given bit
// length. data must be exactly ceil(length/8) bytes, and any padding bits
// beyond position length-1 in the final byte must be zero (spec
// invariant 3).
func BitvectorFromBytes(data []byte, length int) (Bitvector, error) {
	if length <= 0 {
		return Bitvector{}, ErrEmptyVector
	}
	expectedBytes := (length + 7) / 8
	if len(data) != expectedBytes {
		return Bitvector{}, ErrLengthMismatch
	}
	if trailing := length % 8; trailing != 0 {
		mask := byte(0xff << uint(trailing))
		if data[expectedBytes-1]&mask != 0 {
			return Bitvector{}, ErrInvalidValue
		}
	}
	cp := make([]byte, expectedBytes)
	copy(cp, data)
	return Bitvector{data: cp, length: length}, nil
}

// Set sets the bit at the given index.
func (bv Bitvector) Set(index int) {
	if index < 0 || index >= bv.length {
		return
	}
	bv.data[index/8] |= 1 << (uint(index) % 8)
}

// Get returns true if the bit at the given index is set.
func (bv Bitvector) Get(index int) bool {
	if index < 0 || index >= bv.length {
		return false
	}
	return bv.data[index/8]&(1<<(uint(index)%8)) != 0
}

// Len returns the fixed bit length of the bitvector.
func (bv Bitvector) Len() int {
	return bv.length
}

// Count returns the number of set bits (population count).
func (bv Bitvector) Count() int {
	count := 0
	for i := 0; i < bv.length; i++ {
		if bv.Get(i) {
			count++
		}
	}
	return count
}

// Bytes returns a copy of the underlying byte data.
func (bv Bitvector) Bytes() []byte {
	cp := make([]byte, len(bv.data))
	copy(cp, bv.data)
	return cp
}

// BitvectorHashTreeRoot computes the SSZ hash tree root of a bitvector: the
// bits are packed into bytes, then into 32-byte chunks and Merkleized with
// no limit.
func BitvectorHashTreeRoot(bv Bitvector) ([32]byte, error) {
	chunks := Pack(bv.data)
	return Merkleize(chunks, 0)
}

// ChunkCountBitvector returns the number of 32-byte chunks needed for a
// Bitvector of the given bit length.
func ChunkCountBitvector(bitLength int) int {
	if bitLength <= 0 {
		return 1
	}
	return (bitLength + 255) / 256
}

// ChunkCountBitlist returns the number of 32-byte chunks needed for a
// Bitlist whose declared maximum bit length is maxLength.
func ChunkCountBitlist(maxLength int) int {
	return ChunkCountBitvector(maxLength)
}

// --- Bitlist/Bitvector (de)serialization helpers ---

// BitlistMarshalSSZ serializes a bitlist with its delimiter bit.
func BitlistMarshalSSZ(b Bitlist) []byte {
	return b.Bytes()
}

// BitlistUnmarshalSSZ deserializes a bitlist from SSZ bytes, bounded by
// maxLength.
func BitlistUnmarshalSSZ(data []byte, maxLength int) (Bitlist, error) {
	return BitlistFromBytes(data, maxLength)
}

// BitvectorMarshalSSZ serializes a bitvector as packed bytes.
func BitvectorMarshalSSZ(bv Bitvector) []byte {
	return bv.Bytes()
}

// BitvectorUnmarshalSSZ deserializes a bitvector from SSZ bytes.
func BitvectorUnmarshalSSZ(data []byte, length int) (Bitvector, error) {
	return BitvectorFromBytes(data, length)
}
