package deltargb

import "fmt"

// BitWriter packs bits MSB-first into a growing byte buffer.
type BitWriter struct {
	out    []byte
	buffer uint32 // bit buffer
	nbits  int    // number of bits in buffer
}

// NewBitWriter creates a new empty bit writer
func NewBitWriter() *BitWriter {
	return &BitWriter{}
}

// WriteBit writes a single bit
func (bw *BitWriter) WriteBit(bit int) {
	bw.buffer = (bw.buffer << 1) | uint32(bit&1)
	bw.nbits++

	if bw.nbits == 8 {
		bw.flushByte()
	}
}

// WriteBits writes the low n bits of value, most significant first
func (bw *BitWriter) WriteBits(value uint32, n int) {
	for n > 0 {
		// How many bits fit in the current byte
		space := 8 - bw.nbits
		if space > n {
			space = n
		}

		shift := uint(n - space)
		chunk := (value >> shift) & ((1 << uint(space)) - 1)

		bw.buffer = (bw.buffer << uint(space)) | chunk
		bw.nbits += space
		n -= space

		if bw.nbits == 8 {
			bw.flushByte()
		}
	}
}

func (bw *BitWriter) flushByte() {
	bw.out = append(bw.out, byte(bw.buffer))
	bw.buffer = 0
	bw.nbits = 0
}

// BitLen returns the number of bits written so far, pending bits included
func (bw *BitWriter) BitLen() int {
	return len(bw.out)*8 + bw.nbits
}

// Bytes completes any pending partial byte with zero bits on the low side
// and returns the accumulated buffer. Calling Bytes again without further
// writes returns the same buffer: the pending buffer is empty after a flush.
func (bw *BitWriter) Bytes() []byte {
	if bw.nbits > 0 {
		bw.buffer <<= uint(8 - bw.nbits)
		bw.flushByte()
	}
	return bw.out
}

// BitReader reads bit groups from a byte buffer at arbitrary bit offsets,
// MSB-first. Offset 0 is the most significant bit of byte 0. The reader
// keeps no cursor; callers track their own read position.
type BitReader struct {
	data []byte
}

// NewBitReader creates a bit reader over data
func NewBitReader(data []byte) *BitReader {
	return &BitReader{data: data}
}

// BitLen returns the total number of readable bits
func (br *BitReader) BitLen() int {
	return len(br.data) * 8
}

// ReadBits reads n bits (1-16) starting at absolute bit position offset and
// returns them as an unsigned integer, first bit read in the most
// significant result position. Reads past the end of the buffer fail with
// ErrTruncatedData.
func (br *BitReader) ReadBits(offset, n int) (uint32, error) {
	if n < 1 || n > 16 {
		return 0, fmt.Errorf("%w: %d (must be 1-16)", ErrInvalidBitCount, n)
	}
	if offset < 0 || offset+n > br.BitLen() {
		return 0, fmt.Errorf("%w: need bits [%d,%d) of %d", ErrTruncatedData, offset, offset+n, br.BitLen())
	}

	var value uint32
	for i := offset; i < offset+n; i++ {
		bit := (br.data[i>>3] >> uint(7-i&7)) & 1
		value = (value << 1) | uint32(bit)
	}
	return value, nil
}
