package deltargb

import "fmt"

// Encoder represents a Delta-RGB encoder
type Encoder struct {
	width    int
	height   int
	progress ProgressFunc
}

// NewEncoder creates a new Delta-RGB encoder for the given dimensions
func NewEncoder(width, height int) *Encoder {
	return &Encoder{
		width:  width,
		height: height,
	}
}

// SetProgress installs an optional progress callback
func (enc *Encoder) SetProgress(fn ProgressFunc) {
	enc.progress = fn
}

// Encode encodes interleaved 8-bit RGB pixel data to the Delta-RGB format
// pixelData: raw pixel values, 3 bytes per pixel in row-major order
// Returns: encoded frame bytes
func Encode(pixelData []byte, width, height int) ([]byte, error) {
	return NewEncoder(width, height).Encode(pixelData)
}

// Encode performs the actual encoding
func (enc *Encoder) Encode(pixelData []byte) ([]byte, error) {
	if enc.width < 1 || enc.width > 0xFFFF || enc.height < 1 || enc.height > 0xFFFF {
		return nil, fmt.Errorf("%w: %dx%d (each side must be 1-65535)", ErrInvalidDimensions, enc.width, enc.height)
	}

	pixelCount := enc.width * enc.height
	if len(pixelData) != pixelCount*3 {
		return nil, fmt.Errorf("%w: %d pixel bytes for %dx%d (want %d)",
			ErrInvalidDimensions, len(pixelData), enc.width, enc.height, pixelCount*3)
	}

	bw := NewBitWriter()

	// 32-bit header: width then height, 16 bits each, MSB-first
	bw.WriteBits(uint32(enc.width), 16)
	bw.WriteBits(uint32(enc.height), 16)

	total := 3 * pixelCount
	done := 0
	notify := progressNotifier(enc.progress, total)

	// Channel substreams in fixed red, green, blue order, each with its
	// own predictor run. The order is part of the wire format.
	var coder channelCoder
	for ch := 0; ch < 3; ch++ {
		coder.reset()
		for i := 0; i < pixelCount; i++ {
			if err := coder.encodeSample(bw, int(pixelData[i*3+ch])); err != nil {
				return nil, err
			}
			done++
			notify(done)
		}
	}

	return bw.Bytes(), nil
}
