package deltargb

import "fmt"

// Decoder represents a Delta-RGB decoder
type Decoder struct {
	progress ProgressFunc
}

// NewDecoder creates a new Delta-RGB decoder
func NewDecoder() *Decoder {
	return &Decoder{}
}

// SetProgress installs an optional progress callback
func (dec *Decoder) SetProgress(fn ProgressFunc) {
	dec.progress = fn
}

// Decode decodes a Delta-RGB frame
// Returns: pixelData (interleaved RGB), width, height
func Decode(data []byte) ([]byte, int, int, error) {
	return NewDecoder().Decode(data)
}

// Decode performs the actual decoding. The format carries no per-channel
// length or end marker; the sample count derived from the header is what
// tells each channel substream apart. A truncated buffer surfaces as
// ErrTruncatedData with no partial output.
func (dec *Decoder) Decode(data []byte) ([]byte, int, int, error) {
	br := NewBitReader(data)

	w, err := br.ReadBits(0, 16)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("reading header: %w", err)
	}
	h, err := br.ReadBits(16, 16)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("reading header: %w", err)
	}

	width, height := int(w), int(h)
	if width == 0 || height == 0 {
		return nil, 0, 0, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}

	pixelCount := width * height
	pixels := make([]byte, pixelCount*3)

	total := 3 * pixelCount
	done := 0
	notify := progressNotifier(dec.progress, total)

	// Single running bit cursor across all three substreams, threaded
	// explicitly through each sample read.
	cursor := 32

	var coder channelCoder
	for ch := 0; ch < 3; ch++ {
		coder.reset()
		for i := 0; i < pixelCount; i++ {
			var sample int
			sample, cursor, err = coder.decodeSample(br, cursor)
			if err != nil {
				return nil, 0, 0, err
			}
			pixels[i*3+ch] = byte(sample)
			done++
			notify(done)
		}
	}

	return pixels, width, height, nil
}
