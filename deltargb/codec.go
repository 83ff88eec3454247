package deltargb

import (
	"fmt"

	"github.com/cocosip/go-delta-codec/codec"
)

// FormatUID identifies the Delta-RGB lossless format in the codec registry
const FormatUID = "delta-rgb.lossless.1"

// DeltaRGBCodec implements the codec.Codec interface for Delta-RGB Lossless
type DeltaRGBCodec struct{}

// NewDeltaRGBCodec creates a new Delta-RGB Lossless codec
func NewDeltaRGBCodec() *DeltaRGBCodec {
	return &DeltaRGBCodec{}
}

// Encode encodes frame data using Delta-RGB Lossless compression
func (c *DeltaRGBCodec) Encode(params codec.EncodeParams) ([]byte, error) {
	if params.Components != 3 {
		return nil, fmt.Errorf("%w: %d components (Delta-RGB is RGB only)", ErrInvalidComponents, params.Components)
	}
	if params.BitDepth != 0 && params.BitDepth != 8 {
		return nil, fmt.Errorf("%w: %d (Delta-RGB is 8-bit only)", ErrInvalidBitDepth, params.BitDepth)
	}

	enc := NewEncoder(params.Width, params.Height)
	if params.Options != nil {
		opts, ok := params.Options.(*Options)
		if !ok {
			return nil, fmt.Errorf("%w: options are %T, want *deltargb.Options", codec.ErrInvalidParameter, params.Options)
		}
		if err := opts.Validate(); err != nil {
			return nil, err
		}
		enc.SetProgress(opts.Progress)
	}

	return enc.Encode(params.PixelData)
}

// Decode decodes Delta-RGB Lossless compressed data
func (c *DeltaRGBCodec) Decode(data []byte) (*codec.DecodeResult, error) {
	pixelData, width, height, err := Decode(data)
	if err != nil {
		return nil, err
	}

	return &codec.DecodeResult{
		PixelData:  pixelData,
		Width:      width,
		Height:     height,
		Components: 3,
		BitDepth:   8,
	}, nil
}

// UID returns the format identifier for Delta-RGB Lossless
func (c *DeltaRGBCodec) UID() string {
	return FormatUID
}

// Name returns a human-readable name for this codec
func (c *DeltaRGBCodec) Name() string {
	return "delta-rgb-lossless"
}

// init automatically registers the codec
func init() {
	codec.Register(NewDeltaRGBCodec())
}
