package deltargb

import (
	"errors"
	"testing"

	"github.com/cocosip/go-delta-codec/codec"
)

// TestCodecInterface tests the Codec interface implementation
func TestCodecInterface(t *testing.T) {
	c := NewDeltaRGBCodec()

	if c.UID() != FormatUID {
		t.Errorf("UID = %q, want %q", c.UID(), FormatUID)
	}
	if c.Name() == "" {
		t.Error("Name should not be empty")
	}

	// init must have registered the codec under both keys
	for _, key := range []string{FormatUID, c.Name()} {
		got, err := codec.Get(key)
		if err != nil {
			t.Errorf("codec.Get(%q) error: %v", key, err)
			continue
		}
		if got.UID() != FormatUID {
			t.Errorf("codec.Get(%q).UID() = %q, want %q", key, got.UID(), FormatUID)
		}
	}
}

// TestCodecEncodeDecode tests a full round trip through the interface
func TestCodecEncodeDecode(t *testing.T) {
	c := NewDeltaRGBCodec()

	width, height := 64, 48
	pixelData := codec.GradientFrame(width, height)

	params := codec.EncodeParams{
		PixelData:  pixelData,
		Width:      width,
		Height:     height,
		Components: 3,
		BitDepth:   8,
	}

	compressed, err := c.Encode(params)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	t.Logf("Compressed size: %d bytes (%.2fx)", len(compressed),
		float64(len(pixelData))/float64(len(compressed)))

	result, err := c.Decode(compressed)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if result.Width != width || result.Height != height {
		t.Errorf("Dimensions = %dx%d, want %dx%d", result.Width, result.Height, width, height)
	}
	if result.Components != 3 {
		t.Errorf("Components = %d, want 3", result.Components)
	}
	if result.BitDepth != 8 {
		t.Errorf("BitDepth = %d, want 8", result.BitDepth)
	}

	errCount := 0
	for i := range pixelData {
		if result.PixelData[i] != pixelData[i] {
			errCount++
			if errCount <= 5 {
				t.Errorf("Pixel byte %d mismatch: got %d, want %d", i, result.PixelData[i], pixelData[i])
			}
		}
	}
	if errCount > 0 {
		t.Errorf("Total pixel errors: %d", errCount)
	}
}

// TestCodecRejectsUnsupportedLayouts tests component and bit depth checks
func TestCodecRejectsUnsupportedLayouts(t *testing.T) {
	c := NewDeltaRGBCodec()

	_, err := c.Encode(codec.EncodeParams{
		PixelData:  make([]byte, 16),
		Width:      4,
		Height:     4,
		Components: 1,
		BitDepth:   8,
	})
	if !errors.Is(err, ErrInvalidComponents) {
		t.Errorf("1-component Encode error = %v, want ErrInvalidComponents", err)
	}

	_, err = c.Encode(codec.EncodeParams{
		PixelData:  make([]byte, 4*4*3*2),
		Width:      4,
		Height:     4,
		Components: 3,
		BitDepth:   16,
	})
	if !errors.Is(err, ErrInvalidBitDepth) {
		t.Errorf("16-bit Encode error = %v, want ErrInvalidBitDepth", err)
	}
}

// badOptions is a codec.Options of the wrong concrete type
type badOptions struct{}

func (badOptions) Validate() error { return nil }

// TestCodecRejectsForeignOptions tests the options type check
func TestCodecRejectsForeignOptions(t *testing.T) {
	c := NewDeltaRGBCodec()

	_, err := c.Encode(codec.EncodeParams{
		PixelData:  make([]byte, 4*4*3),
		Width:      4,
		Height:     4,
		Components: 3,
		BitDepth:   8,
		Options:    badOptions{},
	})
	if !errors.Is(err, codec.ErrInvalidParameter) {
		t.Errorf("Encode with foreign options error = %v, want codec.ErrInvalidParameter", err)
	}
}

// TestProgressReporting tests the optional progress side channel
func TestProgressReporting(t *testing.T) {
	width, height := 10, 10
	total := 3 * width * height

	var calls int
	var lastDone, lastTotal int
	progress := func(done, tot int) {
		calls++
		if done < lastDone {
			t.Errorf("progress went backwards: %d after %d", done, lastDone)
		}
		lastDone, lastTotal = done, tot
	}

	c := NewDeltaRGBCodec()
	compressed, err := c.Encode(codec.EncodeParams{
		PixelData:  codec.GradientFrame(width, height),
		Width:      width,
		Height:     height,
		Components: 3,
		BitDepth:   8,
		Options:    &Options{Progress: progress},
	})
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	if calls == 0 {
		t.Fatal("progress callback never invoked")
	}
	if lastDone != total || lastTotal != total {
		t.Errorf("final progress = %d/%d, want %d/%d", lastDone, lastTotal, total, total)
	}

	// Decoder side uses the same notifier
	calls, lastDone = 0, 0
	dec := NewDecoder()
	dec.SetProgress(progress)
	if _, _, _, err := dec.Decode(compressed); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if calls == 0 || lastDone != total {
		t.Errorf("decode progress: %d calls, final %d, want final %d", calls, lastDone, total)
	}
}
