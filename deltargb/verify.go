package deltargb

import "fmt"

// VerifyRoundTrip encodes pixelData, decodes the result and compares it
// byte-for-byte against the source. Any difference is reported as
// ErrPixelMismatch with the first differing position. This is a caller-side
// check; Encode and Decode never return it themselves.
func VerifyRoundTrip(pixelData []byte, width, height int) error {
	encoded, err := Encode(pixelData, width, height)
	if err != nil {
		return err
	}

	decoded, dw, dh, err := Decode(encoded)
	if err != nil {
		return err
	}

	if dw != width || dh != height {
		return fmt.Errorf("%w: dimensions %dx%d, want %dx%d", ErrPixelMismatch, dw, dh, width, height)
	}
	if len(decoded) != len(pixelData) {
		return fmt.Errorf("%w: %d pixel bytes, want %d", ErrPixelMismatch, len(decoded), len(pixelData))
	}
	for i := range pixelData {
		if decoded[i] != pixelData[i] {
			return fmt.Errorf("%w: first difference at byte %d (got %d, want %d)",
				ErrPixelMismatch, i, decoded[i], pixelData[i])
		}
	}
	return nil
}
