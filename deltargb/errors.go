package deltargb

import "errors"

// Codec errors
var (
	ErrInvalidDimensions = errors.New("invalid image dimensions")
	ErrInvalidComponents = errors.New("invalid number of components")
	ErrInvalidBitDepth   = errors.New("invalid bit depth")
	ErrSampleOutOfRange  = errors.New("sample value out of range")
	ErrTruncatedData     = errors.New("truncated encoded data")
	ErrPixelMismatch     = errors.New("decoded pixels differ from source")
	ErrInvalidBitCount   = errors.New("invalid bit count")
)
