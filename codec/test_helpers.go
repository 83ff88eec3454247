package codec

import (
	"github.com/anthonynsimon/bild/noise"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// GradientFrame builds an interleaved 8-bit RGB frame containing a smooth
// horizontal hue sweep with vertical brightness ramp. Neighboring samples
// differ by small amounts, which is the friendly case for predictive codecs.
func GradientFrame(width, height int) []byte {
	frame := make([]byte, width*height*3)
	for y := 0; y < height; y++ {
		value := 0.35 + 0.65*float64(y)/float64(height)
		for x := 0; x < width; x++ {
			hue := 360 * float64(x) / float64(width)
			r, g, b := colorful.Hsv(hue, 1, value).RGB255()
			idx := (y*width + x) * 3
			frame[idx] = r
			frame[idx+1] = g
			frame[idx+2] = b
		}
	}
	return frame
}

// NoiseFrame builds an interleaved 8-bit RGB frame of uniform random noise.
// Neighboring samples are uncorrelated, the worst case for predictive codecs.
func NoiseFrame(width, height int) []byte {
	img := noise.Generate(width, height, &noise.Options{NoiseFn: noise.Uniform})

	frame := make([]byte, width*height*3)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			src := img.PixOffset(x, y)
			dst := (y*width + x) * 3
			frame[dst] = img.Pix[src]
			frame[dst+1] = img.Pix[src+1]
			frame[dst+2] = img.Pix[src+2]
		}
	}
	return frame
}
