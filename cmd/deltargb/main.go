package main

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/cocosip/go-dicom/pkg/dicom/parser"
	dcmimaging "github.com/cocosip/go-dicom/pkg/imaging"

	"github.com/cocosip/go-delta-codec/codec"
	"github.com/cocosip/go-delta-codec/deltargb"
)

func usage() {
	fmt.Println("Usage: deltargb <command> [arguments]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  encode <input> <output.drgb>   compress an image (PNG/JPEG/GIF/DICOM)")
	fmt.Println("  decode <input.drgb> <output>   decompress to PNG/JPEG")
	fmt.Println("  verify <input>                 round-trip an image and compare pixels")
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "encode":
		if len(os.Args) != 4 {
			usage()
			os.Exit(1)
		}
		err = runEncode(os.Args[2], os.Args[3])
	case "decode":
		if len(os.Args) != 4 {
			usage()
			os.Exit(1)
		}
		err = runDecode(os.Args[2], os.Args[3])
	case "verify":
		if len(os.Args) != 3 {
			usage()
			os.Exit(1)
		}
		err = runVerify(os.Args[2])
	default:
		usage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func runEncode(input, output string) error {
	pixels, width, height, err := loadPixels(input)
	if err != nil {
		return err
	}

	c, err := codec.Get(deltargb.FormatUID)
	if err != nil {
		return err
	}

	encoded, err := c.Encode(codec.EncodeParams{
		PixelData:  pixels,
		Width:      width,
		Height:     height,
		Components: 3,
		BitDepth:   8,
		Options:    &deltargb.Options{Progress: progressPrinter("encoding")},
	})
	if err != nil {
		return err
	}

	if err := os.WriteFile(output, encoded, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", output, err)
	}

	raw := len(pixels)
	fmt.Printf("%s: %dx%d, %d -> %d bytes (%.1f%% of raw)\n",
		filepath.Base(input), width, height, raw, len(encoded),
		100*float64(len(encoded))/float64(raw))
	return nil
}

func runDecode(input, output string) error {
	data, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("reading %s: %w", input, err)
	}

	c, err := codec.Get(deltargb.FormatUID)
	if err != nil {
		return err
	}

	result, err := c.Decode(data)
	if err != nil {
		return err
	}

	img := image.NewNRGBA(image.Rect(0, 0, result.Width, result.Height))
	for y := 0; y < result.Height; y++ {
		for x := 0; x < result.Width; x++ {
			src := (y*result.Width + x) * 3
			dst := img.PixOffset(x, y)
			img.Pix[dst] = result.PixelData[src]
			img.Pix[dst+1] = result.PixelData[src+1]
			img.Pix[dst+2] = result.PixelData[src+2]
			img.Pix[dst+3] = 0xFF
		}
	}

	if err := imaging.Save(img, output); err != nil {
		return fmt.Errorf("saving %s: %w", output, err)
	}

	fmt.Printf("%s: decoded %dx%d to %s\n", filepath.Base(input), result.Width, result.Height, output)
	return nil
}

func runVerify(input string) error {
	pixels, width, height, err := loadPixels(input)
	if err != nil {
		return err
	}

	if err := deltargb.VerifyRoundTrip(pixels, width, height); err != nil {
		return err
	}
	fmt.Printf("%s: round trip OK, %dx%d, all %d pixel bytes match\n",
		filepath.Base(input), width, height, len(pixels))
	return nil
}

// loadPixels reads an image file and returns interleaved 8-bit RGB pixels.
// DICOM files are read through go-dicom; everything else goes through the
// standard image decoders.
func loadPixels(path string) ([]byte, int, int, error) {
	if strings.EqualFold(filepath.Ext(path), ".dcm") {
		return loadDICOMPixels(path)
	}

	img, err := imaging.Open(path)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("opening %s: %w", path, err)
	}

	nrgba := imaging.Clone(img)
	bounds := nrgba.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	pixels := make([]byte, width*height*3)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			src := nrgba.PixOffset(x, y)
			dst := (y*width + x) * 3
			pixels[dst] = nrgba.Pix[src]
			pixels[dst+1] = nrgba.Pix[src+1]
			pixels[dst+2] = nrgba.Pix[src+2]
		}
	}
	return pixels, width, height, nil
}

func loadDICOMPixels(path string) ([]byte, int, int, error) {
	res, err := parser.ParseFile(path, parser.WithReadOption(parser.ReadAll))
	if err != nil {
		return nil, 0, 0, fmt.Errorf("parsing DICOM %s: %w", path, err)
	}

	if res.TransferSyntax != nil && res.TransferSyntax.IsEncapsulated() {
		return nil, 0, 0, fmt.Errorf("%s: encapsulated transfer syntax, decompress to native first", path)
	}

	pd, err := dcmimaging.CreatePixelData(res.Dataset)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("extracting pixel data from %s: %w", path, err)
	}

	info := pd.Info
	if info.SamplesPerPixel != 3 || info.BitsAllocated != 8 {
		return nil, 0, 0, fmt.Errorf("%s: %d samples/pixel at %d bits, only 8-bit RGB is supported",
			path, info.SamplesPerPixel, info.BitsAllocated)
	}

	frame, err := pd.GetFrame(0)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("reading frame 0 from %s: %w", path, err)
	}

	return frame, int(info.Width), int(info.Height), nil
}

// progressPrinter writes whole-percent updates to stderr on one line
func progressPrinter(label string) deltargb.ProgressFunc {
	last := -1
	return func(done, total int) {
		pct := done * 100 / total
		if pct == last {
			return
		}
		last = pct
		fmt.Fprintf(os.Stderr, "\r%s %3d%%", label, pct)
		if done == total {
			fmt.Fprintln(os.Stderr)
		}
	}
}
