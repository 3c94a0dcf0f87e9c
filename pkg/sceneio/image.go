package sceneio

import (
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/rngbrew/pathtracer/pkg/render"
)

// encoders maps a lowercase, dot-less file extension to the function that
// writes a decoded image in that format.
var encoders = map[string]func(io.Writer, image.Image) error{
	"png":  png.Encode,
	"jpg":  func(w io.Writer, img image.Image) error { return jpeg.Encode(w, img, nil) },
	"jpeg": func(w io.Writer, img image.Image) error { return jpeg.Encode(w, img, nil) },
	"gif":  func(w io.Writer, img image.Image) error { return gif.Encode(w, img, nil) },
	"bmp":  bmp.Encode,
	"tiff": func(w io.Writer, img image.Image) error { return tiff.Encode(w, img, nil) },
}

// unsupportedOutputFormats lists formats spec.md's external-interfaces
// table enumerates that have no encoder anywhere in this module's
// dependency stack (see DESIGN.md's Open Question resolution). Listed
// explicitly so ResolveEncoder reports a clear InvalidOutput rather than
// a generic "unknown extension" for a format a reader might otherwise
// expect to work.
var unsupportedOutputFormats = map[string]bool{
	"ico": true, "hdr": true, "openexr": true, "exr": true,
	"pnm": true, "farbfeld": true, "avif": true, "tga": true,
}

// ResolveEncoder selects the encoder for outputPath's extension. It is
// called before rendering starts, per spec.md §7 ("InvalidOutput ...
// reported before rendering starts"), so a misconfigured output format
// fails fast instead of after a long render.
func ResolveEncoder(outputPath string) (func(io.Writer, image.Image) error, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(outputPath), "."))
	if enc, ok := encoders[ext]; ok {
		return enc, nil
	}
	if unsupportedOutputFormats[ext] {
		return nil, fmt.Errorf("%w: %q has no available encoder in this build", ErrInvalidOutput, ext)
	}
	return nil, fmt.Errorf("%w: unrecognised output extension %q", ErrInvalidOutput, ext)
}

// ToneMap converts a linear RGB framebuffer into an 8-bit image.RGBA,
// clamping each channel to [0,1] and mapping via floor(min(c,1)*255).
func ToneMap(fb *render.Framebuffer) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			c := fb.At(x, y)
			img.SetRGBA(x, y, color.RGBA{
				R: toneMapChannel(c.X),
				G: toneMapChannel(c.Y),
				B: toneMapChannel(c.Z),
				A: 255,
			})
		}
	}
	return img
}

func toneMapChannel(c float64) uint8 {
	clamped := math.Max(0, math.Min(c, 1))
	return uint8(math.Floor(clamped * 255))
}

// WriteImage tone-maps fb and writes it to outputPath using the encoder
// ResolveEncoder selects for its extension.
func WriteImage(outputPath string, fb *render.Framebuffer) error {
	enc, err := ResolveEncoder(outputPath)
	if err != nil {
		return err
	}

	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("creating output file %s: %w", outputPath, err)
	}
	defer file.Close()

	img := ToneMap(fb)
	if err := enc(file, img); err != nil {
		return fmt.Errorf("encoding output file %s: %w", outputPath, err)
	}
	return nil
}
