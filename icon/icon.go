// Package icon bundles one source image into a multi-resolution
// ICO container, resampling it at each requested size.
package icon

import (
	"bytes"
	"image"
	"io"
	"os"

	"github.com/pkg/errors"
	ico "github.com/sergeymakinen/go-ico"
	"golang.org/x/image/draw"
)

// MaxSize is the largest width (and height) an ICO entry may declare.
const MaxSize = 256

// DefaultSizes lists the square sizes embedded by Encode,
// from the largest to the smallest.
var DefaultSizes = []int{256, 128, 64, 48, 32, 16}

// Kernel is the interpolator used to downsample the source.
var Kernel draw.Interpolator = draw.CatmullRom

// Resample returns a `size` x `size` copy of src.
// When src already has these dimensions, its pixels are copied unchanged.
func Resample(src image.Image, size int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, size, size))
	sb := src.Bounds()
	if sb.Dx() == size && sb.Dy() == size {
		draw.Draw(dst, dst.Rect, src, sb.Min, draw.Src)
		return dst
	}
	Kernel.Scale(dst, dst.Rect, src, sb, draw.Src, nil)
	return dst
}

// Frames resamples src once per entry of sizes, keeping their order.
// Sizes must be in [1, MaxSize] and appear only once.
func Frames(src image.Image, sizes []int) ([]image.Image, error) {
	if len(sizes) == 0 {
		return nil, errors.New("icon: no size requested")
	}
	seen := make(map[int]bool, len(sizes))
	out := make([]image.Image, len(sizes))
	for i, size := range sizes {
		if size < 1 || size > MaxSize {
			return nil, errors.Errorf("icon: invalid size %d (expected 1 to %d)", size, MaxSize)
		}
		if seen[size] {
			return nil, errors.Errorf("icon: duplicate size %d", size)
		}
		seen[size] = true
		out[i] = Resample(src, size)
	}
	return out, nil
}

// Encode writes src to w as an ICO file holding one entry per size.
func Encode(w io.Writer, src image.Image, sizes []int) error {
	frames, err := Frames(src, sizes)
	if err != nil {
		return err
	}
	if err := ico.EncodeAll(w, frames); err != nil {
		return errors.Wrap(err, "icon: encoding container")
	}
	return nil
}

// WriteFile encodes src and writes it to the named file, replacing
// any previous content. Nothing is written if encoding fails.
func WriteFile(name string, src image.Image, sizes []int) error {
	var buf bytes.Buffer
	if err := Encode(&buf, src, sizes); err != nil {
		return err
	}
	if err := os.WriteFile(name, buf.Bytes(), 0o644); err != nil {
		return errors.Wrapf(err, "icon: writing %s", name)
	}
	return nil
}

// DecodeAll reads back every entry of an ICO file, in file order.
func DecodeAll(r io.Reader) ([]image.Image, error) {
	images, err := ico.DecodeAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "icon: decoding container")
	}
	return images, nil
}
