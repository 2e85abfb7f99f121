package icon

import (
	"bytes"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/tdewolff/test"
)

var orange = color.NRGBA{0xf0, 0x80, 0x20, 0xff}

// checker returns a size x size image, opaque orange on its left half,
// transparent on its right half.
func checker(size int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size/2; x++ {
			img.SetNRGBA(x, y, orange)
		}
	}
	return img
}

func nrgbaAt(img image.Image, x, y int) color.NRGBA {
	return color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
}

func closeTo(a, b uint8) bool {
	d := int(a) - int(b)
	return -1 <= d && d <= 1
}

func sizesOf(images []image.Image) []int {
	out := make([]int, len(images))
	for i, img := range images {
		out[i] = img.Bounds().Dx()
	}
	sort.Sort(sort.Reverse(sort.IntSlice(out)))
	return out
}

func TestResampleIdentity(t *testing.T) {
	src := checker(64)
	dst := Resample(src, 64)
	test.T(t, dst.Pix, src.Pix)
}

func TestResampleDown(t *testing.T) {
	src := checker(64)
	dst := Resample(src, 16)
	test.T(t, dst.Bounds(), image.Rect(0, 0, 16, 16))

	// far from the seam the content is preserved
	c := nrgbaAt(dst, 2, 8)
	test.That(t, closeTo(c.R, orange.R) && closeTo(c.G, orange.G) && closeTo(c.B, orange.B), c)
	test.That(t, closeTo(c.A, 0xff), c)
	test.T(t, nrgbaAt(dst, 13, 8).A, uint8(0))
}

func TestResampleOffsetSource(t *testing.T) {
	src := checker(32).SubImage(image.Rect(0, 16, 16, 32))
	dst := Resample(src, 16)
	test.T(t, nrgbaAt(dst, 0, 0), orange)
	test.T(t, nrgbaAt(dst, 15, 15), orange)
}

func TestFramesErrors(t *testing.T) {
	src := checker(32)
	_, err := Frames(src, nil)
	test.That(t, err != nil, "empty sizes")
	_, err = Frames(src, []int{32, 0})
	test.That(t, err != nil, "zero size")
	_, err = Frames(src, []int{512})
	test.That(t, err != nil, "too large")
	_, err = Frames(src, []int{16, 32, 16})
	test.That(t, err != nil, "duplicate")
}

func TestFrames(t *testing.T) {
	frames, err := Frames(checker(256), DefaultSizes)
	test.Error(t, err)
	test.T(t, len(frames), len(DefaultSizes))
	for i, f := range frames {
		test.T(t, f.Bounds(), image.Rect(0, 0, DefaultSizes[i], DefaultSizes[i]))
	}
}

func TestEncodeDecode(t *testing.T) {
	src := checker(256)
	var buf bytes.Buffer
	test.Error(t, Encode(&buf, src, DefaultSizes))
	test.That(t, buf.Len() > 0)
	// ICONDIR header: reserved, type 1, count
	test.T(t, buf.Bytes()[:6], []byte{0, 0, 1, 0, byte(len(DefaultSizes)), 0})

	images, err := DecodeAll(bytes.NewReader(buf.Bytes()))
	test.Error(t, err)
	test.T(t, sizesOf(images), []int{256, 128, 64, 48, 32, 16})

	for _, img := range images {
		b := img.Bounds()
		test.T(t, b.Dx(), b.Dy(), "square entry")
		if b.Dx() == 256 {
			test.T(t, nrgbaAt(img, 10, 10), orange)
			test.T(t, nrgbaAt(img, 200, 10).A, uint8(0))
		}
	}
}

func TestEncodeInvalidSizes(t *testing.T) {
	var buf bytes.Buffer
	err := Encode(&buf, checker(16), []int{300})
	test.That(t, err != nil)
	test.T(t, buf.Len(), 0)
}

func TestWriteFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "out.ico")
	test.Error(t, WriteFile(name, checker(64), []int{64, 32}))

	f, err := os.Open(name)
	test.Error(t, err)
	defer f.Close()
	images, err := DecodeAll(f)
	test.Error(t, err)
	test.T(t, sizesOf(images), []int{64, 32})
}

func TestWriteFileFailure(t *testing.T) {
	name := filepath.Join(t.TempDir(), "missing", "out.ico")
	err := WriteFile(name, checker(16), []int{16})
	test.That(t, err != nil)

	name = filepath.Join(t.TempDir(), "bad.ico")
	err = WriteFile(name, checker(16), nil)
	test.That(t, err != nil)
	_, statErr := os.Stat(name)
	test.That(t, os.IsNotExist(statErr), "no file on encode failure")
}

func TestDecodeGarbage(t *testing.T) {
	_, err := DecodeAll(bytes.NewReader([]byte("not an icon")))
	test.That(t, err != nil)
}
