package engine

import (
	"bytes"
	"image"
	"image/png"
	"io"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/wildfunctions/random_art/pkg/raster"
)

func TestFormatForPath(t *testing.T) {
	cases := []struct {
		path string
		want ImageFormat
	}{
		{"a.png", FormatPNG},
		{"dir/A.PNG", FormatPNG},
		{"a.bmp", FormatBMP},
		{"a.tif", FormatTIFF},
		{"a.tiff", FormatTIFF},
	}
	for _, tc := range cases {
		got, err := FormatForPath(tc.path)
		if err != nil {
			t.Errorf("FormatForPath(%q): %v", tc.path, err)
			continue
		}
		if got != tc.want {
			t.Errorf("FormatForPath(%q) = %s, want %s", tc.path, got, tc.want)
		}
	}
	for _, bad := range []string{"a.gif", "a.jpg", "noext"} {
		if _, err := FormatForPath(bad); err == nil {
			t.Errorf("Expected error for %q", bad)
		}
	}
}

func TestEncode_RoundTrip(t *testing.T) {
	img, _ := raster.GenerateImage("round trip", 9, 5, 6)

	decoders := map[ImageFormat]func(io.Reader) (image.Image, error){
		FormatPNG:  png.Decode,
		FormatBMP:  bmp.Decode,
		FormatTIFF: tiff.Decode,
	}

	for format, decode := range decoders {
		var buf bytes.Buffer
		if err := Encode(&buf, format, img); err != nil {
			t.Fatalf("%s: encode: %v", format, err)
		}
		decoded, err := decode(&buf)
		if err != nil {
			t.Fatalf("%s: decode: %v", format, err)
		}
		if decoded.Bounds() != img.Bounds() {
			t.Fatalf("%s: bounds %v, want %v", format, decoded.Bounds(), img.Bounds())
		}
		for y := 0; y < img.Height; y++ {
			for x := 0; x < img.Width; x++ {
				r, g, b, _ := decoded.At(x, y).RGBA()
				wr, wg, wb := img.RGB(x, y)
				if uint8(r>>8) != wr || uint8(g>>8) != wg || uint8(b>>8) != wb {
					t.Fatalf("%s: pixel (%d,%d) = (%d,%d,%d), want (%d,%d,%d)",
						format, x, y, r>>8, g>>8, b>>8, wr, wg, wb)
				}
			}
		}
	}
}

func TestSaveImage(t *testing.T) {
	img, _ := raster.GenerateImage("save", 4, 4, 3)
	path := filepath.Join(t.TempDir(), "out.png")
	if err := SaveImage(path, img); err != nil {
		t.Fatal(err)
	}
	if err := SaveImage(filepath.Join(t.TempDir(), "missing", "out.png"), img); err == nil {
		t.Error("Expected error writing into a missing directory")
	}
	if err := SaveImage(filepath.Join(t.TempDir(), "out.gif"), img); err == nil {
		t.Error("Expected error for unsupported extension")
	}
}

func TestFramePath(t *testing.T) {
	if got := FramePath("out/art.png", 0, 1); got != "out/art.png" {
		t.Errorf("single frame path = %q", got)
	}
	if got := FramePath("out/art.png", 0, 10); got != "out/art_0001.png" {
		t.Errorf("frame 0 path = %q", got)
	}
	if got := FramePath("art.tiff", 11, 12); got != "art_0012.tiff" {
		t.Errorf("frame 11 path = %q", got)
	}
}
