package capture

import (
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestFromPixelsFlipsRows(t *testing.T) {
	// 1x2 image: bottom row red, top row blue, in GL order.
	pixels := []byte{
		255, 0, 0, 255,
		0, 0, 255, 255,
	}

	img, err := FromPixels(pixels, 1, 2)
	if err != nil {
		t.Fatalf("FromPixels: %v", err)
	}
	if c := img.RGBAAt(0, 0); c.B != 255 || c.R != 0 {
		t.Errorf("top pixel = %v, want blue", c)
	}
	if c := img.RGBAAt(0, 1); c.R != 255 || c.B != 0 {
		t.Errorf("bottom pixel = %v, want red", c)
	}
}

func TestFromPixelsRejectsBadInput(t *testing.T) {
	tests := []struct {
		name          string
		pixels        []byte
		width, height int
	}{
		{"short buffer", make([]byte, 7), 1, 2},
		{"zero width", nil, 0, 2},
		{"negative height", nil, 2, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := FromPixels(tt.pixels, tt.width, tt.height); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestFilename(t *testing.T) {
	w := New("shots", "chamma")
	w.now = func() time.Time { return time.Date(2024, 3, 9, 14, 5, 7, 250e6, time.UTC) }

	want := filepath.Join("shots", "chamma_2024-03-09_14-05-07.250.png")
	if got := w.Filename(); got != want {
		t.Errorf("Filename() = %q, want %q", got, want)
	}
}

func TestSaveWritesPNG(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	w := New(dir, "frame")

	pixels := make([]byte, 3*2*4)
	for i := range pixels {
		pixels[i] = byte(i * 10)
	}

	path, err := w.Save(pixels, 3, 2)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !strings.HasPrefix(path, dir) || filepath.Ext(path) != ".png" {
		t.Errorf("unexpected path %q", path)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 3 || b.Dy() != 2 {
		t.Errorf("bounds = %v, want 3x2", b)
	}
}
