package debug

import (
	"errors"
	"testing"
)

// fakeFrame writes height rows of pitch bytes, as SDL does, and fails if the
// buffer cannot hold them.
type fakeFrame struct {
	width, height int
	sizeErr       error
	rows          int
}

func (f *fakeFrame) FrameSize() (int, int, error) {
	return f.width, f.height, f.sizeErr
}

func (f *fakeFrame) ReadFrame(pixels []byte, pitch int) error {
	if pitch < f.width*4 {
		return errors.New("pitch shorter than a row")
	}
	if len(pixels) < pitch*f.height {
		return errors.New("buffer smaller than the frame")
	}
	for y := 0; y < f.height; y++ {
		row := pixels[y*pitch : y*pitch+f.width*4]
		for i := range row {
			row[i] = byte(y)
		}
		f.rows++
	}
	return nil
}

func TestReadFrame(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
	}{
		{"logical size", 640, 480},
		{"scaled fullscreen", 1440, 1080},
		{"single pixel", 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := &fakeFrame{width: tt.width, height: tt.height}

			pixels, w, h, err := ReadFrame(src)
			if err != nil {
				t.Fatalf("ReadFrame failed: %v", err)
			}
			if w != tt.width || h != tt.height {
				t.Errorf("expected %dx%d, got %dx%d", tt.width, tt.height, w, h)
			}
			if len(pixels) != w*h*4 {
				t.Errorf("expected %d bytes, got %d", w*h*4, len(pixels))
			}
			if src.rows != tt.height {
				t.Errorf("expected %d rows written, got %d", tt.height, src.rows)
			}
			if last := pixels[len(pixels)-1]; last != byte(tt.height-1) {
				t.Errorf("last row not written, got %d", last)
			}
		})
	}
}

func TestReadFrameErrors(t *testing.T) {
	sizeErr := errors.New("no target")

	if _, _, _, err := ReadFrame(&fakeFrame{sizeErr: sizeErr}); !errors.Is(err, sizeErr) {
		t.Errorf("expected size error, got %v", err)
	}
	if _, _, _, err := ReadFrame(&fakeFrame{width: 0, height: 480}); !errors.Is(err, ErrEmptyFrame) {
		t.Errorf("expected ErrEmptyFrame, got %v", err)
	}
}

func TestReadFrameThenCapture(t *testing.T) {
	pixels, w, h, err := ReadFrame(&fakeFrame{width: 4, height: 3})
	if err != nil {
		t.Fatalf("ReadFrame failed: %v", err)
	}
	sc := NewScreenshotCapture(t.TempDir(), "frame")
	if _, err := sc.Capture(pixels, w, h); err != nil {
		t.Errorf("Capture rejected a read-back frame: %v", err)
	}
}
