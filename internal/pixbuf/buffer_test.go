package pixbuf

import "testing"

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		width   int
		height  int
		wantErr bool
	}{
		{name: "single pixel", width: 1, height: 1},
		{name: "arcade display", width: 224, height: 256},
		{name: "wide", width: 640, height: 1},
		{name: "tall", width: 1, height: 480},
		{name: "zero width", width: 0, height: 10, wantErr: true},
		{name: "zero height", width: 10, height: 0, wantErr: true},
		{name: "negative width", width: -3, height: 10, wantErr: true},
		{name: "negative height", width: 10, height: -256, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf, err := New(tt.width, tt.height)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("New(%d, %d) = nil error, want error", tt.width, tt.height)
				}
				return
			}
			if err != nil {
				t.Fatalf("New(%d, %d): %v", tt.width, tt.height, err)
			}
			if buf.Width() != tt.width || buf.Height() != tt.height {
				t.Errorf("dimensions = %dx%d, want %dx%d",
					buf.Width(), buf.Height(), tt.width, tt.height)
			}
			if got, want := len(buf.Pix()), tt.width*tt.height; got != want {
				t.Errorf("len(Pix()) = %d, want %d", got, want)
			}
			for i, c := range buf.Pix() {
				if c != 0 {
					t.Fatalf("pixel %d = %#08x, want zero", i, uint32(c))
				}
			}
		})
	}
}

func TestClear(t *testing.T) {
	colors := []struct {
		name string
		c    Color
	}{
		{name: "opaque red", c: RGB(255, 0, 0)},
		{name: "background green", c: RGB(0, 128, 0)},
		{name: "translucent", c: RGBA(10, 20, 30, 40)},
		{name: "zero", c: 0},
	}

	for _, tt := range colors {
		t.Run(tt.name, func(t *testing.T) {
			buf, err := New(7, 5)
			if err != nil {
				t.Fatal(err)
			}
			buf.Clear(tt.c)
			for i, c := range buf.Pix() {
				if c != tt.c {
					t.Fatalf("pixel %d = %#08x, want %#08x", i, uint32(c), uint32(tt.c))
				}
			}

			// Clearing again with the same color changes nothing.
			buf.Clear(tt.c)
			for i, c := range buf.Pix() {
				if c != tt.c {
					t.Fatalf("after second clear, pixel %d = %#08x, want %#08x",
						i, uint32(c), uint32(tt.c))
				}
			}
		})
	}
}

func TestClearArcadeDisplay(t *testing.T) {
	buf, err := New(224, 256)
	if err != nil {
		t.Fatal(err)
	}
	green := RGB(0, 128, 0)
	buf.Clear(green)

	if want := RGBA(0, 128, 0, 255); green != want {
		t.Fatalf("RGB(0, 128, 0) = %#08x, want %#08x", uint32(green), uint32(want))
	}
	pix := buf.Pix()
	if pix[0] != green {
		t.Errorf("first pixel = %#08x, want %#08x", uint32(pix[0]), uint32(green))
	}
	if last := pix[buf.Width()*buf.Height()-1]; last != green {
		t.Errorf("last pixel = %#08x, want %#08x", uint32(last), uint32(green))
	}
}

func TestClearOverwritesAllPixels(t *testing.T) {
	buf, err := New(4, 4)
	if err != nil {
		t.Fatal(err)
	}
	buf.Clear(0)
	buf.Clear(RGB(255, 0, 0))

	want := RGBA(255, 0, 0, 255)
	for i, c := range buf.Pix() {
		if c != want {
			t.Fatalf("pixel %d = %#08x, want %#08x", i, uint32(c), uint32(want))
		}
	}
}

func TestPixAliasesStorage(t *testing.T) {
	buf, err := New(3, 2)
	if err != nil {
		t.Fatal(err)
	}
	pix := buf.Pix()
	buf.Clear(RGB(1, 2, 3))
	if pix[0] != RGB(1, 2, 3) {
		t.Errorf("view not refreshed by Clear: pixel 0 = %#08x", uint32(pix[0]))
	}
}
