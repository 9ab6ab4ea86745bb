package display

import (
	"log/slog"
	"testing"

	"invaders/internal/pixbuf"
)

func TestOptions(t *testing.T) {
	tests := []struct {
		name  string
		opts  []Option
		check func(t *testing.T, o options)
	}{
		{
			name: "defaults",
			check: func(t *testing.T, o options) {
				if !o.vsync {
					t.Error("vsync disabled by default")
				}
				if o.snapshotScale != 1 {
					t.Errorf("snapshotScale = %d, want 1", o.snapshotScale)
				}
				if o.snapshotDir != "" {
					t.Errorf("snapshotDir = %q, want empty", o.snapshotDir)
				}
				if o.logger == nil {
					t.Error("logger is nil")
				}
			},
		},
		{
			name: "title and clear color",
			opts: []Option{WithTitle("Space Invaders"), WithClearColor(pixbuf.RGB(0, 128, 0))},
			check: func(t *testing.T, o options) {
				if o.title != "Space Invaders" {
					t.Errorf("title = %q", o.title)
				}
				if o.clearColor != pixbuf.RGB(0, 128, 0) {
					t.Errorf("clearColor = %#08x", uint32(o.clearColor))
				}
			},
		},
		{
			name: "vsync off",
			opts: []Option{WithVSync(false)},
			check: func(t *testing.T, o options) {
				if o.vsync {
					t.Error("vsync still enabled")
				}
			},
		},
		{
			name: "nil logger keeps silent default",
			opts: []Option{WithLogger(nil)},
			check: func(t *testing.T, o options) {
				if o.logger == nil {
					t.Fatal("logger is nil")
				}
				if _, ok := o.logger.Handler().(nopHandler); !ok {
					t.Errorf("handler = %T, want nopHandler", o.logger.Handler())
				}
			},
		},
		{
			name: "real logger installed",
			opts: []Option{WithLogger(slog.Default())},
			check: func(t *testing.T, o options) {
				if o.logger != slog.Default() {
					t.Error("logger not installed")
				}
			},
		},
		{
			name: "snapshot settings",
			opts: []Option{WithSnapshotDir("shots"), WithSnapshotScale(3)},
			check: func(t *testing.T, o options) {
				if o.snapshotDir != "shots" {
					t.Errorf("snapshotDir = %q", o.snapshotDir)
				}
				if o.snapshotScale != 3 {
					t.Errorf("snapshotScale = %d", o.snapshotScale)
				}
			},
		},
		{
			name: "snapshot scale clamped",
			opts: []Option{WithSnapshotScale(0)},
			check: func(t *testing.T, o options) {
				if o.snapshotScale != 1 {
					t.Errorf("snapshotScale = %d, want 1", o.snapshotScale)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := defaultOptions()
			for _, opt := range tt.opts {
				opt(&o)
			}
			tt.check(t, o)
		})
	}
}
