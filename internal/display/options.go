package display

import (
	"log/slog"

	"invaders/internal/pixbuf"
)

// Option configures a Pipeline during creation.
//
// Example:
//
//	p, err := display.New(buf,
//	    display.WithTitle("Space Invaders"),
//	    display.WithClearColor(pixbuf.RGB(0, 128, 0)))
type Option func(*options)

type options struct {
	title         string
	clearColor    pixbuf.Color
	vsync         bool
	logger        *slog.Logger
	snapshotDir   string
	snapshotScale int
}

func defaultOptions() options {
	return options{
		title:         "Display",
		clearColor:    pixbuf.RGB(0, 0, 0),
		vsync:         true,
		logger:        newNopLogger(),
		snapshotScale: 1,
	}
}

// WithTitle sets the window title.
func WithTitle(title string) Option {
	return func(o *options) {
		o.title = title
	}
}

// WithClearColor sets the background color the buffer is cleared to at
// the start of every frame.
func WithClearColor(c pixbuf.Color) Option {
	return func(o *options) {
		o.clearColor = c
	}
}

// WithVSync controls whether buffer swaps wait for the display's
// vertical refresh. Enabled by default; disabling it uncaps the frame
// rate.
func WithVSync(enabled bool) Option {
	return func(o *options) {
		o.vsync = enabled
	}
}

// WithLogger installs a logger for lifecycle events and advisory
// diagnostics. By default the pipeline produces no log output. Passing
// nil keeps the silent default.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithSnapshotDir enables F12 frame snapshots, written as lossless
// WebP files into dir. The directory is created if missing. Snapshots
// are disabled when no directory is configured.
func WithSnapshotDir(dir string) Option {
	return func(o *options) {
		o.snapshotDir = dir
	}
}

// WithSnapshotScale sets an integer nearest-neighbor upscale factor
// for snapshots, so small buffers produce legible files. Values below
// 1 are treated as 1.
func WithSnapshotScale(scale int) Option {
	return func(o *options) {
		if scale < 1 {
			scale = 1
		}
		o.snapshotScale = scale
	}
}
