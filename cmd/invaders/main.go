// Command invaders opens the fixed 224x256 arcade display and drives
// the frame loop until the window is closed.
package main

import (
	"log/slog"
	"os"
	"runtime"

	"invaders/internal/display"
	"invaders/internal/pixbuf"
)

const (
	bufferWidth  = 224
	bufferHeight = 256
)

// background is the color every frame is cleared to. Nothing draws
// over it yet.
var background = pixbuf.RGB(0, 128, 0)

func init() {
	// The GL context stays bound to the main thread.
	runtime.LockOSThread()
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if err := run(logger); err != nil {
		logger.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	buf, err := pixbuf.New(bufferWidth, bufferHeight)
	if err != nil {
		return err
	}

	pipeline, err := display.New(buf,
		display.WithTitle("Space Invaders"),
		display.WithClearColor(background),
		display.WithLogger(logger),
		display.WithSnapshotDir("snapshots"),
		display.WithSnapshotScale(2),
	)
	if err != nil {
		return err
	}
	defer pipeline.Close()

	pipeline.Run()
	return nil
}
