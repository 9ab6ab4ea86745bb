package display

import (
	"os"
	"path/filepath"
	"time"

	"github.com/HugoSmits86/nativewebp"
)

// saveSnapshot writes the current buffer contents into the configured
// snapshot directory as a lossless WebP file, upscaled by the
// configured factor. Failures are advisory.
func (p *Pipeline) saveSnapshot() {
	if p.opts.snapshotDir == "" {
		return
	}
	name := "frame-" + time.Now().Format("20060102-150405.000") + ".webp"
	path := filepath.Join(p.opts.snapshotDir, name)

	f, err := os.Create(path)
	if err != nil {
		p.logger.Warn("snapshot create failed", "path", path, "err", err)
		return
	}
	defer func() {
		_ = f.Close()
	}()

	if err := nativewebp.Encode(f, p.buf.ScaledImage(p.opts.snapshotScale), nil); err != nil {
		p.logger.Warn("snapshot encode failed", "path", path, "err", err)
		return
	}
	p.logger.Info("snapshot written", "path", path)
}
