package cosmodrift

import (
	"context"
	"fmt"
	"image"
	"io/fs"
	"log/slog"
	"sync"

	_ "image/jpeg"
	_ "image/png"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/draw"
	"golang.org/x/sync/errgroup"
)

// TextureLoader loads named images from a filesystem into GPU textures,
// several at a time. A failed item is logged and reported through OnError
// but does not abort the batch; progress always reaches the total.
type TextureLoader struct {
	FS          fs.FS
	MaxDim      int // longest side after downscale; 0 keeps original size
	Concurrency int // parallel decodes; 0 means 4
	Log         *slog.Logger

	// OnProgress receives (loaded, total) after every item, success or not.
	OnProgress func(loaded, total int)
	// OnError receives each per-item failure.
	OnError func(name string, err error)

	mu       sync.Mutex
	done     int
	textures map[string]*ebiten.Image
}

// Load fetches all named textures. It returns an error only when ctx is
// canceled; item failures are non-fatal.
func (l *TextureLoader) Load(ctx context.Context, names []string) error {
	limit := l.Concurrency
	if limit <= 0 {
		limit = 4
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	total := len(names)
	for _, name := range names {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			img, err := l.loadOne(name)
			l.finish(name, img, err, total)
			return nil
		})
	}
	return g.Wait()
}

func (l *TextureLoader) loadOne(name string) (*ebiten.Image, error) {
	f, err := l.FS.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open texture: %w", err)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode texture %s: %w", name, err)
	}
	return ebiten.NewImageFromImage(l.downscale(src)), nil
}

// downscale fits the image inside a MaxDim square, preserving aspect ratio.
func (l *TextureLoader) downscale(src image.Image) image.Image {
	if l.MaxDim <= 0 {
		return src
	}
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	long := max(w, h)
	if long <= l.MaxDim {
		return src
	}
	w = w * l.MaxDim / long
	h = h * l.MaxDim / long
	dst := image.NewRGBA(image.Rect(0, 0, max(w, 1), max(h, 1)))
	draw.BiLinear.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}

func (l *TextureLoader) finish(name string, img *ebiten.Image, err error, total int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err != nil {
		l.logger().Warn("texture skipped", "name", name, "error", err)
		if l.OnError != nil {
			l.OnError(name, err)
		}
	} else {
		if l.textures == nil {
			l.textures = make(map[string]*ebiten.Image)
		}
		l.textures[name] = img
	}
	l.done++
	if l.OnProgress != nil {
		l.OnProgress(l.done, total)
	}
}

// Texture returns a loaded texture by name.
func (l *TextureLoader) Texture(name string) (*ebiten.Image, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	img, ok := l.textures[name]
	return img, ok
}

// Loaded reports how many items have completed, successfully or not.
func (l *TextureLoader) Loaded() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.done
}

func (l *TextureLoader) logger() *slog.Logger {
	if l.Log != nil {
		return l.Log
	}
	return slog.Default()
}
