// Package fetch downloads the image revealed at the end of the demo.
package fetch

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log/slog"
	"net/http"

	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"github.com/iburimskiy/orb-burst/internal/config"
)

var (
	ErrStatus   = errors.New("unexpected status")
	ErrDecode   = errors.New("decode image")
	ErrEmpty    = errors.New("image has no pixels")
	ErrTooLarge = errors.New("response too large")
)

// DefaultMaxBytes caps the body when the config leaves max_bytes unset.
const DefaultMaxBytes = 32 << 20

// Fetcher performs a single GET per call. It never retries.
type Fetcher struct {
	client *http.Client
	cfg    config.Image
	log    *slog.Logger
}

// New returns a Fetcher. A nil client gets one with the configured timeout,
// a nil logger falls back to slog.Default.
func New(cfg config.Image, client *http.Client, logger *slog.Logger) *Fetcher {
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Fetcher{client: client, cfg: cfg, log: logger}
}

// Fetch downloads url, decodes it and scales it to the configured height.
func (f *Fetcher) Fetch(ctx context.Context, url string) (image.Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if f.cfg.UserAgent != "" {
		req.Header.Set("User-Agent", f.cfg.UserAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s", ErrStatus, resp.Status)
	}

	limit := f.cfg.MaxBytes
	if limit <= 0 {
		limit = DefaultMaxBytes
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, limit+1))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if int64(len(body)) > limit {
		return nil, fmt.Errorf("%w: over %d bytes", ErrTooLarge, limit)
	}

	img, format, err := image.Decode(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	f.log.Debug("image decoded", "url", url, "format", format, "bounds", img.Bounds().String())

	return ScaleToHeight(img, f.cfg.Height)
}

// Load is Fetch with the placeholder substituted for any failure.
func (f *Fetcher) Load(ctx context.Context, url string) image.Image {
	f.log.Info("fetching image", "url", url)
	img, err := f.Fetch(ctx, url)
	if err != nil {
		f.log.Warn("failed to grab image, using placeholder", "url", url, "err", err)
		return Placeholder(f.cfg.PlaceholderSize, f.cfg.PlaceholderColor)
	}
	return img
}

// ScaleToHeight resizes img so its height is h, keeping the aspect ratio.
func ScaleToHeight(img image.Image, h int) (image.Image, error) {
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, ErrEmpty
	}
	w := b.Dx() * h / b.Dy()
	if w < 1 {
		w = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return dst, nil
}

// Placeholder is a size×size square filled with c.
func Placeholder(size int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	return img
}
