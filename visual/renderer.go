package visual

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/chromedp"

	"youtube-trending/utils"
)

// Renderer screenshots chart pages to PNG with headless Chrome
type Renderer struct {
	timeout time.Duration
	logger  *utils.Logger
}

// NewRenderer creates a Renderer; each Render call gets at most timeout
func NewRenderer(timeout time.Duration, logger *utils.Logger) *Renderer {
	return &Renderer{timeout: timeout, logger: logger}
}

// newContext creates a fresh chromedp context (one browser, one tab)
func (r *Renderer) newContext(parent context.Context) (context.Context, context.CancelFunc) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("allow-file-access-from-files", true),
		chromedp.Flag("log-level", "3"),
		chromedp.WindowSize(chartWidth+40, chartHeight+40),
	)

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(parent, opts...)
	ctx, cancelCtx := chromedp.NewContext(allocCtx, chromedp.WithLogf(func(string, ...interface{}) {}))

	cancel := func() {
		cancelCtx()
		cancelAlloc()
	}
	return ctx, cancel
}

// Render loads htmlPath in the browser and writes a full-page PNG to pngPath
func (r *Renderer) Render(ctx context.Context, htmlPath, pngPath string) error {
	abs, err := filepath.Abs(htmlPath)
	if err != nil {
		return fmt.Errorf("failed to resolve chart path: %w", err)
	}

	bctx, cancel := r.newContext(ctx)
	defer cancel()

	bctx, cancelTimeout := context.WithTimeout(bctx, r.timeout)
	defer cancelTimeout()

	var buf []byte
	err = chromedp.Run(bctx,
		chromedp.Navigate("file://"+filepath.ToSlash(abs)),
		chromedp.WaitVisible("canvas", chromedp.ByQuery),
		// let the echarts entry animation finish
		chromedp.Sleep(time.Second),
		chromedp.FullScreenshot(&buf, 100),
	)
	if err != nil {
		return fmt.Errorf("chart screenshot failed: %w", err)
	}

	if err := os.WriteFile(pngPath, buf, 0644); err != nil {
		return fmt.Errorf("failed to write PNG: %w", err)
	}
	r.logger.Debug("Rendered %s -> %s (%d bytes)", htmlPath, pngPath, len(buf))
	return nil
}
