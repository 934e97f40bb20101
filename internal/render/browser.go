package render

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// A4 paper size in inches for the PDF printer.
const (
	a4WidthInches  = 8.27
	a4HeightInches = 11.69
)

// Backend turns a styled HTML document into fixed-size pages.
type Backend interface {
	Render(ctx context.Context, html string) ([]byte, error)
}

// ChromeBackend renders HTML to PDF with a headless Chrome instance. Each
// call acquires a fresh browser context and releases it on every path,
// including errors. Requires Chrome/Chromium on the system; CHROME_PATH
// overrides the binary location.
type ChromeBackend struct {
	// Timeout bounds one full render, browser startup included.
	Timeout time.Duration
	// SettleDelay is waited after the document is ready so fonts load and
	// reflow settles. Exact layout-complete signaling is unavailable, so a
	// fixed delay stands in for it.
	SettleDelay time.Duration
	// Verbose enables progress logging.
	Verbose bool
}

// NewChromeBackend returns a backend with the default timeouts.
func NewChromeBackend() *ChromeBackend {
	return &ChromeBackend{
		Timeout:     60 * time.Second,
		SettleDelay: 500 * time.Millisecond,
	}
}

// Render lays the document out in the browser and prints it to PDF.
// Page size is fixed to A4 with zero native margins: spacing is modeled
// inside the document, so margins stay under the constraint engine's
// control rather than the printer's.
func (b *ChromeBackend) Render(ctx context.Context, html string) ([]byte, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if p := os.Getenv("CHROME_PATH"); p != "" {
		opts = append(opts, chromedp.ExecPath(p))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	browserCtx, cancelTimeout := context.WithTimeout(browserCtx, b.Timeout)
	defer cancelTimeout()

	tmpDir, err := os.MkdirTemp("", "cvrender-")
	if err != nil {
		return nil, &BackendError{Message: "failed to create temp dir", Cause: err}
	}
	defer func() {
		if err := os.RemoveAll(tmpDir); err != nil {
			log.Printf("[RENDER] warning: failed to clean up %s: %v", tmpDir, err)
		}
	}()

	htmlPath := filepath.Join(tmpDir, "cv.html")
	if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
		return nil, &BackendError{Message: "failed to write document", Cause: err}
	}

	if b.Verbose {
		log.Printf("[RENDER] printing %d bytes of HTML to PDF", len(html))
	}

	var pdf []byte
	err = chromedp.Run(browserCtx,
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Sleep(b.SettleDelay),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var printErr error
			pdf, _, printErr = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(a4WidthInches).
				WithPaperHeight(a4HeightInches).
				WithMarginTop(0).
				WithMarginBottom(0).
				WithMarginLeft(0).
				WithMarginRight(0).
				WithPreferCSSPageSize(true).
				Do(ctx)
			return printErr
		}),
	)
	if err != nil {
		return nil, &BackendError{Message: "browser rendering failed", Cause: err}
	}

	if b.Verbose {
		log.Printf("[RENDER] produced PDF: %d bytes", len(pdf))
	}
	return pdf, nil
}
