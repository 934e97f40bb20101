package render

import (
	"context"
	"log"
	"time"

	"github.com/yassjustice/resumeBuilder-sub001/internal/layout"
	"github.com/yassjustice/resumeBuilder-sub001/internal/normalize"
	"github.com/yassjustice/resumeBuilder-sub001/internal/types"
)

// Retry policy for transient backend failures.
const (
	maxAttempts  = 2
	retryBackoff = 750 * time.Millisecond
)

// Driver assembles the full render pipeline: normalize the stored record,
// build the section tree, generate the styled HTML, and drive the backend
// with bounded retries.
type Driver struct {
	backend Backend
	// sleep is injected so tests can skip the backoff.
	sleep func(time.Duration)
}

// NewDriver creates a driver for the given backend.
func NewDriver(backend Backend) *Driver {
	return &Driver{backend: backend, sleep: time.Sleep}
}

// NewDriverWithSleep creates a driver with a custom backoff sleep func.
func NewDriverWithSleep(backend Backend, sleep func(time.Duration)) *Driver {
	return &Driver{backend: backend, sleep: sleep}
}

// Produce renders the raw CV record to a PDF binary. The raw value may be
// a stored document wrapper, a plain map, or a partially populated preview
// payload; normalization degrades malformed fields instead of failing.
// The caller resolves the theme (stored overrides included); a zero theme
// falls back to the built-in named by the document. A transient backend
// failure or empty output is retried up to maxAttempts with a fixed
// backoff; exhaustion surfaces a typed *Error.
func (d *Driver) Produce(ctx context.Context, raw any, theme types.Theme, opts types.RenderOptions) ([]byte, error) {
	opts = opts.ApplyDefaults()

	cv := normalize.CV(raw)
	if theme.Name == "" {
		theme = types.ThemeByName(cv.Theme)
	}

	sections := layout.BuildSections(cv, opts)
	html, err := layout.BuildHTML(cv, sections, theme, opts)
	if err != nil {
		return nil, &Error{Message: "failed to build document", Cause: err}
	}

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		pdf, err := d.backend.Render(ctx, html)
		if err == nil && len(pdf) > 0 {
			return pdf, nil
		}
		if err != nil {
			lastErr = err
			log.Printf("[RENDER] attempt %d/%d failed: %v", attempt, maxAttempts, err)
		} else {
			lastErr = &BackendError{Message: "backend produced empty output"}
			log.Printf("[RENDER] attempt %d/%d produced empty output", attempt, maxAttempts)
		}
		if ctx.Err() != nil {
			break
		}
		if attempt < maxAttempts {
			d.sleep(retryBackoff)
		}
	}

	return nil, &Error{Message: "rendering failed after retries", Cause: lastErr}
}

// Plan returns the deterministic page plan for a raw CV record without
// invoking the backend. It is used by the preview endpoint and by tests
// asserting pagination behavior.
func (d *Driver) Plan(raw any, theme types.Theme, opts types.RenderOptions) *layout.Plan {
	opts = opts.ApplyDefaults()
	cv := normalize.CV(raw)
	if theme.Name == "" {
		theme = types.ThemeByName(cv.Theme)
	}
	sections := layout.BuildSections(cv, opts)
	return layout.Paginate(cv, sections, theme, opts)
}
