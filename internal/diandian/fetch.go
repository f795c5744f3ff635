package diandian

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/chromedp"
	"github.com/rs/zerolog"

	"github.com/asakit/asakit/pkg/constants"
	"github.com/asakit/asakit/pkg/errors"
	"github.com/asakit/asakit/pkg/logging"
)

const (
	baseURL       = "https://app.diandian.com/tool/searchIntelligent-1-24-"
	tableSelector = ".dd-data-table"
)

// URL returns the suggestion page for keyword.
func URL(keyword string) string {
	return baseURL + url.PathEscape(keyword)
}

// Fetcher loads pages in a headless Chrome.
type Fetcher struct {
	// ExecPath overrides the Chrome binary lookup.
	ExecPath string
	// WaitTimeout bounds the wait for the ranking table.
	WaitTimeout time.Duration
	// Timeout bounds the whole fetch including browser start-up.
	Timeout time.Duration

	logger *zerolog.Logger
}

// NewFetcher returns a Fetcher with the default timeouts.
func NewFetcher(logger *zerolog.Logger) *Fetcher {
	if logger == nil {
		logger = logging.Default()
	}
	return &Fetcher{
		WaitTimeout: constants.BrowserWaitTimeout,
		Timeout:     constants.BrowserFetchTimeout,
		logger:      logger,
	}
}

// Fetch returns the rendered HTML of the suggestion page for keyword once the
// ranking table is present.
func (f *Fetcher) Fetch(ctx context.Context, keyword string) (string, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.NoSandbox,
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if f.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(f.ExecPath))
	}

	if f.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.Timeout)
		defer cancel()
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()
	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx,
		chromedp.WithLogf(func(format string, args ...any) {
			f.logger.Debug().Msgf(format, args...)
		}))
	defer cancelBrowser()

	// start the browser on the long-lived context
	if err := chromedp.Run(browserCtx); err != nil {
		return "", errors.WrapResource("start", "browser", "", err)
	}

	pageURL := URL(keyword)
	f.logger.Info().Str("url", pageURL).Msg("Loading page")

	waitCtx, cancelWait := context.WithTimeout(browserCtx, f.WaitTimeout)
	defer cancelWait()

	var html string
	err := chromedp.Run(waitCtx,
		chromedp.Navigate(pageURL),
		chromedp.WaitReady(tableSelector, chromedp.ByQuery),
		chromedp.OuterHTML("html", &html, chromedp.ByQuery),
	)
	if err != nil {
		if waitCtx.Err() == context.DeadlineExceeded {
			return "", &errors.TimeoutError{
				Operation: "wait for " + tableSelector,
				Duration:  f.WaitTimeout.String(),
				Message:   "ranking table did not appear",
			}
		}
		return "", errors.WrapResource("fetch", "page", pageURL, err)
	}
	return html, nil
}

// ResponseFileName returns diandian_hotwords_<keyword>_<YYYYMMDD>.txt.
func ResponseFileName(keyword string, now time.Time) string {
	return fmt.Sprintf("diandian_hotwords_%s_%s.txt", keyword, now.Format("20060102"))
}

// SaveResponse writes html into dir, creating it when absent, and returns the
// file path.
func SaveResponse(dir, keyword, html string, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
		return "", errors.WrapIO("create", dir, err)
	}
	path := filepath.Join(dir, ResponseFileName(keyword, now))
	if err := os.WriteFile(path, []byte(html), constants.FilePermissions); err != nil {
		return "", errors.WrapIO("write", path, err)
	}
	return path, nil
}

// PageSource returns the rendered page for a keyword.
type PageSource interface {
	Fetch(ctx context.Context, keyword string) (string, error)
}

// FetchHotWords fetches the page for keyword, saves it into dir and parses it.
// It returns the ranking and the path of the saved page.
func FetchHotWords(ctx context.Context, src PageSource, keyword, dir string, now time.Time) (*HotWords, string, error) {
	html, err := src.Fetch(ctx, keyword)
	if err != nil {
		return nil, "", err
	}
	path, err := SaveResponse(dir, keyword, html, now)
	if err != nil {
		return nil, "", err
	}
	words, err := ParseTableAt(html, now)
	if err != nil {
		return nil, path, err
	}
	return words, path, nil
}
