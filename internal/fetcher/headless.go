package fetcher

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
)

// fetchHeadless renders the page in a headless browser and reads the
// title and visible body text after scripts have run.
func fetchHeadless(ctx context.Context, pageURL string) (Posting, error) {
	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
			chromedp.UserAgent("Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/122.0.0.0 Safari/537.36"),
		)...,
	)
	defer allocCancel()

	browserCtx, browserCancel := chromedp.NewContext(allocCtx)
	defer browserCancel()

	reqCtx, reqCancel := context.WithTimeout(browserCtx, 25*time.Second)
	defer reqCancel()

	var title, body string
	err := chromedp.Run(reqCtx,
		chromedp.Navigate(pageURL),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Sleep(1500*time.Millisecond),
		chromedp.EvaluateAsDevTools(`document.title`, &title),
		chromedp.EvaluateAsDevTools(`document.body ? document.body.innerText : ''`, &body),
	)
	if err != nil {
		return Posting{}, err
	}

	body = collapseWhitespace(body)
	if body == "" {
		return Posting{}, fmt.Errorf("no content at %s (headless)", pageURL)
	}

	return Posting{
		Title:       strings.TrimSpace(title),
		Description: body,
		URL:         pageURL,
	}, nil
}
