// Package fetcher pulls job postings from external career pages so a
// job description can be imported by URL instead of pasted in.
package fetcher

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"

	"github.com/gocolly/colly/v2"
)

// Posting is the scraped content of one job posting page.
type Posting struct {
	Title       string
	Description string
	URL         string
}

// minDescriptionLen is the point below which a static fetch is assumed
// to have hit a JavaScript-rendered page and the headless fallback
// kicks in.
const minDescriptionLen = 200

type Fetcher struct {
	logger *log.Logger

	// headless fetches pages that render their content client side.
	// Swappable for tests.
	headless func(ctx context.Context, pageURL string) (Posting, error)
}

func New(logger *log.Logger) *Fetcher {
	f := &Fetcher{logger: logger}
	f.headless = fetchHeadless
	return f
}

// Fetch retrieves a job posting, trying a static fetch first and
// falling back to a headless browser for script-rendered pages.
func (f *Fetcher) Fetch(ctx context.Context, pageURL string) (Posting, error) {
	pageURL = strings.TrimSpace(pageURL)
	if pageURL == "" {
		return Posting{}, fmt.Errorf("empty url")
	}
	if _, err := url.ParseRequestURI(pageURL); err != nil {
		return Posting{}, fmt.Errorf("invalid url: %w", err)
	}

	posting, err := f.fetchStatic(ctx, pageURL)
	if err == nil && len(posting.Description) >= minDescriptionLen {
		return posting, nil
	}
	if err != nil && f.logger != nil {
		f.logger.Printf("[Fetcher] static fetch failed url=%s err=%v", pageURL, err)
	}

	headlessPosting, headlessErr := f.headless(ctx, pageURL)
	if headlessErr != nil {
		if err == nil && posting.Description != "" {
			// Thin static content beats nothing.
			return posting, nil
		}
		if err != nil {
			return Posting{}, err
		}
		return Posting{}, headlessErr
	}
	return headlessPosting, nil
}

func (f *Fetcher) fetchStatic(ctx context.Context, pageURL string) (Posting, error) {
	allowed := hostFromURL(pageURL)
	var c *colly.Collector
	if allowed == "" {
		c = colly.NewCollector()
	} else {
		c = colly.NewCollector(colly.AllowedDomains(allowed))
	}
	_ = c.Limit(&colly.LimitRule{DomainGlob: "*", Parallelism: 2, RandomDelay: 850 * time.Millisecond, Delay: 450 * time.Millisecond})

	out := Posting{URL: pageURL}
	var reqErr error

	c.OnRequest(func(r *colly.Request) {
		for k, v := range httpHeaders() {
			r.Headers.Set(k, v)
		}
	})

	c.OnHTML("title", func(e *colly.HTMLElement) {
		if out.Title == "" {
			out.Title = strings.TrimSpace(e.Text)
		}
	})

	c.OnHTML("h1", func(e *colly.HTMLElement) {
		// A page h1 is usually the actual posting title.
		if t := strings.TrimSpace(e.Text); t != "" {
			out.Title = t
		}
	})

	c.OnHTML("body", func(e *colly.HTMLElement) {
		e.DOM.Find("script, style, nav, header, footer").Remove()
		out.Description = collapseWhitespace(e.DOM.Text())
	})

	c.OnError(func(r *colly.Response, err error) {
		reqErr = err
	})

	if ctx.Err() != nil {
		return Posting{}, ctx.Err()
	}
	if err := c.Visit(pageURL); err != nil {
		return Posting{}, err
	}
	c.Wait()
	if reqErr != nil {
		return Posting{}, reqErr
	}
	if out.Description == "" {
		return Posting{}, fmt.Errorf("no content at %s", pageURL)
	}
	return out, nil
}

func hostFromURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return u.Hostname()
}

func httpHeaders() map[string]string {
	return map[string]string{
		"User-Agent":      "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/122.0.0.0 Safari/537.36",
		"Accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8",
		"Accept-Language": "en-US,en;q=0.9",
	}
}

func collapseWhitespace(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}
