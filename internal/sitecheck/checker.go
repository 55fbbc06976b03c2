// Package sitecheck probes public registry endpoints and reports whether
// they respond and when their content was last modified.
package sitecheck

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/tenkit/tenkit/client"
)

const (
	defaultTimeout = 10 * time.Second
	defaultLimit   = 4
)

// DefaultEndpoints are the registry endpoints the downloader depends on.
var DefaultEndpoints = []string{
	"https://www.sec.gov/",
	"https://data.sec.gov/submissions/CIK0000320193.json",
	"https://www.sec.gov/cgi-bin/browse-edgar?action=getcompany",
}

func New(urls []string) *Checker {
	return &Checker{
		urls:    urls,
		client:  http.DefaultClient,
		timeout: defaultTimeout,
		limit:   defaultLimit,
	}
}

type Checker struct {
	urls []string

	client  client.HttpRequestDoer
	timeout time.Duration
	limit   int
	ua      string
}

func (self *Checker) WithHttpClient(doer client.HttpRequestDoer) *Checker {
	self.client = doer
	return self
}

// WithTimeout sets the per-probe timeout.
func (self *Checker) WithTimeout(d time.Duration) *Checker {
	self.timeout = d
	return self
}

// WithLimit bounds the number of concurrent probes.
func (self *Checker) WithLimit(n int) *Checker {
	self.limit = n
	return self
}

func (self *Checker) WithUserAgent(ua string) *Checker {
	self.ua = ua
	return self
}

// Result is the probe outcome for one endpoint.
type Result struct {
	URL          string
	StatusCode   int
	LastModified time.Time
	Elapsed      time.Duration
	Err          error
}

// OK reports whether the endpoint responded with a success status.
func (self *Result) OK() bool {
	return self.Err == nil &&
		self.StatusCode >= http.StatusOK &&
		self.StatusCode < http.StatusMultipleChoices
}

// Run probes every endpoint and returns results in input order. Probe
// failures are per-endpoint values, they never abort the set.
func (self *Checker) Run(ctx context.Context) []Result {
	results := make([]Result, len(self.urls))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(self.limit)

	for i, url := range self.urls {
		g.Go(func() error {
			results[i] = self.probe(ctx, url)
			return nil
		})
	}

	_ = g.Wait()
	return results
}

func (self *Checker) probe(ctx context.Context, url string) Result {
	result := Result{URL: url}

	ctx, cancel := context.WithTimeout(ctx, self.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		result.Err = fmt.Errorf("failed create request: %w", err)
		return result
	}
	if self.ua != "" {
		req.Header.Set("User-Agent", self.ua)
	}

	started := time.Now()
	resp, err := self.client.Do(req)
	result.Elapsed = time.Since(started)
	if err != nil {
		result.Err = fmt.Errorf("failed fetch %q: %w", url, err)
		return result
	}
	defer resp.Body.Close()

	result.StatusCode = resp.StatusCode
	if s := resp.Header.Get("Last-Modified"); s != "" {
		if t, err := http.ParseTime(s); err == nil {
			result.LastModified = t
		}
	}
	return result
}
