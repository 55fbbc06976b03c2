package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"golang.org/x/time/rate"
)

const (
	apiBaseURL = "https://data.sec.gov"

	// Default access rate for EDGAR, see
	// https://www.sec.gov/os/webmaster-faq#code-support
	//
	// Note that our current maximum access rate is 10 requests per second.
	limitRate = 10
)

// Doer performs HTTP requests.
//
// The standard http.Client implements this interface.
type HttpRequestDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

type Limiter interface{ Wait(context.Context) error }

func New(opts ...ClientOption) *Client {
	c := &Client{}
	return c.applyOptions(opts...)
}

type ClientOption func(c *Client)

func WithHttpClient(client HttpRequestDoer) ClientOption {
	return func(c *Client) { c.client = client }
}

func WithRateLimiter(l Limiter) ClientOption {
	return func(c *Client) { c.limiter = l }
}

type Client struct {
	client  HttpRequestDoer
	limiter Limiter
	retry   RetryPolicy
	ua      string

	apiBaseUrl string
}

func (self *Client) applyOptions(opts ...ClientOption) *Client {
	for _, fn := range opts {
		fn(self)
	}

	if self.client == nil {
		self.client = &http.Client{}
	}

	if self.limiter == nil {
		self.limiter = rate.NewLimiter(limitRate, limitRate)
	}

	if self.retry.Attempts == 0 {
		self.retry = DefaultRetryPolicy()
	}

	return self
}

func (self *Client) WithApiBaseURL(url string) *Client {
	self.apiBaseUrl = url
	return self
}

func (self *Client) ApiBaseURL() string {
	if self.apiBaseUrl == "" {
		return apiBaseURL
	}
	return self.apiBaseUrl
}

func (self *Client) WithUserAgent(ua string) *Client {
	self.ua = ua
	return self
}

func (self *Client) WithRetry(r RetryPolicy) *Client {
	self.retry = r
	return self
}

func (self *Client) Get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create new GET request for %q: %w", url, err)
	}
	req.Header.Add("User-Agent", self.ua)

	if err := self.limitRate(ctx); err != nil {
		return nil, fmt.Errorf("rate limit GET %s: %w", url, err)
	}

	resp, err := self.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", url, err)
	}

	return resp, nil
}

func (self *Client) limitRate(ctx context.Context) error {
	if self.limiter != nil {
		if err := self.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("wait: %w", err)
		}
	}
	return nil
}

// GetOK is Get with the response status validated. The body of a non-success
// response is closed before returning.
func (self *Client) GetOK(ctx context.Context, url string) (*http.Response, error) {
	resp, err := self.Get(ctx, url)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode > maxExpectedStatusCode {
		resp.Body.Close()
		return nil, fmt.Errorf("GET %s: %w", url, newUnexpectedStatusError(resp))
	}

	return resp, nil
}

func (self *Client) GetJSON(ctx context.Context, url string, value any) error {
	resp, err := self.Get(ctx, url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if resp.StatusCode > maxExpectedStatusCode {
		return fmt.Errorf("GET %s: %w", url, newUnexpectedStatusError(resp))
	}
	if err != nil {
		return fmt.Errorf("read body from GET %s: %w", url, err)
	}

	if err := json.Unmarshal(body, value); err != nil {
		return fmt.Errorf("unmarshal GET %s: %w", url, err)
	}

	return nil
}

func (self *Client) Submissions(ctx context.Context, cik CIK,
) (filings CompanyFilings, err error) {
	url, err := self.submissionsURL(cik)
	if err != nil {
		return
	}
	err = self.retry.Do(ctx, func() error {
		return self.GetJSON(ctx, url, &filings)
	})
	return
}

func (self *Client) submissionsURL(cik CIK) (string, error) {
	url, err := url.JoinPath(self.ApiBaseURL(), "submissions",
		"CIK"+cik.String()+".json")
	if err != nil {
		return "", fmt.Errorf("join submissions path for CIK=%v: %w", cik, err)
	}
	return url, nil
}
