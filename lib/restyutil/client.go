package restyutil

import (
	"net"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	DefaultRetryCount     = 3
	DefaultRetryWait      = time.Second
	DefaultRetryMaxWait   = time.Second * 30
	DefaultTimeout        = time.Second * 30
	DefaultConnectTimeout = time.Second * 10
)

// status codes that warrant another attempt, everything else in the
// 4xx/5xx range fails immediately
var retryStatusCodes = map[int]struct{}{
	429: {},
	500: {},
	502: {},
	503: {},
	504: {},
}

func IsRetryableStatus(code int) bool {
	_, ok := retryStatusCodes[code]
	return ok
}

type RetryOptions struct {
	// attempts beyond the first request, <= 0 falls back to DefaultRetryCount
	Count int
	// base wait between attempts, resty grows it exponentially up to MaxWait
	Wait    time.Duration
	MaxWait time.Duration
	Timeout time.Duration
}

// NewRetryClient returns a resty client with the bounded retry policy
// shared by every outbound request: transport errors and retryable
// status codes are retried with exponential backoff, anything else
// surfaces on the first response.
func NewRetryClient(opts RetryOptions) *resty.Client {
	if opts.Count <= 0 {
		opts.Count = DefaultRetryCount
	}
	if opts.Wait <= 0 {
		opts.Wait = DefaultRetryWait
	}
	if opts.MaxWait <= 0 {
		opts.MaxWait = DefaultRetryMaxWait
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}

	client := resty.New()
	client.SetTransport(&http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout: DefaultConnectTimeout,
		}).DialContext,
		TLSHandshakeTimeout: DefaultConnectTimeout,
	})
	client.SetTimeout(opts.Timeout)
	client.SetRetryCount(opts.Count)
	client.SetRetryWaitTime(opts.Wait)
	client.SetRetryMaxWaitTime(opts.MaxWait)
	client.AddRetryCondition(func(res *resty.Response, err error) bool {
		if err != nil {
			return true
		}
		return IsRetryableStatus(res.StatusCode())
	})

	return client
}
