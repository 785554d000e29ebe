package robotevents

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
)

const defaultMaxAttempts = 4

// fetchWithRetry retries 429 responses and network-level failures with
// exponential backoff (2^attempt units), honoring a Retry-After header
// (seconds) when the server sends one. any other status is returned on
// the first attempt for the caller to inspect.
//
// when every attempt comes back 429, the final 429 response is returned
// without an error so callers can degrade instead of failing; a network
// failure that survives all attempts propagates as an error.
func (c *Client) fetchWithRetry(ctx context.Context, send func() (*resty.Response, error)) (*resty.Response, error) {
	var res *resty.Response
	var err error

	for attempt := 0; attempt < c.maxAttempts; attempt++ {
		res, err = send()

		if err == nil && res.StatusCode() != http.StatusTooManyRequests {
			return res, nil
		}
		if attempt == c.maxAttempts-1 {
			break
		}

		delay := c.retryUnit << attempt
		if err == nil {
			if secs, perr := strconv.Atoi(res.Header().Get("Retry-After")); perr == nil {
				delay = time.Duration(secs) * time.Second
			}
		}
		if serr := sleep(ctx, delay); serr != nil {
			return res, serr
		}
	}

	return res, err
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
