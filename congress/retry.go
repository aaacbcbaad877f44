package congress

import (
	"fmt"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
)

const maxRetries = 2

// do executes the request with bounded exponential backoff. Only
// transport errors and 5xx responses are retried; a 4xx is final. The
// backoff is jittered so concurrent callers don't hammer the upstream in
// lockstep.
func (c *Client) do(req *http.Request) (*http.Response, error) {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 200 * time.Millisecond
	bo.MaxInterval = 2 * time.Second

	return backoff.RetryWithData(func() (*http.Response, error) {
		resp, err := c.client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
		}

		switch {
		case resp.StatusCode >= http.StatusInternalServerError:
			resp.Body.Close() //nolint:errcheck
			return nil, fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
		case resp.StatusCode >= http.StatusBadRequest:
			resp.Body.Close() //nolint:errcheck
			return nil, backoff.Permanent(fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode))
		}
		return resp, nil
	}, backoff.WithContext(backoff.WithMaxRetries(bo, maxRetries), req.Context()))
}
