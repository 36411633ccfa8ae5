package fetch

import (
	"context"
	"io"
	"net/http"

	"github.com/cenkalti/backoff/v4"
	"github.com/ib-77/stampede/pkg/stampede"
	"github.com/pkg/errors"
)

const defaultMaxRetries = 3

var defaultURLLoader = NewURLLoader(nil, defaultMaxRetries)

// BytesFromURL downloads the body of a URL with the default client and
// retry budget.
func BytesFromURL(ctx context.Context, url string) ([]byte, error) {
	return defaultURLLoader(ctx, url)
}

// NewURLLoader builds a LoadFunc that GETs each input URL. Network errors
// and 5xx responses are retried with exponential backoff up to maxRetries
// times; other non-200 statuses fail immediately. A nil client means
// http.DefaultClient.
func NewURLLoader(client *http.Client, maxRetries uint64) stampede.LoadFunc[[]byte] {
	if client == nil {
		client = http.DefaultClient
	}

	return func(ctx context.Context, url string) ([]byte, error) {
		var body []byte

		operation := func() error {
			data, err := fetchOnce(ctx, client, url)
			if err != nil {
				return err
			}
			body = data
			return nil
		}

		b := backoff.WithMaxRetries(backoff.NewExponentialBackOff(), maxRetries)
		if err := backoff.Retry(operation, backoff.WithContext(b, ctx)); err != nil {
			return nil, stampede.NewFault(KindFetch, err)
		}
		return body, nil
	}
}

func fetchOnce(ctx context.Context, client *http.Client, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, backoff.Permanent(errors.Wrapf(err, "request %s", url))
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "get %s", url)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode >= http.StatusInternalServerError:
		return nil, errors.Errorf("get %s: %s", url, resp.Status)
	default:
		return nil, backoff.Permanent(errors.Errorf("get %s: %s", url, resp.Status))
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "read body of %s", url)
	}
	return data, nil
}
