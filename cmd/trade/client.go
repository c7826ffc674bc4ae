package trade

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"

	"github/uniagent/go-broker/internal/types"
)

const clientTimeout = 60 * time.Second

// client is a thin HTTP client for the broker's JSON API.
type client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func newClient() *client {
	return &client{
		baseURL: v.GetString(urlFlag),
		apiKey:  v.GetString(apiKeyFlag),
		http:    &http.Client{Timeout: clientTimeout},
	}
}

func (c *client) post(ctx context.Context, path string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return errors.Wrap(err, "failed to marshal request body")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return errors.Wrap(err, "failed to create request")
	}

	req.Header.Set("Content-Type", "application/json")

	return c.do(req, out)
}

func (c *client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return errors.Wrap(err, "failed to create request")
	}

	return c.do(req, out)
}

func (c *client) do(req *http.Request, out any) error {
	if c.apiKey != "" {
		req.Header.Set("x-api-key", c.apiKey)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return errors.Wrap(err, "request failed")
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return errors.Wrap(err, "failed to read response body")
	}

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		// surface the broker's error title if the body parses as one
		var httpErr struct {
			Title string `json:"title"`
		}
		if err := json.Unmarshal(raw, &httpErr); err == nil && httpErr.Title != "" {
			return errors.Errorf("%s (status %d)", httpErr.Title, res.StatusCode)
		}

		return errors.Errorf("unexpected status %d: %s", res.StatusCode, string(raw))
	}

	if out == nil {
		return nil
	}

	return errors.Wrap(json.Unmarshal(raw, out), "failed to unmarshal response body")
}

func (c *client) createTransaction(ctx context.Context, path string, body any) (*types.CreateTransactionResponse, error) {
	var res types.CreateTransactionResponse
	if err := c.post(ctx, path, body, &res); err != nil {
		return nil, err
	}

	return &res, nil
}

func (c *client) submit(ctx context.Context, rootHash, signature string) (*types.SubmitResponse, error) {
	var res types.SubmitResponse
	err := c.post(ctx, "/submit", &types.PostSubmitPayload{
		RootHash:  &rootHash,
		Signature: &signature,
	}, &res)
	if err != nil {
		return nil, err
	}

	return &res, nil
}

// printJSON renders a response to stdout for human and script consumption.
func printJSON(out any) error {
	raw, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to marshal output")
	}

	fmt.Println(string(raw))

	return nil
}
