package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"pension-admin/internal/core/domain"
)

// Client is the single outbound HTTP client shared by all service modules.
// Every backend call goes through it: request interceptors run in order
// before send, and on failure the response is classified and handed to the
// response interceptors before the error reaches the caller.
type Client struct {
	baseURL  string
	http     *http.Client
	onSend   []RequestInterceptor
	onReject []ResponseInterceptor
}

// New creates a client for the given backend base URL. The timeout bounds
// each call end to end; there is no retry and no per-call cancellation
// beyond the caller's context.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// UseRequest appends a request interceptor. Order of registration is order
// of execution.
func (c *Client) UseRequest(interceptor RequestInterceptor) {
	c.onSend = append(c.onSend, interceptor)
}

// UseResponse appends a response interceptor, invoked for failed calls only.
func (c *Client) UseResponse(interceptor ResponseInterceptor) {
	c.onReject = append(c.onReject, interceptor)
}

// Get issues a GET request and decodes the JSON response into out.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

// Post issues a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

// Put issues a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

// Patch issues a PATCH request with a JSON body.
func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPatch, path, nil, body, out)
}

// Delete issues a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

// Download issues a GET request and returns the raw response body, for
// binary endpoints like report downloads.
func (c *Client) Download(ctx context.Context, path string) ([]byte, error) {
	resp, apiErr := c.send(ctx, http.MethodGet, path, nil, nil)
	if apiErr != nil {
		return nil, c.reject(apiErr)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, c.reject(networkError(err))
	}
	return data, nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	resp, apiErr := c.send(ctx, method, path, query, body)
	if apiErr != nil {
		return c.reject(apiErr)
	}
	defer resp.Body.Close()

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return c.reject(&Error{
			Kind:    domain.ErrServer,
			Status:  resp.StatusCode,
			Message: "Server error. Please try again later.",
			cause:   err,
		})
	}
	return nil
}

// send performs one attempt. It returns either a successful response whose
// body the caller owns, or a classified error.
func (c *Client) send(ctx context.Context, method, path string, query url.Values, body any) (*http.Response, *Error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, buildError(err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, buildError(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	for _, intercept := range c.onSend {
		if err := intercept(req); err != nil {
			return nil, buildError(err)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		// Timeouts and connection failures land here: the request was
		// sent (or tried to be) and no response came back.
		return nil, networkError(err)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return resp, nil
	}

	raw, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	return nil, classify(resp.StatusCode, raw)
}

// reject runs the response interceptors in order, then returns the error.
func (c *Client) reject(apiErr *Error) error {
	for _, intercept := range c.onReject {
		intercept(apiErr)
	}
	return apiErr
}
