package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/bitly/go-simplejson"

	"github.com/vantagefx/exkernel/core/kernel/signer"
	"github.com/vantagefx/exkernel/core/log"
	"github.com/vantagefx/exkernel/core/types"
)

// httpRestClient is the net/http-backed RestClient. It never retries a
// request whose signer step fails (an AuthError is fatal by construction);
// it only retries network-shaped failures, up to Config.MaxRetries times,
// with exponential backoff between attempts (doubling from RetryBaseDelay,
// capped at RetryMaxDelay), the same doubling-backoff idiom the WebSocket
// reconnect wrapper uses for its own retries.
type httpRestClient struct {
	http   *http.Client
	cfg    Config
	signer signer.Signer
}

func newHTTPRestClient(cfg Config, s signer.Signer) *httpRestClient {
	return &httpRestClient{
		http: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		},
		cfg:    cfg,
		signer: s,
	}
}

func (c *httpRestClient) Clone() RestClient {
	return &httpRestClient{http: c.http, cfg: c.cfg, signer: c.signer}
}

func buildQueryString(kv []signer.KV) string {
	if len(kv) == 0 {
		return ""
	}
	parts := make([]string, 0, len(kv))
	for _, p := range kv {
		parts = append(parts, p.Key+"="+p.Value)
	}
	return strings.Join(parts, "&")
}

func (c *httpRestClient) doRequest(ctx context.Context, method, endpoint string, query []signer.KV, body []byte, authenticated bool) ([]byte, error) {
	queryString := buildQueryString(query)
	signedQuery := query

	headers := map[string]string{}
	if authenticated {
		if c.signer == nil {
			return nil, types.NewAuthError("authentication required but no signer configured")
		}
		timestampMs := time.Now().UnixMilli()
		result, err := c.signer.SignRequest(method, endpoint, queryString, body, timestampMs)
		if err != nil {
			return nil, err
		}
		headers = result.Headers
		signedQuery = result.SignedParams
	}

	url := c.cfg.BaseURL + endpoint
	if qs := buildQueryString(signedQuery); qs != "" {
		url += "?" + qs
	}

	var lastErr error
	attempts := c.cfg.MaxRetries + 1
	delay := c.cfg.RetryBaseDelay
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, types.NewNetworkError("context cancelled during retry backoff", ctx.Err())
			case <-time.After(delay):
			}
			delay *= 2
			if delay > c.cfg.RetryMaxDelay {
				delay = c.cfg.RetryMaxDelay
			}
		}

		var reader io.Reader
		if len(body) > 0 {
			reader = bytes.NewReader(body)
		}
		req, err := http.NewRequestWithContext(ctx, method, url, reader)
		if err != nil {
			return nil, types.NewNetworkError("failed to build request", err)
		}
		req.Header.Set("User-Agent", c.cfg.UserAgent)
		if len(body) > 0 {
			req.Header.Set("Content-Type", "application/json")
		}
		for k, v := range headers {
			req.Header.Set(k, v)
		}

		log.Http.Debugf("%s %s attempt=%d", method, endpoint, attempt+1)
		resp, err := c.http.Do(req)
		if err != nil {
			lastErr = types.NewNetworkError("request failed: "+err.Error(), err)
			continue
		}

		respBody, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = types.NewNetworkError("failed to read response body", err)
			continue
		}

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return nil, types.NewAPIError(resp.Status, string(respBody))
		}
		return respBody, nil
	}
	return nil, lastErr
}

func (c *httpRestClient) unmarshalInto(body []byte, out interface{}) error {
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return types.NewDeserializationError("failed to parse JSON response: " + err.Error())
	}
	return nil
}

func (c *httpRestClient) toSimplejson(body []byte) (*simplejson.Json, error) {
	j, err := simplejson.NewJson(body)
	if err != nil {
		return nil, types.NewDeserializationError("failed to parse JSON response: " + err.Error())
	}
	return j, nil
}

func (c *httpRestClient) GetJSON(ctx context.Context, endpoint string, query []signer.KV, authenticated bool, out interface{}) error {
	body, err := c.doRequest(ctx, http.MethodGet, endpoint, query, nil, authenticated)
	if err != nil {
		return err
	}
	return c.unmarshalInto(body, out)
}

func (c *httpRestClient) PostJSON(ctx context.Context, endpoint string, reqBody []byte, authenticated bool, out interface{}) error {
	body, err := c.doRequest(ctx, http.MethodPost, endpoint, nil, reqBody, authenticated)
	if err != nil {
		return err
	}
	return c.unmarshalInto(body, out)
}

func (c *httpRestClient) PutJSON(ctx context.Context, endpoint string, reqBody []byte, authenticated bool, out interface{}) error {
	body, err := c.doRequest(ctx, http.MethodPut, endpoint, nil, reqBody, authenticated)
	if err != nil {
		return err
	}
	return c.unmarshalInto(body, out)
}

func (c *httpRestClient) DeleteJSON(ctx context.Context, endpoint string, query []signer.KV, authenticated bool, out interface{}) error {
	body, err := c.doRequest(ctx, http.MethodDelete, endpoint, query, nil, authenticated)
	if err != nil {
		return err
	}
	return c.unmarshalInto(body, out)
}

func (c *httpRestClient) Get(ctx context.Context, endpoint string, query []signer.KV, authenticated bool) (*simplejson.Json, error) {
	body, err := c.doRequest(ctx, http.MethodGet, endpoint, query, nil, authenticated)
	if err != nil {
		return nil, err
	}
	return c.toSimplejson(body)
}

func (c *httpRestClient) Post(ctx context.Context, endpoint string, reqBody []byte, authenticated bool) (*simplejson.Json, error) {
	body, err := c.doRequest(ctx, http.MethodPost, endpoint, nil, reqBody, authenticated)
	if err != nil {
		return nil, err
	}
	return c.toSimplejson(body)
}

func (c *httpRestClient) Put(ctx context.Context, endpoint string, reqBody []byte, authenticated bool) (*simplejson.Json, error) {
	body, err := c.doRequest(ctx, http.MethodPut, endpoint, nil, reqBody, authenticated)
	if err != nil {
		return nil, err
	}
	return c.toSimplejson(body)
}

func (c *httpRestClient) Delete(ctx context.Context, endpoint string, query []signer.KV, authenticated bool) (*simplejson.Json, error) {
	body, err := c.doRequest(ctx, http.MethodDelete, endpoint, query, nil, authenticated)
	if err != nil {
		return nil, err
	}
	return c.toSimplejson(body)
}

func (c *httpRestClient) SignedRequest(ctx context.Context, method, endpoint string, query []signer.KV, body []byte) (*simplejson.Json, error) {
	respBody, err := c.doRequest(ctx, method, endpoint, query, body, true)
	if err != nil {
		return nil, err
	}
	return c.toSimplejson(respBody)
}
