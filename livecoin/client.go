package livecoin

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"liveflow/exchange"
	"liveflow/logger"
)

const contentTypeForm = "application/x-www-form-urlencoded"

func (e *Exchange) publicGet(ctx context.Context, path string, params url.Values) (json.RawMessage, error) {
	return e.request(ctx, http.MethodGet, path, params, false)
}

func (e *Exchange) privateGet(ctx context.Context, path string, params url.Values) (json.RawMessage, error) {
	return e.request(ctx, http.MethodGet, path, params, true)
}

func (e *Exchange) privatePost(ctx context.Context, path string, params url.Values) (json.RawMessage, error) {
	return e.request(ctx, http.MethodPost, path, params, true)
}

// privatePostRaw skips the generic success=false probe. The cancel endpoint
// reports success=false as part of its regular response contract and
// interprets it itself.
func (e *Exchange) privatePostRaw(ctx context.Context, path string, params url.Values) (json.RawMessage, error) {
	return e.do(ctx, http.MethodPost, path, params, true)
}

func (e *Exchange) request(ctx context.Context, method, path string, params url.Values, private bool) (json.RawMessage, error) {
	body, err := e.do(ctx, method, path, params, private)
	if err != nil {
		return nil, err
	}
	if err := e.surfaceFailure(body); err != nil {
		return nil, err
	}
	return body, nil
}

// do performs a single blocking exchange call. Private calls carry the
// Api-Key/Sign headers over the canonical query encoding; GET places the
// query in the URL, POST places it in the body.
func (e *Exchange) do(ctx context.Context, method, path string, params url.Values, private bool) (json.RawMessage, error) {
	if !endpointKnown(method, path, private) {
		return nil, exchange.NewError(e.id, exchange.KindNotSupported,
			fmt.Sprintf("%s %s is not part of the exchange API", method, path), "")
	}
	if private && (e.apiKey == "" || e.secret == "") {
		return nil, exchange.NewError(e.id, exchange.KindAuthentication,
			"api key and secret are required for private endpoints", "")
	}

	if err := e.limiter.Wait(ctx); err != nil {
		return nil, exchange.NewError(e.id, exchange.KindTransport, err.Error(), "")
	}

	query := canonicalQuery(params)
	requestID := uuid.NewString()

	req := e.client.R().SetContext(ctx)
	if private {
		req.SetHeader("Api-Key", e.apiKey)
		req.SetHeader("Sign", signQuery(query, e.secret))
		req.SetHeader("Content-Type", contentTypeForm)
	}

	target := "/" + path
	var (
		resp *resty.Response
		err  error
	)
	switch method {
	case http.MethodGet:
		if query != "" {
			target += "?" + query
		}
		resp, err = req.Get(target)
	case http.MethodPost:
		resp, err = req.SetBody(query).Post(target)
	default:
		return nil, exchange.NewError(e.id, exchange.KindNotSupported, "unsupported HTTP method "+method, "")
	}
	if err != nil {
		logger.RecordRequestError(path)
		return nil, exchange.NewError(e.id, exchange.KindTransport, err.Error(), "")
	}

	body := append([]byte(nil), resp.Body()...)
	e.log.WithFields(logger.Fields{
		"request_id": requestID,
		"method":     method,
		"path":       path,
		"status":     resp.StatusCode(),
		"bytes":      len(body),
	}).Debug("api request")

	if resp.StatusCode() >= 300 {
		logger.RecordRequestError(path)
		return nil, e.translateError(resp.StatusCode(), body)
	}
	logger.RecordRequest(path, len(body))
	return body, nil
}

// translateError maps a non-2xx response carrying the exchange's numeric
// errorCode into a typed error. Non-JSON bodies and bodies without an
// errorCode become generic exchange errors carrying the raw payload.
func (e *Exchange) translateError(status int, body []byte) error {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var payload struct {
			ErrorCode    *int   `json:"errorCode"`
			ErrorMessage string `json:"errorMessage"`
		}
		if json.Unmarshal(trimmed, &payload) == nil && payload.ErrorCode != nil {
			return e.mapErrorCode(*payload.ErrorCode, payload.ErrorMessage, string(body))
		}
	}
	return exchange.NewError(e.id, exchange.KindExchange,
		fmt.Sprintf("HTTP %d", status), string(body))
}

func (e *Exchange) mapErrorCode(code int, message, body string) error {
	switch code {
	case 2:
		// Code 2 is authentication only for this exact message.
		if message == "User not found" {
			return exchange.NewError(e.id, exchange.KindAuthentication, message, body)
		}
		return exchange.NewError(e.id, exchange.KindExchange, message, body)
	case 10, 11, 12, 20, 30, 101, 102:
		return exchange.NewError(e.id, exchange.KindAuthentication, message, body)
	case 31:
		return exchange.NewError(e.id, exchange.KindNotSupported, message, body)
	case 100:
		return exchange.NewError(e.id, exchange.KindParameter, "invalid parameters", body)
	case 103:
		return exchange.NewError(e.id, exchange.KindInvalidOrder, "invalid currency", body)
	case 104:
		return exchange.NewError(e.id, exchange.KindInvalidOrder, "invalid amount", body)
	case 105:
		return exchange.NewError(e.id, exchange.KindInvalidOrder, "unable to reserve funds", body)
	default:
		// 1, 32 and anything unrecognized.
		return exchange.NewError(e.id, exchange.KindExchange, message, body)
	}
}

// surfaceFailure rejects 2xx responses whose JSON object still reports
// success=false. This check applies to every endpoint, layered above the
// status-code handling.
func (e *Exchange) surfaceFailure(body []byte) error {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil
	}
	var probe struct {
		Success *bool `json:"success"`
	}
	if json.Unmarshal(trimmed, &probe) != nil {
		return nil
	}
	if probe.Success != nil && !*probe.Success {
		return exchange.NewError(e.id, exchange.KindExchange, "request failed", string(body))
	}
	return nil
}
