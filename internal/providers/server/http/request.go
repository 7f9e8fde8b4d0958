package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"
)

// apiError is the error body shape the remote API returns alongside non-2xx
// statuses.
type apiError struct {
	Status  int    `json:"status"`
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (g *Gateway) do(ctx context.Context, method, rawURL string, body any) (map[string]any, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, internalError("cannot encode request body", err)
		}
		reader = bytes.NewReader(encoded)
	}

	request, err := http.NewRequestWithContext(ctx, method, rawURL, reader)
	if err != nil {
		return nil, internalError("cannot build request", err)
	}
	request.SetBasicAuth(g.keyID, g.secret)
	request.Header.Set("Accept", mediaTypeJSON)
	request.Header.Set("User-Agent", userAgent)
	request.Header.Set("X-Request-Id", uuid.NewString())
	if body != nil {
		request.Header.Set("Content-Type", mediaTypeJSON)
	}

	response, err := g.client.Do(request)
	if err != nil {
		return nil, transportError(fmt.Sprintf("request to %s failed", rawURL), err)
	}
	defer response.Body.Close()

	payload, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, transportError("cannot read response body", err)
	}

	if response.StatusCode >= 400 {
		return nil, mapStatusError(response.StatusCode, payload)
	}
	if len(bytes.TrimSpace(payload)) == 0 {
		return nil, nil
	}

	decoded := map[string]any{}
	if err := json.Unmarshal(payload, &decoded); err != nil {
		return nil, internalError("cannot decode response body", err)
	}
	return decoded, nil
}

// mapStatusError converts a remote failure into a typed fault, preserving the
// server's own message verbatim when one is present.
func mapStatusError(status int, payload []byte) error {
	message := http.StatusText(status)
	var remote apiError
	if err := json.Unmarshal(payload, &remote); err == nil && remote.Message != "" {
		message = remote.Message
	}

	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return authError(message, nil)
	case status == http.StatusNotFound:
		return notFoundError(message, nil)
	case status == http.StatusConflict:
		return conflictError(message, nil)
	case status >= 400 && status < 500:
		return validationError(message, nil)
	default:
		return transportError(message, nil)
	}
}
