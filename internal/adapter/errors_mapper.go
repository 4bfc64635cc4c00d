package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// w3cError is the error body defined by the W3C WebDriver protocol.
type w3cError struct {
	Value struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	} `json:"value"`
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	detail := errorDetail(resp)

	switch resp.StatusCode() {
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrSessionNotFound, detail)
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrUnauthorized, detail)
	default:
		return fmt.Errorf("%w: http %d: %s", ErrWebDriver, resp.StatusCode(), detail)
	}
}

// errorDetail prefers the W3C "error: message" pair and falls back to the raw
// body or the status text.
func errorDetail(resp *resty.Response) string {
	var body w3cError
	if err := json.Unmarshal(resp.Body(), &body); err == nil && body.Value.Error != "" {
		return body.Value.Error + ": " + body.Value.Message
	}

	if raw := strings.TrimSpace(string(resp.Body())); raw != "" {
		return raw
	}

	return http.StatusText(resp.StatusCode())
}
