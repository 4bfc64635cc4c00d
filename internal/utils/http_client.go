package utils

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// ErrInvalidAddress is returned by [NewHTTPClient] for an address it cannot
// turn into an http or https base URL.
var ErrInvalidAddress = errors.New("invalid address")

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a resty-backed client for address with the given
// per-request timeout. A zero timeout leaves requests unbounded.
//
// address may omit the scheme ("localhost:4723" means http); a trailing
// slash is dropped so request paths can start with "/". Each call returns an
// independent client with its own connection pool.
//
// Example usage:
//
//	client, err := utils.NewHTTPClient("localhost:4723", 30*time.Second)
//	resp, err := client.R().Get("/status")
func NewHTTPClient(address string, timeout time.Duration) (*HTTPClient, error) {
	baseURL, err := baseURLFrom(address)
	if err != nil {
		return nil, err
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json")

	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}, nil
}

func baseURLFrom(address string) (string, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidAddress)
	}
	if _, _, found := strings.Cut(address, "://"); !found {
		address = "http://" + address
	}

	u, err := url.Parse(address)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	switch {
	case u.Scheme != "http" && u.Scheme != "https":
		return "", fmt.Errorf("%w: unsupported scheme %q", ErrInvalidAddress, u.Scheme)
	case u.Host == "":
		return "", fmt.Errorf("%w: %q has no host", ErrInvalidAddress, address)
	}

	u.Path = strings.TrimRight(u.Path, "/")
	u.RawPath = ""

	return u.String(), nil
}
