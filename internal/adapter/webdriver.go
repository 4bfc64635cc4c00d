// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to a running WebDriver endpoint (a local Appium
// server or the BrowserStack hub) on behalf of the lifecycle hooks.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrSessionNotFound]
// for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/mobile-e2e-config/internal/config"
	"github.com/MKhiriev/mobile-e2e-config/internal/logger"
	"github.com/MKhiriev/mobile-e2e-config/internal/utils"
	"github.com/MKhiriev/mobile-e2e-config/models"
)

type webDriverSession struct {
	client    *utils.HTTPClient
	sessionID string
}

// screenshotResponse is the W3C "Take Screenshot" response body.
type screenshotResponse struct {
	Value string `json:"value"`
}

// NewWebDriverSession returns a [models.Session] bound to an existing driver
// session. The session is neither created nor deleted here.
//
// When bs carries credentials they are sent as basic auth, as the
// BrowserStack hub expects. Returns an error if wdCfg.URL is not a valid
// address or wdCfg.SessionID is empty.
func NewWebDriverSession(wdCfg config.WebDriver, bs config.BrowserStack) (models.Session, error) {
	sessionID := strings.TrimSpace(wdCfg.SessionID)
	if sessionID == "" {
		return nil, ErrNoSession
	}

	client, err := utils.NewHTTPClient(wdCfg.URL, wdCfg.RequestTimeout)
	if err != nil {
		return nil, fmt.Errorf("webdriver url: %w", err)
	}
	if bs.Username != "" || bs.AccessKey != "" {
		client.SetBasicAuth(bs.Username, bs.AccessKey)
	}

	return &webDriverSession{client: client, sessionID: sessionID}, nil
}

// SaveScreenshot implements [models.Session]. It requests
// GET /session/{id}/screenshot, decodes the base64 PNG and writes it to path,
// creating the parent directory when needed.
//
// The response body is decoded whatever Content-Type the driver declares.
// Progress is logged to the logger attached to ctx, if any.
func (s *webDriverSession) SaveScreenshot(ctx context.Context, path string) error {
	resp, err := s.client.R().
		SetContext(ctx).
		SetPathParam("sessionId", s.sessionID).
		Get("/session/{sessionId}/screenshot")
	if err != nil {
		return fmt.Errorf("screenshot request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	var body screenshotResponse
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return fmt.Errorf("%w: malformed screenshot response: %w", ErrWebDriver, err)
	}

	if body.Value == "" {
		return ErrEmptyScreenshot
	}

	png, err := base64.StdEncoding.DecodeString(body.Value)
	if err != nil {
		return fmt.Errorf("decode screenshot: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err = os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create screenshot dir: %w", err)
		}
	}

	if err = os.WriteFile(path, png, 0o644); err != nil {
		return fmt.Errorf("write screenshot: %w", err)
	}

	logger.FromContext(ctx).Debug().
		Str("session_id", s.sessionID).
		Str("path", path).
		Int("bytes", len(png)).
		Msg("screenshot written")

	return nil
}
