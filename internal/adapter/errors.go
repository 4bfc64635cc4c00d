package adapter

import "errors"

var (
	// ErrSessionNotFound indicates that the driver does not know the session
	// id, usually because the session already ended.
	ErrSessionNotFound = errors.New("webdriver session not found")
	// ErrUnauthorized indicates rejected device-farm credentials.
	ErrUnauthorized = errors.New("webdriver request unauthorized")
	// ErrWebDriver indicates any other error reported by the driver.
	ErrWebDriver = errors.New("webdriver error")
	// ErrEmptyScreenshot indicates a successful response without image data.
	ErrEmptyScreenshot = errors.New("empty screenshot payload")
	// ErrNoSession indicates that no session id was configured.
	ErrNoSession = errors.New("no webdriver session id")
)
