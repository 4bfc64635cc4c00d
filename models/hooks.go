// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"context"
	"time"
)

//go:generate mockgen -source=hooks.go -destination=../internal/mock/session_mock.go -package=mock

// Session is the handle to the active driver session, passed to the
// after-test hook by the runner at invocation time.
type Session interface {
	// SaveScreenshot captures the current screen and writes it as a PNG file
	// to path.
	SaveScreenshot(ctx context.Context, path string) error
}

// TestResult is what the runner reports about a finished test.
type TestResult struct {
	// Parent is the name of the enclosing suite.
	Parent   string
	Title    string
	Passed   bool
	Error    error
	Duration time.Duration
}

// Hooks are the lifecycle callback slots of a RunConfig. Any slot may be nil.
type Hooks struct {
	OnPrepare  func()
	OnComplete func()
	AfterTest  func(ctx context.Context, session Session, result TestResult)
}
