package core

import (
	"errors"
)

// Process exit statuses.
const (
	ExitSuccess = 0
	ExitFailure = 1
	// ExitGradingBase is added to the digit of a Shift+digit shortcut.
	ExitGradingBase = 100
)

var (
	ErrWindowInit    = errors.New("failed to create window")
	ErrContextInit   = errors.New("failed to initialize OpenGL context")
	ErrShaderMissing = errors.New("shader source not found")
)
