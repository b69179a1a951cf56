package cmd

import (
	"errors"

	"github.com/hoppxi/xmon/pkg/operation"
	"github.com/hoppxi/xmon/pkg/xrandr"
)

const (
	ExitOK = iota
	ExitUsage
	ExitToolMissing
	ExitToolError
	ExitParseError
)

type usageError struct{ err error }

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func exitCode(err error) int {
	var (
		toolErr  *xrandr.ToolError
		parseErr *xrandr.ParseError
	)
	switch {
	case err == nil, errors.Is(err, operation.ErrNoExternalDisplay):
		return ExitOK
	case errors.Is(err, xrandr.ErrToolMissing):
		return ExitToolMissing
	case errors.As(err, &toolErr):
		return ExitToolError
	case errors.As(err, &parseErr):
		return ExitParseError
	}
	return ExitUsage
}
