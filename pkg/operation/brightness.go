package operation

import (
	"context"
	"fmt"
	"math"

	"github.com/hoppxi/xmon/pkg/xrandr"
	"github.com/knetic/govaluate"
)

const DefaultStep = 0.1

// Transform maps the current brightness to the new one. Clamping to [0,1]
// is the transform's job.
type Transform func(old float64) float64

type BrightnessChange struct {
	Display string
	Old     float64
	New     float64
}

func Down(step float64) Transform {
	return func(old float64) float64 { return math.Max(0, old-step) }
}

func Up(step float64) Transform {
	return func(old float64) float64 { return math.Min(1, old+step) }
}

func Max() Transform {
	return func(float64) float64 { return 1.0 }
}

func clamp(v float64) float64 {
	return math.Min(1, math.Max(0, v))
}

// Expr builds a transform from an arithmetic expression over the current
// brightness, available as `brightness` or `b`. The expression is checked
// once up front so a bad one fails before any output is touched.
func Expr(expr string) (Transform, error) {
	expression, err := govaluate.NewEvaluableExpressionWithFunctions(expr, exprFunctions)
	if err != nil {
		return nil, fmt.Errorf("parse expression %q: %w", expr, err)
	}

	eval := func(old float64) (float64, error) {
		res, err := expression.Evaluate(map[string]any{"brightness": old, "b": old})
		if err != nil {
			return 0, err
		}
		v, ok := res.(float64)
		if !ok || math.IsNaN(v) {
			return 0, fmt.Errorf("expression %q gave %v, want a number", expr, res)
		}
		return clamp(v), nil
	}
	if _, err := eval(0.5); err != nil {
		return nil, err
	}

	return func(old float64) float64 {
		v, err := eval(old)
		if err != nil {
			return old
		}
		return v
	}, nil
}

var exprFunctions = map[string]govaluate.ExpressionFunction{
	"min": func(args ...any) (any, error) {
		if len(args) != 2 {
			return nil, fmt.Errorf("min takes 2 arguments")
		}
		return math.Min(toFloat64(args[0]), toFloat64(args[1])), nil
	},
	"max": func(args ...any) (any, error) {
		if len(args) != 2 {
			return nil, fmt.Errorf("max takes 2 arguments")
		}
		return math.Max(toFloat64(args[0]), toFloat64(args[1])), nil
	},
}

func toFloat64(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case bool:
		if n {
			return 1
		}
	}
	return 0
}

// AdjustBrightness applies fn to every external output in turn. The
// brightness is read from a fresh verbose listing before each change.
func (c *Controller) AdjustBrightness(ctx context.Context, fn Transform) ([]BrightnessChange, error) {
	externals, err := c.Externals(ctx)
	if err != nil {
		return nil, err
	}
	if len(externals) == 0 {
		return nil, ErrNoExternalDisplay
	}

	var changes []BrightnessChange
	for _, d := range externals {
		old, err := c.Brightness(ctx, d)
		if err != nil {
			return changes, err
		}

		next := fn(old)
		if _, err := c.run.Run(ctx, xrandr.SetBrightness(d, next)...); err != nil {
			return changes, fmt.Errorf("set brightness of %s: %w", d, err)
		}

		c.log.Debug("brightness changed", "output", d, "old", old, "new", next)
		changes = append(changes, BrightnessChange{Display: d, Old: old, New: next})
	}

	return changes, nil
}

// Brightness reads the current software brightness of display.
func (c *Controller) Brightness(ctx context.Context, display string) (float64, error) {
	out, err := c.run.Run(ctx, "--verbose")
	if err != nil {
		return 0, fmt.Errorf("query %s: %w", display, err)
	}
	return xrandr.ParseBrightness(out, display)
}
