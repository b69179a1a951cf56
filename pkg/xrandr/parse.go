// Package xrandr wraps the xrandr command line tool: running it, building
// its arguments and parsing the text it prints.
//
// The listing format is an external contract. Output header lines start at
// column zero ("HDMI-1 connected 1920x1080+0+0 ..."), their properties and
// modes are indented below them, and a "Screen N:" line precedes them all.
package xrandr

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	ErrMissingMarker   = errors.New("no connection marker in listing")
	ErrDisplayNotFound = errors.New("display not in listing")
	ErrMissingLabel    = errors.New("label not found")
	ErrMalformedNumber = errors.New("malformed number")
)

const brightnessLabel = "Brightness:"

// ParseError names the display and field a parse failed on.
type ParseError struct {
	Display string
	Field   string
	Err     error
}

func (e *ParseError) Error() string {
	if e.Display == "" {
		return fmt.Sprintf("xrandr: parse %s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("xrandr: parse %s of %s: %v", e.Field, e.Display, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// State is the connection state printed after an output name.
type State string

const (
	Connected    State = "connected"
	Disconnected State = "disconnected"
	Unknown      State = "unknown connection"
)

// Output is one output header plus what was parsed from its properties.
type Output struct {
	Name          string
	State         State
	Primary       bool
	Brightness    float64
	HasBrightness bool
}

type block struct {
	header string
	props  []string
}

func blocks(text string) []block {
	var out []block
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		if line[0] == ' ' || line[0] == '\t' {
			if len(out) > 0 {
				out[len(out)-1].props = append(out[len(out)-1].props, line)
			}
			continue
		}
		if strings.HasPrefix(line, "Screen ") {
			continue
		}
		out = append(out, block{header: line})
	}
	return out
}

func parseHeader(line string) (Output, bool) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return Output{}, false
	}

	o := Output{Name: fields[0]}
	switch {
	case fields[1] == string(Connected):
		o.State = Connected
	case fields[1] == string(Disconnected):
		o.State = Disconnected
	case fields[1] == "unknown" && len(fields) > 2 && fields[2] == "connection":
		o.State = Unknown
	default:
		return Output{}, false
	}

	for _, f := range fields[2:] {
		if f == "primary" {
			o.Primary = true
			break
		}
	}
	return o, true
}

// ParseOutputs returns every output header in listing order.
func ParseOutputs(text string) ([]Output, error) {
	var outputs []Output
	for _, b := range blocks(text) {
		o, ok := parseHeader(b.header)
		if !ok {
			continue
		}
		if v, err := brightnessIn(b.props); err == nil {
			o.Brightness = v
			o.HasBrightness = true
		} else if errors.Is(err, ErrMalformedNumber) {
			return nil, &ParseError{Display: o.Name, Field: "brightness", Err: err}
		}
		outputs = append(outputs, o)
	}

	if len(outputs) == 0 && strings.TrimSpace(text) != "" {
		return nil, &ParseError{Field: "connection state", Err: ErrMissingMarker}
	}
	return outputs, nil
}

// ParseConnected returns the names of connected outputs in listing order.
func ParseConnected(text string) ([]string, error) {
	outputs, err := ParseOutputs(text)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, o := range outputs {
		if o.State == Connected {
			names = append(names, o.Name)
		}
	}
	return names, nil
}

// ParseBrightness reads the Brightness property of display from the
// verbose listing.
func ParseBrightness(text, display string) (float64, error) {
	for _, b := range blocks(text) {
		fields := strings.Fields(b.header)
		if len(fields) == 0 || fields[0] != display {
			continue
		}
		v, err := brightnessIn(b.props)
		if err != nil {
			return 0, &ParseError{Display: display, Field: "brightness", Err: err}
		}
		return v, nil
	}
	return 0, &ParseError{Display: display, Field: "output", Err: ErrDisplayNotFound}
}

func brightnessIn(props []string) (float64, error) {
	for _, line := range props {
		line = strings.TrimSpace(line)
		rest, ok := strings.CutPrefix(line, brightnessLabel)
		if !ok {
			continue
		}
		fields := strings.Fields(rest)
		if len(fields) == 0 {
			return 0, fmt.Errorf("%w: empty value", ErrMalformedNumber)
		}
		v, err := strconv.ParseFloat(fields[0], 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, fmt.Errorf("%w: %q", ErrMalformedNumber, fields[0])
		}
		return v, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrMissingLabel, brightnessLabel)
}
