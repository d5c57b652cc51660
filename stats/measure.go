// SPDX-License-Identifier: MIT

package stats

import (
	"errors"
	"strconv"
)

var (
	// ErrNotConnected is returned by DiameterStrict on a graph with more
	// than one connected component.
	ErrNotConnected = errors.New("stats: graph is not connected")

	// ErrGraphNil is returned when a nil graph is passed.
	ErrGraphNil = errors.New("stats: graph is nil")

	// ErrUnknownPolicy is returned by ParseDiameterPolicy.
	ErrUnknownPolicy = errors.New("stats: unknown diameter policy")
)

// Measure is a scalar statistic that may be undefined for its input.
// Value is meaningful only when Applicable is true.
type Measure struct {
	Value      float64
	Applicable bool
}

// applicable wraps v as a defined Measure.
func applicable(v float64) Measure { return Measure{Value: v, Applicable: true} }

// String renders the value, or "n/a" when not applicable.
func (m Measure) String() string {
	if !m.Applicable {
		return "n/a"
	}

	return strconv.FormatFloat(m.Value, 'g', 6, 64)
}
