// Package random provides the injectable source of randomness used for flee,
// encounter and enemy-table draws.
package random

import (
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-quest/internal/errors"
)

// Source draws random numbers.
type Source interface {
	// Float64 returns a value in [0, 1).
	Float64() (float64, error)
	// Intn returns a value in [0, n).
	Intn(n int) (int, error)
}

// resolution is the number of faces used to build a uniform float draw.
const resolution = 10000

// DiceSource adapts a dice.Roller to Source.
type DiceSource struct {
	roller dice.Roller
}

// NewDiceSource wraps roller. A nil roller uses dice.DefaultRoller.
func NewDiceSource(roller dice.Roller) *DiceSource {
	if roller == nil {
		roller = dice.DefaultRoller
	}
	return &DiceSource{roller: roller}
}

// Float64 rolls a d10000 and maps it onto [0, 1).
func (s *DiceSource) Float64() (float64, error) {
	n, err := s.roller.Roll(resolution)
	if err != nil {
		return 0, errors.Wrap(err, "failed to roll")
	}
	return float64(n-1) / resolution, nil
}

// Intn rolls a dn and shifts it to start at zero.
func (s *DiceSource) Intn(n int) (int, error) {
	if n <= 0 {
		return 0, errors.InvalidArgumentf("n must be positive, got %d", n)
	}
	v, err := s.roller.Roll(n)
	if err != nil {
		return 0, errors.Wrap(err, "failed to roll")
	}
	return v - 1, nil
}

// Fixed replays a scripted sequence of draws. Once exhausted it keeps
// returning the last value. Intn maps the draw onto [0, n).
type Fixed struct {
	mu     sync.Mutex
	values []float64
	next   int
}

// NewFixed returns a source that replays values in order.
func NewFixed(values ...float64) *Fixed {
	return &Fixed{values: values}
}

// Float64 returns the next scripted value.
func (f *Fixed) Float64() (float64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.values) == 0 {
		return 0, nil
	}
	i := f.next
	if i >= len(f.values) {
		i = len(f.values) - 1
	} else {
		f.next++
	}
	return f.values[i], nil
}

// Intn scales the next scripted value onto [0, n).
func (f *Fixed) Intn(n int) (int, error) {
	if n <= 0 {
		return 0, errors.InvalidArgumentf("n must be positive, got %d", n)
	}
	v, err := f.Float64()
	if err != nil {
		return 0, err
	}
	i := int(v * float64(n))
	if i >= n {
		i = n - 1
	}
	return i, nil
}
