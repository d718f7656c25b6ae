// Package random turns an rpg-toolkit dice.Roller into the uniform integer,
// uniform float and Bernoulli draws the combat and reward rules need.
//
// Every roll in the game goes through a Source, so swapping the roller for a
// seeded or scripted one makes whole battles reproducible.
package random

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-battle/internal/errors"
)

// FloatResolution is the die size used to derive a float in [0, 1).
// A roll of r maps to (r-1)/FloatResolution.
const FloatResolution = 1_000_000

// Source draws random values from a dice roller
type Source struct {
	roller dice.Roller
}

// New wraps roller. A nil roller falls back to the toolkit's default roller.
func New(roller dice.Roller) *Source {
	if roller == nil {
		roller = dice.DefaultRoller
	}
	return &Source{roller: roller}
}

// IntRange returns a uniform integer in [lo, hi], both ends inclusive
func (s *Source) IntRange(lo, hi int) (int, error) {
	if hi < lo {
		return 0, errors.InvalidArgumentf("invalid range [%d, %d]", lo, hi)
	}
	if hi == lo {
		return lo, nil
	}

	r, err := s.roller.Roll(hi - lo + 1)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to roll d%d", hi-lo+1)
	}
	return lo + r - 1, nil
}

// Float64 returns a uniform float in [0, 1)
func (s *Source) Float64() (float64, error) {
	r, err := s.roller.Roll(FloatResolution)
	if err != nil {
		return 0, errors.Wrap(err, "failed to roll fraction")
	}
	return float64(r-1) / FloatResolution, nil
}

// Uniform returns a uniform float in [lo, hi)
func (s *Source) Uniform(lo, hi float64) (float64, error) {
	f, err := s.Float64()
	if err != nil {
		return 0, err
	}
	return lo + (hi-lo)*f, nil
}

// Chance returns true with probability p. It always consumes one roll so the
// roll sequence does not depend on p.
func (s *Source) Chance(p float64) (bool, error) {
	f, err := s.Float64()
	if err != nil {
		return false, err
	}
	return f < p, nil
}
