package testutils

import (
	"math"
	"sync"

	"github.com/KirkDiggler/rpg-battle/internal/errors"
	"github.com/KirkDiggler/rpg-battle/internal/pkg/random"
)

// ScriptedRoller is a dice.Roller that returns a fixed sequence of results.
// It records the die sizes it was asked for so tests can check roll order.
type ScriptedRoller struct {
	mu     sync.Mutex
	values []int
	sizes  []int
}

// NewScriptedRoller creates a roller that returns values in order
func NewScriptedRoller(values ...int) *ScriptedRoller {
	return &ScriptedRoller{values: values}
}

// Push appends more results to the script
func (r *ScriptedRoller) Push(values ...int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values = append(r.values, values...)
}

// Roll returns the next scripted value. It fails when the script is empty or
// the value does not fit the requested die.
func (r *ScriptedRoller) Roll(size int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sizes = append(r.sizes, size)
	if len(r.values) == 0 {
		return 0, errors.Internalf("scripted roller exhausted (requested d%d)", size)
	}
	v := r.values[0]
	r.values = r.values[1:]
	if v < 1 || v > size {
		return 0, errors.Internalf("scripted value %d does not fit d%d", v, size)
	}
	return v, nil
}

// RollN returns the next count scripted values
func (r *ScriptedRoller) RollN(count, size int) ([]int, error) {
	out := make([]int, 0, count)
	for i := 0; i < count; i++ {
		v, err := r.Roll(size)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// Sizes returns the die sizes requested so far
func (r *ScriptedRoller) Sizes() []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]int(nil), r.sizes...)
}

// Remaining returns how many scripted values are left
func (r *ScriptedRoller) Remaining() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.values)
}

// FractionRoll returns the roll that random.Source.Float64 maps to f
func FractionRoll(f float64) int {
	return int(math.Round(f*random.FloatResolution)) + 1
}

// RangeRoll returns the roll that random.Source.IntRange(lo, hi) maps to v
func RangeRoll(lo, v int) int {
	return v - lo + 1
}
