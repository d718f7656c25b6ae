// Package levelcurve maps cumulative experience to a character level.
//
// Level 1 needs 100 experience to advance; every next level needs the previous
// threshold times 1.5, rounded down.
package levelcurve

// BaseThreshold is the experience needed to go from level 1 to level 2
const BaseThreshold int64 = 100

// Progress describes where a total experience value sits on the curve
type Progress struct {
	Level int
	// NeededForNext is the size of the current level's threshold
	NeededForNext int64
	// IntoLevel is the experience earned since reaching Level
	IntoLevel int64
}

// Remaining is the experience still missing to reach the next level
func (p Progress) Remaining() int64 {
	return p.NeededForNext - p.IntoLevel
}

// Level returns the progress for a total experience value.
// Negative experience is treated as zero.
func Level(experience int64) Progress {
	if experience < 0 {
		experience = 0
	}

	level := 1
	threshold := BaseThreshold
	var accumulated int64
	for experience >= accumulated+threshold {
		accumulated += threshold
		level++
		threshold = next(threshold)
	}

	return Progress{
		Level:         level,
		NeededForNext: threshold,
		IntoLevel:     experience - accumulated,
	}
}

// Cumulative returns the total experience required to reach level
func Cumulative(level int) int64 {
	var total int64
	threshold := BaseThreshold
	for l := 1; l < level; l++ {
		total += threshold
		threshold = next(threshold)
	}
	return total
}

func next(threshold int64) int64 {
	return threshold * 3 / 2
}
