package puzzle

import (
	"math"

	"github.com/mattn/go-runewidth"

	"github.com/knavesat/knavesat/stmt"
)

// Supported configuration ranges. The algebra itself handles any
// character count up to the host integer width, but brute-force solving
// is O(2^n) per candidate, and the rendering only names eight
// characters.
const (
	MinCharacters = 2
	MaxCharacters = 8
	MaxLevel      = 4
)

// factors maps the complexity level to the generator's weighting
// factor. Values above 1 favor conjunctions and conditionals over
// atomic assertions.
var factors = [MaxLevel + 1]float64{0.55, 0.8, 1.15, 1.7, 2.4}

// Per-character rendered-width formulas the band interpolates between.
const (
	shortMin, longMin = 18, 48
	shortMax, longMax = 50, 120
)

// band returns the inclusive rendered-width band for n characters at
// the given level. The band grows monotonically with the level; its
// minimum relaxes to zero at level 0 and its maximum to unbounded at
// the top level.
func band(n, level int) (min, max int) {
	t := float64(level) / MaxLevel
	min = int(lerp(shortMin, longMin, t) * float64(n))
	max = int(lerp(shortMax, longMax, t) * float64(n))
	if level == 0 {
		min = 0
	}
	if level == MaxLevel {
		max = math.MaxInt
	}
	return min, max
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// totalWidth sums the display width of every rendered statement.
// Display width, not byte length: the band is a readability heuristic.
func totalWidth(stmts []stmt.Statement) int {
	w := 0
	for _, s := range stmts {
		w += runewidth.StringWidth(s.Text())
	}
	return w
}
