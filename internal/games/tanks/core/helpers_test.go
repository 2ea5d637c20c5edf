package core

import (
	"math/rand"
	"strings"
)

// scriptRand replays fixed values. Once a script runs dry Float64 returns
// 0.99 (no sighting, no re-roll, no drop), Intn returns 0 and Shuffle keeps
// the order.
type scriptRand struct {
	floats []float64
	ints   []int
	lastN  int // argument of the most recent Intn call
}

func (r *scriptRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0.99
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func (r *scriptRand) Intn(n int) int {
	r.lastN = n
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	return v % n
}

func (r *scriptRand) Shuffle(int, func(i, j int)) {}

func seeded(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// openLayout returns a 16x16 description with a Steel border and an empty
// interior, followed by extra lines.
func openLayout(extra ...string) string {
	rows := make([]string, 0, 16+len(extra))
	rows = append(rows, strings.Repeat("@", 16))
	for i := 0; i < 14; i++ {
		rows = append(rows, "@"+strings.Repeat(".", 14)+"@")
	}
	rows = append(rows, strings.Repeat("@", 16))
	rows = append(rows, extra...)
	return strings.Join(rows, "\n")
}

func eventKinds(events []Event) []EventKind {
	kinds := make([]EventKind, 0, len(events))
	for _, e := range events {
		kinds = append(kinds, e.Kind)
	}
	return kinds
}

func findEvent(events []Event, kind EventKind) (Event, bool) {
	for _, e := range events {
		if e.Kind == kind {
			return e, true
		}
	}
	return Event{}, false
}

// quietWorld starts a world on an open layout with the spawner emptied so
// tests can place actors by hand.
func quietWorld(rules Rules, rng Rand, structure bool) *World {
	w := NewWorld(rules, rng)
	w.Start(LevelSpec{Layout: openLayout("ENEMIES:b"), Structure: structure})
	w.Spawner.Roster = nil
	return w
}
