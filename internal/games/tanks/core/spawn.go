package core

// Spawner releases opponents from a FIFO roster at a fixed interval,
// never exceeding the on-screen cap.
type Spawner struct {
	Interval  int
	Cap       int
	Countdown int // Starts at 0 so the first spawn happens on the first tick
	Roster    []OpponentType
}

// NewSpawner creates a spawner over a copy of roster.
func NewSpawner(roster []OpponentType, interval, limit int) *Spawner {
	return &Spawner{
		Interval: interval,
		Cap:      limit,
		Roster:   append([]OpponentType(nil), roster...),
	}
}

// Remaining returns how many roster entries are still queued.
func (s *Spawner) Remaining() int {
	return len(s.Roster)
}

// Tick advances the countdown and, when due, picks a spawn.
// live is the current live opponent count and free reports whether a spawn
// point can take a new opponent. The countdown resets once a spawn was
// attempted, even if no point was free; it is left alone while capped or
// when the roster is empty. At most one opponent spawns per tick.
func (s *Spawner) Tick(live int, points []Coord, free func(Coord) bool, rng Rand) (OpponentType, Coord, bool) {
	s.Countdown--
	if s.Countdown > 0 || live >= s.Cap || len(s.Roster) == 0 {
		return 0, Coord{}, false
	}

	shuffled := append([]Coord(nil), points...)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	s.Countdown = s.Interval

	for _, p := range shuffled {
		if !free(p) {
			continue
		}
		t := s.Roster[0]
		s.Roster = s.Roster[1:]
		return t, p, true
	}
	return 0, Coord{}, false
}
