package core

import "fmt"

// ValidationError contains details about an arena validation failure.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Validation error codes.
const (
	CodeSpawnBlocked = "SPAWN_BLOCKED"
	CodeAreaTooSmall = "AREA_TOO_SMALL"
	CodeNoExit       = "NO_EXIT"
)

// Validate checks that every spawn point is walkable, reaches at least
// MinArea cells and reaches some cell at row MinExitRow or deeper.
func (a *Arena) Validate() error {
	for _, sp := range a.SpawnPoints {
		if !a.CanMoveTo(sp) {
			return ValidationError{
				Code:    CodeSpawnBlocked,
				Message: fmt.Sprintf("spawn point %s is not walkable", sp),
			}
		}

		reach := a.Reachable(sp)
		if len(reach) < a.Params.MinArea {
			return ValidationError{
				Code: CodeAreaTooSmall,
				Message: fmt.Sprintf("spawn point %s reaches %d cells, need %d",
					sp, len(reach), a.Params.MinArea),
			}
		}

		deepest := -1
		for c := range reach {
			if c.Y > deepest {
				deepest = c.Y
			}
		}
		if deepest < a.Params.MinExitRow {
			return ValidationError{
				Code: CodeNoExit,
				Message: fmt.Sprintf("spawn point %s reaches row %d at most, need %d",
					sp, deepest, a.Params.MinExitRow),
			}
		}
	}
	return nil
}

// IsValid is Validate() == nil.
func (a *Arena) IsValid() bool {
	return a.Validate() == nil
}

// Reachable returns the 4-connected walkable region containing from.
// The result is empty if from itself is not walkable.
func (a *Arena) Reachable(from Coord) map[Coord]struct{} {
	seen := make(map[Coord]struct{})
	if !a.CanMoveTo(from) {
		return seen
	}
	seen[from] = struct{}{}
	queue := []Coord{from}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, d := range AllDirs {
			next := cur.Step(d)
			if _, ok := seen[next]; ok {
				continue
			}
			if a.CanMoveTo(next) {
				seen[next] = struct{}{}
				queue = append(queue, next)
			}
		}
	}
	return seen
}
