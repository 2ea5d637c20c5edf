package core

import bt "github.com/joeycumines/go-behaviortree"

// Battlefield is what an opponent's decision tree can observe and do.
type Battlefield interface {
	// CanEnter reports whether an actor may step onto c.
	CanEnter(c Coord) bool
	// PlayerPos returns the player's cell.
	PlayerPos() Coord
	// Fire launches a projectile from the opponent's cell along its facing.
	Fire(o *Opponent)
}

// Controller owns the per-opponent behavior trees.
//
// Each tree is a sequence of
//
//	flash countdown -> alive guard -> sighting -> fire timer -> movement
//
// where movement selects between waiting out the move timer and stepping
// (re-rolling direction when blocked or on a small random chance).
// A dead opponent fails the guard and does nothing else.
type Controller struct {
	params AIParams
	field  Battlefield
	rng    Rand
}

// NewController creates a controller acting on field.
func NewController(params AIParams, field Battlefield, rng Rand) *Controller {
	return &Controller{params: params, field: field, rng: rng}
}

// Attach builds the opponent's behavior tree.
func (c *Controller) Attach(o *Opponent) {
	o.brain = c.build(o)
}

// Tick runs one decision step for o.
func (c *Controller) Tick(o *Opponent) {
	if o.brain == nil {
		c.Attach(o)
	}
	_, _ = o.brain.Tick()
}

func (c *Controller) build(o *Opponent) bt.Node {
	return bt.New(
		bt.Sequence,
		action(func() {
			if o.Flash > 0 {
				o.Flash--
			}
		}),
		condition(func() bool { return o.Alive }),
		action(func() { c.sight(o) }),
		action(func() { c.fireTimer(o) }),
		bt.New(
			bt.Selector,
			condition(func() bool {
				if o.MoveTimer > 0 {
					o.MoveTimer--
					return true
				}
				return false
			}),
			action(func() { c.step(o) }),
		),
	)
}

// action wraps fn as a leaf that always succeeds.
func action(fn func()) bt.Node {
	return bt.New(func([]bt.Node) (bt.Status, error) {
		fn()
		return bt.Success, nil
	})
}

// condition wraps fn as a leaf that succeeds when fn returns true.
func condition(fn func() bool) bt.Node {
	return bt.New(func([]bt.Node) (bt.Status, error) {
		if fn() {
			return bt.Success, nil
		}
		return bt.Failure, nil
	})
}

// sight turns toward an aligned, nearby player and may fire at once.
// The column is checked before the row.
func (c *Controller) sight(o *Opponent) {
	if c.rng.Float64() > o.stats.SightChance {
		return
	}

	p := c.field.PlayerPos()
	var need Dir
	switch {
	case o.Pos.X == p.X && abs(o.Pos.Y-p.Y) < c.params.SightRange:
		need = DirDown
		if p.Y < o.Pos.Y {
			need = DirUp
		}
	case o.Pos.X != p.X && o.Pos.Y == p.Y && abs(o.Pos.X-p.X) < c.params.SightRange:
		need = DirRight
		if p.X < o.Pos.X {
			need = DirLeft
		}
	default:
		return
	}

	if o.Facing != need {
		o.Facing = need
		o.MoveTimer = c.params.TrackMoveDelay
		o.FireTimer = c.params.TrackFireDelay
	}
	if o.FireTimer <= c.params.FireReady {
		c.field.Fire(o)
		o.redrawFireTimer(c.rng)
	}
}

func (c *Controller) fireTimer(o *Opponent) {
	o.FireTimer--
	if o.FireTimer <= 0 {
		c.field.Fire(o)
		o.redrawFireTimer(c.rng)
	}
}

func (c *Controller) step(o *Opponent) {
	o.MoveTimer = o.stats.SpeedDelay
	next := o.Pos.Step(o.Facing)
	if !c.field.CanEnter(next) {
		c.reroll(o)
		return
	}
	o.Pos = next
	if c.rng.Float64() < c.params.RerollChance {
		c.reroll(o)
	}
}

// rerollWeights are the base preferences, in pool order.
var rerollWeights = [...]struct {
	dir    Dir
	weight int
}{
	{DirUp, 5},
	{DirDown, 20},
	{DirLeft, 15},
	{DirRight, 15},
}

// reroll picks a new facing from a weighted pool of walkable directions.
// When the player is far on both axes, directions closing the gap get a
// bonus. With nothing walkable any direction may be chosen.
func (c *Controller) reroll(o *Opponent) {
	p := c.field.PlayerPos()
	tracking := abs(p.X-o.Pos.X) > c.params.TrackDistance &&
		abs(p.Y-o.Pos.Y) > c.params.TrackDistance

	var pool []Dir
	for _, w := range rerollWeights {
		if !c.field.CanEnter(o.Pos.Step(w.dir)) {
			continue
		}
		weight := w.weight
		if tracking {
			weight += trackingBonus(w.dir, o.Pos, p)
		}
		for i := 0; i <= weight; i++ {
			pool = append(pool, w.dir)
		}
	}

	if len(pool) == 0 {
		o.Facing = rerollWeights[c.rng.Intn(len(rerollWeights))].dir
		return
	}
	o.Facing = pool[c.rng.Intn(len(pool))]
}

func trackingBonus(d Dir, from, player Coord) int {
	switch {
	case d == DirDown && player.Y > from.Y:
		return 30
	case d == DirUp && player.Y < from.Y:
		return 20
	case d == DirLeft && player.X < from.X:
		return 30
	case d == DirRight && player.X > from.X:
		return 30
	}
	return 0
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
