package core

import "strings"

// State is the session state of a World.
type State uint8

const (
	StateIdle State = iota
	StateActive
	StateCleared
	StateOver
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateActive:
		return "Active"
	case StateCleared:
		return "Cleared"
	case StateOver:
		return "Over"
	default:
		return "Unknown"
	}
}

// Intent is the player's input for one tick.
type Intent struct {
	Dir  Dir  // Held direction, meaningful when Move is set
	Move bool // A direction is held
	Fire bool // Fire was pressed this tick
}

// structureCol is the column of the defended structure, on the row above
// the bottom border. Narrow arenas pull it in from the right border.
const structureCol = 8

// LevelSpec describes how to build a level.
type LevelSpec struct {
	// Procedural generates the arena. Otherwise Layout is parsed, falling
	// back to generation when it is blank or has no grid rows.
	Procedural bool
	Layout     string
	// Roster is used for procedural levels. Empty means Rules.Quota Basics.
	Roster []OpponentType
	// Structure places a base to defend; its loss ends the session.
	Structure bool
}

// TickResult is returned by Step.
type TickResult struct {
	Events []Event
	State  State
}

// World owns all simulation state of one level.
// All mutation happens inside Start and Step.
type World struct {
	Rules Rules
	Arena *Arena

	Player      Player
	Opponents   []*Opponent // Live opponents in spawn order
	Projectiles []*Projectile
	PowerUps    []PowerUp
	Explosions  []Explosion
	Structure   *Structure // nil outside structure mode
	Spawner     *Spawner

	State        State
	Reason       OverReason
	Kills        int
	Quota        int
	Score        int
	Tick         int
	FortifyTimer int

	rng    Rand
	ai     *Controller
	nextID int
	events []Event
}

// NewWorld creates an idle world. rng drives every random decision.
func NewWorld(rules Rules, rng Rand) *World {
	w := &World{
		Rules: rules,
		Arena: NewArena(rules.Cols, rules.Rows, rules.Arena),
		rng:   rng,
	}
	w.ai = NewController(rules.AI, field{w}, rng)
	return w
}

// Start builds the level and moves the world to Active. The returned events
// carry any warnings raised while resolving the level.
func (w *World) Start(spec LevelSpec) []Event {
	w.Arena = NewArena(w.Rules.Cols, w.Rules.Rows, w.Rules.Arena)
	w.Opponents = nil
	w.Projectiles = nil
	w.PowerUps = nil
	w.Explosions = nil
	w.Structure = nil
	w.Reason = OverNone
	w.Kills, w.Score, w.Tick, w.FortifyTimer, w.nextID = 0, 0, 0, 0, 0
	w.events = nil

	roster := w.buildArena(spec)

	spawn := C(w.Rules.Cols/2, w.Rules.Rows-2)
	if spec.Structure {
		base := C(min(structureCol, w.Rules.Cols-2), w.Rules.Rows-2)
		w.Structure = &Structure{Pos: base, Alive: true}
		w.Arena.Grid.Set(base, TileEmpty)
		spawn = base.Add(-2, 0)
	}
	w.Arena.Grid.Set(spawn, TileEmpty)

	w.Player = Player{
		Pos:    spawn,
		Facing: DirUp,
		HP:     w.Rules.PlayerHP,
		Lives:  w.Rules.Lives,
		Alive:  true,
		Spawn:  spawn,
	}
	w.Spawner = NewSpawner(roster, w.Rules.SpawnInterval, w.Rules.OnScreenCap)
	w.Quota = len(roster)
	w.State = StateActive

	return w.flush()
}

func (w *World) buildArena(spec LevelSpec) []OpponentType {
	if spec.Procedural {
		return w.generate(spec.Roster, true)
	}
	if strings.TrimSpace(spec.Layout) == "" {
		w.warn(WarnLevelFallback)
		return w.generate(nil, false)
	}

	d := w.Arena.LoadDescription(spec.Layout)
	if d.Rows == 0 {
		w.warn(WarnLevelFallback)
		return w.generate(nil, false)
	}
	if d.RosterDefaulted {
		w.warn(WarnEmptyRoster)
	}
	return d.Roster
}

func (w *World) generate(roster []OpponentType, warnEmpty bool) []OpponentType {
	if res := w.Arena.Generate(w.rng); !res.Valid {
		w.warn(WarnGenerationExhausted)
	}
	if len(roster) > 0 {
		return append([]OpponentType(nil), roster...)
	}
	if warnEmpty {
		w.warn(WarnEmptyRoster)
	}
	n := w.Rules.Quota
	if n < 1 {
		n = 1
	}
	return BasicRoster(n)
}

// Step advances the world by one tick. Outside Active it does nothing.
func (w *World) Step(in Intent) TickResult {
	if w.State != StateActive {
		return TickResult{State: w.State}
	}
	w.Tick++

	for _, o := range w.Opponents {
		w.ai.Tick(o)
	}
	w.spawnOpponents()

	if w.updateProjectiles() {
		w.compactProjectiles()
		return TickResult{Events: w.flush(), State: w.State}
	}

	w.resolveOpponentHits()
	w.updateExplosions()
	w.updatePowerUps()
	w.updatePlayer(in)
	w.updateFortification()
	w.checkTerminal()
	w.compactProjectiles()

	return TickResult{Events: w.flush(), State: w.State}
}

func (w *World) spawnOpponents() {
	t, at, ok := w.Spawner.Tick(len(w.Opponents), w.Arena.SpawnPoints, w.spawnFree, w.rng)
	if !ok {
		return
	}
	o := NewOpponent(w.nextID, t, at, w.Rules.Stats.Of(t), w.rng)
	w.nextID++
	w.ai.Attach(o)
	w.Opponents = append(w.Opponents, o)
	w.emit(Event{Kind: EventOpponentSpawned, Pos: at, Opponent: t})
}

func (w *World) spawnFree(c Coord) bool {
	if !w.canEnter(c) {
		return false
	}
	if w.Player.Alive && w.Player.Pos == c {
		return false
	}
	for _, o := range w.Opponents {
		if o.Alive && o.Pos == c {
			return false
		}
	}
	return true
}

// updateProjectiles advances every projectile and resolves terrain, player
// and structure hits. It reports whether the structure was destroyed.
func (w *World) updateProjectiles() bool {
	for _, p := range w.Projectiles {
		if !p.Active {
			continue
		}
		if !p.Advance(w.Rules.ProjectileSpeed, w.Rules.Cols, w.Rules.Rows) {
			continue
		}
		cell := p.Cell()
		if w.Arena.ResolveProjectileHit(cell) {
			p.Active = false
		}
		if p.Owner != OwnerOpponent {
			continue
		}

		if w.Player.Alive && cell == w.Player.Pos {
			p.Active = false
			w.damagePlayer()
		}

		if s := w.Structure; s != nil && s.Alive && cell == s.Pos {
			p.Active = false
			s.Alive = false
			w.Explosions = append(w.Explosions, Explosion{Pos: s.Pos, Frames: explosionFrames})
			w.emit(Event{Kind: EventStructureDestroyed, Pos: s.Pos})
			w.end(OverStructureDestroyed)
			return true
		}
	}
	return false
}

func (w *World) damagePlayer() {
	p := &w.Player
	if !p.Alive || p.Invuln > 0 {
		return
	}
	p.HP--
	p.Invuln = w.Rules.HitInvuln
	w.emit(Event{Kind: EventPlayerDamaged, Pos: p.Pos})
	if p.HP > 0 {
		return
	}

	p.Alive = false
	p.Lives--
	w.Explosions = append(w.Explosions, Explosion{Pos: p.Pos, Frames: explosionFrames})
	w.emit(Event{Kind: EventPlayerKilled, Pos: p.Pos})
	if p.Lives > 0 {
		p.RespawnTimer = w.Rules.RespawnDelay
	}
}

// resolveOpponentHits matches player projectiles against opponents and
// removes the dead. Each opponent takes at most one projectile per tick.
func (w *World) resolveOpponentHits() {
	live := make([]*Opponent, 0, len(w.Opponents))
	for _, o := range w.Opponents {
		if !o.Alive {
			continue
		}
		for _, p := range w.Projectiles {
			if !p.Active || p.Owner != OwnerPlayer || p.Cell() != o.Pos {
				continue
			}
			p.Active = false
			if o.TakeDamage() == HitLethal {
				w.killOpponent(o, true)
			}
			break
		}
		if o.Alive {
			live = append(live, o)
		}
	}
	w.Opponents = live
}

func (w *World) killOpponent(o *Opponent, rollDrop bool) {
	o.Alive = false
	score := o.stats.Score
	w.Kills++
	w.Score += score
	w.Explosions = append(w.Explosions, Explosion{Pos: o.Pos, Frames: explosionFrames})
	w.emit(Event{Kind: EventOpponentKilled, Pos: o.Pos, Opponent: o.Type, Score: score})

	if !rollDrop {
		return
	}
	kind, ok := RollDrop(o.Type, w.Structure != nil, w.rng.Float64())
	if !ok {
		return
	}
	w.PowerUps = append(w.PowerUps, PowerUp{Pos: o.Pos, Type: kind, Timer: w.Rules.PowerUpLifetime})
	w.emit(Event{Kind: EventPowerUpDropped, Pos: o.Pos, PowerUp: kind})
}

func (w *World) updateExplosions() {
	kept := w.Explosions[:0]
	for _, e := range w.Explosions {
		e.Frames--
		if e.Frames > 0 {
			kept = append(kept, e)
		}
	}
	w.Explosions = kept
}

func (w *World) updatePowerUps() {
	var collected []PowerUp
	kept := w.PowerUps[:0]
	for _, pu := range w.PowerUps {
		pu.Timer--
		if pu.Timer <= 0 {
			continue
		}
		if w.Player.Alive && w.Player.Pos == pu.Pos {
			collected = append(collected, pu)
			continue
		}
		kept = append(kept, pu)
	}
	w.PowerUps = kept

	for _, pu := range collected {
		w.applyPowerUp(pu)
	}
}

func (w *World) applyPowerUp(pu PowerUp) {
	w.emit(Event{Kind: EventPowerUpCollected, Pos: pu.Pos, PowerUp: pu.Type})

	switch pu.Type {
	case PowerUpClearAll:
		for _, o := range w.Opponents {
			if o.Alive {
				w.killOpponent(o, false)
			}
		}
		w.Opponents = nil
	case PowerUpShield:
		w.Player.Invuln += w.Rules.ShieldTicks
	case PowerUpExtraLife:
		w.Player.HP++
	case PowerUpFreeze:
		for _, o := range w.Opponents {
			o.MoveTimer += w.Rules.FreezeTicks
			o.FireTimer += w.Rules.FreezeTicks
		}
	case PowerUpFortify:
		w.FortifyTimer = w.Rules.FortifyTicks
		if w.Structure != nil {
			w.Arena.SetStructureProtection(w.Structure.Pos, TileSteel)
		}
	}
}

func (w *World) updatePlayer(in Intent) {
	p := &w.Player
	if !p.Alive {
		if p.Lives <= 0 {
			return
		}
		p.RespawnTimer--
		if p.RespawnTimer <= 0 {
			w.respawnPlayer()
		}
		return
	}

	if p.Invuln > 0 {
		p.Invuln--
	}

	if in.Fire && !w.playerProjectileActive() {
		w.Projectiles = append(w.Projectiles, NewProjectile(p.Pos, p.Facing, OwnerPlayer))
	}

	if p.MoveCooldown > 0 {
		p.MoveCooldown--
		return
	}
	if !in.Move {
		return
	}
	p.Facing = in.Dir
	if next := p.Pos.Step(in.Dir); w.canEnter(next) {
		p.Pos = next
		p.MoveCooldown = w.Rules.PlayerMoveDelay
	}
}

func (w *World) respawnPlayer() {
	p := &w.Player
	p.Pos = p.Spawn
	p.Facing = DirUp
	p.HP = w.Rules.PlayerHP
	p.Invuln = w.Rules.RespawnInvuln
	p.MoveCooldown = 0
	p.RespawnTimer = 0
	p.Alive = true
	w.emit(Event{Kind: EventPlayerRespawned, Pos: p.Pos})
}

func (w *World) playerProjectileActive() bool {
	for _, p := range w.Projectiles {
		if p.Active && p.Owner == OwnerPlayer {
			return true
		}
	}
	return false
}

func (w *World) updateFortification() {
	if w.FortifyTimer <= 0 {
		return
	}
	w.FortifyTimer--
	if w.FortifyTimer == 0 && w.Structure != nil {
		w.Arena.SetStructureProtection(w.Structure.Pos, TileBrick)
	}
}

func (w *World) checkTerminal() {
	if !w.Player.Alive && w.Player.Lives <= 0 {
		w.end(OverLivesExhausted)
		return
	}
	if w.Kills >= w.Quota {
		w.State = StateCleared
		w.emit(Event{Kind: EventLevelCleared})
	}
}

func (w *World) end(reason OverReason) {
	w.State = StateOver
	w.Reason = reason
	w.emit(Event{Kind: EventSessionOver, Reason: reason})
}

func (w *World) compactProjectiles() {
	kept := w.Projectiles[:0]
	for _, p := range w.Projectiles {
		if p.Active {
			kept = append(kept, p)
		}
	}
	for i := len(kept); i < len(w.Projectiles); i++ {
		w.Projectiles[i] = nil
	}
	w.Projectiles = kept
}

// canEnter is Arena.CanMoveTo plus the structure cell being solid.
func (w *World) canEnter(c Coord) bool {
	if w.Structure != nil && w.Structure.Pos == c {
		return false
	}
	return w.Arena.CanMoveTo(c)
}

func (w *World) emit(e Event) {
	w.events = append(w.events, e)
}

func (w *World) warn(warning Warning) {
	w.emit(Event{Kind: EventWarning, Warning: warning})
}

func (w *World) flush() []Event {
	out := w.events
	w.events = nil
	return out
}

// field exposes the World to opponent decision trees.
type field struct{ w *World }

func (f field) CanEnter(c Coord) bool { return f.w.canEnter(c) }

func (f field) PlayerPos() Coord { return f.w.Player.Pos }

func (f field) Fire(o *Opponent) {
	f.w.Projectiles = append(f.w.Projectiles, NewProjectile(o.Pos, o.Facing, OwnerOpponent))
}
