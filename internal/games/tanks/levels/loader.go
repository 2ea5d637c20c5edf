// Package levels provides level loading for tanks.
// This package depends on core but core does not depend on levels.
package levels

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-tanks/internal/games/tanks/core"
)

//go:embed data
var embedded embed.FS

// ErrLevelNotFound is returned when no file exists for a requested level.
var ErrLevelNotFound = errors.New("levels: level not found")

// Set names a group of numbered levels.
type Set string

const (
	SetCampaign Set = "campaign"
	SetClassic  Set = "classic"
)

// AllSets lists the level sets in display order.
var AllSets = []Set{SetCampaign, SetClassic}

// Level is a raw level description.
type Level struct {
	ID       string // "<set>/level_<n>"
	Set      Set
	Number   int
	Text     string
	FilePath string // Empty for embedded levels
}

// Loader reads levels from an optional override directory, then from the
// levels built into the binary. The directory uses the same layout:
// <root>/<set>/level_<n>.txt.
type Loader struct {
	Root string
}

// NewLoader creates a loader. An empty root uses embedded levels only.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

func fileName(n int) string {
	return "level_" + strconv.Itoa(n) + ".txt"
}

// Load returns level n of a set.
func (l *Loader) Load(set Set, n int) (Level, error) {
	if n < 1 {
		return Level{}, fmt.Errorf("%w: %s #%d", ErrLevelNotFound, set, n)
	}

	if l.Root != "" {
		p := filepath.Join(l.Root, string(set), fileName(n))
		lvl, err := l.LoadFile(p)
		if err == nil {
			lvl.Set, lvl.Number = set, n
			lvl.ID = string(set) + "/level_" + strconv.Itoa(n)
			return lvl, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return Level{}, err
		}
	}

	data, err := embedded.ReadFile(path.Join("data", string(set), fileName(n)))
	if err != nil {
		return Level{}, fmt.Errorf("%w: %s #%d", ErrLevelNotFound, set, n)
	}
	return Level{
		ID:     string(set) + "/level_" + strconv.Itoa(n),
		Set:    set,
		Number: n,
		Text:   string(data),
	}, nil
}

// LoadFile reads a single level file from disk.
func (l *Loader) LoadFile(p string) (Level, error) {
	data, err := os.ReadFile(p)
	if err != nil {
		return Level{}, fmt.Errorf("levels: reading %s: %w", p, err)
	}
	id := strings.TrimSuffix(filepath.Base(p), filepath.Ext(p))
	return Level{ID: id, Text: string(data), FilePath: p}, nil
}

// LoadAll returns every level of every set, with overrides applied.
// Levels are sorted by set, then number.
func (l *Loader) LoadAll() ([]Level, error) {
	var out []Level
	for _, set := range AllSets {
		nums, err := l.numbers(set)
		if err != nil {
			return nil, err
		}
		for _, n := range nums {
			lvl, err := l.Load(set, n)
			if err != nil {
				return nil, err
			}
			out = append(out, lvl)
		}
	}
	return out, nil
}

// Count returns how many consecutive levels, starting at 1, a set has.
func (l *Loader) Count(set Set) int {
	n := 0
	for {
		if _, err := l.Load(set, n+1); err != nil {
			return n
		}
		n++
	}
}

// numbers collects level numbers found in the embedded data and the
// override directory.
func (l *Loader) numbers(set Set) ([]int, error) {
	seen := make(map[int]struct{})

	entries, err := fs.ReadDir(embedded, path.Join("data", string(set)))
	if err != nil {
		return nil, fmt.Errorf("levels: reading embedded %s: %w", set, err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}

	if l.Root != "" {
		dir := filepath.Join(l.Root, string(set))
		local, err := os.ReadDir(dir)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("levels: reading %s: %w", dir, err)
		}
		for _, e := range local {
			if !e.IsDir() {
				names = append(names, e.Name())
			}
		}
	}

	for _, name := range names {
		if n, ok := parseFileName(name); ok {
			seen[n] = struct{}{}
		}
	}

	nums := make([]int, 0, len(seen))
	for n := range seen {
		nums = append(nums, n)
	}
	sort.Ints(nums)
	return nums, nil
}

func parseFileName(name string) (int, bool) {
	s, ok := strings.CutPrefix(name, "level_")
	if !ok {
		return 0, false
	}
	s, ok = strings.CutSuffix(s, ".txt")
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

// Wrap maps a 1-based level number onto 1..count.
func Wrap(n, count int) int {
	if count < 1 {
		return 1
	}
	if n < 1 {
		n = 1
	}
	return (n-1)%count + 1
}

// Check parses text onto a cols×rows arena and runs the reachability
// validator. A text without grid rows is rejected before validation.
func Check(text string, cols, rows int, params core.ArenaParams) (core.Description, error) {
	a := core.NewArena(cols, rows, params)
	d := a.LoadDescription(text)
	if d.Rows == 0 {
		return d, errors.New("levels: no grid rows")
	}
	return d, a.Validate()
}
