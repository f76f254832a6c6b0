package zombies

import (
	"errors"
	"unicode"

	"github.com/vovakirdan/word-zombies/internal/core"
)

// ErrEmptyWord is returned when a target would be created without a word.
var ErrEmptyWord = errors.New("zombies: target word must not be empty")

// TargetID identifies a target for its whole life. IDs are never reused
// within a session, so a stale ID simply stops resolving.
type TargetID uint64

// NoTarget is the zero TargetID, meaning no selection.
const NoTarget TargetID = 0

// Target is a zombie walking toward the player carrying a word.
type Target struct {
	ID    TargetID
	Pos   core.Vec // top-left corner
	Size  core.Vec
	Speed float64

	word  []rune
	typed int
	alive bool
}

// NewTarget creates a live target carrying word.
func NewTarget(id TargetID, word string, pos, size core.Vec, speed float64) (*Target, error) {
	if word == "" {
		return nil, ErrEmptyWord
	}
	return &Target{
		ID:    id,
		Pos:   pos,
		Size:  size,
		Speed: speed,
		word:  []rune(word),
		alive: true,
	}, nil
}

// Word returns the full word the target spawned with.
func (t *Target) Word() string { return string(t.word) }

// Typed returns the already consumed prefix.
func (t *Target) Typed() string { return string(t.word[:t.typed]) }

// Remaining returns the letters still to type.
func (t *Target) Remaining() string { return string(t.word[t.typed:]) }

// Alive reports whether the target is still in play.
func (t *Target) Alive() bool { return t.alive }

// Bounds returns the target's hit box.
func (t *Target) Bounds() core.Box {
	return core.Box{X: t.Pos.X, Y: t.Pos.Y, W: t.Size.X, H: t.Size.Y}
}

// Center returns the middle of the hit box.
func (t *Target) Center() core.Vec {
	return t.Bounds().Center()
}

// Next reports whether r matches the next remaining letter, ignoring case.
func (t *Target) Next(r rune) bool {
	if !t.alive || t.typed >= len(t.word) {
		return false
	}
	return unicode.ToLower(t.word[t.typed]) == unicode.ToLower(r)
}

// TypeResult is the outcome of a keystroke against the selected target.
type TypeResult int

const (
	TypeNoSelection TypeResult = iota // nothing selected, nothing happened
	TypeHit                           // letter consumed, word continues
	TypeCleared                       // letter consumed, word finished
	TypeMismatch                      // wrong letter, selection released
)

// String returns a human-readable name for the result.
func (r TypeResult) String() string {
	switch r {
	case TypeNoSelection:
		return "NoSelection"
	case TypeHit:
		return "Hit"
	case TypeCleared:
		return "Cleared"
	case TypeMismatch:
		return "Mismatch"
	default:
		return "Unknown"
	}
}

// TargetField owns the live targets, their spawn timer and the typing
// selection. Targets are kept in spawn order.
type TargetField struct {
	targets  []*Target
	selected TargetID
	nextID   TargetID
	clock    spawnClock
	entryX   float64
	size     core.Vec
}

// NewTargetField creates an empty field. New targets enter at entryX.
func NewTargetField(spawnInterval, entryX float64, size core.Vec) *TargetField {
	return &TargetField{
		clock:  spawnClock{interval: spawnInterval},
		entryX: entryX,
		size:   size,
	}
}

// Tick advances the spawn timer and returns how many spawns are due.
func (f *TargetField) Tick(dt float64) int {
	return f.clock.Advance(dt)
}

// Spawn appends a new target at the entry edge on lane y.
func (f *TargetField) Spawn(word string, speed, y float64) (*Target, error) {
	t, err := NewTarget(f.nextID+1, word, core.V(f.entryX, y), f.size, speed)
	if err != nil {
		return nil, err
	}
	f.nextID++
	f.targets = append(f.targets, t)
	return t, nil
}

// TryBeginTyping selects the earliest-spawned live target whose next letter
// matches r. Only acts when nothing is selected. The letter is not consumed;
// ContinueTyping does that.
func (f *TargetField) TryBeginTyping(r rune) bool {
	if f.selected != NoTarget {
		return false
	}
	for _, t := range f.targets {
		if t.Next(r) {
			f.selected = t.ID
			return true
		}
	}
	return false
}

// ContinueTyping feeds r to the selected target.
// A matching letter is consumed; finishing the word kills the target and
// releases the selection. A wrong letter releases the selection and the
// target loses its progress on purpose: the word must be retyped from its
// first letter.
func (f *TargetField) ContinueTyping(r rune) (TypeResult, *Target) {
	t, ok := f.Selected()
	if !ok {
		return TypeNoSelection, nil
	}

	if !t.Next(r) {
		t.typed = 0
		f.selected = NoTarget
		return TypeMismatch, t
	}

	t.typed++
	if t.typed == len(t.word) {
		t.alive = false
		f.selected = NoTarget
		return TypeCleared, t
	}
	return TypeHit, t
}

// Advance walks every live target left by speed*dt, prunes dead targets and
// reports whether any target is within threshold of the player's edge.
// Targets may overlap the player; they stop only at the field's left edge.
func (f *TargetField) Advance(dt, playerEdgeX, threshold float64) bool {
	near := false
	for _, t := range f.targets {
		if !t.alive {
			continue
		}
		t.Pos.X -= t.Speed * dt
		if t.Pos.X < 0 {
			t.Pos.X = 0
		}
		if t.Pos.X-playerEdgeX <= threshold {
			near = true
		}
	}
	f.prune()
	return near
}

// Kill removes a target from play by force.
func (f *TargetField) Kill(id TargetID) bool {
	t, ok := f.Lookup(id)
	if !ok {
		return false
	}
	t.alive = false
	if f.selected == id {
		f.selected = NoTarget
	}
	return true
}

// Lookup returns the live target with the given ID.
func (f *TargetField) Lookup(id TargetID) (*Target, bool) {
	if id == NoTarget {
		return nil, false
	}
	for _, t := range f.targets {
		if t.ID == id {
			if !t.alive {
				return nil, false
			}
			return t, true
		}
	}
	return nil, false
}

// Selected returns the target currently being typed, if any.
func (f *TargetField) Selected() (*Target, bool) {
	t, ok := f.Lookup(f.selected)
	if !ok {
		f.selected = NoTarget
	}
	return t, ok
}

// SelectedID returns the ID of the selected target or NoTarget.
func (f *TargetField) SelectedID() TargetID {
	return f.selected
}

// Targets returns the targets in spawn order, including any killed since the
// last Advance. The slice must not be modified.
func (f *TargetField) Targets() []*Target {
	return f.targets
}

// Len returns the number of targets held by the field.
func (f *TargetField) Len() int {
	return len(f.targets)
}

// Reset removes every target and zeroes the spawn timer. IDs keep counting.
func (f *TargetField) Reset() {
	f.targets = nil
	f.selected = NoTarget
	f.clock.Reset()
}

// prune drops dead targets in place and clears a selection that went with them.
func (f *TargetField) prune() {
	alive := f.targets[:0]
	for _, t := range f.targets {
		if t.alive {
			alive = append(alive, t)
		}
	}
	for i := len(alive); i < len(f.targets); i++ {
		f.targets[i] = nil
	}
	f.targets = alive

	if _, ok := f.Lookup(f.selected); !ok {
		f.selected = NoTarget
	}
}
