package zombies

import (
	"errors"
	"testing"

	"github.com/vovakirdan/word-zombies/internal/core"
)

func newTestField(words ...string) *TargetField {
	f := NewTargetField(3, 600, core.V(40, 60))
	for i, w := range words {
		if _, err := f.Spawn(w, 30, 200+float64(i)*10); err != nil {
			panic(err)
		}
	}
	return f
}

// typeLetter runs one keystroke the way the session does.
func typeLetter(f *TargetField, r rune) TypeResult {
	if _, ok := f.Selected(); !ok && !f.TryBeginTyping(r) {
		return TypeNoSelection
	}
	res, _ := f.ContinueTyping(r)
	return res
}

func TestSpawnRejectsEmptyWord(t *testing.T) {
	f := newTestField()
	if _, err := f.Spawn("", 30, 200); !errors.Is(err, ErrEmptyWord) {
		t.Errorf("Spawn(\"\") error = %v, expected ErrEmptyWord", err)
	}
	if f.Len() != 0 {
		t.Errorf("Len() = %d, expected 0", f.Len())
	}
}

func TestSpawnPlacesAtEntryEdge(t *testing.T) {
	f := newTestField("cat", "dog")
	targets := f.Targets()

	if targets[0].ID != 1 || targets[1].ID != 2 {
		t.Errorf("IDs = %d, %d, expected 1, 2", targets[0].ID, targets[1].ID)
	}
	if targets[0].Pos != core.V(600, 200) {
		t.Errorf("Pos = %v, expected {600 200}", targets[0].Pos)
	}
	if targets[0].Remaining() != "cat" || targets[0].Typed() != "" {
		t.Errorf("fresh target typed=%q remaining=%q", targets[0].Typed(), targets[0].Remaining())
	}
}

func TestTypingSelectsEarliestAndResetsOnMismatch(t *testing.T) {
	f := newTestField("cat", "car")
	cat, car := f.Targets()[0], f.Targets()[1]

	if res := typeLetter(f, 'c'); res != TypeHit {
		t.Fatalf("'c' = %v, expected Hit", res)
	}
	if f.SelectedID() != cat.ID {
		t.Fatalf("selected %d, expected cat (%d)", f.SelectedID(), cat.ID)
	}

	typeLetter(f, 'a')
	if cat.Remaining() != "t" {
		t.Errorf("cat remaining = %q, expected \"t\"", cat.Remaining())
	}

	if res := typeLetter(f, 'x'); res != TypeMismatch {
		t.Errorf("'x' = %v, expected Mismatch", res)
	}
	if f.SelectedID() != NoTarget {
		t.Errorf("mismatch kept selection %d", f.SelectedID())
	}

	typeLetter(f, 'c')
	if f.SelectedID() != cat.ID {
		t.Errorf("re-selected %d, expected cat (%d)", f.SelectedID(), cat.ID)
	}
	if cat.Remaining() != "at" {
		t.Errorf("cat remaining = %q, expected \"at\"", cat.Remaining())
	}
	if car.Remaining() != "car" {
		t.Errorf("car was modified: %q", car.Remaining())
	}
}

func TestTypingIsCaseInsensitive(t *testing.T) {
	f := newTestField("Fog")
	for _, r := range "fOG" {
		typeLetter(f, r)
	}
	if f.Targets()[0].Alive() {
		t.Error("target should be cleared by case-insensitive typing")
	}
}

func TestTypingNoMatchIsNoop(t *testing.T) {
	f := newTestField("cat")
	if res := typeLetter(f, 'z'); res != TypeNoSelection {
		t.Errorf("'z' = %v, expected NoSelection", res)
	}
	if f.SelectedID() != NoTarget {
		t.Errorf("selected %d, expected none", f.SelectedID())
	}
	if f.Targets()[0].Remaining() != "cat" {
		t.Error("unmatched letter modified a target")
	}
}

func TestTryBeginTypingOnlyWithoutSelection(t *testing.T) {
	f := newTestField("cat", "dog")
	if !f.TryBeginTyping('c') {
		t.Fatal("TryBeginTyping('c') = false")
	}
	if f.TryBeginTyping('d') {
		t.Error("TryBeginTyping should not switch selection")
	}
	if f.Targets()[0].Remaining() != "cat" {
		t.Error("TryBeginTyping consumed a letter")
	}
}

func TestClearingWordKillsAndReleases(t *testing.T) {
	f := newTestField("rot")
	target := f.Targets()[0]

	var last TypeResult
	for _, r := range "rot" {
		last = typeLetter(f, r)
	}

	if last != TypeCleared {
		t.Errorf("last result = %v, expected Cleared", last)
	}
	if target.Alive() {
		t.Error("cleared target still alive")
	}
	if f.SelectedID() != NoTarget {
		t.Error("selection not released after clear")
	}
	if _, ok := f.Lookup(target.ID); ok {
		t.Error("Lookup found a cleared target")
	}

	f.Advance(0, 90, 30)
	if f.Len() != 0 {
		t.Errorf("Len() after Advance = %d, expected 0", f.Len())
	}
}

func TestKillClearsSelection(t *testing.T) {
	f := newTestField("tomb")
	typeLetter(f, 't')

	if !f.Kill(f.SelectedID()) {
		t.Fatal("Kill() = false")
	}
	if f.SelectedID() != NoTarget {
		t.Error("Kill left a dangling selection")
	}
	if res, _ := f.ContinueTyping('o'); res != TypeNoSelection {
		t.Errorf("ContinueTyping after kill = %v, expected NoSelection", res)
	}
}

func TestAdvanceMovesAndReportsProximity(t *testing.T) {
	f := NewTargetField(3, 200, core.V(40, 60))
	if _, err := f.Spawn("moan", 50, 200); err != nil {
		t.Fatal(err)
	}

	// player edge at 90, threshold 30: threat once x <= 120
	if f.Advance(1, 90, 30) {
		t.Error("x=150 should not be a threat")
	}
	if got := f.Targets()[0].Pos.X; !near(got, 150) {
		t.Errorf("x = %v, expected 150", got)
	}
	if !f.Advance(0.6, 90, 30) {
		t.Error("x=120 should be a threat")
	}

	// walks past the player and stops at the field edge
	f.Advance(10, 90, 30)
	if got := f.Targets()[0].Pos.X; got != 0 {
		t.Errorf("x = %v, expected clamp at 0", got)
	}
}

func TestSpawnClockFiresOnceAtInterval(t *testing.T) {
	f := NewTargetField(3, 600, core.V(40, 60))

	spawns := 0
	fired := -1
	for i := range 30 {
		n := f.Tick(0.1)
		if n > 0 && fired < 0 {
			fired = i
		}
		spawns += n
	}

	if spawns != 1 {
		t.Errorf("spawns = %d, expected 1", spawns)
	}
	if fired != 29 {
		t.Errorf("fired on frame %d, expected 29", fired)
	}
}

func TestSpawnClockCatchesUp(t *testing.T) {
	c := spawnClock{interval: 1}
	if n := c.Advance(3.5); n != 3 {
		t.Errorf("Advance(3.5) = %d, expected 3", n)
	}
	if !near(c.Elapsed(), 0.5) {
		t.Errorf("Elapsed() = %v, expected 0.5", c.Elapsed())
	}
	c.Reset()
	if c.Elapsed() != 0 {
		t.Errorf("Elapsed() after Reset = %v", c.Elapsed())
	}
}

func TestTargetFieldResetKeepsIDs(t *testing.T) {
	f := newTestField("cat")
	typeLetter(f, 'c')
	f.Tick(2)

	f.Reset()
	if f.Len() != 0 || f.SelectedID() != NoTarget {
		t.Errorf("Reset() left len=%d selected=%d", f.Len(), f.SelectedID())
	}
	if f.clock.Elapsed() != 0 {
		t.Errorf("spawn timer = %v, expected 0", f.clock.Elapsed())
	}

	next, _ := f.Spawn("dog", 30, 200)
	if next.ID != 2 {
		t.Errorf("ID after Reset = %d, expected 2", next.ID)
	}
}
