package zombies

// Score counts cleared zombies against the win target.
// Won and over are mutually exclusive and stick until Reset.
type Score struct {
	value  int
	target int
	won    bool
	over   bool
}

// NewScore creates a score model with the given win target.
func NewScore(target int) *Score {
	return &Score{target: target}
}

// Increment adds one point and reports whether this call won the game.
// Does nothing once the game has ended.
func (s *Score) Increment() bool {
	if s.won || s.over {
		return false
	}
	s.value++
	if s.value >= s.target {
		s.won = true
		return true
	}
	return false
}

// SetOver marks the game as lost. Ignored if the game is already won.
func (s *Score) SetOver() {
	if s.won {
		return
	}
	s.over = true
}

// Reset zeroes the score and clears both flags.
func (s *Score) Reset() {
	s.value = 0
	s.won = false
	s.over = false
}

// Value returns the current score.
func (s *Score) Value() int { return s.value }

// Target returns the score needed to win.
func (s *Score) Target() int { return s.target }

// Won reports whether the target was reached.
func (s *Score) Won() bool { return s.won }

// Over reports whether the player died.
func (s *Score) Over() bool { return s.over }
