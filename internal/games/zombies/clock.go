package zombies

// spawnEpsilon absorbs float drift from summing many small frame deltas,
// so thirty 0.1s frames reach a 3s interval exactly.
const spawnEpsilon = 1e-9

// spawnClock accumulates frame time and reports how many intervals elapsed.
type spawnClock struct {
	interval float64
	elapsed  float64
}

// Advance adds dt and returns the number of due spawns.
func (c *spawnClock) Advance(dt float64) int {
	if c.interval <= 0 {
		return 0
	}
	c.elapsed += dt
	due := 0
	for c.elapsed >= c.interval-spawnEpsilon {
		c.elapsed -= c.interval
		if c.elapsed < 0 {
			c.elapsed = 0
		}
		due++
	}
	return due
}

// Reset zeroes the accumulated time.
func (c *spawnClock) Reset() {
	c.elapsed = 0
}

// Elapsed returns time accumulated towards the next spawn.
func (c *spawnClock) Elapsed() float64 {
	return c.elapsed
}
