package core

import "strconv"

// count accumulates a numeric prefix one digit at a time. The digits are kept
// as typed so the status line can echo them. A count typed before an operator
// is frozen into a multiplier, so "2d3w" deletes six words.
type count struct {
	digits     string
	multiplier int
	max        int
}

func newCount(max int) count {
	return count{max: max}
}

func (c *count) Push(r rune) {
	if r < '0' || r > '9' {
		return
	}
	c.digits += string(r)
}

// IsSet reports whether any digit was typed since the last reset.
func (c *count) IsSet() bool {
	return c.digits != "" || c.multiplier > 0
}

// Value returns max(1, parsed) times any frozen multiplier, capped at max.
func (c *count) Value() int {
	n := c.parsed()
	if c.multiplier > 0 {
		n = combineCounts(c.multiplier, n, c.max)
	}
	return min(n, c.max)
}

func (c *count) parsed() int {
	if c.digits == "" {
		return 1
	}
	n, err := strconv.Atoi(c.digits)
	if err != nil {
		// Only overflow gets here, every byte is a digit.
		return c.max
	}
	return min(max(n, 1), c.max)
}

// Freeze moves the typed digits into the multiplier so a second count can
// be typed after an operator.
func (c *count) Freeze() {
	if c.digits == "" {
		return
	}
	c.multiplier = c.parsed()
	c.digits = ""
}

func (c *count) String() string {
	if c.multiplier > 0 && c.digits != "" {
		return strconv.Itoa(c.multiplier) + "*" + c.digits
	}
	if c.multiplier > 0 {
		return strconv.Itoa(c.multiplier)
	}
	return c.digits
}

func (c *count) Reset() {
	c.digits = ""
	c.multiplier = 0
}

func combineCounts(a, b, limit int) int {
	if a <= 0 {
		a = 1
	}
	if b <= 0 {
		b = 1
	}
	if a > limit/b {
		return limit
	}
	return a * b
}
