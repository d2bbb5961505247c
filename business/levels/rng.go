package levels

// mulberry32 is a tiny deterministic PRNG. The uint32 arithmetic reproduces
// the reference demand curves bit for bit, so a seed fully identifies a
// scenario across runs and machines.
func mulberry32(seed uint32) func() float64 {
	state := seed
	return func() float64 {
		state += 0x6D2B79F5
		t := (state ^ (state >> 15)) * (state | 1)
		t = (t + (t^(t>>7))*(t|61)) ^ t
		return float64(t^(t>>14)) / 4294967296.0
	}
}
