package selection

// Config holds tunable selection parameters.
type Config struct {
	// MaxWeakPriority caps how many weak questions are forced into a session.
	MaxWeakPriority int

	// MinLength and MaxLength bound the random session length (inclusive).
	MinLength int
	MaxLength int

	// BackfillFactor bounds repeat attempts at BackfillFactor × length when
	// the pool is smaller than the session.
	BackfillFactor int
}

// DefaultConfig returns the default selection configuration.
func DefaultConfig() Config {
	return Config{
		MaxWeakPriority: 2,
		MinLength:       7,
		MaxLength:       8,
		BackfillFactor:  3,
	}
}
