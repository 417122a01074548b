package core

// RuntimeConfig carries what a session's platform layer needs at startup.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // Board RNG seed; 0 means seed from the current time
}

// DefaultConfig returns a RuntimeConfig with standard terminal dimensions.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0,
	}
}
