package wordgen

// Config tunes batch generation.
type Config struct {
	// Count is the default batch size.
	Count int

	// MaxTokens caps the response size. A 10-word batch with etymology
	// runs around 2500 tokens; leave headroom.
	MaxTokens int

	// Temperature controls variety. Word selection benefits from some.
	Temperature float64

	// MaxRecentWords limits how many existing words are listed in the
	// prompt for deduplication.
	MaxRecentWords int
}

// DefaultConfig returns the standard generation settings.
func DefaultConfig() Config {
	return Config{
		Count:          10,
		MaxTokens:      4096,
		Temperature:    0.7,
		MaxRecentWords: 50,
	}
}
