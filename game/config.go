package game

// Config holds table and window configuration
type Config struct {
	// FieldWidth is the playfield width in pixels
	FieldWidth float64

	// FieldHeight is the playfield height in pixels
	FieldHeight float64

	// ScreenWidth is the window width in pixels
	ScreenWidth int

	// ScreenHeight is the window height in pixels
	ScreenHeight int
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		FieldWidth:   800.0,
		FieldHeight:  1000.0,
		ScreenWidth:  800,
		ScreenHeight: 1000,
	}
}
