package config

// Layout constants.
const (
	// MinPanelWidth is the narrowest panel drawn before content is clipped.
	MinPanelWidth = 24

	// MinPanelHeight is the shortest panel drawn before content is clipped.
	MinPanelHeight = 5

	// DefaultPanelWidth is used until the terminal reports its size.
	DefaultPanelWidth = 60

	// DefaultPanelHeight is used until the terminal reports its size.
	DefaultPanelHeight = 12

	// ProgressWidth is the preferred width of the countdown progress bar.
	ProgressWidth = 30
)

// Input constraints.
const (
	// KeyBufferSize is how many key presses the backend queues between polls.
	KeyBufferSize = 64
)
