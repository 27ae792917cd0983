package core

// Status summarises a game for the host, which uses it for logging and
// for deciding what to show around the play field.
type Status struct {
	Mode  string // Name of the current mode, e.g. "menu"
	Score int    // Current score
	Over  bool   // Whether the last run has ended
}

// Game is the contract a host drives once per rendered frame.
// Games contain pure logic with no external dependencies. The host
// handles input mapping, frame timing, and turning layers into pixels.
type Game interface {
	// Title returns a human-readable name for display.
	Title() string

	// Tick runs one frame: it reads ctx.FrameTimeMs and ctx.Key, mutates
	// game state, and draws into the context's layers.
	Tick(ctx *Context)

	// Status returns the current mode and score.
	Status() Status
}
