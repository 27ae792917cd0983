package core

// Context is the per-frame snapshot a host hands to Game.Tick.
// The host fills FrameTimeMs and Key before the call and reads Quitting,
// Background and the layers afterwards. Layers are explicit handles so a
// game always names the surface it draws on.
type Context struct {
	FrameTimeMs float64 // Real milliseconds elapsed since the previous frame
	Key         Action  // Action pressed this frame, ActionNone if none
	Quitting    bool    // Set by the game to ask the host to shut down

	Background Color   // Clear color behind all layers
	Console    *Screen // Text layer, world width x half the world height
	Sprites    *Screen // Player layer, world resolution
	Walls      *Screen // Obstacle layer, world resolution
}

// NewContext creates a context whose sprite layers cover a world of the
// given size. The console has one text row per two world rows, matching
// a character cell twice as tall as it is wide.
func NewContext(worldW, worldH int) *Context {
	return &Context{
		Background: ColorDefault,
		Console:    NewScreen(worldW, (worldH+1)/2),
		Sprites:    NewScreen(worldW, worldH),
		Walls:      NewScreen(worldW, worldH),
	}
}

// ClsBG clears the console and sets the background color.
func (c *Context) ClsBG(color Color) {
	c.Background = color
	c.Console.Clear()
}

// ClsAll clears every layer and restores the default background.
func (c *Context) ClsAll() {
	c.Background = ColorDefault
	for _, l := range c.Layers() {
		l.Clear()
	}
}

// Layers returns the layers in back-to-front drawing order.
func (c *Context) Layers() []*Screen {
	return []*Screen{c.Walls, c.Sprites, c.Console}
}

// ResetInput clears the per-frame input after a Tick.
func (c *Context) ResetInput() {
	c.Key = ActionNone
	c.FrameTimeMs = 0
}
