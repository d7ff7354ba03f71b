package combat

// Window is the screen geometry ships and projectiles are bounded by.
type Window struct {
	Width  int
	Height int
}

// DefaultWindow is used until SetWindow is called.
var DefaultWindow = Window{Width: 800, Height: 800}
