package parameter

// Position engine tuning
const (
	// NearViewportPadding is the proximity window in pixels around the visible
	// viewport. An element inside the window gets the compositing hint and the
	// highest update priority; a larger window trades CPU for smoother
	// transitions near the pin point
	NearViewportPadding = 700
)
