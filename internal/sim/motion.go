package sim

// Advance moves b by one frame of velocity and reflects it off the edges of
// bounds. Each axis that ends up outside the surface flips its velocity and
// yields one event. Positions are not clamped, so a body may sit outside
// the surface for a frame.
func Advance(b *Body, bounds Bounds) []Event {
	b.X += b.VX
	b.Y += b.VY

	var events []Event
	if b.X < 0 || b.X > bounds.Width {
		b.VX = -b.VX
		events = append(events, Event{Kind: WallX, Body: b.ID})
	}
	if b.Y < 0 || b.Y > bounds.Height {
		b.VY = -b.VY
		events = append(events, Event{Kind: WallY, Body: b.ID})
	}
	return events
}
