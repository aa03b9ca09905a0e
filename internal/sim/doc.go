// Package sim is the collision engine behind chime.
//
// Each frame the [Controller] moves every [Body] one step, reflects bodies
// off the surface edges, finds overlapping pairs, swaps their velocities
// and asks the [NoteTrigger] for a note on every wall or pair hit:
//
//   - [Advance]: integrate one frame and reflect, emitting wall events
//   - [DetectPairs]: all overlapping pairs, ordered by index
//   - [Resolve]: swap the velocities of a pair
//   - [NoteTrigger]: random scale note, never the same note twice in a row
//
// Drawing and sound go through the [Surface] and [Voice] interfaces; frames
// are scheduled through a frame.Scheduler so the same controller runs under
// a terminal UI, a window or a headless loop.
//
// # Example
//
//	q := frame.NewQueue()
//	c := sim.NewController(canvas, mixer, q, settings)
//	c.Start()
//	for i := 0; i < 600; i++ {
//		q.Step()
//	}
//	c.Stop()
package sim
