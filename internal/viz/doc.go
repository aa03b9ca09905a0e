// Package viz draws the simulation in a terminal.
//
// [Canvas] is a braille grid (2x4 dots per cell) that implements
// sim.Surface, so the controller paints straight into it; [Canvas.Render]
// colours each cell with the body that last touched it. The styles in this
// package are shared by the terminal UI.
package viz
