// Package tooltip places a fixed-size box next to a target point without
// letting it leave the viewport.
//
// [Place] tries the four sides of the target, starting with the one facing
// the most open space, and returns the first whose box (plus margin) fits.
// The box is centered on the target along the other axis and slid back
// inside the viewport when it would overhang. When no side fits the box is
// centered in the viewport and drawn without an arrow.
//
// The arrow is derived only from the vector between the box center and the
// target, so it points at the target whichever side was chosen.
package tooltip
