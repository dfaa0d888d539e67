// Package forces implements the continuous force-directed layout.
//
// A [Simulator] owns one mutable [Body] per snapshot node and advances all
// of them by one fixed step per [Simulator.Tick]: pairwise repulsion with a
// softening floor, a weak centering spring, per-link springs toward a rest
// length, then damped integration and a padded viewport clamp.
//
// Ticks are total functions; there is no failure path. The epsilon floor
// prevents singular repulsion and the clamp keeps every position inside
// the viewport.
//
// Bodies can be held in place with [Simulator.Pin]. Pins are owned
// ([PinDrag], [PinLayout]) so that an interactive drag and the declutter
// layout can pin the same node without releasing each other's hold.
package forces
