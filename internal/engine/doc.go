// Package engine ties the graph model, force simulator, declutter layout,
// and viewport together behind a single interaction surface.
//
// An [Engine] is driven by one synchronous [Engine.Step] per rendered
// frame and by discrete pointer events ([Engine.PointerDown],
// [Engine.PointerMove], [Engine.PointerUp], [Engine.PointerLeave]). The
// gesture's starting target decides between panning and node dragging;
// a gesture never switches modes mid-flight.
//
// [Engine.Reorganize] pins all visible nodes to a decluttered target and
// holds them until a settle deadline, checked by Step on the same frame
// loop. [Engine.Close] discards the deadline, so nothing ever writes into
// a torn-down engine.
//
// # Thread Safety
//
// Engine instances are NOT thread-safe. All calls must come from the one
// frame/event loop that owns the instance.
package engine
