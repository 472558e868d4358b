// Package sketch is a deferred drawing API over a retained geometry graph.
//
// A Draw context hands out one drawing handle per primitive call:
//
//	draw := sketch.New()
//	draw.Ellipse().XY(100, 50).Radius(40).Color(colors.Cyan)
//	draw.Quad().W(50).RGB(1, 0, 0)
//	frame, err := draw.Frame()
//
// Handles are deferred builders. Properties may be set in any order after
// the primitive call; nothing is tessellated until the drawing finishes.
// Finishing happens explicitly through Finish, implicitly when another
// drawing queries this one's dimensions, or at the latest when Frame
// flattens the frame.
//
// Resolution writes untransformed geometry into a shared per-frame
// intermediary mesh and commits spatial properties to a node in the
// geometry graph. Frame flattens both into a render.Frame: one committed
// mesh plus per-node draw commands carrying composed transforms, ready for
// upload.
//
// A Draw context is single-threaded. Reset prepares it for the next frame;
// handles and node indices from earlier frames are invalid afterwards.
package sketch
