// Package display owns the window, the OpenGL context and the fixed
// blit path that pushes a pixbuf.Buffer to the screen: one shader
// program, one streamed texture, one fullscreen-triangle draw per
// frame.
//
// A Pipeline is bound to the OS thread it was created on; callers must
// lock that thread before constructing one and keep every call on it.
package display
