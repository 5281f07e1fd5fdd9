// Package svgpath builds path data strings for the d attribute of an SVG
// <path> element.
//
// # Overview
//
// svgpath is a small companion library to the GoGPU ecosystem for emitting
// SVG path data as text. A Path accumulates commands in an internal buffer
// through a fluent interface; the in-progress buffer is always a valid path
// string, and String may be called at any point in the chain.
//
// The library is a pure emitter. It does not parse path data, does not track
// the current point, and does not validate its input: coordinates are
// formatted and appended as-is, and the correctness of smooth-curve commands
// (S/s, T/t) with respect to preceding commands is the caller's
// responsibility, as it is in the SVG specification.
//
// # Quick Start
//
//	import "github.com/gogpu/svgpath"
//
//	p := svgpath.New().
//		MoveTo(10, 10).
//		LineTo(90, 10).
//		QuadraticBezierTo(90, 90, 10, 90).
//		Close()
//
//	tag := fmt.Sprintf(`<path d="%s"/>`, p)
//
// Convenience constructors cover common shapes without manual command
// sequences: PartialCircle emits a circular arc from a center, radius and
// angle pair, and the Rect, RoundRect, Circle, Ellipse, Polygon and Star
// methods append closed shapes to an existing chain.
//
// # Ownership
//
// Every command method mutates the receiver and returns it. A Path belongs
// to a single call chain: it is not safe for concurrent use and must not be
// copied after first use.
package svgpath
