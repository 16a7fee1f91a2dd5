// Package svgnative defines the drawing contract between an SVG document
// renderer and the graphics backends it targets.
//
// # Overview
//
// A document renderer walks a parsed SVG tree and talks to a [Renderer]
// through a small vocabulary: it builds a [Path], composes [Transform]
// values, pushes graphic states with [Renderer.Save], and issues
// [Renderer.DrawPath] and [Renderer.DrawImage] calls. Each backend maps
// that vocabulary onto its own surface; every backend must produce the
// same pixels for the same calls.
//
// # Quick Start
//
//	import (
//		"github.com/gogpu/svgnative"
//		"github.com/gogpu/svgnative/backend/raster"
//	)
//
//	dst := image.NewRGBA(image.Rect(0, 0, 200, 100))
//	r := raster.NewRenderer(raster.WithSurface(dst))
//
//	p := r.CreatePath()
//	p.Rect(10, 10, 180, 80)
//
//	err := r.DrawPath(p, svgnative.GraphicStyle{},
//		svgnative.FillStyle{HasFill: true, Paint: svgnative.RGBA(1, 0, 0, 1)},
//		svgnative.StrokeStyle{})
//
// # Coordinate System
//
// Coordinates follow SVG user space:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Rotation angles are in degrees, positive angles rotate clockwise on screen
//
// # Graphic State
//
// Save pushes a frame whose transform is the style transform composed with
// the enclosing transform, whose clip is the intersection of the style clip
// and every enclosing clip, and whose opacity is applied to the group as a
// whole once the frame is restored. Restore pops exactly one frame.
//
// # Backends
//
// Backends register themselves by name in the style of database/sql
// drivers. Import a backend package for its side effect and create
// renderers with [NewRenderer]:
//
//	import _ "github.com/gogpu/svgnative/backend/raster"
//
//	r, err := svgnative.NewRenderer("raster")
package svgnative

// Version is the current version of the library.
const Version = "0.1.0"
