// Package raster is the software backend of svgnative. It renders onto an
// *image.RGBA surface using golang.org/x/image/vector for coverage,
// honnef.co/go/curve for stroke expansion and dashing, and
// golang.org/x/image/draw for compositing and image resampling.
//
// # Usage
//
//	dst := image.NewRGBA(image.Rect(0, 0, 256, 256))
//	r := raster.NewRenderer(raster.WithSurface(dst))
//
//	p := r.CreatePath()
//	p.Ellipse(128, 128, 100, 60)
//	err := r.DrawPath(p, svgnative.DefaultGraphicStyle(),
//		svgnative.FillStyle{HasFill: true, Paint: svgnative.RGB(0, 0.5, 1)},
//		svgnative.DefaultStrokeStyle(svgnative.Black))
//
// Importing the package registers it as "raster":
//
//	import _ "github.com/gogpu/svgnative/backend/raster"
//
//	r, err := svgnative.NewRenderer("raster")
//
// A renderer created through the registry has no surface; bind one with
// SetSurface.
//
// # Group Opacity
//
// A graphic state with opacity below 1 draws into an offscreen layer that
// is composited into the enclosing target when the state is restored, so
// overlapping shapes inside the group do not show through each other.
package raster
