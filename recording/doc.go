// Package recording provides a svgnative.Renderer that captures drawing
// calls as commands instead of producing pixels.
//
// A Recorder stores every Save, Restore, DrawPath and DrawImage call as a
// typed command. Paths, paints and images are deep-copied into a
// ResourcePool and referenced by handle, so a finished Recording is
// immutable and can be replayed any number of times onto any other
// renderer:
//
//	rec := recording.NewRecorder()
//	drawScene(rec)
//	r := rec.FinishRecording()
//
//	dst := raster.NewRenderer(raster.WithSurface(img))
//	if err := r.Playback(dst); err != nil {
//		return err
//	}
//
// Importing the package registers the "recording" backend with
// svgnative.Register.
//
// Recorder is not safe for concurrent use. A finished Recording may be
// played back from several goroutines as long as each uses its own
// destination renderer.
package recording
