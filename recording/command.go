package recording

import "github.com/gogpu/svgnative"

// CommandType identifies the type of a command.
type CommandType uint8

const (
	CmdSave      CommandType = iota // Push a graphic state
	CmdRestore                     // Pop the graphic state
	CmdDrawPath                    // Fill and stroke a path
	CmdDrawImage                   // Draw an image into a rectangle
)

var commandTypeNames = [...]string{
	CmdSave:      "Save",
	CmdRestore:   "Restore",
	CmdDrawPath:  "DrawPath",
	CmdDrawImage: "DrawImage",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// PathRef is a reference to a path in the resource pool.
type PathRef uint32

// PaintRef is a reference to a paint in the resource pool.
type PaintRef uint32

// ImageRef is a reference to an image in the resource pool.
type ImageRef uint32

// InvalidRef is the sentinel value for an absent resource.
const InvalidRef = ^uint32(0)

// IsValid returns true if the reference points to a path.
func (r PathRef) IsValid() bool { return uint32(r) != InvalidRef }

// IsValid returns true if the reference points to a paint.
func (r PaintRef) IsValid() bool { return uint32(r) != InvalidRef }

// IsValid returns true if the reference points to an image.
func (r ImageRef) IsValid() bool { return uint32(r) != InvalidRef }

// Clip is a recorded clipping path.
type Clip struct {
	Path PathRef
	// Transform is nil when the clip had no transform of its own.
	Transform *svgnative.Matrix
}

// Style is a recorded svgnative.GraphicStyle.
type Style struct {
	Transparency float64
	// Transform is nil when the style had no transform.
	Transform *svgnative.Matrix
	Clip      *Clip
}

// Fill is a recorded svgnative.FillStyle.
type Fill struct {
	HasFill bool
	Paint   PaintRef
}

// Stroke is a recorded svgnative.StrokeStyle.
type Stroke struct {
	HasStroke  bool
	LineWidth  float64
	LineCap    svgnative.LineCap
	LineJoin   svgnative.LineJoin
	MiterLimit float64
	DashArray  []float64
	DashOffset float64
	Paint      PaintRef
}

// SaveCommand pushes a graphic state.
type SaveCommand struct {
	Style Style
}

// Type implements Command.
func (SaveCommand) Type() CommandType { return CmdSave }

// RestoreCommand pops the graphic state pushed by the matching SaveCommand.
type RestoreCommand struct{}

// Type implements Command.
func (RestoreCommand) Type() CommandType { return CmdRestore }

// DrawPathCommand fills and then strokes a path.
type DrawPathCommand struct {
	Path   PathRef
	Style  Style
	Fill   Fill
	Stroke Stroke
}

// Type implements Command.
func (DrawPathCommand) Type() CommandType { return CmdDrawPath }

// DrawImageCommand draws an image scaled into FillArea and clipped to
// ClipArea.
type DrawImageCommand struct {
	Image    ImageRef
	Style    Style
	ClipArea svgnative.Rect
	FillArea svgnative.Rect
}

// Type implements Command.
func (DrawImageCommand) Type() CommandType { return CmdDrawImage }
