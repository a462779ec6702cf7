package model

import (
	"time"
)

// Op is the name of a modeling operation the dispatcher can execute.
type Op string

const (
	OpSetParameter       Op = "set_parameter"
	OpDrawBox            Op = "draw_box"
	OpDrawCylinder       Op = "draw_cylinder"
	OpDrawSphere         Op = "draw_sphere"
	OpDrawCircle         Op = "circle"
	OpDraw2DRectangle    Op = "draw_2d_rectangle"
	OpDrawLines          Op = "draw_lines"
	OpDrawOneLine        Op = "draw_one_line"
	OpDrawArc            Op = "arc"
	OpDrawSpline         Op = "spline"
	OpDrawEllipse        Op = "ellipsis"
	OpDrawText           Op = "draw_text"
	OpOffsetPlane        Op = "offsetplane"
	OpExtrudeLastSketch  Op = "extrude_last_sketch"
	OpExtrudeThin        Op = "extrude_thin"
	OpCutExtrude         Op = "cut_extrude"
	OpLoft               Op = "loft"
	OpSweep              Op = "sweep"
	OpRevolveProfile     Op = "revolve_profile"
	OpThread             Op = "threaded"
	OpFilletEdges        Op = "fillet_edges"
	OpShellBody          Op = "shell_body"
	OpHoles              Op = "holes"
	OpBooleanOperation   Op = "boolean_operation"
	OpCircularPattern    Op = "circular_pattern"
	OpRectangularPattern Op = "rectangular_pattern"
	OpMoveBody           Op = "move_body"
	OpMoveBodyByToken    Op = "move_body_by_token"
	OpDeleteBodyByToken  Op = "delete_body_by_token"
	OpEditExtrudeDist    Op = "edit_extrude_distance"
	OpGetBodyInfo        Op = "get_body_info_by_token"
	OpGetFeatureInfo     Op = "get_feature_info_by_token"
	OpSetBodyVisibility  Op = "set_body_visibility"
	OpSelectBody         Op = "select_body"
	OpSelectSketch       Op = "select_sketch"
	OpUndo               Op = "undo"
	OpDeleteEverything   Op = "delete_everything"
	OpExportSTL          Op = "export_stl"
	OpExportSTEP         Op = "export_step"
)

// Task is one queued unit of requested work. The front door allocates the
// correlation ID before the task becomes visible to the dispatcher, and
// decodes Params into the operation's own typed struct, so the dispatcher
// never inspects parameter shapes.
type Task struct {
	ID         uint64
	Op         Op
	Params     any
	EnqueuedAt time.Time
}

// TaskResult is the outcome record published back through the correlation
// store. Completed is always true on a published result; the timeout path
// synthesizes a result with Completed false.
type TaskResult struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message"`
	Error      string      `json:"error,omitempty"`
	Completed  bool        `json:"completed"`
	EntityData *EntityData `json:"entity_data,omitempty"`
}

// TaskRecord is the journal entry persisted for every dispatched task.
type TaskRecord struct {
	ID        uint64
	Op        Op
	Success   bool
	Message   string
	Error     string
	Duration  time.Duration
	CreatedAt time.Time
}
