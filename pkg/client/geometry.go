package client

import (
	"context"

	"github.com/hktonylee/Autodesk-Fusion-360-MCP-Server/internal/model"
)

// Point is a 3D coordinate in design units (cm).
type Point = model.Point

// BoxOpts are the options for DrawBox. Zero dimensions use the bridge's
// defaults.
type BoxOpts struct {
	Height float64 `json:"height,omitempty"`
	Width  float64 `json:"width,omitempty"`
	Depth  float64 `json:"depth,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Z      float64 `json:"z,omitempty"`
}

// DrawBox creates a solid box.
func (c *Client) DrawBox(ctx context.Context, opts BoxOpts) (*Result, error) {
	var res Result
	return &res, c.post(ctx, "/Box", opts, &res)
}

// CylinderOpts are the options for DrawCylinder.
type CylinderOpts struct {
	Radius float64 `json:"radius"`
	Height float64 `json:"height"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Z      float64 `json:"z,omitempty"`
}

// DrawCylinder creates a solid cylinder.
func (c *Client) DrawCylinder(ctx context.Context, opts CylinderOpts) (*Result, error) {
	var res Result
	return &res, c.post(ctx, "/draw_cylinder", opts, &res)
}

// SphereOpts are the options for DrawSphere.
type SphereOpts struct {
	Radius float64 `json:"radius"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Z      float64 `json:"z,omitempty"`
}

// DrawSphere creates a solid sphere.
func (c *Client) DrawSphere(ctx context.Context, opts SphereOpts) (*Result, error) {
	var res Result
	return &res, c.post(ctx, "/sphere", opts, &res)
}

// CircleOpts are the options for CreateCircle.
type CircleOpts struct {
	Radius float64 `json:"radius"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Plane  string  `json:"plane,omitempty"`
}

// CreateCircle draws a circle on a new sketch.
func (c *Client) CreateCircle(ctx context.Context, opts CircleOpts) (*Result, error) {
	var res Result
	return &res, c.post(ctx, "/create_circle", opts, &res)
}

// RectangleOpts are the options for DrawRectangle.
type RectangleOpts struct {
	X1    float64 `json:"x1"`
	Y1    float64 `json:"y1"`
	X2    float64 `json:"x2"`
	Y2    float64 `json:"y2"`
	Plane string  `json:"plane,omitempty"`
}

// DrawRectangle draws a two-point rectangle on a new sketch.
func (c *Client) DrawRectangle(ctx context.Context, opts RectangleOpts) (*Result, error) {
	var res Result
	return &res, c.post(ctx, "/draw_2d_rectangle", opts, &res)
}

// LinesOpts are the options for DrawLines.
type LinesOpts struct {
	Points []Point `json:"points"`
	Plane  string  `json:"plane,omitempty"`
}

// DrawLines draws a closed polyline on a new sketch.
func (c *Client) DrawLines(ctx context.Context, opts LinesOpts) (*Result, error) {
	var res Result
	return &res, c.post(ctx, "/draw_lines", opts, &res)
}

// DrawOneLine draws a single line on the current sketch.
func (c *Client) DrawOneLine(ctx context.Context, x1, y1, x2, y2 float64) (*Result, error) {
	body := struct {
		X1 float64 `json:"x1"`
		Y1 float64 `json:"y1"`
		X2 float64 `json:"x2"`
		Y2 float64 `json:"y2"`
	}{x1, y1, x2, y2}
	var res Result
	return &res, c.post(ctx, "/draw_one_line", body, &res)
}

// ArcOpts are the options for DrawArc.
type ArcOpts struct {
	P1      Point  `json:"p1"`
	P2      Point  `json:"p2"`
	P3      Point  `json:"p3"`
	Connect bool   `json:"connect,omitempty"`
	Plane   string `json:"plane,omitempty"`
}

// DrawArc draws a three-point arc on a new sketch.
func (c *Client) DrawArc(ctx context.Context, opts ArcOpts) (*Result, error) {
	var res Result
	return &res, c.post(ctx, "/arc", opts, &res)
}

// SplineOpts are the options for DrawSpline.
type SplineOpts struct {
	Points []Point `json:"points"`
	Plane  string  `json:"plane,omitempty"`
}

// DrawSpline draws a fitted spline on a new sketch.
func (c *Client) DrawSpline(ctx context.Context, opts SplineOpts) (*Result, error) {
	var res Result
	return &res, c.post(ctx, "/spline", opts, &res)
}

// EllipseOpts are the options for DrawEllipse.
type EllipseOpts struct {
	Center  Point  `json:"center"`
	Major   Point  `json:"major_axis"`
	Through Point  `json:"through"`
	Plane   string `json:"plane,omitempty"`
}

// DrawEllipse draws an ellipse on a new sketch.
func (c *Client) DrawEllipse(ctx context.Context, opts EllipseOpts) (*Result, error) {
	var res Result
	return &res, c.post(ctx, "/ellipsis", opts, &res)
}

// TextOpts are the options for DrawText.
type TextOpts struct {
	Text   string  `json:"text"`
	Height float64 `json:"height,omitempty"`
	X1     float64 `json:"x1,omitempty"`
	Y1     float64 `json:"y1,omitempty"`
	X2     float64 `json:"x2,omitempty"`
	Y2     float64 `json:"y2,omitempty"`
	Plane  string  `json:"plane,omitempty"`
}

// DrawText draws sketch text on a new sketch.
func (c *Client) DrawText(ctx context.Context, opts TextOpts) (*Result, error) {
	var res Result
	return &res, c.post(ctx, "/draw_text", opts, &res)
}

// OffsetPlane arms a construction plane offset for the next sketch.
func (c *Client) OffsetPlane(ctx context.Context, plane string, offset float64) (*Result, error) {
	body := struct {
		Plane  string  `json:"plane,omitempty"`
		Offset float64 `json:"offset"`
	}{plane, offset}
	var res Result
	return &res, c.post(ctx, "/offsetplane", body, &res)
}

// Extrude extrudes the last sketch's profile by distance.
func (c *Client) Extrude(ctx context.Context, distance float64) (*Result, error) {
	body := struct {
		Distance float64 `json:"distance"`
	}{distance}
	var res Result
	return &res, c.post(ctx, "/extrude_last_sketch", body, &res)
}

// ExtrudeThin extrudes the last sketch's outline as a thin wall.
func (c *Client) ExtrudeThin(ctx context.Context, distance, wallThickness float64) (*Result, error) {
	body := struct {
		Distance  float64 `json:"distance"`
		Thickness float64 `json:"wall_thickness"`
	}{distance, wallThickness}
	var res Result
	return &res, c.post(ctx, "/extrude_thin", body, &res)
}

// CutExtrude cuts the last sketch's profile out of the last body.
func (c *Client) CutExtrude(ctx context.Context, distance float64) (*Result, error) {
	body := struct {
		Distance float64 `json:"distance"`
	}{distance}
	var res Result
	return &res, c.post(ctx, "/cut_extrude", body, &res)
}

// Loft builds a solid through the most recent sketches.
func (c *Client) Loft(ctx context.Context, sketchCount int) (*Result, error) {
	body := struct {
		SketchCount int `json:"sketch_count"`
	}{sketchCount}
	var res Result
	return &res, c.post(ctx, "/loft", body, &res)
}

// Sweep sweeps the second-to-last sketch's profile along the last sketch's
// path.
func (c *Client) Sweep(ctx context.Context) (*Result, error) {
	var res Result
	return &res, c.post(ctx, "/sweep", struct{}{}, &res)
}

// Revolve revolves the last sketch's profile around an axis ("X", "Y" or
// "Z").
func (c *Client) Revolve(ctx context.Context, axis string) (*Result, error) {
	body := struct {
		Axis string `json:"axis,omitempty"`
	}{axis}
	var res Result
	return &res, c.post(ctx, "/revolve", body, &res)
}

// Thread cuts a thread on a face the user picks interactively. The call
// blocks until the user answers or the interactive timeout passes.
func (c *Client) Thread(ctx context.Context) (*Result, error) {
	var res Result
	return &res, c.post(ctx, "/threaded", struct{}{}, &res)
}

// FilletEdges rounds the edges of a body. An empty body name targets the
// last body.
func (c *Client) FilletEdges(ctx context.Context, radius float64, bodyName string) (*Result, error) {
	body := struct {
		Radius   float64 `json:"radius"`
		BodyName string  `json:"body_name,omitempty"`
	}{radius, bodyName}
	var res Result
	return &res, c.post(ctx, "/fillet_edges", body, &res)
}

// ShellBody hollows a body to a wall thickness. An empty body name targets
// the last body.
func (c *Client) ShellBody(ctx context.Context, thickness float64, bodyName string) (*Result, error) {
	body := struct {
		Thickness float64 `json:"thickness"`
		BodyName  string  `json:"body_name,omitempty"`
	}{thickness, bodyName}
	var res Result
	return &res, c.post(ctx, "/shell_body", body, &res)
}

// HolesOpts are the options for Holes.
type HolesOpts struct {
	Diameter float64 `json:"diameter"`
	Depth    float64 `json:"depth"`
	Points   []Point `json:"points"`
}

// Holes drills holes into the last body.
func (c *Client) Holes(ctx context.Context, opts HolesOpts) (*Result, error) {
	var res Result
	return &res, c.post(ctx, "/holes", opts, &res)
}

// BooleanOperation combines two bodies ("cut", "join" or "intersect"). The
// tool body is consumed.
func (c *Client) BooleanOperation(ctx context.Context, operation, targetBody, toolBody string) (*Result, error) {
	body := struct {
		Operation  string `json:"operation"`
		TargetBody string `json:"target_body"`
		ToolBody   string `json:"tool_body"`
	}{operation, targetBody, toolBody}
	var res Result
	return &res, c.post(ctx, "/boolean_operation", body, &res)
}

// CircularPattern duplicates the last body around an axis.
func (c *Client) CircularPattern(ctx context.Context, axis string, quantity int) (*Result, error) {
	body := struct {
		Axis     string `json:"axis,omitempty"`
		Quantity int    `json:"quantity"`
	}{axis, quantity}
	var res Result
	return &res, c.post(ctx, "/circular_pattern", body, &res)
}

// RectangularPatternOpts are the options for RectangularPattern.
type RectangularPatternOpts struct {
	QuantityOne int     `json:"quantity_one"`
	QuantityTwo int     `json:"quantity_two"`
	DistanceOne float64 `json:"distance_one,omitempty"`
	DistanceTwo float64 `json:"distance_two,omitempty"`
}

// RectangularPattern duplicates the last body in a grid.
func (c *Client) RectangularPattern(ctx context.Context, opts RectangularPatternOpts) (*Result, error) {
	var res Result
	return &res, c.post(ctx, "/rectangular_pattern", opts, &res)
}

// MoveBody translates the last body by the given deltas.
func (c *Client) MoveBody(ctx context.Context, x, y, z float64) (*Result, error) {
	body := struct {
		X float64 `json:"x"`
		Y float64 `json:"y"`
		Z float64 `json:"z"`
	}{x, y, z}
	var res Result
	return &res, c.post(ctx, "/move_body", body, &res)
}
