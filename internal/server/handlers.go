package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/hktonylee/Autodesk-Fusion-360-MCP-Server/internal/model"
	"github.com/hktonylee/Autodesk-Fusion-360-MCP-Server/internal/ops"
)

// taskResponse is the envelope every operation endpoint answers with.
type taskResponse struct {
	Success    bool              `json:"success"`
	Message    string            `json:"message"`
	Error      string            `json:"error,omitempty"`
	EntityData *model.EntityData `json:"entity_data,omitempty"`
}

// writeJSON encodes v as JSON and writes it with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeInvalid answers a request whose body could not be used.
func writeInvalid(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, taskResponse{
		Success: false,
		Message: "invalid request",
		Error:   msg,
	})
}

// decode reads the JSON request body into v. An empty body is fine: every
// request type carries usable zero values or validates itself afterwards.
func decode(r *http.Request, v any) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// run queues the operation, waits for its outcome and writes the envelope.
// Failed results answer 500 so callers can branch on status alone.
func (s *Server) run(w http.ResponseWriter, r *http.Request, op model.Op, params any, timeout time.Duration) {
	result, err := s.queueAndWait(r.Context(), op, params, timeout)
	if err != nil {
		s.logger.Warningf("request for %q aborted: %v", op, err)
		writeJSON(w, http.StatusInternalServerError, taskResponse{
			Success: false,
			Message: "request aborted",
			Error:   err.Error(),
		})
		return
	}
	status := http.StatusOK
	if !result.Success {
		status = http.StatusInternalServerError
	}
	writeJSON(w, status, taskResponse{
		Success:    result.Success,
		Message:    result.Message,
		Error:      result.Error,
		EntityData: result.EntityData,
	})
}

func planeOrDefault(p string) model.Plane {
	if p == "" {
		return model.PlaneXY
	}
	return model.Plane(p)
}

func (s *Server) drawBox(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Height *float64 `json:"height"`
		Width  *float64 `json:"width"`
		Depth  *float64 `json:"depth"`
		X      float64  `json:"x"`
		Y      float64  `json:"y"`
		Z      float64  `json:"z"`
	}
	if err := decode(r, &req); err != nil {
		writeInvalid(w, err.Error())
		return
	}
	dim := func(v *float64) float64 {
		if v == nil {
			return 5
		}
		return *v
	}
	s.run(w, r, model.OpDrawBox, ops.BoxParams{
		Width:  dim(req.Width),
		Depth:  dim(req.Depth),
		Height: dim(req.Height),
		X:      req.X, Y: req.Y, Z: req.Z,
	}, s.cfg.DefaultTimeout)
}

func (s *Server) drawCylinder(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Radius *float64 `json:"radius"`
		Height *float64 `json:"height"`
		X      float64  `json:"x"`
		Y      float64  `json:"y"`
		Z      float64  `json:"z"`
	}
	if err := decode(r, &req); err != nil {
		writeInvalid(w, err.Error())
		return
	}
	if req.Radius == nil || req.Height == nil {
		writeInvalid(w, "radius and height are required")
		return
	}
	s.run(w, r, model.OpDrawCylinder, ops.CylinderParams{
		Radius: *req.Radius,
		Height: *req.Height,
		X:      req.X, Y: req.Y, Z: req.Z,
	}, s.cfg.DefaultTimeout)
}

func (s *Server) drawSphere(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Radius *float64 `json:"radius"`
		X      float64  `json:"x"`
		Y      float64  `json:"y"`
		Z      float64  `json:"z"`
	}
	if err := decode(r, &req); err != nil {
		writeInvalid(w, err.Error())
		return
	}
	if req.Radius == nil {
		writeInvalid(w, "radius is required")
		return
	}
	s.run(w, r, model.OpDrawSphere, ops.SphereParams{
		Radius: *req.Radius,
		X:      req.X, Y: req.Y, Z: req.Z,
	}, s.cfg.DefaultTimeout)
}

func (s *Server) createCircle(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Radius *float64 `json:"radius"`
		X      float64  `json:"x"`
		Y      float64  `json:"y"`
		Plane  string   `json:"plane"`
	}
	if err := decode(r, &req); err != nil {
		writeInvalid(w, err.Error())
		return
	}
	if req.Radius == nil {
		writeInvalid(w, "radius is required")
		return
	}
	s.run(w, r, model.OpDrawCircle, ops.CircleParams{
		Radius: *req.Radius,
		X:      req.X, Y: req.Y,
		Plane: planeOrDefault(req.Plane),
	}, s.cfg.DefaultTimeout)
}

func (s *Server) draw2DRectangle(w http.ResponseWriter, r *http.Request) {
	var req struct {
		X1    float64 `json:"x1"`
		Y1    float64 `json:"y1"`
		X2    float64 `json:"x2"`
		Y2    float64 `json:"y2"`
		Plane string  `json:"plane"`
	}
	if err := decode(r, &req); err != nil {
		writeInvalid(w, err.Error())
		return
	}
	if req.X1 == req.X2 || req.Y1 == req.Y2 {
		writeInvalid(w, "rectangle corners must span an area")
		return
	}
	s.run(w, r, model.OpDraw2DRectangle, ops.Rectangle2DParams{
		X1: req.X1, Y1: req.Y1,
		X2: req.X2, Y2: req.Y2,
		Plane: planeOrDefault(req.Plane),
	}, s.cfg.DefaultTimeout)
}

func (s *Server) drawLines(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Points []model.Point `json:"points"`
		Plane  string        `json:"plane"`
	}
	if err := decode(r, &req); err != nil {
		writeInvalid(w, err.Error())
		return
	}
	if len(req.Points) < 2 {
		writeInvalid(w, "at least two points are required")
		return
	}
	s.run(w, r, model.OpDrawLines, ops.LinesParams{
		Points: req.Points,
		Plane:  planeOrDefault(req.Plane),
	}, s.cfg.DefaultTimeout)
}

func (s *Server) drawOneLine(w http.ResponseWriter, r *http.Request) {
	var req struct {
		X1 float64 `json:"x1"`
		Y1 float64 `json:"y1"`
		X2 float64 `json:"x2"`
		Y2 float64 `json:"y2"`
	}
	if err := decode(r, &req); err != nil {
		writeInvalid(w, err.Error())
		return
	}
	s.run(w, r, model.OpDrawOneLine, ops.OneLineParams{
		X1: req.X1, Y1: req.Y1,
		X2: req.X2, Y2: req.Y2,
	}, s.cfg.DefaultTimeout)
}

func (s *Server) drawArc(w http.ResponseWriter, r *http.Request) {
	var req struct {
		P1      *model.Point `json:"p1"`
		P2      *model.Point `json:"p2"`
		P3      *model.Point `json:"p3"`
		Connect bool         `json:"connect"`
		Plane   string       `json:"plane"`
	}
	if err := decode(r, &req); err != nil {
		writeInvalid(w, err.Error())
		return
	}
	if req.P1 == nil || req.P2 == nil || req.P3 == nil {
		writeInvalid(w, "p1, p2 and p3 are required")
		return
	}
	s.run(w, r, model.OpDrawArc, ops.ArcParams{
		P1: *req.P1, P2: *req.P2, P3: *req.P3,
		Connect: req.Connect,
		Plane:   planeOrDefault(req.Plane),
	}, s.cfg.DefaultTimeout)
}

func (s *Server) drawSpline(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Points []model.Point `json:"points"`
		Plane  string        `json:"plane"`
	}
	if err := decode(r, &req); err != nil {
		writeInvalid(w, err.Error())
		return
	}
	if len(req.Points) < 2 {
		writeInvalid(w, "at least two points are required")
		return
	}
	s.run(w, r, model.OpDrawSpline, ops.SplineParams{
		Points: req.Points,
		Plane:  planeOrDefault(req.Plane),
	}, s.cfg.DefaultTimeout)
}

func (s *Server) drawEllipse(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Center  *model.Point `json:"center"`
		Major   *model.Point `json:"major_axis"`
		Through *model.Point `json:"through"`
		Plane   string       `json:"plane"`
	}
	if err := decode(r, &req); err != nil {
		writeInvalid(w, err.Error())
		return
	}
	if req.Center == nil || req.Major == nil || req.Through == nil {
		writeInvalid(w, "center, major_axis and through are required")
		return
	}
	s.run(w, r, model.OpDrawEllipse, ops.EllipseParams{
		Center: *req.Center, Major: *req.Major, Through: *req.Through,
		Plane: planeOrDefault(req.Plane),
	}, s.cfg.DefaultTimeout)
}

func (s *Server) drawText(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text   string  `json:"text"`
		Height float64 `json:"height"`
		X1     float64 `json:"x1"`
		Y1     float64 `json:"y1"`
		X2     float64 `json:"x2"`
		Y2     float64 `json:"y2"`
		Plane  string  `json:"plane"`
	}
	if err := decode(r, &req); err != nil {
		writeInvalid(w, err.Error())
		return
	}
	if req.Text == "" {
		writeInvalid(w, "text is required")
		return
	}
	if req.Height <= 0 {
		req.Height = 1
	}
	s.run(w, r, model.OpDrawText, ops.TextParams{
		Text:   req.Text,
		Height: req.Height,
		X1:     req.X1, Y1: req.Y1,
		X2: req.X2, Y2: req.Y2,
		Plane: planeOrDefault(req.Plane),
	}, s.cfg.DefaultTimeout)
}

func (s *Server) offsetPlane(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Plane  string   `json:"plane"`
		Offset *float64 `json:"offset"`
	}
	if err := decode(r, &req); err != nil {
		writeInvalid(w, err.Error())
		return
	}
	if req.Offset == nil {
		writeInvalid(w, "offset is required")
		return
	}
	s.run(w, r, model.OpOffsetPlane, ops.OffsetPlaneParams{
		Plane:  planeOrDefault(req.Plane),
		Offset: *req.Offset,
	}, s.cfg.DefaultTimeout)
}

func (s *Server) extrudeLastSketch(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Distance *float64 `json:"distance"`
	}
	if err := decode(r, &req); err != nil {
		writeInvalid(w, err.Error())
		return
	}
	if req.Distance == nil {
		writeInvalid(w, "distance is required")
		return
	}
	s.run(w, r, model.OpExtrudeLastSketch, ops.ExtrudeParams{Distance: *req.Distance}, s.cfg.DefaultTimeout)
}

func (s *Server) extrudeThin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Distance  *float64 `json:"distance"`
		Thickness *float64 `json:"wall_thickness"`
	}
	if err := decode(r, &req); err != nil {
		writeInvalid(w, err.Error())
		return
	}
	if req.Distance == nil || req.Thickness == nil {
		writeInvalid(w, "distance and wall_thickness are required")
		return
	}
	s.run(w, r, model.OpExtrudeThin, ops.ExtrudeThinParams{
		Distance:  *req.Distance,
		Thickness: *req.Thickness,
	}, s.cfg.DefaultTimeout)
}

func (s *Server) cutExtrude(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Distance *float64 `json:"distance"`
	}
	if err := decode(r, &req); err != nil {
		writeInvalid(w, err.Error())
		return
	}
	if req.Distance == nil {
		writeInvalid(w, "distance is required")
		return
	}
	s.run(w, r, model.OpCutExtrude, ops.CutExtrudeParams{Distance: *req.Distance}, s.cfg.DefaultTimeout)
}

func (s *Server) loft(w http.ResponseWriter, r *http.Request) {
	var req struct {
		SketchCount int `json:"sketch_count"`
	}
	if err := decode(r, &req); err != nil {
		writeInvalid(w, err.Error())
		return
	}
	if req.SketchCount == 0 {
		req.SketchCount = 2
	}
	s.run(w, r, model.OpLoft, ops.LoftParams{SketchCount: req.SketchCount}, s.cfg.DefaultTimeout)
}

func (s *Server) sweep(w http.ResponseWriter, r *http.Request) {
	s.run(w, r, model.OpSweep, ops.SweepParams{}, s.cfg.DefaultTimeout)
}

func (s *Server) revolve(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Axis string `json:"axis"`
	}
	if err := decode(r, &req); err != nil {
		writeInvalid(w, err.Error())
		return
	}
	if req.Axis == "" {
		req.Axis = string(model.AxisZ)
	}
	s.run(w, r, model.OpRevolveProfile, ops.RevolveParams{Axis: model.Axis(req.Axis)}, s.cfg.InteractiveTimeout)
}

func (s *Server) threaded(w http.ResponseWriter, r *http.Request) {
	s.run(w, r, model.OpThread, ops.ThreadParams{}, s.cfg.InteractiveTimeout)
}

func (s *Server) filletEdges(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Radius   *float64 `json:"radius"`
		BodyName string   `json:"body_name"`
	}
	if err := decode(r, &req); err != nil {
		writeInvalid(w, err.Error())
		return
	}
	if req.Radius == nil {
		writeInvalid(w, "radius is required")
		return
	}
	s.run(w, r, model.OpFilletEdges, ops.FilletParams{
		Radius:   *req.Radius,
		BodyName: req.BodyName,
	}, s.cfg.DefaultTimeout)
}

func (s *Server) shellBody(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Thickness *float64 `json:"thickness"`
		BodyName  string   `json:"body_name"`
	}
	if err := decode(r, &req); err != nil {
		writeInvalid(w, err.Error())
		return
	}
	if req.Thickness == nil {
		writeInvalid(w, "thickness is required")
		return
	}
	s.run(w, r, model.OpShellBody, ops.ShellParams{
		Thickness: *req.Thickness,
		BodyName:  req.BodyName,
	}, s.cfg.DefaultTimeout)
}

func (s *Server) holes(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Diameter *float64      `json:"diameter"`
		Depth    *float64      `json:"depth"`
		Points   []model.Point `json:"points"`
	}
	if err := decode(r, &req); err != nil {
		writeInvalid(w, err.Error())
		return
	}
	if req.Diameter == nil || req.Depth == nil {
		writeInvalid(w, "diameter and depth are required")
		return
	}
	if len(req.Points) == 0 {
		writeInvalid(w, "at least one point is required")
		return
	}
	s.run(w, r, model.OpHoles, ops.HolesParams{
		Diameter: *req.Diameter,
		Depth:    *req.Depth,
		Points:   req.Points,
	}, s.cfg.DefaultTimeout)
}

func (s *Server) booleanOperation(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Operation  string `json:"operation"`
		TargetBody string `json:"target_body"`
		ToolBody   string `json:"tool_body"`
	}
	if err := decode(r, &req); err != nil {
		writeInvalid(w, err.Error())
		return
	}
	if req.Operation == "" || req.TargetBody == "" || req.ToolBody == "" {
		writeInvalid(w, "operation, target_body and tool_body are required")
		return
	}
	s.run(w, r, model.OpBooleanOperation, ops.BooleanParams{
		Operation:  model.BooleanOp(req.Operation),
		TargetBody: req.TargetBody,
		ToolBody:   req.ToolBody,
	}, s.cfg.DefaultTimeout)
}

func (s *Server) circularPattern(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Axis     string `json:"axis"`
		Quantity *int   `json:"quantity"`
	}
	if err := decode(r, &req); err != nil {
		writeInvalid(w, err.Error())
		return
	}
	if req.Quantity == nil {
		writeInvalid(w, "quantity is required")
		return
	}
	if req.Axis == "" {
		req.Axis = string(model.AxisZ)
	}
	s.run(w, r, model.OpCircularPattern, ops.CircularPatternParams{
		Axis:     model.Axis(req.Axis),
		Quantity: *req.Quantity,
	}, s.cfg.DefaultTimeout)
}

func (s *Server) rectangularPattern(w http.ResponseWriter, r *http.Request) {
	var req struct {
		QuantityOne *int    `json:"quantity_one"`
		QuantityTwo *int    `json:"quantity_two"`
		DistanceOne float64 `json:"distance_one"`
		DistanceTwo float64 `json:"distance_two"`
	}
	if err := decode(r, &req); err != nil {
		writeInvalid(w, err.Error())
		return
	}
	if req.QuantityOne == nil || req.QuantityTwo == nil {
		writeInvalid(w, "quantity_one and quantity_two are required")
		return
	}
	s.run(w, r, model.OpRectangularPattern, ops.RectangularPatternParams{
		QuantityOne: *req.QuantityOne,
		QuantityTwo: *req.QuantityTwo,
		DistanceOne: req.DistanceOne,
		DistanceTwo: req.DistanceTwo,
	}, s.cfg.DefaultTimeout)
}

func (s *Server) moveBody(w http.ResponseWriter, r *http.Request) {
	var req struct {
		X float64 `json:"x"`
		Y float64 `json:"y"`
		Z float64 `json:"z"`
	}
	if err := decode(r, &req); err != nil {
		writeInvalid(w, err.Error())
		return
	}
	s.run(w, r, model.OpMoveBody, ops.MoveBodyParams{X: req.X, Y: req.Y, Z: req.Z}, s.cfg.DefaultTimeout)
}

func (s *Server) moveBodyByToken(w http.ResponseWriter, r *http.Request) {
	var req struct {
		BodyToken string  `json:"body_token"`
		X         float64 `json:"x"`
		Y         float64 `json:"y"`
		Z         float64 `json:"z"`
	}
	if err := decode(r, &req); err != nil {
		writeInvalid(w, err.Error())
		return
	}
	if req.BodyToken == "" {
		writeInvalid(w, "body_token is required")
		return
	}
	s.run(w, r, model.OpMoveBodyByToken, ops.MoveByTokenParams{
		BodyToken: req.BodyToken,
		X:         req.X, Y: req.Y, Z: req.Z,
	}, s.cfg.DefaultTimeout)
}

func (s *Server) deleteBodyByToken(w http.ResponseWriter, r *http.Request) {
	var req struct {
		BodyToken string `json:"body_token"`
	}
	if err := decode(r, &req); err != nil {
		writeInvalid(w, err.Error())
		return
	}
	if req.BodyToken == "" {
		writeInvalid(w, "body_token is required")
		return
	}
	s.run(w, r, model.OpDeleteBodyByToken, ops.DeleteByTokenParams{BodyToken: req.BodyToken}, s.cfg.DefaultTimeout)
}

func (s *Server) editExtrudeDistance(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FeatureToken string   `json:"feature_token"`
		Distance     *float64 `json:"distance"`
	}
	if err := decode(r, &req); err != nil {
		writeInvalid(w, err.Error())
		return
	}
	if req.FeatureToken == "" || req.Distance == nil {
		writeInvalid(w, "feature_token and distance are required")
		return
	}
	s.run(w, r, model.OpEditExtrudeDist, ops.EditExtrudeParams{
		FeatureToken: req.FeatureToken,
		Distance:     *req.Distance,
	}, s.cfg.DefaultTimeout)
}

func (s *Server) getBodyInfo(w http.ResponseWriter, r *http.Request) {
	var req struct {
		BodyToken string `json:"body_token"`
	}
	if err := decode(r, &req); err != nil {
		writeInvalid(w, err.Error())
		return
	}
	if req.BodyToken == "" {
		writeInvalid(w, "body_token is required")
		return
	}
	s.run(w, r, model.OpGetBodyInfo, ops.BodyInfoParams{BodyToken: req.BodyToken}, s.cfg.DefaultTimeout)
}

func (s *Server) getFeatureInfo(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FeatureToken string `json:"feature_token"`
	}
	if err := decode(r, &req); err != nil {
		writeInvalid(w, err.Error())
		return
	}
	if req.FeatureToken == "" {
		writeInvalid(w, "feature_token is required")
		return
	}
	s.run(w, r, model.OpGetFeatureInfo, ops.FeatureInfoParams{FeatureToken: req.FeatureToken}, s.cfg.DefaultTimeout)
}

func (s *Server) setBodyVisibility(w http.ResponseWriter, r *http.Request) {
	var req struct {
		BodyToken string `json:"body_token"`
		Visible   *bool  `json:"visible"`
	}
	if err := decode(r, &req); err != nil {
		writeInvalid(w, err.Error())
		return
	}
	if req.BodyToken == "" || req.Visible == nil {
		writeInvalid(w, "body_token and visible are required")
		return
	}
	s.run(w, r, model.OpSetBodyVisibility, ops.VisibilityParams{
		BodyToken: req.BodyToken,
		Visible:   *req.Visible,
	}, s.cfg.DefaultTimeout)
}

func (s *Server) selectBody(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := decode(r, &req); err != nil {
		writeInvalid(w, err.Error())
		return
	}
	if req.Name == "" {
		writeInvalid(w, "name is required")
		return
	}
	s.run(w, r, model.OpSelectBody, ops.SelectBodyParams{Name: req.Name}, s.cfg.DefaultTimeout)
}

func (s *Server) selectSketch(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := decode(r, &req); err != nil {
		writeInvalid(w, err.Error())
		return
	}
	if req.Name == "" {
		writeInvalid(w, "name is required")
		return
	}
	s.run(w, r, model.OpSelectSketch, ops.SelectSketchParams{Name: req.Name}, s.cfg.DefaultTimeout)
}

func (s *Server) setParameter(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name  string   `json:"name"`
		Value *float64 `json:"value"`
	}
	if err := decode(r, &req); err != nil {
		writeInvalid(w, err.Error())
		return
	}
	if req.Name == "" || req.Value == nil {
		writeInvalid(w, "name and value are required")
		return
	}
	s.run(w, r, model.OpSetParameter, ops.SetParameterParams{
		Name:  req.Name,
		Value: *req.Value,
	}, s.cfg.DefaultTimeout)
}

func (s *Server) undo(w http.ResponseWriter, r *http.Request) {
	s.run(w, r, model.OpUndo, ops.UndoParams{}, s.cfg.DefaultTimeout)
}

func (s *Server) deleteEverything(w http.ResponseWriter, r *http.Request) {
	s.run(w, r, model.OpDeleteEverything, ops.DeleteEverythingParams{}, s.cfg.DefaultTimeout)
}

func (s *Server) exportSTL(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FileName string `json:"file_name"`
	}
	if err := decode(r, &req); err != nil {
		writeInvalid(w, err.Error())
		return
	}
	s.run(w, r, model.OpExportSTL, ops.ExportParams{FileName: req.FileName}, s.cfg.DefaultTimeout)
}

func (s *Server) exportSTEP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FileName string `json:"file_name"`
	}
	if err := decode(r, &req); err != nil {
		writeInvalid(w, err.Error())
		return
	}
	s.run(w, r, model.OpExportSTEP, ops.ExportParams{FileName: req.FileName}, s.cfg.DefaultTimeout)
}

// testConnection answers immediately without queueing work: it only proves
// the front door is up.
func (s *Server) testConnection(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, taskResponse{
		Success: true,
		Message: "connection ok",
	})
}

func (s *Server) countParameters(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, struct {
		Success            bool `json:"success"`
		UserParameterCount int  `json:"user_parameter_count"`
	}{
		Success:            true,
		UserParameterCount: s.cfg.Snapshot.Count(),
	})
}

func (s *Server) listParameters(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, struct {
		Success        bool              `json:"success"`
		ModelParameter []model.Parameter `json:"ModelParameter"`
	}{
		Success:        true,
		ModelParameter: s.cfg.Snapshot.Parameters(),
	})
}

// taskRecordView is the wire shape of one journal entry.
type taskRecordView struct {
	ID        uint64    `json:"id"`
	Op        string    `json:"operation"`
	Success   bool      `json:"success"`
	Message   string    `json:"message"`
	Error     string    `json:"error,omitempty"`
	Duration  string    `json:"duration"`
	CreatedAt time.Time `json:"created_at"`
}

func (s *Server) listTasks(w http.ResponseWriter, r *http.Request) {
	views := []taskRecordView{}
	if s.cfg.Journal != nil {
		records, err := s.cfg.Journal.ListTasks(r.Context())
		if err != nil {
			s.logger.Errorf("could not list journal: %v", err)
			writeJSON(w, http.StatusInternalServerError, taskResponse{
				Success: false,
				Message: "could not list tasks",
				Error:   err.Error(),
			})
			return
		}
		for _, rec := range records {
			views = append(views, taskRecordView{
				ID:        rec.ID,
				Op:        string(rec.Op),
				Success:   rec.Success,
				Message:   rec.Message,
				Error:     rec.Error,
				Duration:  rec.Duration.String(),
				CreatedAt: rec.CreatedAt,
			})
		}
	}
	writeJSON(w, http.StatusOK, struct {
		Success bool             `json:"success"`
		Tasks   []taskRecordView `json:"tasks"`
	}{
		Success: true,
		Tasks:   views,
	})
}
