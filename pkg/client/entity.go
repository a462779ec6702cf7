package client

import (
	"context"

	"github.com/hktonylee/Autodesk-Fusion-360-MCP-Server/internal/model"
)

// Parameter describes one modeling parameter of the current design.
type Parameter = model.Parameter

// MoveBodyByToken translates the body with the given persistent token.
func (c *Client) MoveBodyByToken(ctx context.Context, bodyToken string, x, y, z float64) (*Result, error) {
	body := struct {
		BodyToken string  `json:"body_token"`
		X         float64 `json:"x"`
		Y         float64 `json:"y"`
		Z         float64 `json:"z"`
	}{bodyToken, x, y, z}
	var res Result
	return &res, c.post(ctx, "/move_body_by_token", body, &res)
}

// DeleteBodyByToken removes the body with the given persistent token.
func (c *Client) DeleteBodyByToken(ctx context.Context, bodyToken string) (*Result, error) {
	body := struct {
		BodyToken string `json:"body_token"`
	}{bodyToken}
	var res Result
	return &res, c.post(ctx, "/delete_body_by_token", body, &res)
}

// EditExtrudeDistance changes the extent distance of an extrude feature.
func (c *Client) EditExtrudeDistance(ctx context.Context, featureToken string, distance float64) (*Result, error) {
	body := struct {
		FeatureToken string  `json:"feature_token"`
		Distance     float64 `json:"distance"`
	}{featureToken, distance}
	var res Result
	return &res, c.post(ctx, "/edit_extrude_distance", body, &res)
}

// GetBodyInfo queries the state of a body by persistent token.
func (c *Client) GetBodyInfo(ctx context.Context, bodyToken string) (*Result, error) {
	body := struct {
		BodyToken string `json:"body_token"`
	}{bodyToken}
	var res Result
	return &res, c.post(ctx, "/get_body_info", body, &res)
}

// GetFeatureInfo queries the state of a feature by persistent token.
func (c *Client) GetFeatureInfo(ctx context.Context, featureToken string) (*Result, error) {
	body := struct {
		FeatureToken string `json:"feature_token"`
	}{featureToken}
	var res Result
	return &res, c.post(ctx, "/get_feature_info", body, &res)
}

// SetBodyVisibility shows or hides a body by persistent token.
func (c *Client) SetBodyVisibility(ctx context.Context, bodyToken string, visible bool) (*Result, error) {
	body := struct {
		BodyToken string `json:"body_token"`
		Visible   bool   `json:"visible"`
	}{bodyToken, visible}
	var res Result
	return &res, c.post(ctx, "/set_body_visibility", body, &res)
}

// SelectBody highlights a body by display name.
func (c *Client) SelectBody(ctx context.Context, name string) (*Result, error) {
	body := struct {
		Name string `json:"name"`
	}{name}
	var res Result
	return &res, c.post(ctx, "/select_body", body, &res)
}

// SelectSketch highlights a sketch by display name.
func (c *Client) SelectSketch(ctx context.Context, name string) (*Result, error) {
	body := struct {
		Name string `json:"name"`
	}{name}
	var res Result
	return &res, c.post(ctx, "/select_sketch", body, &res)
}

// SetParameter updates a modeling parameter by name.
func (c *Client) SetParameter(ctx context.Context, name string, value float64) (*Result, error) {
	body := struct {
		Name  string  `json:"name"`
		Value float64 `json:"value"`
	}{name, value}
	var res Result
	return &res, c.post(ctx, "/set_parameter", body, &res)
}

// Undo reverts the most recent modeling operation.
func (c *Client) Undo(ctx context.Context) (*Result, error) {
	var res Result
	return &res, c.post(ctx, "/undo", struct{}{}, &res)
}

// DeleteEverything clears the whole design.
func (c *Client) DeleteEverything(ctx context.Context) (*Result, error) {
	var res Result
	return &res, c.post(ctx, "/delete_everything", struct{}{}, &res)
}

// ExportSTL writes the design as an STL file on the bridge host and
// returns the written path in the result's entity data.
func (c *Client) ExportSTL(ctx context.Context, fileName string) (*Result, error) {
	body := struct {
		FileName string `json:"file_name,omitempty"`
	}{fileName}
	var res Result
	return &res, c.post(ctx, "/Export_STL", body, &res)
}

// ExportSTEP writes the design as a STEP file on the bridge host.
func (c *Client) ExportSTEP(ctx context.Context, fileName string) (*Result, error) {
	body := struct {
		FileName string `json:"file_name,omitempty"`
	}{fileName}
	var res Result
	return &res, c.post(ctx, "/Export_STEP", body, &res)
}

// CountParameters returns the number of modeling parameters from the last
// published snapshot.
func (c *Client) CountParameters(ctx context.Context) (int, error) {
	var res struct {
		Success            bool `json:"success"`
		UserParameterCount int  `json:"user_parameter_count"`
	}
	if err := c.get(ctx, "/count_parameters", &res); err != nil {
		return 0, err
	}
	return res.UserParameterCount, nil
}

// ListParameters returns the modeling parameters from the last published
// snapshot.
func (c *Client) ListParameters(ctx context.Context) ([]Parameter, error) {
	var res struct {
		Success        bool        `json:"success"`
		ModelParameter []Parameter `json:"ModelParameter"`
	}
	if err := c.get(ctx, "/list_parameters", &res); err != nil {
		return nil, err
	}
	return res.ModelParameter, nil
}
