package model

// BodyRef identifies a single body created or touched by a feature. The
// token is persistent for the life of the design document; the index is the
// body's position in the root component at creation time.
type BodyRef struct {
	BodyToken string `json:"body_token"`
	BodyName  string `json:"body_name"`
	BodyIndex int    `json:"body_index,omitempty"`
}

// Point is a 3D coordinate in design units (cm).
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// BoundingBox is an axis-aligned bounding box.
type BoundingBox struct {
	Min Point `json:"min"`
	Max Point `json:"max"`
}

// EntityData carries the identity payload returned by geometry-creating and
// entity-query operations. Feature fields are set by creating operations;
// the query fields are only set by the info operations.
type EntityData struct {
	FeatureToken string    `json:"feature_token,omitempty"`
	FeatureName  string    `json:"feature_name,omitempty"`
	FeatureType  string    `json:"feature_type,omitempty"`
	Bodies       []BodyRef `json:"bodies,omitempty"`

	// Move/delete payloads.
	MovedBodyToken   string `json:"moved_body_token,omitempty"`
	MovedBodyName    string `json:"moved_body_name,omitempty"`
	DeletedBodyToken string `json:"deleted_body_token,omitempty"`
	DeletedBodyName  string `json:"deleted_body_name,omitempty"`

	// Body/sketch/feature query payloads.
	BodyToken    string       `json:"body_token,omitempty"`
	BodyName     string       `json:"body_name,omitempty"`
	SketchToken  string       `json:"sketch_token,omitempty"`
	SketchName   string       `json:"sketch_name,omitempty"`
	IsSolid      *bool        `json:"is_solid,omitempty"`
	IsVisible    *bool        `json:"is_visible,omitempty"`
	IsSuppressed *bool        `json:"is_suppressed,omitempty"`
	Volume       *float64     `json:"volume,omitempty"`
	FaceCount    *int         `json:"face_count,omitempty"`
	EdgeCount    *int         `json:"edge_count,omitempty"`
	BoundingBox  *BoundingBox `json:"bounding_box,omitempty"`
	Distance     *float64     `json:"distance,omitempty"`
	NewDistance  *float64     `json:"new_distance,omitempty"`

	// Export payloads.
	ExportPath string `json:"export_path,omitempty"`
}
