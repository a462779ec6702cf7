package model

// Parameter describes one modeling parameter of the current design. The
// JSON field names are part of the wire contract of the parameter list
// endpoint.
type Parameter struct {
	Name       string `json:"Name"`
	Value      string `json:"Wert"`
	Unit       string `json:"Unit"`
	Expression string `json:"Expression"`
}
