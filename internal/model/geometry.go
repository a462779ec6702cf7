package model

// Plane names one of the three base construction planes.
type Plane string

const (
	PlaneXY Plane = "XY"
	PlaneXZ Plane = "XZ"
	PlaneYZ Plane = "YZ"
)

// Valid reports whether the plane is one of the base construction planes.
func (p Plane) Valid() bool {
	switch p {
	case PlaneXY, PlaneXZ, PlaneYZ:
		return true
	}
	return false
}

// Axis names one of the three construction axes.
type Axis string

const (
	AxisX Axis = "X"
	AxisY Axis = "Y"
	AxisZ Axis = "Z"
)

// Valid reports whether the axis is one of the construction axes.
func (a Axis) Valid() bool {
	switch a {
	case AxisX, AxisY, AxisZ:
		return true
	}
	return false
}

// BooleanOp names a combine operation between two bodies.
type BooleanOp string

const (
	BooleanCut       BooleanOp = "cut"
	BooleanJoin      BooleanOp = "join"
	BooleanIntersect BooleanOp = "intersect"
)

// Valid reports whether the boolean operation is supported.
func (o BooleanOp) Valid() bool {
	switch o {
	case BooleanCut, BooleanJoin, BooleanIntersect:
		return true
	}
	return false
}
