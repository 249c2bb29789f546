package demo

// Position is a point in millimetres.
type Position struct {
	X, Y int32
}

type Target struct {
	Pos      Position
	Heading  uint16
	Distance int32
}

type Navigator struct {
	trig Trig
}

func NewNavigator(t Trig) *Navigator {
	return &Navigator{trig: t}
}

// CalculateTarget returns the heading and straight-line distance from
// current to goal.
func (n *Navigator) CalculateTarget(current, goal Position) Target {
	dx := int64(goal.X) - int64(current.X)
	dy := int64(goal.Y) - int64(current.Y)

	return Target{
		Pos:      goal,
		Heading:  atan2Wide(n.trig, dy, dx),
		Distance: n.trig.Magnitude(int32(dx), int32(dy)),
	}
}

// Move advances current by distance along heading.
func (n *Navigator) Move(current Position, heading uint16, distance int32) Position {
	c := int64(n.trig.Cos(heading))
	s := int64(n.trig.Sin(heading))
	return Position{
		X: current.X + int32(int64(distance)*c>>13),
		Y: current.Y + int32(int64(distance)*s>>13),
	}
}
