package reflection

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrUnknownAxis is returned when an Axis value is outside the six known axes.
var ErrUnknownAxis = errors.New("reflection: unknown axis")

// Axis selects which local axis of the reflecting surface is used as the plane normal.
type Axis int

const (
	AxisUp Axis = iota
	AxisDown
	AxisLeft
	AxisRight
	AxisForward
	AxisBack
)

var axisNames = [...]string{"up", "down", "left", "right", "forward", "back"}

// Transform is the world placement of the reflecting surface.
// Local axes: +X right, +Y up, +Z forward.
type Transform struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
}

// NewTransform returns a transform at pos with no rotation.
func NewTransform(pos mgl32.Vec3) Transform {
	return Transform{Position: pos, Rotation: mgl32.QuatIdent()}
}

func (t Transform) Right() mgl32.Vec3 { return t.Rotation.Rotate(mgl32.Vec3{1, 0, 0}) }
func (t Transform) Up() mgl32.Vec3 { return t.Rotation.Rotate(mgl32.Vec3{0, 1, 0}) }
func (t Transform) Forward() mgl32.Vec3 { return t.Rotation.Rotate(mgl32.Vec3{0, 0, 1}) }

// Normal returns the reflection normal for the surface.
// Up and Down are reversed relative to the local axis: an upward facing
// mirror reflects across -up.
func (a Axis) Normal(t Transform) (mgl32.Vec3, error) {
	switch a {
	case AxisUp:
		return t.Up().Mul(-1), nil
	case AxisDown:
		return t.Up(), nil
	case AxisLeft:
		return t.Right().Mul(-1), nil
	case AxisRight:
		return t.Right(), nil
	case AxisForward:
		return t.Forward(), nil
	case AxisBack:
		return t.Forward().Mul(-1), nil
	default:
		return mgl32.Vec3{}, fmt.Errorf("%w: %d", ErrUnknownAxis, int(a))
	}
}

func (a Axis) Valid() bool {
	return a >= AxisUp && a <= AxisBack
}

func (a Axis) String() string {
	if !a.Valid() {
		return fmt.Sprintf("Axis(%d)", int(a))
	}
	return axisNames[a]
}

// ParseAxis parses an axis name, ignoring case.
func ParseAxis(s string) (Axis, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range axisNames {
		if n == name {
			return Axis(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAxis, s)
}

func (a Axis) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAxis, int(a))
	}
	return []byte(a.String()), nil
}

func (a *Axis) UnmarshalText(text []byte) error {
	v, err := ParseAxis(string(text))
	if err != nil {
		return err
	}
	*a = v
	return nil
}
