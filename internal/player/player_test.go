package player

import (
	"testing"

	"planar-mirror/internal/config"
	"planar-mirror/internal/input"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestStartLooksDownNegativeZ(t *testing.T) {
	p := NewPlayer(mgl32.Vec3{0, 2, 5})
	assert.True(t, p.GetFrontVector().ApproxEqualThreshold(mgl32.Vec3{0, 0, -1}, 1e-6))
	assert.True(t, p.GetRightVector().ApproxEqualThreshold(mgl32.Vec3{1, 0, 0}, 1e-6))

	// the eye maps to the view-space origin
	eye := mgl32.TransformCoordinate(p.GetEyePosition(), p.GetViewMatrix())
	assert.True(t, eye.ApproxEqualThreshold(mgl32.Vec3{}, 1e-5))
}

func TestLookSensitivity(t *testing.T) {
	tests := []struct {
		name        string
		sensitivity float32
		wantYaw     float64
	}{
		{"minimum", 0, StartYaw + 1},
		{"default", 0.5, StartYaw + 5.5},
		{"maximum", 1, StartYaw + 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlayer(mgl32.Vec3{})
			p.Look(10, 0, tt.sensitivity)
			assert.InDelta(t, tt.wantYaw, p.CamYaw, 1e-9)
		})
	}
}

func TestLookClampsPitch(t *testing.T) {
	p := NewPlayer(mgl32.Vec3{})
	p.Look(0, -10000, 1)
	assert.Equal(t, MaxPitch, p.CamPitch)
	p.Look(0, 10000, 1)
	assert.Equal(t, -MaxPitch, p.CamPitch)
}

func TestLookIgnoredWhenUnlocked(t *testing.T) {
	p := NewPlayer(mgl32.Vec3{})
	assert.False(t, p.ToggleCursorLock())
	p.Look(100, 100, 1)
	assert.Equal(t, StartYaw, p.CamYaw)
	assert.Zero(t, p.CamPitch)
}

func TestMoveSpeed(t *testing.T) {
	p := NewPlayer(mgl32.Vec3{})
	p.Move(1, 0, 0, 0.5)
	assert.True(t, p.Position.ApproxEqualThreshold(mgl32.Vec3{0, 0, -2.5}, 1e-5))

	p.Move(0, -1, 0, 1)
	assert.True(t, p.Position.ApproxEqualThreshold(mgl32.Vec3{-5, 0, -2.5}, 1e-5))
}

func TestUpdateFromInput(t *testing.T) {
	config.SetMouseSensitivity(0)
	defer config.SetMouseSensitivity(config.DefaultMouseSensitivity)

	im := input.NewInputManager()
	im.HandleKeyEvent(glfw.KeyW, glfw.Press)
	im.HandleKeyEvent(glfw.KeyD, glfw.Press)
	im.HandleKeyEvent(glfw.KeyS, glfw.Press)

	p := NewPlayer(mgl32.Vec3{})
	p.Update(im, 1)
	// forward and back cancel
	assert.True(t, p.Position.ApproxEqualThreshold(mgl32.Vec3{5, 0, 0}, 1e-5))

	im.HandleCursorPos(0, 0)
	im.HandleCursorPos(20, 0)
	p.Update(im, 0)
	assert.InDelta(t, StartYaw+2, p.CamYaw, 1e-9)
}
