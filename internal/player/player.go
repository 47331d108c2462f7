// Package player is the first-person fly camera used to look around the demo.
package player

import (
	"planar-mirror/internal/config"
	"planar-mirror/internal/input"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	// MoveSpeed is in units per second
	MoveSpeed = 5.0

	// LookScale converts cursor pixels to degrees before sensitivity
	LookScale = 0.1

	MaxPitch = 80.0

	StartYaw = -90.0
)

// Player is a free-flying camera. Yaw and pitch are in degrees; yaw -90 looks down -Z.
type Player struct {
	Position mgl32.Vec3
	CamYaw   float64
	CamPitch float64

	// Mouse look only applies while the cursor is locked
	CursorLocked bool
}

// NewPlayer creates a player at pos looking down -Z with the cursor locked
func NewPlayer(pos mgl32.Vec3) *Player {
	return &Player{
		Position:     pos,
		CamYaw:       StartYaw,
		CursorLocked: true,
	}
}

// Look turns the camera by a cursor movement in pixels. Moving the cursor
// down pitches the view down.
func (p *Player) Look(dx, dy float64, sensitivity float32) {
	if !p.CursorLocked {
		return
	}
	k := LookScale * (1 + float64(sensitivity)*9)
	p.CamYaw += dx * k
	p.CamPitch -= dy * k

	// Constrain pitch
	if p.CamPitch > MaxPitch {
		p.CamPitch = MaxPitch
	}
	if p.CamPitch < -MaxPitch {
		p.CamPitch = -MaxPitch
	}
}

// Move flies along the view direction. forward and strafe are in [-1,1].
func (p *Player) Move(forward, strafe, lift float32, dt float64) {
	step := float32(MoveSpeed * dt)
	delta := p.GetFrontVector().Mul(forward).
		Add(p.GetRightVector().Mul(strafe)).
		Add(mgl32.Vec3{0, lift, 0})
	p.Position = p.Position.Add(delta.Mul(step))
}

// Update applies this frame's input
func (p *Player) Update(im *input.InputManager, dt float64) {
	dx, dy := im.MouseDelta()
	p.Look(dx, dy, config.GetMouseSensitivity())

	var forward, strafe, lift float32
	if im.IsActive(input.ActionMoveForward) {
		forward++
	}
	if im.IsActive(input.ActionMoveBackward) {
		forward--
	}
	if im.IsActive(input.ActionMoveRight) {
		strafe++
	}
	if im.IsActive(input.ActionMoveLeft) {
		strafe--
	}
	if im.IsActive(input.ActionMoveUp) {
		lift++
	}
	if im.IsActive(input.ActionMoveDown) {
		lift--
	}
	if forward != 0 || strafe != 0 || lift != 0 {
		p.Move(forward, strafe, lift, dt)
	}
}

// ToggleCursorLock flips the cursor lock and returns the new state
func (p *Player) ToggleCursorLock() bool {
	p.CursorLocked = !p.CursorLocked
	return p.CursorLocked
}
