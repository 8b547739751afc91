package game

import "github.com/go-gl/mathgl/mgl64"

// CameraOffset is the trailing viewpoint in the player's local frame.
var CameraOffset = mgl64.Vec3{0, CameraOffsetY, CameraOffsetZ}

// FollowCamera trails the player. Position is smoothed; the look target
// snaps to the player every tick.
type FollowCamera struct {
	Position mgl64.Vec3
	Target   mgl64.Vec3
	Aspect   float64
	FOV      float64 // degrees
}

func NewFollowCamera(width, height int) *FollowCamera {
	c := &FollowCamera{
		Position: CameraOffset,
		FOV:      CameraFOV,
		Aspect:   1,
	}
	c.Resize(width, height)
	return c
}

// Resize updates the aspect ratio. Nothing else depends on pixel size.
func (c *FollowCamera) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.Aspect = float64(width) / float64(height)
}

// Desired returns the camera offset transformed into the body's world frame.
func (c *FollowCamera) Desired(body *Renderable) mgl64.Vec3 {
	return mgl64.TransformCoordinate(CameraOffset, body.Model())
}

// Follow moves the camera toward its desired spot by CameraLerp per
// reference frame and aims at the body.
func (c *FollowCamera) Follow(body *Renderable, step float64) {
	alpha := CameraLerp
	if step != 1 {
		alpha = 1 - decayOver(1-CameraLerp, step)
	}
	c.Position = lerpVec(c.Position, c.Desired(body), alpha)
	c.Target = body.Position
}

func (c *FollowCamera) View() mgl64.Mat4 {
	return mgl64.LookAtV(c.Position, c.Target, mgl64.Vec3{0, 1, 0})
}

func (c *FollowCamera) Projection() mgl64.Mat4 {
	return mgl64.Perspective(mgl64.DegToRad(c.FOV), c.Aspect, CameraNear, CameraFar)
}

// ViewProjection is Projection * View.
func (c *FollowCamera) ViewProjection() mgl64.Mat4 {
	return c.Projection().Mul4(c.View())
}
