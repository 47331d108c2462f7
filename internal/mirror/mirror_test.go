package mirror

import (
	"errors"
	"testing"

	"planar-mirror/internal/config"
	"planar-mirror/internal/reflection"
	"planar-mirror/internal/rendertarget"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeHost implements every host interface and records call order.
type fakeHost struct {
	width, height int

	camera    reflection.CameraParams
	hasCamera bool
	surface   reflection.Transform

	slots     map[string]bool
	bound     []rendertarget.Target
	renderErr error
	panicking bool

	inverted bool
	events   []string
	rendered []reflection.VirtualCamera

	allocated []*target
}

type target struct {
	w, h     int
	released bool
}

func (t *target) Width() int { return t.w }
func (t *target) Height() int { return t.h }
func (t *target) Release() { t.released = true }

func (h *fakeHost) Size() (int, int) { return h.width, h.height }

func (h *fakeHost) MainCamera() (reflection.CameraParams, bool) { return h.camera, h.hasCamera }

func (h *fakeHost) SurfaceTransform() reflection.Transform { return h.surface }

func (h *fakeHost) RenderCamera(cam reflection.VirtualCamera, _ rendertarget.Target) error {
	if h.inverted {
		h.events = append(h.events, "render(inverted)")
	} else {
		h.events = append(h.events, "render")
	}
	h.rendered = append(h.rendered, cam)
	if h.panicking {
		panic("device lost")
	}
	return h.renderErr
}

func (h *fakeHost) Invert() func() {
	h.inverted = true
	h.events = append(h.events, "invert")
	return func() {
		h.inverted = false
		h.events = append(h.events, "restore")
	}
}

func (h *fakeHost) HasTextureSlot(name string) bool { return h.slots[name] }

func (h *fakeHost) BindTexture(_ string, t rendertarget.Target) error {
	h.bound = append(h.bound, t)
	return nil
}

func (h *fakeHost) Allocate(spec rendertarget.Spec) (rendertarget.Target, error) {
	t := &target{w: spec.Width, h: spec.Height}
	h.allocated = append(h.allocated, t)
	return t, nil
}

func newFakeHost() *fakeHost {
	eye := mgl32.Vec3{0, 5, 0}
	return &fakeHost{
		width:  1920,
		height: 1080,
		camera: reflection.CameraParams{
			View:        mgl32.LookAtV(eye, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 1, 0}),
			Position:    eye,
			FOV:         60,
			Aspect:      16.0 / 9.0,
			Near:        0.3,
			Far:         1000,
			CullingMask: reflection.AllLayers,
		},
		hasCamera: true,
		surface:   reflection.NewTransform(mgl32.Vec3{}),
		slots:     map[string]bool{config.DefaultTextureSlot: true},
	}
}

func newMirror(h *fakeHost) *Mirror {
	return New("floor", Host{
		Screen:    h,
		Camera:    h,
		Surface:   h,
		Renderer:  h,
		Culling:   h,
		Material:  h,
		Allocator: h,
	})
}

func halfScale() config.Mirror {
	s := config.DefaultMirror()
	s.RenderTextureScale = 0.5
	return s
}

func TestInitializeAllocatesAndBinds(t *testing.T) {
	h := newFakeHost()
	m := newMirror(h)

	require.NoError(t, m.Initialize(halfScale()))

	require.Len(t, h.allocated, 1)
	assert.Equal(t, 960, m.Target().Width())
	assert.Equal(t, 540, m.Target().Height())
	require.Len(t, h.bound, 1)
	assert.Same(t, h.allocated[0], h.bound[0])
	assert.Equal(t, "PlanarReflectionCamera-floor", m.TargetName())
}

func TestLateUpdateRendersInsideCullingScope(t *testing.T) {
	h := newFakeHost()
	m := newMirror(h)
	require.NoError(t, m.Initialize(config.DefaultMirror()))

	require.NoError(t, m.LateUpdate())

	assert.Equal(t, []string{"invert", "render(inverted)", "restore"}, h.events)
	assert.False(t, h.inverted)

	vc, ok := m.VirtualCamera()
	require.True(t, ok)
	assert.InDelta(t, -5, vc.Position.Y(), 1e-4)
	assert.True(t, vc.Oblique)
	assert.Equal(t, 1, m.Stats().Rendered)
}

func TestLateUpdateRestoresCullingOnFailure(t *testing.T) {
	h := newFakeHost()
	boom := errors.New("draw failed")
	h.renderErr = boom
	m := newMirror(h)
	require.NoError(t, m.Initialize(config.DefaultMirror()))

	err := m.LateUpdate()
	assert.ErrorIs(t, err, boom)
	assert.False(t, h.inverted)
	assert.Equal(t, "restore", h.events[len(h.events)-1])
}

func TestLateUpdateRestoresCullingOnPanic(t *testing.T) {
	h := newFakeHost()
	h.panicking = true
	m := newMirror(h)
	require.NoError(t, m.Initialize(config.DefaultMirror()))

	assert.Panics(t, func() { _ = m.LateUpdate() })
	assert.False(t, h.inverted)
}

func TestLateUpdateSkipsWithoutCamera(t *testing.T) {
	h := newFakeHost()
	h.hasCamera = false
	m := newMirror(h)
	require.NoError(t, m.Initialize(config.DefaultMirror()))

	require.NoError(t, m.LateUpdate())
	assert.Empty(t, h.events)
	assert.Equal(t, 1, m.Stats().Skipped)

	_, ok := m.VirtualCamera()
	assert.False(t, ok)

	h.hasCamera = true
	require.NoError(t, m.LateUpdate())
	assert.Equal(t, 1, m.Stats().Rendered)
}

func TestLateUpdateUnknownAxisAbortsFrame(t *testing.T) {
	h := newFakeHost()
	m := newMirror(h)
	require.NoError(t, m.Initialize(config.DefaultMirror()))
	m.settings.Axis = reflection.Axis(99)

	err := m.LateUpdate()
	assert.ErrorIs(t, err, reflection.ErrUnknownAxis)
	assert.Empty(t, h.events)
}

func TestInitializeRejectsUnknownAxis(t *testing.T) {
	h := newFakeHost()
	m := newMirror(h)
	s := config.DefaultMirror()
	s.Axis = reflection.Axis(-3)

	assert.ErrorIs(t, m.Initialize(s), reflection.ErrUnknownAxis)
	assert.Empty(t, h.allocated)
	require.NoError(t, m.LateUpdate())
	assert.Empty(t, h.events)
}

func TestMissingTextureSlotKeepsRunning(t *testing.T) {
	h := newFakeHost()
	h.slots = nil
	m := newMirror(h)

	require.NoError(t, m.Initialize(config.DefaultMirror()))
	require.NoError(t, m.LateUpdate())

	assert.Empty(t, h.bound)
	assert.Equal(t, 1, m.Stats().Rendered)
}

func TestResizeReallocatesOnlyOnChange(t *testing.T) {
	h := newFakeHost()
	m := newMirror(h)
	require.NoError(t, m.Initialize(halfScale()))

	require.NoError(t, m.LateUpdate())
	require.NoError(t, m.LateUpdate())
	assert.Len(t, h.allocated, 1)

	h.width, h.height = 1280, 720
	require.NoError(t, m.LateUpdate())
	require.Len(t, h.allocated, 2)
	assert.True(t, h.allocated[0].released)
	assert.Equal(t, 640, m.Target().Width())
	assert.Same(t, h.allocated[1], h.bound[len(h.bound)-1])

	require.NoError(t, m.OnResize(1280, 720))
	assert.Len(t, h.allocated, 2)

	require.NoError(t, m.OnResize(3, 3))
	assert.Equal(t, 1, m.Target().Width())
	assert.Equal(t, 1, m.Target().Height())
}

func TestOnSceneSaveReappliesSettings(t *testing.T) {
	h := newFakeHost()
	m := newMirror(h)
	require.NoError(t, m.Initialize(config.DefaultMirror()))
	require.Len(t, h.bound, 1)

	require.NoError(t, m.OnSceneSave())
	assert.Len(t, h.allocated, 1, "same size keeps the target")
	assert.Len(t, h.bound, 2)
}

func TestDisabledAndShutdownSkipFrames(t *testing.T) {
	h := newFakeHost()
	m := newMirror(h)
	require.NoError(t, m.Initialize(config.DefaultMirror()))

	m.SetEnabled(false)
	require.NoError(t, m.LateUpdate())
	assert.Empty(t, h.events)

	m.SetEnabled(true)
	m.Shutdown()
	assert.True(t, h.allocated[0].released)
	assert.Nil(t, m.Target())
	require.NoError(t, m.LateUpdate())
	assert.Empty(t, h.events)
	require.NoError(t, m.OnResize(10, 10))
	assert.Len(t, h.allocated, 1)
}

func TestCullingMaskIntersection(t *testing.T) {
	h := newFakeHost()
	h.camera.CullingMask = 0b1101
	m := newMirror(h)
	s := config.DefaultMirror()
	s.ReflectionMask = 0b0111
	require.NoError(t, m.Initialize(s))

	require.NoError(t, m.LateUpdate())
	require.Len(t, h.rendered, 1)
	assert.Equal(t, uint32(0b0101), h.rendered[0].CullingMask)
}
