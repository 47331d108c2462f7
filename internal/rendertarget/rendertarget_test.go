package rendertarget

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTarget struct {
	w, h     int
	released int
}

func (t *fakeTarget) Width() int { return t.w }
func (t *fakeTarget) Height() int { return t.h }
func (t *fakeTarget) Release() { t.released++ }

type fakeAllocator struct {
	specs   []Spec
	targets []*fakeTarget
	err     error
}

func (a *fakeAllocator) Allocate(spec Spec) (Target, error) {
	if a.err != nil {
		return nil, a.err
	}
	// the previous target must already be gone
	for _, t := range a.targets {
		if t.released == 0 {
			return nil, errors.New("previous target still alive")
		}
	}
	a.specs = append(a.specs, spec)
	t := &fakeTarget{w: spec.Width, h: spec.Height}
	a.targets = append(a.targets, t)
	return t, nil
}

func TestScaledSize(t *testing.T) {
	tests := []struct {
		name          string
		w, h          int
		scale         float32
		wantW, wantH  int
	}{
		{"full", 1920, 1080, 1, 1920, 1080},
		{"half", 1920, 1080, 0.5, 960, 540},
		{"floor", 1001, 333, 0.5, 500, 166},
		{"clamp to one", 3, 3, 0.01, 1, 1},
		{"zero screen", 0, 0, 1, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := ScaledSize(tt.w, tt.h, tt.scale)
			assert.Equal(t, tt.wantW, w)
			assert.Equal(t, tt.wantH, h)
		})
	}
}

func TestClampScale(t *testing.T) {
	assert.Equal(t, float32(MinScale), ClampScale(0))
	assert.Equal(t, float32(MaxScale), ClampScale(3))
	assert.Equal(t, float32(0.25), ClampScale(0.25))
}

func TestEnsureAllocatesOnce(t *testing.T) {
	alloc := &fakeAllocator{}
	m := NewManager(alloc, "PlanarReflectionCamera-floor", 0.5)

	resized, err := m.Ensure(1920, 1080)
	require.NoError(t, err)
	assert.True(t, resized)
	require.Len(t, alloc.specs, 1)

	spec := alloc.specs[0]
	assert.Equal(t, 960, spec.Width)
	assert.Equal(t, 540, spec.Height)
	assert.Equal(t, 16, spec.DepthBits)
	assert.Equal(t, FilterBilinear, spec.Filter)
	assert.False(t, spec.Mipmaps)
	assert.Equal(t, "PlanarReflectionCamera-floor", spec.Name)

	resized, err = m.Ensure(1920, 1080)
	require.NoError(t, err)
	assert.False(t, resized)
	assert.Len(t, alloc.specs, 1)
	assert.Equal(t, 1, m.Allocations())
}

func TestEnsureReallocatesOnChange(t *testing.T) {
	alloc := &fakeAllocator{}
	m := NewManager(alloc, "mirror", 1)

	_, err := m.Ensure(800, 600)
	require.NoError(t, err)

	resized, err := m.Ensure(1024, 768)
	require.NoError(t, err)
	assert.True(t, resized)
	assert.Equal(t, 1, alloc.targets[0].released)
	assert.Equal(t, 1024, m.Target().Width())

	m.SetScale(0.25)
	assert.True(t, m.NeedsResize(1024, 768))
	resized, err = m.Ensure(1024, 768)
	require.NoError(t, err)
	assert.True(t, resized)
	assert.Equal(t, 256, m.Target().Width())
	assert.Equal(t, 192, m.Target().Height())
	assert.Equal(t, 3, m.Allocations())
}

func TestEnsureSameScaledSizeIsNoop(t *testing.T) {
	alloc := &fakeAllocator{}
	m := NewManager(alloc, "mirror", 0.5)

	_, err := m.Ensure(1000, 1000)
	require.NoError(t, err)
	// 1001*0.5 floors to the same 500
	resized, err := m.Ensure(1001, 1001)
	require.NoError(t, err)
	assert.False(t, resized)
}

func TestEnsureTinyScreen(t *testing.T) {
	alloc := &fakeAllocator{}
	m := NewManager(alloc, "mirror", 0.01)

	_, err := m.Ensure(3, 3)
	require.NoError(t, err)
	assert.Equal(t, 1, m.Target().Width())
	assert.Equal(t, 1, m.Target().Height())
}

func TestEnsureAllocationError(t *testing.T) {
	boom := errors.New("out of memory")
	m := NewManager(&fakeAllocator{err: boom}, "mirror", 1)

	resized, err := m.Ensure(10, 10)
	assert.False(t, resized)
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, m.Target())
	assert.True(t, m.NeedsResize(10, 10))
}

func TestRelease(t *testing.T) {
	alloc := &fakeAllocator{}
	m := NewManager(alloc, "mirror", 1)
	_, err := m.Ensure(10, 10)
	require.NoError(t, err)

	m.Release()
	m.Release()
	assert.Nil(t, m.Target())
	assert.Equal(t, 1, alloc.targets[0].released)
}
