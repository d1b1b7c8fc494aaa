package system

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/furi/ecs"
	"github.com/milk9111/furi/ecs/component"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

const (
	fieldOfView = 60.0
	nearPlane   = 0.1
	farPlane    = 250.0
	groundSize  = 60
	groundStep  = 6
)

var fallbackMarkerColor = colornames.Hotpink

// RenderSystem draws the village as projected wireframes seen from the
// camera entity.
type RenderSystem struct {
	camEntity ecs.Entity
	face      *ebtext.GoXFace
}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{face: ebtext.NewGoXFace(basicfont.Face7x13)}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	if !w.IsAlive(r.camEntity) {
		if camEntity, ok := w.First(component.CameraStateComponent.Kind()); ok {
			r.camEntity = camEntity
		}
	}
	state, ok := ecs.Get(w, r.camEntity, component.CameraStateComponent.Kind())
	if !ok {
		return
	}

	screen.Fill(colornames.Lightsteelblue)
	width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	m := viewProjection(*state, width, height)

	r.drawGround(screen, m, width, height)

	ecs.ForEach(w, component.StructureComponent.Kind(), func(e ecs.Entity, s *component.Structure) {
		t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			return
		}
		for _, edge := range boxEdges(t.Position, s.Size) {
			drawSegment(screen, m, width, height, edge[0], edge[1], 1.5, s.Color)
		}
	})

	for _, e := range w.Query(component.MarkerComponent.Kind(), component.TransformComponent.Kind()) {
		marker, _ := ecs.Get(w, e, component.MarkerComponent.Kind())
		t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		if ecs.Has(w, e, component.PendingVisualComponent.Kind()) {
			continue
		}
		if session, ok := ecs.Get(w, e, component.SessionComponent.Kind()); ok && !session.Active {
			continue
		}

		clr := marker.Color
		if mat, ok := ecs.Get(w, e, component.MaterializedComponent.Kind()); ok && mat.Fallback {
			clr = fallbackMarkerColor
		}
		top := t.Position.Add(mgl64.Vec3{0, marker.Height, 0})
		drawSegment(screen, m, width, height, t.Position, top, 4, clr)
		if x, y, ok := project(m, top, width, height); ok {
			vector.DrawFilledCircle(screen, float32(x), float32(y), 5, clr, true)
			if it, ok := ecs.Get(w, e, component.InteractiveComponent.Kind()); ok {
				r.label(screen, it.Label, x, y-18)
			}
		}
	}
}

func (r *RenderSystem) label(screen *ebiten.Image, s string, x, y float64) {
	if s == "" {
		return
	}
	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(x-float64(len(s))*3.5, y)
	op.ColorScale.ScaleWithColor(colornames.Black)
	ebtext.Draw(screen, s, r.face, op)
}

func (r *RenderSystem) drawGround(screen *ebiten.Image, m mgl64.Mat4, width, height float64) {
	for i := -groundSize; i <= groundSize; i += groundStep {
		f := float64(i)
		drawSegment(screen, m, width, height, mgl64.Vec3{f, 0, -groundSize}, mgl64.Vec3{f, 0, groundSize}, 1, colornames.Darkseagreen)
		drawSegment(screen, m, width, height, mgl64.Vec3{-groundSize, 0, f}, mgl64.Vec3{groundSize, 0, f}, 1, colornames.Darkseagreen)
	}
}

// viewProjection combines the camera's look-at view, its pitch and a
// perspective projection.
func viewProjection(state component.CameraState, width, height float64) mgl64.Mat4 {
	aspect := 1.0
	if height > 0 {
		aspect = width / height
	}
	proj := mgl64.Perspective(mgl64.DegToRad(fieldOfView), aspect, nearPlane, farPlane)

	eye, center := state.Position, state.LookAt
	if eye.ApproxEqual(center) {
		center = eye.Add(mgl64.Vec3{0, 0, -1})
	}
	view := mgl64.LookAtV(eye, center, mgl64.Vec3{0, 1, 0})
	return proj.Mul4(mgl64.HomogRotate3DX(-state.Pitch)).Mul4(view)
}

// project maps a world point to screen pixels. Points behind the camera are
// rejected.
func project(m mgl64.Mat4, p mgl64.Vec3, width, height float64) (float64, float64, bool) {
	clip := m.Mul4x1(p.Vec4(1))
	if clip.W() <= nearPlane {
		return 0, 0, false
	}
	ndcX, ndcY := clip.X()/clip.W(), clip.Y()/clip.W()
	if math.IsNaN(ndcX) || math.IsNaN(ndcY) {
		return 0, 0, false
	}
	return (ndcX + 1) * width / 2, (1 - ndcY) * height / 2, true
}

func drawSegment(screen *ebiten.Image, m mgl64.Mat4, width, height float64, a, b mgl64.Vec3, stroke float32, clr color.Color) {
	x0, y0, ok0 := project(m, a, width, height)
	x1, y1, ok1 := project(m, b, width, height)
	if !ok0 || !ok1 {
		return
	}
	vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), stroke, clr, true)
}

// boxEdges returns the twelve edges of a box resting on the ground, centred
// on pos in X and Z.
func boxEdges(pos, size mgl64.Vec3) [][2]mgl64.Vec3 {
	hx, hz := size.X()/2, size.Z()/2
	var c [8]mgl64.Vec3
	for i := 0; i < 8; i++ {
		x, y, z := -hx, 0.0, -hz
		if i&1 != 0 {
			x = hx
		}
		if i&2 != 0 {
			z = hz
		}
		if i&4 != 0 {
			y = size.Y()
		}
		c[i] = pos.Add(mgl64.Vec3{x, y, z})
	}
	return [][2]mgl64.Vec3{
		{c[0], c[1]}, {c[1], c[3]}, {c[3], c[2]}, {c[2], c[0]},
		{c[4], c[5]}, {c[5], c[7]}, {c[7], c[6]}, {c[6], c[4]},
		{c[0], c[4]}, {c[1], c[5]}, {c[2], c[6]}, {c[3], c[7]},
	}
}
