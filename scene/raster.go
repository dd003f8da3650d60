package scene

import (
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
)

// Triangle is a projected, shaded triangle in screen pixels.
type Triangle struct {
	Points [3]mgl64.Vec2
	// Depth is the mean view distance of the vertices; larger is further away.
	Depth float64
	// Color is RGBA in 0..1, alpha always 1.
	Color [4]float32
}

type dirLight struct {
	dir      mgl64.Vec3 // surface to light
	radiance mgl64.Vec3
}

type lighting struct {
	ambient     mgl64.Vec3
	directional []dirLight
}

func collectLights(root *Node) lighting {
	var l lighting
	root.Traverse(func(n *Node) {
		if n.Kind != KindLight || n.Light == nil {
			return
		}
		switch n.Light.Kind {
		case LightAmbient:
			l.ambient = l.ambient.Add(n.Light.radiance())
		case LightDirectional:
			p := n.WorldPosition()
			if p.Len() < 1e-9 {
				p = mgl64.Vec3{0, 1, 0}
			}
			l.directional = append(l.directional, dirLight{
				dir:      p.Normalize(),
				radiance: n.Light.radiance(),
			})
		}
	})
	return l
}

// Rasterize projects every mesh under root through cam onto a surface of
// size vp. Back faces, degenerate triangles and triangles crossing the near
// plane are dropped. The result is ordered far to near.
func Rasterize(root *Node, cam *Camera, vp Viewport) []Triangle {
	if root == nil || cam == nil || vp.Width <= 0 || vp.Height <= 0 {
		return nil
	}

	lights := collectLights(root)
	vpm := cam.ViewProjection()
	w, h := float64(vp.Width), float64(vp.Height)

	var out []Triangle
	root.Traverse(func(n *Node) {
		if !n.IsMesh() {
			return
		}
		model := n.WorldMatrix()
		mvp := vpm.Mul4(model)
		g := n.Geometry
		mat := n.Material
		if mat == nil {
			mat = defaultMaterial
		}

		world := make([]mgl64.Vec3, len(g.Positions))
		clip := make([]mgl64.Vec4, len(g.Positions))
		for i, p := range g.Positions {
			p4 := p.Vec4(1)
			world[i] = model.Mul4x1(p4).Vec3()
			clip[i] = mvp.Mul4x1(p4)
		}

		for i := 0; i+2 < len(g.Indices); i += 3 {
			ia, ib, ic := g.Indices[i], g.Indices[i+1], g.Indices[i+2]
			if int(ia) >= len(clip) || int(ib) >= len(clip) || int(ic) >= len(clip) {
				continue
			}
			ca, cb, cc := clip[ia], clip[ib], clip[ic]
			if !inFront(ca) || !inFront(cb) || !inFront(cc) {
				continue
			}

			na, nb, nc := ndc(ca), ndc(cb), ndc(cc)
			area := (nb.X()-na.X())*(nc.Y()-na.Y()) - (nb.Y()-na.Y())*(nc.X()-na.X())
			if area <= 1e-12 {
				continue
			}

			wa, wb, wc := world[ia], world[ib], world[ic]
			normal := wb.Sub(wa).Cross(wc.Sub(wa))
			if normal.Len() < 1e-12 {
				continue
			}
			normal = normal.Normalize()
			centroid := wa.Add(wb).Add(wc).Mul(1.0 / 3)

			rgb := shade(mat, normal, cam.Eye.Sub(centroid), lights)
			out = append(out, Triangle{
				Points: [3]mgl64.Vec2{
					toScreen(na, w, h),
					toScreen(nb, w, h),
					toScreen(nc, w, h),
				},
				Depth: (ca.W() + cb.W() + cc.W()) / 3,
				Color: [4]float32{float32(rgb.X()), float32(rgb.Y()), float32(rgb.Z()), 1},
			})
		}
	})

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Depth > out[j].Depth
	})
	return out
}

var defaultMaterial = NewStandardMaterial(0xffffff, 0, 1)

// inFront reports whether a clip-space point lies in front of the near plane.
func inFront(c mgl64.Vec4) bool {
	return c.W() > 1e-9 && c.Z() >= -c.W()
}

func ndc(c mgl64.Vec4) mgl64.Vec2 {
	return mgl64.Vec2{c.X() / c.W(), c.Y() / c.W()}
}

func toScreen(p mgl64.Vec2, w, h float64) mgl64.Vec2 {
	return mgl64.Vec2{
		(p.X() + 1) / 2 * w,
		(1 - p.Y()) / 2 * h,
	}
}

// shade applies ambient plus Lambert/Blinn-Phong from directional lights.
// Metals lose diffuse response and tint their highlight.
func shade(m *Material, normal, toEye mgl64.Vec3, l lighting) mgl64.Vec3 {
	base := mgl64.Vec3{
		float64(m.Color.R) / 255,
		float64(m.Color.G) / 255,
		float64(m.Color.B) / 255,
	}
	diffuse := base.Mul(1 - m.Metalness)
	f0 := mgl64.Vec3{0.04, 0.04, 0.04}.Mul(1 - m.Metalness).Add(base.Mul(m.Metalness))

	r := math.Max(m.Roughness, 0.05)
	shininess := math.Max(1, 2/math.Pow(r, 4)-2)
	norm := (shininess + 2) / 8

	view := toEye
	if view.Len() > 1e-9 {
		view = view.Normalize()
	}

	out := mulEach(diffuse, l.ambient)
	for _, d := range l.directional {
		ndl := normal.Dot(d.dir)
		if ndl <= 0 {
			continue
		}
		half := d.dir.Add(view)
		spec := 0.0
		if half.Len() > 1e-9 {
			spec = math.Pow(math.Max(normal.Dot(half.Normalize()), 0), shininess) * norm
		}
		contrib := diffuse.Add(f0.Mul(spec))
		out = out.Add(mulEach(contrib, d.radiance).Mul(ndl))
	}
	return mgl64.Vec3{clamp01(out.X()), clamp01(out.Y()), clamp01(out.Z())}
}

func mulEach(a, b mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{a.X() * b.X(), a.Y() * b.Y(), a.Z() * b.Z()}
}

func clamp01(v float64) float64 {
	return math.Min(1, math.Max(0, v))
}
