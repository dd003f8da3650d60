// Package scene implements a small retained-mode 3D scene graph with a
// software projection step suitable for drawing through ebiten triangles.
package scene

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Kind identifies what a Node carries.
type Kind int

const (
	KindGroup Kind = iota
	KindMesh
	KindLight
)

// Node is a positioned element of the scene graph. Mesh nodes carry a
// Geometry and Material, light nodes carry a Light.
type Node struct {
	Name string
	Kind Kind

	Position mgl64.Vec3
	Rotation mgl64.Quat
	Scale    mgl64.Vec3

	Geometry *Geometry
	Material *Material
	Light    *Light

	parent   *Node
	children []*Node
}

// NewGroup returns an empty node with identity transform.
func NewGroup(name string) *Node {
	return &Node{
		Name:     name,
		Kind:     KindGroup,
		Rotation: mgl64.QuatIdent(),
		Scale:    mgl64.Vec3{1, 1, 1},
	}
}

// NewMesh returns a mesh node.
func NewMesh(name string, g *Geometry, m *Material) *Node {
	n := NewGroup(name)
	n.Kind = KindMesh
	n.Geometry = g
	n.Material = m
	return n
}

// NewLightNode returns a node carrying l.
func NewLightNode(name string, l *Light) *Node {
	n := NewGroup(name)
	n.Kind = KindLight
	n.Light = l
	return n
}

// IsMesh reports whether the node carries drawable geometry.
func (n *Node) IsMesh() bool {
	return n.Kind == KindMesh && n.Geometry != nil
}

// Add attaches children to n, detaching them from any previous parent.
func (n *Node) Add(children ...*Node) {
	for _, c := range children {
		if c == nil || c == n {
			continue
		}
		if c.parent != nil {
			c.parent.Remove(c)
		}
		c.parent = n
		n.children = append(n.children, c)
	}
}

// Remove detaches child from n. It reports whether child was found.
func (n *Node) Remove(child *Node) bool {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			c.parent = nil
			return true
		}
	}
	return false
}

// Children returns the direct children of n. The slice must not be modified.
func (n *Node) Children() []*Node {
	return n.children
}

// Parent returns the parent of n, or nil for a root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Traverse calls fn for n and every descendant, depth first.
func (n *Node) Traverse(fn func(*Node)) {
	fn(n)
	for _, c := range n.children {
		c.Traverse(fn)
	}
}

// Clone returns a deep copy of the subtree rooted at n. The copy has no
// parent. Geometry is shared between copies since it is never mutated.
func (n *Node) Clone() *Node {
	c := &Node{
		Name:     n.Name,
		Kind:     n.Kind,
		Position: n.Position,
		Rotation: n.Rotation,
		Scale:    n.Scale,
		Geometry: n.Geometry,
	}
	if n.Material != nil {
		m := *n.Material
		c.Material = &m
	}
	if n.Light != nil {
		l := *n.Light
		c.Light = &l
	}
	for _, child := range n.children {
		cc := child.Clone()
		cc.parent = c
		c.children = append(c.children, cc)
	}
	return c
}

// SetRotationY sets a pure yaw rotation.
func (n *Node) SetRotationY(rad float64) {
	n.Rotation = mgl64.QuatRotate(rad, mgl64.Vec3{0, 1, 0})
}

// SetScale sets a uniform scale.
func (n *Node) SetScale(s float64) {
	n.Scale = mgl64.Vec3{s, s, s}
}

// LocalMatrix returns T*R*S.
func (n *Node) LocalMatrix() mgl64.Mat4 {
	t := mgl64.Translate3D(n.Position.X(), n.Position.Y(), n.Position.Z())
	r := n.Rotation.Normalize().Mat4()
	s := mgl64.Scale3D(n.Scale.X(), n.Scale.Y(), n.Scale.Z())
	return t.Mul4(r).Mul4(s)
}

// WorldMatrix composes the local matrices from the root down to n.
func (n *Node) WorldMatrix() mgl64.Mat4 {
	m := n.LocalMatrix()
	for p := n.parent; p != nil; p = p.parent {
		m = p.LocalMatrix().Mul4(m)
	}
	return m
}

// WorldPosition returns the node origin in world space.
func (n *Node) WorldPosition() mgl64.Vec3 {
	return n.WorldMatrix().Mul4x1(mgl64.Vec4{0, 0, 0, 1}).Vec3()
}
