package assets

import (
	"fmt"
	"io/fs"

	"github.com/automoto/showroom/scene"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// LoadModel decodes a binary glTF file from fsys and converts its default
// scene into a scene graph subtree. Meshes get a neutral material; callers
// are expected to override it.
func LoadModel(fsys fs.FS, path string) (*scene.Node, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open model %s: %w", path, err)
	}
	defer f.Close()

	doc := new(gltf.Document)
	if err := gltf.NewDecoderFS(f, fsys).Decode(doc); err != nil {
		return nil, fmt.Errorf("decode model %s: %w", path, err)
	}

	root, err := ModelFromDocument(doc)
	if err != nil {
		return nil, fmt.Errorf("build model %s: %w", path, err)
	}
	return root, nil
}

// ModelFromDocument converts the default scene of doc into a subtree.
func ModelFromDocument(doc *gltf.Document) (*scene.Node, error) {
	sceneIndex := 0
	if doc.Scene != nil {
		sceneIndex = int(*doc.Scene)
	}
	root := scene.NewGroup("model")

	if len(doc.Scenes) == 0 {
		// No scene list; treat every node as a root.
		for i := range doc.Nodes {
			if !isChild(doc, i) {
				n, err := buildNode(doc, i, 0)
				if err != nil {
					return nil, err
				}
				root.Add(n)
			}
		}
		return root, nil
	}
	if sceneIndex < 0 || sceneIndex >= len(doc.Scenes) {
		return nil, fmt.Errorf("scene index %d out of range", sceneIndex)
	}

	s := doc.Scenes[sceneIndex]
	if s.Name != "" {
		root.Name = s.Name
	}
	for _, idx := range s.Nodes {
		n, err := buildNode(doc, int(idx), 0)
		if err != nil {
			return nil, err
		}
		root.Add(n)
	}
	return root, nil
}

const maxNodeDepth = 256

func isChild(doc *gltf.Document, idx int) bool {
	for _, n := range doc.Nodes {
		for _, c := range n.Children {
			if int(c) == idx {
				return true
			}
		}
	}
	return false
}

func buildNode(doc *gltf.Document, idx, depth int) (*scene.Node, error) {
	if depth > maxNodeDepth {
		return nil, fmt.Errorf("node hierarchy deeper than %d", maxNodeDepth)
	}
	if idx < 0 || idx >= len(doc.Nodes) {
		return nil, fmt.Errorf("node index %d out of range", idx)
	}
	src := doc.Nodes[idx]

	var meshes []*scene.Node
	if src.Mesh != nil {
		var err error
		meshes, err = buildMesh(doc, int(*src.Mesh))
		if err != nil {
			return nil, fmt.Errorf("node %q: %w", src.Name, err)
		}
	}

	var n *scene.Node
	if len(meshes) == 1 {
		n = meshes[0]
		n.Name = src.Name
	} else {
		n = scene.NewGroup(src.Name)
		n.Add(meshes...)
	}
	applyTransform(n, src)

	for _, c := range src.Children {
		child, err := buildNode(doc, int(c), depth+1)
		if err != nil {
			return nil, err
		}
		n.Add(child)
	}
	return n, nil
}

func applyTransform(n *scene.Node, src *gltf.Node) {
	m := src.MatrixOrDefault()
	if m != identity {
		mat := mgl64.Mat4(m)
		col := func(i int) mgl64.Vec3 { return mat.Col(i).Vec3() }
		sx, sy, sz := col(0).Len(), col(1).Len(), col(2).Len()
		n.Position = col(3)
		n.Scale = mgl64.Vec3{sx, sy, sz}
		if sx > 0 && sy > 0 && sz > 0 {
			rot := mgl64.Mat4FromCols(
				col(0).Mul(1/sx).Vec4(0),
				col(1).Mul(1/sy).Vec4(0),
				col(2).Mul(1/sz).Vec4(0),
				mgl64.Vec4{0, 0, 0, 1},
			)
			n.Rotation = mgl64.Mat4ToQuat(rot)
		}
		return
	}

	t := src.Translation
	r := src.RotationOrDefault()
	s := src.ScaleOrDefault()
	n.Position = mgl64.Vec3{t[0], t[1], t[2]}
	n.Rotation = mgl64.Quat{W: r[3], V: mgl64.Vec3{r[0], r[1], r[2]}}
	n.Scale = mgl64.Vec3{s[0], s[1], s[2]}
}

var identity = [16]float64{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}

// buildMesh returns one mesh node per triangle primitive.
func buildMesh(doc *gltf.Document, idx int) ([]*scene.Node, error) {
	if idx < 0 || idx >= len(doc.Meshes) {
		return nil, fmt.Errorf("mesh index %d out of range", idx)
	}
	mesh := doc.Meshes[idx]

	var out []*scene.Node
	for i, p := range mesh.Primitives {
		if p.Mode != gltf.PrimitiveTriangles {
			continue
		}
		geo, err := buildGeometry(doc, p)
		if err != nil {
			return nil, fmt.Errorf("mesh %q primitive %d: %w", mesh.Name, i, err)
		}
		out = append(out, scene.NewMesh(mesh.Name, geo, scene.NewStandardMaterial(0xffffff, 0, 1)))
	}
	return out, nil
}

func buildGeometry(doc *gltf.Document, p *gltf.Primitive) (*scene.Geometry, error) {
	posIdx, ok := p.Attributes[gltf.POSITION]
	if !ok {
		return nil, fmt.Errorf("missing %s attribute", gltf.POSITION)
	}
	if int(posIdx) >= len(doc.Accessors) {
		return nil, fmt.Errorf("accessor index %d out of range", posIdx)
	}
	positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
	if err != nil {
		return nil, fmt.Errorf("read positions: %w", err)
	}

	geo := &scene.Geometry{Positions: make([]mgl64.Vec3, len(positions))}
	for i, v := range positions {
		geo.Positions[i] = mgl64.Vec3{float64(v[0]), float64(v[1]), float64(v[2])}
	}

	if p.Indices == nil {
		geo.Indices = make([]uint32, len(positions))
		for i := range geo.Indices {
			geo.Indices[i] = uint32(i)
		}
		return geo, nil
	}
	if int(*p.Indices) >= len(doc.Accessors) {
		return nil, fmt.Errorf("accessor index %d out of range", *p.Indices)
	}
	geo.Indices, err = modeler.ReadIndices(doc, doc.Accessors[*p.Indices], nil)
	if err != nil {
		return nil, fmt.Errorf("read indices: %w", err)
	}
	return geo, nil
}
