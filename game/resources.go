package game

import (
	"errors"
	"fmt"
	"image/color"

	"golang.org/x/image/colornames"
)

var (
	ErrUnknownColor   = errors.New("unknown color name")
	ErrInvalidShape   = errors.New("invalid shape")
	ErrInvalidPalette = errors.New("invalid palette")
)

type ShapeKind int

const (
	ShapeCube ShapeKind = iota
	ShapeSphere
)

// Shape is a mesh description. Size is the edge length of a cube, or the
// radius of a sphere.
type Shape struct {
	Kind ShapeKind
	Size float64
}

type Material struct {
	Name  string
	Color color.RGBA
}

// MeshHandle and MaterialHandle index into a VisualPool's tables. The zero
// handle means nothing is attached.
type MeshHandle uint8
type MaterialHandle uint8

const (
	NoMesh     MeshHandle     = 0
	NoMaterial MaterialHandle = 0
)

// Visual is the pair of handles attached to a cell
type Visual struct {
	Mesh     MeshHandle
	Material MaterialHandle
}

func (visual Visual) IsEmpty() bool {
	return visual.Mesh == NoMesh && visual.Material == NoMaterial
}

// Palette maps variant names to colornames entries
type Palette map[string]string

func DefaultPalette() Palette {
	return Palette{
		Concealed.String(): "whitesmoke",
		Marked.String():    "red",
		Number1.String():   "blue",
		Number2.String():   "green",
		Number3.String():   "red",
		Number4.String():   "orange",
		Number5.String():   "purple",
		Mine.String():      "darkgray",
	}
}

// Shapes per variant. Concealed and Marked share the cube; only the material
// differs between them.
var variantShapes = map[Variant]Shape{
	Concealed: {Kind: ShapeCube, Size: cellSize},
	Number1:   {Kind: ShapeSphere, Size: 0.1},
	Number2:   {Kind: ShapeSphere, Size: 0.15},
	Number3:   {Kind: ShapeSphere, Size: 0.2},
	Number4:   {Kind: ShapeSphere, Size: 0.25},
	Number5:   {Kind: ShapeSphere, Size: 0.275},
	Mine:      {Kind: ShapeSphere, Size: 0.5},
}

// VisualPool owns exactly one mesh and one material per distinct variant.
// Cells only ever hold handles into it. It is never modified after
// NewVisualPool returns, so it may be read from any goroutine.
type VisualPool struct {
	meshes    []Shape
	materials []Material
	variants  map[Variant]Visual
}

func NewVisualPool(palette Palette) (*VisualPool, error) {
	pool := &VisualPool{
		variants: make(map[Variant]Visual, len(Variants)),
	}

	if palette == nil {
		palette = DefaultPalette()
	}
	for name := range palette {
		variant, err := ParseVariant(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidPalette, err)
		}
		// Revealed empty cells draw nothing, so they take no colour
		if variant == Empty {
			return nil, fmt.Errorf("%w: %v has no material", ErrInvalidPalette, variant)
		}
	}

	for _, variant := range Variants {
		var visual Visual

		if variant == Empty {
			pool.variants[variant] = visual
			continue
		}

		if variant == Marked {
			visual.Mesh = pool.variants[Concealed].Mesh
		} else {
			shape := variantShapes[variant]
			if shape.Size <= 0 {
				return nil, fmt.Errorf("%w: %v has size %v", ErrInvalidShape, variant, shape.Size)
			}
			pool.meshes = append(pool.meshes, shape)
			visual.Mesh = MeshHandle(len(pool.meshes))
		}

		material, err := newMaterial(variant, palette)
		if err != nil {
			return nil, err
		}
		pool.materials = append(pool.materials, material)
		visual.Material = MaterialHandle(len(pool.materials))

		pool.variants[variant] = visual
	}

	return pool, nil
}

// merge returns a copy of palette with overrides applied on top
func (palette Palette) merge(overrides Palette) Palette {
	if palette == nil && overrides == nil {
		return nil
	}
	merged := make(Palette, len(palette)+len(overrides))
	for variant, name := range palette {
		merged[variant] = name
	}
	for variant, name := range overrides {
		merged[variant] = name
	}
	return merged
}

func newMaterial(variant Variant, palette Palette) (Material, error) {
	name, ok := palette[variant.String()]
	if !ok {
		name = DefaultPalette()[variant.String()]
	}

	rgba, ok := colornames.Map[name]
	if !ok {
		return Material{}, fmt.Errorf("%w %q for %v", ErrUnknownColor, name, variant)
	}
	return Material{Name: name, Color: rgba}, nil
}

// Visual returns the shared handles for variant
func (pool *VisualPool) Visual(variant Variant) Visual {
	return pool.variants[variant]
}

func (pool *VisualPool) VisualFor(marked bool, revealed *Content) Visual {
	return pool.Visual(VariantFor(marked, revealed))
}

func (pool *VisualPool) Mesh(handle MeshHandle) (Shape, bool) {
	if handle == NoMesh || int(handle) > len(pool.meshes) {
		return Shape{}, false
	}
	return pool.meshes[handle-1], true
}

func (pool *VisualPool) Material(handle MaterialHandle) (Material, bool) {
	if handle == NoMaterial || int(handle) > len(pool.materials) {
		return Material{}, false
	}
	return pool.materials[handle-1], true
}

func (pool *VisualPool) NumMeshes() int {
	return len(pool.meshes)
}

func (pool *VisualPool) NumMaterials() int {
	return len(pool.materials)
}
