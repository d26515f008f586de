package viewport

import (
	"fmt"
	"io"
	"os"
	"strings"

	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"gopkg.in/yaml.v3"
)

// LoadOptions controls snapshot loading behavior.
type LoadOptions struct {
	// SkipErrors skips viewport entries that fail validation instead of
	// failing the whole load. Skipped entries are reported in
	// Snapshot.Skipped.
	SkipErrors bool
}

// Snapshot is a loaded set of viewport descriptors plus the scene store
// holding their clip boundaries.
type Snapshot struct {
	Store     *Store
	Viewports []NamedViewport

	// Skipped lists the names of entries dropped under SkipErrors,
	// paired with the validation error.
	Skipped map[string]error
}

// NamedViewport pairs a viewport snapshot with its name in the file.
type NamedViewport struct {
	Name     string
	Viewport Viewport
}

// viewportYAML is the on-disk shape of one viewport entry.
type viewportYAML struct {
	Name        string    `yaml:"name"`
	Center      []float64 `yaml:"center"`
	Width       float64   `yaml:"width"`
	Height      float64   `yaml:"height"`
	ViewCenter  []float64 `yaml:"view_center"`
	Target      []float64 `yaml:"target"`
	Direction   []float64 `yaml:"direction"`
	Twist       float64   `yaml:"twist"`
	CustomScale float64   `yaml:"custom_scale"`
	Clip        string    `yaml:"clip"`
}

// clipYAML is the on-disk shape of one clip boundary entry.
type clipYAML struct {
	Name      string      `yaml:"name"`
	Kind      string      `yaml:"kind"`
	Elevation float64     `yaml:"elevation"`
	Vertices  [][]float64 `yaml:"vertices"`
}

// snapshotYAML is the on-disk shape of a snapshot file.
type snapshotYAML struct {
	Viewports []viewportYAML `yaml:"viewports"`
	Clips     []clipYAML     `yaml:"clips"`
}

// LoadSnapshot reads a YAML snapshot file of viewport descriptors and clip
// boundaries.
//
// Example snapshot:
//
//	viewports:
//	  - name: plan
//	    center: [0, 0]
//	    width: 10
//	    height: 10
//	    view_center: [0, 0]
//	    target: [0, 0, 0]
//	    direction: [0, 0, 1]
//	    custom_scale: 1
//	    clip: boundary-a
//	clips:
//	  - name: boundary-a
//	    kind: polyline
//	    vertices:
//	      - [0, 0, 0]
//	      - [4, 0, 0]
//	      - [2, 3, 0]
func LoadSnapshot(path string, opts LoadOptions) (*Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open snapshot: %w", err)
	}
	defer f.Close()
	return ParseSnapshot(f, opts)
}

// ParseSnapshot reads a YAML snapshot from a reader. See LoadSnapshot for
// the format.
func ParseSnapshot(r io.Reader, opts LoadOptions) (*Snapshot, error) {
	var file snapshotYAML
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}

	snap := &Snapshot{
		Store:   NewStore(),
		Skipped: make(map[string]error),
	}

	// Clips first so viewports can reference them by name.
	clipRefs := make(map[string]EntityRef, len(file.Clips))
	for _, c := range file.Clips {
		verts := make([]v3.Vec, 0, len(c.Vertices))
		for i, coords := range c.Vertices {
			v, err := vec3FromYAML(coords)
			if err != nil {
				return nil, fmt.Errorf("clip %q vertex %d: %w", c.Name, i, err)
			}
			verts = append(verts, v)
		}
		clipRefs[c.Name] = snap.Store.AddClip(Clip{
			Kind:      clipKindFromYAML(c.Kind),
			RawKind:   c.Kind,
			Vertices:  verts,
			Elevation: c.Elevation,
		})
	}

	for i, entry := range file.Viewports {
		name := entry.Name
		if name == "" {
			name = fmt.Sprintf("viewport-%d", i)
		}
		vp, err := viewportFromYAML(entry, clipRefs)
		if err == nil {
			err = vp.Validate()
		}
		if err != nil {
			if opts.SkipErrors {
				snap.Skipped[name] = err
				continue
			}
			return nil, fmt.Errorf("viewport %q: %w", name, err)
		}
		snap.Viewports = append(snap.Viewports, NamedViewport{Name: name, Viewport: vp})
	}

	return snap, nil
}

func viewportFromYAML(entry viewportYAML, clipRefs map[string]EntityRef) (Viewport, error) {
	center, err := vec2FromYAML(entry.Center)
	if err != nil {
		return Viewport{}, fmt.Errorf("center: %w", err)
	}
	viewCenter, err := vec2FromYAML(entry.ViewCenter)
	if err != nil {
		return Viewport{}, fmt.Errorf("view_center: %w", err)
	}
	target, err := vec3FromYAML(entry.Target)
	if err != nil {
		return Viewport{}, fmt.Errorf("target: %w", err)
	}
	direction, err := vec3FromYAML(entry.Direction)
	if err != nil {
		return Viewport{}, fmt.Errorf("direction: %w", err)
	}

	vp := Viewport{
		Center:      center,
		Width:       entry.Width,
		Height:      entry.Height,
		ViewCenter:  viewCenter,
		Target:      target,
		Direction:   direction,
		Twist:       entry.Twist,
		CustomScale: entry.CustomScale,
	}
	if entry.Clip != "" {
		ref, ok := clipRefs[entry.Clip]
		if !ok {
			return Viewport{}, fmt.Errorf("unknown clip %q", entry.Clip)
		}
		vp.Clipped = true
		vp.ClipRef = ref
	}
	return vp, nil
}

// clipKindFromYAML maps a stored kind tag to a ClipKind. Unknown tags load
// as unsupported so the extractor reports them by name instead of the
// loader rejecting the file.
func clipKindFromYAML(kind string) ClipKind {
	switch strings.ToLower(kind) {
	case "polyline":
		return ClipKindPolyline
	case "2dpolyline":
		return ClipKind2DPolyline
	case "3dpolyline":
		return ClipKind3DPolyline
	default:
		return ClipKindUnsupported
	}
}

func vec2FromYAML(coords []float64) (v2.Vec, error) {
	if len(coords) == 0 {
		return v2.Vec{}, nil
	}
	if len(coords) != 2 {
		return v2.Vec{}, fmt.Errorf("expected 2 coordinates, got %d", len(coords))
	}
	return v2.Vec{X: coords[0], Y: coords[1]}, nil
}

func vec3FromYAML(coords []float64) (v3.Vec, error) {
	if len(coords) == 0 {
		return v3.Vec{}, nil
	}
	if len(coords) != 3 {
		return v3.Vec{}, fmt.Errorf("expected 3 coordinates, got %d", len(coords))
	}
	return v3.Vec{X: coords[0], Y: coords[1], Z: coords[2]}, nil
}
