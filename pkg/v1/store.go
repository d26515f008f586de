package viewport

import (
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/beetlebugorg/viewport/internal/geom"
)

// ReadSession is a short-lived read handle on the scene store. Sessions a
// caller passes to the extractor are borrowed and never closed by it;
// sessions the extractor opens itself are released before it returns.
type ReadSession = geom.ReadSession

// ClipKind enumerates the clip boundary variants the extractor recognizes.
type ClipKind = geom.ClipKind

const (
	ClipKindUnsupported = geom.ClipKindUnsupported
	ClipKindPolyline    = geom.ClipKindPolyline
	ClipKind2DPolyline  = geom.ClipKind2DPolyline
	ClipKind3DPolyline  = geom.ClipKind3DPolyline
)

// Clip describes a clip boundary to be stored in the scene.
type Clip struct {
	// Kind selects the boundary variant.
	Kind ClipKind

	// RawKind is the stored entity kind tag. It is reported verbatim when
	// the extractor encounters an unsupported kind.
	RawKind string

	// Vertices are the boundary vertices in order. For the legacy 2D
	// polyline variant the Z coordinate of each vertex is replaced by
	// Elevation at read time.
	Vertices []v3.Vec

	// Elevation is the plane elevation for the legacy 2D polyline variant.
	Elevation float64
}

// Store is an in-memory scene object store holding clip boundary entities.
// It stands in for the document system's object database and is also the
// target of the snapshot loader. Safe for concurrent readers.
type Store struct {
	scene *geom.SceneStore
}

// NewStore returns an empty scene store.
func NewStore() *Store {
	return &Store{scene: geom.NewSceneStore()}
}

// AddClip stores a clip boundary and returns its entity reference. The two
// polyline-record variants get one vertex sub-record per vertex, matching
// how legacy documents store them.
func (s *Store) AddClip(c Clip) EntityRef {
	entity := &geom.ClipEntity{
		Kind:      c.Kind,
		RawKind:   c.RawKind,
		Elevation: c.Elevation,
	}
	switch c.Kind {
	case ClipKind2DPolyline, ClipKind3DPolyline:
		refs := make([]EntityRef, len(c.Vertices))
		for i, v := range c.Vertices {
			refs[i] = s.scene.AddVertex(v)
		}
		entity.VertexRefs = refs
	default:
		verts := make([]v3.Vec, len(c.Vertices))
		copy(verts, c.Vertices)
		entity.Vertices = verts
	}
	return s.scene.AddClip(entity)
}

// OpenSession opens a read session over the store. The caller owns the
// session and must close it.
func (s *Store) OpenSession() (ReadSession, error) {
	return s.scene.OpenSession()
}

// opener returns the underlying session opener, or nil for a nil store.
func (s *Store) opener() geom.SessionOpener {
	if s == nil {
		return nil
	}
	return s.scene
}
