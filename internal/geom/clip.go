package geom

import (
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// ClipKind enumerates the clip boundary variants the extractor recognizes.
// The set is closed: anything else is reported as unsupported, never as an
// empty polygon.
type ClipKind int

const (
	ClipKindUnsupported ClipKind = iota
	ClipKindPolyline             // lightweight polyline, vertices stored inline
	ClipKind2DPolyline           // legacy polyline, planar vertex sub-records
	ClipKind3DPolyline           // 3D polyline, vertex sub-records
)

// String returns the kind name.
func (k ClipKind) String() string {
	switch k {
	case ClipKindPolyline:
		return "Polyline"
	case ClipKind2DPolyline:
		return "2DPolyline"
	case ClipKind3DPolyline:
		return "3DPolyline"
	default:
		return "Unsupported"
	}
}

// ClipEntity is a clip boundary as stored in the scene. Exactly one vertex
// representation applies per kind: inline Vertices for ClipKindPolyline,
// VertexRefs sub-records for the two polyline-record variants.
type ClipEntity struct {
	Kind       ClipKind
	RawKind    string      // stored entity kind tag, reported when unsupported
	Vertices   []v3.Vec    // inline vertices (ClipKindPolyline)
	VertexRefs []EntityRef // vertex sub-record references (2D/3D polylines)
	Elevation  float64     // plane elevation applied to legacy 2D vertices
}

// readClipVertices resolves the clip boundary entity and reads its vertices
// in stored order. Vertex order is never changed and duplicates are never
// removed; downstream winding depends on the stored order.
func readClipVertices(session ReadSession, ref EntityRef) ([]v3.Vec, error) {
	entity, err := session.ResolveClip(ref)
	if err != nil {
		return nil, &ErrTransformFailure{Op: "resolve clip boundary", Err: err}
	}

	switch entity.Kind {
	case ClipKindPolyline:
		verts := make([]v3.Vec, len(entity.Vertices))
		copy(verts, entity.Vertices)
		return verts, nil

	case ClipKind2DPolyline:
		verts, err := readVertexRecords(session, entity.VertexRefs)
		if err != nil {
			return nil, err
		}
		// Legacy 2D vertices are planar; the polyline's elevation
		// supplies the Z coordinate.
		for i := range verts {
			verts[i].Z = entity.Elevation
		}
		return verts, nil

	case ClipKind3DPolyline:
		return readVertexRecords(session, entity.VertexRefs)

	default:
		return nil, &ErrUnsupportedGeometry{Kind: entity.RawKind}
	}
}

// readVertexRecords reads vertex sub-records in stored order.
func readVertexRecords(session ReadSession, refs []EntityRef) ([]v3.Vec, error) {
	verts := make([]v3.Vec, 0, len(refs))
	for _, ref := range refs {
		v, err := session.ReadVertex(ref)
		if err != nil {
			return nil, &ErrTransformFailure{Op: "read clip vertex record", Err: err}
		}
		verts = append(verts, v)
	}
	return verts, nil
}
