package viewport

import (
	"errors"
	"strings"
	"testing"
)

const sampleSnapshot = `
viewports:
  - name: plan
    center: [0, 0]
    width: 10
    height: 10
    view_center: [0, 0]
    target: [0, 0, 0]
    direction: [0, 0, 1]
    custom_scale: 1
  - name: detail
    center: [100, 50]
    width: 4
    height: 4
    view_center: [0, 0]
    target: [0, 0, 0]
    direction: [0, 0, 1]
    custom_scale: 0.5
    clip: boundary-a
clips:
  - name: boundary-a
    kind: polyline
    vertices:
      - [0, 0, 0]
      - [4, 0, 0]
      - [2, 3, 0]
`

func TestParseSnapshot(t *testing.T) {
	snap, err := ParseSnapshot(strings.NewReader(sampleSnapshot), LoadOptions{})
	if err != nil {
		t.Fatalf("ParseSnapshot failed: %v", err)
	}

	if len(snap.Viewports) != 2 {
		t.Fatalf("Expected 2 viewports, got %d", len(snap.Viewports))
	}
	if snap.Viewports[0].Name != "plan" {
		t.Errorf("Expected first viewport plan, got %s", snap.Viewports[0].Name)
	}

	detail := snap.Viewports[1].Viewport
	if !detail.Clipped || detail.ClipRef == 0 {
		t.Fatal("Expected detail viewport to carry a clip reference")
	}
	if detail.CustomScale != 0.5 {
		t.Errorf("Expected custom scale 0.5, got %g", detail.CustomScale)
	}

	// The loaded store must serve extraction.
	ex := NewExtractor(snap.Store)
	fp, err := ex.Extract(detail)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if fp.VertexCount() != 3 {
		t.Errorf("Expected 3 clip vertices, got %d", fp.VertexCount())
	}
}

func TestParseSnapshotInvalidViewport(t *testing.T) {
	const bad = `
viewports:
  - name: broken
    width: 10
    height: 10
    direction: [0, 0, 1]
    custom_scale: 0
`
	if _, err := ParseSnapshot(strings.NewReader(bad), LoadOptions{}); err == nil {
		t.Fatal("Expected load failure for zero custom scale")
	}

	snap, err := ParseSnapshot(strings.NewReader(bad), LoadOptions{SkipErrors: true})
	if err != nil {
		t.Fatalf("ParseSnapshot with SkipErrors failed: %v", err)
	}
	if len(snap.Viewports) != 0 {
		t.Errorf("Expected no loaded viewports, got %d", len(snap.Viewports))
	}
	skipErr, ok := snap.Skipped["broken"]
	if !ok {
		t.Fatal("Expected broken viewport recorded as skipped")
	}
	var invalid *ErrInvalidArgument
	if !errors.As(skipErr, &invalid) {
		t.Errorf("Expected ErrInvalidArgument, got %v", skipErr)
	}
}

func TestParseSnapshotUnknownClipKind(t *testing.T) {
	const spline = `
viewports:
  - name: clipped
    width: 10
    height: 10
    direction: [0, 0, 1]
    custom_scale: 1
    clip: odd
clips:
  - name: odd
    kind: spline
`
	snap, err := ParseSnapshot(strings.NewReader(spline), LoadOptions{})
	if err != nil {
		t.Fatalf("ParseSnapshot failed: %v", err)
	}

	// The loader keeps the entity; the extractor names it when asked.
	ex := NewExtractor(snap.Store)
	_, err = ex.Extract(snap.Viewports[0].Viewport)
	var unsupported *ErrUnsupportedGeometry
	if !errors.As(err, &unsupported) {
		t.Fatalf("Expected ErrUnsupportedGeometry, got %v", err)
	}
	if unsupported.Kind != "spline" {
		t.Errorf("Expected kind spline, got %q", unsupported.Kind)
	}
}

func TestParseSnapshotBadVector(t *testing.T) {
	const bad = `
viewports:
  - name: short
    center: [1]
    width: 10
    height: 10
    direction: [0, 0, 1]
    custom_scale: 1
`
	if _, err := ParseSnapshot(strings.NewReader(bad), LoadOptions{}); err == nil {
		t.Fatal("Expected load failure for malformed coordinate list")
	}
}

func TestParseSnapshotUnknownClipName(t *testing.T) {
	const dangling = `
viewports:
  - name: orphan
    width: 10
    height: 10
    direction: [0, 0, 1]
    custom_scale: 1
    clip: nobody
`
	if _, err := ParseSnapshot(strings.NewReader(dangling), LoadOptions{}); err == nil {
		t.Fatal("Expected load failure for unknown clip name")
	}
}
