package geom

import (
	"errors"
	"sync"
	"testing"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// TestSceneStoreLookups checks reference resolution and missing-entity
// reporting.
func TestSceneStoreLookups(t *testing.T) {
	store := NewSceneStore()
	vref := store.AddVertex(v3.Vec{X: 1, Y: 2, Z: 3})
	cref := store.AddClip(&ClipEntity{Kind: ClipKindPolyline})

	session, err := store.OpenSession()
	if err != nil {
		t.Fatalf("OpenSession failed: %v", err)
	}
	defer session.Close()

	v, err := session.ReadVertex(vref)
	if err != nil {
		t.Fatalf("ReadVertex failed: %v", err)
	}
	if (v != v3.Vec{X: 1, Y: 2, Z: 3}) {
		t.Errorf("Expected stored vertex back, got %v", v)
	}

	if _, err := session.ResolveClip(cref); err != nil {
		t.Errorf("ResolveClip failed: %v", err)
	}

	var missing *ErrMissingEntity
	if _, err := session.ResolveClip(1234); !errors.As(err, &missing) {
		t.Errorf("Expected ErrMissingEntity, got %v", err)
	}
	if _, err := session.ReadVertex(cref); !errors.As(err, &missing) {
		t.Errorf("Expected ErrMissingEntity for clip ref read as vertex, got %v", err)
	}
}

// TestSessionUseAfterClose checks that a closed session refuses reads.
func TestSessionUseAfterClose(t *testing.T) {
	store := NewSceneStore()
	ref := store.AddVertex(v3.Vec{X: 1})

	session, err := store.OpenSession()
	if err != nil {
		t.Fatalf("OpenSession failed: %v", err)
	}
	if err := session.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	if _, err := session.ReadVertex(ref); !errors.Is(err, ErrSessionClosed) {
		t.Errorf("Expected ErrSessionClosed, got %v", err)
	}
	if _, err := session.ResolveClip(ref); !errors.Is(err, ErrSessionClosed) {
		t.Errorf("Expected ErrSessionClosed, got %v", err)
	}
}

// TestConcurrentSessions checks that independent sessions can read the
// store concurrently.
func TestConcurrentSessions(t *testing.T) {
	store := NewSceneStore()
	ref := store.AddClip(&ClipEntity{
		Kind:     ClipKindPolyline,
		Vertices: []v3.Vec{{X: 1}, {X: 2}, {X: 3}},
	})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				poly, err := ExtractFootprint(store, clippedViewport(ref), nil)
				if err != nil {
					t.Errorf("ExtractFootprint failed: %v", err)
					return
				}
				if len(poly) != 3 {
					t.Errorf("Expected 3 vertices, got %d", len(poly))
					return
				}
			}
		}()
	}
	wg.Wait()
}
