package geom

import (
	"sync"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// EntityRef identifies an object in the scene store. The zero value is
// "no reference".
type EntityRef uint64

// ReadSession is a short-lived read handle on the scene's object store.
// Sessions supplied by a caller are borrowed and never closed by the
// engine; sessions the engine opens itself are closed before the call that
// opened them returns.
type ReadSession interface {
	// ResolveClip fetches a clip boundary entity by reference.
	ResolveClip(ref EntityRef) (*ClipEntity, error)

	// ReadVertex fetches a vertex sub-record by reference.
	ReadVertex(ref EntityRef) (v3.Vec, error)

	// Close releases the session. Reads after Close fail.
	Close() error
}

// SessionOpener supplies fresh read sessions on demand.
type SessionOpener interface {
	OpenSession() (ReadSession, error)
}

// SceneStore is an in-memory object store holding clip boundary entities
// and their vertex sub-records. It is safe for concurrent readers; writes
// are expected during setup only.
type SceneStore struct {
	mu    sync.RWMutex
	clips map[EntityRef]*ClipEntity
	verts map[EntityRef]v3.Vec
	next  EntityRef
}

// NewSceneStore returns an empty scene store.
func NewSceneStore() *SceneStore {
	return &SceneStore{
		clips: make(map[EntityRef]*ClipEntity),
		verts: make(map[EntityRef]v3.Vec),
	}
}

// AddVertex stores a vertex sub-record and returns its reference.
func (s *SceneStore) AddVertex(v v3.Vec) EntityRef {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	s.verts[s.next] = v
	return s.next
}

// AddClip stores a clip boundary entity and returns its reference.
func (s *SceneStore) AddClip(e *ClipEntity) EntityRef {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	s.clips[s.next] = e
	return s.next
}

// OpenSession opens a read session over the store.
func (s *SceneStore) OpenSession() (ReadSession, error) {
	return &sceneSession{store: s}, nil
}

// sceneSession is a ReadSession over a SceneStore. Tracks closed state so
// use-after-close is reported instead of silently served.
type sceneSession struct {
	store  *SceneStore
	mu     sync.Mutex
	closed bool
}

func (ss *sceneSession) checkOpen() error {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	if ss.closed {
		return ErrSessionClosed
	}
	return nil
}

func (ss *sceneSession) ResolveClip(ref EntityRef) (*ClipEntity, error) {
	if err := ss.checkOpen(); err != nil {
		return nil, err
	}
	ss.store.mu.RLock()
	defer ss.store.mu.RUnlock()
	entity, ok := ss.store.clips[ref]
	if !ok {
		return nil, &ErrMissingEntity{Ref: ref}
	}
	return entity, nil
}

func (ss *sceneSession) ReadVertex(ref EntityRef) (v3.Vec, error) {
	if err := ss.checkOpen(); err != nil {
		return v3.Vec{}, err
	}
	ss.store.mu.RLock()
	defer ss.store.mu.RUnlock()
	v, ok := ss.store.verts[ref]
	if !ok {
		return v3.Vec{}, &ErrMissingEntity{Ref: ref}
	}
	return v, nil
}

func (ss *sceneSession) Close() error {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	ss.closed = true
	return nil
}
