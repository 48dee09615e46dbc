package serve

import (
	"sort"
	"sync"
	"time"

	"github.com/bgraf/trackmap/interaction"
	"github.com/google/uuid"
)

const maxSessions = 1024

// session wraps one controller. Its events are handled one at a time.
type session struct {
	mu       sync.Mutex
	ctrl     *interaction.Controller
	lastUsed time.Time
	// lastSeq is the highest sequence number applied so far.
	lastSeq uint64
}

func (s *session) Handle(e interaction.Event) interaction.Projection {
	p, _ := s.HandleSeq(0, e)
	return p
}

// HandleSeq applies e unless a later event was already applied. Sequence number zero is not ordered.
// It reports false and the current projection for a stale event.
func (s *session) HandleSeq(seq uint64, e interaction.Event) (interaction.Projection, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastUsed = time.Now()

	if seq != 0 {
		if seq <= s.lastSeq {
			return s.ctrl.Projection(), false
		}
		s.lastSeq = seq
	}

	return s.ctrl.Handle(e), true
}

func (s *session) Snapshot() (interaction.State, interaction.Projection) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.ctrl.State(), s.ctrl.Projection()
}

// sessionStore holds the controllers of all open pages. Sessions never share state.
type sessionStore struct {
	mu   sync.Mutex
	opts interaction.Options
	byID map[uuid.UUID]*session
	max  int
}

func newSessionStore(opts interaction.Options) *sessionStore {
	return &sessionStore{
		opts: opts,
		byID: make(map[uuid.UUID]*session),
		max:  maxSessions,
	}
}

// Create opens a session in the idle state. The least recently used sessions are dropped when the
// store is full.
func (s *sessionStore) Create(vp interaction.Viewport) (uuid.UUID, interaction.Projection, error) {
	guid, err := uuid.NewRandom()
	if err != nil {
		return uuid.Nil, interaction.Projection{}, err
	}

	sess := &session{
		ctrl:     interaction.NewController(s.opts, vp),
		lastUsed: time.Now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.byID) >= s.max {
		s.evictLocked(len(s.byID) - s.max + 1)
	}
	s.byID[guid] = sess

	return guid, sess.ctrl.Projection(), nil
}

func (s *sessionStore) Get(guid uuid.UUID) (*session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.byID[guid]
	return sess, ok
}

func (s *sessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.byID)
}

func (s *sessionStore) evictLocked(n int) {
	type entry struct {
		id       uuid.UUID
		lastUsed time.Time
	}

	entries := make([]entry, 0, len(s.byID))
	for id, sess := range s.byID {
		sess.mu.Lock()
		entries = append(entries, entry{id, sess.lastUsed})
		sess.mu.Unlock()
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].lastUsed.Before(entries[j].lastUsed)
	})

	for _, e := range entries[:n] {
		delete(s.byID, e.id)
	}
}
