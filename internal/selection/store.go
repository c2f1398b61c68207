package selection

// Store holds the most recent Keyed selection.
//
// It is owned by the top-level UI model and only touched from its update
// loop, so it carries no lock.
type Store struct {
	latest Keyed
	set    bool
	gen    int
}

// NewStore returns an empty store.
func NewStore() *Store { return &Store{} }

// Set replaces the cached selection. Results are never merged.
func (s *Store) Set(k Keyed) {
	s.latest = k
	s.set = true
	s.gen++
}

// Latest returns the cached selection and whether one has been computed.
func (s *Store) Latest() (Keyed, bool) {
	if s == nil || !s.set {
		return Keyed{}, false
	}
	return s.latest, true
}

// Generation increments on every Set.
func (s *Store) Generation() int {
	if s == nil {
		return 0
	}
	return s.gen
}

// Clear drops the cached selection.
func (s *Store) Clear() {
	s.latest = Keyed{}
	s.set = false
}
