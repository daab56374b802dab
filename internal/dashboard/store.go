package dashboard

import "sync"

// Store is an in-memory Renderer: it keeps the latest rendered view, the
// display state and the search-field text for the HTTP surface to serve.
type Store struct {
	mu         sync.RWMutex
	state      DisplayState
	view       View
	hasView    bool
	searchText string
}

// NewStore creates a store in the Loading state.
func NewStore() *Store {
	return &Store{state: StateLoading}
}

// ShowLoading marks a search or fetch as in flight. The last rendered view is
// kept so the page's structural chrome stays visible.
func (s *Store) ShowLoading() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateLoading
}

// ShowContent publishes a freshly rendered view.
func (s *Store) ShowContent(view View) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateContent
	s.view = view
	s.hasView = true
	s.searchText = view.Current.Location
}

// ShowNoResults suppresses the weather panels and clears the search field.
func (s *Store) ShowNoResults() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateNoResults
	s.searchText = ""
}

// ShowError suppresses the weather panels; a retry affordance stays available.
func (s *Store) ShowError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateError
}

// Snapshot returns the display state, the search-field text, and the latest
// view. The view pointer is nil while no render has happened or while the
// current state suppresses the weather panels.
func (s *Store) Snapshot() (DisplayState, string, *View) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.hasView || s.state == StateNoResults || s.state == StateError {
		return s.state, s.searchText, nil
	}
	view := s.view
	return s.state, s.searchText, &view
}
