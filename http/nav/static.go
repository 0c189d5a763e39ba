package nav

import "sync"

// Static is a fetch.Navigator that never leaves its path.
// Static records every path it is assigned.
type Static struct {
	path string

	mu       sync.Mutex
	assigned []string
}

// NewStatic constructs a *Static on path.
func NewStatic(path string) *Static { return &Static{path: path} }

func (s *Static) Path() string { return s.path }

func (s *Static) Assign(path string) {
	s.mu.Lock()
	s.assigned = append(s.assigned, path)
	s.mu.Unlock()
}

// Assigned returns the paths passed to Assign, oldest first.
func (s *Static) Assigned() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.assigned...)
}
