package nav

import (
	"fmt"
	"sync"

	"github.com/xy-planning-network/jobtracker/http/fetch"
	"github.com/xy-planning-network/jobtracker/http/router"
	"github.com/xy-planning-network/jobtracker/logger"
)

var (
	_ fetch.Navigator = (*History)(nil)
	_ fetch.Navigator = (*Static)(nil)
)

// History is a fetch.Navigator over a router.Table.
// History is safe for concurrent use.
type History struct {
	logger logger.Logger
	table  router.Table

	mu      sync.RWMutex
	entries []router.Resolution
	reloads int
}

// NewHistory constructs a *History starting on start.
//
// NewHistory returns jobtracker.ErrNotValid when the table is malformed
// and jobtracker.ErrNotExist when start matches no route.
func NewHistory(table router.Table, start string, log logger.Logger) (*History, error) {
	if err := table.Validate(); err != nil {
		return nil, err
	}

	if log == nil {
		log = logger.New()
	}

	h := &History{logger: log, table: table}
	if err := h.Navigate(start); err != nil {
		return nil, err
	}

	return h, nil
}

// Navigate resolves path through the route table and makes the result the current page.
//
// A path matching no route leaves the current page untouched and returns jobtracker.ErrNotExist.
func (h *History) Navigate(path string) error {
	res, err := h.table.Resolve(path)
	if err != nil {
		return fmt.Errorf("cannot navigate to %s: %w", path, err)
	}

	h.mu.Lock()
	h.entries = append(h.entries, res)
	h.mu.Unlock()

	if res.Redirected {
		h.logger.Debug(fmt.Sprintf("redirected %s to %s", path, res.Path), nil)
	}

	return nil
}

// Assign performs a full page navigation to path.
//
// Assign never fails: a path matching no route is logged and leaves the current page untouched,
// as a browser would land on a not found page.
func (h *History) Assign(path string) {
	h.mu.Lock()
	h.reloads++
	h.mu.Unlock()

	if err := h.Navigate(path); err != nil {
		h.logger.Warn(err.Error(), &logger.LogContext{Error: err})
	}
}

// Back returns to the previous page, reporting whether there was one.
func (h *History) Back() bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.entries) < 2 {
		return false
	}

	h.entries = h.entries[:len(h.entries)-1]
	return true
}

// Path is the path of the current page.
func (h *History) Path() string { return h.current().Path }

// View is the View of the current page.
func (h *History) View() router.View { return h.current().View }

// Reloads is the number of full page navigations Assign has performed.
func (h *History) Reloads() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.reloads
}

func (h *History) current() router.Resolution {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if len(h.entries) == 0 {
		return router.Resolution{}
	}

	return h.entries[len(h.entries)-1]
}
