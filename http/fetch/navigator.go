package fetch

// A Navigator exposes the navigation context a Client runs within.
type Navigator interface {
	// Path is the path of the page currently displayed.
	Path() string

	// Assign performs a full-page navigation to path.
	Assign(path string)
}
