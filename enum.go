package jobtracker

// Enumerable is the interface implemented by types that can only be represented by enumerable, constant values.
//
// Adding a new constant value ought to be coordinated with the backend accepting the same values.
type Enumerable interface {
	String() string
	Valid() error
}
