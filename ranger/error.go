package ranger

import "github.com/xy-planning-network/jobtracker"

var (
	ErrBadConfig = jobtracker.ErrBadConfig
)
