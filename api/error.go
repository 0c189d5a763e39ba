package api

import (
	"fmt"

	"github.com/xy-planning-network/jobtracker"
)

var (
	ErrRedirected = fmt.Errorf("%w: redirected to login", jobtracker.ErrUnauthorized)
)
