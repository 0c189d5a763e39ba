/*
web serves the job tracker's single page application.

Configuration is read from environment variables and a .env file; cf. package ranger.
*/
package main

import (
	"os"

	"github.com/xy-planning-network/jobtracker/ranger"
)

func main() {
	cfg := ranger.LoadConfig()
	rng, err := ranger.New(cfg)
	if err != nil {
		cfg.Logger().Fatal(err.Error(), nil)
		os.Exit(1)
	}

	rng.EmitLogger().Info(rng.String(), nil)
	if err := rng.Guide(); err != nil {
		rng.EmitLogger().Fatal(err.Error(), nil)
		os.Exit(1)
	}
}
