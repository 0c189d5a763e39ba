package shell

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/xy-planning-network/jobtracker"
)

const (
	clientDistPath = "/client/dist"
	devServer      = "http://localhost:8080"
)

// Env encloses some string representing an environment.
// It returns "env" as the name of the function for convenient passing to a template.FuncMap
// and returns a function returning the enclosed value when called.
func Env(e jobtracker.Environment) (string, func() string) {
	return "env", func() string { return e.String() }
}

// Nonce returns "nonce" as the name of the function for convenient passing to a template.FuncMap
// and returns a function generating a uuid.
func Nonce() (string, func() string) {
	return "nonce", func() string { return uuid.NewString() }
}

// AssetURI encloses the environment and the client's distribution directory
// so when called executing a template, emits a valid URI for bundled assets.
// It returns "assetURI" as the name of the function for convenient passing to a template.FuncMap.
//
// Outside of development, hashed files bundled by Vite are preferred:
// index.js matches index-1a2b3c.js in dist.
// A nil dist is the working directory.
func AssetURI(env jobtracker.Environment, dist fs.FS) (string, func(string) string) {
	if dist == nil {
		dist = os.DirFS(".")
	}

	return "assetURI", func(assetPath string) string {
		switch {
		case env.IsTesting():
			return ""

		case env.IsDevelopment():
			return fmt.Sprintf("%s%s/%s", devServer, clientDistPath, assetPath)

		default:
			ext := filepath.Ext(assetPath)
			glob := fmt.Sprintf("%s-*%s", strings.TrimSuffix(assetPath, ext), ext)
			matches, err := fs.Glob(dist, glob)
			if errors.Is(err, path.ErrBadPattern) || len(matches) == 0 {
				return fmt.Sprintf("%s/%s", clientDistPath, assetPath)
			}

			return fmt.Sprintf("%s/%s", clientDistPath, matches[0])
		}
	}
}
