/*
Package shell serves the entry document of the job tracker's single page application.

Every View in the route table renders the same document;
the client reads data-view on the #app element to decide which page to mount.

Templates are looked up first in the filesystem provided with WithFS,
or the working directory, then in those embedded under tmpl/.
A project overrides the default document by placing its own tmpl/index.tmpl.

	p := shell.NewParser(
		shell.WithFn(shell.Env(env)),
		shell.WithFn(shell.Nonce()),
		shell.WithFn(shell.AssetURI(env, os.DirFS(distDir))),
	)
	s, err := shell.New(p, log, apiURL, "")
*/
package shell
