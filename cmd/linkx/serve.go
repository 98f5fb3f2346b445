package main

import (
	"fmt"

	lxhttp "github.com/fwojciec/linkx/http"
)

// Run executes the serve command. It blocks until the context is canceled.
func (c *ServeCmd) Run(deps *Dependencies) error {
	server := lxhttp.NewServer(deps.View, deps.Logger)
	server.Addr = c.Addr

	if err := server.Open(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: cannot listen on %s: %v\n", c.Addr, err)
		return err
	}
	fmt.Fprintf(deps.Stdout, "Serving link extractor at %s\n", server.URL())

	<-deps.Ctx.Done()

	return server.Close()
}
