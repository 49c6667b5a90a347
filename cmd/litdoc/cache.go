package main

import (
	"fmt"

	"github.com/fwojciec/litdoc"
)

// Run executes the cache clear command.
func (c *CacheClearCmd) Run(deps *Dependencies) error {
	if deps.Cache == nil {
		fmt.Fprintf(deps.Stderr, "error: no cache configured. Use --cache or set LITDOC_CACHE.\n")
		return litdoc.Errorf(litdoc.EINVALID, "no cache configured")
	}

	n, err := deps.Cache.ClearCache(deps.Ctx, c.Name)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", litdoc.ErrorMessage(err))
		return err
	}

	if c.Name == "" {
		fmt.Fprintf(deps.Stdout, "Removed %d cached documents\n", n)
	} else {
		fmt.Fprintf(deps.Stdout, "Removed %d cached documents of %q\n", n, c.Name)
	}
	return nil
}
