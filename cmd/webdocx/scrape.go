package main

import (
	"fmt"

	"github.com/webdocx/webdocx"
)

// Run executes the scrape command.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	result, err := deps.Pipeline.Fetch(deps.Ctx, c.URL, c.Retries)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", webdocx.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, result.Page.Content)
	return nil
}
