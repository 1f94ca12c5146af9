package main

import (
	"fmt"

	"github.com/webdocx/webdocx"
)

// Run executes the links command.
func (c *LinksCmd) Run(deps *Dependencies) error {
	report, err := deps.Research.LinkReport(deps.Ctx, c.URL, !c.External)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", webdocx.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, report)
	return nil
}
