package main

import (
	"fmt"

	"github.com/webdocx/webdocx"
)

// Run executes the watch command. The previous digest comes from the
// digest store; the current one is saved back so the next invocation
// compares against this run.
func (c *WatchCmd) Run(deps *Dependencies) error {
	previous, err := deps.Digests.Digest(deps.Ctx, c.URL)
	if err != nil && webdocx.ErrorCode(err) != webdocx.ENOTFOUND {
		fmt.Fprintf(deps.Stderr, "error: %s\n", webdocx.ErrorMessage(err))
		return err
	}

	report, err := deps.Detector.Check(deps.Ctx, c.URL, previous)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", webdocx.ErrorMessage(err))
		return err
	}

	if err := deps.Digests.SaveDigest(deps.Ctx, c.URL, report.Digest); err != nil {
		fmt.Fprintf(deps.Stderr, "error saving digest: %s\n", webdocx.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, report.Markdown())
	return nil
}
