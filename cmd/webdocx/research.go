package main

import (
	"fmt"

	"github.com/webdocx/webdocx"
	"github.com/webdocx/webdocx/research"
)

// Run executes the research command.
func (c *ResearchCmd) Run(deps *Dependencies) error {
	report, err := deps.Research.DeepDive(deps.Ctx, c.Topic, c.Depth)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", webdocx.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, report)
	return nil
}

// Run executes the compare command.
func (c *CompareCmd) Run(deps *Dependencies) error {
	report, err := deps.Research.CompareSources(deps.Ctx, c.Topic, c.Sources)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", webdocx.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, report)
	return nil
}

// Run executes the related command.
func (c *RelatedCmd) Run(deps *Dependencies) error {
	report, err := deps.Research.FindRelated(deps.Ctx, c.URL, c.Limit)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", webdocx.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, report)
	return nil
}

// Run executes the summarize command.
func (c *SummarizeCmd) Run(deps *Dependencies) error {
	summary, err := deps.Research.SummarizePage(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", webdocx.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, research.SummaryMarkdown(summary))
	return nil
}
