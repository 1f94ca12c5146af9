// Package webdocx gathers web content for downstream LLM consumption.
// It fetches pages, extracts readable content as markdown, follows
// same-domain links to build bounded multi-page document collections,
// and detects when previously seen content has changed.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, rod/, duckduckgo/).
package webdocx
