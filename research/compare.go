package research

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/webdocx/webdocx"
)

// topTermCount is how many shared terms the comparison surfaces.
const topTermCount = 10

// compareExcerptLen caps the per-source excerpt in comparison reports.
const compareExcerptLen = 500

var wordPattern = regexp.MustCompile(`\b[a-z]{4,}\b`)

// CompareSources fetches up to MaxSources URLs concurrently and builds a
// comparison report: terms shared by every source, then an excerpt from
// each. At least two sources are required; beyond MaxSources the extra
// URLs are dropped.
func (s *Service) CompareSources(ctx context.Context, topic string, sources []string) (string, error) {
	if len(sources) < 2 {
		return "", webdocx.Errorf(webdocx.EINVALID, "need at least 2 sources to compare, got %d", len(sources))
	}
	if len(sources) > MaxSources {
		sources = sources[:MaxSources]
	}

	results := make([]webdocx.SearchResult, len(sources))
	for i, url := range sources {
		results[i] = webdocx.SearchResult{URL: url, Title: url}
	}
	docs := s.fetchAll(ctx, results)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("# Source Comparison: %s\n\n", topic))
	sb.WriteString("## Sources\n\n")
	for i, d := range docs {
		status := "ok"
		if d.Err != nil {
			status = "failed"
		}
		sb.WriteString(fmt.Sprintf("%d. [%s] [%s](%s)\n", i+1, status, d.Title, d.URL))
	}

	sb.WriteString("\n## Content Analysis\n")
	writeCommonTerms(&sb, docs)

	sb.WriteString("\n### Source-Specific Content\n")
	for i, d := range docs {
		sb.WriteString(fmt.Sprintf("\n#### Source %d: %s\n\n", i+1, d.Title))
		if d.Err != nil {
			sb.WriteString("*Failed to fetch*\n")
			continue
		}
		excerpt := truncate(strings.TrimSpace(d.Content), compareExcerptLen)
		sb.WriteString(excerpt)
		sb.WriteString("...\n")
	}

	return sb.String(), nil
}

// writeCommonTerms appends the terms present in every fetched source,
// ordered by total mention count.
func writeCommonTerms(sb *strings.Builder, docs []sourceDoc) {
	var wordSets [][]string
	for _, d := range docs {
		if d.Err != nil {
			continue
		}
		wordSets = append(wordSets, wordPattern.FindAllString(strings.ToLower(d.Content), -1))
	}
	if len(wordSets) == 0 {
		return
	}

	common := make(map[string]bool)
	for _, w := range wordSets[0] {
		common[w] = true
	}
	for _, words := range wordSets[1:] {
		present := make(map[string]bool)
		for _, w := range words {
			if common[w] {
				present[w] = true
			}
		}
		common = present
	}
	if len(common) == 0 {
		return
	}

	freq := make(map[string]int)
	for _, words := range wordSets {
		for _, w := range words {
			if common[w] {
				freq[w]++
			}
		}
	}

	terms := make([]string, 0, len(freq))
	for t := range freq {
		terms = append(terms, t)
	}
	sort.Slice(terms, func(i, j int) bool {
		if freq[terms[i]] != freq[terms[j]] {
			return freq[terms[i]] > freq[terms[j]]
		}
		return terms[i] < terms[j]
	})
	if len(terms) > topTermCount {
		terms = terms[:topTermCount]
	}

	sb.WriteString("\n### Common Topics\n\n")
	for _, t := range terms {
		sb.WriteString(fmt.Sprintf("- **%s**: mentioned %d times across sources\n", t, freq[t]))
	}
}
