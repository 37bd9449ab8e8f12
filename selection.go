package pdf2pptx

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// ParseSkipList parses a comma-separated list of 1-based page numbers such
// as "2,4,5". Whitespace around numbers is ignored and an empty string
// yields nil. Empty entries and non-integers fail with ErrInvalidSkipList.
// Numbers below 1 are kept; they name no page, so SelectPages reports them.
func ParseSkipList(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	fields := strings.Split(s, ",")
	pages := make([]int, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a page number", ErrInvalidSkipList, f)
		}
		pages = append(pages, n)
	}
	return pages, nil
}

// SelectPages returns the zero-based indices of the pages kept from a
// document of pageCount pages, in source order, and the skip numbers that
// name no page (ascending, deduplicated). sel is assumed valid.
func SelectPages(pageCount int, sel *PageSelection) (kept, ignored []int) {
	if pageCount < 0 {
		pageCount = 0
	}
	start := 0
	skip := map[int]bool{}
	if sel != nil {
		if sel.SkipFirst {
			start = 1
		}
		for _, n := range sel.Skip {
			if n < 1 || n > pageCount {
				if !slices.Contains(ignored, n) {
					ignored = append(ignored, n)
				}
				continue
			}
			skip[n-1] = true
		}
	}
	slices.Sort(ignored)

	kept = make([]int, 0, pageCount)
	for i := start; i < pageCount; i++ {
		if !skip[i] {
			kept = append(kept, i)
		}
	}
	return kept, ignored
}
