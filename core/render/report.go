package render

import (
	"github.com/gaurav-prasanna/catalogpipe/core"
	"github.com/rs/zerolog"
)

// Report summarizes a catalog before import. Duplicates are reported in
// first-seen order and do not affect the exported rows.
type Report struct {
	Total            int
	Exported         int
	SkippedOptions   int
	WithImages       int
	WithAltText      int
	WithCategories   int
	DuplicateHandles []string
	DuplicateSKUs    []string
}

// Summarize computes the Report for products.
func Summarize(products []core.Product) Report {
	r := Report{Total: len(products)}
	handles := make(map[string]int)
	skus := make(map[string]int)

	for _, p := range products {
		if p.HasOptions() {
			r.SkippedOptions++
		} else {
			r.Exported++
		}
		if p.ImageURL != "" {
			r.WithImages++
		}
		if p.ImageAlt != "" {
			r.WithAltText++
		}
		if len(p.CategoryIDs) > 0 {
			r.WithCategories++
		}

		if p.Handle != "" {
			handles[p.Handle]++
			if handles[p.Handle] == 2 {
				r.DuplicateHandles = append(r.DuplicateHandles, p.Handle)
			}
		}
		if p.Code != "" {
			skus[p.Code]++
			if skus[p.Code] == 2 {
				r.DuplicateSKUs = append(r.DuplicateSKUs, p.Code)
			}
		}
	}
	return r
}

// MarshalZerologObject lets a Report be logged with Event.Object.
func (r Report) MarshalZerologObject(e *zerolog.Event) {
	e.Int("total", r.Total).
		Int("exported", r.Exported).
		Int("skipped_options", r.SkippedOptions).
		Int("with_images", r.WithImages).
		Int("with_alt_text", r.WithAltText).
		Int("with_categories", r.WithCategories).
		Strs("duplicate_handles", r.DuplicateHandles).
		Strs("duplicate_skus", r.DuplicateSKUs)
}
