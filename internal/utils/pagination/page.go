// Package pagination builds the paging metadata returned by list endpoints.
package pagination

import "github.com/SscSPs/ohada_ledger/internal/core/domain"

// Meta describes where a page sits in the full result set.
type Meta struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	Total      int  `json:"total"`
	TotalPages int  `json:"totalPages"`
	HasNext    bool `json:"hasNext"`
}

// NewMeta computes the metadata of page p over total rows.
func NewMeta(p domain.Page, total int) Meta {
	pages := 0
	if p.Size > 0 {
		pages = (total + p.Size - 1) / p.Size
	}
	return Meta{
		Page:       p.Number,
		Limit:      p.Size,
		Total:      total,
		TotalPages: pages,
		HasNext:    p.Number < pages,
	}
}
