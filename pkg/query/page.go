package query

import "github.com/activeintel/iocdb/util"

//Page is the faceted pagination envelope returned by the listing
//operations: one page of data plus the pre-pagination result count.
type Page struct {
	Data         interface{} `json:"data"`
	TotalResults int         `json:"total_results"`
	TotalPages   int         `json:"total_pages"`
	PageNo       int         `json:"page_no"`
	PerPage      int         `json:"per_page"`
	HasNextPage  bool        `json:"has_next_page"`
	HasPrevPage  bool        `json:"has_prev_page"`
}

//NewPage assembles the page envelope for a listing result. count is
//the number of items actually on this page; total the pre-pagination
//result count. An empty result set zeroes the page bookkeeping.
func NewPage(s Spec, total int, count int, pageData interface{}) *Page {
	if total == 0 {
		return &Page{
			Data: pageData,
		}
	}

	totalPages := total / s.PerPage
	if total%s.PerPage != 0 {
		totalPages++
	}

	return &Page{
		Data:         pageData,
		TotalResults: total,
		TotalPages:   totalPages,
		PageNo:       s.Page,
		PerPage:      util.Min(s.PerPage, count),
		HasNextPage:  s.Page < totalPages,
		HasPrevPage:  s.Page > 1,
	}
}
