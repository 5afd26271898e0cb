package services

// Pagination carries the paging metadata every list endpoint returns alongside
// its docs.
type Pagination struct {
	TotalDocs   int64 `json:"totalDocs"`
	TotalPages  int   `json:"totalPages"`
	Page        int   `json:"page"`
	Limit       int   `json:"limit"`
	HasPrevPage bool  `json:"hasPrevPage"`
	HasNextPage bool  `json:"hasNextPage"`
}

func newPagination(totalDocs int64, page, limit int) Pagination {
	totalPages := int((totalDocs + int64(limit) - 1) / int64(limit))
	return Pagination{
		TotalDocs:   totalDocs,
		TotalPages:  totalPages,
		Page:        page,
		Limit:       limit,
		HasPrevPage: page > 1,
		HasNextPage: page < totalPages,
	}
}
