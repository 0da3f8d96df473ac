package domain

// ListParams carries skip/limit values from the HTTP layer to the repo layer.
// Skip is the number of records to pass over; Limit is the maximum number of
// records to return. No upper bound is enforced on Limit.
type ListParams struct {
	Skip  int
	Limit int
}

// NewListParams builds a ListParams from optional HTTP query params.
// Nil or negative values fall back to the defaults (skip=0, limit=100).
func NewListParams(skip, limit *int) ListParams {
	p := ListParams{Skip: 0, Limit: 100}
	if skip != nil && *skip >= 0 {
		p.Skip = *skip
	}
	if limit != nil && *limit >= 0 {
		p.Limit = *limit
	}
	return p
}
