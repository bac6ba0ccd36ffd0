package pagination

// CursorRequest represents a cursor-based pagination request
type CursorRequest struct {
	Cursor string `json:"cursor,omitempty" query:"cursor"`
	Limit  int    `json:"limit" query:"limit"`
}

// Normalize fills in the default limit and caps it at PageMaxSize.
func (r *CursorRequest) Normalize() {
	if r.Limit <= 0 {
		r.Limit = PageDefaultSize
	}
	if r.Limit > PageMaxSize {
		r.Limit = PageMaxSize
	}
}
