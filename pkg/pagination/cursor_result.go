package pagination

// CursorResult is one page of a cursor-paginated listing.
type CursorResult[T any] struct {
	Items      []T     `json:"items"`
	NextCursor *string `json:"next_cursor,omitempty"`
	HasMore    bool    `json:"has_more"`
}

// NewCursorResult expects up to size+1 items. The extra item only signals
// that another page exists; it is dropped and NextCursor points at the last
// kept item.
func NewCursorResult[T any](items []T, size int, cursorFn func(T) (string, error)) (*CursorResult[T], error) {
	hasMore := len(items) > size

	if hasMore {
		items = items[:size]
	}

	result := &CursorResult[T]{
		Items:   items,
		HasMore: hasMore,
	}

	if hasMore && len(items) > 0 {
		cursor, err := cursorFn(items[len(items)-1])
		if err != nil {
			return nil, err
		}
		result.NextCursor = &cursor
	}

	return result, nil
}

// MapCursorResult converts the items of a page while keeping its position.
func MapCursorResult[T, U any](r *CursorResult[T], fn func(T) U) *CursorResult[U] {
	items := make([]U, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, fn(it))
	}
	return &CursorResult[U]{
		Items:      items,
		NextCursor: r.NextCursor,
		HasMore:    r.HasMore,
	}
}
