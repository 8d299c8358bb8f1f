package models

// Page is one window of an ordered, filtered result set. Total reflects the
// full filtered candidate set at query time, not the page.
type Page[T any] struct {
	Items    []T   `json:"items"`
	Total    int64 `json:"total"`
	NowPage  int   `json:"now_page"`
	PageSize int   `json:"page_size"`
	HasMore  bool  `json:"has_more"`
}

// NewPage slices the full ordered candidate list down to the requested
// window. The caller has already validated nowPage and pageSize.
func NewPage[T any](all []T, nowPage, pageSize int) *Page[T] {
	total := len(all)
	offset := (nowPage - 1) * pageSize
	var items []T
	if offset < total {
		end := offset + pageSize
		if end > total {
			end = total
		}
		items = all[offset:end]
	} else {
		items = []T{}
	}
	return &Page[T]{
		Items:    items,
		Total:    int64(total),
		NowPage:  nowPage,
		PageSize: pageSize,
		HasMore:  offset+len(items) < total,
	}
}

// ErrorResponse is the standard error payload.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}
