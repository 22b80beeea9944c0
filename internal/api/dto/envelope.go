package dto

// Envelope is the common response shape: {status, message, data}.
type Envelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// OK wraps a successful payload.
func OK(message string, data any) Envelope {
	return Envelope{Status: "success", Message: message, Data: data}
}

// Fail wraps an error payload.
func Fail(message string, data any) Envelope {
	return Envelope{Status: "error", Message: message, Data: data}
}

// Page is the paginated data shape carried inside an Envelope.
type Page struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	PageSize    int   `json:"pageSize"`
	TotalCount  int64 `json:"totalCount"`
	HasNext     bool  `json:"hasNext"`
	HasPrevious bool  `json:"hasPrevious"`
	Items       any   `json:"items"`
}

// NewPage computes pagination metadata for a result window.
func NewPage(items any, page, pageSize int, totalCount int64) Page {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	totalPages := int((totalCount + int64(pageSize) - 1) / int64(pageSize))
	return Page{
		CurrentPage: page,
		TotalPages:  totalPages,
		PageSize:    pageSize,
		TotalCount:  totalCount,
		HasNext:     page < totalPages,
		HasPrevious: page > 1 && totalCount > 0,
		Items:       items,
	}
}
