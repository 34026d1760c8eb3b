package entities

// Default page bounds.
const (
	DefaultPageSize = 20
	MaxPageSize     = 2000
)

// PageRequest is a zero-based page number and size.
type PageRequest struct {
	Page int
	Size int
}

// Offset returns the number of rows preceding the page.
func (r PageRequest) Offset() int {
	return r.Page * r.Size
}

// Normalize clamps the request into valid bounds.
func (r PageRequest) Normalize(defaultSize, maxSize int) PageRequest {
	if r.Page < 0 {
		r.Page = 0
	}
	if r.Size <= 0 {
		r.Size = defaultSize
	}
	if r.Size > maxSize {
		r.Size = maxSize
	}
	return r
}

// Page is one slice of a larger result.
type Page[T any] struct {
	Content       []T
	Page          int
	Size          int
	TotalElements int64
	TotalPages    int
	First         bool
	Last          bool
	HasNext       bool
}

// NewPage assembles a page and calls count only when the total cannot be
// derived from the content: on the first page with fewer rows than the size,
// or on any page whose non-empty content is shorter than the size.
func NewPage[T any](content []T, req PageRequest, count func() (int64, error)) (Page[T], error) {
	if content == nil {
		content = []T{}
	}

	var total int64
	switch {
	case req.Offset() == 0 && len(content) < req.Size:
		total = int64(len(content))
	case len(content) > 0 && len(content) < req.Size:
		total = int64(req.Offset() + len(content))
	default:
		n, err := count()
		if err != nil {
			return Page[T]{}, err
		}
		total = n
	}

	totalPages := 0
	if req.Size > 0 {
		totalPages = int((total + int64(req.Size) - 1) / int64(req.Size))
	}

	return Page[T]{
		Content:       content,
		Page:          req.Page,
		Size:          req.Size,
		TotalElements: total,
		TotalPages:    totalPages,
		First:         req.Page == 0,
		Last:          req.Page+1 >= totalPages,
		HasNext:       req.Page+1 < totalPages,
	}, nil
}

// MapPage converts page content keeping paging metadata.
func MapPage[T, R any](p Page[T], fn func(T) R) Page[R] {
	out := make([]R, 0, len(p.Content))
	for _, v := range p.Content {
		out = append(out, fn(v))
	}
	return Page[R]{
		Content:       out,
		Page:          p.Page,
		Size:          p.Size,
		TotalElements: p.TotalElements,
		TotalPages:    p.TotalPages,
		First:         p.First,
		Last:          p.Last,
		HasNext:       p.HasNext,
	}
}
