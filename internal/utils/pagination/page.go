package pagination

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Page is a normalized page request.
type Page struct {
	Number int
	Size   int
}

// Normalize clamps a page number to >= 1 and a size to [1, MaxPageSize], defaulting a zero size.
func Normalize(number, size int) Page {
	if number < 1 {
		number = 1
	}
	switch {
	case size <= 0:
		size = DefaultPageSize
	case size > MaxPageSize:
		size = MaxPageSize
	}
	return Page{Number: number, Size: size}
}

// Limit returns the row limit of the page.
func (p Page) Limit() int {
	return p.Size
}

// Offset returns the number of rows to skip.
func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}
