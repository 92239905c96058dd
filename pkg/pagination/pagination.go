package pagination

import "strconv"

const (
	// DefaultLimit is used when the caller supplies no page size or an
	// unusable one.
	DefaultLimit = 10
	// DefaultOffset is used when the caller supplies no offset or an
	// unusable one.
	DefaultOffset = 0
)

// Meta describes one page of a counted result set. It is merged into
// search responses at the same level as the results themselves.
type Meta struct {
	Count       int `json:"count"`
	Limit       int `json:"limit"`
	Offset      int `json:"offset"`
	TotalPages  int `json:"totalPages"`
	CurrentPage int `json:"currentPage"`
}

// Paginate computes page metadata for a counted result set.
// A limit of zero or less falls back to DefaultLimit so the page math
// never divides by zero; a negative offset falls back to DefaultOffset.
func Paginate(count, limit, offset int) Meta {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if offset < 0 {
		offset = DefaultOffset
	}
	return Meta{
		Count:       count,
		Limit:       limit,
		Offset:      offset,
		TotalPages:  (count + limit - 1) / limit,
		CurrentPage: offset/limit + 1,
	}
}

// ParseQuery coerces raw limit/offset query values to usable integers.
// Non-numeric or non-positive input preserves the defaults.
func ParseQuery(rawLimit, rawOffset string) (limit, offset int) {
	limit, offset = DefaultLimit, DefaultOffset
	if n, err := strconv.Atoi(rawLimit); err == nil && n > 0 {
		limit = n
	}
	if n, err := strconv.Atoi(rawOffset); err == nil && n > 0 {
		offset = n
	}
	return limit, offset
}
