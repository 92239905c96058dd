package search

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/havenpress/backend/internal/apperrors"
)

// Filters holds the raw query-string values accepted by article search.
type Filters struct {
	Author     string
	Term       string
	StartDate  string
	EndDate    string
	Tags       string // comma-separated
	CategoryID string
}

// dateLayouts are the formats accepted for StartDate/EndDate.
var dateLayouts = []string{"2006-01-02", time.RFC3339}

// BuildCriteria turns raw filters into a criteria value. Any filter whose
// required inputs are absent or incomplete is dropped entirely rather than
// contributing an always-true or always-false clause; supplying only one
// of StartDate/EndDate drops the date clause. Supplied but unparsable
// dates are a validation error, not a dropped clause.
func BuildCriteria(f Filters) (Criteria, error) {
	c := Criteria{
		Author: f.Author,
		Term:   f.Term,
	}

	if f.StartDate != "" && f.EndDate != "" {
		start, err := parseDate(f.StartDate)
		if err != nil {
			return Criteria{}, err
		}
		end, err := parseDate(f.EndDate)
		if err != nil {
			return Criteria{}, err
		}
		if end.Before(start) {
			return Criteria{}, apperrors.New(apperrors.KindValidation,
				"endDate precedes startDate")
		}
		c.Start, c.End = &start, &end
	}

	if f.Tags != "" {
		for _, tag := range strings.Split(f.Tags, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				c.Tags = append(c.Tags, tag)
			}
		}
	}

	if f.CategoryID != "" {
		if id, err := strconv.ParseUint(f.CategoryID, 10, 32); err == nil {
			category := uint(id)
			c.CategoryID = &category
		}
		// non-numeric category ids are treated as absent
	}

	return c, nil
}

func parseDate(raw string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, apperrors.New(apperrors.KindValidation,
		fmt.Sprintf("invalid date %q, expected YYYY-MM-DD or RFC3339", raw))
}
