// Package search normalizes raw article search filters into a composable
// criteria value. The article repository translates criteria to SQL; the
// in-memory store used by tests evaluates the same criteria directly via
// Matches.
package search

import (
	"strings"
	"time"

	"github.com/havenpress/backend/internal/models"
)

// Criteria is the resolved search predicate. Zero values mean the clause
// was dropped; all surviving clauses combine with AND, except Term which
// expands to an OR across title and description.
type Criteria struct {
	Author     string     // substring of the author's username
	Term       string     // substring of title OR description
	Start, End *time.Time // inclusive creation-time range, both set or neither
	Tags       []string   // article taglist must contain all of these
	CategoryID *uint      // exact match
}

// Empty reports whether the criteria matches every article.
func (c Criteria) Empty() bool {
	return c.Author == "" && c.Term == "" && c.Start == nil && len(c.Tags) == 0 && c.CategoryID == nil
}

// Matches reports whether an article written by authorUsername satisfies
// every surviving clause. It mirrors the SQL emitted by the article
// repository so both resolve a criteria identically.
func (c Criteria) Matches(a *models.Article, authorUsername string) bool {
	if c.Author != "" && !strings.Contains(authorUsername, c.Author) {
		return false
	}
	if c.Term != "" &&
		!strings.Contains(a.Title, c.Term) && !strings.Contains(a.Description, c.Term) {
		return false
	}
	if c.Start != nil && c.End != nil {
		if a.CreatedAt.Before(*c.Start) || a.CreatedAt.After(*c.End) {
			return false
		}
	}
	for _, tag := range c.Tags {
		if !containsTag(a.TagList, tag) {
			return false
		}
	}
	if c.CategoryID != nil && a.CategoryID != *c.CategoryID {
		return false
	}
	return true
}

func containsTag(taglist []string, tag string) bool {
	for _, t := range taglist {
		if t == tag {
			return true
		}
	}
	return false
}
