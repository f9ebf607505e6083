// Package search derives the visible document list from the full collection.
package search

import (
	"slices"
	"strings"
	"time"

	docflow_errors "github.com/dev-mohitbeniwal/docflow/errors"
	"github.com/dev-mohitbeniwal/docflow/model"
)

// Filter returns the documents visible to user for the given query, ordered
// by the query's sort key. The input slice is never modified. Without an
// authenticated user the result is empty.
func Filter(docs []model.Document, q model.DocumentQuery, user *model.User) []model.Document {
	return FilterAt(docs, q, user, time.Now())
}

// FilterAt is Filter with an explicit reference time for date ranges.
func FilterAt(docs []model.Document, q model.DocumentQuery, user *model.User, now time.Time) []model.Document {
	if user == nil {
		return []model.Document{}
	}

	text := strings.ToLower(strings.TrimSpace(q.Text))
	since, hasSince := rangeStart(q.Filters.DateRange, now)
	pendingOnly := q.BulkMode && user.Role == model.RoleManager

	out := make([]model.Document, 0, len(docs))
	for _, doc := range docs {
		if pendingOnly && doc.ApprovalStatus != model.StatusPending {
			continue
		}
		if text != "" && !matchesText(doc, text) {
			continue
		}
		if !matchesFilters(doc, q.Filters) {
			continue
		}
		if hasSince && doc.UploadedAt.Before(since) {
			continue
		}
		out = append(out, doc.Clone())
	}

	Sort(out, q.SortBy, q.SortOrder)
	return out
}

// MatchesText reports whether q occurs case-insensitively in the title,
// the description or any tag.
func MatchesText(doc model.Document, q string) bool {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return true
	}
	return matchesText(doc, q)
}

func matchesText(doc model.Document, lowered string) bool {
	if strings.Contains(strings.ToLower(doc.Title), lowered) ||
		strings.Contains(strings.ToLower(doc.Description), lowered) {
		return true
	}
	return slices.ContainsFunc(doc.Tags, func(tag string) bool {
		return strings.Contains(strings.ToLower(tag), lowered)
	})
}

func unconstrained(v string) bool {
	return v == "" || v == model.All
}

func matchesFilters(doc model.Document, f model.SearchFilters) bool {
	if !unconstrained(f.Department) && doc.Department != f.Department {
		return false
	}
	if !unconstrained(f.Type) && doc.Type != f.Type {
		return false
	}
	if !unconstrained(f.FileType) && doc.FileType != f.FileType {
		return false
	}
	if !unconstrained(f.SecurityLevel) && string(doc.EffectiveSecurityLevel()) != f.SecurityLevel {
		return false
	}
	if !unconstrained(f.Status) && string(doc.ApprovalStatus) != f.Status {
		return false
	}
	switch f.Deleted {
	case model.DeletedActive:
		return !doc.IsDeleted
	case model.DeletedOnly:
		return doc.IsDeleted
	}
	return true
}

func rangeStart(dateRange string, now time.Time) (time.Time, bool) {
	switch dateRange {
	case model.DateRangeToday:
		y, m, d := now.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, now.Location()), true
	case model.DateRangeWeek:
		return now.AddDate(0, 0, -7), true
	case model.DateRangeMonth:
		return now.AddDate(0, 0, -30), true
	case model.DateRangeYear:
		return now.AddDate(0, 0, -365), true
	}
	return time.Time{}, false
}

// ValidateQuery rejects filter values outside their enumerations. Unknown
// sort keys are accepted and sort as a no-op.
func ValidateQuery(q model.DocumentQuery) error {
	f := q.Filters
	switch f.DateRange {
	case "", model.All, model.DateRangeToday, model.DateRangeWeek, model.DateRangeMonth, model.DateRangeYear:
	default:
		return docflow_errors.Validation("unknown date range %q", f.DateRange)
	}
	if !unconstrained(f.Status) && !model.ApprovalStatus(f.Status).Valid() {
		return docflow_errors.Validation("unknown status %q", f.Status)
	}
	if !unconstrained(f.SecurityLevel) && !model.SecurityLevel(f.SecurityLevel).Valid() {
		return docflow_errors.Validation("unknown security level %q", f.SecurityLevel)
	}
	switch f.Deleted {
	case "", model.All, model.DeletedActive, model.DeletedOnly:
	default:
		return docflow_errors.Validation("unknown deleted filter %q", f.Deleted)
	}
	switch q.SortOrder {
	case "", model.SortAsc, model.SortDesc:
	default:
		return docflow_errors.Validation("sort order must be asc or desc")
	}
	return nil
}
