package search

import (
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/dev-mohitbeniwal/docflow/model"
)

// Sort orders docs in place. String keys use locale-aware collation and date
// compares upload timestamps; desc negates the comparator. The sort is stable
// and an unknown key leaves the order untouched.
func Sort(docs []model.Document, key model.SortKey, order model.SortOrder) {
	cmp := comparator(key)
	if cmp == nil {
		return
	}
	sign := 1
	if order == model.SortDesc {
		sign = -1
	}
	slices.SortStableFunc(docs, func(a, b model.Document) int {
		return sign * cmp(a, b)
	})
}

func comparator(key model.SortKey) func(a, b model.Document) int {
	switch key {
	case model.SortByDepartment:
		c := collate.New(language.English)
		return func(a, b model.Document) int { return c.CompareString(a.Department, b.Department) }
	case model.SortByFileType:
		c := collate.New(language.English)
		return func(a, b model.Document) int { return c.CompareString(a.FileType, b.FileType) }
	case model.SortByDate:
		return func(a, b model.Document) int { return a.UploadedAt.Compare(b.UploadedAt) }
	}
	return nil
}
