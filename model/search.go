// model/search.go
package model

// All is the filter sentinel meaning "no constraint".
const All = "All"

type SortKey string

const (
	SortByDepartment SortKey = "department"
	SortByFileType   SortKey = "fileType"
	SortByDate       SortKey = "date"
)

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// Date range filter values, measured back from the current time.
const (
	DateRangeToday = "today"
	DateRangeWeek  = "week"
	DateRangeMonth = "month"
	DateRangeYear  = "year"
)

// Deleted filter values.
const (
	DeletedActive = "active"
	DeletedOnly   = "deleted"
)

type SearchFilters struct {
	Department    string `json:"department" form:"department"`
	Type          string `json:"type" form:"type"`
	FileType      string `json:"fileType" form:"fileType"`
	DateRange     string `json:"dateRange" form:"dateRange"`
	SecurityLevel string `json:"securityLevel" form:"securityLevel"`
	Status        string `json:"status" form:"status"`
	Deleted       string `json:"deleted" form:"deleted"`
}

// DefaultFilters returns filters with every field set to All.
func DefaultFilters() SearchFilters {
	return SearchFilters{
		Department:    All,
		Type:          All,
		FileType:      All,
		DateRange:     All,
		SecurityLevel: All,
		Status:        All,
		Deleted:       All,
	}
}

type DocumentQuery struct {
	Text      string        `json:"q" form:"q"`
	Filters   SearchFilters `json:"filters"`
	SortBy    SortKey       `json:"sortBy" form:"sortBy"`
	SortOrder SortOrder     `json:"sortOrder" form:"sortOrder"`
	BulkMode  bool          `json:"bulk" form:"bulk"`
}

// DefaultQuery matches everything and sorts newest first.
func DefaultQuery() DocumentQuery {
	return DocumentQuery{
		Filters:   DefaultFilters(),
		SortBy:    SortByDate,
		SortOrder: SortDesc,
	}
}

type DepartmentGroup struct {
	Department Department `json:"department"`
	Documents  []Document `json:"documents"`
}
