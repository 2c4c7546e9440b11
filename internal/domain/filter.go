package domain

import "time"

// SortOrder is the ordering of class search results by date
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// ClassFilter filters catalog classes. All fields are optional.
//
// Date semantics:
//   - StartDate and EndDate: inclusive range
//   - StartDate only: exact date
//   - EndDate only: everything up to and including EndDate
type ClassFilter struct {
	TeacherName *string
	DayOfWeek   *DayOfWeek
	StartDate   *time.Time
	EndDate     *time.Time
	Order       SortOrder // empty means SortAsc
}

// IsEmpty returns true if no filter criteria are set
func (f ClassFilter) IsEmpty() bool {
	return f.TeacherName == nil && f.DayOfWeek == nil && f.StartDate == nil && f.EndDate == nil
}

// SortOrderOrDefault returns the effective ordering
func (f ClassFilter) SortOrderOrDefault() SortOrder {
	if f.Order == SortDesc {
		return SortDesc
	}
	return SortAsc
}
