package personnel

import (
	"fmt"
	"time"

	"github.com/kbelhadj/roster-management/internal/roster"
)

// Sort keys accepted by the personnel roster screens.
const (
	SortByName           = "name"
	SortByGrade          = "grade"
	SortByCategory       = "category"
	SortBySalaryIndex    = "salary_index"
	SortBySeniorityYears = "seniority_years"
	SortByHireDate       = "hire_date"
	SortBySeniorityDate  = "seniority_date"
	SortByBirthDate      = "birth_date"
)

func ComparatorFor(key string, desc bool) (roster.Comparator[Record], error) {
	switch key {
	case "", SortByName:
		return roster.ByString(func(r Record) string { return r.Name }, desc), nil
	case SortByGrade:
		return roster.ByString(func(r Record) string { return r.Employment.Grade }, desc), nil
	case SortByCategory:
		return roster.ByString(func(r Record) string { return string(r.Employment.Category) }, desc), nil
	case SortBySalaryIndex:
		return roster.ByInt(func(r Record) int { return r.Employment.SalaryIndex }, desc), nil
	case SortBySeniorityYears:
		return roster.ByInt(func(r Record) int { return r.Employment.SeniorityYears }, desc), nil
	case SortByHireDate:
		return roster.ByTime(func(r Record) time.Time { return r.Employment.HireDate }, desc), nil
	case SortBySeniorityDate:
		return roster.ByTime(func(r Record) time.Time { return r.Employment.SeniorityDate }, desc), nil
	case SortByBirthDate:
		return roster.ByTime(func(r Record) time.Time { return r.Identity.BirthDate }, desc), nil
	default:
		return roster.Comparator[Record]{}, fmt.Errorf("unknown personnel sort key %q", key)
	}
}
