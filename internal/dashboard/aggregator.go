// Package dashboard computes the grouped counts behind the summary tiles.
// Everything is recomputed in full on each call; there is no incremental
// maintenance or caching.
package dashboard

import (
	"github.com/kbelhadj/roster-management/internal/absence"
	"github.com/kbelhadj/roster-management/internal/personnel"
)

// Group names one predicate over the roster.
type Group[T any] struct {
	Name      string
	Predicate func(T) bool
}

// GroupStat is one computed tile: count and percentage share of the total.
type GroupStat struct {
	Name       string  `json:"name"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// Aggregate computes count and share per group. The share is
// count/total*100 when the roster is non-empty and exactly 0 for every
// group when it is empty.
func Aggregate[T any](records []T, groups []Group[T]) []GroupStat {
	total := len(records)
	stats := make([]GroupStat, len(groups))
	for i, group := range groups {
		count := 0
		for _, r := range records {
			if group.Predicate(r) {
				count++
			}
		}
		pct := float64(0)
		if total > 0 {
			pct = float64(count) / float64(total) * 100
		}
		stats[i] = GroupStat{Name: group.Name, Count: count, Percentage: pct}
	}
	return stats
}

// AbsenceStatusGroups partitions the absence roster by workflow status.
func AbsenceStatusGroups() []Group[absence.Record] {
	statuses := []absence.Status{
		absence.StatusPending,
		absence.StatusApproved,
		absence.StatusRejected,
		absence.StatusCancelled,
	}
	groups := make([]Group[absence.Record], len(statuses))
	for i, status := range statuses {
		status := status
		groups[i] = Group[absence.Record]{
			Name:      string(status),
			Predicate: func(r absence.Record) bool { return r.Status == status },
		}
	}
	return groups
}

// AbsenceTypeGroups partitions the absence roster by absence type.
func AbsenceTypeGroups() []Group[absence.Record] {
	types := []absence.Type{
		absence.TypeAnnual,
		absence.TypeSick,
		absence.TypeMaternity,
		absence.TypeExceptional,
		absence.TypeUnpaid,
		absence.TypeUnknown,
	}
	groups := make([]Group[absence.Record], len(types))
	for i, t := range types {
		t := t
		groups[i] = Group[absence.Record]{
			Name:      string(t),
			Predicate: func(r absence.Record) bool { return r.Type == t },
		}
	}
	return groups
}

// PersonnelCategoryGroups partitions the personnel roster by position
// category.
func PersonnelCategoryGroups() []Group[personnel.Record] {
	categories := []personnel.Category{
		personnel.CategoryProfessor,
		personnel.CategoryAdministrator,
		personnel.CategoryPAT,
		personnel.CategoryContractor,
		personnel.CategoryUnknown,
	}
	groups := make([]Group[personnel.Record], len(categories))
	for i, category := range categories {
		category := category
		groups[i] = Group[personnel.Record]{
			Name:      string(category),
			Predicate: func(r personnel.Record) bool { return r.Employment.Category == category },
		}
	}
	return groups
}
