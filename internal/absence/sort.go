package absence

import (
	"fmt"
	"time"

	"github.com/kbelhadj/roster-management/internal/roster"
)

// Sort keys accepted by the absence roster screens.
const (
	SortByStartDate   = "start_date"
	SortByEndDate     = "end_date"
	SortByRequestDate = "request_date"
	SortByDuration    = "duration"
	SortByPersonnel   = "personnel"
	SortByStatus      = "status"
)

func ComparatorFor(key string, desc bool) (roster.Comparator[Record], error) {
	switch key {
	case "", SortByStartDate:
		return roster.ByTime(func(r Record) time.Time { return r.StartDate }, desc), nil
	case SortByEndDate:
		return roster.ByTime(func(r Record) time.Time { return r.EndDate }, desc), nil
	case SortByRequestDate:
		return roster.ByTime(func(r Record) time.Time { return r.RequestDate }, desc), nil
	case SortByDuration:
		return roster.ByInt(func(r Record) int { return r.DurationDays() }, desc), nil
	case SortByPersonnel:
		return roster.ByString(func(r Record) string { return r.PersonnelName }, desc), nil
	case SortByStatus:
		return roster.ByString(func(r Record) string { return string(r.Status) }, desc), nil
	default:
		return roster.Comparator[Record]{}, fmt.Errorf("unknown absence sort key %q", key)
	}
}
