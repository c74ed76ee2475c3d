package booking

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/adeeb-debug/baitussalambookingapp/models"
)

// Sort directions accepted by FilterAndSort.
const (
	SortAscending  = "ascending"
	SortDescending = "descending"
)

// Sortable group columns.
const (
	SortKeyStatus          = "status"
	SortKeyEventName       = "eventName"
	SortKeyRequestedByName = "requestedByName"
	SortKeyLocationCount   = "locationCount"
	SortKeyDate            = "date"
	SortKeyFromTime        = "fromTime"
	SortKeyExpectedPeople  = "expectedPeople"
	SortKeyExpectedCars    = "expectedCars"
)

// FilterAndSort returns the grouped view narrowed by status and location
// and ordered by the given key. The status filter matches the derived
// composite status in either vocabulary (user-facing or admin label);
// models.StatusAll passes everything. The location filter keeps groups
// containing at least one record at that location. Sorting is stable so
// repeated renders of unchanged data never reorder ties; an empty sort
// key leaves the input order untouched.
func FilterAndSort(groups []models.BookingGroup, statusFilter, locationFilter, sortKey, direction string) []models.BookingGroup {
	out := make([]models.BookingGroup, 0, len(groups))
	for _, g := range groups {
		if !statusMatches(g, statusFilter) {
			continue
		}
		if !locationMatches(g, locationFilter) {
			continue
		}
		out = append(out, g)
	}

	if sortKey == "" {
		return out
	}

	desc := direction == SortDescending
	sort.SliceStable(out, func(i, j int) bool {
		c := compareGroups(out[i], out[j], sortKey)
		if desc {
			return c > 0
		}
		return c < 0
	})
	return out
}

func statusMatches(g models.BookingGroup, filter string) bool {
	if filter == "" || filter == models.StatusAll {
		return true
	}
	return string(g.Status) == filter || g.Status.AdminLabel() == filter
}

func locationMatches(g models.BookingGroup, filter string) bool {
	if filter == "" || filter == models.StatusAll {
		return true
	}
	for _, b := range g.Bookings {
		if b.Location == filter {
			return true
		}
	}
	return false
}

// compareGroups orders a before b when negative. Missing values compare
// greater than everything so they land last ascending and first
// descending.
func compareGroups(a, b models.BookingGroup, key string) int {
	av, aok := sortValue(a, key)
	bv, bok := sortValue(b, key)

	switch {
	case !aok && !bok:
		return 0
	case !aok:
		return 1
	case !bok:
		return -1
	}

	switch key {
	case SortKeyDate:
		return compareDates(av, bv)
	case SortKeyExpectedPeople, SortKeyExpectedCars, SortKeyLocationCount:
		return compareNumeric(av, bv)
	default:
		return strings.Compare(strings.ToLower(av), strings.ToLower(bv))
	}
}

func sortValue(g models.BookingGroup, key string) (string, bool) {
	var v string
	switch key {
	case SortKeyStatus:
		v = string(g.Status)
	case SortKeyEventName:
		v = g.EventName
	case SortKeyRequestedByName:
		v = g.RequestedByName
	case SortKeyLocationCount:
		return strconv.Itoa(g.LocationCount), true
	case SortKeyDate:
		v = g.Date
	case SortKeyFromTime:
		v = g.FromTime
	case SortKeyExpectedPeople:
		v = g.ExpectedPeople
	case SortKeyExpectedCars:
		v = g.ExpectedCars
	default:
		return "", false
	}
	return v, v != ""
}

func compareDates(a, b string) int {
	at, aerr := time.Parse("2006-01-02", a)
	bt, berr := time.Parse("2006-01-02", b)
	if aerr != nil || berr != nil {
		return strings.Compare(a, b)
	}
	switch {
	case at.Before(bt):
		return -1
	case at.After(bt):
		return 1
	default:
		return 0
	}
}

// compareNumeric parses defensively: non-numeric values count as zero.
func compareNumeric(a, b string) int {
	an, _ := strconv.Atoi(strings.TrimSpace(a))
	bn, _ := strconv.Atoi(strings.TrimSpace(b))
	switch {
	case an < bn:
		return -1
	case an > bn:
		return 1
	default:
		return 0
	}
}
