package booking

import (
	"github.com/adeeb-debug/baitussalambookingapp/models"
)

// GroupBookings collapses a flat record list into one BookingGroup per
// distinct groupId, in a single pass. A record without a groupId gets a
// synthetic singleton key derived from its own id, so ungrouped legacy
// records never collide with each other. Group metadata comes from the
// first-seen member; member order follows input order. The composite
// status of each group is derived once all members are collected.
//
// locationFilter narrows the input before grouping; pass
// models.StatusAll (or "") to keep every location.
func GroupBookings(records []models.BookingRecord, locationFilter string) []models.BookingGroup {
	grouped := make(map[string]*models.BookingGroup)
	var order []string

	for _, b := range records {
		if locationFilter != "" && locationFilter != models.StatusAll && b.Location != locationFilter {
			continue
		}

		key := b.GroupID
		if key == "" {
			key = "no_group_" + b.ID
		}

		g, ok := grouped[key]
		if !ok {
			g = &models.BookingGroup{
				GroupID:         key,
				EventName:       b.EventName,
				RequestedBy:     b.RequestedBy,
				RequestedByName: b.RequestedByName,
				PhoneNumber:     b.PhoneNumber,
				Date:            b.Date,
				FromTime:        b.FromTime,
				ToTime:          b.ToTime,
				ExpectedPeople:  b.ExpectedPeople,
				ExpectedCars:    b.ExpectedCars,
				Jamaat:          b.Jamaat,
			}
			grouped[key] = g
			order = append(order, key)
		}

		g.Bookings = append(g.Bookings, b)
		g.LocationCount++

		if b.Status == models.StatusRejected && g.RejectionReason == "" {
			g.RejectionReason = b.RejectionReason
		}
	}

	groups := make([]models.BookingGroup, 0, len(order))
	for _, key := range order {
		g := grouped[key]
		g.Status = DeriveCompositeStatus(g.Bookings)
		groups = append(groups, *g)
	}
	return groups
}
