package booking

import (
	"github.com/adeeb-debug/baitussalambookingapp/models"
)

// AvailableLocations returns the bookable spaces that have no blocking
// record overlapping the requested window on the given date. Cancelled
// and Rejected records never block: both states fully release the slot.
// Pending records block just like Approved ones; an undecided request is
// treated as a tentative hold so the admin never has to untangle a
// double-booking.
//
// The function is a pure computation over the snapshot it is given; it
// does not re-query storage.
func AvailableLocations(date, fromTime, toTime string, all []models.BookingRecord) ([]models.Location, error) {
	reqStart, err := ParseClock(fromTime)
	if err != nil {
		return nil, err
	}
	reqEnd, err := ParseClock(toTime)
	if err != nil {
		return nil, err
	}

	free := make([]models.Location, 0, len(models.Locations))
	for _, loc := range models.Locations {
		if locationFree(loc.Name, date, reqStart, reqEnd, all) {
			free = append(free, loc)
		}
	}
	return free, nil
}

func locationFree(location, date string, reqStart, reqEnd int, all []models.BookingRecord) bool {
	for _, b := range all {
		if b.Location != location || b.Date != date {
			continue
		}
		if b.Terminal() {
			continue
		}
		bStart, err := ParseClock(b.FromTime)
		if err != nil {
			continue // unparseable stored time cannot block
		}
		bEnd, err := ParseClock(b.ToTime)
		if err != nil {
			continue
		}
		if Overlaps(reqStart, reqEnd, bStart, bEnd) {
			return false
		}
	}
	return true
}
