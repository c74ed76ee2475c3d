package models

// CompositeStatus is the single status representing a whole group's
// aggregate decision state.
type CompositeStatus string

const (
	CompositeInReview          CompositeStatus = "In Review"
	CompositeApproved          CompositeStatus = "Approved"
	CompositeRejected          CompositeStatus = "Rejected"
	CompositePartiallyApproved CompositeStatus = "Partially Approved"
)

// AdminLabel relabels the composite status for the admin queue, which
// historically used "Pending" and "Mixed" for the same two states. The
// underlying derivation is identical; only the display vocabulary forks.
func (s CompositeStatus) AdminLabel() string {
	switch s {
	case CompositeInReview:
		return StatusPending
	case CompositePartiallyApproved:
		return "Mixed"
	default:
		return string(s)
	}
}

// BookingGroup aggregates every BookingRecord created by one submission.
// It is derived on every read from the live record set and never persisted;
// the representative metadata is copied from the first-seen member.
type BookingGroup struct {
	GroupID string `json:"groupId"`

	EventName       string `json:"eventName"`
	RequestedBy     string `json:"requestedBy"`
	RequestedByName string `json:"requestedByName"`
	PhoneNumber     string `json:"phoneNumber"`
	Date            string `json:"date"`
	FromTime        string `json:"fromTime"`
	ToTime          string `json:"toTime"`
	ExpectedPeople  string `json:"expectedPeople"`
	ExpectedCars    string `json:"expectedCars"`
	Jamaat          string `json:"jamaat"`

	Bookings      []BookingRecord `json:"bookings"`
	LocationCount int             `json:"locationCount"`

	Status CompositeStatus `json:"status"`
	// RejectionReason surfaces the first reason found among rejected
	// members; per-member reasons stay on the individual records.
	RejectionReason string `json:"rejectionReason,omitempty"`
}

// PendingCount returns how many members still await a decision.
func (g BookingGroup) PendingCount() int {
	n := 0
	for _, b := range g.Bookings {
		if b.Status == StatusPending {
			n++
		}
	}
	return n
}
