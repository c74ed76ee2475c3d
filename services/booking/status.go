package booking

import (
	"github.com/adeeb-debug/baitussalambookingapp/models"
)

// DeriveCompositeStatus computes the single status representing a
// group's aggregate decision state:
//
//  1. any Pending member            -> In Review (decisions are not
//     final until every location is resolved)
//  2. all Approved                  -> Approved
//  3. all Rejected or Cancelled     -> Rejected
//  4. Approved mixed with
//     Rejected/Cancelled, no Pending -> Partially Approved
//
// A missing member status counts as Pending so an unreviewable record
// keeps its group in review. The fallback arm also yields In Review.
func DeriveCompositeStatus(members []models.BookingRecord) models.CompositeStatus {
	if len(members) == 0 {
		return models.CompositeInReview
	}

	var approved, terminal int
	for _, b := range members {
		switch b.Status {
		case models.StatusApproved:
			approved++
		case models.StatusRejected, models.StatusCancelled:
			terminal++
		default:
			// Pending, or an unknown status defaulted to Pending.
			return models.CompositeInReview
		}
	}

	switch {
	case approved == len(members):
		return models.CompositeApproved
	case terminal == len(members):
		return models.CompositeRejected
	case approved > 0 && terminal > 0:
		return models.CompositePartiallyApproved
	default:
		return models.CompositeInReview
	}
}
