package booking

import (
	"context"

	"github.com/adeeb-debug/baitussalambookingapp/models"
)

// Identity is the opaque authenticated requester: an email plus an
// optional display name. No credential validation happens here.
type Identity struct {
	Email       string
	DisplayName string
}

// SubmitRequest carries one submission: a single event/time window across
// one or more locations.
type SubmitRequest struct {
	Date           string   `json:"date"`
	FromTime       string   `json:"fromTime"`
	ToTime         string   `json:"toTime"`
	Locations      []string `json:"locations"`
	EventName      string   `json:"eventName"`
	PhoneNumber    string   `json:"phoneNumber"`
	ExpectedPeople string   `json:"expectedPeople"`
	ExpectedCars   string   `json:"expectedCars"`
	Jamaat         string   `json:"jamaat"`
	FullName       string   `json:"fullName"`
}

// AdminQueueQuery narrows and orders the admin view.
type AdminQueueQuery struct {
	Status        string
	Location      string
	SortKey       string
	SortDirection string
}

// AdminQueueResult is the grouped admin view plus the distinct locations
// present in the data, for filter dropdowns.
type AdminQueueResult struct {
	Groups    []models.BookingGroup `json:"groups"`
	Locations []string              `json:"locations"`
}

// AdminDirectory resolves the accounts that receive new-request
// notifications. user.UserService satisfies it.
type AdminDirectory interface {
	GetAdmins(ctx context.Context) ([]models.User, error)
}

// BookingService is the portal's booking workflow surface.
type BookingService interface {
	// SubmitRequest validates and stores one request batch and returns
	// the resulting group.
	SubmitRequest(ctx context.Context, requester Identity, req SubmitRequest) (*models.BookingGroup, error)
	// Availability lists the locations free for the requested window.
	Availability(ctx context.Context, date, fromTime, toTime string) ([]models.Location, error)
	// UserBookings returns the requester's grouped bookings, newest first.
	UserBookings(ctx context.Context, email string) ([]models.BookingGroup, error)
	// AdminQueue returns the filtered, sorted grouped admin view.
	AdminQueue(ctx context.Context, q AdminQueueQuery) (*AdminQueueResult, error)
	// DecideGroup applies one decision to every pending member of a group.
	DecideGroup(ctx context.Context, groupID, decision, reason string) error
	// DecideBooking applies a decision to a single record.
	DecideBooking(ctx context.Context, id, decision, reason string) error
	// RemoveBooking deletes a single record outright.
	RemoveBooking(ctx context.Context, id string) error
	// NotifyRequester marks the group notified and queues the decision
	// email to the requester.
	NotifyRequester(ctx context.Context, groupID string) error
	// CancelGroup deletes every record of a group owned by the requester.
	CancelGroup(ctx context.Context, groupID, requester string) error
}
