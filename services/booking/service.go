package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	bookingRepo "github.com/adeeb-debug/baitussalambookingapp/database/repository/booking"
	"github.com/adeeb-debug/baitussalambookingapp/models"
	"github.com/adeeb-debug/baitussalambookingapp/services/notification"
	"github.com/adeeb-debug/baitussalambookingapp/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// DefaultBookingService is the production implementation of BookingService.
type DefaultBookingService struct {
	Repo     bookingRepo.BookingRepository
	Notifier notification.NotificationService
	// Cache holds the latest serialized snapshot for availability checks;
	// nil disables caching.
	Cache *redis.Client

	// Admins resolves the accounts that receive new-request mail;
	// AdminEmail is the configured fallback inbox when the directory is
	// absent or empty. PortalURL is linked from the mail.
	Admins     AdminDirectory
	AdminEmail string
	PortalURL  string
}

// SubmitRequest validates the submission, checks every requested location
// against the current snapshot, and writes one Pending record per
// location in a single atomic batch, all sharing a fresh groupId. The
// admin notification email is enqueued best-effort afterwards: a queue
// failure is logged but never fails a stored submission.
func (s *DefaultBookingService) SubmitRequest(ctx context.Context, requester Identity, req SubmitRequest) (*models.BookingGroup, error) {
	if err := validateSubmit(requester, req); err != nil {
		return nil, err
	}

	snapshot, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings: %w", err)
	}
	free, err := AvailableLocations(req.Date, req.FromTime, req.ToTime, snapshot)
	if err != nil {
		return nil, NewValidationError("fromTime", err.Error())
	}
	freeSet := make(map[string]bool, len(free))
	for _, loc := range free {
		freeSet[loc.Name] = true
	}
	for _, loc := range req.Locations {
		if !freeSet[loc] {
			return nil, NewValidationError("locations", fmt.Sprintf("%s is no longer available for the requested time", loc))
		}
	}

	groupID := uuid.New().String()
	now := time.Now()
	records := make([]models.BookingRecord, 0, len(req.Locations))
	for _, loc := range req.Locations {
		records = append(records, models.BookingRecord{
			ID:              models.BookingID(req.Date, req.EventName, loc),
			GroupID:         groupID,
			Date:            req.Date,
			FromTime:        req.FromTime,
			ToTime:          req.ToTime,
			Location:        loc,
			Status:          models.StatusPending,
			UserNotified:    false,
			RequestedBy:     requester.Email,
			RequestedByName: req.FullName,
			PhoneNumber:     req.PhoneNumber,
			EventName:       req.EventName,
			ExpectedPeople:  req.ExpectedPeople,
			ExpectedCars:    req.ExpectedCars,
			Jamaat:          req.Jamaat,
			RequestedAt:     now,
		})
	}

	if err := s.Repo.UpsertMany(ctx, records); err != nil {
		return nil, fmt.Errorf("failed to store booking request: %w", err)
	}
	s.invalidateSnapshot(ctx)

	groups := GroupBookings(records, models.StatusAll)
	group := &groups[0]

	if s.Notifier != nil {
		for _, email := range s.adminRecipients(ctx) {
			msg := notification.AdminRequestEmail(email, s.PortalURL, *group)
			if err := s.Notifier.EnqueueEmail(ctx, msg); err != nil {
				utils.GetLogger().Warn("admin notification enqueue failed",
					zap.String("groupId", groupID), zap.String("to", email), zap.Error(err))
			}
		}
	}

	return group, nil
}

// adminRecipients resolves the inboxes for new-request mail: every admin
// account when a directory is wired, otherwise the configured fallback.
func (s *DefaultBookingService) adminRecipients(ctx context.Context) []string {
	if s.Admins != nil {
		admins, err := s.Admins.GetAdmins(ctx)
		if err != nil {
			utils.GetLogger().Warn("admin directory lookup failed", zap.Error(err))
		}
		if len(admins) > 0 {
			out := make([]string, 0, len(admins))
			for _, a := range admins {
				out = append(out, a.Email)
			}
			return out
		}
	}
	if s.AdminEmail != "" {
		return []string{s.AdminEmail}
	}
	return nil
}

func validateSubmit(requester Identity, req SubmitRequest) error {
	if requester.Email == "" {
		return NewValidationError("requestedBy", "sign in to make a booking")
	}
	if req.EventName == "" {
		return NewValidationError("eventName", "event name is required")
	}
	if req.FullName == "" {
		return NewValidationError("fullName", "full name is required")
	}
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		return NewValidationError("date", "date must be YYYY-MM-DD")
	}
	from, err := ParseClock(req.FromTime)
	if err != nil {
		return NewValidationError("fromTime", err.Error())
	}
	to, err := ParseClock(req.ToTime)
	if err != nil {
		return NewValidationError("toTime", err.Error())
	}
	if from >= to {
		return NewValidationError("toTime", "end time must be after start time")
	}
	if len(req.Locations) == 0 {
		return NewValidationError("locations", "select at least one location")
	}
	for _, loc := range req.Locations {
		if !models.ValidLocation(loc) {
			return NewValidationError("locations", fmt.Sprintf("unknown location %q", loc))
		}
	}
	return nil
}

// Availability lists the locations free for the requested window,
// computed over the latest snapshot (cache-aside with a short TTL).
func (s *DefaultBookingService) Availability(ctx context.Context, date, fromTime, toTime string) ([]models.Location, error) {
	snapshot, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	free, err := AvailableLocations(date, fromTime, toTime, snapshot)
	if err != nil {
		return nil, NewValidationError("fromTime", err.Error())
	}
	return free, nil
}

// UserBookings returns the requester's grouped bookings sorted by date
// descending.
func (s *DefaultBookingService) UserBookings(ctx context.Context, email string) ([]models.BookingGroup, error) {
	records, err := s.Repo.GetByRequester(ctx, email)
	if err != nil {
		return nil, err
	}
	groups := GroupBookings(records, models.StatusAll)
	return FilterAndSort(groups, models.StatusAll, models.StatusAll, SortKeyDate, SortDescending), nil
}

// AdminQueue builds the grouped admin view. The raw status filter runs
// before grouping; when filtering for Pending, records whose decision was
// already communicated (userNotified) are excluded so the action queue
// never resurfaces them.
func (s *DefaultBookingService) AdminQueue(ctx context.Context, q AdminQueueQuery) (*AdminQueueResult, error) {
	records, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	statusFilter := q.Status
	if statusFilter == "" {
		statusFilter = models.StatusAll
	}

	filtered := make([]models.BookingRecord, 0, len(records))
	for _, b := range records {
		if statusFilter != models.StatusAll && b.Status != statusFilter {
			continue
		}
		if statusFilter == models.StatusPending && b.UserNotified {
			continue
		}
		filtered = append(filtered, b)
	}

	groups := GroupBookings(filtered, q.Location)
	sortKey := q.SortKey
	direction := q.SortDirection
	if sortKey == "" {
		sortKey = SortKeyDate
		direction = SortAscending
	}
	groups = FilterAndSort(groups, models.StatusAll, models.StatusAll, sortKey, direction)

	return &AdminQueueResult{
		Groups:    groups,
		Locations: uniqueLocations(records),
	}, nil
}

func uniqueLocations(records []models.BookingRecord) []string {
	seen := make(map[string]bool)
	var out []string
	for _, b := range records {
		if b.Location == "" || seen[b.Location] {
			continue
		}
		seen[b.Location] = true
		out = append(out, b.Location)
	}
	sort.Strings(out)
	return out
}

// DecideGroup applies one decision to every Pending member of the group
// in a single atomic batch. Members already decided are left untouched.
func (s *DefaultBookingService) DecideGroup(ctx context.Context, groupID, decision, reason string) error {
	if err := validDecision(decision); err != nil {
		return err
	}
	members, err := s.Repo.GetByGroup(ctx, groupID)
	if err != nil {
		return err
	}
	if len(members) == 0 {
		return &NotFoundError{ID: groupID}
	}

	var updates []bookingRepo.FieldUpdate
	for _, b := range members {
		if b.Status != models.StatusPending {
			continue
		}
		updates = append(updates, bookingRepo.FieldUpdate{ID: b.ID, Fields: decisionFields(decision, reason)})
	}
	if len(updates) == 0 {
		return nil
	}
	if err := s.Repo.ApplyBatch(ctx, updates); err != nil {
		return fmt.Errorf("failed to apply group decision: %w", err)
	}
	s.invalidateSnapshot(ctx)
	return nil
}

// DecideBooking applies a decision to one record.
func (s *DefaultBookingService) DecideBooking(ctx context.Context, id, decision, reason string) error {
	if err := validDecision(decision); err != nil {
		return err
	}
	rec, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if rec == nil {
		return &NotFoundError{ID: id}
	}
	update := bookingRepo.FieldUpdate{ID: id, Fields: decisionFields(decision, reason)}
	if err := s.Repo.ApplyBatch(ctx, []bookingRepo.FieldUpdate{update}); err != nil {
		return fmt.Errorf("failed to apply decision: %w", err)
	}
	s.invalidateSnapshot(ctx)
	return nil
}

// RemoveBooking deletes one record outright, regardless of status. Used
// by admins to clear stale or mistaken entries.
func (s *DefaultBookingService) RemoveBooking(ctx context.Context, id string) error {
	rec, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if rec == nil {
		return &NotFoundError{ID: id}
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete booking: %w", err)
	}
	s.invalidateSnapshot(ctx)
	return nil
}

func validDecision(decision string) error {
	if decision != models.StatusApproved && decision != models.StatusRejected {
		return NewValidationError("status", fmt.Sprintf("decision must be %s or %s", models.StatusApproved, models.StatusRejected))
	}
	return nil
}

func decisionFields(decision, reason string) bson.M {
	fields := bson.M{"status": decision}
	if decision == models.StatusRejected && reason != "" {
		fields["rejectionReason"] = reason
	}
	return fields
}

// NotifyRequester marks every member of the group notified in one atomic
// batch, then queues the decision email. The flag update is recorded
// first: a queue failure is surfaced to the caller but does not unwind
// the flags or the decisions, matching the acknowledgement ordering of
// the flow.
func (s *DefaultBookingService) NotifyRequester(ctx context.Context, groupID string) error {
	members, err := s.Repo.GetByGroup(ctx, groupID)
	if err != nil {
		return err
	}
	if len(members) == 0 {
		return &NotFoundError{ID: groupID}
	}

	now := time.Now()
	updates := make([]bookingRepo.FieldUpdate, 0, len(members))
	for _, b := range members {
		updates = append(updates, bookingRepo.FieldUpdate{
			ID:     b.ID,
			Fields: bson.M{"userNotified": true, "notifiedAt": now},
		})
	}
	if err := s.Repo.ApplyBatch(ctx, updates); err != nil {
		return fmt.Errorf("failed to mark group notified: %w", err)
	}
	s.invalidateSnapshot(ctx)

	groups := GroupBookings(members, models.StatusAll)
	if n := groups[0].PendingCount(); n > 0 {
		utils.GetLogger().Warn("notifying group with undecided members",
			zap.String("groupId", groupID), zap.Int("pending", n))
	}
	msg := notification.DecisionEmail(groups[0])
	if err := s.Notifier.EnqueueEmail(ctx, msg); err != nil {
		utils.GetLogger().Warn("decision email enqueue failed",
			zap.String("groupId", groupID), zap.Error(err))
		return fmt.Errorf("group marked notified but email enqueue failed: %w", err)
	}
	return nil
}

// CancelGroup deletes every record of the group after verifying the
// requester owns it.
func (s *DefaultBookingService) CancelGroup(ctx context.Context, groupID, requester string) error {
	members, err := s.Repo.GetByGroup(ctx, groupID)
	if err != nil {
		return err
	}
	if len(members) == 0 {
		return &NotFoundError{ID: groupID}
	}
	ids := make([]string, 0, len(members))
	for _, b := range members {
		if b.RequestedBy != requester {
			return &ForbiddenError{GroupID: groupID}
		}
		ids = append(ids, b.ID)
	}
	if err := s.Repo.DeleteGroup(ctx, ids); err != nil {
		return fmt.Errorf("failed to cancel group: %w", err)
	}
	s.invalidateSnapshot(ctx)
	return nil
}

// snapshot returns the latest record set, serving from the short-lived
// redis cache when possible.
func (s *DefaultBookingService) snapshot(ctx context.Context) ([]models.BookingRecord, error) {
	if s.Cache != nil {
		if data, err := s.Cache.Get(ctx, utils.SnapshotCacheKey).Result(); err == nil {
			var records []models.BookingRecord
			if err := json.Unmarshal([]byte(data), &records); err == nil {
				return records, nil
			}
		}
	}

	records, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings: %w", err)
	}

	if s.Cache != nil {
		if data, err := json.Marshal(records); err == nil {
			if err := s.Cache.Set(ctx, utils.SnapshotCacheKey, data, utils.SnapshotCacheTTL).Err(); err != nil {
				utils.GetLogger().Debug("snapshot cache write failed", zap.Error(err))
			}
		}
	}
	return records, nil
}

func (s *DefaultBookingService) invalidateSnapshot(ctx context.Context) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(ctx, utils.SnapshotCacheKey).Err(); err != nil {
		utils.GetLogger().Debug("snapshot cache invalidation failed", zap.Error(err))
	}
}
