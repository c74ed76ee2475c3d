package booking

import (
	"testing"

	"github.com/adeeb-debug/baitussalambookingapp/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sortableGroup(id, date, event, people string, status models.CompositeStatus) models.BookingGroup {
	return models.BookingGroup{
		GroupID:        id,
		Date:           date,
		EventName:      event,
		ExpectedPeople: people,
		Status:         status,
		Bookings: []models.BookingRecord{
			{GroupID: id, Location: "Main Hall"},
		},
	}
}

func groupIDs(groups []models.BookingGroup) []string {
	ids := make([]string, 0, len(groups))
	for _, g := range groups {
		ids = append(ids, g.GroupID)
	}
	return ids
}

func TestFilterAndSortStatusFilter(t *testing.T) {
	groups := []models.BookingGroup{
		sortableGroup("g1", "2026-09-01", "A", "10", models.CompositeInReview),
		sortableGroup("g2", "2026-09-02", "B", "20", models.CompositeApproved),
		sortableGroup("g3", "2026-09-03", "C", "30", models.CompositePartiallyApproved),
	}

	t.Run("all passes everything", func(t *testing.T) {
		assert.Len(t, FilterAndSort(groups, models.StatusAll, models.StatusAll, "", ""), 3)
	})

	t.Run("matches user-facing vocabulary", func(t *testing.T) {
		out := FilterAndSort(groups, "In Review", models.StatusAll, "", "")
		assert.Equal(t, []string{"g1"}, groupIDs(out))
	})

	t.Run("matches admin vocabulary for the same state", func(t *testing.T) {
		out := FilterAndSort(groups, models.StatusPending, models.StatusAll, "", "")
		assert.Equal(t, []string{"g1"}, groupIDs(out))

		out = FilterAndSort(groups, "Mixed", models.StatusAll, "", "")
		assert.Equal(t, []string{"g3"}, groupIDs(out))
	})
}

func TestFilterAndSortLocationFilter(t *testing.T) {
	withKitchen := sortableGroup("g1", "2026-09-01", "A", "10", models.CompositeApproved)
	withKitchen.Bookings = append(withKitchen.Bookings, models.BookingRecord{GroupID: "g1", Location: "Kitchen"})
	without := sortableGroup("g2", "2026-09-02", "B", "20", models.CompositeApproved)

	out := FilterAndSort([]models.BookingGroup{withKitchen, without}, models.StatusAll, "Kitchen", "", "")
	assert.Equal(t, []string{"g1"}, groupIDs(out))
}

func TestFilterAndSortOrdering(t *testing.T) {
	t.Run("date ascending and descending", func(t *testing.T) {
		groups := []models.BookingGroup{
			sortableGroup("g2", "2026-09-15", "B", "", models.CompositeApproved),
			sortableGroup("g1", "2026-09-01", "A", "", models.CompositeApproved),
			sortableGroup("g3", "2026-10-01", "C", "", models.CompositeApproved),
		}
		asc := FilterAndSort(groups, models.StatusAll, models.StatusAll, SortKeyDate, SortAscending)
		assert.Equal(t, []string{"g1", "g2", "g3"}, groupIDs(asc))

		desc := FilterAndSort(groups, models.StatusAll, models.StatusAll, SortKeyDate, SortDescending)
		assert.Equal(t, []string{"g3", "g2", "g1"}, groupIDs(desc))
	})

	t.Run("missing values land last ascending and first descending", func(t *testing.T) {
		groups := []models.BookingGroup{
			sortableGroup("gMissing", "", "A", "", models.CompositeApproved),
			sortableGroup("g1", "2026-09-01", "B", "", models.CompositeApproved),
		}
		asc := FilterAndSort(groups, models.StatusAll, models.StatusAll, SortKeyDate, SortAscending)
		assert.Equal(t, []string{"g1", "gMissing"}, groupIDs(asc))

		desc := FilterAndSort(groups, models.StatusAll, models.StatusAll, SortKeyDate, SortDescending)
		assert.Equal(t, []string{"gMissing", "g1"}, groupIDs(desc))
	})

	t.Run("numeric columns compare numerically with zero fallback", func(t *testing.T) {
		groups := []models.BookingGroup{
			sortableGroup("g100", "2026-09-01", "A", "100", models.CompositeApproved),
			sortableGroup("g20", "2026-09-01", "B", "20", models.CompositeApproved),
			sortableGroup("gJunk", "2026-09-01", "C", "lots", models.CompositeApproved),
		}
		asc := FilterAndSort(groups, models.StatusAll, models.StatusAll, SortKeyExpectedPeople, SortAscending)
		// "lots" parses to zero and sorts before the real counts.
		assert.Equal(t, []string{"gJunk", "g20", "g100"}, groupIDs(asc))
	})

	t.Run("string columns compare case-insensitively", func(t *testing.T) {
		groups := []models.BookingGroup{
			sortableGroup("gB", "2026-09-01", "banana festival", "", models.CompositeApproved),
			sortableGroup("gA", "2026-09-01", "Apple Day", "", models.CompositeApproved),
		}
		asc := FilterAndSort(groups, models.StatusAll, models.StatusAll, SortKeyEventName, SortAscending)
		assert.Equal(t, []string{"gA", "gB"}, groupIDs(asc))
	})

	t.Run("ties keep input order", func(t *testing.T) {
		groups := []models.BookingGroup{
			sortableGroup("first", "2026-09-01", "Same", "", models.CompositeApproved),
			sortableGroup("second", "2026-09-01", "Same", "", models.CompositeApproved),
			sortableGroup("third", "2026-09-01", "Same", "", models.CompositeApproved),
		}
		asc := FilterAndSort(groups, models.StatusAll, models.StatusAll, SortKeyDate, SortAscending)
		assert.Equal(t, []string{"first", "second", "third"}, groupIDs(asc))
	})

	t.Run("sorting an already sorted list is a no-op", func(t *testing.T) {
		groups := []models.BookingGroup{
			sortableGroup("g1", "2026-09-01", "A", "", models.CompositeApproved),
			sortableGroup("g2", "2026-09-01", "B", "", models.CompositeApproved),
			sortableGroup("g3", "2026-09-15", "C", "", models.CompositeApproved),
		}
		once := FilterAndSort(groups, models.StatusAll, models.StatusAll, SortKeyDate, SortAscending)
		twice := FilterAndSort(once, models.StatusAll, models.StatusAll, SortKeyDate, SortAscending)
		assert.Equal(t, groupIDs(once), groupIDs(twice))
	})

	t.Run("empty sort key keeps input order", func(t *testing.T) {
		groups := []models.BookingGroup{
			sortableGroup("g2", "2026-09-15", "B", "", models.CompositeApproved),
			sortableGroup("g1", "2026-09-01", "A", "", models.CompositeApproved),
		}
		out := FilterAndSort(groups, models.StatusAll, models.StatusAll, "", "")
		assert.Equal(t, []string{"g2", "g1"}, groupIDs(out))
	})

	t.Run("input slice is not mutated", func(t *testing.T) {
		groups := []models.BookingGroup{
			sortableGroup("g2", "2026-09-15", "B", "", models.CompositeApproved),
			sortableGroup("g1", "2026-09-01", "A", "", models.CompositeApproved),
		}
		_ = FilterAndSort(groups, models.StatusAll, models.StatusAll, SortKeyDate, SortAscending)
		require.Equal(t, "g2", groups[0].GroupID)
	})
}
