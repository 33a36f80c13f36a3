//go:build unit

package booking_test

import (
	"testing"
	"time"

	"renthub/internal/domain/booking"
	"renthub/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.BookingBuilder)
	errIs  error
}

func TestBooking(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		b := builder.NewBookingBuilder()
		actual, err := b.BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, b.ItemID, actual.ItemID())
		assert.Equal(t, b.OwnerID, actual.ItemOwnerID())
		assert.Equal(t, b.BookerID, actual.BookerID())
		assert.Equal(t, booking.StatusWaiting, actual.Status())
		assert.True(t, actual.IsWaiting())
	})

	t.Run("period validation", func(t *testing.T) {
		start := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

		runCases(t, []testCase{
			{
				name:   "start before end",
				mutate: func(b *builder.BookingBuilder) { b.WithPeriod(start, start.Add(time.Hour)) },
			},
			{
				name:   "one second period",
				mutate: func(b *builder.BookingBuilder) { b.WithPeriod(start, start.Add(time.Second)) },
			},
			{
				name:   "coincident start and end",
				mutate: func(b *builder.BookingBuilder) { b.WithPeriod(start, start) },
				errIs:  booking.ErrCoincidentPeriod,
			},
			{
				name:   "start after end",
				mutate: func(b *builder.BookingBuilder) { b.WithPeriod(start.Add(time.Hour), start) },
				errIs:  booking.ErrInvertedPeriod,
			},
		})
	})

	t.Run("own item booking", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "booker is the item owner",
				mutate: func(b *builder.BookingBuilder) { b.AsOwnItemBooking() },
				errIs:  booking.ErrOwnItem,
			},
		})
	})

	t.Run("own item check wins over period validation", func(t *testing.T) {
		// Both violations at once: the authorization failure must surface,
		// not the period one.
		start := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
		b := builder.NewBookingBuilder().AsOwnItemBooking().WithPeriod(start, start)

		actual, err := b.BuildDomain()
		require.Nil(t, actual)
		require.ErrorIs(t, err, booking.ErrOwnItem)
	})

	t.Run("decision transitions", func(t *testing.T) {
		t.Run("approve from waiting", func(t *testing.T) {
			b, err := builder.NewBookingBuilder().BuildDomain()
			require.NoError(t, err)

			require.NoError(t, b.Approve())
			assert.Equal(t, booking.StatusApproved, b.Status())
		})

		t.Run("reject from waiting", func(t *testing.T) {
			b, err := builder.NewBookingBuilder().BuildDomain()
			require.NoError(t, err)

			require.NoError(t, b.Reject())
			assert.Equal(t, booking.StatusRejected, b.Status())
		})

		t.Run("approved booking rejects further decisions", func(t *testing.T) {
			b, err := builder.NewBookingBuilder().BuildDomain()
			require.NoError(t, err)
			require.NoError(t, b.Approve())

			assert.ErrorIs(t, b.Approve(), booking.ErrAlreadyDecided)
			assert.ErrorIs(t, b.Reject(), booking.ErrAlreadyDecided)
			assert.Equal(t, booking.StatusApproved, b.Status())
		})

		t.Run("rejected booking rejects further decisions", func(t *testing.T) {
			b, err := builder.NewBookingBuilder().BuildDomain()
			require.NoError(t, err)
			require.NoError(t, b.Reject())

			assert.ErrorIs(t, b.Approve(), booking.ErrAlreadyDecided)
			assert.Equal(t, booking.StatusRejected, b.Status())
		})
	})

	t.Run("participant check", func(t *testing.T) {
		bld := builder.NewBookingBuilder()
		b, err := bld.BuildDomain()
		require.NoError(t, err)

		assert.True(t, b.IsParticipant(bld.BookerID))
		assert.True(t, b.IsParticipant(bld.OwnerID))
		assert.False(t, b.IsParticipant(uuid.New()))
	})
}

func TestPeriodContains(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	period, err := booking.NewPeriod(now.Add(-time.Hour), now.Add(time.Hour))
	require.NoError(t, err)

	t.Run("inside the window", func(t *testing.T) {
		assert.True(t, period.Contains(now))
	})

	t.Run("exactly at start", func(t *testing.T) {
		assert.True(t, period.Contains(now.Add(-time.Hour)))
	})

	t.Run("exactly at end is already past", func(t *testing.T) {
		// Half-open interval: [start, end)
		end := now.Add(time.Hour)
		assert.False(t, period.Contains(end))
		assert.True(t, period.IsPast(end))
		assert.False(t, period.IsFuture(end))
	})

	t.Run("before start is future", func(t *testing.T) {
		assert.False(t, period.Contains(now.Add(-2*time.Hour)))
		assert.True(t, period.IsFuture(now.Add(-2*time.Hour)))
	})

	t.Run("every instant lands in exactly one bucket", func(t *testing.T) {
		// past/current/future must partition the timeline, boundaries included.
		instants := []time.Time{
			now.Add(-2 * time.Hour), // before start
			now.Add(-time.Hour),     // exactly at start
			now,                     // inside
			now.Add(time.Hour),      // exactly at end
			now.Add(2 * time.Hour),  // after end
		}
		for _, at := range instants {
			buckets := 0
			for _, hit := range []bool{period.IsPast(at), period.Contains(at), period.IsFuture(at)} {
				if hit {
					buckets++
				}
			}
			assert.Equalf(t, 1, buckets, "instant %s", at)
		}
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewBookingBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
