//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"renthub/internal/infra"
	"renthub/internal/usecase/queries"
	"renthub/tests/common/builder"
	queriesmock "renthub/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newBookingQueries(t *testing.T) (*queriesmock.MockBookingReadStore, *queriesmock.MockUserReadStore, queries.BookingQueries) {
	t.Helper()
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockBookingReadStore(ctrl)
	users := queriesmock.NewMockUserReadStore(ctrl)
	return store, users, queries.NewBookingQueries(store, users)
}

func TestBookingQueriesGetByID(t *testing.T) {
	t.Run("booker can read", func(t *testing.T) {
		store, users, q := newBookingQueries(t)
		bld := builder.NewBookingBuilder()
		view := bld.BuildView()

		store.EXPECT().FindByID(gomock.Any(), bld.ID).Return(view, nil)
		users.EXPECT().FindByID(gomock.Any(), bld.BookerID).Return(&queries.UserView{ID: bld.BookerID}, nil)

		actual, err := q.GetByID(context.Background(), bld.BookerID, bld.ID)
		require.NoError(t, err)
		require.Equal(t, view, actual)
	})

	t.Run("item owner can read", func(t *testing.T) {
		store, users, q := newBookingQueries(t)
		bld := builder.NewBookingBuilder()
		view := bld.BuildView()

		store.EXPECT().FindByID(gomock.Any(), bld.ID).Return(view, nil)
		users.EXPECT().FindByID(gomock.Any(), bld.OwnerID).Return(&queries.UserView{ID: bld.OwnerID}, nil)

		actual, err := q.GetByID(context.Background(), bld.OwnerID, bld.ID)
		require.NoError(t, err)
		require.Equal(t, view, actual)
	})

	t.Run("third party is rejected", func(t *testing.T) {
		store, users, q := newBookingQueries(t)
		bld := builder.NewBookingBuilder()
		stranger := uuid.New()

		store.EXPECT().FindByID(gomock.Any(), bld.ID).Return(bld.BuildView(), nil)
		users.EXPECT().FindByID(gomock.Any(), stranger).Return(&queries.UserView{ID: stranger}, nil)

		_, err := q.GetByID(context.Background(), stranger, bld.ID)
		require.ErrorIs(t, err, queries.ErrBookingAccess)
	})

	t.Run("missing booking reported before caller checks", func(t *testing.T) {
		store, _, q := newBookingQueries(t)

		store.EXPECT().FindByID(gomock.Any(), gomock.Any()).
			Return(nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound))

		_, err := q.GetByID(context.Background(), uuid.New(), uuid.New())
		require.ErrorIs(t, err, queries.ErrBookingNotFound)
	})

	t.Run("unknown caller", func(t *testing.T) {
		store, users, q := newBookingQueries(t)
		bld := builder.NewBookingBuilder()
		stranger := uuid.New()

		store.EXPECT().FindByID(gomock.Any(), bld.ID).Return(bld.BuildView(), nil)
		users.EXPECT().FindByID(gomock.Any(), stranger).
			Return(nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound))

		_, err := q.GetByID(context.Background(), stranger, bld.ID)
		require.ErrorIs(t, err, queries.ErrUserNotFound)
	})
}

func TestBookingQueriesList(t *testing.T) {
	t.Run("delegates validated arguments to the store", func(t *testing.T) {
		store, users, q := newBookingQueries(t)
		subjectID := uuid.New()
		now := time.Now()
		page := queries.Page{Limit: 20, Offset: 0}
		views := []*queries.BookingView{builder.NewBookingBuilder().BuildView()}

		users.EXPECT().FindByID(gomock.Any(), subjectID).Return(&queries.UserView{ID: subjectID}, nil)
		store.EXPECT().ListBySubject(gomock.Any(), queries.RoleOwner, subjectID, queries.FilterCurrent, now, page).Return(views, nil)

		actual, err := q.List(context.Background(), subjectID, queries.RoleOwner, queries.FilterCurrent, now, page)
		require.NoError(t, err)
		require.Equal(t, views, actual)
	})

	t.Run("unknown subject", func(t *testing.T) {
		_, users, q := newBookingQueries(t)
		subjectID := uuid.New()

		users.EXPECT().FindByID(gomock.Any(), subjectID).
			Return(nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound))

		_, err := q.List(context.Background(), subjectID, queries.RoleBooker, queries.FilterAll, time.Now(), queries.Page{Limit: 20})
		require.ErrorIs(t, err, queries.ErrUserNotFound)
	})
}
