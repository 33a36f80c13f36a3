//go:build unit

package commands_test

import (
	"context"
	"testing"

	"renthub/internal/infra"
	"renthub/internal/usecase/commands"
	"renthub/internal/usecase/shared"
	"renthub/tests/common/builder"
	queriesmock "renthub/tests/mock/queries"
	sharedmock "renthub/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingCommandsTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	uow      *sharedmock.MockUnitOfWork
	reads    *sharedmock.MockCommandReads
	tx       *sharedmock.MockTx
	bookings *sharedmock.MockBookingRepository
	store    *queriesmock.MockBookingReadStore
	commands commands.BookingCommands
}

func (s *BookingCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.uow = sharedmock.NewMockUnitOfWork(s.ctrl)
	s.reads = sharedmock.NewMockCommandReads(s.ctrl)
	s.tx = sharedmock.NewMockTx(s.ctrl)
	s.bookings = sharedmock.NewMockBookingRepository(s.ctrl)
	s.store = queriesmock.NewMockBookingReadStore(s.ctrl)
	s.commands = commands.NewBookingCommands(s.uow, s.store)

	s.uow.EXPECT().CommandReads().Return(s.reads).AnyTimes()
	s.tx.EXPECT().Bookings().Return(s.bookings).AnyTimes()
	s.tx.EXPECT().DB().Return(nil).AnyTimes()
}

func (s *BookingCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestBookingCommandsSuite(t *testing.T) {
	suite.Run(t, new(BookingCommandsTestSuite))
}

func (s *BookingCommandsTestSuite) expectWithin() {
	s.uow.EXPECT().
		Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.tx)
		})
}

func notFoundErr() error {
	return infra.WrapRepoErr("not found", nil, infra.KindNotFound)
}

// ================================================================================
// Create
// ================================================================================

func (s *BookingCommandsTestSuite) TestCreate() {
	s.Run("success: waiting booking created and refreshed view returned", func() {
		bld := builder.NewBookingBuilder()
		req := commands.CreateBookingRequest{ItemID: bld.ItemID, Start: bld.Start, End: bld.End}
		view := bld.BuildView()

		s.reads.EXPECT().ItemByID(gomock.Any(), bld.ItemID).Return(bld.BuildItemSnapshot(), nil)
		s.reads.EXPECT().UserByID(gomock.Any(), bld.BookerID).Return(&shared.UserSnapshot{ID: bld.BookerID, IsActive: true}, nil)
		s.expectWithin()
		s.bookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(bld.ID, nil)
		s.store.EXPECT().FindByID(gomock.Any(), bld.ID).Return(view, nil)

		actual, err := s.commands.Create(context.Background(), bld.BookerID, req)
		s.Require().NoError(err)
		s.Equal(view, actual)
	})

	s.Run("error: item does not exist", func() {
		bld := builder.NewBookingBuilder()
		req := commands.CreateBookingRequest{ItemID: bld.ItemID, Start: bld.Start, End: bld.End}

		s.reads.EXPECT().ItemByID(gomock.Any(), bld.ItemID).Return(nil, notFoundErr())

		_, err := s.commands.Create(context.Background(), bld.BookerID, req)
		s.Require().ErrorIs(err, commands.ErrItemNotFound)
	})

	s.Run("error: item not available", func() {
		bld := builder.NewBookingBuilder().WithAvailable(false)
		req := commands.CreateBookingRequest{ItemID: bld.ItemID, Start: bld.Start, End: bld.End}

		s.reads.EXPECT().ItemByID(gomock.Any(), bld.ItemID).Return(bld.BuildItemSnapshot(), nil)

		_, err := s.commands.Create(context.Background(), bld.BookerID, req)
		s.Require().ErrorIs(err, commands.ErrItemUnavailable)
	})

	s.Run("error: booker does not exist", func() {
		bld := builder.NewBookingBuilder()
		req := commands.CreateBookingRequest{ItemID: bld.ItemID, Start: bld.Start, End: bld.End}

		s.reads.EXPECT().ItemByID(gomock.Any(), bld.ItemID).Return(bld.BuildItemSnapshot(), nil)
		s.reads.EXPECT().UserByID(gomock.Any(), bld.BookerID).Return(nil, notFoundErr())

		_, err := s.commands.Create(context.Background(), bld.BookerID, req)
		s.Require().ErrorIs(err, commands.ErrUserNotFound)
	})

	s.Run("error: booking own item", func() {
		bld := builder.NewBookingBuilder().AsOwnItemBooking()
		req := commands.CreateBookingRequest{ItemID: bld.ItemID, Start: bld.Start, End: bld.End}

		s.reads.EXPECT().ItemByID(gomock.Any(), bld.ItemID).Return(bld.BuildItemSnapshot(), nil)
		s.reads.EXPECT().UserByID(gomock.Any(), bld.BookerID).Return(&shared.UserSnapshot{ID: bld.BookerID, IsActive: true}, nil)

		_, err := s.commands.Create(context.Background(), bld.BookerID, req)
		s.Require().ErrorIs(err, commands.ErrOwnItemBooking)
	})

	s.Run("error: coincident period", func() {
		bld := builder.NewBookingBuilder()
		req := commands.CreateBookingRequest{ItemID: bld.ItemID, Start: bld.Start, End: bld.Start}

		s.reads.EXPECT().ItemByID(gomock.Any(), bld.ItemID).Return(bld.BuildItemSnapshot(), nil)
		s.reads.EXPECT().UserByID(gomock.Any(), bld.BookerID).Return(&shared.UserSnapshot{ID: bld.BookerID, IsActive: true}, nil)

		_, err := s.commands.Create(context.Background(), bld.BookerID, req)
		s.Require().ErrorIs(err, commands.ErrInvalidPeriod)
	})

	s.Run("error: inverted period", func() {
		bld := builder.NewBookingBuilder()
		req := commands.CreateBookingRequest{ItemID: bld.ItemID, Start: bld.End, End: bld.Start}

		s.reads.EXPECT().ItemByID(gomock.Any(), bld.ItemID).Return(bld.BuildItemSnapshot(), nil)
		s.reads.EXPECT().UserByID(gomock.Any(), bld.BookerID).Return(&shared.UserSnapshot{ID: bld.BookerID, IsActive: true}, nil)

		_, err := s.commands.Create(context.Background(), bld.BookerID, req)
		s.Require().ErrorIs(err, commands.ErrInvalidPeriod)
	})
}

// ================================================================================
// Decide
// ================================================================================

func (s *BookingCommandsTestSuite) TestDecide() {
	s.Run("success: approve", func() {
		bld := builder.NewBookingBuilder()
		snap := bld.BuildSnapshot()
		view := bld.BuildView()
		view.Status = "approved"

		s.reads.EXPECT().BookingByID(gomock.Any(), bld.ID).Return(snap, nil)
		s.reads.EXPECT().UserByID(gomock.Any(), bld.OwnerID).Return(&shared.UserSnapshot{ID: bld.OwnerID, IsActive: true}, nil)
		s.expectWithin()
		s.bookings.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), bld.ID, gomock.Any(), gomock.Any()).Return(nil)
		s.store.EXPECT().FindByID(gomock.Any(), bld.ID).Return(view, nil)

		actual, err := s.commands.Decide(context.Background(), bld.OwnerID, bld.ID, true)
		s.Require().NoError(err)
		s.Equal("approved", actual.Status)
	})

	s.Run("error: booking does not exist", func() {
		s.reads.EXPECT().BookingByID(gomock.Any(), gomock.Any()).Return(nil, notFoundErr())

		_, err := s.commands.Decide(context.Background(), uuid.New(), uuid.New(), true)
		s.Require().ErrorIs(err, commands.ErrBookingNotFound)
	})

	s.Run("error: already decided at snapshot read", func() {
		bld := builder.NewBookingBuilder().WithStatus("approved")

		s.reads.EXPECT().BookingByID(gomock.Any(), bld.ID).Return(bld.BuildSnapshot(), nil)

		_, err := s.commands.Decide(context.Background(), bld.OwnerID, bld.ID, false)
		s.Require().ErrorIs(err, commands.ErrAlreadyDecided)
	})

	s.Run("error: deciding user does not exist", func() {
		bld := builder.NewBookingBuilder()

		s.reads.EXPECT().BookingByID(gomock.Any(), bld.ID).Return(bld.BuildSnapshot(), nil)
		s.reads.EXPECT().UserByID(gomock.Any(), bld.OwnerID).Return(nil, notFoundErr())

		_, err := s.commands.Decide(context.Background(), bld.OwnerID, bld.ID, true)
		s.Require().ErrorIs(err, commands.ErrUserNotFound)
	})

	s.Run("error: booker deciding own booking", func() {
		bld := builder.NewBookingBuilder()

		s.reads.EXPECT().BookingByID(gomock.Any(), bld.ID).Return(bld.BuildSnapshot(), nil)
		s.reads.EXPECT().UserByID(gomock.Any(), bld.BookerID).Return(&shared.UserSnapshot{ID: bld.BookerID, IsActive: true}, nil)

		_, err := s.commands.Decide(context.Background(), bld.BookerID, bld.ID, true)
		s.Require().ErrorIs(err, commands.ErrSelfDecision)
	})

	s.Run("error: concurrent decision lost the conditional update", func() {
		bld := builder.NewBookingBuilder()

		s.reads.EXPECT().BookingByID(gomock.Any(), bld.ID).Return(bld.BuildSnapshot(), nil)
		s.reads.EXPECT().UserByID(gomock.Any(), bld.OwnerID).Return(&shared.UserSnapshot{ID: bld.OwnerID, IsActive: true}, nil)
		s.expectWithin()
		s.bookings.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), bld.ID, gomock.Any(), gomock.Any()).
			Return(infra.WrapRepoErr("booking status already changed", nil, infra.KindStaleStatus))

		_, err := s.commands.Decide(context.Background(), bld.OwnerID, bld.ID, true)
		s.Require().ErrorIs(err, commands.ErrAlreadyDecided)
	})
}
