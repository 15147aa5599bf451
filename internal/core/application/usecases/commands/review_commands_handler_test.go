package commands_test

import (
	"errors"
	"testing"
	"time"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/review"
	"foodorder/internal/core/domain/services"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func mustRating(v int) review.Rating {
	r, err := review.NewRating(v)
	if err != nil {
		panic(err)
	}
	return r
}

func existingReview(customerID kernel.UUID, target review.Target, rating int) *review.Review {
	now := time.Now().UTC()
	return review.RestoreReview(kernel.NewUUID(), customerID, target, mustRating(rating), "ok", now, now)
}

func reviewFactory(uows ...*MockUoW) *MockReviewUoWFactory {
	return &MockReviewUoWFactory{uows: uows}
}

func TestAddReviewCommandHandler_Handle_RestaurantReviewAfterOrder(t *testing.T) {
	ctx := t.Context()
	customer := mustActor(kernel.RoleCustomer)
	restaurantID := kernel.NewUUID()
	target, err := review.NewRestaurantTarget(restaurantID)
	require.NoError(t, err)
	uow := newMockUoW()

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.ratings.On("LockTarget", mock.Anything, target).Return(nil).Once(),
		uow.orders.On("ExistsForCustomerAndRestaurant", mock.Anything, customer.ID(), restaurantID).Return(true, nil).Once(),
		uow.reviews.On("ExistsForCustomerAndTarget", mock.Anything, customer.ID(), target).Return(false, nil).Once(),
		uow.reviews.On("Add", mock.Anything, mock.AnythingOfType("*review.Review")).Return(nil).Once(),
		uow.reviews.On("RatingsOf", mock.Anything, target).Return([]review.Rating{mustRating(5), mustRating(4)}, nil).Once(),
		uow.ratings.On("SetRating", mock.Anything, target, 4.5).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	cmd, err := commands.NewAddReviewCommand(customer, &restaurantID, nil, 4, "great biryani")
	require.NoError(t, err)

	r, err := commands.NewAddReviewCommandHandler(reviewFactory(uow), services.NewDefaultAccessPolicy()).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 4, r.Rating().Int())
	assert.Equal(t, "great biryani", r.Comment())
	assert.True(t, r.IsWrittenBy(customer.ID()))
	uow.assertExpectations(t)
}

func TestAddReviewCommandHandler_Handle_RestaurantReviewWithoutOrderIsDenied(t *testing.T) {
	ctx := t.Context()
	customer := mustActor(kernel.RoleCustomer)
	restaurantID := kernel.NewUUID()
	target, err := review.NewRestaurantTarget(restaurantID)
	require.NoError(t, err)
	uow := newMockUoW()

	uow.expectTx(ctx, false, nil)
	uow.ratings.On("LockTarget", mock.Anything, target).Return(nil).Once()
	uow.orders.On("ExistsForCustomerAndRestaurant", mock.Anything, customer.ID(), restaurantID).Return(false, nil).Once()

	cmd, err := commands.NewAddReviewCommand(customer, &restaurantID, nil, 4, "")
	require.NoError(t, err)

	_, err = commands.NewAddReviewCommandHandler(reviewFactory(uow), services.NewDefaultAccessPolicy()).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrAccessDenied)
	uow.assertExpectations(t)
}

func TestAddReviewCommandHandler_Handle_MenuItemReviewNeedsNoOrder(t *testing.T) {
	ctx := t.Context()
	customer := mustActor(kernel.RoleCustomer)
	menuItemID := kernel.NewUUID()
	target, err := review.NewMenuItemTarget(menuItemID)
	require.NoError(t, err)
	uow := newMockUoW()

	uow.expectTx(ctx, true, nil)
	uow.ratings.On("LockTarget", mock.Anything, target).Return(nil).Once()
	uow.reviews.On("ExistsForCustomerAndTarget", mock.Anything, customer.ID(), target).Return(false, nil).Once()
	uow.reviews.On("Add", mock.Anything, mock.AnythingOfType("*review.Review")).Return(nil).Once()
	uow.reviews.On("RatingsOf", mock.Anything, target).Return([]review.Rating{mustRating(3)}, nil).Once()
	uow.ratings.On("SetRating", mock.Anything, target, 3.0).Return(nil).Once()

	cmd, err := commands.NewAddReviewCommand(customer, nil, &menuItemID, 3, "")
	require.NoError(t, err)

	_, err = commands.NewAddReviewCommandHandler(reviewFactory(uow), services.NewDefaultAccessPolicy()).Handle(ctx, cmd)

	require.NoError(t, err)
	uow.orders.AssertNotCalled(t, "ExistsForCustomerAndRestaurant", mock.Anything, mock.Anything, mock.Anything)
	uow.assertExpectations(t)
}

func TestAddReviewCommandHandler_Handle_DuplicateIsConflict(t *testing.T) {
	ctx := t.Context()
	customer := mustActor(kernel.RoleCustomer)
	menuItemID := kernel.NewUUID()
	target, err := review.NewMenuItemTarget(menuItemID)
	require.NoError(t, err)
	uow := newMockUoW()

	uow.expectTx(ctx, false, nil)
	uow.ratings.On("LockTarget", mock.Anything, target).Return(nil).Once()
	uow.reviews.On("ExistsForCustomerAndTarget", mock.Anything, customer.ID(), target).Return(true, nil).Once()

	cmd, err := commands.NewAddReviewCommand(customer, nil, &menuItemID, 5, "")
	require.NoError(t, err)

	_, err = commands.NewAddReviewCommandHandler(reviewFactory(uow), services.NewDefaultAccessPolicy()).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectAlreadyExists)
	uow.assertExpectations(t)
}

func TestAddReviewCommandHandler_Handle_UnknownTarget(t *testing.T) {
	ctx := t.Context()
	customer := mustActor(kernel.RoleCustomer)
	menuItemID := kernel.NewUUID()
	target, err := review.NewMenuItemTarget(menuItemID)
	require.NoError(t, err)
	uow := newMockUoW()

	uow.expectTx(ctx, false, nil)
	uow.ratings.On("LockTarget", mock.Anything, target).Return(errs.NewObjectNotFoundError("menuItem", menuItemID.String())).Once()

	cmd, err := commands.NewAddReviewCommand(customer, nil, &menuItemID, 5, "")
	require.NoError(t, err)

	_, err = commands.NewAddReviewCommandHandler(reviewFactory(uow), services.NewDefaultAccessPolicy()).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.assertExpectations(t)
}

func TestAddReviewCommandHandler_Handle_OnlyCustomers(t *testing.T) {
	menuItemID := kernel.NewUUID()
	cmd, err := commands.NewAddReviewCommand(mustActor(kernel.RoleVendor), nil, &menuItemID, 5, "")
	require.NoError(t, err)

	_, err = commands.NewAddReviewCommandHandler(reviewFactory(), services.NewDefaultAccessPolicy()).Handle(t.Context(), cmd)
	require.ErrorIs(t, err, errs.ErrAccessDenied)
}

func TestNewAddReviewCommand(t *testing.T) {
	customer := mustActor(kernel.RoleCustomer)
	id := kernel.NewUUID()

	_, err := commands.NewAddReviewCommand(customer, &id, nil, 0, "")
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	_, err = commands.NewAddReviewCommand(customer, &id, nil, 6, "")
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	_, err = commands.NewAddReviewCommand(customer, &id, &id, 3, "")
	require.Error(t, err, "both targets")

	_, err = commands.NewAddReviewCommand(customer, nil, nil, 3, "")
	require.Error(t, err, "no target")

	cmd, err := commands.NewAddReviewCommand(customer, nil, &id, 1, "meh")
	require.NoError(t, err)
	assert.True(t, cmd.Target().IsMenuItem())
}

func TestUpdateReviewCommandHandler_Handle_AuthorEdits(t *testing.T) {
	ctx := t.Context()
	customer := mustActor(kernel.RoleCustomer)
	target, err := review.NewMenuItemTarget(kernel.NewUUID())
	require.NoError(t, err)
	r := existingReview(customer.ID(), target, 2)
	uow := newMockUoW()

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.reviews.On("Get", mock.Anything, r.ID()).Return(r, nil).Once(),
		uow.ratings.On("LockTarget", mock.Anything, target).Return(nil).Once(),
		uow.reviews.On("Update", mock.Anything, r).Return(nil).Once(),
		uow.reviews.On("RatingsOf", mock.Anything, target).Return([]review.Rating{mustRating(5), mustRating(4), mustRating(4)}, nil).Once(),
		uow.ratings.On("SetRating", mock.Anything, target, mock.MatchedBy(func(v float64) bool {
			return v > 4.33 && v < 4.34
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	rating := 5
	cmd, err := commands.NewUpdateReviewCommand(customer, r.ID(), &rating, nil)
	require.NoError(t, err)

	updated, err := commands.NewUpdateReviewCommandHandler(reviewFactory(uow), services.NewDefaultAccessPolicy()).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 5, updated.Rating().Int())
	assert.Equal(t, "ok", updated.Comment())
	uow.assertExpectations(t)
}

func TestUpdateReviewCommandHandler_Handle_OtherCustomerIsDenied(t *testing.T) {
	ctx := t.Context()
	target, err := review.NewMenuItemTarget(kernel.NewUUID())
	require.NoError(t, err)
	r := existingReview(kernel.NewUUID(), target, 2)
	uow := newMockUoW()

	uow.expectTx(ctx, false, nil)
	uow.reviews.On("Get", mock.Anything, r.ID()).Return(r, nil).Once()

	comment := "changed"
	cmd, err := commands.NewUpdateReviewCommand(mustActor(kernel.RoleCustomer), r.ID(), nil, &comment)
	require.NoError(t, err)

	_, err = commands.NewUpdateReviewCommandHandler(reviewFactory(uow), services.NewDefaultAccessPolicy()).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrAccessDenied)
	assert.Equal(t, "ok", r.Comment())
	uow.assertExpectations(t)
}

func TestNewUpdateReviewCommand(t *testing.T) {
	customer := mustActor(kernel.RoleCustomer)

	_, err := commands.NewUpdateReviewCommand(customer, kernel.NewUUID(), nil, nil)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	bad := 9
	_, err = commands.NewUpdateReviewCommand(customer, kernel.NewUUID(), &bad, nil)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestDeleteReviewCommandHandler_Handle(t *testing.T) {
	tests := []struct {
		name     string
		actor    func(author kernel.UUID) kernel.Actor
		moderate bool
		wantErr  error
	}{
		{
			name:  "author deletes",
			actor: func(author kernel.UUID) kernel.Actor { a, _ := kernel.NewActor(author, kernel.RoleCustomer); return a },
		},
		{
			name:  "admin deletes",
			actor: func(kernel.UUID) kernel.Actor { return mustActor(kernel.RoleAdmin) },
		},
		{
			name:     "admin moderates",
			actor:    func(kernel.UUID) kernel.Actor { return mustActor(kernel.RoleAdmin) },
			moderate: true,
		},
		{
			name:    "other customer",
			actor:   func(kernel.UUID) kernel.Actor { return mustActor(kernel.RoleCustomer) },
			wantErr: errs.ErrAccessDenied,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := t.Context()
			target, err := review.NewRestaurantTarget(kernel.NewUUID())
			require.NoError(t, err)
			r := existingReview(kernel.NewUUID(), target, 1)
			uow := newMockUoW()

			uow.expectTx(ctx, tt.wantErr == nil, nil)
			uow.reviews.On("Get", mock.Anything, r.ID()).Return(r, nil).Once()
			if tt.wantErr == nil {
				uow.ratings.On("LockTarget", mock.Anything, target).Return(nil).Once()
				uow.reviews.On("Delete", mock.Anything, r.ID()).Return(nil).Once()
				uow.reviews.On("RatingsOf", mock.Anything, target).Return([]review.Rating{}, nil).Once()
				uow.ratings.On("SetRating", mock.Anything, target, 0.0).Return(nil).Once()
			}

			newCmd := commands.NewDeleteReviewCommand
			if tt.moderate {
				newCmd = commands.NewModerateReviewCommand
			}
			cmd, err := newCmd(tt.actor(r.CustomerID()), r.ID())
			require.NoError(t, err)

			err = commands.NewDeleteReviewCommandHandler(reviewFactory(uow), services.NewDefaultAccessPolicy()).Handle(ctx, cmd)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			uow.assertExpectations(t)
		})
	}
}

func TestDeleteReviewCommandHandler_Handle_CustomerCannotModerate(t *testing.T) {
	cmd, err := commands.NewModerateReviewCommand(mustActor(kernel.RoleCustomer), kernel.NewUUID())
	require.NoError(t, err)

	err = commands.NewDeleteReviewCommandHandler(reviewFactory(), services.NewDefaultAccessPolicy()).Handle(t.Context(), cmd)
	require.ErrorIs(t, err, errs.ErrAccessDenied)
}

func TestReconcileRatingsCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	good, err := review.NewMenuItemTarget(kernel.NewUUID())
	require.NoError(t, err)
	bad, err := review.NewRestaurantTarget(kernel.NewUUID())
	require.NoError(t, err)

	listUoW, goodUoW, badUoW := newMockUoW(), newMockUoW(), newMockUoW()
	listUoW.reviews.On("ReviewedTargets", mock.Anything).Return([]review.Target{good, bad}, nil).Once()

	goodUoW.expectTx(ctx, true, nil)
	goodUoW.ratings.On("LockTarget", mock.Anything, good).Return(nil).Once()
	goodUoW.reviews.On("RatingsOf", mock.Anything, good).Return([]review.Rating{mustRating(2), mustRating(3)}, nil).Once()
	goodUoW.ratings.On("SetRating", mock.Anything, good, 2.5).Return(nil).Once()

	badUoW.expectTx(ctx, false, nil)
	badUoW.ratings.On("LockTarget", mock.Anything, bad).Return(errors.New("lock timeout")).Once()

	done, err := commands.NewReconcileRatingsCommandHandler(reviewFactory(listUoW, goodUoW, badUoW)).Handle(ctx)

	require.ErrorContains(t, err, "lock timeout")
	assert.Equal(t, 1, done)
	listUoW.assertExpectations(t)
	goodUoW.assertExpectations(t)
	badUoW.assertExpectations(t)
}

func TestRecomputeRatingCommandHandler_Handle_NoReviewsIsZero(t *testing.T) {
	ctx := t.Context()
	target, err := review.NewRestaurantTarget(kernel.NewUUID())
	require.NoError(t, err)
	uow := newMockUoW()

	uow.expectTx(ctx, true, nil)
	uow.ratings.On("LockTarget", mock.Anything, target).Return(nil).Once()
	uow.reviews.On("RatingsOf", mock.Anything, target).Return(nil, nil).Once()
	uow.ratings.On("SetRating", mock.Anything, target, 0.0).Return(nil).Once()

	cmd, err := commands.NewRecomputeRatingCommand(target)
	require.NoError(t, err)

	mean, err := commands.NewRecomputeRatingCommandHandler(reviewFactory(uow)).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Zero(t, mean)
	uow.assertExpectations(t)
}
