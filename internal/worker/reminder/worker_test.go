package reminder

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/handyhub-ie/HandyHub-BookingService/internal/domain"
	"github.com/handyhub-ie/HandyHub-BookingService/internal/integrations/pushgateway"
	"github.com/handyhub-ie/HandyHub-BookingService/internal/integrations/userdirectory"
	"github.com/handyhub-ie/HandyHub-BookingService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type fakeBookingRepo struct {
	due []*domain.Booking

	alreadyMarked map[int64]bool
	markerErr     map[int64]error

	from, to time.Time
	claimed  []int64
}

func (f *fakeBookingRepo) GetDueForReminder(_ context.Context, from, to time.Time, _ string) ([]*domain.Booking, error) {
	f.from = from
	f.to = to
	return f.due, nil
}

func (f *fakeBookingRepo) AddNotificationMarker(_ context.Context, id int64, _ string) (bool, error) {
	if err := f.markerErr[id]; err != nil {
		return false, err
	}
	if f.alreadyMarked[id] {
		return false, nil
	}
	f.claimed = append(f.claimed, id)
	return true, nil
}

type fakeUserClient struct {
	users map[int64]*userdirectory.User
}

func (f *fakeUserClient) GetUser(_ context.Context, id int64) (*userdirectory.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, userdirectory.ErrUserNotFound
	}
	return user, nil
}

type fakePushClient struct {
	sendErr error
	sent    []pushgateway.Notification
}

func (f *fakePushClient) Send(_ context.Context, notification pushgateway.Notification) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, notification)
	return nil
}

var testNow = time.Date(2026, 9, 6, 10, 0, 0, 0, time.UTC)

func dueBooking(id, customerID int64) *domain.Booking {
	return &domain.Booking{
		ID:          id,
		CustomerID:  customerID,
		ProviderID:  7,
		BookingDate: time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC),
		StartTime:   "10:00",
		Status:      domain.StatusConfirmed,
	}
}

func newTestWorker(repo *fakeBookingRepo, users map[int64]*userdirectory.User, push *fakePushClient) *Worker {
	return New(repo, &fakeUserClient{users: users}, push, fixedTime{now: testNow}, nopLogger{}, Config{
		Interval:     5 * time.Minute,
		Lookahead:    24 * time.Hour,
		SweepTimeout: time.Minute,
	})
}

func TestWorker_SweepSendsReminders(t *testing.T) {
	repo := &fakeBookingRepo{due: []*domain.Booking{dueBooking(1, 100), dueBooking(2, 200)}}
	users := map[int64]*userdirectory.User{
		100: {ID: 100, PushToken: ptr.Ptr("token-100")},
		200: {ID: 200, PushToken: ptr.Ptr("token-200")},
	}
	push := &fakePushClient{}

	w := newTestWorker(repo, users, push)

	err := w.Sweep(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, repo.claimed)
	require.Len(t, push.sent, 2)
	assert.Equal(t, "token-100", push.sent[0].To)
	assert.Equal(t, testNow, repo.from)
	assert.Equal(t, testNow.Add(24*time.Hour), repo.to)
}

func TestWorker_SkipsAlreadyClaimedBooking(t *testing.T) {
	repo := &fakeBookingRepo{
		due:           []*domain.Booking{dueBooking(1, 100)},
		alreadyMarked: map[int64]bool{1: true},
	}
	users := map[int64]*userdirectory.User{100: {ID: 100, PushToken: ptr.Ptr("token-100")}}
	push := &fakePushClient{}

	w := newTestWorker(repo, users, push)

	err := w.Sweep(context.Background())

	require.NoError(t, err)
	assert.Empty(t, push.sent)
}

func TestWorker_ContinuesAfterPerBookingFailure(t *testing.T) {
	repo := &fakeBookingRepo{
		due:       []*domain.Booking{dueBooking(1, 100), dueBooking(2, 200)},
		markerErr: map[int64]error{1: errors.New("deadlock")},
	}
	users := map[int64]*userdirectory.User{
		100: {ID: 100, PushToken: ptr.Ptr("token-100")},
		200: {ID: 200, PushToken: ptr.Ptr("token-200")},
	}
	push := &fakePushClient{}

	w := newTestWorker(repo, users, push)

	err := w.Sweep(context.Background())

	require.NoError(t, err)
	require.Len(t, push.sent, 1)
	assert.Equal(t, "token-200", push.sent[0].To)
}

func TestWorker_SkipsCustomerWithoutPushToken(t *testing.T) {
	repo := &fakeBookingRepo{due: []*domain.Booking{dueBooking(1, 100)}}
	users := map[int64]*userdirectory.User{100: {ID: 100}}
	push := &fakePushClient{}

	w := newTestWorker(repo, users, push)

	err := w.Sweep(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []int64{1}, repo.claimed)
	assert.Empty(t, push.sent)
}

func TestWorker_SkipsMissingCustomer(t *testing.T) {
	repo := &fakeBookingRepo{due: []*domain.Booking{dueBooking(1, 100)}}
	push := &fakePushClient{}

	w := newTestWorker(repo, map[int64]*userdirectory.User{}, push)

	err := w.Sweep(context.Background())

	require.NoError(t, err)
	assert.Empty(t, push.sent)
}

func TestWorker_EmptySweepIsNoop(t *testing.T) {
	repo := &fakeBookingRepo{}
	push := &fakePushClient{}

	w := newTestWorker(repo, map[int64]*userdirectory.User{}, push)

	err := w.Sweep(context.Background())

	require.NoError(t, err)
	assert.Empty(t, repo.claimed)
}
