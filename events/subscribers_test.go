package events

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	advocateRepo "quicklegal/database/repository/advocate"
	bookingRepo "quicklegal/database/repository/booking"
	"quicklegal/models"
	"quicklegal/utils"

	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"
)

type fakeUserRepo struct {
	users map[string]*models.User
}

func (f *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	return f.users[id], nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

type fakeAdvocateRepo struct {
	advocates map[string]*models.Advocate
}

func (f *fakeAdvocateRepo) Create(ctx context.Context, adv *models.Advocate) error {
	f.advocates[adv.ID] = adv
	return nil
}

func (f *fakeAdvocateRepo) GetByID(ctx context.Context, id string) (*models.Advocate, error) {
	return f.advocates[id], nil
}

func (f *fakeAdvocateRepo) Update(ctx context.Context, id string, updates map[string]any) error {
	return nil
}

func (f *fakeAdvocateRepo) Search(ctx context.Context, filter advocateRepo.SearchFilter) ([]models.Advocate, int64, error) {
	return nil, 0, nil
}

type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings map[string]*models.Booking
	updates  []string // "<id>:<status>:<paymentID>"
}

func (f *fakeBookingRepo) HasOverlap(ctx context.Context, advocateID string, start, end time.Time) (bool, error) {
	return false, nil
}

func (f *fakeBookingRepo) CreateTransactionally(ctx context.Context, b *models.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.bookings[b.ID] = b
	return nil
}

func (f *fakeBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.bookings[id], nil
}

func (f *fakeBookingRepo) UpdateStatus(ctx context.Context, id, status, paymentID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updates = append(f.updates, fmt.Sprintf("%s:%s:%s", id, status, paymentID))
	if b, ok := f.bookings[id]; ok {
		b.Status = status
		if paymentID != "" {
			b.PaymentID = paymentID
		}
	}
	return nil
}

func (f *fakeBookingRepo) List(ctx context.Context, filter bookingRepo.ListFilter) ([]models.Booking, int64, error) {
	return nil, 0, nil
}

type fakeNotifier struct {
	mu          sync.Mutex
	emails      []string // "<to>|<subject>"
	pushes      []string // "<userID>|<type>"
	failEmailTo string
}

func (f *fakeNotifier) SendEmail(ctx context.Context, to, subject, body string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.emails = append(f.emails, to+"|"+subject)
	if to == f.failEmailTo {
		return fmt.Errorf("smtp rejected %s", to)
	}
	return nil
}

func (f *fakeNotifier) SendRealtimeToUser(ctx context.Context, userID string, payload models.RealtimeMessage) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pushes = append(f.pushes, userID+"|"+payload.Type)
	return nil
}

func newTestDeps() (SubscriberDeps, *fakeBookingRepo, *fakeNotifier) {
	bookings := &fakeBookingRepo{bookings: map[string]*models.Booking{}}
	notifier := &fakeNotifier{}
	deps := SubscriberDeps{
		Bookings: bookings,
		Advocates: &fakeAdvocateRepo{advocates: map[string]*models.Advocate{
			"adv-1": {ID: "adv-1", UserID: "u-adv"},
		}},
		Users: &fakeUserRepo{users: map[string]*models.User{
			"u-1":   {ID: "u-1", Email: "client@example.com"},
			"u-adv": {ID: "u-adv", Email: "lawyer@example.com"},
		}},
		Notifier: notifier,
	}
	return deps, bookings, notifier
}

func testBooking(status string) *models.Booking {
	return &models.Booking{
		ID:         "b-1",
		UserID:     "u-1",
		AdvocateID: "adv-1",
		Slot: models.Slot{
			Start: time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC),
			End:   time.Date(2025, 6, 2, 9, 30, 0, 0, time.UTC),
		},
		Status: status,
	}
}

func TestBookingCreatedFanout(t *testing.T) {
	deps, _, notifier := newTestDeps()

	err := deps.onBookingCreated(context.Background(), testBooking(models.BookingStatusPending))
	assert.NoError(t, err)

	// Exactly one email per party, one realtime push to the advocate.
	assert.Len(t, notifier.emails, 2)
	assert.Contains(t, notifier.emails, "client@example.com|Booking received - QuickLegal")
	assert.Contains(t, notifier.emails, "lawyer@example.com|New booking request - QuickLegal")
	assert.Equal(t, []string{"u-adv|booking.request"}, notifier.pushes)
}

func TestBookingCreatedEmailFailureDoesNotBlockOtherParty(t *testing.T) {
	deps, _, notifier := newTestDeps()
	notifier.failEmailTo = "client@example.com"

	err := deps.onBookingCreated(context.Background(), testBooking(models.BookingStatusPending))
	assert.NoError(t, err)

	// Both attempts happen; the failure stops at the subscriber boundary.
	assert.Len(t, notifier.emails, 2)
	assert.Equal(t, []string{"u-adv|booking.request"}, notifier.pushes)
}

func TestPaymentSucceededReconfirmsPendingBooking(t *testing.T) {
	deps, bookings, notifier := newTestDeps()
	bookings.bookings["b-1"] = testBooking(models.BookingStatusPending)

	payment := &models.PaymentRecord{ID: "p-1", BookingID: "b-1", Status: models.PaymentStatusSucceeded}
	err := deps.onPaymentSucceeded(context.Background(), payment)
	assert.NoError(t, err)

	assert.Equal(t, []string{"b-1:confirmed:p-1"}, bookings.updates)
	assert.Len(t, notifier.emails, 2)
	assert.ElementsMatch(t, []string{"u-1|booking.confirmed", "u-adv|booking.confirmed"}, notifier.pushes)
}

func TestPaymentSucceededAlreadyConfirmed(t *testing.T) {
	deps, bookings, notifier := newTestDeps()
	b := testBooking(models.BookingStatusConfirmed)
	b.PaymentID = "p-1"
	bookings.bookings["b-1"] = b

	payment := &models.PaymentRecord{ID: "p-1", BookingID: "b-1", Status: models.PaymentStatusSucceeded}
	err := deps.onPaymentSucceeded(context.Background(), payment)
	assert.NoError(t, err)

	// No status churn on an already-confirmed booking, notifications still go out.
	assert.Empty(t, bookings.updates)
	assert.Len(t, notifier.emails, 2)
}

func TestPaymentSucceededUnknownBooking(t *testing.T) {
	deps, bookings, notifier := newTestDeps()

	payment := &models.PaymentRecord{ID: "p-1", BookingID: "missing"}
	err := deps.onPaymentSucceeded(context.Background(), payment)
	assert.NoError(t, err)
	assert.Empty(t, bookings.updates)
	assert.Empty(t, notifier.emails)
}

func TestBookingCancelledFanout(t *testing.T) {
	deps, _, notifier := newTestDeps()

	err := deps.onBookingCancelled(context.Background(), testBooking(models.BookingStatusCancelled))
	assert.NoError(t, err)

	assert.ElementsMatch(t, []string{"u-1|booking.cancelled", "u-adv|booking.cancelled"}, notifier.pushes)
	assert.Equal(t, []string{"client@example.com|Booking cancelled"}, notifier.emails)
}

func TestUserCreatedWelcomeEmail(t *testing.T) {
	deps, _, notifier := newTestDeps()

	err := deps.onUserCreated(context.Background(), UserCreatedPayload{UserID: "u-9", Email: "new@example.com"})
	assert.NoError(t, err)
	assert.Equal(t, []string{"new@example.com|Welcome to QuickLegal"}, notifier.emails)

	// No email address, no send.
	notifier.emails = nil
	err = deps.onUserCreated(context.Background(), UserCreatedPayload{UserID: "u-10"})
	assert.NoError(t, err)
	assert.Empty(t, notifier.emails)
}

func TestUserLoggedInWritesLastLogin(t *testing.T) {
	deps, _, _ := newTestDeps()
	client, mock := redismock.NewClientMock()
	deps.Cache = client

	mock.Regexp().ExpectSet(utils.LastLoginKeyPrefix+"u-1", `^\d+$`, utils.LastLoginTTL).SetVal("OK")

	err := deps.onUserLoggedIn(context.Background(), UserLoggedInPayload{UserID: "u-1"})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
