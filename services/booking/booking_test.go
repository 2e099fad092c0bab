package booking

import (
	"context"
	"errors"
	"sync"
	"testing"

	bookingRepo "doctorsportal/database/repository/booking"
	"doctorsportal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockBookingRepo struct {
	mock.Mock
}

func (m *MockBookingRepo) Create(ctx context.Context, b *models.Booking) error {
	return m.Called(ctx, b).Error(0)
}

func (m *MockBookingRepo) FindByDateAndPatient(ctx context.Context, date, patientName string) (*models.Booking, error) {
	args := m.Called(ctx, date, patientName)
	if res := args.Get(0); res != nil {
		return res.(*models.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBookingRepo) GetByDate(ctx context.Context, date string) ([]models.Booking, error) {
	args := m.Called(ctx, date)
	if res := args.Get(0); res != nil {
		return res.([]models.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBookingRepo) GetByPatientEmail(ctx context.Context, email string) ([]models.Booking, error) {
	args := m.Called(ctx, email)
	if res := args.Get(0); res != nil {
		return res.([]models.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBookingRepo) EnsureIndexes(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type recordingNotifier struct {
	mu   sync.Mutex
	sent []models.Booking
}

func (n *recordingNotifier) Dispatch(_ context.Context, b models.Booking) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, b)
}

func newBooking() models.Booking {
	return models.Booking{
		TreatmentName: "Cleaning",
		Date:          "2024-01-05",
		Slot:          "10am",
		PatientName:   "Ada",
		PatientEmail:  "ada@example.com",
	}
}

func TestRecord_Success(t *testing.T) {
	repo := new(MockBookingRepo)
	notifier := &recordingNotifier{}
	svc := &DefaultBookingService{Repo: repo, Notifier: notifier}

	repo.On("FindByDateAndPatient", mock.Anything, "2024-01-05", "Ada").Return(nil, nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*models.Booking")).Return(nil)

	got, err := svc.Record(context.Background(), newBooking())
	require.NoError(t, err)
	assert.Equal(t, "10am", got.Slot)

	require.Len(t, notifier.sent, 1)
	assert.Equal(t, "ada@example.com", notifier.sent[0].PatientEmail)
	repo.AssertExpectations(t)
}

func TestRecord_ExistingBookingSkipsWrite(t *testing.T) {
	repo := new(MockBookingRepo)
	notifier := &recordingNotifier{}
	svc := &DefaultBookingService{Repo: repo, Notifier: notifier}

	existing := newBooking()
	existing.Slot = "9am"
	repo.On("FindByDateAndPatient", mock.Anything, "2024-01-05", "Ada").Return(&existing, nil)

	_, err := svc.Record(context.Background(), newBooking())
	assert.ErrorIs(t, err, ErrBookingExists)

	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	assert.Empty(t, notifier.sent)
}

func TestRecord_UniqueIndexConflict(t *testing.T) {
	repo := new(MockBookingRepo)
	notifier := &recordingNotifier{}
	svc := &DefaultBookingService{Repo: repo, Notifier: notifier}

	// a concurrent request won the race between the pre-check and the insert
	repo.On("FindByDateAndPatient", mock.Anything, "2024-01-05", "Ada").Return(nil, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(bookingRepo.ErrDuplicateBooking)

	_, err := svc.Record(context.Background(), newBooking())
	assert.ErrorIs(t, err, ErrBookingExists)
	assert.Empty(t, notifier.sent)
}

func TestRecord_StorageFailure(t *testing.T) {
	repo := new(MockBookingRepo)
	svc := &DefaultBookingService{Repo: repo, Notifier: &recordingNotifier{}}

	dbErr := errors.New("connection reset")
	repo.On("FindByDateAndPatient", mock.Anything, "2024-01-05", "Ada").Return(nil, dbErr)

	_, err := svc.Record(context.Background(), newBooking())
	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, ErrBookingExists)
}

func TestRecord_ConcurrentAttemptsPersistOnce(t *testing.T) {
	store := &uniqueStore{seen: map[[2]string]bool{}}
	svc := &DefaultBookingService{Repo: store, Notifier: &recordingNotifier{}}

	const attempts = 20
	var wg sync.WaitGroup
	var mu sync.Mutex
	accepted, rejected := 0, 0
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Record(context.Background(), newBooking())
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				accepted++
			} else if errors.Is(err, ErrBookingExists) {
				rejected++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, accepted)
	assert.Equal(t, attempts-1, rejected)
	assert.Equal(t, 1, store.count())
}

func TestListForPatient(t *testing.T) {
	repo := new(MockBookingRepo)
	svc := &DefaultBookingService{Repo: repo}

	repo.On("GetByPatientEmail", mock.Anything, "ada@example.com").Return([]models.Booking{newBooking()}, nil)

	got, err := svc.ListForPatient(context.Background(), "ada@example.com")
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

// uniqueStore behaves like a collection with a unique (date, patientName)
// index whose pre-check always misses, which is the worst case for races.
type uniqueStore struct {
	mu   sync.Mutex
	seen map[[2]string]bool
}

func (s *uniqueStore) Create(_ context.Context, b *models.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := [2]string{b.Date, b.PatientName}
	if s.seen[key] {
		return bookingRepo.ErrDuplicateBooking
	}
	s.seen[key] = true
	return nil
}

func (s *uniqueStore) FindByDateAndPatient(context.Context, string, string) (*models.Booking, error) {
	return nil, nil
}

func (s *uniqueStore) GetByDate(context.Context, string) ([]models.Booking, error) {
	return nil, nil
}

func (s *uniqueStore) GetByPatientEmail(context.Context, string) ([]models.Booking, error) {
	return nil, nil
}

func (s *uniqueStore) EnsureIndexes(context.Context) error { return nil }

func (s *uniqueStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.seen)
}
