package create_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glamdesk/salon-booking/internal/domain"
	appointmentstorage "github.com/glamdesk/salon-booking/internal/infra/storage/appointment"
	salonstorage "github.com/glamdesk/salon-booking/internal/infra/storage/salon"
	"github.com/glamdesk/salon-booking/pkg/ptr"
	"github.com/glamdesk/salon-booking/pkg/types"
)

type fakeSalonRepo struct {
	salon *domain.Salon
	err   error
}

func (r *fakeSalonRepo) GetByID(_ context.Context, _ int64) (*domain.Salon, error) {
	return r.salon, r.err
}

type fakeServiceRepo struct {
	service *domain.Service
	err     error
}

func (r *fakeServiceRepo) GetBySalonAndID(_ context.Context, _, _ int64) (*domain.Service, error) {
	return r.service, r.err
}

type fakeAppointmentRepo struct {
	existing  []*domain.Appointment
	createErr error
	created   *domain.Appointment
}

func (r *fakeAppointmentRepo) Create(_ context.Context, appointment *domain.Appointment) (*domain.Appointment, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	created := *appointment
	created.ID = 100
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	r.created = &created
	return &created, nil
}

func (r *fakeAppointmentRepo) GetBySalonWithFilter(_ context.Context, _ domain.SalonAppointmentsFilter) ([]*domain.Appointment, error) {
	return r.existing, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func testSalon() *domain.Salon {
	return &domain.Salon{
		ID:          1,
		OwnerID:     10,
		Name:        "Glow Studio",
		Address:     "12 Main St",
		OpeningTime: "09:00",
		ClosingTime: "17:00",
	}
}

func testService() *domain.Service {
	return &domain.Service{
		ID:              5,
		SalonID:         1,
		Name:            "Haircut",
		Price:           45,
		DurationMinutes: ptr.Ptr(30),
		IsActive:        true,
	}
}

func newTestUseCase(salonRepo *fakeSalonRepo, serviceRepo *fakeServiceRepo, apptRepo *fakeAppointmentRepo, now time.Time) *UseCase {
	uc := NewUseCase(salonRepo, serviceRepo, apptRepo, fakeTxManager{}, noopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: now}
	return uc
}

func validRequest() *Request {
	return &Request{
		GuestID:   20,
		SalonID:   1,
		ServiceID: 5,
		Date:      time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		StartTime: "10:00",
	}
}

func TestUseCase_Execute_Success(t *testing.T) {
	apptRepo := &fakeAppointmentRepo{}
	uc := newTestUseCase(
		&fakeSalonRepo{salon: testSalon()},
		&fakeServiceRepo{service: testService()},
		apptRepo,
		time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
	)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(100), resp.ID)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, types.TimeString("10:00"), resp.StartTime)
	assert.Equal(t, 30, resp.DurationMinutes)
	assert.Equal(t, "Haircut", resp.ServiceName)
	assert.Equal(t, 45.0, resp.ServicePrice)

	require.NotNil(t, apptRepo.created)
	assert.Equal(t, domain.StatusPending, apptRepo.created.Status)
}

func TestUseCase_Execute_SlotTaken(t *testing.T) {
	apptRepo := &fakeAppointmentRepo{
		existing: []*domain.Appointment{{
			StartTime:       "10:00",
			DurationMinutes: 30,
			Status:          domain.StatusConfirmed,
		}},
	}
	uc := newTestUseCase(
		&fakeSalonRepo{salon: testSalon()},
		&fakeServiceRepo{service: testService()},
		apptRepo,
		time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
	)

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestUseCase_Execute_AdjacentSlotAllowed(t *testing.T) {
	// Запись 10:00-10:30 не мешает слоту 10:30 (полуоткрытые интервалы)
	apptRepo := &fakeAppointmentRepo{
		existing: []*domain.Appointment{{
			StartTime:       "10:00",
			DurationMinutes: 30,
			Status:          domain.StatusPending,
		}},
	}
	uc := newTestUseCase(
		&fakeSalonRepo{salon: testSalon()},
		&fakeServiceRepo{service: testService()},
		apptRepo,
		time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
	)

	req := validRequest()
	req.StartTime = "10:30"

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, types.TimeString("10:30"), resp.StartTime)
}

func TestUseCase_Execute_ConcurrentConflict(t *testing.T) {
	// Пересечений среди прочитанных записей нет, но вставка падает
	// на констрейнте: параллельная транзакция заняла слот
	apptRepo := &fakeAppointmentRepo{createErr: appointmentstorage.ErrSlotConflict}
	uc := newTestUseCase(
		&fakeSalonRepo{salon: testSalon()},
		&fakeServiceRepo{service: testService()},
		apptRepo,
		time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
	)

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestUseCase_Execute_SalonNotFound(t *testing.T) {
	uc := newTestUseCase(
		&fakeSalonRepo{err: salonstorage.ErrSalonNotFound},
		&fakeServiceRepo{service: testService()},
		&fakeAppointmentRepo{},
		time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
	)

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrSalonNotFound)
}

func TestUseCase_Execute_InactiveService(t *testing.T) {
	service := testService()
	service.IsActive = false

	uc := newTestUseCase(
		&fakeSalonRepo{salon: testSalon()},
		&fakeServiceRepo{service: service},
		&fakeAppointmentRepo{},
		time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
	)

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrServiceInactive)
}

func TestUseCase_Execute_DateInPast(t *testing.T) {
	uc := newTestUseCase(
		&fakeSalonRepo{salon: testSalon()},
		&fakeServiceRepo{service: testService()},
		&fakeAppointmentRepo{},
		time.Date(2026, 9, 20, 12, 0, 0, 0, time.UTC),
	)

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestUseCase_Execute_SlotAlreadyStartedToday(t *testing.T) {
	uc := newTestUseCase(
		&fakeSalonRepo{salon: testSalon()},
		&fakeServiceRepo{service: testService()},
		&fakeAppointmentRepo{},
		time.Date(2026, 9, 15, 10, 5, 0, 0, time.UTC),
	)

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrTooLateToBook)
}

func TestUseCase_Execute_SlotTimeValidation(t *testing.T) {
	uc := newTestUseCase(
		&fakeSalonRepo{salon: testSalon()},
		&fakeServiceRepo{service: testService()},
		&fakeAppointmentRepo{},
		time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
	)

	tests := []struct {
		name      string
		startTime types.TimeString
	}{
		{"off grid", "10:10"},
		{"before opening", "08:30"},
		{"at closing", "17:00"},
		{"does not fit before closing", "16:45"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			req.StartTime = tt.startTime

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidTimeSlot)
		})
	}
}
