package get_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glamdesk/salon-booking/internal/domain"
	salonstorage "github.com/glamdesk/salon-booking/internal/infra/storage/salon"
	servicestorage "github.com/glamdesk/salon-booking/internal/infra/storage/service"
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
	appointments []*domain.Appointment
	err          error
	gotFilter    domain.SalonAppointmentsFilter
}

func (r *fakeAppointmentRepo) GetBySalonWithFilter(_ context.Context, filter domain.SalonAppointmentsFilter) ([]*domain.Appointment, error) {
	r.gotFilter = filter
	return r.appointments, r.err
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

func TestUseCase_Execute_DefaultDuration(t *testing.T) {
	apptRepo := &fakeAppointmentRepo{}
	uc := NewUseCase(
		&fakeSalonRepo{salon: testSalon()},
		&fakeServiceRepo{},
		apptRepo,
		&fixedTimeProvider{now: time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)},
		noopLogger{},
	)

	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	resp, err := uc.Execute(context.Background(), Request{SalonID: 1, Date: date})

	require.NoError(t, err)
	require.Len(t, resp.Slots, 16)
	assert.Equal(t, types.TimeString("09:00"), resp.Slots[0].StartTime)
	assert.Equal(t, "9:00 AM", resp.Slots[0].FormattedTime)
	assert.Equal(t, 60, resp.Slots[0].DurationMinutes)
	assert.Equal(t, types.TimeString("16:30"), resp.Slots[len(resp.Slots)-1].StartTime)

	// Репозиторию передан фильтр только по занимающим записям
	assert.True(t, apptRepo.gotFilter.OnlyOccupying)
	require.NotNil(t, apptRepo.gotFilter.Date)
	assert.Equal(t, date, *apptRepo.gotFilter.Date)
}

func TestUseCase_Execute_ServiceDuration(t *testing.T) {
	service := &domain.Service{
		ID:              5,
		SalonID:         1,
		Name:            "Balayage",
		Price:           120,
		DurationMinutes: ptr.Ptr(90),
		IsActive:        true,
	}
	apptRepo := &fakeAppointmentRepo{
		appointments: []*domain.Appointment{occupying("10:00", 60)},
	}
	uc := NewUseCase(
		&fakeSalonRepo{salon: testSalon()},
		&fakeServiceRepo{service: service},
		apptRepo,
		&fixedTimeProvider{now: time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)},
		noopLogger{},
	)

	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	resp, err := uc.Execute(context.Background(), Request{SalonID: 1, Date: date, ServiceID: ptr.Ptr(int64(5))})

	require.NoError(t, err)
	require.NotEmpty(t, resp.Slots)

	for _, slot := range resp.Slots {
		assert.Equal(t, 90, slot.DurationMinutes)
		// 90-минутный слот не должен пересекаться с записью 10:00-11:00
		start := slot.StartTime.MinutesFromMidnight()
		end := start + 90
		overlaps := start < 11*60 && 10*60 < end
		assert.False(t, overlaps, "slot %s overlaps the 10:00 appointment", slot.StartTime)
	}

	// 09:00 пересекается (09:00+90 > 10:00), первый доступный — 11:00
	assert.Equal(t, types.TimeString("11:00"), resp.Slots[0].StartTime)
}

func TestUseCase_Execute_SalonNotFound(t *testing.T) {
	uc := NewUseCase(
		&fakeSalonRepo{err: salonstorage.ErrSalonNotFound},
		&fakeServiceRepo{},
		&fakeAppointmentRepo{},
		&fixedTimeProvider{now: time.Now()},
		noopLogger{},
	)

	_, err := uc.Execute(context.Background(), Request{SalonID: 99, Date: time.Now()})

	assert.ErrorIs(t, err, ErrSalonNotFound)
}

func TestUseCase_Execute_ServiceNotFound(t *testing.T) {
	uc := NewUseCase(
		&fakeSalonRepo{salon: testSalon()},
		&fakeServiceRepo{err: servicestorage.ErrServiceNotFound},
		&fakeAppointmentRepo{},
		&fixedTimeProvider{now: time.Now()},
		noopLogger{},
	)

	_, err := uc.Execute(context.Background(), Request{
		SalonID:   1,
		Date:      time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		ServiceID: ptr.Ptr(int64(404)),
	})

	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestUseCase_Execute_InvalidInput(t *testing.T) {
	uc := NewUseCase(
		&fakeSalonRepo{},
		&fakeServiceRepo{},
		&fakeAppointmentRepo{},
		&fixedTimeProvider{now: time.Now()},
		noopLogger{},
	)

	tests := []struct {
		name string
		req  Request
	}{
		{"zero salon id", Request{SalonID: 0, Date: time.Now()}},
		{"negative salon id", Request{SalonID: -1, Date: time.Now()}},
		{"zero date", Request{SalonID: 1}},
		{"non-positive service id", Request{SalonID: 1, Date: time.Now(), ServiceID: ptr.Ptr(int64(0))}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestUseCase_Execute_CorruptedBusinessHours(t *testing.T) {
	salon := testSalon()
	salon.OpeningTime = "18:00"
	salon.ClosingTime = "09:00"

	uc := NewUseCase(
		&fakeSalonRepo{salon: salon},
		&fakeServiceRepo{},
		&fakeAppointmentRepo{},
		&fixedTimeProvider{now: time.Now()},
		noopLogger{},
	)

	_, err := uc.Execute(context.Background(), Request{
		SalonID: 1,
		Date:    time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
	})

	assert.ErrorIs(t, err, ErrInternal)
}

func TestUseCase_Execute_FullyBookedDay(t *testing.T) {
	// Записи подряд закрывают весь день
	appointments := make([]*domain.Appointment, 0, 8)
	for h := 9; h < 17; h++ {
		appointments = append(appointments, occupying(types.TimeString(time.Date(0, 1, 1, h, 0, 0, 0, time.UTC).Format("15:04")), 60))
	}

	uc := NewUseCase(
		&fakeSalonRepo{salon: testSalon()},
		&fakeServiceRepo{},
		&fakeAppointmentRepo{appointments: appointments},
		&fixedTimeProvider{now: time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)},
		noopLogger{},
	)

	resp, err := uc.Execute(context.Background(), Request{
		SalonID: 1,
		Date:    time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}
