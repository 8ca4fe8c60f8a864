package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glamdesk/salon-booking/internal/domain"
	salonRepo "github.com/glamdesk/salon-booking/internal/infra/storage/salon"
	serviceRepo "github.com/glamdesk/salon-booking/internal/infra/storage/service"
	"github.com/glamdesk/salon-booking/internal/service/catalog/models"
	"github.com/glamdesk/salon-booking/pkg/ptr"
)

type fakeSalonRepo struct {
	salons map[int64]*domain.Salon
	nextID int64
}

func newFakeSalonRepo() *fakeSalonRepo {
	return &fakeSalonRepo{salons: make(map[int64]*domain.Salon), nextID: 1}
}

func (r *fakeSalonRepo) Create(_ context.Context, salon *domain.Salon) (*domain.Salon, error) {
	created := *salon
	created.ID = r.nextID
	r.nextID++
	r.salons[created.ID] = &created
	return &created, nil
}

func (r *fakeSalonRepo) GetByID(_ context.Context, id int64) (*domain.Salon, error) {
	if s, ok := r.salons[id]; ok {
		copy := *s
		return &copy, nil
	}
	return nil, salonRepo.ErrSalonNotFound
}

func (r *fakeSalonRepo) List(_ context.Context) ([]*domain.Salon, error) {
	out := make([]*domain.Salon, 0, len(r.salons))
	for _, s := range r.salons {
		out = append(out, s)
	}
	return out, nil
}

func (r *fakeSalonRepo) Update(_ context.Context, id int64, patch *domain.SalonPatch) error {
	s, ok := r.salons[id]
	if !ok {
		return salonRepo.ErrSalonNotFound
	}
	patch.Apply(s)
	return nil
}

type fakeServiceRepo struct {
	services map[int64]*domain.Service
	nextID   int64
}

func newFakeServiceRepo() *fakeServiceRepo {
	return &fakeServiceRepo{services: make(map[int64]*domain.Service), nextID: 1}
}

func (r *fakeServiceRepo) Create(_ context.Context, service *domain.Service) (*domain.Service, error) {
	created := *service
	created.ID = r.nextID
	r.nextID++
	r.services[created.ID] = &created
	return &created, nil
}

func (r *fakeServiceRepo) GetBySalonAndID(_ context.Context, salonID, serviceID int64) (*domain.Service, error) {
	if s, ok := r.services[serviceID]; ok && s.SalonID == salonID {
		copy := *s
		return &copy, nil
	}
	return nil, serviceRepo.ErrServiceNotFound
}

func (r *fakeServiceRepo) ListBySalon(_ context.Context, salonID int64, onlyActive bool) ([]*domain.Service, error) {
	out := make([]*domain.Service, 0)
	for _, s := range r.services {
		if s.SalonID != salonID {
			continue
		}
		if onlyActive && !s.IsActive {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func (r *fakeServiceRepo) Update(_ context.Context, id int64, patch *domain.ServicePatch) error {
	s, ok := r.services[id]
	if !ok {
		return serviceRepo.ErrServiceNotFound
	}
	patch.Apply(s)
	return nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

const (
	ownerID    = int64(10)
	strangerID = int64(30)
)

func newTestService() (*Service, *fakeSalonRepo, *fakeServiceRepo) {
	salons := newFakeSalonRepo()
	services := newFakeServiceRepo()
	return NewService(salons, services, noopLogger{}), salons, services
}

func createTestSalon(t *testing.T, svc *Service) *models.SalonResponse {
	t.Helper()
	resp, err := svc.CreateSalon(context.Background(), &models.CreateSalonRequest{
		OwnerID:     ownerID,
		Name:        "Glow Studio",
		Address:     "12 Main St",
		OpeningTime: "09:00",
		ClosingTime: "18:00",
	})
	require.NoError(t, err)
	return resp
}

func TestService_CreateSalon(t *testing.T) {
	svc, _, _ := newTestService()

	resp := createTestSalon(t, svc)

	assert.Equal(t, ownerID, resp.OwnerID)
	assert.Equal(t, "09:00", resp.OpeningTime)
	assert.Equal(t, "18:00", resp.ClosingTime)
}

func TestService_CreateSalon_InvalidHours(t *testing.T) {
	svc, _, _ := newTestService()

	tests := []struct {
		name    string
		opening string
		closing string
	}{
		{"closing before opening", "18:00", "09:00"},
		{"equal times", "09:00", "09:00"},
		{"malformed opening", "9am", "18:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateSalon(context.Background(), &models.CreateSalonRequest{
				OwnerID:     ownerID,
				Name:        "Glow Studio",
				Address:     "12 Main St",
				OpeningTime: tt.opening,
				ClosingTime: tt.closing,
			})
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestService_UpdateSalon_OwnerOnly(t *testing.T) {
	svc, _, _ := newTestService()
	salon := createTestSalon(t, svc)

	_, err := svc.UpdateSalon(context.Background(), salon.ID, strangerID, &models.UpdateSalonRequest{
		Name: ptr.Ptr("Hijacked"),
	})

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestService_UpdateSalon_RevalidatesHours(t *testing.T) {
	svc, _, _ := newTestService()
	salon := createTestSalon(t, svc)

	// Патч только открытия, делающий окно пустым, отклоняется
	_, err := svc.UpdateSalon(context.Background(), salon.ID, ownerID, &models.UpdateSalonRequest{
		OpeningTime: ptr.Ptr("19:00"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	// Согласованный патч обеих границ проходит
	resp, err := svc.UpdateSalon(context.Background(), salon.ID, ownerID, &models.UpdateSalonRequest{
		OpeningTime: ptr.Ptr("10:00"),
		ClosingTime: ptr.Ptr("20:00"),
	})
	require.NoError(t, err)
	assert.Equal(t, "10:00", resp.OpeningTime)
	assert.Equal(t, "20:00", resp.ClosingTime)
}

func TestService_UpdateSalon_PartialPatch(t *testing.T) {
	svc, salons, _ := newTestService()
	salon := createTestSalon(t, svc)

	resp, err := svc.UpdateSalon(context.Background(), salon.ID, ownerID, &models.UpdateSalonRequest{
		Name: ptr.Ptr("Glow Studio Deluxe"),
	})

	require.NoError(t, err)
	assert.Equal(t, "Glow Studio Deluxe", resp.Name)
	// Остальные поля не тронуты
	stored := salons.salons[salon.ID]
	assert.Equal(t, "12 Main St", stored.Address)
	assert.Equal(t, "09:00", stored.OpeningTime.String())
}

func TestService_UpdateSalon_EmptyPatch(t *testing.T) {
	svc, _, _ := newTestService()
	salon := createTestSalon(t, svc)

	_, err := svc.UpdateSalon(context.Background(), salon.ID, ownerID, &models.UpdateSalonRequest{})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_CreateService(t *testing.T) {
	svc, _, _ := newTestService()
	salon := createTestSalon(t, svc)

	resp, err := svc.CreateService(context.Background(), salon.ID, ownerID, &models.CreateServiceRequest{
		Name:            "Haircut",
		Price:           45,
		DurationMinutes: ptr.Ptr(30),
	})

	require.NoError(t, err)
	assert.Equal(t, salon.ID, resp.SalonID)
	assert.True(t, resp.IsActive)
	assert.Equal(t, 30, resp.DurationMinutes)
}

func TestService_CreateService_DefaultDuration(t *testing.T) {
	svc, _, _ := newTestService()
	salon := createTestSalon(t, svc)

	resp, err := svc.CreateService(context.Background(), salon.ID, ownerID, &models.CreateServiceRequest{
		Name:  "Consultation",
		Price: 0,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultServiceDurationMinutes, resp.DurationMinutes)
}

func TestService_CreateService_Validation(t *testing.T) {
	svc, _, _ := newTestService()
	salon := createTestSalon(t, svc)

	tests := []struct {
		name string
		req  models.CreateServiceRequest
	}{
		{"empty name", models.CreateServiceRequest{Name: " ", Price: 10}},
		{"negative price", models.CreateServiceRequest{Name: "X", Price: -1}},
		{"duration too short", models.CreateServiceRequest{Name: "X", Price: 10, DurationMinutes: ptr.Ptr(1)}},
		{"duration too long", models.CreateServiceRequest{Name: "X", Price: 10, DurationMinutes: ptr.Ptr(9000)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateService(context.Background(), salon.ID, ownerID, &tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestService_CreateService_StrangerDenied(t *testing.T) {
	svc, _, _ := newTestService()
	salon := createTestSalon(t, svc)

	_, err := svc.CreateService(context.Background(), salon.ID, strangerID, &models.CreateServiceRequest{
		Name:  "Haircut",
		Price: 45,
	})

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestService_ListServices_VisibilityByOwnership(t *testing.T) {
	svc, _, _ := newTestService()
	salon := createTestSalon(t, svc)

	created, err := svc.CreateService(context.Background(), salon.ID, ownerID, &models.CreateServiceRequest{
		Name:  "Haircut",
		Price: 45,
	})
	require.NoError(t, err)

	// Отключаем услугу
	_, err = svc.UpdateService(context.Background(), salon.ID, created.ID, ownerID, &models.UpdateServiceRequest{
		IsActive: ptr.Ptr(false),
	})
	require.NoError(t, err)

	// Гость не видит отключенную услугу
	guestList, err := svc.ListServices(context.Background(), salon.ID, strangerID)
	require.NoError(t, err)
	assert.Empty(t, guestList.Services)

	// Владелец видит
	ownerList, err := svc.ListServices(context.Background(), salon.ID, ownerID)
	require.NoError(t, err)
	assert.Len(t, ownerList.Services, 1)
}

func TestService_UpdateService_ForeignSalonInvisible(t *testing.T) {
	svc, _, services := newTestService()
	salon := createTestSalon(t, svc)

	// Услуга другого салона
	foreign, err := services.Create(context.Background(), &domain.Service{SalonID: 999, Name: "Foreign", IsActive: true})
	require.NoError(t, err)

	_, err = svc.UpdateService(context.Background(), salon.ID, foreign.ID, ownerID, &models.UpdateServiceRequest{
		Price: ptr.Ptr(99.0),
	})

	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestService_GetSalon_NotFound(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.GetSalon(context.Background(), 404)

	assert.ErrorIs(t, err, ErrSalonNotFound)
}
