package create_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crwnt7462-cloud/ALICIAAA-sub003/internal/domain"
	staffRepo "github.com/crwnt7462-cloud/ALICIAAA-sub003/internal/infra/storage/staff"
	"github.com/crwnt7462-cloud/ALICIAAA-sub003/internal/integrations/salonservice"
	"github.com/crwnt7462-cloud/ALICIAAA-sub003/pkg/types"
)

type fakeAppointmentRepo struct {
	existing []*domain.Appointment
	created  *domain.Appointment
}

func (f *fakeAppointmentRepo) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	out := *appt
	out.ID = 42
	out.CreatedAt = time.Date(2025, time.January, 1, 12, 0, 0, 0, time.UTC)
	out.UpdatedAt = out.CreatedAt
	f.created = &out
	return &out, nil
}

func (f *fakeAppointmentRepo) GetBySalonWithFilter(_ context.Context, _ domain.SalonAppointmentsFilter) ([]*domain.Appointment, error) {
	return f.existing, nil
}

type fakeStaffRepo struct {
	member *domain.StaffMember
	err    error
}

func (f *fakeStaffRepo) GetByID(_ context.Context, _ int64) (*domain.StaffMember, error) {
	return f.member, f.err
}

type fakeSalonClient struct {
	salon *salonservice.Salon
	err   error
}

func (f *fakeSalonClient) GetSalon(_ context.Context, _ int64) (*salonservice.Salon, error) {
	return f.salon, f.err
}

type fakeCache struct {
	invalidated []int64
}

func (f *fakeCache) InvalidateSalon(_ context.Context, salonID int64) error {
	f.invalidated = append(f.invalidated, salonID)
	return nil
}

type fakeTxManager struct{}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time { return p.now }

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func openSalon() *salonservice.Salon {
	allDay := salonservice.DaySchedule{IsOpen: true, OpenTime: "09:00", CloseTime: "19:00"}
	return &salonservice.Salon{
		ID:       1,
		Name:     "Salon Test",
		IsActive: true,
		WorkingHours: salonservice.WorkingHours{
			Monday:    allDay,
			Tuesday:   allDay,
			Wednesday: allDay,
			Thursday:  allDay,
			Friday:    allDay,
			Saturday:  allDay,
		},
	}
}

func activeStaff() *domain.StaffMember {
	return &domain.StaffMember{
		ID:         10,
		SalonID:    1,
		Name:       "Test Master",
		Role:       "coiffeur",
		ActiveFrom: "09:00",
		ActiveTo:   "18:00",
		IsActive:   true,
	}
}

func validRequest() *Request {
	return &Request{
		ClientID:    100,
		SalonID:     1,
		StaffID:     10,
		ServiceID:   5,
		ServiceName: "Coupe femme",
		Price:       decimal.NewFromInt(50),
		Date:        time.Date(2025, time.January, 6, 0, 0, 0, 0, time.UTC), // понедельник
		StartTime:   "10:00",
		EndTime:     "11:00",
	}
}

func newTestUseCase(appts *fakeAppointmentRepo, staff *fakeStaffRepo, salon *fakeSalonClient, cache *fakeCache) *UseCase {
	uc := NewUseCase(appts, staff, salon, cache, &fakeTxManager{}, noopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: time.Date(2025, time.January, 2, 10, 0, 0, 0, time.UTC)}
	return uc
}

func TestUseCase_Execute(t *testing.T) {
	t.Run("creates appointment and invalidates cache", func(t *testing.T) {
		appts := &fakeAppointmentRepo{}
		cache := &fakeCache{}
		uc := newTestUseCase(appts, &fakeStaffRepo{member: activeStaff()}, &fakeSalonClient{salon: openSalon()}, cache)

		resp, err := uc.Execute(context.Background(), validRequest())
		require.NoError(t, err)

		assert.Equal(t, int64(42), resp.ID)
		assert.Equal(t, string(domain.StatusScheduled), resp.Status)
		assert.Equal(t, types.TimeString("10:00"), resp.StartTime)
		assert.Equal(t, []int64{1}, cache.invalidated)
		require.NotNil(t, appts.created)
		assert.Equal(t, domain.StatusScheduled, appts.created.Status)
	})

	t.Run("rejects overlapping slot", func(t *testing.T) {
		day := time.Date(2025, time.January, 6, 0, 0, 0, 0, time.UTC)
		appts := &fakeAppointmentRepo{existing: []*domain.Appointment{
			{
				ID: 1, SalonID: 1, StaffID: 10, Date: day,
				StartTime: "10:30", EndTime: "11:30",
				Status: domain.StatusScheduled,
			},
		}}
		cache := &fakeCache{}
		uc := newTestUseCase(appts, &fakeStaffRepo{member: activeStaff()}, &fakeSalonClient{salon: openSalon()}, cache)

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrSlotTaken)
		assert.Empty(t, cache.invalidated)
	})

	t.Run("back to back slots do not overlap", func(t *testing.T) {
		day := time.Date(2025, time.January, 6, 0, 0, 0, 0, time.UTC)
		appts := &fakeAppointmentRepo{existing: []*domain.Appointment{
			{
				ID: 1, SalonID: 1, StaffID: 10, Date: day,
				StartTime: "11:00", EndTime: "12:00",
				Status: domain.StatusScheduled,
			},
		}}
		uc := newTestUseCase(appts, &fakeStaffRepo{member: activeStaff()}, &fakeSalonClient{salon: openSalon()}, &fakeCache{})

		_, err := uc.Execute(context.Background(), validRequest())
		assert.NoError(t, err)
	})

	t.Run("rejects past date", func(t *testing.T) {
		uc := newTestUseCase(&fakeAppointmentRepo{}, &fakeStaffRepo{member: activeStaff()}, &fakeSalonClient{salon: openSalon()}, &fakeCache{})

		req := validRequest()
		req.Date = time.Date(2024, time.December, 30, 0, 0, 0, 0, time.UTC)

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidDate)
	})

	t.Run("rejects closed salon day", func(t *testing.T) {
		uc := newTestUseCase(&fakeAppointmentRepo{}, &fakeStaffRepo{member: activeStaff()}, &fakeSalonClient{salon: openSalon()}, &fakeCache{})

		req := validRequest()
		req.Date = time.Date(2025, time.January, 5, 0, 0, 0, 0, time.UTC) // воскресенье

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrSalonClosed)
	})

	t.Run("rejects slot outside salon hours", func(t *testing.T) {
		uc := newTestUseCase(&fakeAppointmentRepo{}, &fakeStaffRepo{member: activeStaff()}, &fakeSalonClient{salon: openSalon()}, &fakeCache{})

		req := validRequest()
		req.StartTime = "08:00"
		req.EndTime = "09:00"

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrOutsideWorkingHours)
	})

	t.Run("rejects slot outside staff window", func(t *testing.T) {
		uc := newTestUseCase(&fakeAppointmentRepo{}, &fakeStaffRepo{member: activeStaff()}, &fakeSalonClient{salon: openSalon()}, &fakeCache{})

		req := validRequest()
		req.StartTime = "18:00"
		req.EndTime = "19:00"

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrOutsideStaffHours)
	})

	t.Run("rejects unknown salon", func(t *testing.T) {
		uc := newTestUseCase(&fakeAppointmentRepo{}, &fakeStaffRepo{member: activeStaff()}, &fakeSalonClient{err: salonservice.ErrSalonNotFound}, &fakeCache{})

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrSalonNotFound)
	})

	t.Run("rejects unknown staff", func(t *testing.T) {
		uc := newTestUseCase(&fakeAppointmentRepo{}, &fakeStaffRepo{err: staffRepo.ErrStaffNotFound}, &fakeSalonClient{salon: openSalon()}, &fakeCache{})

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrStaffNotFound)
	})

	t.Run("rejects staff from another salon", func(t *testing.T) {
		member := activeStaff()
		member.SalonID = 2
		uc := newTestUseCase(&fakeAppointmentRepo{}, &fakeStaffRepo{member: member}, &fakeSalonClient{salon: openSalon()}, &fakeCache{})

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrStaffNotInSalon)
	})

	t.Run("rejects inactive staff", func(t *testing.T) {
		member := activeStaff()
		member.IsActive = false
		uc := newTestUseCase(&fakeAppointmentRepo{}, &fakeStaffRepo{member: member}, &fakeSalonClient{salon: openSalon()}, &fakeCache{})

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrStaffInactive)
	})
}

func TestValidateRequest(t *testing.T) {
	t.Run("invalid time slot", func(t *testing.T) {
		req := validRequest()
		req.StartTime = "11:00"
		req.EndTime = "10:00"
		assert.ErrorIs(t, validateRequest(req), ErrInvalidTimeSlot)
	})

	t.Run("too short appointment", func(t *testing.T) {
		req := validRequest()
		req.StartTime = "10:00"
		req.EndTime = "10:10"
		assert.ErrorIs(t, validateRequest(req), ErrInvalidTimeSlot)
	})

	t.Run("negative price", func(t *testing.T) {
		req := validRequest()
		req.Price = decimal.NewFromInt(-1)
		assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)
	})

	t.Run("missing service name", func(t *testing.T) {
		req := validRequest()
		req.ServiceName = ""
		assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)
	})

	t.Run("non positive ids", func(t *testing.T) {
		req := validRequest()
		req.StaffID = 0
		assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)
	})
}
