package handlers

import (
	"context"

	"doctorsportal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type MockAvailabilityService struct {
	mock.Mock
}

func (m *MockAvailabilityService) ListServices(ctx context.Context, nameOnly bool) ([]models.Service, error) {
	args := m.Called(ctx, nameOnly)
	services, _ := args.Get(0).([]models.Service)
	return services, args.Error(1)
}

func (m *MockAvailabilityService) AvailableOn(ctx context.Context, date string) ([]models.Service, error) {
	args := m.Called(ctx, date)
	services, _ := args.Get(0).([]models.Service)
	return services, args.Error(1)
}

type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) Record(ctx context.Context, b models.Booking) (*models.Booking, error) {
	args := m.Called(ctx, b)
	recorded, _ := args.Get(0).(*models.Booking)
	return recorded, args.Error(1)
}

func (m *MockBookingService) ListForPatient(ctx context.Context, email string) ([]models.Booking, error) {
	args := m.Called(ctx, email)
	bookings, _ := args.Get(0).([]models.Booking)
	return bookings, args.Error(1)
}

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Upsert(ctx context.Context, email string, fields map[string]interface{}) (*models.UpsertResult, error) {
	args := m.Called(ctx, email, fields)
	res, _ := args.Get(0).(*models.UpsertResult)
	return res, args.Error(1)
}

func (m *MockUserService) MakeAdmin(ctx context.Context, email string) (*models.UpsertResult, error) {
	args := m.Called(ctx, email)
	res, _ := args.Get(0).(*models.UpsertResult)
	return res, args.Error(1)
}

func (m *MockUserService) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*models.User)
	return u, args.Error(1)
}

func (m *MockUserService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]models.User)
	return users, args.Error(1)
}

func (m *MockUserService) IsAdmin(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

type MockDoctorService struct {
	mock.Mock
}

func (m *MockDoctorService) Add(ctx context.Context, d models.Doctor) (*models.Doctor, error) {
	args := m.Called(ctx, d)
	created, _ := args.Get(0).(*models.Doctor)
	return created, args.Error(1)
}

func (m *MockDoctorService) List(ctx context.Context) ([]models.Doctor, error) {
	args := m.Called(ctx)
	doctors, _ := args.Get(0).([]models.Doctor)
	return doctors, args.Error(1)
}

func (m *MockDoctorService) Remove(ctx context.Context, email string) (int64, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(int64), args.Error(1)
}

type MockTokenIssuer struct {
	mock.Mock
}

func (m *MockTokenIssuer) Issue(email string) (string, error) {
	args := m.Called(email)
	return args.String(0), args.Error(1)
}
