package usecases_test

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"fudys.backend/internal/domain/entities"
)

// Mock UnitOfWork. Do runs the callback directly so usecase logic under
// test behaves as if the transaction committed.
type MockUnitOfWork struct {
	mock.Mock
}

func (m *MockUnitOfWork) Do(ctx context.Context, f func(context.Context) error) error {
	m.Called(ctx, f)
	return f(ctx)
}

// Mock Mailer
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	args := m.Called(ctx, to, subject, htmlBody)
	return args.Error(0)
}

// Mock UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) UpdateProfile(ctx context.Context, id uuid.UUID, input *entities.UpdateProfileInput) error {
	args := m.Called(ctx, id, input)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateRole(ctx context.Context, id uuid.UUID, role entities.Role) error {
	args := m.Called(ctx, id, role)
	return args.Error(0)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	args := m.Called(ctx, id, passwordHash)
	return args.Error(0)
}

func (m *MockUserRepository) List(ctx context.Context) ([]*entities.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.User), args.Error(1)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// Mock RestaurantRepository
type MockRestaurantRepository struct {
	mock.Mock
}

func (m *MockRestaurantRepository) Create(ctx context.Context, restaurant *entities.Restaurant) error {
	args := m.Called(ctx, restaurant)
	return args.Error(0)
}

func (m *MockRestaurantRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Restaurant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Restaurant), args.Error(1)
}

func (m *MockRestaurantRepository) GetByOwnerID(ctx context.Context, ownerID uuid.UUID) (*entities.Restaurant, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Restaurant), args.Error(1)
}

func (m *MockRestaurantRepository) GetByCustomURL(ctx context.Context, customURL string) (*entities.Restaurant, error) {
	args := m.Called(ctx, customURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Restaurant), args.Error(1)
}

func (m *MockRestaurantRepository) List(ctx context.Context) ([]*entities.Restaurant, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Restaurant), args.Error(1)
}

func (m *MockRestaurantRepository) CustomURLTaken(ctx context.Context, customURL string, excludeID uuid.UUID) (bool, error) {
	args := m.Called(ctx, customURL, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockRestaurantRepository) UpdateConfig(ctx context.Context, id uuid.UUID, input *entities.RestaurantConfigInput) error {
	args := m.Called(ctx, id, input)
	return args.Error(0)
}

func (m *MockRestaurantRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// Mock SubscriptionRepository
type MockSubscriptionRepository struct {
	mock.Mock
}

func (m *MockSubscriptionRepository) Create(ctx context.Context, sub *entities.Subscription) error {
	args := m.Called(ctx, sub)
	return args.Error(0)
}

func (m *MockSubscriptionRepository) ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]*entities.Subscription, error) {
	args := m.Called(ctx, restaurantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Subscription), args.Error(1)
}

func (m *MockSubscriptionRepository) GetActive(ctx context.Context, restaurantID uuid.UUID) (*entities.Subscription, error) {
	args := m.Called(ctx, restaurantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Subscription), args.Error(1)
}

func (m *MockSubscriptionRepository) DeleteByRestaurant(ctx context.Context, restaurantID uuid.UUID) error {
	args := m.Called(ctx, restaurantID)
	return args.Error(0)
}

// Mock ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Create(ctx context.Context, product *entities.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Product), args.Error(1)
}

func (m *MockProductRepository) ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]*entities.Product, error) {
	args := m.Called(ctx, restaurantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Product), args.Error(1)
}

func (m *MockProductRepository) Update(ctx context.Context, product *entities.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) UpdateDisplayOrder(ctx context.Context, restaurantID, productID uuid.UUID, order int) error {
	args := m.Called(ctx, restaurantID, productID, order)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProductRepository) DeleteByRestaurant(ctx context.Context, restaurantID uuid.UUID) error {
	args := m.Called(ctx, restaurantID)
	return args.Error(0)
}

// Mock PaymentMethodRepository
type MockPaymentMethodRepository struct {
	mock.Mock
}

func (m *MockPaymentMethodRepository) Create(ctx context.Context, method *entities.PaymentMethod) error {
	args := m.Called(ctx, method)
	return args.Error(0)
}

func (m *MockPaymentMethodRepository) ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]*entities.PaymentMethod, error) {
	args := m.Called(ctx, restaurantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.PaymentMethod), args.Error(1)
}

func (m *MockPaymentMethodRepository) DeleteByRestaurant(ctx context.Context, restaurantID uuid.UUID) error {
	args := m.Called(ctx, restaurantID)
	return args.Error(0)
}

// Mock DeliveryOptionRepository
type MockDeliveryOptionRepository struct {
	mock.Mock
}

func (m *MockDeliveryOptionRepository) Create(ctx context.Context, option *entities.DeliveryOption) error {
	args := m.Called(ctx, option)
	return args.Error(0)
}

func (m *MockDeliveryOptionRepository) GetByType(ctx context.Context, restaurantID uuid.UUID, optionType string) (*entities.DeliveryOption, error) {
	args := m.Called(ctx, restaurantID, optionType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.DeliveryOption), args.Error(1)
}

func (m *MockDeliveryOptionRepository) ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]*entities.DeliveryOption, error) {
	args := m.Called(ctx, restaurantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.DeliveryOption), args.Error(1)
}

func (m *MockDeliveryOptionRepository) Update(ctx context.Context, option *entities.DeliveryOption) error {
	args := m.Called(ctx, option)
	return args.Error(0)
}

func (m *MockDeliveryOptionRepository) DeleteByRestaurant(ctx context.Context, restaurantID uuid.UUID) error {
	args := m.Called(ctx, restaurantID)
	return args.Error(0)
}

// Mock OpeningHourRepository
type MockOpeningHourRepository struct {
	mock.Mock
}

func (m *MockOpeningHourRepository) Create(ctx context.Context, hour *entities.OpeningHour) error {
	args := m.Called(ctx, hour)
	return args.Error(0)
}

func (m *MockOpeningHourRepository) ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]*entities.OpeningHour, error) {
	args := m.Called(ctx, restaurantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.OpeningHour), args.Error(1)
}

func (m *MockOpeningHourRepository) DeleteByRestaurant(ctx context.Context, restaurantID uuid.UUID) error {
	args := m.Called(ctx, restaurantID)
	return args.Error(0)
}

// Mock PasswordResetRepository
type MockPasswordResetRepository struct {
	mock.Mock
}

func (m *MockPasswordResetRepository) Create(ctx context.Context, reset *entities.PasswordReset) error {
	args := m.Called(ctx, reset)
	return args.Error(0)
}

func (m *MockPasswordResetRepository) GetByToken(ctx context.Context, token string) (*entities.PasswordReset, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.PasswordReset), args.Error(1)
}

func (m *MockPasswordResetRepository) MarkUsed(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPasswordResetRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// Mock SaleRepository
type MockSaleRepository struct {
	mock.Mock
}

func (m *MockSaleRepository) Create(ctx context.Context, sale *entities.Sale) error {
	args := m.Called(ctx, sale)
	return args.Error(0)
}

func (m *MockSaleRepository) ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]*entities.Sale, error) {
	args := m.Called(ctx, restaurantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Sale), args.Error(1)
}

func (m *MockSaleRepository) Totals(ctx context.Context, restaurantID uuid.UUID, from, to time.Time) (*entities.SaleTotals, error) {
	args := m.Called(ctx, restaurantID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.SaleTotals), args.Error(1)
}

func (m *MockSaleRepository) TotalsByDay(ctx context.Context, restaurantID uuid.UUID, from, to time.Time) ([]*entities.DailySales, error) {
	args := m.Called(ctx, restaurantID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.DailySales), args.Error(1)
}

func (m *MockSaleRepository) GlobalTotals(ctx context.Context, from, to time.Time) (*entities.SaleTotals, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.SaleTotals), args.Error(1)
}

func (m *MockSaleRepository) TotalsByStore(ctx context.Context, from, to time.Time) ([]*entities.StoreSales, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.StoreSales), args.Error(1)
}

func (m *MockSaleRepository) DeleteByRestaurant(ctx context.Context, restaurantID uuid.UUID) error {
	args := m.Called(ctx, restaurantID)
	return args.Error(0)
}

func (m *MockSaleRepository) DeleteByBuyer(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}
