package services_test

import (
	"github.com/stretchr/testify/mock"

	"billdesk/internal/models"
)

// MockBillingAPI is a mock implementation of api.BillingAPI.
type MockBillingAPI struct {
	mock.Mock
}

func (m *MockBillingAPI) SearchProducts(nameFragment string) ([]models.ProductSnapshot, error) {
	args := m.Called(nameFragment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ProductSnapshot), args.Error(1)
}

func (m *MockBillingAPI) CreateBilling(order *models.Order) (*models.BillingReceipt, error) {
	args := m.Called(order)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BillingReceipt), args.Error(1)
}

func (m *MockBillingAPI) GetBillings() ([]models.BillingSummary, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.BillingSummary), args.Error(1)
}

func (m *MockBillingAPI) RecentBillings() ([]models.BillingSummary, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.BillingSummary), args.Error(1)
}

func (m *MockBillingAPI) FetchBillings(period string) ([]models.BillingSummary, error) {
	args := m.Called(period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.BillingSummary), args.Error(1)
}

// MockProductAPI is a mock implementation of api.ProductAPI.
type MockProductAPI struct {
	mock.Mock
}

func (m *MockProductAPI) GetProducts() ([]models.Product, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductAPI) CreateProduct(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductAPI) EditProduct(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductAPI) DeleteProduct(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockCategoryAPI is a mock implementation of api.CategoryAPI.
type MockCategoryAPI struct {
	mock.Mock
}

func (m *MockCategoryAPI) GetCategories() ([]models.Category, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Category), args.Error(1)
}

func (m *MockCategoryAPI) CreateCategory(category *models.Category) error {
	args := m.Called(category)
	return args.Error(0)
}

func (m *MockCategoryAPI) EditCategory(category *models.Category) error {
	args := m.Called(category)
	return args.Error(0)
}

func (m *MockCategoryAPI) DeleteCategory(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockAuthAPI is a mock implementation of api.AuthAPI.
type MockAuthAPI struct {
	mock.Mock
}

func (m *MockAuthAPI) Login(email, password string) (*models.LoginResult, error) {
	args := m.Called(email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.LoginResult), args.Error(1)
}

func (m *MockAuthAPI) Register(email, password string) error {
	args := m.Called(email, password)
	return args.Error(0)
}

func (m *MockAuthAPI) Signout() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockAuthAPI) GetUserDetails() (*models.User, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthAPI) ForgotPassword(email string) error {
	args := m.Called(email)
	return args.Error(0)
}

func (m *MockAuthAPI) ResetPassword(resetToken, newPassword string) error {
	args := m.Called(resetToken, newPassword)
	return args.Error(0)
}

// MockReportAPI is a mock implementation of api.ReportAPI.
type MockReportAPI struct {
	mock.Mock
}

func (m *MockReportAPI) TopCustomers() ([]models.TopCustomer, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.TopCustomer), args.Error(1)
}

func (m *MockReportAPI) PaymentMethodReports() ([]models.PaymentMethodReport, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PaymentMethodReport), args.Error(1)
}

func (m *MockReportAPI) LastThreeMonthsReports() ([]models.MonthlyRevenue, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MonthlyRevenue), args.Error(1)
}
