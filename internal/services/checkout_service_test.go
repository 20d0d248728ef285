package services_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"billdesk/internal/models"
	"billdesk/internal/repositories"
	"billdesk/internal/services"
	"billdesk/pkg/notify"
)

func validDetails() models.CustomerDetails {
	return models.CustomerDetails{
		CustomerName:   "Asha Rao",
		CustomerMobile: "+91 98765 43210",
		CustomerEmail:  "asha@example.com",
		PaymentMethod:  "UPI",
	}
}

func newCheckout(t *testing.T) (*services.CheckoutService, *services.CartService, *MockBillingAPI, *repositories.MockDraftStore, *notify.Recorder) {
	t.Helper()
	drafts := repositories.NewMockDraftStore()
	notices := notify.NewRecorder()
	cart := services.NewCartService(drafts, notices)
	billing := new(MockBillingAPI)
	checkout, err := services.NewCheckoutService(billing, cart, notices, "Admin")
	assert.NoError(t, err)
	return checkout, cart, billing, drafts, notices
}

func TestCheckoutService_EmptyCartRejected(t *testing.T) {
	checkout, _, billing, _, notices := newCheckout(t)

	outcome := checkout.Submit(validDetails(), models.PaymentStatusSuccess)

	assert.Equal(t, services.OutcomeRejected, outcome)
	assert.Equal(t, services.PhaseIdle, checkout.Phase())
	assert.Contains(t, notices.Errors()[0], "add products to your bill")
	billing.AssertNotCalled(t, "CreateBilling", mock.Anything)
}

func TestCheckoutService_ZeroQuantityRejected(t *testing.T) {
	checkout, cart, billing, drafts, notices := newCheckout(t)
	cart.AddProduct(widget())
	cart.SetQuantity("P1", 0)

	outcome := checkout.Submit(validDetails(), models.PaymentStatusSuccess)

	assert.Equal(t, services.OutcomeRejected, outcome)
	assert.Contains(t, notices.Errors()[0], "no quantity")
	billing.AssertNotCalled(t, "CreateBilling", mock.Anything)

	// The rejected attempt must not touch the persisted draft.
	_, found, _ := drafts.Load()
	assert.True(t, found)
}

func TestCheckoutService_InvalidCustomerDetails(t *testing.T) {
	cases := []struct {
		name    string
		details models.CustomerDetails
	}{
		{"missing name", models.CustomerDetails{CustomerMobile: "9876543210", CustomerEmail: "a@b.com", PaymentMethod: "Cash"}},
		{"bad mobile", models.CustomerDetails{CustomerName: "A", CustomerMobile: "not-a-number", CustomerEmail: "a@b.com", PaymentMethod: "Cash"}},
		{"bad email", models.CustomerDetails{CustomerName: "A", CustomerMobile: "9876543210", CustomerEmail: "nope", PaymentMethod: "Cash"}},
		{"bad method", models.CustomerDetails{CustomerName: "A", CustomerMobile: "9876543210", CustomerEmail: "a@b.com", PaymentMethod: "Barter"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			checkout, cart, billing, _, notices := newCheckout(t)
			cart.AddProduct(widget())

			outcome := checkout.Submit(tc.details, models.PaymentStatusSuccess)

			assert.Equal(t, services.OutcomeRejected, outcome)
			assert.Contains(t, notices.Errors()[0], "customer details")
			billing.AssertNotCalled(t, "CreateBilling", mock.Anything)
		})
	}
}

func TestCheckoutService_SpacedPaymentMethodAccepted(t *testing.T) {
	checkout, cart, billing, _, _ := newCheckout(t)
	cart.AddProduct(widget())

	details := validDetails()
	details.PaymentMethod = "Credit Card"
	billing.On("CreateBilling", mock.Anything).
		Return(&models.BillingReceipt{BillingID: "B1", PaymentStatus: models.PaymentStatusSuccess}, nil).Once()

	outcome := checkout.Submit(details, models.PaymentStatusSuccess)

	assert.Equal(t, services.OutcomeSucceeded, outcome)
	billing.AssertExpectations(t)
}

func TestCheckoutService_SuccessStatus(t *testing.T) {
	checkout, cart, billing, drafts, _ := newCheckout(t)
	cart.AddProduct(widget())
	cart.SetQuantity("P1", 3)

	var submitted *models.Order
	billing.On("CreateBilling", mock.Anything).
		Run(func(args mock.Arguments) { submitted = args.Get(0).(*models.Order) }).
		Return(&models.BillingReceipt{BillingID: "B1", PaymentStatus: models.PaymentStatusSuccess}, nil).Once()

	outcome := checkout.Submit(validDetails(), models.PaymentStatusSuccess)

	assert.Equal(t, services.OutcomeSucceeded, outcome)
	billing.AssertExpectations(t)

	// The order payload is the frozen cart plus customer metadata.
	assert.Len(t, submitted.ProductsList, 1)
	assert.Equal(t, 3, submitted.ProductsList[0].Quantity)
	assert.Equal(t, 1, submitted.TotalItems)
	assert.Equal(t, 30.00, submitted.FinalPrice)
	assert.Equal(t, 1, submitted.PaymentStatusID)
	assert.Equal(t, "Admin", submitted.CreatedBy)
	assert.NotEmpty(t, submitted.ReferenceID)
	assert.False(t, submitted.CreatedAt.IsZero())

	// Recorded billing: the draft and the cart are cleared.
	assert.Empty(t, cart.Items())
	_, found, _ := drafts.Load()
	assert.False(t, found)

	// The acknowledgment blocks until explicitly dismissed.
	assert.Equal(t, services.PhaseSucceeded, checkout.Phase())
	checkout.Dismiss()
	assert.Equal(t, services.PhaseIdle, checkout.Phase())
}

func TestCheckoutService_PendingStatusClearsDraftWithoutAcknowledgment(t *testing.T) {
	checkout, cart, billing, drafts, notices := newCheckout(t)
	cart.AddProduct(widget())

	billing.On("CreateBilling", mock.Anything).
		Return(&models.BillingReceipt{BillingID: "B2", PaymentStatus: models.PaymentStatusPending}, nil).Once()

	outcome := checkout.Submit(validDetails(), models.PaymentStatusPending)

	// Recorded with a non-success status: draft cleared, no acknowledgment.
	assert.Equal(t, services.OutcomeRecorded, outcome)
	assert.Equal(t, services.PhaseFailed, checkout.Phase())
	assert.Empty(t, notices.Successes())
	_, found, _ := drafts.Load()
	assert.False(t, found)
	assert.Empty(t, cart.Items())
}

func TestCheckoutService_TransportFailurePreservesDraft(t *testing.T) {
	checkout, cart, billing, drafts, notices := newCheckout(t)
	cart.AddProduct(widget())

	billing.On("CreateBilling", mock.Anything).
		Return(nil, fmt.Errorf("connection refused")).Once()

	outcome := checkout.Submit(validDetails(), models.PaymentStatusSuccess)

	// The order was never recorded: keep everything for a retry.
	assert.Equal(t, services.OutcomeRetryable, outcome)
	assert.Equal(t, services.PhaseIdle, checkout.Phase())
	assert.Contains(t, notices.Errors()[0], "Failed to create billing")
	assert.Len(t, cart.Items(), 1)
	_, found, _ := drafts.Load()
	assert.True(t, found)
}

func TestCheckoutService_ConcurrentSubmitBlocked(t *testing.T) {
	checkout, cart, billing, _, notices := newCheckout(t)
	cart.AddProduct(widget())

	release := make(chan struct{})
	firstDone := make(chan services.Outcome, 1)
	billing.On("CreateBilling", mock.Anything).
		Run(func(mock.Arguments) { <-release }).
		Return(&models.BillingReceipt{BillingID: "B3", PaymentStatus: models.PaymentStatusSuccess}, nil).Once()

	go func() {
		firstDone <- checkout.Submit(validDetails(), models.PaymentStatusSuccess)
	}()

	assert.Eventually(t, func() bool {
		return checkout.Phase() == services.PhaseSubmitting
	}, time.Second, 5*time.Millisecond)

	// Re-submission while an attempt is in flight is refused outright.
	outcome := checkout.Submit(validDetails(), models.PaymentStatusSuccess)
	assert.Equal(t, services.OutcomeBlocked, outcome)
	assert.Contains(t, notices.Errors()[0], "already in progress")

	close(release)
	assert.Equal(t, services.OutcomeSucceeded, <-firstDone)
	billing.AssertExpectations(t)
}
