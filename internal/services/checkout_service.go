package services

import (
	"regexp"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"billdesk/internal/api"
	"billdesk/internal/models"
	"billdesk/pkg/notify"
)

// Phase is the checkout state machine position for the current attempt.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseValidating
	PhaseSubmitting
	PhaseSucceeded
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseValidating:
		return "validating"
	case PhaseSubmitting:
		return "submitting"
	case PhaseSucceeded:
		return "succeeded"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Outcome describes how a checkout attempt ended.
type Outcome int

const (
	// OutcomeBlocked: another submission was already in flight.
	OutcomeBlocked Outcome = iota
	// OutcomeRejected: a precondition failed; nothing was submitted.
	OutcomeRejected
	// OutcomeRetryable: the submission never reached the backend; the draft
	// is preserved so the attempt can be retried without re-entering items.
	OutcomeRetryable
	// OutcomeSucceeded: billing recorded with the Success payment status;
	// the flow waits for an explicit Dismiss before returning to idle.
	OutcomeSucceeded
	// OutcomeRecorded: billing recorded with a non-success payment status;
	// the draft is cleared and the flow returns to the billing list.
	OutcomeRecorded
)

// phonePattern is deliberately permissive; the backend owns the canonical
// mobile number validation.
var phonePattern = regexp.MustCompile(`^([+]?[\s0-9]+)?(\d{3}|[(]?[0-9]+[)])?([-]?[\s]?[0-9])+$`)

// CheckoutService validates, finalizes and submits orders built from the
// cart, and exposes the state machine phase so submit controls can be
// disabled while an attempt is in flight.
type CheckoutService struct {
	billing   api.BillingAPI
	cart      *CartService
	notifier  notify.Notifier
	validate  *validator.Validate
	createdBy string

	mu    sync.Mutex
	phase Phase
}

// NewCheckoutService creates a checkout submitter for the given cart.
// createdBy is stamped on every submitted order.
func NewCheckoutService(billing api.BillingAPI, cart *CartService, notifier notify.Notifier, createdBy string) (*CheckoutService, error) {
	validate := validator.New()
	err := validate.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
	if err != nil {
		return nil, err
	}

	return &CheckoutService{
		billing:   billing,
		cart:      cart,
		notifier:  notifier,
		validate:  validate,
		createdBy: createdBy,
	}, nil
}

// Phase returns the current state machine phase.
func (s *CheckoutService) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// Submit runs the checkout preconditions and, when they pass, submits
// exactly one order built from the current cart. paymentStatus is the tag
// chosen by the user (paid now, pay later); the receipt's recorded status
// decides the outcome.
func (s *CheckoutService) Submit(details models.CustomerDetails, paymentStatus string) Outcome {
	s.mu.Lock()
	if s.phase == PhaseSubmitting {
		s.mu.Unlock()
		s.notifier.Errorf("A billing submission is already in progress")
		return OutcomeBlocked
	}
	s.phase = PhaseValidating
	s.mu.Unlock()

	items := s.cart.Items()
	if len(items) == 0 {
		s.notifier.Errorf("Please add products to your bill before checking out.")
		s.setPhase(PhaseIdle)
		return OutcomeRejected
	}
	if s.cart.HasZeroQuantity() {
		s.notifier.Errorf("Cannot checkout the product with no quantity")
		s.setPhase(PhaseIdle)
		return OutcomeRejected
	}
	if err := s.validate.Struct(details); err != nil {
		s.notifier.Errorf("Please fill the customer details correctly")
		s.setPhase(PhaseIdle)
		return OutcomeRejected
	}

	order := s.buildOrder(details, items, paymentStatus)

	s.setPhase(PhaseSubmitting)
	receipt, err := s.billing.CreateBilling(order)
	if err != nil {
		// The order was never recorded: keep the draft for a retry.
		s.notifier.Errorf("Failed to create billing")
		s.setPhase(PhaseIdle)
		return OutcomeRetryable
	}

	// The order is recorded whatever its payment status, so the draft is done.
	s.cart.Reset()

	if receipt.PaymentStatus == models.PaymentStatusSuccess {
		s.setPhase(PhaseSucceeded)
		s.notifier.Successf("Billing created successfully")
		return OutcomeSucceeded
	}
	s.setPhase(PhaseFailed)
	return OutcomeRecorded
}

// Dismiss acknowledges a successful checkout and returns the flow to idle.
// It also resets a terminal failed phase so the next attempt can start.
func (s *CheckoutService) Dismiss() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase == PhaseSucceeded || s.phase == PhaseFailed {
		s.phase = PhaseIdle
	}
}

// buildOrder freezes the cart and customer details into the submission
// payload. The order is never mutated after this point.
func (s *CheckoutService) buildOrder(details models.CustomerDetails, items []models.LineItem, paymentStatus string) *models.Order {
	return &models.Order{
		CustomerDetails: details,
		ReferenceID:     uuid.New().String(),
		ProductsList:    items,
		TotalItems:      len(items),
		FinalPrice:      s.cart.GrandTotal(),
		PaymentStatus:   paymentStatus,
		PaymentStatusID: models.PaymentStatusID(paymentStatus),
		CreatedAt:       time.Now(),
		CreatedBy:       s.createdBy,
	}
}

func (s *CheckoutService) setPhase(phase Phase) {
	s.mu.Lock()
	s.phase = phase
	s.mu.Unlock()
}
