// Package checkout drives the simulated checkout flow:
// cart-empty guard, form, processing, complete.
package checkout

import (
	"fmt"
	"time"

	"github.com/ayyanulhaq997-cmd/CorpVision/internal/domain"
	"go.uber.org/zap"
)

// Cart is the part of the cart engine the coordinator needs.
type Cart interface {
	Len() int
	Lines() []domain.CartLine
	Totals() domain.OrderTotals
	Clear()
}

// Coordinator is not safe for concurrent use; the application state serializes access.
type Coordinator struct {
	cart    Cart
	status  domain.CheckoutStatus
	receipt *domain.Receipt
	logger  *zap.Logger
	now     func() time.Time
}

func NewCoordinator(cart Cart, logger *zap.Logger) *Coordinator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Coordinator{
		cart:   cart,
		logger: logger,
		now:    time.Now,
	}
}

// Status is the current status; the zero value means checkout was never entered.
func (c *Coordinator) Status() domain.CheckoutStatus {
	return c.status
}

// Receipt returns the order captured by the last successful Submit, if any.
func (c *Coordinator) Receipt() *domain.Receipt {
	return c.receipt
}

// Enter shows the form, or the empty-cart guard when there is nothing to buy.
func (c *Coordinator) Enter() (domain.CheckoutStatus, error) {
	next := domain.CheckoutStatusForm
	if c.cart.Len() == 0 {
		next = domain.CheckoutStatusCartEmpty
	}
	if err := c.transition(next); err != nil {
		return c.status, err
	}
	return c.status, nil
}

// Submit validates the form and moves to processing. The caller is
// responsible for calling Complete once the simulated delay has elapsed.
func (c *Coordinator) Submit(form Form) error {
	if c.status != domain.CheckoutStatusForm {
		return fmt.Errorf("submit from %s: %w", c.status, ErrIllegalTransition)
	}
	if c.cart.Len() == 0 {
		c.status = domain.CheckoutStatusCartEmpty
		return ErrEmptyCart
	}
	if err := form.Validate(); err != nil {
		return err
	}

	c.receipt = &domain.Receipt{
		Lines:       c.cart.Lines(),
		Totals:      c.cart.Totals(),
		Email:       form.Email,
		SubmittedAt: c.now(),
	}
	return c.transition(domain.CheckoutStatusProcessing)
}

// Complete clears the cart and finishes the order. There is no failure path.
func (c *Coordinator) Complete() error {
	if err := c.transition(domain.CheckoutStatusComplete); err != nil {
		return err
	}
	c.cart.Clear()
	c.logger.Info("order completed",
		zap.Int("lines", len(c.receipt.Lines)),
		zap.Float64("total", c.receipt.Totals.Total))
	return nil
}

// Reset leaves the completed state so a new checkout can be entered later.
func (c *Coordinator) Reset() error {
	if c.status != domain.CheckoutStatusComplete {
		return fmt.Errorf("reset from %s: %w", c.status, ErrIllegalTransition)
	}
	c.status = ""
	c.receipt = nil
	return nil
}

func (c *Coordinator) transition(to domain.CheckoutStatus) error {
	if !domain.CanTransitionTo(c.status, to) {
		return fmt.Errorf("%s -> %s: %w", c.status, to, ErrIllegalTransition)
	}
	c.logger.Debug("checkout transition",
		zap.Stringer("from", c.status),
		zap.Stringer("to", to))
	c.status = to
	return nil
}
