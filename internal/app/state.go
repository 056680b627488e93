// Package app holds the per-session application state: the current page, the
// cart, the checkout flow and the drawer / order-complete flags. All mutations
// are serialized; listeners observe the resulting view after each one.
package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ayyanulhaq997-cmd/CorpVision/internal/cart"
	"github.com/ayyanulhaq997-cmd/CorpVision/internal/checkout"
	"github.com/ayyanulhaq997-cmd/CorpVision/internal/domain"
	"go.uber.org/zap"
)

// DefaultCheckoutDelay is the simulated payment processing time.
const DefaultCheckoutDelay = 2500 * time.Millisecond

// OrderRecorder is notified when an order completes.
type OrderRecorder interface {
	OrderCompleted(ctx context.Context)
}

// View is an immutable snapshot of the state, recomputed on every read.
type View struct {
	Page           domain.Page           `json:"page"`
	CartOpen       bool                  `json:"cart_open"`
	OrderComplete  bool                  `json:"order_complete"`
	Lines          []domain.CartLine     `json:"lines"`
	CartCount      int                   `json:"cart_count"`
	Totals         domain.OrderTotals    `json:"totals"`
	CheckoutStatus domain.CheckoutStatus `json:"checkout_status,omitempty"`
	Receipt        *domain.Receipt       `json:"receipt,omitempty"`
}

type Listener func(View)

type State struct {
	mu            sync.Mutex
	page          domain.Page
	cart          *cart.Engine
	checkout      *checkout.Coordinator
	cartOpen      bool
	orderComplete bool
	delay         time.Duration
	pending       *time.Timer

	notifyMu    sync.Mutex // orders deliveries to match the order of mutations
	listenersMu sync.Mutex
	listeners   map[int]Listener
	nextID      int

	metrics OrderRecorder
	logger  *zap.Logger
}

type Option func(*State)

func WithCheckoutDelay(d time.Duration) Option {
	return func(s *State) { s.delay = d }
}

func WithMetrics(m OrderRecorder) Option {
	return func(s *State) { s.metrics = m }
}

func WithLogger(l *zap.Logger) Option {
	return func(s *State) {
		if l != nil {
			s.logger = l
		}
	}
}

// New returns the state every session starts with: home page, empty cart.
func New(opts ...Option) *State {
	s := &State{
		page:      domain.PageHome,
		cart:      cart.NewEngine(),
		delay:     DefaultCheckoutDelay,
		listeners: make(map[int]Listener),
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.checkout = checkout.NewCoordinator(s.cart, s.logger)
	return s
}

// Subscribe registers fn to receive the view after every mutation. The
// returned func removes the listener. Views are delivered one at a time, in
// mutation order; a listener may read the state but must not mutate it.
func (s *State) Subscribe(fn Listener) func() {
	s.listenersMu.Lock()
	defer s.listenersMu.Unlock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	return func() {
		s.listenersMu.Lock()
		defer s.listenersMu.Unlock()
		delete(s.listeners, id)
	}
}

func (s *State) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewLocked()
}

func (s *State) Navigate(page domain.Page) (View, error) {
	if !page.Valid() {
		return View{}, fmt.Errorf("unknown page %q", page)
	}
	if page == domain.PageCheckout {
		return s.ProceedToCheckout()
	}
	return s.mutate(func() error {
		s.page = page
		return nil
	})
}

// AddToCart adds one unit of p and opens the cart drawer.
func (s *State) AddToCart(p domain.Product) View {
	v, _ := s.mutate(func() error {
		s.cart.AddItem(p)
		s.cartOpen = true
		return nil
	})
	return v
}

func (s *State) UpdateQuantity(id string, delta int) View {
	v, _ := s.mutate(func() error {
		s.cart.UpdateQuantity(id, delta)
		return nil
	})
	return v
}

func (s *State) RemoveItem(id string) View {
	v, _ := s.mutate(func() error {
		s.cart.RemoveItem(id)
		return nil
	})
	return v
}

func (s *State) OpenCart() View {
	v, _ := s.mutate(func() error {
		s.cartOpen = true
		return nil
	})
	return v
}

func (s *State) CloseCart() View {
	v, _ := s.mutate(func() error {
		s.cartOpen = false
		return nil
	})
	return v
}

// ProceedToCheckout closes the drawer, shows the checkout page and enters the
// checkout flow. An order already processing keeps its status.
func (s *State) ProceedToCheckout() (View, error) {
	return s.mutate(func() error {
		if s.checkout.Status() != domain.CheckoutStatusProcessing {
			if _, err := s.checkout.Enter(); err != nil {
				return err
			}
		}
		s.cartOpen = false
		s.page = domain.PageCheckout
		return nil
	})
}

// SubmitOrder validates the form and starts the simulated payment. Once the
// delay elapses the cart is cleared and the order is marked complete; the
// timer is not cancelled by navigating elsewhere.
func (s *State) SubmitOrder(form checkout.Form) (View, error) {
	return s.mutate(func() error {
		if err := s.checkout.Submit(form); err != nil {
			return err
		}
		s.pending = time.AfterFunc(s.delay, s.completeOrder)
		return nil
	})
}

func (s *State) completeOrder() {
	_, err := s.mutate(func() error {
		s.pending = nil
		if err := s.checkout.Complete(); err != nil {
			return err
		}
		s.orderComplete = true
		return nil
	})
	if err != nil {
		s.logger.Error("order completion failed", zap.Error(err))
		return
	}
	if s.metrics != nil {
		s.metrics.OrderCompleted(context.Background())
	}
}

// ReturnHome leaves the order-complete screen.
func (s *State) ReturnHome() (View, error) {
	return s.mutate(func() error {
		if !s.orderComplete {
			return fmt.Errorf("return home: %w", checkout.ErrIllegalTransition)
		}
		if err := s.checkout.Reset(); err != nil {
			return err
		}
		s.orderComplete = false
		s.page = domain.PageHome
		return nil
	})
}

// processing reports whether a simulated payment is in flight.
func (s *State) processing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending != nil
}

// mutate runs fn under the state lock and, when it succeeds, notifies
// listeners with the resulting view. The state lock is released before
// listeners run; notifyMu is held across both so a timer-driven completion
// cannot overtake a request's view.
func (s *State) mutate(fn func() error) (View, error) {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	s.mu.Lock()
	err := fn()
	v := s.viewLocked()
	s.mu.Unlock()

	if err != nil {
		return v, err
	}
	s.notify(v)
	return v, nil
}

func (s *State) notify(v View) {
	s.listenersMu.Lock()
	listeners := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.listenersMu.Unlock()

	for _, l := range listeners {
		l(v)
	}
}

func (s *State) viewLocked() View {
	return View{
		Page:           s.page,
		CartOpen:       s.cartOpen,
		OrderComplete:  s.orderComplete,
		Lines:          s.cart.Lines(),
		CartCount:      s.cart.Count(),
		Totals:         s.cart.Totals(),
		CheckoutStatus: s.checkout.Status(),
		Receipt:        s.checkout.Receipt(),
	}
}
