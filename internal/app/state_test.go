package app

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ayyanulhaq997-cmd/CorpVision/internal/checkout"
	"github.com/ayyanulhaq997-cmd/CorpVision/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type orderCounter struct {
	n atomic.Int32
}

func (o *orderCounter) OrderCompleted(context.Context) {
	o.n.Add(1)
}

func license() domain.Product {
	return domain.Product{Base: domain.Base{ID: "p1", Name: "Enterprise License", Category: "Software"}, Price: 999, Stock: 100}
}

func storage() domain.Product {
	return domain.Product{Base: domain.Base{ID: "p2", Name: "Cloud Storage Pro", Category: "Storage"}, Price: 49.99, Stock: 500}
}

func validForm() checkout.Form {
	return checkout.Form{
		Email: "ops@example.com", FirstName: "Grace", LastName: "Hopper",
		Address: "1 Harbor Way", City: "Arlington", PostalCode: "22201",
		CardNumber: "4111111111111111", Expiry: "01/31", CVV: "999",
	}
}

func TestNew_Defaults(t *testing.T) {
	s := New()

	v := s.View()

	assert.Equal(t, domain.PageHome, v.Page)
	assert.False(t, v.CartOpen)
	assert.False(t, v.OrderComplete)
	assert.Empty(t, v.Lines)
	assert.Equal(t, 0, v.CartCount)
}

func TestAddToCart_OpensDrawer(t *testing.T) {
	s := New()

	v := s.AddToCart(license())

	assert.True(t, v.CartOpen)
	assert.Equal(t, 1, v.CartCount)

	v = s.CloseCart()
	assert.False(t, v.CartOpen)

	v = s.AddToCart(license())
	assert.True(t, v.CartOpen)
	assert.Equal(t, 2, v.CartCount)
	assert.Len(t, v.Lines, 1)
}

func TestUpdateAndRemove(t *testing.T) {
	s := New()
	s.AddToCart(license())
	s.AddToCart(storage())

	v := s.UpdateQuantity("p2", 2)
	assert.Equal(t, 4, v.CartCount)

	v = s.UpdateQuantity("p1", -5)
	assert.Len(t, v.Lines, 1)

	v = s.RemoveItem("p2")
	assert.Empty(t, v.Lines)
	assert.Equal(t, domain.OrderTotals{}, v.Totals)
}

func TestNavigate(t *testing.T) {
	s := New()

	v, err := s.Navigate(domain.PageDirectory)
	require.NoError(t, err)
	assert.Equal(t, domain.PageDirectory, v.Page)

	_, err = s.Navigate("nowhere")
	assert.Error(t, err)
	assert.Equal(t, domain.PageDirectory, s.View().Page)
}

func TestProceedToCheckout_EmptyCartGuard(t *testing.T) {
	s := New()

	v, err := s.ProceedToCheckout()

	require.NoError(t, err)
	assert.Equal(t, domain.PageCheckout, v.Page)
	assert.Equal(t, domain.CheckoutStatusCartEmpty, v.CheckoutStatus)

	_, err = s.SubmitOrder(validForm())
	assert.ErrorIs(t, err, checkout.ErrIllegalTransition)
}

func TestProceedToCheckout_ClosesDrawer(t *testing.T) {
	s := New()
	s.AddToCart(license())

	v, err := s.Navigate(domain.PageCheckout)

	require.NoError(t, err)
	assert.False(t, v.CartOpen)
	assert.Equal(t, domain.CheckoutStatusForm, v.CheckoutStatus)
}

func TestSubmitOrder_ValidationFailureStaysOnForm(t *testing.T) {
	s := New(WithCheckoutDelay(time.Millisecond))
	s.AddToCart(license())
	_, err := s.ProceedToCheckout()
	require.NoError(t, err)

	form := validForm()
	form.City = ""
	v, err := s.SubmitOrder(form)

	var verr *checkout.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"city"}, verr.Fields)
	assert.Equal(t, domain.CheckoutStatusForm, v.CheckoutStatus)
	assert.False(t, s.processing())
}

func TestSubmitOrder_CompletesAfterDelay(t *testing.T) {
	counter := &orderCounter{}
	s := New(WithCheckoutDelay(20*time.Millisecond), WithMetrics(counter))
	s.AddToCart(license())
	s.AddToCart(storage())
	s.UpdateQuantity("p2", 1)
	_, err := s.ProceedToCheckout()
	require.NoError(t, err)

	v, err := s.SubmitOrder(validForm())
	require.NoError(t, err)
	assert.Equal(t, domain.CheckoutStatusProcessing, v.CheckoutStatus)
	assert.True(t, s.processing())
	assert.Len(t, v.Lines, 2, "cart is cleared only on completion")

	require.Eventually(t, func() bool {
		return s.View().OrderComplete
	}, time.Second, 5*time.Millisecond)

	v = s.View()
	assert.Empty(t, v.Lines)
	assert.Equal(t, 0, v.CartCount)
	assert.Equal(t, domain.CheckoutStatusComplete, v.CheckoutStatus)
	require.NotNil(t, v.Receipt)
	assert.Len(t, v.Receipt.Lines, 2)
	assert.InDelta(t, (999+2*49.99)*1.08, v.Receipt.Totals.Total, 1e-9)
	assert.False(t, s.processing())
	assert.Equal(t, int32(1), counter.n.Load())
}

func TestSubmitOrder_NavigatingAwayDoesNotCancel(t *testing.T) {
	s := New(WithCheckoutDelay(20 * time.Millisecond))
	s.AddToCart(license())
	_, err := s.ProceedToCheckout()
	require.NoError(t, err)
	_, err = s.SubmitOrder(validForm())
	require.NoError(t, err)

	_, err = s.Navigate(domain.PageShop)
	require.NoError(t, err)
	s.AddToCart(storage())

	require.Eventually(t, func() bool {
		return s.View().OrderComplete
	}, time.Second, 5*time.Millisecond)

	v := s.View()
	assert.Equal(t, domain.PageShop, v.Page)
	// everything in the cart at completion time is cleared, including late additions
	assert.Empty(t, v.Lines)
	assert.Len(t, v.Receipt.Lines, 1)
}

func TestProceedToCheckout_WhileProcessingKeepsStatus(t *testing.T) {
	s := New(WithCheckoutDelay(time.Hour))
	s.AddToCart(license())
	_, _ = s.ProceedToCheckout()
	_, err := s.SubmitOrder(validForm())
	require.NoError(t, err)
	_, _ = s.Navigate(domain.PageHome)

	v, err := s.ProceedToCheckout()

	require.NoError(t, err)
	assert.Equal(t, domain.CheckoutStatusProcessing, v.CheckoutStatus)
	assert.Equal(t, domain.PageCheckout, v.Page)

	s.mu.Lock()
	s.pending.Stop()
	s.mu.Unlock()
}

func TestReturnHome(t *testing.T) {
	s := New(WithCheckoutDelay(time.Millisecond))

	_, err := s.ReturnHome()
	assert.ErrorIs(t, err, checkout.ErrIllegalTransition)

	s.AddToCart(license())
	_, _ = s.ProceedToCheckout()
	_, err = s.SubmitOrder(validForm())
	require.NoError(t, err)
	require.Eventually(t, func() bool { return s.View().OrderComplete }, time.Second, 5*time.Millisecond)

	v, err := s.ReturnHome()
	require.NoError(t, err)
	assert.Equal(t, domain.PageHome, v.Page)
	assert.False(t, v.OrderComplete)
	assert.Nil(t, v.Receipt)

	// a new checkout starts from the guard again
	v, err = s.ProceedToCheckout()
	require.NoError(t, err)
	assert.Equal(t, domain.CheckoutStatusCartEmpty, v.CheckoutStatus)
}

func TestProceedToCheckout_AfterCompleteIsRejectedUntilReturn(t *testing.T) {
	s := New(WithCheckoutDelay(time.Millisecond))
	s.AddToCart(license())
	_, _ = s.ProceedToCheckout()
	_, _ = s.SubmitOrder(validForm())
	require.Eventually(t, func() bool { return s.View().OrderComplete }, time.Second, 5*time.Millisecond)
	_, _ = s.Navigate(domain.PageShop)

	_, err := s.ProceedToCheckout()

	assert.ErrorIs(t, err, checkout.ErrIllegalTransition)
	assert.Equal(t, domain.PageShop, s.View().Page)
}

func TestSubscribe(t *testing.T) {
	s := New()
	var mu sync.Mutex
	var pages []domain.Page

	unsubscribe := s.Subscribe(func(v View) {
		mu.Lock()
		defer mu.Unlock()
		pages = append(pages, v.Page)
	})

	_, _ = s.Navigate(domain.PageShop)
	s.AddToCart(license())
	_, _ = s.Navigate("bogus") // failed mutations are not broadcast
	unsubscribe()
	_, _ = s.Navigate(domain.PageAdmin)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []domain.Page{domain.PageShop, domain.PageShop}, pages)
}

func TestSubscribe_ListenerMayReadState(t *testing.T) {
	s := New()
	var seen int
	s.Subscribe(func(View) {
		seen = s.View().CartCount
	})

	s.AddToCart(license())

	assert.Equal(t, 1, seen)
}

func TestSubscribe_DeliversInMutationOrder(t *testing.T) {
	s := New()
	var counts []int
	s.Subscribe(func(v View) {
		counts = append(counts, v.CartCount)
	})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.AddToCart(license())
		}()
	}
	wg.Wait()

	require.Len(t, counts, 50)
	for i, c := range counts {
		assert.Equal(t, i+1, c)
	}
}

func TestSubscribe_CompletionOrderedAgainstRequests(t *testing.T) {
	s := New(WithCheckoutDelay(time.Millisecond))
	var mu sync.Mutex
	var sawComplete, staleAfterComplete bool
	s.Subscribe(func(v View) {
		mu.Lock()
		defer mu.Unlock()
		if sawComplete && !v.OrderComplete {
			staleAfterComplete = true
		}
		sawComplete = sawComplete || v.OrderComplete
	})
	s.AddToCart(license())
	_, _ = s.ProceedToCheckout()
	_, err := s.SubmitOrder(validForm())
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.OpenCart()
			s.CloseCart()
		}()
	}
	wg.Wait()
	require.Eventually(t, func() bool { return s.View().OrderComplete }, time.Second, time.Millisecond)
	s.CloseCart() // waits for the completion delivery

	mu.Lock()
	defer mu.Unlock()
	assert.True(t, sawComplete)
	assert.False(t, staleAfterComplete, "no view from before completion is delivered after it")
}

func TestConcurrentMutations(t *testing.T) {
	s := New()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.AddToCart(license())
			s.UpdateQuantity("p1", 1)
			s.View()
		}()
	}
	wg.Wait()

	assert.Equal(t, 40, s.View().CartCount)
}
