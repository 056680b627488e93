package domain

type CheckoutStatus string

const (
	CheckoutStatusCartEmpty  CheckoutStatus = "CART_EMPTY"
	CheckoutStatusForm       CheckoutStatus = "FORM"
	CheckoutStatusProcessing CheckoutStatus = "PROCESSING"
	CheckoutStatusComplete   CheckoutStatus = "COMPLETE"
)

func (s CheckoutStatus) IsTerminal() bool {
	return s == CheckoutStatusComplete || s == CheckoutStatusCartEmpty
}

// String representation (for logging)
func (s CheckoutStatus) String() string {
	return string(s)
}

var transitions = map[CheckoutStatus][]CheckoutStatus{
	"":                       {CheckoutStatusCartEmpty, CheckoutStatusForm},
	CheckoutStatusCartEmpty:  {CheckoutStatusCartEmpty, CheckoutStatusForm},
	CheckoutStatusForm:       {CheckoutStatusForm, CheckoutStatusCartEmpty, CheckoutStatusProcessing},
	CheckoutStatusProcessing: {CheckoutStatusComplete},
	CheckoutStatusComplete:   {},
}

// CanTransitionTo reports whether the checkout flow may move from one status to another.
// The zero status is the state before checkout has been entered.
func CanTransitionTo(from, to CheckoutStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
