package domain

type Page string

const (
	PageHome          Page = "home"
	PageDirectory     Page = "directory"
	PageShop          Page = "shop"
	PageSubmitListing Page = "submit-listing"
	PageCheckout      Page = "checkout"
	PageAdmin         Page = "admin"
)

func (p Page) Valid() bool {
	switch p {
	case PageHome, PageDirectory, PageShop, PageSubmitListing, PageCheckout, PageAdmin:
		return true
	}
	return false
}
