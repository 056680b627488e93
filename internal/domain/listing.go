package domain

type ListingStatus string

const (
	ListingPublished   ListingStatus = "published"
	ListingPending     ListingStatus = "pending"
	ListingStatusDraft ListingStatus = "draft"
)

func (s ListingStatus) Valid() bool {
	switch s {
	case ListingPublished, ListingPending, ListingStatusDraft:
		return true
	}
	return false
}

type Listing struct {
	Base
	Industry string        `json:"industry"`
	Location string        `json:"location"`
	Rating   float64       `json:"rating"`
	Status   ListingStatus `json:"status"`
}

func (Listing) Kind() Kind {
	return KindListing
}

// ListingDraft is a listing without the fields the catalog assigns (id, rating, status).
type ListingDraft struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Industry    string `json:"industry"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Image       string `json:"image"`
}
