package valueobject

import "fmt"

// ListingStatus represents where a listing is in the financing lifecycle.
type ListingStatus struct {
	value string
}

const (
	listingStatusDraft           = "DRAFT"
	listingStatusLookingForBuyer = "LOOKING_FOR_BUYER"
	listingStatusInProgress      = "IN_PROGRESS"
	listingStatusClosed          = "CLOSED"
)

var (
	ListingStatusDraft           = ListingStatus{value: listingStatusDraft}
	ListingStatusLookingForBuyer = ListingStatus{value: listingStatusLookingForBuyer}
	ListingStatusInProgress      = ListingStatus{value: listingStatusInProgress}
	ListingStatusClosed          = ListingStatus{value: listingStatusClosed}
)

var validListingStatuses = map[string]ListingStatus{
	listingStatusDraft:           ListingStatusDraft,
	listingStatusLookingForBuyer: ListingStatusLookingForBuyer,
	listingStatusInProgress:      ListingStatusInProgress,
	listingStatusClosed:          ListingStatusClosed,
}

// NewListingStatus creates a ListingStatus from a raw string.
func NewListingStatus(s string) (ListingStatus, error) {
	v, ok := validListingStatuses[s]
	if !ok {
		return ListingStatus{}, fmt.Errorf("invalid listing status: %q", s)
	}
	return v, nil
}

// String returns the string representation of the status.
func (s ListingStatus) String() string { return s.value }

// IsZero returns true if the status has not been initialised.
func (s ListingStatus) IsZero() bool { return s.value == "" }

// Equal returns true when both statuses carry the same value.
func (s ListingStatus) Equal(other ListingStatus) bool { return s.value == other.value }
