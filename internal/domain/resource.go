package domain

import "time"

type ListingType string

const (
	ListingTypeRent   ListingType = "rent"
	ListingTypeBorrow ListingType = "borrow"
	ListingTypeSell   ListingType = "sell"
)

func (lt ListingType) Valid() bool {
	switch lt {
	case ListingTypeRent, ListingTypeBorrow, ListingTypeSell:
		return true
	}
	return false
}

const (
	MinQuality int32 = 1
	MaxQuality int32 = 10

	// DefaultQuality is assigned when a listing omits the quality score.
	DefaultQuality int32 = 5
)

type Resource struct {
	ID          int32       `json:"id"`
	OwnerID     int32       `json:"owner_id"`
	Owner       *User       `json:"owner,omitempty"` // Populated when fetching resource details
	Name        string      `json:"name"`
	Category    string      `json:"category"` // tools, livestock, electronics, fertilizers, ...
	Description string      `json:"description"`
	Price       float64     `json:"price"`
	ListingType ListingType `json:"listing_type"`
	Condition   string      `json:"condition"` // new, good, fair, poor
	AgeYears    int32       `json:"age_years"`
	Quality     int32       `json:"quality"` // 1-10 scale
	ImageURL    string      `json:"image_url,omitempty"`
	Location    string      `json:"location,omitempty"`
	IsAvailable bool        `json:"is_available"`
	Rating      float64     `json:"rating"` // mean of completed transaction ratings, 0.0 when unrated
	CreatedOn   time.Time   `json:"created_on"`
	UpdatedOn   time.Time   `json:"updated_on"`
}
