package model

import "github.com/shopspring/decimal"

const (
	SiteTypePlace      = "lugar"
	SiteTypeMuseum     = "museo"
	SiteTypePark       = "parque"
	SiteTypeRestaurant = "restaurante"
	SiteTypeHotel      = "hotel"
)

var SiteTypes = []string{SiteTypePlace, SiteTypeMuseum, SiteTypePark, SiteTypeRestaurant, SiteTypeHotel}

// TouristSite is a bookable place (GET /sitioTuristico).
type TouristSite struct {
	ID          int64           `json:"id,omitempty"`
	Status      bool            `json:"status"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Type        string          `json:"type"`
	ImageURL    string          `json:"imageUrl"`
	Location    string          `json:"location"`
	Schedule    string          `json:"schedule"`
	Price       decimal.Decimal `json:"price"`
	Contact     string          `json:"contact"`
}

func (s TouristSite) IsActive() bool { return s.Status }
