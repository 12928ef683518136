package dto

import "github.com/shopspring/decimal"

// TouristSiteValues is the editable state of the tourist site form.
// Price is nullable while editing and sent as 0 when left empty.
type TouristSiteValues struct {
	Title       string           `json:"title"       validate:"required,max=100"`
	Description string           `json:"description" validate:"required,max=500"`
	Type        string           `json:"type"        validate:"required,sitetype"`
	ImageURL    string           `json:"imageUrl"    validate:"required,url"`
	Location    string           `json:"location"    validate:"required,max=200"`
	Schedule    string           `json:"schedule"    validate:"required,max=50"`
	Price       *decimal.Decimal `json:"price"       validate:"omitempty,min=0,max=1000000"`
	Contact     string           `json:"contact"     validate:"required,max=50"`
}
