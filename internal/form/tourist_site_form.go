package form

import (
	"context"

	"exploraneiva/internal/dto"
	"exploraneiva/internal/model"
	"exploraneiva/internal/service"
	"exploraneiva/internal/session"

	"github.com/shopspring/decimal"
)

// TouristSiteForm creates a tourist site, or edits one when id > 0.
type TouristSiteForm struct {
	controller[dto.TouristSiteValues]

	sites     service.TouristSiteService
	validator *Validator
	sess      session.Session
	id        int64
	saved     *model.TouristSite
}

func NewTouristSiteForm(sites service.TouristSiteService, v *Validator, sess session.Session, id int64) *TouristSiteForm {
	return &TouristSiteForm{sites: sites, validator: v, sess: sess, id: id}
}

func (f *TouristSiteForm) IsEdit() bool { return f.id > 0 }

// Load fetches the site being edited. A new site defaults to type "lugar"
// with no price.
func (f *TouristSiteForm) Load(ctx context.Context) error {
	return f.load(withSession(ctx, f.sess), func(ctx context.Context) (dto.TouristSiteValues, error) {
		if !f.IsEdit() {
			return dto.TouristSiteValues{Type: model.SiteTypePlace}, nil
		}
		s, err := f.sites.GetByID(ctx, f.id)
		if err != nil {
			return dto.TouristSiteValues{}, err
		}
		price := s.Price
		return dto.TouristSiteValues{
			Title:       s.Title,
			Description: s.Description,
			Type:        s.Type,
			ImageURL:    s.ImageURL,
			Location:    s.Location,
			Schedule:    s.Schedule,
			Price:       &price,
			Contact:     s.Contact,
		}, nil
	})
}

// Submit validates values and creates or updates the site. An empty price
// is sent as 0.
func (f *TouristSiteForm) Submit(ctx context.Context, values dto.TouristSiteValues) (*model.TouristSite, error) {
	err := f.submit(withSession(ctx, f.sess), values,
		func(v dto.TouristSiteValues) error { return f.validator.Validate(v, touristSiteMessages) },
		func(ctx context.Context, v dto.TouristSiteValues) error {
			price := decimal.Zero
			if v.Price != nil {
				price = *v.Price
			}
			s := model.TouristSite{
				ID:          f.id,
				Title:       v.Title,
				Description: v.Description,
				Type:        v.Type,
				ImageURL:    v.ImageURL,
				Location:    v.Location,
				Schedule:    v.Schedule,
				Price:       price,
				Contact:     v.Contact,
			}
			var err error
			if f.IsEdit() {
				f.saved, err = f.sites.Update(ctx, f.id, s)
			} else {
				f.saved, err = f.sites.Create(ctx, s)
			}
			return err
		})
	if err != nil {
		return nil, err
	}
	return f.saved, nil
}
