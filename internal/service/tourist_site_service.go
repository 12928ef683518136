package service

import (
	"context"

	"exploraneiva/internal/model"
)

// TouristSiteService manages bookable places through /sitioTuristico.
type TouristSiteService interface {
	List(ctx context.Context) ([]model.TouristSite, error)
	GetByID(ctx context.Context, id int64) (*model.TouristSite, error)
	Create(ctx context.Context, s model.TouristSite) (*model.TouristSite, error)
	Update(ctx context.Context, id int64, s model.TouristSite) (*model.TouristSite, error)
	Delete(ctx context.Context, id int64) error
}

type touristSiteService struct {
	res resource[model.TouristSite]
}

func NewTouristSiteService(api API) TouristSiteService {
	return &touristSiteService{res: resource[model.TouristSite]{api: api, path: "/sitioTuristico"}}
}

func (s *touristSiteService) List(ctx context.Context) ([]model.TouristSite, error) {
	return s.res.list(ctx)
}

func (s *touristSiteService) GetByID(ctx context.Context, id int64) (*model.TouristSite, error) {
	return s.res.get(ctx, id)
}

func (s *touristSiteService) Create(ctx context.Context, site model.TouristSite) (*model.TouristSite, error) {
	site.Status = true
	return s.res.create(ctx, site)
}

func (s *touristSiteService) Update(ctx context.Context, id int64, site model.TouristSite) (*model.TouristSite, error) {
	site.Status = true
	return s.res.update(ctx, id, site)
}

func (s *touristSiteService) Delete(ctx context.Context, id int64) error {
	return s.res.delete(ctx, id)
}
