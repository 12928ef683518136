package service

import (
	"context"

	"exploraneiva/internal/model"
)

// ClientService manages agency clients through /cliente.
type ClientService interface {
	List(ctx context.Context) ([]model.Client, error)
	GetByID(ctx context.Context, id int64) (*model.Client, error)
	Create(ctx context.Context, c model.Client) (*model.Client, error)
	Update(ctx context.Context, id int64, c model.Client) (*model.Client, error)
	Delete(ctx context.Context, id int64) error
}

type clientService struct {
	res resource[model.Client]
}

func NewClientService(api API) ClientService {
	return &clientService{res: resource[model.Client]{api: api, path: "/cliente"}}
}

func (s *clientService) List(ctx context.Context) ([]model.Client, error) {
	return s.res.list(ctx)
}

func (s *clientService) GetByID(ctx context.Context, id int64) (*model.Client, error) {
	return s.res.get(ctx, id)
}

func (s *clientService) Create(ctx context.Context, c model.Client) (*model.Client, error) {
	c.Status = true
	return s.res.create(ctx, c)
}

func (s *clientService) Update(ctx context.Context, id int64, c model.Client) (*model.Client, error) {
	c.Status = true
	return s.res.update(ctx, id, c)
}

func (s *clientService) Delete(ctx context.Context, id int64) error {
	return s.res.delete(ctx, id)
}
