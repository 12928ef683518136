package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

// API is the part of infra.Gateway the resource services use.
type API interface {
	Get(ctx context.Context, path string, out any) error
	Post(ctx context.Context, path string, body, out any) error
	Put(ctx context.Context, path string, body, out any) error
	Delete(ctx context.Context, path string) error
}

type activeRecord interface {
	IsActive() bool
}

// resource implements the list/get/create/update/delete calls shared by
// every entity served under one API collection path.
type resource[T activeRecord] struct {
	api  API
	path string // e.g. "/cliente"
}

func (r resource[T]) itemPath(id int64) string {
	return fmt.Sprintf("%s/%d", r.path, id)
}

// list returns the active records only, never nil.
func (r resource[T]) list(ctx context.Context) ([]T, error) {
	all, err := r.listAt(ctx, r.path)
	if err != nil {
		return nil, err
	}
	active := make([]T, 0, len(all))
	for _, rec := range all {
		if rec.IsActive() {
			active = append(active, rec)
		}
	}
	return active, nil
}

// listAt returns everything served at path, unfiltered, never nil.
func (r resource[T]) listAt(ctx context.Context, path string) ([]T, error) {
	var all []T
	if err := r.api.Get(ctx, path, &all); err != nil {
		r.logFailure("list", path, err)
		return nil, err
	}
	if all == nil {
		all = []T{}
	}
	return all, nil
}

func (r resource[T]) get(ctx context.Context, id int64) (*T, error) {
	var rec T
	if err := r.api.Get(ctx, r.itemPath(id), &rec); err != nil {
		r.logFailure("get", r.itemPath(id), err)
		return nil, err
	}
	return &rec, nil
}

func (r resource[T]) create(ctx context.Context, body any) (*T, error) {
	var rec T
	if err := r.api.Post(ctx, r.path, body, &rec); err != nil {
		r.logFailure("create", r.path, err)
		return nil, err
	}
	return &rec, nil
}

func (r resource[T]) update(ctx context.Context, id int64, body any) (*T, error) {
	var rec T
	if err := r.api.Put(ctx, r.itemPath(id), body, &rec); err != nil {
		r.logFailure("update", r.itemPath(id), err)
		return nil, err
	}
	return &rec, nil
}

func (r resource[T]) delete(ctx context.Context, id int64) error {
	if err := r.api.Delete(ctx, r.itemPath(id)); err != nil {
		r.logFailure("delete", r.itemPath(id), err)
		return err
	}
	return nil
}

func (r resource[T]) logFailure(op, path string, err error) {
	log.Error().Err(err).Str("op", op).Str("path", path).Msg("service: API call failed")
}
