package form

import (
	"context"

	"exploraneiva/internal/dto"
	"exploraneiva/internal/model"
	"exploraneiva/internal/service"
	"exploraneiva/internal/session"
)

// ClientForm creates a client, or edits one when id > 0.
type ClientForm struct {
	controller[dto.ClientValues]

	clients   service.ClientService
	validator *Validator
	sess      session.Session
	id        int64
	saved     *model.Client
}

func NewClientForm(clients service.ClientService, v *Validator, sess session.Session, id int64) *ClientForm {
	return &ClientForm{clients: clients, validator: v, sess: sess, id: id}
}

func (f *ClientForm) IsEdit() bool { return f.id > 0 }

// Load fetches the client being edited; a new form starts empty.
func (f *ClientForm) Load(ctx context.Context) error {
	return f.load(withSession(ctx, f.sess), func(ctx context.Context) (dto.ClientValues, error) {
		if !f.IsEdit() {
			return dto.ClientValues{}, nil
		}
		c, err := f.clients.GetByID(ctx, f.id)
		if err != nil {
			return dto.ClientValues{}, err
		}
		return dto.ClientValues{
			DocumentType:   c.DocumentType,
			DocumentNumber: c.DocumentNumber,
			FullName:       c.FullName,
			BirthDate:      c.BirthDate,
			Email:          c.Email,
			Phone:          c.Phone,
		}, nil
	})
}

// Submit validates values and creates or updates the client.
func (f *ClientForm) Submit(ctx context.Context, values dto.ClientValues) (*model.Client, error) {
	err := f.submit(withSession(ctx, f.sess), values,
		func(v dto.ClientValues) error { return f.validator.Validate(v, clientMessages) },
		func(ctx context.Context, v dto.ClientValues) error {
			c := model.Client{
				ID:             f.id,
				DocumentType:   v.DocumentType,
				DocumentNumber: v.DocumentNumber,
				FullName:       v.FullName,
				BirthDate:      v.BirthDate,
				Email:          v.Email,
				Phone:          v.Phone,
			}
			var err error
			if f.IsEdit() {
				f.saved, err = f.clients.Update(ctx, f.id, c)
			} else {
				f.saved, err = f.clients.Create(ctx, c)
			}
			return err
		})
	if err != nil {
		return nil, err
	}
	return f.saved, nil
}
