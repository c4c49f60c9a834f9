package investment

import "context"

type Repository interface {
	Create(ctx context.Context, inv *Investment) error
	List(ctx context.Context) ([]*Investment, error)
	GetByID(ctx context.Context, id string) (*Investment, error)
	Update(ctx context.Context, inv *Investment) error
	Delete(ctx context.Context, id string) error
}
