package accounts

import (
	"context"

	"github.com/dmitrijs2005/gophvault/internal/address"
	"github.com/dmitrijs2005/gophvault/internal/server/models"
)

type Repository interface {
	Get(ctx context.Context, addr address.Address) (*models.Account, error)
	GetForUpdate(ctx context.Context, addr address.Address) (*models.Account, error)
	Create(ctx context.Context, acc *models.Account) error
	Upsert(ctx context.Context, acc *models.Account) error
	ListByOwner(ctx context.Context, owner address.Address) ([]*models.Account, error)
}
