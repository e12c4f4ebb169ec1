package receipts

import (
	"context"

	"github.com/dmitrijs2005/gophvault/internal/address"
	"github.com/dmitrijs2005/gophvault/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, r *models.Receipt) error
	ListByDepositor(ctx context.Context, depositor address.Address, limit int) ([]*models.Receipt, error)
}
