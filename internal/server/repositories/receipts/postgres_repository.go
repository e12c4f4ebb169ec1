package receipts

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/gophvault/internal/address"
	"github.com/dmitrijs2005/gophvault/internal/dbx"
	"github.com/dmitrijs2005/gophvault/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, rc *models.Receipt) error {
	query :=
		`INSERT INTO receipts (id, kind, depositor, amount, user_deposited_after, total_deposited_after, created_at)
         VALUES ($1, $2, $3, $4, $5, $6, $7)
		 `

	_, err := r.db.ExecContext(ctx, query,
		rc.ID, string(rc.Kind), rc.Depositor.Bytes(),
		strconv.FormatUint(rc.Amount, 10),
		strconv.FormatUint(rc.UserDepositedAfter, 10),
		strconv.FormatUint(rc.TotalDepositedAfter, 10),
		rc.CreatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// ListByDepositor returns newest receipts first; limit <= 0 means no limit.
func (r *PostgresRepository) ListByDepositor(ctx context.Context, depositor address.Address, limit int) ([]*models.Receipt, error) {
	query :=
		`SELECT id, kind, depositor, amount, user_deposited_after, total_deposited_after, created_at
		 FROM receipts
		 WHERE depositor = $1
		 ORDER BY created_at DESC, seq DESC
		 LIMIT $2
		 `

	var lim any
	if limit > 0 {
		lim = limit
	}

	rows, err := r.db.QueryContext(ctx, query, depositor.Bytes(), lim)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Receipt
	for rows.Next() {
		var (
			rc                    models.Receipt
			kind                  string
			dep                   []byte
			amount, after, totAft string
		)
		if err := rows.Scan(&rc.ID, &kind, &dep, &amount, &after, &totAft, &rc.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		rc.Kind = models.ReceiptKind(kind)
		if rc.Depositor, err = address.FromBytes(dep); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		if rc.Amount, err = strconv.ParseUint(amount, 10, 64); err != nil {
			return nil, fmt.Errorf("db error: amount: %w", err)
		}
		if rc.UserDepositedAfter, err = strconv.ParseUint(after, 10, 64); err != nil {
			return nil, fmt.Errorf("db error: user_deposited_after: %w", err)
		}
		if rc.TotalDepositedAfter, err = strconv.ParseUint(totAft, 10, 64); err != nil {
			return nil, fmt.Errorf("db error: total_deposited_after: %w", err)
		}
		result = append(result, &rc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}
