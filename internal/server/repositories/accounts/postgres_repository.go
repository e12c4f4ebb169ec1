package accounts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/gophvault/internal/address"
	"github.com/dmitrijs2005/gophvault/internal/common"
	"github.com/dmitrijs2005/gophvault/internal/dbx"
	"github.com/dmitrijs2005/gophvault/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Get(ctx context.Context, addr address.Address) (*models.Account, error) {
	query :=
		`SELECT address, owner, lamports, data FROM accounts
		 WHERE address = $1
		 `
	return r.get(ctx, query, addr)
}

// GetForUpdate locks the row until the surrounding transaction ends.
func (r *PostgresRepository) GetForUpdate(ctx context.Context, addr address.Address) (*models.Account, error) {
	query :=
		`SELECT address, owner, lamports, data FROM accounts
		 WHERE address = $1
		 FOR UPDATE
		 `
	return r.get(ctx, query, addr)
}

func (r *PostgresRepository) get(ctx context.Context, query string, addr address.Address) (*models.Account, error) {
	acc, err := scanAccount(r.db.QueryRowContext(ctx, query, addr.Bytes()))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return acc, nil
}

func (r *PostgresRepository) Create(ctx context.Context, acc *models.Account) error {
	query :=
		`INSERT INTO accounts (address, owner, lamports, data)
         VALUES ($1, $2, $3, $4)
		 ON CONFLICT (address) DO NOTHING
		 `

	res, err := r.db.ExecContext(ctx, query,
		acc.Address.Bytes(), acc.Owner.Bytes(), strconv.FormatUint(acc.Lamports, 10), dataOrEmpty(acc.Data))
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrAlreadyInitialized
	}
	return nil
}

func (r *PostgresRepository) Upsert(ctx context.Context, acc *models.Account) error {
	query :=
		`INSERT INTO accounts (address, owner, lamports, data)
         VALUES ($1, $2, $3, $4)
		 ON CONFLICT (address) DO UPDATE
		 SET owner = EXCLUDED.owner, lamports = EXCLUDED.lamports, data = EXCLUDED.data, updated_at = now()
		 `

	_, err := r.db.ExecContext(ctx, query,
		acc.Address.Bytes(), acc.Owner.Bytes(), strconv.FormatUint(acc.Lamports, 10), dataOrEmpty(acc.Data))
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) ListByOwner(ctx context.Context, owner address.Address) ([]*models.Account, error) {
	query :=
		`SELECT address, owner, lamports, data FROM accounts
		 WHERE owner = $1
		 ORDER BY address
		 `

	rows, err := r.db.QueryContext(ctx, query, owner.Bytes())
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Account
	for rows.Next() {
		acc, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, acc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAccount(s scanner) (*models.Account, error) {
	var (
		addr, owner, data []byte
		lamports          string
	)
	if err := s.Scan(&addr, &owner, &lamports, &data); err != nil {
		return nil, err
	}

	acc := &models.Account{Data: data}
	var err error
	if acc.Address, err = address.FromBytes(addr); err != nil {
		return nil, err
	}
	if acc.Owner, err = address.FromBytes(owner); err != nil {
		return nil, err
	}
	if acc.Lamports, err = strconv.ParseUint(lamports, 10, 64); err != nil {
		return nil, fmt.Errorf("lamports %q: %w", lamports, err)
	}
	if len(acc.Data) == 0 {
		acc.Data = nil
	}
	return acc, nil
}

func dataOrEmpty(b []byte) []byte {
	if b == nil {
		return []byte{}
	}
	return b
}
