package accounts

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/gophvault/internal/address"
	"github.com/dmitrijs2005/gophvault/internal/common"
	"github.com/dmitrijs2005/gophvault/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func addr(fill byte) address.Address {
	var a address.Address
	for i := range a {
		a[i] = fill
	}
	return a
}

const (
	selectQ    = `(?s)^SELECT\s+address,\s*owner,\s*lamports,\s*data\s+FROM\s+accounts\s+WHERE\s+address\s*=\s*\$1\s*$`
	selectForQ = `(?s)^SELECT\s+address,\s*owner,\s*lamports,\s*data\s+FROM\s+accounts\s+WHERE\s+address\s*=\s*\$1\s+FOR\s+UPDATE\s*$`
	insertQ    = `(?s)^INSERT\s+INTO\s+accounts\s*\(address,\s*owner,\s*lamports,\s*data\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4\)\s*ON\s+CONFLICT\s+\(address\)\s+DO\s+NOTHING\s*$`
	upsertQ    = `(?s)^INSERT\s+INTO\s+accounts\s*\(address,\s*owner,\s*lamports,\s*data\).*ON\s+CONFLICT\s+\(address\)\s+DO\s+UPDATE\s+SET\s+owner\s*=\s*EXCLUDED\.owner.*$`
	listQ      = `(?s)^SELECT\s+address,\s*owner,\s*lamports,\s*data\s+FROM\s+accounts\s+WHERE\s+owner\s*=\s*\$1\s+ORDER\s+BY\s+address\s*$`
)

func accountColumns() []string {
	return []string{"address", "owner", "lamports", "data"}
}

func TestGet_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	a, o := addr(1), addr(2)
	rows := sqlmock.NewRows(accountColumns()).AddRow(a.Bytes(), o.Bytes(), "18446744073709551615", []byte{9, 9})
	mock.ExpectQuery(selectQ).WithArgs(a.Bytes()).WillReturnRows(rows)

	got, err := repo.Get(context.Background(), a)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if got.Address != a || got.Owner != o || got.Lamports != ^uint64(0) || len(got.Data) != 2 {
		t.Fatalf("unexpected account: %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestGet_EmptyDataBecomesNil(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	a := addr(3)
	rows := sqlmock.NewRows(accountColumns()).AddRow(a.Bytes(), address.SystemProgramID.Bytes(), "0", []byte{})
	mock.ExpectQuery(selectQ).WithArgs(a.Bytes()).WillReturnRows(rows)

	got, err := repo.Get(context.Background(), a)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if got.Data != nil || !got.IsSystemOwned() {
		t.Fatalf("unexpected account: %+v", got)
	}
}

func TestGet_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(selectQ).WithArgs(addr(4).Bytes()).WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), addr(4))
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestGet_BadLamports(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	a := addr(5)
	rows := sqlmock.NewRows(accountColumns()).AddRow(a.Bytes(), a.Bytes(), "-1", []byte{})
	mock.ExpectQuery(selectQ).WithArgs(a.Bytes()).WillReturnRows(rows)

	_, err := repo.Get(context.Background(), a)
	if err == nil || !regexp.MustCompile(`db error: lamports "-1"`).MatchString(err.Error()) {
		t.Fatalf("expected lamports parse error, got %v", err)
	}
}

func TestGetForUpdate_UsesRowLock(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	a := addr(6)
	rows := sqlmock.NewRows(accountColumns()).AddRow(a.Bytes(), a.Bytes(), "7", []byte{})
	mock.ExpectQuery(selectForQ).WithArgs(a.Bytes()).WillReturnRows(rows)

	got, err := repo.GetForUpdate(context.Background(), a)
	if err != nil {
		t.Fatalf("GetForUpdate error: %v", err)
	}
	if got.Lamports != 7 {
		t.Fatalf("unexpected lamports: %d", got.Lamports)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	acc := &models.Account{Address: addr(1), Owner: addr(2), Lamports: 0, Data: []byte{1}}
	mock.ExpectExec(insertQ).
		WithArgs(acc.Address.Bytes(), acc.Owner.Bytes(), "0", []byte{1}).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Create(context.Background(), acc); err != nil {
		t.Fatalf("Create error: %v", err)
	}
}

func TestCreate_Conflict(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	acc := models.NewSystemAccount(addr(1))
	mock.ExpectExec(insertQ).
		WithArgs(acc.Address.Bytes(), acc.Owner.Bytes(), "0", []byte{}).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Create(context.Background(), acc)
	if !errors.Is(err, common.ErrAlreadyInitialized) {
		t.Fatalf("want ErrAlreadyInitialized, got %v", err)
	}
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(insertQ).WillReturnError(errors.New("db down"))

	err := repo.Create(context.Background(), models.NewSystemAccount(addr(1)))
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestUpsert(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	acc := &models.Account{Address: addr(1), Owner: address.SystemProgramID, Lamports: 1_000_000_000}
	mock.ExpectExec(upsertQ).
		WithArgs(acc.Address.Bytes(), acc.Owner.Bytes(), "1000000000", []byte{}).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Upsert(context.Background(), acc); err != nil {
		t.Fatalf("Upsert error: %v", err)
	}

	mock.ExpectExec(upsertQ).WillReturnError(errors.New("db err"))
	if err := repo.Upsert(context.Background(), acc); err == nil {
		t.Fatal("expected error")
	}
}

func TestListByOwner(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	program := addr(9)
	rows := sqlmock.NewRows(accountColumns()).
		AddRow(addr(1).Bytes(), program.Bytes(), "0", []byte{1}).
		AddRow(addr(2).Bytes(), program.Bytes(), "5", []byte{2})
	mock.ExpectQuery(listQ).WithArgs(program.Bytes()).WillReturnRows(rows)

	got, err := repo.ListByOwner(context.Background(), program)
	if err != nil {
		t.Fatalf("ListByOwner error: %v", err)
	}
	if len(got) != 2 || got[0].Address != addr(1) || got[1].Lamports != 5 {
		t.Fatalf("unexpected accounts: %+v", got)
	}
}

func TestListByOwner_RowError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	program := addr(9)
	rows := sqlmock.NewRows(accountColumns()).
		AddRow(addr(1).Bytes(), program.Bytes(), "0", []byte{1}).
		RowError(0, errors.New("broken row"))
	mock.ExpectQuery(listQ).WithArgs(program.Bytes()).WillReturnRows(rows)

	_, err := repo.ListByOwner(context.Background(), program)
	if err == nil || !regexp.MustCompile(`db error: .*broken row`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped row error, got %v", err)
	}
}
