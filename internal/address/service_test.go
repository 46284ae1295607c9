package address

import (
	"context"
	"testing"
	"time"

	"github.com/angelmondragon/lojavirtual-backend/internal/testdb"
	pkgerrors "github.com/angelmondragon/lojavirtual-backend/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func newTestService(t *testing.T) Service {
	t.Helper()
	conn := testdb.Open(t)
	require.NoError(t, conn.Exec(`INSERT INTO empresas (nome, cnpj, email) VALUES ('A', '1', 'a@example.com')`).Error)
	require.NoError(t, conn.Exec(`INSERT INTO empresas (nome, cnpj, email) VALUES ('B', '2', 'b@example.com')`).Error)

	svc, err := NewService(NewRepository(conn), func() time.Time { return fixedNow })
	require.NoError(t, err)
	return svc
}

func validInput(companyID int64, street string) AddressInput {
	return AddressInput{
		CompanyID:  companyID,
		Street:     street,
		City:       "São Paulo",
		State:      "SP",
		PostalCode: "01001-000",
	}
}

func requireCode(t *testing.T, err error, code pkgerrors.Code, msg string) {
	t.Helper()
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed, "expected typed error, got %v", err)
	assert.Equal(t, code, typed.Code())
	assert.Equal(t, msg, typed.Message())
}

func TestService_ListByCompanyOrderedByID(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	first, err := svc.Create(ctx, validInput(1, "Rua B"))
	require.NoError(t, err)
	second, err := svc.Create(ctx, validInput(1, "Rua A"))
	require.NoError(t, err)
	_, err = svc.Create(ctx, validInput(2, "Rua C"))
	require.NoError(t, err)

	list, err := svc.ListByCompany(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, first.ID, list[0].ID)
	assert.Equal(t, second.ID, list[1].ID)
	assert.Nil(t, list[0].UpdatedAt)

	empty, err := svc.ListByCompany(ctx, 99)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestService_CreateValidation(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.Create(ctx, validInput(0, "Rua A"))
	requireCode(t, err, pkgerrors.CodeValidation, MsgCreateFieldsRequired)

	noCep := validInput(1, "Rua A")
	noCep.PostalCode = " "
	_, err = svc.Create(ctx, noCep)
	requireCode(t, err, pkgerrors.CodeValidation, MsgCreateFieldsRequired)

	_, err = svc.Create(ctx, validInput(42, "Rua A"))
	requireCode(t, err, pkgerrors.CodeValidation, MsgUnknownCompany)
}

func TestService_UpdateStampsTimestamp(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	created, err := svc.Create(ctx, validInput(1, "Rua A"))
	require.NoError(t, err)

	number := "100"
	in := validInput(0, "Avenida Paulista")
	in.Number = &number
	updated, err := svc.Update(ctx, created.ID, in)
	require.NoError(t, err)
	assert.Equal(t, "Avenida Paulista", updated.Street)
	assert.Equal(t, "100", *updated.Number)
	assert.Equal(t, int64(1), updated.CompanyID)
	require.NotNil(t, updated.UpdatedAt)
	assert.True(t, fixedNow.Equal(*updated.UpdatedAt))

	bad := validInput(0, "")
	_, err = svc.Update(ctx, created.ID, bad)
	requireCode(t, err, pkgerrors.CodeValidation, MsgUpdateFieldsRequired)
}

func TestService_MissingAddress(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.Update(ctx, 77, validInput(0, "Rua A"))
	requireCode(t, err, pkgerrors.CodeNotFound, MsgNotFound)
	requireCode(t, svc.Delete(ctx, 77), pkgerrors.CodeNotFound, MsgNotFound)
}

func TestService_Delete(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	created, err := svc.Create(ctx, validInput(1, "Rua A"))
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, created.ID))

	list, err := svc.ListByCompany(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, list)
}
