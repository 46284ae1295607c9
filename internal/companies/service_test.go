package companies

import (
	"context"
	"testing"

	"github.com/angelmondragon/lojavirtual-backend/internal/testdb"
	pkgerrors "github.com/angelmondragon/lojavirtual-backend/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) (Service, *gorm.DB) {
	t.Helper()
	conn := testdb.Open(t)
	svc, err := NewService(NewRepository(conn))
	require.NoError(t, err)
	return svc, conn
}

func strPtr(v string) *string { return &v }

func requireCode(t *testing.T, err error, code pkgerrors.Code, msg string) {
	t.Helper()
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed, "expected typed error, got %v", err)
	assert.Equal(t, code, typed.Code())
	assert.Equal(t, msg, typed.Message())
}

func TestNewServiceRequiresRepository(t *testing.T) {
	_, err := NewService(nil)
	require.Error(t, err)
}

func TestService_CRUD(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	created, err := svc.Create(ctx, CompanyInput{Name: "Zeta Ltda", CNPJ: "11", Email: "zeta@example.com", Phone: strPtr("1199")})
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	assert.Equal(t, "1199", *created.Phone)
	assert.Nil(t, created.Logo)

	_, err = svc.Create(ctx, CompanyInput{Name: "Alfa SA", CNPJ: "22", Email: "alfa@example.com"})
	require.NoError(t, err)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Alfa SA", list[0].Name)
	assert.Equal(t, "Zeta Ltda", list[1].Name)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.CNPJ, got.CNPJ)

	updated, err := svc.Update(ctx, created.ID, CompanyInput{Name: "Zeta Comércio", CNPJ: "11", Email: "zeta@example.com", Logo: strPtr("logo.png")})
	require.NoError(t, err)
	assert.Equal(t, "Zeta Comércio", updated.Name)
	assert.Nil(t, updated.Phone)
	assert.Equal(t, "logo.png", *updated.Logo)

	require.NoError(t, svc.Delete(ctx, created.ID))

	_, err = svc.Get(ctx, created.ID)
	requireCode(t, err, pkgerrors.CodeNotFound, MsgNotFound)
}

func TestService_ListEmpty(t *testing.T) {
	svc, _ := newTestService(t)

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestService_Validation(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.Create(ctx, CompanyInput{Name: "Sem CNPJ", Email: "x@example.com"})
	requireCode(t, err, pkgerrors.CodeValidation, MsgRequiredFields)

	_, err = svc.Update(ctx, 1, CompanyInput{Name: " ", CNPJ: "1", Email: "x@example.com"})
	requireCode(t, err, pkgerrors.CodeValidation, MsgRequiredFields)
}

func TestService_Conflicts(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	first, err := svc.Create(ctx, CompanyInput{Name: "A", CNPJ: "11", Email: "a@example.com"})
	require.NoError(t, err)
	second, err := svc.Create(ctx, CompanyInput{Name: "B", CNPJ: "22", Email: "b@example.com"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, CompanyInput{Name: "C", CNPJ: "11", Email: "c@example.com"})
	requireCode(t, err, pkgerrors.CodeConflict, MsgDuplicateOnCreate)
	assert.NotEmpty(t, pkgerrors.As(err).Details())

	_, err = svc.Update(ctx, second.ID, CompanyInput{Name: "B", CNPJ: "22", Email: "a@example.com"})
	requireCode(t, err, pkgerrors.CodeConflict, MsgDuplicateOnUpdate)

	got, err := svc.Get(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "A", got.Name)
}

func TestService_MissingIDs(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.Get(ctx, 999)
	requireCode(t, err, pkgerrors.CodeNotFound, MsgNotFound)

	_, err = svc.Update(ctx, 999, CompanyInput{Name: "A", CNPJ: "1", Email: "a@example.com"})
	requireCode(t, err, pkgerrors.CodeNotFound, MsgNotFoundForUpdate)

	err = svc.Delete(ctx, 999)
	requireCode(t, err, pkgerrors.CodeNotFound, MsgNotFoundForDelete)
}

func TestService_DeleteRestrictedByProducts(t *testing.T) {
	ctx := context.Background()
	svc, conn := newTestService(t)

	company, err := svc.Create(ctx, CompanyInput{Name: "A", CNPJ: "1", Email: "a@example.com"})
	require.NoError(t, err)
	require.NoError(t, conn.Exec(`INSERT INTO produtos (nome, preco, quantidade_estoque, id_empresa) VALUES ('Café', 10.5, 3, ?)`, company.ID).Error)

	err = svc.Delete(ctx, company.ID)
	requireCode(t, err, pkgerrors.CodeConflict, MsgHasDependents)

	_, err = svc.Get(ctx, company.ID)
	require.NoError(t, err)
}
