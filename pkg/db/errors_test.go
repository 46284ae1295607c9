package db

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

func TestIsUniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "empresas_cnpj_key", Detail: "Key (cnpj)=(1) already exists."}

	cases := []struct {
		name       string
		err        error
		constraint string
		want       bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "pgx any constraint", err: fmt.Errorf("insert: %w", pgErr), want: true},
		{name: "pgx matching constraint", err: pgErr, constraint: "empresas_cnpj_key", want: true},
		{name: "pgx other constraint", err: pgErr, constraint: "empresas_email_key", want: false},
		{name: "pq", err: &pq.Error{Code: "23505"}, want: true},
		{name: "pgx foreign key", err: &pgconn.PgError{Code: "23503"}, want: false},
		{name: "sqlite", err: errors.New("UNIQUE constraint failed: categorias.nome"), want: true},
		{name: "plain text", err: errors.New(`duplicate key value violates unique constraint "x_key"`), constraint: "x_key", want: true},
		{name: "unrelated", err: errors.New("connection refused"), want: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsUniqueViolation(tc.err, tc.constraint); got != tc.want {
				t.Fatalf("IsUniqueViolation(%v, %q) = %v, want %v", tc.err, tc.constraint, got, tc.want)
			}
		})
	}
}

func TestIsForeignKeyViolation(t *testing.T) {
	if !IsForeignKeyViolation(&pgconn.PgError{Code: "23503"}, "") {
		t.Fatal("expected pgx 23503 to be a foreign key violation")
	}
	if !IsForeignKeyViolation(errors.New("FOREIGN KEY constraint failed"), "") {
		t.Fatal("expected sqlite message to be a foreign key violation")
	}
	if IsForeignKeyViolation(&pgconn.PgError{Code: "23505"}, "") {
		t.Fatal("unique violation is not a foreign key violation")
	}
}

func TestViolationDetail(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", Detail: "Key (nome)=(Bebidas) already exists."}
	if got := ViolationDetail(fmt.Errorf("wrap: %w", pgErr)); got != pgErr.Detail {
		t.Fatalf("unexpected detail %q", got)
	}
	plain := errors.New("UNIQUE constraint failed: categorias.nome")
	if got := ViolationDetail(plain); got != plain.Error() {
		t.Fatalf("expected fallback to message, got %q", got)
	}
	if ViolationDetail(nil) != "" {
		t.Fatal("nil error has no detail")
	}
}
