package migrate_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func readMigration(t *testing.T, suffix string) string {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join("migrations", "*_"+suffix+".sql"))
	if err != nil {
		t.Fatalf("glob migrations: %v", err)
	}
	if len(matches) == 0 {
		t.Fatalf("no %s migration file found", suffix)
	}
	data, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatalf("read migration file: %v", err)
	}
	return string(data)
}

func TestMigrationsContainConstraints(t *testing.T) {
	cases := map[string][]string{
		"create_usuarios_table": {
			"CREATE TABLE IF NOT EXISTS usuarios",
			"CONSTRAINT usuarios_email_key UNIQUE (email)",
			"tipo_usuario TEXT NOT NULL DEFAULT 'cliente'",
			"DROP TABLE IF EXISTS usuarios",
		},
		"create_empresas_table": {
			"CONSTRAINT empresas_cnpj_key UNIQUE (cnpj)",
			"CONSTRAINT empresas_email_key UNIQUE (email)",
			"DROP TABLE IF EXISTS empresas",
		},
		"create_categorias_table": {
			"CONSTRAINT categorias_nome_key UNIQUE (nome)",
		},
		"create_produtos_table": {
			"preco NUMERIC(12,2) NOT NULL",
			"CHECK (preco >= 0)",
			"CHECK (quantidade_estoque >= 0)",
			"REFERENCES categorias(id) ON DELETE SET NULL",
			"REFERENCES empresas(id) ON DELETE RESTRICT",
		},
		"create_enderecos_table": {
			"atualizado_em TIMESTAMPTZ",
			"REFERENCES empresas(id) ON DELETE RESTRICT",
		},
		"create_carrinhos_tables": {
			"CREATE UNIQUE INDEX IF NOT EXISTS carrinhos_um_ativo_por_usuario ON carrinhos (id_usuario) WHERE finalizado = FALSE",
			"CHECK (quantidade > 0)",
			"UNIQUE (id_carrinho, id_produto)",
			"REFERENCES carrinhos(id) ON DELETE CASCADE",
			"DROP TABLE IF EXISTS carrinho_itens",
		},
	}

	for suffix, checks := range cases {
		content := readMigration(t, suffix)
		for _, sub := range checks {
			if !strings.Contains(content, sub) {
				t.Errorf("%s: missing expected statement %q", suffix, sub)
			}
		}
	}
}

func TestSQLiteSchemaCoversEveryTable(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("sqlite", "schema.sql"))
	if err != nil {
		t.Fatalf("read sqlite schema: %v", err)
	}
	content := string(data)
	for _, table := range []string{"usuarios", "empresas", "categorias", "produtos", "enderecos", "carrinhos", "carrinho_itens"} {
		if !strings.Contains(content, "CREATE TABLE IF NOT EXISTS "+table+" (") {
			t.Errorf("sqlite schema missing table %s", table)
		}
	}
	if !strings.Contains(content, "carrinhos_um_ativo_por_usuario") {
		t.Error("sqlite schema missing active cart index")
	}
}
