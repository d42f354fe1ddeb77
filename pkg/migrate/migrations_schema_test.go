package migrate_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/RitikRK96/esnan-digital/pkg/migrate"
)

func TestMigrationsDirIsValid(t *testing.T) {
	if err := migrate.ValidateDir("migrations"); err != nil {
		t.Fatalf("validate migrations dir: %v", err)
	}
}

func TestInitSchemaContainsCoreTables(t *testing.T) {
	matches, err := filepath.Glob(filepath.Join("migrations", "*_init_schema.sql"))
	if err != nil {
		t.Fatalf("glob migrations: %v", err)
	}
	if len(matches) == 0 {
		t.Fatalf("no init schema migration file found")
	}

	data, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatalf("read migration file: %v", err)
	}
	content := string(data)

	checks := []string{
		"CREATE TABLE users",
		"CREATE TABLE products",
		"CREATE TABLE cart_items",
		"CREATE UNIQUE INDEX idx_cart_user_product ON cart_items (user_id, product_id)",
		"CREATE TABLE orders",
		"CREATE TABLE order_items",
		"CREATE TABLE bookings",
		"CREATE TABLE contact_messages",
		"CHECK (quantity > 0)",
		"DROP TABLE IF EXISTS users",
	}

	for _, sub := range checks {
		if !strings.Contains(content, sub) {
			t.Errorf("missing expected statement %q", sub)
		}
	}
}

func TestProductSeedCoversEveryCategory(t *testing.T) {
	matches, err := filepath.Glob(filepath.Join("migrations", "*_seed_products.sql"))
	if err != nil {
		t.Fatalf("glob migrations: %v", err)
	}
	if len(matches) == 0 {
		t.Fatalf("no product seed migration file found")
	}

	data, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatalf("read migration file: %v", err)
	}
	content := string(data)

	for _, category := range []string{"holy-water", "prasadam", "combos", "photography"} {
		if !strings.Contains(content, "'"+category+"'") {
			t.Errorf("seed missing category %q", category)
		}
	}
}
