package db

import "testing"

func TestOpenMemory(t *testing.T) {
	d, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory failed: %v", err)
	}
	defer d.Close()

	// The schema should be in place.
	var count int
	if err := d.QueryRow(`SELECT COUNT(*) FROM overrides`).Scan(&count); err != nil {
		t.Fatalf("querying overrides: %v", err)
	}
	if count != 0 {
		t.Errorf("expected empty overrides table, got %d rows", count)
	}

	if err := d.QueryRow(`SELECT COUNT(*) FROM submissions`).Scan(&count); err != nil {
		t.Fatalf("querying submissions: %v", err)
	}
}

func TestMigrateIdempotent(t *testing.T) {
	d, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory failed: %v", err)
	}
	defer d.Close()

	if err := d.migrate(); err != nil {
		t.Fatalf("second migrate failed: %v", err)
	}
}
