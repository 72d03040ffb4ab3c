package main

import "testing"

// TestListenFlagDefault verifies the -listen flag exists and has the
// expected default value.
func TestListenFlagDefault(t *testing.T) {
	if listen == nil {
		t.Fatal("listen flag not defined")
	}
	if *listen != ":8080" {
		t.Errorf("expected listen default to be :8080, got %q", *listen)
	}
}

// TestDBFlagDefault verifies the -db flag exists and defaults to a
// local database file.
func TestDBFlagDefault(t *testing.T) {
	if dbPath == nil {
		t.Fatal("db flag not defined")
	}
	if *dbPath != "coilgen.db" {
		t.Errorf("expected db default to be coilgen.db, got %q", *dbPath)
	}
}

// TestUnitsFlagDefault verifies the -units flag defaults to millimetres.
func TestUnitsFlagDefault(t *testing.T) {
	if displayUnits == nil {
		t.Fatal("units flag not defined")
	}
	if *displayUnits != "mm" {
		t.Errorf("expected units default to be mm, got %q", *displayUnits)
	}
}
