package structure

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultTable(t *testing.T) {
	tbl := Default()

	want := map[Type]int{
		SteelFrame:                   60,
		SteelReinforcedConcrete:      60,
		SteelFrameReinforcedConcrete: 60,
		ReinforcedConcrete:           60,
		PrecastConcrete:              60,
		ReinforcedBrick:              52,
	}
	if len(tbl.Defs()) != len(want) {
		t.Fatalf("default table has %d rows, want %d", len(tbl.Defs()), len(want))
	}
	for key, limit := range want {
		got, err := tbl.LifeLimit(key)
		if err != nil {
			t.Errorf("LifeLimit(%s): %v", key, err)
			continue
		}
		if got != limit {
			t.Errorf("LifeLimit(%s) = %d, want %d", key, got, limit)
		}
	}
}

func TestDefaultTableIsShared(t *testing.T) {
	if Default() != Default() {
		t.Error("Default should return the same table on every call")
	}
}

func TestLookupUnknown(t *testing.T) {
	_, err := Default().Lookup("timber")
	if err == nil {
		t.Fatal("expected error for unknown key")
	}
	if !errors.Is(err, ErrUnknownType) {
		t.Errorf("error %v should wrap ErrUnknownType", err)
	}
	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("error %T should be *ConfigurationError", err)
	}
	if cfgErr.Key != "timber" {
		t.Errorf("Key = %q, want %q", cfgErr.Key, "timber")
	}
}

func TestLookupMissing(t *testing.T) {
	_, err := Default().Lookup("")
	if !errors.Is(err, ErrUnknownType) {
		t.Errorf("empty key error = %v, want ErrUnknownType", err)
	}
}

func TestNewRejectsNonPositiveLimit(t *testing.T) {
	_, err := New([]Def{{Key: "tent", LifeLimitYears: 0}})
	if !errors.Is(err, ErrInvalidTable) {
		t.Errorf("zero limit error = %v, want ErrInvalidTable", err)
	}
	_, err = New([]Def{{Key: "tent", LifeLimitYears: -5}})
	if !errors.Is(err, ErrInvalidTable) {
		t.Errorf("negative limit error = %v, want ErrInvalidTable", err)
	}
}

func TestNewRejectsDuplicateAndEmpty(t *testing.T) {
	_, err := New([]Def{
		{Key: "rc", LifeLimitYears: 60},
		{Key: "rc", LifeLimitYears: 50},
	})
	if !errors.Is(err, ErrInvalidTable) {
		t.Errorf("duplicate error = %v, want ErrInvalidTable", err)
	}

	_, err = New([]Def{{LifeLimitYears: 60}})
	if !errors.Is(err, ErrInvalidTable) {
		t.Errorf("empty key error = %v, want ErrInvalidTable", err)
	}

	_, err = New(nil)
	if !errors.Is(err, ErrInvalidTable) {
		t.Errorf("empty table error = %v, want ErrInvalidTable", err)
	}
}

func TestNewDefaultsDisplayName(t *testing.T) {
	tbl, err := New([]Def{{Key: "log-cabin", LifeLimitYears: 25}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	d, _ := tbl.Lookup("log-cabin")
	if d.DisplayName != "log-cabin" {
		t.Errorf("DisplayName = %q, want key as fallback", d.DisplayName)
	}
}

func TestDefsIsACopy(t *testing.T) {
	tbl := Default()
	defs := tbl.Defs()
	defs[0].LifeLimitYears = 1

	limit, _ := tbl.LifeLimit(defs[0].Key)
	if limit == 1 {
		t.Error("mutating Defs() result must not change the table")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "structures.yaml")
	data := []byte(`structures:
  - key: wood
    display_name: Wood
    life_limit_years: 30
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	tbl, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	limit, err := tbl.LifeLimit("wood")
	if err != nil || limit != 30 {
		t.Errorf("LifeLimit(wood) = %d, %v; want 30, nil", limit, err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/structures.yaml")
	if err == nil {
		t.Error("expected error for missing file")
	}
}

func TestParseBadYAML(t *testing.T) {
	_, err := Parse([]byte("structures: [unterminated"))
	if err == nil {
		t.Error("expected YAML parse error")
	}
}

func TestKeysAreCaseInsensitive(t *testing.T) {
	tbl, err := New([]Def{{Key: " Timber ", LifeLimitYears: 30}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := tbl.Lookup("TIMBER"); err != nil {
		t.Errorf("Lookup(TIMBER): %v", err)
	}
	if tbl.Defs()[0].Key != "timber" {
		t.Errorf("stored key = %q, want %q", tbl.Defs()[0].Key, "timber")
	}
}
