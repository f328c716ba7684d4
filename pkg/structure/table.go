package structure

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed structures.yaml
var defaultTableYAML []byte

// Table is an immutable lookup from structure type to its definition.
// It is safe for concurrent use once built.
type Table struct {
	defs  []Def
	byKey map[Type]Def
}

var defaultTable = sync.OnceValues(func() (*Table, error) {
	return Parse(defaultTableYAML)
})

// Default returns the built-in table. It panics if the embedded table is
// malformed, which can only happen through a bad edit to structures.yaml.
func Default() *Table {
	t, err := defaultTable()
	if err != nil {
		panic(err)
	}
	return t
}

// Load reads a structure table from a YAML file.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading structure table: %w", err)
	}
	return Parse(data)
}

// Parse builds a table from YAML and checks that every key is unique and
// every life limit is positive.
func Parse(data []byte) (*Table, error) {
	var f tableFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing structure table YAML: %w", err)
	}
	return New(f.Structures)
}

// New builds a table from definitions, applying the same checks as Parse.
func New(defs []Def) (*Table, error) {
	if len(defs) == 0 {
		return nil, &ConfigurationError{Reason: "table has no structures", Err: ErrInvalidTable}
	}

	t := &Table{
		defs:  make([]Def, 0, len(defs)),
		byKey: make(map[Type]Def, len(defs)),
	}
	for i, d := range defs {
		d.Key = normalizeKey(d.Key)
		if d.Key == "" {
			return nil, &ConfigurationError{
				Reason: fmt.Sprintf("structures[%d] has an empty key", i),
				Err:    ErrInvalidTable,
			}
		}
		if _, dup := t.byKey[d.Key]; dup {
			return nil, &ConfigurationError{Key: d.Key, Reason: "duplicate key", Err: ErrInvalidTable}
		}
		if d.LifeLimitYears <= 0 {
			return nil, &ConfigurationError{
				Key:    d.Key,
				Reason: fmt.Sprintf("life_limit_years must be > 0, got %d", d.LifeLimitYears),
				Err:    ErrInvalidTable,
			}
		}
		if d.DisplayName == "" {
			d.DisplayName = string(d.Key)
		}
		t.defs = append(t.defs, d)
		t.byKey[d.Key] = d
	}
	return t, nil
}

// Lookup returns the definition for key. Keys match case-insensitively.
func (t *Table) Lookup(key Type) (Def, error) {
	d, ok := t.byKey[normalizeKey(key)]
	if !ok {
		if key == "" {
			return Def{}, &ConfigurationError{Reason: "structure type is missing", Err: ErrUnknownType}
		}
		return Def{}, &ConfigurationError{Key: key, Reason: "not in structure table", Err: ErrUnknownType}
	}
	return d, nil
}

// LifeLimit returns the useful-life limit in years for key.
func (t *Table) LifeLimit(key Type) (int, error) {
	d, err := t.Lookup(key)
	if err != nil {
		return 0, err
	}
	return d.LifeLimitYears, nil
}

// Defs returns a copy of the table rows in file order.
func (t *Table) Defs() []Def {
	out := make([]Def, len(t.defs))
	copy(out, t.defs)
	return out
}

func normalizeKey(key Type) Type {
	return Type(strings.ToLower(strings.TrimSpace(string(key))))
}
