package dialectfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oes-harmonize/internal/oes"
	"oes-harmonize/internal/registry"
)

const sample = `
version: "1"
dialects:
  - id: "2019-lq"
    description: LOC_Q spelling with all-data layout
    rename:
      LOC_Q: LOC_QUOTIENT
    identity: [AREA, AREA_TITLE]
    fill:
      NAICS: {constant: "000000"}
      PRIM_STATE: null
      PCT_RPT:
      AREA_TYPE: {computed: area_type}
`

func TestParse(t *testing.T) {
	f, err := Parse([]byte(sample))
	require.NoError(t, err)

	assert.Equal(t, "1", f.Version)
	require.Len(t, f.Dialects, 1)

	spec := f.Dialects[0]
	assert.Equal(t, "2019-lq", spec.ID)
	assert.Equal(t, map[string]string{"LOC_Q": "LOC_QUOTIENT"}, spec.Rename)
	assert.Equal(t, StringOrArray{"AREA", "AREA_TITLE"}, spec.Identity)
	require.Len(t, spec.Fill, 4)

	d, err := spec.Dialect()
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"LOC_Q":      "LOC_QUOTIENT",
		"AREA":       "AREA",
		"AREA_TITLE": "AREA_TITLE",
	}, d.Rename)
	assert.Equal(t, map[string]registry.FillPolicy{
		"NAICS":      registry.Constant("000000"),
		"PRIM_STATE": registry.Null(),
		"PCT_RPT":    registry.Null(),
		"AREA_TYPE":  registry.Computed("area_type"),
	}, d.Fill)
}

func TestParse_Defaults(t *testing.T) {
	f, err := Parse([]byte("dialects:\n  - id: x\n    identity: AREA\n"))
	require.NoError(t, err)

	assert.Equal(t, CurrentVersion, f.Version)
	assert.Equal(t, StringOrArray{"AREA"}, f.Dialects[0].Identity)

	f, err = Parse(nil)
	require.NoError(t, err)
	assert.Empty(t, f.Dialects)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "unsupported version",
			yaml:    `version: "2"`,
			wantErr: "unsupported dialect file version",
		},
		{
			name:    "unknown key",
			yaml:    "dialects:\n  - id: x\n    renames: {A: B}\n",
			wantErr: "renames",
		},
		{
			name:    "unknown fill policy",
			yaml:    "dialects:\n  - id: x\n    fill:\n      A: {default: 1}\n",
			wantErr: `unknown fill policy "default"`,
		},
		{
			name:    "two fill policies",
			yaml:    "dialects:\n  - id: x\n    fill:\n      A: {constant: 1, computed: r}\n",
			wantErr: "exactly one of constant or computed",
		},
		{
			name:    "null constant",
			yaml:    "dialects:\n  - id: x\n    fill:\n      A: {constant: null}\n",
			wantErr: "non-null scalar",
		},
		{
			name:    "scalar fill",
			yaml:    "dialects:\n  - id: x\n    fill:\n      A: fixed\n",
			wantErr: "fill policy must be null",
		},
		{
			name:    "empty rule",
			yaml:    "dialects:\n  - id: x\n    fill:\n      A: {computed: \"\"}\n",
			wantErr: "computed needs a rule name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestDialect_IdentityConflict(t *testing.T) {
	spec := DialectSpec{
		ID:       "x",
		Rename:   map[string]string{"AREA": "AREA_TITLE"},
		Identity: StringOrArray{"AREA"},
	}

	_, err := spec.Dialect()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listed under identity")
}

func TestRoundTrip_BuiltIns(t *testing.T) {
	builtins := oes.Dialects()

	data, err := Marshal(FromDialects(builtins...))
	require.NoError(t, err)

	f, err := Parse(data)
	require.NoError(t, err)
	require.Len(t, f.Dialects, len(builtins))

	for i, want := range builtins {
		got, err := f.Dialects[i].Dialect()
		require.NoError(t, err)

		assert.Equal(t, want.ID, got.ID)
		assert.Equal(t, want.Description, got.Description)
		assert.Equal(t, want.Rename, got.Rename)
		assert.Equal(t, want.Fill, got.Fill)
	}
}

func TestFromDialect_SplitsIdentity(t *testing.T) {
	spec := FromDialect(&registry.Dialect{
		ID:     "d",
		Rename: map[string]string{"B": "B", "A": "A", "GROUP": "O_GROUP"},
		Fill:   map[string]registry.FillPolicy{"X": registry.Null()},
	})

	assert.Equal(t, StringOrArray{"A", "B"}, spec.Identity)
	assert.Equal(t, map[string]string{"GROUP": "O_GROUP"}, spec.Rename)
	assert.Equal(t, FillSpec{}, spec.Fill["X"])
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()

	write := func(name, body string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}

	write("b.yml", "dialects:\n  - id: second\n")
	write("a.yaml", "dialects:\n  - id: first\n")
	write("notes.txt", "not yaml: [")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.yaml"), 0o755))

	f, err := LoadDir(dir)
	require.NoError(t, err)
	require.Len(t, f.Dialects, 2)
	assert.Equal(t, "first", f.Dialects[0].ID)
	assert.Equal(t, "second", f.Dialects[1].ID)

	write("c.yaml", "dialects: {")

	_, err = LoadDir(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "c.yaml")
}

func TestWriteFile_LoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")

	f, err := Parse([]byte(sample))
	require.NoError(t, err)
	require.NoError(t, WriteFile(f, path))

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, f, loaded)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestRegisterAll(t *testing.T) {
	reg, err := oes.NewRegistry()
	require.NoError(t, err)

	spec := FromDialect(oes.Dialects()[2])
	spec.ID = "2018-copy"

	require.NoError(t, RegisterAll(reg, &File{Version: CurrentVersion, Dialects: []DialectSpec{spec}}))
	assert.True(t, reg.Has("2018-copy"))

	err = RegisterAll(reg, &File{Dialects: []DialectSpec{{ID: "broken", Identity: StringOrArray{"AREA"}}}})
	require.ErrorIs(t, err, registry.ErrSchemaConflict)
	assert.False(t, reg.Has("broken"))

	err = RegisterAll(reg, &File{Dialects: []DialectSpec{spec}})
	require.ErrorIs(t, err, registry.ErrDuplicateDialect)
}

func TestRegisterDir(t *testing.T) {
	dir := t.TempDir()

	spec := FromDialect(oes.Dialects()[1])
	spec.ID = "2014-copy"
	require.NoError(t, WriteFile(&File{Version: CurrentVersion, Dialects: []DialectSpec{spec}}, filepath.Join(dir, "extra.yaml")))

	reg, err := oes.NewRegistry()
	require.NoError(t, err)
	require.NoError(t, RegisterDir(reg, dir))
	assert.Equal(t, []string{"2011", "2014", "2014-copy", "2018"}, reg.Dialects())

	require.Error(t, RegisterDir(reg, filepath.Join(dir, "missing")))
}
