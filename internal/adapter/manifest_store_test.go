package adapter

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/dataobj/internal/model"
)

const sampleManifest = `objects:
  - kind: string
    text: Hello
    encoding: utf-8
  - kind: integer
    value: 16
    width: 32
  - kind: float
    value: 3.14
    representation: ieee-754
`

func sampleRecords() []m.Record {
	return []m.Record{
		{Kind: m.KindString, Text: "Hello", Encoding: "utf-8"},
		{Kind: m.KindInteger, Int: 16, WidthBits: 32},
		{Kind: m.KindFloat, Float: 3.14, Representation: "ieee-754"},
	}
}

func writeManifest(t *testing.T, content string) m.Path {
	t.Helper()

	path := filepath.Join(t.TempDir(), "objects.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return m.Path(path)
}

func TestLocalManifestStore_LoadRecords(t *testing.T) {
	t.Parallel()

	store := NewLocalManifestStore()

	records, err := store.LoadRecords(writeManifest(t, sampleManifest))
	require.NoError(t, err)
	assert.Equal(t, sampleRecords(), records)
}

func TestLocalManifestStore_LoadRecords_EmptyText(t *testing.T) {
	t.Parallel()

	store := NewLocalManifestStore()

	records, err := store.LoadRecords(writeManifest(t, "objects:\n  - kind: string\n    encoding: ascii\n"))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "", records[0].Text)
	assert.Equal(t, "ascii", records[0].Encoding)
}

func TestLocalManifestStore_LoadRecords_IntegerValueForFloat(t *testing.T) {
	t.Parallel()

	store := NewLocalManifestStore()

	records, err := store.LoadRecords(writeManifest(t, "objects:\n  - kind: float\n    value: 3\n    representation: decimal\n"))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.InDelta(t, 3.0, records[0].Float, 1e-12)
}

func TestLocalManifestStore_LoadRecords_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{name: "malformed yaml", content: "objects: [", want: "failed to decode manifest"},
		{name: "unknown kind", content: "objects:\n  - kind: complex\n", want: `"complex"`},
		{name: "missing value", content: "objects:\n  - kind: integer\n    width: 8\n", want: "missing value"},
		{name: "bad integer", content: "objects:\n  - kind: integer\n    value: twelve\n", want: `invalid value "twelve"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewLocalManifestStore().LoadRecords(writeManifest(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLocalManifestStore_LoadRecords_UnknownKindIsSentinel(t *testing.T) {
	t.Parallel()

	_, err := NewLocalManifestStore().LoadRecords(writeManifest(t, "objects:\n  - kind: complex\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, m.ErrUnknownKind)
	assert.Contains(t, err.Error(), "object 0")
}

func TestLocalManifestStore_LoadRecords_MissingFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "missing.yaml")

	_, err := NewLocalManifestStore().LoadRecords(m.Path(path))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "failed to read manifest")
}

func TestLocalManifestStore_SaveRecords_RoundTrip(t *testing.T) {
	t.Parallel()

	store := NewLocalManifestStore()
	path := m.Path(filepath.Join(t.TempDir(), "out.yaml"))

	require.NoError(t, store.SaveRecords(path, sampleRecords()))

	loaded, err := store.LoadRecords(path)
	require.NoError(t, err)
	assert.Equal(t, sampleRecords(), loaded)
}

func TestLocalManifestStore_SaveRecords_RoundTripNumericValues(t *testing.T) {
	t.Parallel()

	store := NewLocalManifestStore()
	path := m.Path(filepath.Join(t.TempDir(), "numbers.yaml"))

	records := []m.Record{
		{Kind: m.KindInteger, Int: 16, WidthBits: 32},
		{Kind: m.KindInteger, Int: math.MinInt64, WidthBits: 64},
		{Kind: m.KindFloat, Float: -0.5, Representation: "decimal"},
		{Kind: m.KindFloat, Float: 1e300, Representation: "ieee-754"},
	}

	require.NoError(t, store.SaveRecords(path, records))

	loaded, err := store.LoadRecords(path)
	require.NoError(t, err)
	assert.Equal(t, records, loaded)
}

func TestLocalManifestStore_LoadRecords_MissingFloatValue(t *testing.T) {
	t.Parallel()

	_, err := NewLocalManifestStore().LoadRecords(writeManifest(t, "objects:\n  - kind: float\n    representation: decimal\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing value")
	assert.Contains(t, err.Error(), "object 0")
}

func TestLocalManifestStore_WriteRecords_Shape(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, NewLocalManifestStore().WriteRecords(&buf, sampleRecords()))

	var decoded map[string][]map[string]interface{}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))

	objects := decoded["objects"]
	require.Len(t, objects, 3)
	assert.Equal(t, "string", objects[0]["kind"])
	assert.Equal(t, "Hello", objects[0]["text"])
	assert.NotContains(t, objects[0], "value")
	assert.Equal(t, 16, objects[1]["value"])
	assert.Equal(t, 32, objects[1]["width"])
	assert.Equal(t, 3.14, objects[2]["value"])
	assert.NotContains(t, objects[2], "text")
}

func TestLocalManifestStore_WriteRecords_Empty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, NewLocalManifestStore().WriteRecords(&buf, nil))
	assert.Equal(t, "objects: []", strings.TrimSpace(buf.String()))
}

func TestLocalManifestStore_WriteRecords_UnknownKind(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := NewLocalManifestStore().WriteRecords(&buf, []m.Record{{Kind: "complex"}})
	require.Error(t, err)
	assert.ErrorIs(t, err, m.ErrUnknownKind)
	assert.Contains(t, err.Error(), "record 0")
}
