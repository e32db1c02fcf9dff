package codec

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/hatlonely/tempdataset/frame"
)

func TestWriteReadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "sample.json")
	df := sampleFrame()

	assert.NoError(t, WriteJSON(df, path))

	got, err := ReadJSON(path)
	assert.NoError(t, err)
	assert.Equal(t, df.Columns(), got.Columns())
	assert.Equal(t, df.Len(), got.Len())

	row, ok := got.At(0)
	assert.True(t, ok)
	assert.Equal(t, "ORD-2026-000001", row["order_id"])
	assert.Equal(t, 3, row["quantity"])
	assert.Equal(t, 19.99, row["unit_price"])
	assert.Equal(t, true, row["is_active"])
	assert.Equal(t, time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC), row["order_date"])
	assert.Equal(t, time.Date(2026, 1, 16, 13, 45, 2, 0, time.UTC), row["last_login"])
	assert.Equal(t, "01000", row["postal_code"])
}

func TestWriteJSONKeyOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.json")
	assert.NoError(t, WriteJSON(sampleFrame(), path))

	data, err := os.ReadFile(path)
	assert.NoError(t, err)
	content := string(data)
	assert.True(t, strings.HasPrefix(content, "[\n  {\n"))
	assert.True(t, strings.Index(content, `"order_id"`) < strings.Index(content, `"quantity"`))
	assert.True(t, strings.Index(content, `"quantity"`) < strings.Index(content, `"unit_price"`))
}

func TestJSONRoundTripBytes(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.json")
	second := filepath.Join(dir, "second.json")

	assert.NoError(t, WriteJSON(sampleFrame(), first))
	got, err := ReadJSON(first)
	assert.NoError(t, err)
	assert.NoError(t, WriteJSON(got, second))

	firstData, err := os.ReadFile(first)
	assert.NoError(t, err)
	secondData, err := os.ReadFile(second)
	assert.NoError(t, err)
	assert.Equal(t, string(firstData), string(secondData))
}

func TestWriteReadJSONLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.jsonl")
	df := sampleFrame()

	assert.NoError(t, WriteJSONLines(df, path))

	data, err := os.ReadFile(path)
	assert.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	assert.Equal(t, 2, len(lines))
	assert.True(t, strings.HasPrefix(lines[0], `{"order_id":"ORD-2026-000001"`))

	got, err := ReadJSON(path)
	assert.NoError(t, err)
	assert.Equal(t, df.Columns(), got.Columns())
	assert.Equal(t, df.Len(), got.Len())

	row, ok := got.At(1)
	assert.True(t, ok)
	assert.Equal(t, 1, row["quantity"])
	assert.Equal(t, 5.5, row["unit_price"])
	assert.Equal(t, false, row["is_active"])
}

func TestWriteJSONEmptyFrame(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.json")
	df := frame.New(nil, []string{"a", "b"})
	assert.NoError(t, WriteJSON(df, path))

	data, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestReadJSONFileNotFound(t *testing.T) {
	_, err := ReadJSON(filepath.Join(t.TempDir(), "missing.json"))
	assert.True(t, errors.Is(err, ErrFileNotFound))
}

func TestReadJSONParseError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	assert.NoError(t, os.WriteFile(path, []byte(`[{"a": 1}, {"a": `), 0o644))

	_, err := ReadJSON(path)
	assert.True(t, errors.Is(err, ErrParse))
}

func TestReadJSONUnrecognizedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	assert.NoError(t, os.WriteFile(path, []byte("not json at all"), 0o644))

	_, err := ReadJSON(path)
	assert.True(t, errors.Is(err, ErrParse))
}

func TestReadJSONEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.json")
	assert.NoError(t, os.WriteFile(path, []byte("  \n"), 0o644))

	_, err := ReadJSON(path)
	assert.True(t, errors.Is(err, ErrParse))
}

func TestReadJSONNestedValue(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested.json")
	assert.NoError(t, os.WriteFile(path, []byte(`[{"a": {"b": 1}}]`), 0o644))

	_, err := ReadJSON(path)
	assert.True(t, errors.Is(err, ErrParse))
}

func TestReadJSONNullValue(t *testing.T) {
	path := filepath.Join(t.TempDir(), "null.json")
	assert.NoError(t, os.WriteFile(path, []byte(`[{"a": null, "b": 2}]`), 0o644))

	got, err := ReadJSON(path)
	assert.NoError(t, err)
	row, ok := got.At(0)
	assert.True(t, ok)
	assert.Nil(t, row["a"])
	assert.Equal(t, 2, row["b"])
}
