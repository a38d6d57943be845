package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/on-the-ground/pure_ive_go/pure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	out := &bytes.Buffer{}
	cmd.SetIn(strings.NewReader(input))
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

const users = `
- {id: u3, name: Charlie, team: b}
- {id: u1, name: Alice, team: a}
- {id: u2, name: Bob, team: b}
`

func TestDecodeDocument_KeepsMappingOrder(t *testing.T) {
	doc, err := decodeDocument([]byte("z: 1\na: two\nm: [1, 2]\n"))
	require.NoError(t, err)
	rec, ok := doc.(*pure.Record[any])
	require.True(t, ok)
	assert.Equal(t, []string{"z", "a", "m"}, rec.Keys())

	m, _ := rec.Get("m")
	assert.Equal(t, []any{1, 2}, m)

	_, err = decodeDocument(nil)
	assert.ErrorIs(t, err, ErrEmptyDocument)
}

func TestKeyByCommand(t *testing.T) {
	out, err := run(t, users, "keyby", "id")
	require.NoError(t, err)
	assert.Equal(t, `u1:
  id: u1
  name: Alice
  team: a
u2:
  id: u2
  name: Bob
  team: b
u3:
  id: u3
  name: Charlie
  team: b
`, out)
}

func TestKeyByCommand_NonStringKey(t *testing.T) {
	_, err := run(t, "- {n: 1}\n", "keyby", "n")
	assert.ErrorIs(t, err, pure.ErrNonStringKey)

	_, err = run(t, "a: 1\n", "keyby", "n")
	assert.ErrorIs(t, err, ErrNotSequence)
}

func TestSortByCommand(t *testing.T) {
	out, err := run(t, users, "sortby", "team", "name")
	require.NoError(t, err)
	assert.Equal(t, `- id: u1
  name: Alice
  team: a
- id: u2
  name: Bob
  team: b
- id: u3
  name: Charlie
  team: b
`, out)
}

func TestOmitCommand(t *testing.T) {
	out, err := run(t, "b: 2\na: 1\nc: 3\n", "omit", "a", "missing")
	require.NoError(t, err)
	assert.Equal(t, "b: 2\nc: 3\n", out)

	out, err = run(t, users, "omit", "name", "team")
	require.NoError(t, err)
	assert.Equal(t, "- id: u3\n- id: u1\n- id: u2\n", out)
}

func TestValuesCommand(t *testing.T) {
	out, err := run(t, "y: 2\nx: 1\n", "values")
	require.NoError(t, err)
	assert.Equal(t, "- 2\n- 1\n", out)

	out, err = run(t, "null\n", "values")
	require.NoError(t, err)
	assert.Equal(t, "[]\n", out)
}

func TestMapValuesCommand_JSON(t *testing.T) {
	out, err := run(t, `{"alice": {"age": 25}, "bob": {"age": 30}}`, "--json", "mapvalues", "age")
	require.NoError(t, err)
	assert.JSONEq(t, `{"alice": 25, "bob": 30}`, out)
}

func TestDebounceCommand_CoalescesBurst(t *testing.T) {
	out, err := run(t, "a\nab\nabc\n", "debounce", "--delay", "1h")
	require.NoError(t, err)
	assert.Equal(t, "abc\t(coalesced 3)\n", out)
}
