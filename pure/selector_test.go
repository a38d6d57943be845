package pure_test

import (
	"testing"

	"github.com/on-the-ground/pure_ive_go/pure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type user struct {
	ID    string `json:"id"`
	Name  string `yaml:"display_name"`
	Age   int
	Admin bool
	Team  *team
	age   int
}

type team struct {
	Name string
}

type labelled struct {
	labels map[string]string
}

func (l labelled) Field(name string) (any, bool) {
	v, ok := l.labels[name]
	return v, ok
}

func TestField_StructByGoNameAndTag(t *testing.T) {
	users := []user{{ID: "u1", Name: "Alice", Age: 30}}

	byGo, err := pure.KeyBy(users, pure.Field[user]("ID"))
	require.NoError(t, err)
	assert.Contains(t, byGo, "u1")

	byJSONTag, err := pure.KeyBy(users, pure.Field[user]("id"))
	require.NoError(t, err)
	assert.Contains(t, byJSONTag, "u1")

	byYAMLTag, err := pure.KeyBy(users, pure.Field[user]("display_name"))
	require.NoError(t, err)
	assert.Contains(t, byYAMLTag, "Alice")
}

func TestField_PointersAndMissingFields(t *testing.T) {
	users := []*user{
		{ID: "b", Age: 2},
		nil,
		{ID: "a", Age: 1},
	}

	sorted := pure.SortBy(users, pure.Field[*user]("Age"))
	require.Len(t, sorted, 3)
	// nil compares equal to everything, so it stays wherever stability keeps it
	assert.Contains(t, sorted, (*user)(nil))

	// unexported and unknown fields read as nil, which KeyBy rejects
	_, err := pure.KeyBy([]user{{}}, pure.Field[user]("age"))
	assert.ErrorIs(t, err, pure.ErrNonStringKey)
	_, err = pure.KeyBy([]user{{}}, pure.Field[user]("nope"))
	assert.ErrorIs(t, err, pure.ErrNonStringKey)
}

func TestField_MapsAndInterfaces(t *testing.T) {
	docs := []any{
		map[string]any{"id": "x", "n": 2},
		map[string]any{"id": "y", "n": 1},
		user{ID: "z", Age: 0},
	}

	keyed, err := pure.KeyBy(docs, pure.Field[any]("id"))
	require.NoError(t, err)
	assert.Len(t, keyed, 3)

	sorted := pure.SortBy(docs[:2], pure.Field[any]("n"))
	assert.Equal(t, "y", sorted[0].(map[string]any)["id"])
}

func TestField_Fielder(t *testing.T) {
	items := []labelled{
		{labels: map[string]string{"env": "prod"}},
		{labels: map[string]string{"env": "dev"}},
	}
	sorted := pure.SortBy(items, pure.Field[labelled]("env"))
	v, _ := sorted[0].Field("env")
	assert.Equal(t, "dev", v)
}

func TestBy_NilFunctionSelectsNil(t *testing.T) {
	_, err := pure.KeyBy([]int{1}, pure.By[int, string](nil))
	assert.ErrorIs(t, err, pure.ErrNonStringKey)
}
