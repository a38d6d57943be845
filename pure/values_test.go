package pure_test

import (
	"testing"

	"github.com/on-the-ground/pure_ive_go/pure"
	"github.com/stretchr/testify/assert"
)

func TestValues_NilSafe(t *testing.T) {
	assert.Equal(t, []int{}, pure.Values[int](nil))
	assert.Equal(t, []int{}, pure.ValuesOf[string, int](nil))
}

func TestValues_RecordOrder(t *testing.T) {
	r := pure.NewRecord[user]()
	r.Set("user1", user{Name: "Alice", Age: 25})
	r.Set("user2", user{Name: "Bob", Age: 30})

	assert.Equal(t, []user{
		{Name: "Alice", Age: 25},
		{Name: "Bob", Age: 30},
	}, pure.Values(r))
}

func TestValuesOf_SortedKeys(t *testing.T) {
	got := pure.ValuesOf(map[string]int{"y": 2, "x": 1})
	assert.Len(t, got, 2)
	assert.Equal(t, []int{1, 2}, got)

	assert.Equal(t, []string{"one", "two", "ten"}, pure.ValuesOf(map[int]string{10: "ten", 2: "two", 1: "one"}))
}
