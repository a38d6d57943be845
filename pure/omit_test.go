package pure_test

import (
	"testing"

	"github.com/on-the-ground/pure_ive_go/pure"
	"github.com/stretchr/testify/assert"
)

func TestOmitOf(t *testing.T) {
	in := map[string]int{"a": 1, "b": 2, "c": 3}
	assert.Equal(t, map[string]int{"a": 1, "c": 3}, pure.OmitOf(in, "b"))
	assert.Equal(t, map[string]int{"a": 1, "b": 2, "c": 3}, in)

	assert.Equal(t, map[string]int{"a": 1}, pure.OmitOf(map[string]int{"a": 1}, "z"))
	assert.Equal(t, map[string]int{}, pure.OmitOf(map[string]int{"a": 1}, "a", "a"))
}

func TestOmit_KeepsOrderAndIsShallow(t *testing.T) {
	shared := []int{1, 2}
	r := pure.NewRecord[[]int]()
	r.Set("keep", shared)
	r.Set("drop", nil)
	r.Set("also", []int{3})

	out := pure.Omit(r, "drop", "absent")
	assert.Equal(t, []string{"keep", "also"}, out.Keys())

	kept, _ := out.Get("keep")
	kept[0] = 100
	assert.Equal(t, 100, shared[0])

	assert.Equal(t, 3, r.Len())
}

func TestOmitFields_Struct(t *testing.T) {
	type profile struct {
		ID     string `json:"id"`
		Email  string
		Secret string `json:"-"`
		hidden int
	}
	p := profile{ID: "p1", Email: "a@b.c", Secret: "s", hidden: 1}

	out := pure.OmitFields(p, "Email")
	assert.Equal(t, []string{"id"}, out.Keys())
	v, _ := out.Get("id")
	assert.Equal(t, "p1", v)

	full := pure.OmitFields(&p)
	assert.Equal(t, []string{"id", "Email"}, full.Keys())
}

func TestOmitFields_MapAndOthers(t *testing.T) {
	out := pure.OmitFields(map[string]any{"b": 2, "a": 1, "c": 3}, "c")
	assert.Equal(t, []string{"a", "b"}, out.Keys())

	assert.Equal(t, 0, pure.OmitFields(42).Len())
	assert.Equal(t, 0, pure.OmitFields[*user](nil).Len())
}
