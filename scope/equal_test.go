package scope

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type point struct {
	X, Y int
}

type reading struct {
	Value float64
	Unit  string
}

type holder struct {
	P *point
}

type tagged struct {
	Name string
	Tags []string
}

func TestSameValue(t *testing.T) {
	s := []int{1, 2, 3}
	m := map[string]int{"a": 1}
	p := &point{1, 2}
	f := func() {}

	cases := []struct {
		name  string
		a, b  any
		equal bool
	}{
		{"nil", nil, nil, true},
		{"nil and value", nil, 0, false},
		{"ints", 1, 1, true},
		{"different types", int32(1), int64(1), false},
		{"strings", "a", "b", false},
		{"nan", math.NaN(), math.NaN(), true},
		{"nan32", float32(math.NaN()), float32(math.NaN()), true},
		{"nan and number", math.NaN(), 1.0, false},
		{"same slice", s, s, true},
		{"resliced", s, s[:2], false},
		{"equal slices", s, []int{1, 2, 3}, false},
		{"same map", m, m, true},
		{"equal maps", m, map[string]int{"a": 1}, false},
		{"same pointer", p, p, true},
		{"equal pointers", p, &point{1, 2}, false},
		{"struct values", point{1, 2}, point{1, 2}, true},
		{"same func", f, f, true},
		{"struct holding nan", reading{math.NaN(), "c"}, reading{math.NaN(), "c"}, true},
		{"struct holding nan differs", reading{math.NaN(), "c"}, reading{math.NaN(), "f"}, false},
		{"array holding nan", [2]float64{math.NaN(), 1}, [2]float64{math.NaN(), 1}, true},
		{"complex nan", complex(math.NaN(), 0), complex(math.NaN(), 0), true},
		{"interface field holding nan", [1]any{math.NaN()}, [1]any{math.NaN()}, true},
		{"pointer fields keep identity", holder{p}, holder{&point{1, 2}}, false},
		{"same pointer field", holder{p}, holder{p}, true},
		{"uncomparable structs", tagged{"a", []string{"x"}}, tagged{"a", []string{"x"}}, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.equal, sameValue(c.a, c.b))
		})
	}
}

func TestDeepEqual(t *testing.T) {
	assert.True(t, deepEqual([]int{1, 2, 3}, []int{1, 2, 3}))
	assert.False(t, deepEqual([]int{1, 2, 3}, []int{1, 2, 3, 4}))
	assert.True(t, deepEqual(map[string]any{"a": []float64{math.NaN()}}, map[string]any{"a": []float64{math.NaN()}}))
	assert.True(t, deepEqual(&point{1, 2}, &point{1, 2}))
	assert.False(t, deepEqual(1, "1"))
}

func TestDeepCopy(t *testing.T) {
	src := map[string][]int{"a": {1, 2}}
	c, err := deepCopy(src)
	require.NoError(t, err)
	assert.Equal(t, src, c)

	src["a"][0] = 9
	assert.Equal(t, map[string][]int{"a": {1, 2}}, c)

	c, err = deepCopy(nil)
	require.NoError(t, err)
	assert.Nil(t, c)
}
