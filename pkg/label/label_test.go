package label

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kittclouds/unitlabel/pkg/unit"
)

func TestDefault_IsValid(t *testing.T) {
	tbl := Default()
	require.NoError(t, Validate(tbl))
	assert.Len(t, tbl, 56)
	assert.ElementsMatch(t, unit.All(), tbl.Units())
}

func TestDefault_ReturnsCopy(t *testing.T) {
	a := Default()
	a[0].Label = "changed"
	b := Default()
	assert.Equal(t, "years", b[0].Label)
}

func TestDefault_MicroSignIsRawUTF8(t *testing.T) {
	for _, e := range Default() {
		if strings.HasPrefix(e.Label, "µ") {
			assert.Equal(t, byte(0xC2), e.Label[0])
			assert.Equal(t, byte(0xB5), e.Label[1])
			assert.Equal(t, unit.Microsecond, e.Unit)
		}
	}
}

func TestOrder_LengthThenBytesDescending(t *testing.T) {
	o, err := Order(Default())
	require.NoError(t, err)
	require.Equal(t, 56, o.Len())

	assert.Equal(t, 12, o.MaxLen())
	assert.Equal(t, "milliseconds", o.At(0).Label)
	assert.Equal(t, "microseconds", o.At(1).Label)
	assert.Equal(t, "d", o.At(o.Len()-1).Label)

	for i := 1; i < o.Len(); i++ {
		prev, cur := o.At(i-1), o.At(i)
		if prev.Len() == cur.Len() {
			assert.Greater(t, prev.Label, cur.Label)
		} else {
			assert.Greater(t, prev.Len(), cur.Len())
		}
	}
}

func TestOrder_PrefixesComeLast(t *testing.T) {
	o, err := Order(Default())
	require.NoError(t, err)

	for i := 0; i < o.Len(); i++ {
		for j := i + 1; j < o.Len(); j++ {
			a, b := o.At(i), o.At(j)
			if strings.HasPrefix(b.Label, a.Label) {
				t.Errorf("%q at %d is a prefix of %q at %d", a.Label, i, b.Label, j)
			}
		}
	}
}

func TestOrder_IndependentOfInputOrder(t *testing.T) {
	want, err := Order(Default())
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(7))
	for round := 0; round < 20; round++ {
		tbl := Default()
		rng.Shuffle(len(tbl), func(i, j int) { tbl[i], tbl[j] = tbl[j], tbl[i] })

		got, err := Order(tbl)
		require.NoError(t, err)
		assert.Equal(t, want.Entries(), got.Entries())
	}
}

func TestOrder_DoesNotMutateInput(t *testing.T) {
	tbl := Table{{"a", unit.Day}, {"abc", unit.Hour}, {"ab", unit.Week}}
	_, err := Order(tbl)
	require.NoError(t, err)
	assert.Equal(t, "a", tbl[0].Label)
	assert.Equal(t, "abc", tbl[1].Label)
}

func TestOrder_Empty(t *testing.T) {
	o, err := Order(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, o.Len())
	assert.Equal(t, 0, o.MaxLen())
}

func TestValidate_Duplicate(t *testing.T) {
	tbl := Table{
		{"m", unit.Minute},
		{"mo", unit.Month},
		{"m", unit.Month},
	}

	_, err := Order(tbl)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDuplicateLabel))

	var dup *DuplicateError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, "m", dup.Label)
	assert.Equal(t, unit.Minute, dup.First.Unit)
	assert.Equal(t, unit.Month, dup.Again.Unit)
	assert.Contains(t, err.Error(), `"m"`)
}

func TestValidate_DuplicateSameUnit(t *testing.T) {
	err := Validate(Table{{"ms", unit.Millisecond}, {"ms", unit.Millisecond}})
	assert.ErrorIs(t, err, ErrDuplicateLabel)
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	err := Validate(Table{
		{"", unit.Day},
		{"x", unit.Unit(99)},
		{"d", unit.Day},
		{"d", unit.Hour},
		{"h", unit.Hour},
		{"h", unit.Hour},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyLabel)
	assert.ErrorIs(t, err, ErrInvalidUnit)
	assert.ErrorIs(t, err, ErrDuplicateLabel)
	assert.Contains(t, err.Error(), `"d"`)
	assert.Contains(t, err.Error(), `"h"`)
}

func TestMustOrder_Panics(t *testing.T) {
	assert.Panics(t, func() {
		MustOrder(Table{{"d", unit.Day}, {"d", unit.Day}})
	})
	assert.NotPanics(t, func() {
		MustOrder(Default())
	})
}

func TestOverlaps_ShadowingEntriesComeFirst(t *testing.T) {
	o := MustOrder(Default())
	overlaps := Overlaps(o)
	require.NotEmpty(t, overlaps)

	for _, ov := range overlaps {
		for _, j := range ov.Shadowed.ToArray() {
			assert.Less(t, int(j), ov.Index, "%q shadowed by index %d", ov.Entry.Label, j)
		}
	}
}

func TestOverlaps_Labels(t *testing.T) {
	o := MustOrder(Table{
		{"m", unit.Minute},
		{"mo", unit.Month},
		{"month", unit.Month},
		{"months", unit.Month},
		{"x", unit.Day},
	})

	overlaps := Overlaps(o)
	byLabel := make(map[string][]string)
	for _, ov := range overlaps {
		byLabel[ov.Entry.Label] = ov.Labels(o)
	}

	assert.Equal(t, []string{"months", "month", "mo"}, byLabel["m"])
	assert.Equal(t, []string{"months", "month"}, byLabel["mo"])
	assert.Equal(t, []string{"months"}, byLabel["month"])
	assert.NotContains(t, byLabel, "months")
	assert.NotContains(t, byLabel, "x")
}
