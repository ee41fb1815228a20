package strings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitList(t *testing.T) {
	cases := map[string]struct {
		raw  string
		want []string
	}{
		"empty":                {raw: "", want: nil},
		"blank":                {raw: "  ", want: nil},
		"single":               {raw: "k1:9092", want: []string{"k1:9092"}},
		"trims and drops gaps": {raw: " k1:9092, ,k2:9092,", want: []string{"k1:9092", "k2:9092"}},
		"first occurrence":     {raw: "b,a,b,c,a", want: []string{"b", "a", "c"}},
		"case kept":            {raw: "Pending,pending", want: []string{"Pending", "pending"}},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, SplitList(tc.raw, ","))
		})
	}
}

func TestSplitListLower(t *testing.T) {
	assert.Equal(t, []string{"pending", "approved"}, SplitListLower(" Pending,APPROVED,pending ", ","))
	assert.Nil(t, SplitListLower("", ","))
}
