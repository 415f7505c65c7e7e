package rsql

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpattn/dinaquery/internal/domain"
)

func TestPartialMatchFilterSingleField(t *testing.T) {
	build, err := PartialMatchFilter([]string{"attribute"})
	require.NoError(t, err)

	assert.Equal(t, Filter{RSQL: "attribute==*value*"}, build("value"))
}

func TestPartialMatchFilterMultipleFieldsKeepOrder(t *testing.T) {
	build, err := PartialMatchFilter([]string{"a1", "a2"})
	require.NoError(t, err)

	assert.Equal(t, Filter{RSQL: "a1==*value*,a2==*value*"}, build("value"))

	build, err = PartialMatchFilter([]string{"z", "m", "a"})
	require.NoError(t, err)
	assert.Equal(t, "z==*x*,m==*x*,a==*x*", build("x").RSQL)
}

func TestPartialMatchFilterIsIdempotent(t *testing.T) {
	build, err := PartialMatchFilter([]string{"name", "dwcCatalogNumber"})
	require.NoError(t, err)

	assert.Equal(t, build("abc"), build("abc"))
}

func TestPartialMatchFilterDoesNotShareCallerSlice(t *testing.T) {
	fields := []string{"name"}
	build, err := PartialMatchFilter(fields)
	require.NoError(t, err)

	fields[0] = "other"
	assert.Equal(t, "name==*v*", build("v").RSQL)
}

func TestPartialMatchFilterRejectsEmptyFields(t *testing.T) {
	_, err := PartialMatchFilter(nil)
	require.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = PartialMatchFilter([]string{"name", " "})
	require.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestPartialMatchFilterPassesValueThrough(t *testing.T) {
	build, err := PartialMatchFilter([]string{"name"})
	require.NoError(t, err)

	assert.Equal(t, "name==*a b*", build("a b").RSQL)
	assert.Equal(t, "name==**", build("").RSQL)
}

func TestFromCriteria(t *testing.T) {
	f, err := FromCriteria([]domain.FilterCriterion{
		{Field: "materialSampleName", Value: "ABC"},
		{Field: "dwcOtherCatalogNumbers", Value: "123"},
	})
	require.NoError(t, err)
	assert.Equal(t, "materialSampleName==*ABC*,dwcOtherCatalogNumbers==*123*", f.RSQL)

	_, err = FromCriteria(nil)
	require.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = FromCriteria([]domain.FilterCriterion{{Field: "", Value: "x"}})
	require.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestFilterQueryParams(t *testing.T) {
	params := Filter{RSQL: "name==*a*"}.QueryParams()
	assert.Equal(t, "filter%5Brsql%5D=name%3D%3D%2Aa%2A", params.Encode())

	assert.Empty(t, Filter{}.QueryParams())
}

func TestBuildComparisonsAndGroups(t *testing.T) {
	tests := []struct {
		name string
		node Node
		want string
	}{
		{"equal", Eq("group", "cnc"), "group==cnc"},
		{"quoted", Eq("name", "two words"), `name=="two words"`},
		{"escaped", Eq("name", `say "hi"`), `name=="say \"hi\""`},
		{"empty arg", Eq("name", ""), `name==""`},
		{"in", In("type", "a", "b c"), `type=in=(a,"b c")`},
		{"and of or", And(Eq("group", "cnc"), Or(Eq("a", "1"), Eq("b", "2"))), "group==cnc;(a==1,b==2)"},
		{"or of single", Or(And(Eq("a", "1"))), "a==1"},
		{"same separator", Or(Eq("a", "1"), Or(Eq("b", "2"), Eq("c", "3"))), "a==1,b==2,c==3"},
		{"comparison ops", And(
			Comparison{Selector: "n", Operator: OpGreaterOrEqual, Args: []string{"5"}},
			Comparison{Selector: "m", Operator: OpNotIn, Args: []string{"x"}},
		), "n=ge=5;m=out=(x)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Build(tt.node)
			require.NoError(t, err)
			assert.Equal(t, tt.want, f.RSQL)
		})
	}
}

func TestBuildRejectsMalformedNodes(t *testing.T) {
	bad := []Node{
		nil,
		Or(),
		Comparison{Selector: "", Operator: OpEqual, Args: []string{"x"}},
		Comparison{Selector: "a", Operator: OpEqual},
		Comparison{Selector: "a", Operator: OpEqual, Args: []string{"1", "2"}},
		Comparison{Selector: "a", Operator: "=like=", Args: []string{"1"}},
		And(Eq("a", "1"), Or()),
	}

	for _, n := range bad {
		_, err := Build(n)
		assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	}
}
