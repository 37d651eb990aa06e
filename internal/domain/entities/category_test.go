package entities

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Category
	}{
		{name: "common", input: "common", expected: CategoryCommon},
		{name: "uncommon", input: "uncommon", expected: CategoryUncommon},
		{name: "rare", input: "rare", expected: CategoryRare},
		{name: "very-rare", input: "very-rare", expected: CategoryVeryRare},
		{name: "uppercase", input: "RARE", expected: CategoryRare},
		{name: "underscore separator", input: "very_rare", expected: CategoryVeryRare},
		{name: "space separator", input: " Very Rare ", expected: CategoryVeryRare},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCategory(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseCategory_Unknown(t *testing.T) {
	for _, input := range []string{"", "legendary", "veryrare", "rarest"} {
		_, err := ParseCategory(input)
		require.Error(t, err, "input %q", input)
		assert.ErrorIs(t, err, ErrUnknownCategory)
	}
}

func TestCategories_EveryTierHasFee(t *testing.T) {
	all := Categories()
	require.Len(t, all, 4)

	for _, c := range all {
		assert.False(t, c.IsZero())
		assert.Positive(t, c.FeeCents(), "category %s", c)
	}
	assert.Equal(t, []string{"common", "uncommon", "rare", "very-rare"}, CategoryNames())
}

func TestCategories_ReturnsCopy(t *testing.T) {
	all := Categories()
	all[0] = CategoryVeryRare

	assert.Equal(t, CategoryCommon, Categories()[0])
}

func TestCategory_ZeroValue(t *testing.T) {
	var c Category
	assert.True(t, c.IsZero())
	assert.Equal(t, "", c.String())
	assert.Zero(t, c.FeeCents())
}

func TestCategory_TextRoundTrip(t *testing.T) {
	data, err := json.Marshal(map[string]Category{"tier": CategoryVeryRare})
	require.NoError(t, err)
	assert.JSONEq(t, `{"tier":"very-rare"}`, string(data))

	var decoded map[string]Category
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, CategoryVeryRare, decoded["tier"])

	err = json.Unmarshal([]byte(`{"tier":"mythic"}`), &decoded)
	assert.ErrorIs(t, err, ErrUnknownCategory)
}
