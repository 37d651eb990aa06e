package entities

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecord_Accessors(t *testing.T) {
	birth := time.Date(2021, time.March, 14, 0, 0, 0, 0, time.UTC)
	r := NewRecord("Stuart", birth, CategoryVeryRare, "images/stuart.png")

	assert.Equal(t, "Stuart", r.Name())
	assert.True(t, birth.Equal(r.BirthDate()))
	assert.Equal(t, CategoryVeryRare, r.Category())
	assert.Equal(t, ImageRef("images/stuart.png"), r.Image())
}

func TestNewRecord_NoValidation(t *testing.T) {
	r := NewRecord("", time.Time{}, Category{}, "")

	assert.Empty(t, r.Name())
	assert.True(t, r.Category().IsZero())
	assert.Zero(t, r.Category().FeeCents(), "zero category must not carry a fee")
}

func TestRecord_JSON(t *testing.T) {
	birth := time.Date(2019, time.November, 2, 0, 0, 0, 0, time.UTC)
	r := NewRecord("Biscuit", birth, CategoryUncommon, "biscuit.jpg")

	data, err := json.Marshal(r)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Biscuit","birth_date":"2019-11-02","category":"uncommon","image":"biscuit.jpg"}`, string(data))

	var decoded Record
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, r, decoded)
}

func TestRecord_UnmarshalJSON_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "bad date", input: `{"name":"A","birth_date":"02/11/2019","category":"rare"}`},
		{name: "unknown category", input: `{"name":"A","birth_date":"2019-11-02","category":"epic"}`},
		{name: "not an object", input: `[]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r Record
			assert.Error(t, json.Unmarshal([]byte(tt.input), &r))
		})
	}
}

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "stuart", NormalizeName("  Stuart "))
	assert.Equal(t, "", NormalizeName("   "))
}
