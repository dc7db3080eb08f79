package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartItemPatch_Apply(t *testing.T) {
	item := CartItem{
		ID: "i1", CourseID: "c1", Time: "2030-06-01T09:00:00Z", Players: 2,
		Package: Package{ID: "p1", Price: 80},
		AddOns:  []AddOn{{ID: "buggy", Price: 30, TotalPrice: 30}},
	}

	players := 4
	total := 320.0
	CartItemPatch{Players: &players, TotalPrice: &total}.Apply(&item)
	assert.Equal(t, 4, item.Players)
	assert.Equal(t, 320.0, item.TotalPrice)
	assert.Len(t, item.AddOns, 1, "nil add-ons leave the list untouched")

	CartItemPatch{AddOns: []AddOn{}}.Apply(&item)
	require.NotNil(t, item.AddOns)
	assert.Empty(t, item.AddOns)

	assert.True(t, item.SameSlot("c1", "2030-06-01T09:00:00Z"))
	assert.False(t, item.SameSlot("c2", "2030-06-01T09:00:00Z"))
}

func TestNormalizeDate(t *testing.T) {
	tests := map[string]string{
		"2030-06-01":                "2030-06-01",
		" 2030-06-01 ":              "2030-06-01",
		"2030-06-01T09:00:00Z":      "2030-06-01",
		"2030-06-01T09:00:00+02:00": "2030-06-01",
		"2030-06-01 09:00":          "2030-06-01",
		"2030-06-01Tgarbage":        "2030-06-01",
		"tomorrow":                  "tomorrow",
	}
	for in, want := range tests {
		assert.Equal(t, want, NormalizeDate(in), in)
	}
}

func TestParseTeeTime(t *testing.T) {
	for _, s := range []string{
		"2030-06-01T09:00:00Z",
		"2030-06-01T09:00:00.000+01:00",
		"2030-06-01T09:00:00",
		"2030-06-01T09:00",
		"2030-06-01 09:00:00",
		"2030-06-01 09:00",
	} {
		got, err := ParseTeeTime(s)
		require.NoError(t, err, s)
		assert.Equal(t, 9, got.Hour(), s)
	}

	_, err := ParseTeeTime("9am")
	assert.Error(t, err)
}

func TestProviderType_IsValid(t *testing.T) {
	assert.True(t, ProviderZest.IsValid())
	assert.True(t, ProviderGolfmanager.IsValid())
	assert.True(t, ProviderTeeOne.IsValid())
	assert.False(t, ProviderType("chronogolf").IsValid())
}
