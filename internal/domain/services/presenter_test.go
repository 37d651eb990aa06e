package services

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/ersonp/adopt-card/internal/domain/entities"
	"github.com/ersonp/adopt-card/internal/domain/mocks"
	"github.com/ersonp/adopt-card/internal/infrastructure/clock"
)

var testToday = time.Date(2026, time.October, 19, 15, 30, 0, 0, time.UTC)

func newTestPresenter() *PresenterService {
	return NewPresenterService(clock.Fixed(testToday, time.UTC))
}

func TestFeeText_AllCategories(t *testing.T) {
	expected := map[entities.Category]string{
		entities.CategoryCommon:   "$50.00",
		entities.CategoryUncommon: "$75.00",
		entities.CategoryRare:     "$150.00",
		entities.CategoryVeryRare: "$500.00",
	}

	for _, c := range entities.Categories() {
		want, ok := expected[c]
		require.True(t, ok, "category %s has no expected fee", c)
		assert.Equal(t, want, FeeText(c), "category %s", c)
	}
	assert.Len(t, expected, len(entities.Categories()))
}

func TestFeeText_ZeroCategoryPanics(t *testing.T) {
	assert.PanicsWithValue(t, `services: category "" has no fee`, func() {
		FeeText(entities.Category{})
	})
}

func TestPresenterService_Present_ZeroCategoryPanics(t *testing.T) {
	presenter := newTestPresenter()
	record := entities.NewRecord("Ghost", time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC), entities.Category{}, "")

	assert.Panics(t, func() {
		presenter.Present(record)
	})
}

func TestAgeText(t *testing.T) {
	assert.Equal(t, "0 years old", AgeText(0))
	assert.Equal(t, "1 years old", AgeText(1))
	assert.Equal(t, "12 years old", AgeText(12))
}

func TestPresenterService_Present_Stuart(t *testing.T) {
	presenter := newTestPresenter()
	record := entities.NewRecord("Stuart", testToday.AddDate(0, 0, -2*366), entities.CategoryVeryRare, "stuart.png")

	got := presenter.Present(record)

	assert.Equal(t, entities.Presentation{
		DisplayName:  "Stuart",
		DisplayImage: "stuart.png",
		AgeText:      "2 years old",
		FeeText:      "$500.00",
	}, got)
}

func TestPresenterService_Present_Age(t *testing.T) {
	tests := []struct {
		name      string
		birthDate time.Time
		expected  string
	}{
		{
			name:      "born today",
			birthDate: time.Date(2026, time.October, 19, 0, 0, 0, 0, time.UTC),
			expected:  "0 years old",
		},
		{
			name:      "born later today",
			birthDate: time.Date(2026, time.October, 19, 23, 0, 0, 0, time.UTC),
			expected:  "0 years old",
		},
		{
			name:      "exactly three years",
			birthDate: time.Date(2023, time.October, 19, 0, 0, 0, 0, time.UTC),
			expected:  "3 years old",
		},
		{
			name:      "birthday tomorrow",
			birthDate: time.Date(2023, time.October, 20, 0, 0, 0, 0, time.UTC),
			expected:  "2 years old",
		},
		{
			name:      "birthday yesterday",
			birthDate: time.Date(2023, time.October, 18, 0, 0, 0, 0, time.UTC),
			expected:  "3 years old",
		},
		{
			name:      "birthday tomorrow one year ago",
			birthDate: time.Date(2025, time.October, 20, 0, 0, 0, 0, time.UTC),
			expected:  "0 years old",
		},
		{
			name:      "future birth date clamps to zero",
			birthDate: time.Date(2030, time.January, 1, 0, 0, 0, 0, time.UTC),
			expected:  "0 years old",
		},
	}

	presenter := newTestPresenter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := entities.NewRecord("Pip", tt.birthDate, entities.CategoryCommon, "")
			assert.Equal(t, tt.expected, presenter.Present(record).AgeText)
		})
	}
}

func TestPresenterService_Present_UsesInjectedClock(t *testing.T) {
	years := 7
	mockClock := &mocks.Clock{
		Today: time.Date(2026, time.October, 19, 18, 0, 0, 0, time.UTC),
		Years: &years,
	}
	presenter := NewPresenterService(mockClock)
	birth := time.Date(2001, time.April, 2, 9, 30, 0, 0, time.UTC)

	got := presenter.Present(entities.NewRecord("Moss", birth, entities.CategoryRare, "moss.png"))

	assert.Equal(t, "7 years old", got.AgeText)
	require.Len(t, mockClock.Calls, 1)
	assert.Equal(t, time.Date(2001, time.April, 2, 0, 0, 0, 0, time.UTC), mockClock.Calls[0][0])
	assert.Equal(t, time.Date(2026, time.October, 19, 0, 0, 0, 0, time.UTC), mockClock.Calls[0][1])
}

func TestPresenterService_Present_NegativeYearsClamp(t *testing.T) {
	years := -4
	presenter := NewPresenterService(&mocks.Clock{Today: testToday, Years: &years})

	got := presenter.Present(entities.NewRecord("Nova", testToday, entities.CategoryCommon, ""))

	assert.Equal(t, "0 years old", got.AgeText)
}

func TestPresenterService_Present_ZoneNaiveBirthDate(t *testing.T) {
	newYork, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// 22:00 on the 18th in New York is already the 19th in UTC.
	now := time.Date(2026, time.October, 19, 2, 0, 0, 0, time.UTC)
	presenter := NewPresenterService(clock.Fixed(now, newYork))
	birth := time.Date(2024, time.October, 19, 0, 0, 0, 0, time.UTC)

	got := presenter.Present(entities.NewRecord("Juniper", birth, entities.CategoryUncommon, ""))

	assert.Equal(t, "1 years old", got.AgeText)
}

func TestPresenterService_Present_Deterministic(t *testing.T) {
	presenter := newTestPresenter()

	rapid.Check(t, func(t *rapid.T) {
		categories := entities.Categories()
		category := categories[rapid.IntRange(0, len(categories)-1).Draw(t, "category")]
		birth := testToday.AddDate(0, 0, -rapid.IntRange(-400, 40000).Draw(t, "daysAgo"))
		name := rapid.String().Draw(t, "name")
		record := entities.NewRecord(name, birth, category, entities.ImageRef(name+".png"))

		first := presenter.Present(record)
		second := presenter.Present(record)

		if first != second {
			t.Fatalf("presentations differ: %+v vs %+v", first, second)
		}
		if first.DisplayName != name {
			t.Fatalf("display name %q, want %q", first.DisplayName, name)
		}
		if first.FeeText != FeeText(category) {
			t.Fatalf("fee %q, want %q", first.FeeText, FeeText(category))
		}
	})
}

func TestPresenterService_Present_Concurrent(t *testing.T) {
	presenter := newTestPresenter()
	record := entities.NewRecord("Stuart", testToday.AddDate(0, 0, -2*366), entities.CategoryVeryRare, "stuart.png")
	want := presenter.Present(record)

	var wg sync.WaitGroup
	results := make([]entities.Presentation, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = presenter.Present(record)
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
}
