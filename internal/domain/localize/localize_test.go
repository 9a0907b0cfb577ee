package localize

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dailystar-data/police-story-go/internal/domain/entities/locale"
)

func TestToLocaleNumerals(t *testing.T) {
	tests := []struct {
		name  string
		value any
		loc   locale.Locale
		want  any
	}{
		{"year string bengali", "2024", locale.Bengali, "২০২৪"},
		{"int bengali", 19, locale.Bengali, "১৯"},
		{"year string english", "2024", locale.English, "2024"},
		{"int english", 41, locale.English, "41"},
		{"mixed text keeps non-digits", "34,412 rounds", locale.Bengali, "৩৪,৪১২ rounds"},
		{"float", 12.5, locale.Bengali, "১২.৫"},
		{"int64", int64(1400), locale.Bengali, "১৪০০"},
		{"nil is identity", nil, locale.Bengali, nil},
		{"bool is identity", true, locale.Bengali, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToLocaleNumerals(tt.value, tt.loc))
		})
	}
}

func TestToLocaleNumeralsIdentityKeepsPointer(t *testing.T) {
	placeholder := &struct{ N int }{N: 3}
	assert.Same(t, placeholder, ToLocaleNumerals(placeholder, locale.Bengali))
}

func TestDigitsIsPerCharacter(t *testing.T) {
	for d := 0; d <= 9; d++ {
		got := Digits(string(rune('0'+d)), locale.Bengali)
		assert.Equal(t, string(bengaliDigits[d]), got)
	}
	assert.Equal(t, "১৯", Digits("19", locale.Bengali))
	assert.Equal(t, "০৯-০৮", Digits("09-08", locale.Bengali))
}

func TestFormatLocalizedDate(t *testing.T) {
	assert.Equal(t, "", FormatLocalizedDate(nil, locale.Bengali))
	assert.Equal(t, "", FormatLocalizedDate(nil, locale.English))

	// August 6, 2024 was a Tuesday.
	d := time.Date(2024, time.August, 6, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "মঙ্গলবার, ৬ আগস্ট, ২০২৪", FormatLocalizedDate(&d, locale.Bengali))
	assert.Equal(t, "Tuesday, August 6, 2024", FormatLocalizedDate(&d, locale.English))

	two := time.Date(2024, time.November, 13, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "বুধবার, ১৩ নভেম্বর, ২০২৪", FormatLocalizedDate(&two, locale.Bengali))
}

func TestMonthAndWeekdayNames(t *testing.T) {
	assert.Equal(t, "জুলাই", MonthName(time.July, locale.Bengali))
	assert.Equal(t, "July", MonthName(time.July, locale.English))
	assert.Equal(t, "", MonthName(time.Month(13), locale.Bengali))
	assert.Equal(t, "শুক্রবার", WeekdayName(time.Friday, locale.Bengali))
	assert.Equal(t, "Friday", WeekdayName(time.Friday, locale.English))
}

func TestFormatDateString(t *testing.T) {
	assert.Equal(t, "2024-08-28", FormatDateString("2024-08-28", locale.English))
	assert.Equal(t, "২০২৪-০৮-২৮", FormatDateString("2024-08-28", locale.Bengali))
}

func TestFormattersAreReentrant(t *testing.T) {
	d := time.Date(2024, time.July, 19, 0, 0, 0, 0, time.UTC)
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, "শুক্রবার, ১৯ জুলাই, ২০২৪", FormatLocalizedDate(&d, locale.Bengali))
			assert.Equal(t, "২০২৪", ToLocaleNumerals(2024, locale.Bengali))
		}()
	}
	wg.Wait()
}
