package localize

import (
	"fmt"
	"time"

	"github.com/dailystar-data/police-story-go/internal/domain/entities/locale"
)

var bengaliMonths = [12]string{
	"জানুয়ারি", "ফেব্রুয়ারি", "মার্চ", "এপ্রিল", "মে", "জুন",
	"জুলাই", "আগস্ট", "সেপ্টেম্বর", "অক্টোবর", "নভেম্বর", "ডিসেম্বর",
}

// Sunday first, matching time.Weekday.
var bengaliWeekdays = [7]string{
	"রবিবার", "সোমবার", "মঙ্গলবার", "বুধবার", "বৃহস্পতিবার", "শুক্রবার", "শনিবার",
}

const englishDateLayout = "Monday, January 2, 2006"

// MonthName returns the display name of a month.
func MonthName(m time.Month, l locale.Locale) string {
	if m < time.January || m > time.December {
		return ""
	}
	if l == locale.Bengali {
		return bengaliMonths[m-1]
	}
	return m.String()
}

// WeekdayName returns the display name of a weekday.
func WeekdayName(d time.Weekday, l locale.Locale) string {
	if d < time.Sunday || d > time.Saturday {
		return ""
	}
	if l == locale.Bengali {
		return bengaliWeekdays[d]
	}
	return d.String()
}

// FormatLocalizedDate renders t as "<weekday>, <day> <month>, <year>" in
// Bengali, or with the "Monday, January 2, 2006" layout in English. A nil
// date yields "".
func FormatLocalizedDate(t *time.Time, l locale.Locale) string {
	if t == nil {
		return ""
	}
	if l != locale.Bengali {
		return t.Format(englishDateLayout)
	}
	return fmt.Sprintf("%s, %s %s, %s",
		WeekdayName(t.Weekday(), l),
		Digits(fmt.Sprint(t.Day()), l),
		MonthName(t.Month(), l),
		Digits(fmt.Sprint(t.Year()), l),
	)
}

// FormatDateString is the officer table's per-locale date hook: English
// passes the authored string through, Bengali swaps its digits.
func FormatDateString(raw string, l locale.Locale) string {
	return Digits(raw, l)
}
