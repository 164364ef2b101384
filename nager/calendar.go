package nager

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"

	ics "github.com/arran4/golang-ical"
)

const calendarProductID = "-//nager-date-go//Public Holidays//EN"

// Calendar renders holidays as an iCalendar with one all-day event each.
// Event UIDs are stable across renders of the same holiday.
func Calendar(name string, holidays []Holiday) *ics.Calendar {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(calendarProductID)
	if name != "" {
		cal.SetXWRCalName(name)
	}

	stamp := time.Now().UTC()
	for _, h := range holidays {
		event := cal.AddEvent(holidayUID(h))
		event.SetDtStampTime(stamp)
		event.SetAllDayStartAt(h.Date)
		event.SetAllDayEndAt(h.Date.AddDate(0, 0, 1))
		event.SetSummary(h.LocalName)
		event.SetDescription(holidayDescription(h))
		// one property per type; a joined value would be escaped into a single category
		for _, t := range h.Types {
			event.AddProperty(ics.ComponentPropertyCategories, string(t))
		}
	}
	return cal
}

// PublicHolidaysCalendar fetches the country's holidays in year and renders
// them as a serialized iCalendar.
func (c Country) PublicHolidaysCalendar(ctx context.Context, year int) (string, error) {
	holidays, err := c.PublicHolidays(ctx, year)
	if err != nil {
		return "", err
	}
	name := c.Name
	if name == "" {
		name = c.Code
	}
	return Calendar(fmt.Sprintf("%s public holidays %d", name, year), holidays).Serialize(), nil
}

func holidayUID(h Holiday) string {
	slug := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}
		return '-'
	}, h.Name)
	return fmt.Sprintf("%s-%s-%s@date.nager.at", strings.ToLower(h.CountryCode), h.Date.Format("20060102"), slug)
}

func holidayDescription(h Holiday) string {
	var b strings.Builder
	b.WriteString(h.Name)
	if !h.IsNationwide() {
		b.WriteString(" (")
		b.WriteString(strings.Join(h.Subdivisions, " "))
		b.WriteString(")")
	}
	return b.String()
}
