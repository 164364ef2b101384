package nager

import (
	"context"
	"strings"
	"testing"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicHolidaysCalendar(t *testing.T) {
	session := NewSession(WithCaller(newFakeCaller().on("/PublicHolidays/2022/US", holidaysUS2022)))
	us, err := session.Country("US")
	require.NoError(t, err)

	out, err := us.PublicHolidaysCalendar(context.Background(), 2022)
	require.NoError(t, err)

	cal, err := ics.ParseCalendar(strings.NewReader(out))
	require.NoError(t, err)

	events := cal.Events()
	require.Len(t, events, 3)

	goodFriday := events[1]
	assert.Equal(t, "Good Friday", goodFriday.GetProperty(ics.ComponentPropertySummary).Value)
	assert.Equal(t, "20220415", goodFriday.GetProperty(ics.ComponentPropertyDtStart).Value)
	assert.Equal(t, "20220416", goodFriday.GetProperty(ics.ComponentPropertyDtEnd).Value)
	assert.Equal(t, "us-20220415-good-friday@date.nager.at", goodFriday.GetProperty(ics.ComponentPropertyUniqueId).Value)
	assert.Contains(t, out, "US public holidays 2022")
}

func TestHolidayDescription(t *testing.T) {
	h := Holiday{Name: "Good Friday", Subdivisions: []string{"US-CT", "US-TX"}}
	assert.Equal(t, "Good Friday (US-CT US-TX)", holidayDescription(h))

	h.Subdivisions = nil
	assert.Equal(t, "Good Friday", holidayDescription(h))
}

func TestCalendarCategoriesPerType(t *testing.T) {
	h := Holiday{
		Date:        time.Date(2022, time.April, 15, 0, 0, 0, 0, time.UTC),
		LocalName:   "Karfreitag",
		Name:        "Good Friday",
		CountryCode: "DE",
		Types:       []HolidayType{TypeBank, TypePublic},
	}

	out := Calendar("Germany", []Holiday{h}).Serialize()
	assert.NotContains(t, out, `Bank\,Public`)

	cal, err := ics.ParseCalendar(strings.NewReader(out))
	require.NoError(t, err)
	events := cal.Events()
	require.Len(t, events, 1)

	var categories []string
	for _, p := range events[0].Properties {
		if p.IANAToken == string(ics.ComponentPropertyCategories) {
			categories = append(categories, p.Value)
		}
	}
	assert.Equal(t, []string{"Bank", "Public"}, categories)
}
