package nager

import (
	"context"
	"errors"
	"strings"

	"github.com/dvcrn/nager-date-go/raw"
)

// ErrDetachedCountry is returned by fetch methods on a Country that was not
// obtained from a Session.
var ErrDetachedCountry = errors.New("country is not bound to a session")

// Country is a supported country. Its fetch methods use the Session it came
// from and go to the network on every call.
type Country struct {
	Code    string // ISO 3166-1 alpha-2
	Name    string
	session *Session
}

func (c Country) String() string {
	return c.Name
}

// Is reports whether the country has the given code, ignoring case.
func (c Country) Is(code string) bool {
	return strings.EqualFold(c.Code, code)
}

// Info fetches the country's details, including its borders.
func (c Country) Info(ctx context.Context) (CountryInfo, error) {
	if c.session == nil {
		return CountryInfo{}, ErrDetachedCountry
	}
	row, err := raw.CountryInfo(ctx, c.session.caller, c.Code)
	if err != nil {
		return CountryInfo{}, err
	}
	return c.session.parseCountryInfo(row), nil
}

// PublicHolidays fetches the country's holidays in year.
func (c Country) PublicHolidays(ctx context.Context, year int) ([]Holiday, error) {
	if c.session == nil {
		return nil, ErrDetachedCountry
	}
	rows, err := raw.PublicHolidays(ctx, c.session.caller, year, c.Code)
	if err != nil {
		return nil, err
	}
	return c.session.parseHolidays(rows)
}

// NextPublicHolidays fetches the country's holidays of the next 365 days.
func (c Country) NextPublicHolidays(ctx context.Context) ([]Holiday, error) {
	if c.session == nil {
		return nil, ErrDetachedCountry
	}
	rows, err := raw.NextPublicHolidays(ctx, c.session.caller, c.Code)
	if err != nil {
		return nil, err
	}
	return c.session.parseHolidays(rows)
}

// LongWeekends fetches the country's long weekends in year.
func (c Country) LongWeekends(ctx context.Context, year int) ([]LongWeekend, error) {
	if c.session == nil {
		return nil, ErrDetachedCountry
	}
	rows, err := raw.LongWeekends(ctx, c.session.caller, year, c.Code)
	if err != nil {
		return nil, err
	}
	return parseLongWeekends(rows)
}

// IsTodayPublicHoliday reports whether today is a public holiday in the country.
func (c Country) IsTodayPublicHoliday(ctx context.Context) (bool, error) {
	if c.session == nil {
		return false, ErrDetachedCountry
	}
	return raw.IsTodayPublicHoliday(ctx, c.session.caller, c.Code)
}

// CountryInfo holds the details of a country. Borders are bound to the same
// Session and can fetch their own holidays.
type CountryInfo struct {
	Country
	OfficialName string
	Region       string
	Borders      []Country
}

// parseCountry accepts both the AvailableCountries shape ("name") and the
// CountryInfo shape ("commonName").
func (s *Session) parseCountry(row raw.Row) Country {
	name := stringField(row, "name")
	if name == "" {
		name = stringField(row, "commonName")
	}
	return Country{
		Code:    stringField(row, "countryCode"),
		Name:    name,
		session: s,
	}
}

func (s *Session) parseCountryInfo(row raw.Row) CountryInfo {
	values, _ := row["borders"].([]any)
	borders := make([]Country, 0, len(values))
	for _, v := range values {
		if border, ok := v.(map[string]any); ok {
			borders = append(borders, s.parseCountry(border))
		}
	}

	return CountryInfo{
		Country:      s.parseCountry(row),
		OfficialName: stringField(row, "officialName"),
		Region:       stringField(row, "region"),
		Borders:      borders,
	}
}
