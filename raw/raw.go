// Package raw exposes one stateless function per Nager.Date endpoint. Results
// are the decoded JSON values, with no interpretation beyond shape.
//
// Country codes and years are not validated locally: whatever the service
// answers (404, 400, an empty list) is surfaced as is.
package raw

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dvcrn/nager-date-go/client"
)

// Row is one decoded JSON object from a list endpoint.
type Row = map[string]any

const (
	pathAvailableCountries          = "/AvailableCountries"
	pathCountryInfo                 = "/CountryInfo/{countryCode}"
	pathPublicHolidays              = "/PublicHolidays/{year}/{countryCode}"
	pathNextPublicHolidays          = "/NextPublicHolidays/{countryCode}"
	pathNextPublicHolidaysWorldwide = "/NextPublicHolidaysWorldwide"
	pathLongWeekend                 = "/LongWeekend/{year}/{countryCode}"
	pathIsTodayPublicHoliday        = "/IsTodayPublicHoliday/{countryCode}"
	pathVersion                     = "/Version"
)

// AvailableCountries lists every supported country as {countryCode, name} rows.
func AvailableCountries(ctx context.Context, c client.Caller) ([]Row, error) {
	return getRows(ctx, c, client.Request{Path: pathAvailableCountries})
}

// CountryInfo returns the country record, including its borders.
func CountryInfo(ctx context.Context, c client.Caller, countryCode string) (Row, error) {
	return getObject(ctx, c, client.Request{
		Path:       pathCountryInfo,
		PathParams: map[string]string{"countryCode": countryCode},
	})
}

// PublicHolidays returns the holidays of countryCode in year.
func PublicHolidays(ctx context.Context, c client.Caller, year int, countryCode string) ([]Row, error) {
	return getRows(ctx, c, client.Request{
		Path:       pathPublicHolidays,
		PathParams: map[string]string{"year": strconv.Itoa(year), "countryCode": countryCode},
	})
}

// NextPublicHolidays returns the holidays of the next 365 days for countryCode.
func NextPublicHolidays(ctx context.Context, c client.Caller, countryCode string) ([]Row, error) {
	return getRows(ctx, c, client.Request{
		Path:       pathNextPublicHolidays,
		PathParams: map[string]string{"countryCode": countryCode},
	})
}

// NextPublicHolidaysWorldwide returns the holidays of the next 7 days in all countries.
func NextPublicHolidaysWorldwide(ctx context.Context, c client.Caller) ([]Row, error) {
	return getRows(ctx, c, client.Request{Path: pathNextPublicHolidaysWorldwide})
}

// LongWeekends returns the long weekends of countryCode in year.
func LongWeekends(ctx context.Context, c client.Caller, year int, countryCode string) ([]Row, error) {
	return getRows(ctx, c, client.Request{
		Path:       pathLongWeekend,
		PathParams: map[string]string{"year": strconv.Itoa(year), "countryCode": countryCode},
	})
}

// IsTodayPublicHoliday reports whether today is a public holiday in countryCode.
func IsTodayPublicHoliday(ctx context.Context, c client.Caller, countryCode string) (bool, error) {
	return IsTodayPublicHolidayWithOptions(ctx, c, countryCode, "", 0)
}

// IsTodayPublicHolidayWithOptions narrows the check to a subdivision
// (countyCode, e.g. "DE-BY") and shifts "today" by a UTC offset in hours.
// Zero values leave the parameters unset.
//
// The service answers 200 for a holiday and 204 otherwise; the body is not read.
func IsTodayPublicHolidayWithOptions(ctx context.Context, c client.Caller, countryCode, countyCode string, offset int) (bool, error) {
	query := url.Values{}
	if countyCode != "" {
		query.Set("countyCode", countyCode)
	}
	if offset != 0 {
		query.Set("offset", strconv.Itoa(offset))
	}

	resp, err := c.Do(ctx, client.Request{
		Path:       pathIsTodayPublicHoliday,
		PathParams: map[string]string{"countryCode": countryCode},
		Query:      query,
	})
	if err != nil {
		return false, err
	}
	return resp.StatusCode == http.StatusOK, nil
}

// Version returns the {name, version} record of the service's library.
func Version(ctx context.Context, c client.Caller) (Row, error) {
	return getObject(ctx, c, client.Request{Path: pathVersion})
}

func getRows(ctx context.Context, c client.Caller, req client.Request) ([]Row, error) {
	resp, err := c.Do(ctx, req)
	if err != nil {
		return nil, err
	}
	var rows []Row
	if err := resp.Decode(&rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func getObject(ctx context.Context, c client.Caller, req client.Request) (Row, error) {
	resp, err := c.Do(ctx, req)
	if err != nil {
		return nil, err
	}
	var obj Row
	if err := resp.Decode(&obj); err != nil {
		return nil, err
	}
	return obj, nil
}
