// Package nager is the object API for the Nager.Date holiday service. A
// Session turns the rows returned by package raw into Country, Holiday and
// LongWeekend values.
//
// Nothing is cached: every method call is one request to the service.
package nager

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dvcrn/nager-date-go/client"
	"github.com/dvcrn/nager-date-go/raw"
)

var (
	// ErrNoCountry is returned when no country code was given and the
	// Session has no default country.
	ErrNoCountry = errors.New("no country provided")

	// ErrUnknownCountry is returned by LookupCountry for a code the service
	// does not list.
	ErrUnknownCountry = errors.New("unknown country code")
)

// Session is the entry point of the object API. It is safe for concurrent use.
type Session struct {
	caller         client.Caller
	defaultCountry string
}

type sessionConfig struct {
	caller         client.Caller
	clientOptions  []client.Option
	defaultCountry string
}

// Option configures a Session.
type Option func(*sessionConfig)

// WithCaller makes the Session send its requests through caller instead of
// a new client.Client.
func WithCaller(caller client.Caller) Option {
	return func(cfg *sessionConfig) {
		cfg.caller = caller
	}
}

// WithClientOptions configures the client.Client the Session creates.
func WithClientOptions(opts ...client.Option) Option {
	return func(cfg *sessionConfig) {
		cfg.clientOptions = append(cfg.clientOptions, opts...)
	}
}

// WithDefaultCountry sets the country used when a method gets an empty code.
func WithDefaultCountry(code string) Option {
	return func(cfg *sessionConfig) {
		cfg.defaultCountry = code
	}
}

// NewSession creates a Session. Without options it talks to the public
// service with default settings.
func NewSession(opts ...Option) *Session {
	cfg := &sessionConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.caller == nil {
		cfg.caller = client.New(cfg.clientOptions...)
	}
	return &Session{
		caller:         cfg.caller,
		defaultCountry: strings.ToUpper(strings.TrimSpace(cfg.defaultCountry)),
	}
}

// Caller returns the request layer the Session uses, for mixing object and
// raw calls.
func (s *Session) Caller() client.Caller {
	return s.caller
}

// Country returns a handle for code without contacting the service. An
// empty code selects the default country.
func (s *Session) Country(code string) (Country, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		code = s.defaultCountry
	}
	if code == "" {
		return Country{}, ErrNoCountry
	}
	return Country{Code: code, session: s}, nil
}

// LookupCountry resolves code, ignoring case, against the list of supported
// countries. The returned Country carries its name.
func (s *Session) LookupCountry(ctx context.Context, code string) (Country, error) {
	wanted, err := s.Country(code)
	if err != nil {
		return Country{}, err
	}
	countries, err := s.AvailableCountries(ctx)
	if err != nil {
		return Country{}, err
	}
	for _, c := range countries {
		if c.Is(wanted.Code) {
			return c, nil
		}
	}
	return Country{}, fmt.Errorf("%w: %s", ErrUnknownCountry, wanted.Code)
}

// AvailableCountries fetches all supported countries.
func (s *Session) AvailableCountries(ctx context.Context) ([]Country, error) {
	rows, err := raw.AvailableCountries(ctx, s.caller)
	if err != nil {
		return nil, err
	}
	countries := make([]Country, 0, len(rows))
	for _, row := range rows {
		countries = append(countries, s.parseCountry(row))
	}
	return countries, nil
}

// CountryInfo fetches the details of a country.
func (s *Session) CountryInfo(ctx context.Context, code string) (CountryInfo, error) {
	c, err := s.Country(code)
	if err != nil {
		return CountryInfo{}, err
	}
	return c.Info(ctx)
}

// PublicHolidays fetches the holidays of a country in year.
func (s *Session) PublicHolidays(ctx context.Context, year int, code string) ([]Holiday, error) {
	c, err := s.Country(code)
	if err != nil {
		return nil, err
	}
	return c.PublicHolidays(ctx, year)
}

// NextPublicHolidays fetches the holidays of a country in the next 365 days.
func (s *Session) NextPublicHolidays(ctx context.Context, code string) ([]Holiday, error) {
	c, err := s.Country(code)
	if err != nil {
		return nil, err
	}
	return c.NextPublicHolidays(ctx)
}

// NextPublicHolidaysWorldwide fetches the holidays of the next 7 days in all
// countries.
func (s *Session) NextPublicHolidaysWorldwide(ctx context.Context) ([]Holiday, error) {
	rows, err := raw.NextPublicHolidaysWorldwide(ctx, s.caller)
	if err != nil {
		return nil, err
	}
	return s.parseHolidays(rows)
}

// LongWeekends fetches the long weekends of a country in year.
func (s *Session) LongWeekends(ctx context.Context, year int, code string) ([]LongWeekend, error) {
	c, err := s.Country(code)
	if err != nil {
		return nil, err
	}
	return c.LongWeekends(ctx, year)
}

// IsTodayPublicHoliday reports whether today is a public holiday in a country.
func (s *Session) IsTodayPublicHoliday(ctx context.Context, code string) (bool, error) {
	c, err := s.Country(code)
	if err != nil {
		return false, err
	}
	return c.IsTodayPublicHoliday(ctx)
}

// Version fetches the version of the service's library.
func (s *Session) Version(ctx context.Context) (Version, error) {
	row, err := raw.Version(ctx, s.caller)
	if err != nil {
		return Version{}, err
	}
	return parseVersion(row), nil
}
