package nager

import (
	"fmt"
	"strings"
	"time"

	"github.com/dvcrn/nager-date-go/raw"
)

// HolidayType is a category tag attached to a holiday.
type HolidayType string

const (
	TypePublic      HolidayType = "Public"
	TypeBank        HolidayType = "Bank"
	TypeSchool      HolidayType = "School"
	TypeAuthorities HolidayType = "Authorities"
	TypeOptional    HolidayType = "Optional"
	TypeObservance  HolidayType = "Observance"
)

// Holiday is a single public holiday.
type Holiday struct {
	Date        time.Time
	LocalName   string
	Name        string // English name
	CountryCode string
	Fixed       bool // same date every year
	Global      bool // observed in every subdivision
	// Subdivisions holds the ISO-3166-2 codes the holiday is limited to.
	// Empty means nationwide.
	Subdivisions []string
	LaunchYear   int // 0 when unknown
	Types        []HolidayType
	country      Country
}

func (h Holiday) String() string {
	return fmt.Sprintf("%s (%s)", h.Name, h.Date.Format(dateLayout))
}

// IsNationwide reports whether the holiday applies to the whole country.
func (h Holiday) IsNationwide() bool {
	return len(h.Subdivisions) == 0
}

// AppliesTo reports whether the holiday is observed in subdivision, e.g. "US-TX".
func (h Holiday) AppliesTo(subdivision string) bool {
	if h.IsNationwide() {
		return true
	}
	for _, s := range h.Subdivisions {
		if strings.EqualFold(s, subdivision) {
			return true
		}
	}
	return false
}

// HasType reports whether t is among the holiday's categories.
func (h Holiday) HasType(t HolidayType) bool {
	for _, ht := range h.Types {
		if ht == t {
			return true
		}
	}
	return false
}

func (h Holiday) IsPublic() bool { return h.HasType(TypePublic) }

func (h Holiday) IsBank() bool { return h.HasType(TypeBank) }

func (h Holiday) IsSchool() bool { return h.HasType(TypeSchool) }

func (h Holiday) IsAuthorities() bool { return h.HasType(TypeAuthorities) }

func (h Holiday) IsOptional() bool { return h.HasType(TypeOptional) }

func (h Holiday) IsObservance() bool { return h.HasType(TypeObservance) }

// Country returns the holiday's country, bound to the Session that fetched
// the holiday. Only Code is set; fetch methods work without a lookup.
func (h Holiday) Country() Country {
	if h.country.Code == "" {
		return Country{Code: h.CountryCode}
	}
	return h.country
}

func parseHoliday(row raw.Row) (Holiday, error) {
	date, err := dateField(row, "date")
	if err != nil {
		return Holiday{}, err
	}

	tags := stringSetField(row, "types")
	types := make([]HolidayType, len(tags))
	for i, tag := range tags {
		types[i] = HolidayType(tag)
	}

	return Holiday{
		Date:         date,
		LocalName:    stringField(row, "localName"),
		Name:         stringField(row, "name"),
		CountryCode:  stringField(row, "countryCode"),
		Fixed:        boolField(row, "fixed"),
		Global:       boolField(row, "global"),
		Subdivisions: stringSetField(row, "counties"),
		LaunchYear:   intField(row, "launchYear"),
		Types:        types,
	}, nil
}

func (s *Session) parseHolidays(rows []raw.Row) ([]Holiday, error) {
	holidays := make([]Holiday, 0, len(rows))
	for _, row := range rows {
		h, err := parseHoliday(row)
		if err != nil {
			return nil, err
		}
		if h.CountryCode != "" {
			h.country = Country{Code: h.CountryCode, session: s}
		}
		holidays = append(holidays, h)
	}
	return holidays, nil
}
