package nager

import (
	"fmt"
	"time"

	"github.com/dvcrn/nager-date-go/raw"
)

// LongWeekend is a run of days off around a holiday, possibly needing
// bridge days taken as leave.
type LongWeekend struct {
	StartDate     time.Time
	EndDate       time.Time
	DayCount      int
	NeedBridgeDay bool
	BridgeDays    []time.Time
	Nationwide    bool
}

func (w LongWeekend) String() string {
	return fmt.Sprintf("%s --> %s", w.StartDate.Format(dateLayout), w.EndDate.Format(dateLayout))
}

func parseLongWeekend(row raw.Row) (LongWeekend, error) {
	start, err := dateField(row, "startDate")
	if err != nil {
		return LongWeekend{}, err
	}
	end, err := dateField(row, "endDate")
	if err != nil {
		return LongWeekend{}, err
	}

	values, _ := row["bridgeDays"].([]any)
	bridgeDays := make([]time.Time, 0, len(values))
	for _, v := range values {
		d, err := parseDate("bridgeDays", v)
		if err != nil {
			return LongWeekend{}, err
		}
		bridgeDays = append(bridgeDays, d)
	}

	// without a subdivision scope the weekend applies to the whole country
	nationwide := true
	if b, ok := row["nationwide"].(bool); ok {
		nationwide = b
	}

	return LongWeekend{
		StartDate:     start,
		EndDate:       end,
		DayCount:      intField(row, "dayCount"),
		NeedBridgeDay: boolField(row, "needBridgeDay"),
		BridgeDays:    bridgeDays,
		Nationwide:    nationwide,
	}, nil
}

func parseLongWeekends(rows []raw.Row) ([]LongWeekend, error) {
	weekends := make([]LongWeekend, 0, len(rows))
	for _, row := range rows {
		w, err := parseLongWeekend(row)
		if err != nil {
			return nil, err
		}
		weekends = append(weekends, w)
	}
	return weekends, nil
}
