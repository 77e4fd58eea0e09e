package weather

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DaysInForecast is the fixed length of a WeeklyForecast
const DaysInForecast = 7

const (
	apiDateLayout     = "2006-01-02"
	displayDateLayout = "01/02/2006"
	timeOfDayLayout   = "15:04"
)

// DailyWeather is one calendar day of the forecast
type DailyWeather struct {
	Date          time.Time
	MaxTemp       float64
	MinTemp       float64
	Sunrise       string // HH:MM, local time
	Sunset        string // HH:MM, local time
	Precipitation float64
	MaxWindSpeed  float64
}

// DisplayDate returns the date as MM/DD/YYYY
func (d DailyWeather) DisplayDate() string {
	return d.Date.Format(displayDateLayout)
}

// String renders the day as "key: value" lines
func (d DailyWeather) String() string {
	return fmt.Sprintf(
		"date: %s\nmax temp: %s\nmin temp: %s\nsunrise: %s\nsunset: %s\nprecipitation: %s\nmax windspeed: %s",
		d.DisplayDate(),
		FormatNumber(d.MaxTemp),
		FormatNumber(d.MinTemp),
		d.Sunrise,
		d.Sunset,
		FormatNumber(d.Precipitation),
		FormatNumber(d.MaxWindSpeed),
	)
}

// WeeklyForecast holds today through six days ahead, in the order received
type WeeklyForecast struct {
	days [DaysInForecast]DailyWeather
}

// NewWeeklyForecast validates an API response and builds the forecast.
// Any missing array, length mismatch or unparsable value fails the whole construction.
func NewWeeklyForecast(resp *APIResponse) (*WeeklyForecast, error) {
	if resp == nil || resp.Daily == nil {
		return nil, &DecodeError{Field: "daily", Reason: "missing"}
	}
	daily := resp.Daily

	lengths := []struct {
		field string
		n     int
	}{
		{"time", len(daily.Time)},
		{"temperature_2m_max", len(daily.Temperature2mMax)},
		{"temperature_2m_min", len(daily.Temperature2mMin)},
		{"sunrise", len(daily.Sunrise)},
		{"sunset", len(daily.Sunset)},
		{"precipitation_sum", len(daily.PrecipitationSum)},
		{"windspeed_10m_max", len(daily.Windspeed10mMax)},
	}
	for _, l := range lengths {
		if l.n != DaysInForecast {
			return nil, &DecodeError{
				Field:  "daily." + l.field,
				Reason: fmt.Sprintf("expected %d entries, got %d", DaysInForecast, l.n),
			}
		}
	}

	var forecast WeeklyForecast
	for i := 0; i < DaysInForecast; i++ {
		date, err := time.Parse(apiDateLayout, daily.Time[i])
		if err != nil {
			return nil, &DecodeError{
				Field:  fmt.Sprintf("daily.time[%d]", i),
				Reason: fmt.Sprintf("invalid date %q", daily.Time[i]),
				Err:    err,
			}
		}

		sunrise, err := TimeOfDay(daily.Sunrise[i])
		if err != nil {
			return nil, &DecodeError{Field: fmt.Sprintf("daily.sunrise[%d]", i), Reason: err.Error(), Err: err}
		}

		sunset, err := TimeOfDay(daily.Sunset[i])
		if err != nil {
			return nil, &DecodeError{Field: fmt.Sprintf("daily.sunset[%d]", i), Reason: err.Error(), Err: err}
		}

		maxTemp, err := seriesValue("temperature_2m_max", daily.Temperature2mMax, i)
		if err != nil {
			return nil, err
		}
		minTemp, err := seriesValue("temperature_2m_min", daily.Temperature2mMin, i)
		if err != nil {
			return nil, err
		}
		precipitation, err := seriesValue("precipitation_sum", daily.PrecipitationSum, i)
		if err != nil {
			return nil, err
		}
		wind, err := seriesValue("windspeed_10m_max", daily.Windspeed10mMax, i)
		if err != nil {
			return nil, err
		}

		forecast.days[i] = DailyWeather{
			Date:          date,
			MaxTemp:       maxTemp,
			MinTemp:       minTemp,
			Sunrise:       sunrise,
			Sunset:        sunset,
			Precipitation: precipitation,
			MaxWindSpeed:  wind,
		}
	}

	return &forecast, nil
}

// seriesValue returns day i of a numeric series; a null entry is a missing value
func seriesValue(field string, series []*float64, i int) (float64, error) {
	if series[i] == nil {
		return 0, &DecodeError{Field: fmt.Sprintf("daily.%s[%d]", field, i), Reason: "missing value"}
	}
	return *series[i], nil
}

// Days returns a copy of the seven days
func (w *WeeklyForecast) Days() []DailyWeather {
	days := make([]DailyWeather, DaysInForecast)
	copy(days, w.days[:])
	return days
}

// Day returns the forecast i days from today
func (w *WeeklyForecast) Day(i int) DailyWeather {
	return w.days[i]
}

// Len is always DaysInForecast
func (w *WeeklyForecast) Len() int {
	return len(w.days)
}

// String renders every day followed by a newline
func (w *WeeklyForecast) String() string {
	var sb strings.Builder
	for _, day := range w.days {
		sb.WriteString(day.String())
		sb.WriteString("\n")
	}
	return sb.String()
}

// TimeOfDay keeps the HH:MM part of an ISO datetime (YYYY-MM-DDTHH:MM)
func TimeOfDay(datetime string) (string, error) {
	_, clock, found := strings.Cut(datetime, "T")
	if !found {
		return "", fmt.Errorf("datetime %q has no time part", datetime)
	}
	if _, err := time.Parse(timeOfDayLayout, clock); err != nil {
		return "", fmt.Errorf("invalid time of day %q", clock)
	}
	return clock, nil
}

// FormatNumber prints a value with the fewest digits that represent it
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
