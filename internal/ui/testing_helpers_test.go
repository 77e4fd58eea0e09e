package ui

import (
	"errors"
	"testing"

	"github.com/AlejandroE25/weatherman/internal/config"
	"github.com/AlejandroE25/weatherman/internal/weather"
)

// series builds a numeric API series with no missing values
func series(values ...float64) []*float64 {
	out := make([]*float64, len(values))
	for i := range values {
		out[i] = &values[i]
	}
	return out
}

// newTestForecast builds a valid seven-day forecast starting 2024-03-05
func newTestForecast(t *testing.T) *weather.WeeklyForecast {
	t.Helper()

	resp := &weather.APIResponse{
		Daily: &weather.APIDaily{
			Time: []string{
				"2024-03-05", "2024-03-06", "2024-03-07", "2024-03-08",
				"2024-03-09", "2024-03-10", "2024-03-11",
			},
			Temperature2mMax: series(50.5, 52, 48.1, 45, 60.2, 61, 58.9),
			Temperature2mMin: series(30, 31.5, -2.4, 29, 40, 41.3, 38),
			Sunrise: []string{
				"2024-03-05T06:42", "2024-03-06T06:41", "2024-03-07T06:39", "2024-03-08T06:37",
				"2024-03-09T06:36", "2024-03-10T07:34", "2024-03-11T07:32",
			},
			Sunset: []string{
				"2024-03-05T18:20", "2024-03-06T18:21", "2024-03-07T18:22", "2024-03-08T18:24",
				"2024-03-09T18:25", "2024-03-10T19:26", "2024-03-11T19:27",
			},
			PrecipitationSum: series(0, 0.12, 0.5, 0, 0, 1.25, 0.01),
			Windspeed10mMax:  series(10.2, 12, 8.7, 15, 20.1, 5, 7.5),
		},
	}

	forecast, err := weather.NewWeeklyForecast(resp)
	if err != nil {
		t.Fatalf("failed to build test forecast: %v", err)
	}
	return forecast
}

// newTestMachine builds a machine with default layout and labels
func newTestMachine(t *testing.T) *Machine {
	t.Helper()

	cfg := config.Default()
	return NewMachine(newTestForecast(t), Options{
		Layout: cfg.Layout,
		Labels: LabelsFor(cfg.Units),
	})
}

// fakeSurface records frames instead of drawing them
type fakeSurface struct {
	width, height int
	sizeErr       error
	drawErr       error
	frames        []Frame
	clears        int
	sizeCalls     int
}

func (s *fakeSurface) Size() (int, int, error) {
	s.sizeCalls++
	if s.sizeErr != nil {
		return 0, 0, s.sizeErr
	}
	return s.width, s.height, nil
}

func (s *fakeSurface) Clear() error {
	s.clears++
	return nil
}

func (s *fakeSurface) Draw(f Frame) error {
	if s.drawErr != nil {
		return s.drawErr
	}
	s.frames = append(s.frames, f)
	return nil
}

// failingWriter fails every write
type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("write failed")
}

// AssertScreen fails the test when the machine is not on want
func AssertScreen(t *testing.T, m *Machine, want ScreenID) {
	t.Helper()
	if got := m.CurrentID(); got != want {
		t.Errorf("Expected screen %s, got %s", want, got)
	}
}

// assertWithin fails when inner sticks out of outer
func assertWithin(t *testing.T, name string, inner, outer Rect) {
	t.Helper()
	if inner.X < outer.X || inner.Y < outer.Y ||
		inner.X+inner.Width > outer.X+outer.Width ||
		inner.Y+inner.Height > outer.Y+outer.Height {
		t.Errorf("%s: %+v is outside %+v", name, inner, outer)
	}
}
