package weather

import "fmt"

// APIError represents a non-200 answer from the forecast API
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Message)
}

// NetworkError represents a transport failure while talking to the API
type NetworkError struct {
	Operation string
	Err       error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error during %s: %v", e.Operation, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// DecodeError reports a response that cannot become a WeeklyForecast
type DecodeError struct {
	Field  string
	Reason string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("decode error: %s", e.Reason)
	}
	return fmt.Sprintf("decode error for field '%s': %s", e.Field, e.Reason)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
