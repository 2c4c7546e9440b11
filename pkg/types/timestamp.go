package types

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidTimestamp возвращается, когда значение не удаётся интерпретировать как время
var ErrInvalidTimestamp = errors.New("invalid timestamp")

// Timestamp время, приводимое к time.Time на границе чтения.
// Принимает:
//   - нативный time.Time (драйвер БД);
//   - объект документной БД вида {"seconds": 1706745600, "nanoseconds": 0}
//     (также "_seconds"/"_nanoseconds" из экспортов);
//   - число - epoch в миллисекундах;
//   - строку RFC3339, "2006-01-02 15:04:05" или "2006-01-02".
type Timestamp struct {
	time.Time
}

// NewTimestamp создает Timestamp из time.Time
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t}
}

var stringLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTimestampString разбирает строковое представление времени
func ParseTimestampString(s string) (Timestamp, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Timestamp{}, fmt.Errorf("%w: empty string", ErrInvalidTimestamp)
	}

	// Строка может содержать epoch в миллисекундах
	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		return FromEpochMillis(ms), nil
	}

	for _, layout := range stringLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Timestamp{Time: t.UTC()}, nil
		}
	}

	return Timestamp{}, fmt.Errorf("%w: unsupported format %q", ErrInvalidTimestamp, s)
}

// FromEpochMillis создает Timestamp из epoch в миллисекундах
func FromEpochMillis(ms int64) Timestamp {
	return Timestamp{Time: time.UnixMilli(ms).UTC()}
}

type nativeTimestamp struct {
	Seconds           *int64 `json:"seconds"`
	Nanoseconds       int64  `json:"nanoseconds"`
	LegacySeconds     *int64 `json:"_seconds"`
	LegacyNanoseconds int64  `json:"_nanoseconds"`
}

// UnmarshalJSON поддерживает объект {seconds, nanoseconds}, число и строку
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		t.Time = time.Time{}
		return nil
	}

	switch data[0] {
	case '{':
		var native nativeTimestamp
		if err := json.Unmarshal(data, &native); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidTimestamp, err)
		}
		switch {
		case native.Seconds != nil:
			t.Time = time.Unix(*native.Seconds, native.Nanoseconds).UTC()
		case native.LegacySeconds != nil:
			t.Time = time.Unix(*native.LegacySeconds, native.LegacyNanoseconds).UTC()
		default:
			return fmt.Errorf("%w: object without seconds", ErrInvalidTimestamp)
		}
		return nil

	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidTimestamp, err)
		}
		parsed, err := ParseTimestampString(s)
		if err != nil {
			return err
		}
		*t = parsed
		return nil

	default:
		var ms float64
		if err := json.Unmarshal(data, &ms); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidTimestamp, err)
		}
		*t = FromEpochMillis(int64(ms))
		return nil
	}
}

// MarshalJSON сериализует время в RFC3339
func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.Time.Format(time.RFC3339Nano))
}

// Scan реализует sql.Scanner
func (t *Timestamp) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		t.Time = time.Time{}
		return nil
	case time.Time:
		t.Time = v
		return nil
	case int64:
		*t = FromEpochMillis(v)
		return nil
	case []byte:
		parsed, err := ParseTimestampString(string(v))
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case string:
		parsed, err := ParseTimestampString(v)
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrInvalidTimestamp, src)
	}
}

// Value реализует driver.Valuer
func (t Timestamp) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	return t.Time, nil
}
