// Package timex 提供 JSON 友好的时间类型
package timex

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// Layout is the wire format used for every timestamp in API responses
// Layout API 响应中时间戳的格式
const Layout = time.RFC3339

// Time wraps time.Time with a fixed JSON layout
type Time time.Time

// Now 当前时间
func Now() Time {
	return Time(time.Now())
}

// Ptr converts an optional time.Time into an optional Time
// Ptr 将可选的 time.Time 转换为可选的 Time
func Ptr(t *time.Time) *Time {
	if t == nil {
		return nil
	}
	tt := Time(*t)
	return &tt
}

func (t Time) MarshalJSON() ([]byte, error) {
	tt := time.Time(t)
	if tt.IsZero() {
		return []byte("null"), nil
	}
	return []byte(fmt.Sprintf("%q", tt.Format(Layout))), nil
}

func (t *Time) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*t = Time(time.Time{})
		return nil
	}
	parsed, err := time.Parse(Layout, s)
	if err != nil {
		return err
	}
	*t = Time(parsed)
	return nil
}

// Value 实现 driver.Valuer
func (t Time) Value() (driver.Value, error) {
	tt := time.Time(t)
	if tt.IsZero() {
		return nil, nil
	}
	return tt, nil
}

// Scan 实现 sql.Scanner
func (t *Time) Scan(v interface{}) error {
	switch value := v.(type) {
	case nil:
		*t = Time(time.Time{})
	case time.Time:
		*t = Time(value)
	default:
		return fmt.Errorf("can not convert %v to timex.Time", v)
	}
	return nil
}

func (t Time) String() string {
	return time.Time(t).Format(Layout)
}

func (t Time) Unix() int64 {
	return time.Time(t).Unix()
}

func (t Time) UnixMilli() int64 {
	return time.Time(t).UnixMilli()
}

func (t Time) UnixMicro() int64 {
	return time.Time(t).UnixMicro()
}

func (t Time) UnixNano() int64 {
	return time.Time(t).UnixNano()
}
