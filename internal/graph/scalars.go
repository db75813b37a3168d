// AngelaMos | 2026
// scalars.go

package graph

import (
	"encoding/json"
	"fmt"
	"time"
)

// DateTime is the DateTime scalar. It is written as RFC 3339 in UTC and
// accepts either an RFC 3339 string or epoch milliseconds on input.
type DateTime struct {
	time.Time
}

func (DateTime) ImplementsGraphQLType(name string) bool {
	return name == "DateTime"
}

func (t *DateTime) UnmarshalGraphQL(input any) error {
	switch v := input.(type) {
	case string:
		parsed, err := time.Parse(time.RFC3339Nano, v)
		if err != nil {
			parsed, err = time.Parse(time.DateOnly, v)
		}
		if err != nil {
			return fmt.Errorf("invalid DateTime %q", v)
		}
		t.Time = parsed
	case int32:
		t.Time = time.UnixMilli(int64(v))
	case int64:
		t.Time = time.UnixMilli(v)
	case float64:
		t.Time = time.UnixMilli(int64(v))
	default:
		return fmt.Errorf("wrong type for DateTime: %T", v)
	}
	return nil
}

func (t DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.UTC().Format(time.RFC3339Nano))
}

func newDateTime(t time.Time) DateTime {
	return DateTime{Time: t}
}

func optionalDateTime(t *time.Time) *DateTime {
	if t == nil {
		return nil
	}
	return &DateTime{Time: *t}
}

func timePtr(d *DateTime) *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time
	return &t
}

func int32Ptr(v *int) *int32 {
	if v == nil {
		return nil
	}
	n := int32(*v)
	return &n
}

func intPtr(v *int32) *int {
	if v == nil {
		return nil
	}
	n := int(*v)
	return &n
}
