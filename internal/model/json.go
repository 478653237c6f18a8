package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// UnmarshalJSON accepts both "42" and 42 on the wire.
func (g *GoalID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*g = GoalID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*g = GoalID(n.String())
		return nil
	}
	return fmt.Errorf("goal id: expected string or number, got %s", data)
}

// StringSlice is a []string stored as a JSON column.
type StringSlice []string

// IDSlice is a list of goal ids stored as a JSON column. Elements tolerate
// numeric ids the same way GoalID does.
type IDSlice []GoalID

func (s StringSlice) Value() (driver.Value, error)       { return jsonValue(s) }
func (s *StringSlice) Scan(src any) error                { return jsonScan(s, src) }
func (s IDSlice) Value() (driver.Value, error)           { return jsonValue(s) }
func (s *IDSlice) Scan(src any) error                    { return jsonScan(s, src) }
func (g GoalLists) Value() (driver.Value, error)         { return jsonValue(g) }
func (g *GoalLists) Scan(src any) error                  { return jsonScan(g, src) }
func (c CheckIn) Value() (driver.Value, error)           { return jsonValue(c) }
func (c *CheckIn) Scan(src any) error                    { return jsonScan(c, src) }
func (s SOAP) Value() (driver.Value, error)              { return jsonValue(s) }
func (s *SOAP) Scan(src any) error                       { return jsonScan(s, src) }
func (r LeadershipRating) Value() (driver.Value, error)  { return jsonValue(r) }
func (r *LeadershipRating) Scan(src any) error           { return jsonScan(r, src) }

func jsonValue(v any) (driver.Value, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func jsonScan(dst any, src any) error {
	switch s := src.(type) {
	case nil:
		return nil
	case []byte:
		if len(s) == 0 {
			return nil
		}
		return json.Unmarshal(s, dst)
	case string:
		if s == "" {
			return nil
		}
		return json.Unmarshal([]byte(s), dst)
	default:
		return fmt.Errorf("scan json column: unsupported type %T", src)
	}
}
