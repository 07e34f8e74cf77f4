package sqltomongo

import (
	"encoding/json"
	"fmt"
	"sort"
)

// SortPair is one (field, direction) sort entry. Direction is 1 for
// ascending and -1 for descending. On the wire it is a two-element array,
// e.g. ["age", 1].
type SortPair struct {
	Field     string
	Direction int
}

func (p SortPair) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{p.Field, p.Direction})
}

func (p *SortPair) UnmarshalJSON(data []byte) error {
	var raw []any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw) != 2 {
		return fmt.Errorf("sort entry must be a [field, direction] pair, got %s", data)
	}
	field, ok := raw[0].(string)
	if !ok {
		return fmt.Errorf("sort field must be a string, got %v", raw[0])
	}
	direction, ok := raw[1].(float64)
	if !ok {
		return fmt.Errorf("sort direction must be a number, got %v", raw[1])
	}
	p.Field = field
	p.Direction = int(direction)
	return nil
}

func sortedProjection(m map[string]int) []string {
	fields := make([]string, 0, len(m))
	for field := range m {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}
