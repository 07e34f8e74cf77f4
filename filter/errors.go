package filter

import "fmt"

// Error reports an unknown operator key or a malformed shape in a filter
// document. Key names the offending document key.
type Error struct {
	Key    string
	Reason string
}

func (e Error) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("invalid filter: %s", e.Reason)
	}
	return fmt.Sprintf("invalid filter key %q: %s", e.Key, e.Reason)
}
