package utils

import (
	"fmt"
	"strings"
)

// ListDelimiter separates items in list expressions such as "auth|redis"
// or "required|min:3".
const ListDelimiter = "|"

// Split turns a delimited list expression into its items.
//
// A string is split on [ListDelimiter]; a []string is returned unchanged;
// a []any (as decoded from YAML or JSON) is converted item by item, with
// non-string items formatted via fmt; any other value yields nil. Split is idempotent: Split(Split(x)) equals
// Split(x).
func Split(value any) []string {
	switch v := value.(type) {
	case string:
		return strings.Split(v, ListDelimiter)
	case []string:
		return v
	case []any:
		items := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				items = append(items, s)
				continue
			}
			items = append(items, fmt.Sprint(item))
		}
		return items
	default:
		return nil
	}
}
