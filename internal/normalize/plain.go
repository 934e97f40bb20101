// Package normalize converts heterogeneous stored CV records into the
// canonical, null-safe document tree the layout engine consumes.
package normalize

import "encoding/json"

// Plainer is implemented by storage wrappers that can materialize
// themselves into plain data (lazy documents, row wrappers).
type Plainer interface {
	ToPlain() map[string]any
}

// storageInternalFields are identifier/bookkeeping fields imposed by the
// storage layer. They are stripped so the layout engine never sees them.
var storageInternalFields = map[string]bool{
	"_id":        true,
	"__v":        true,
	"id":         true,
	"user_id":    true,
	"created_at": true,
	"updated_at": true,
	"createdAt":  true,
	"updatedAt":  true,
}

// ToPlainValue collapses storage-representation indirection into plain
// JSON-safe values. It is applied once at the normalizer boundary so
// downstream code never branches on storage representation:
//   - Plainer wrappers are materialized
//   - json.RawMessage is decoded
//   - maps are copied with storage-internal fields stripped
//   - anything else is round-tripped through JSON
func ToPlainValue(x any) any {
	switch v := x.(type) {
	case nil:
		return nil
	case Plainer:
		return ToPlainValue(v.ToPlain())
	case json.RawMessage:
		var out any
		if err := json.Unmarshal(v, &out); err != nil {
			return nil
		}
		return ToPlainValue(out)
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, val := range v {
			if storageInternalFields[k] {
				continue
			}
			out[k] = ToPlainValue(val)
		}
		return out
	case []any:
		out := make([]any, 0, len(v))
		for _, item := range v {
			out = append(out, ToPlainValue(item))
		}
		return out
	case string, bool, float64, int, int64, float32:
		return v
	default:
		// Structs, typed maps, pointers: materialize through JSON.
		data, err := json.Marshal(v)
		if err != nil {
			return nil
		}
		var out any
		if err := json.Unmarshal(data, &out); err != nil {
			return nil
		}
		return ToPlainValue(out)
	}
}
