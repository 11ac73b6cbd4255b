package backend

import (
	"bytes"
	"encoding/json"
)

// valueList absorbs the backend's list envelope. Depending on the serializer
// settings upstream, a list payload arrives either as a bare JSON array or
// wrapped as {"$values": [...]}; both decode into Values.
type valueList[T any] struct {
	Values []T
}

func (v *valueList[T]) UnmarshalJSON(b []byte) error {
	trimmed := bytes.TrimSpace(b)
	if len(trimmed) == 0 || string(trimmed) == "null" {
		v.Values = nil
		return nil
	}
	if trimmed[0] == '[' {
		return json.Unmarshal(trimmed, &v.Values)
	}
	var wrapped struct {
		Values []T `json:"$values"`
	}
	if err := json.Unmarshal(trimmed, &wrapped); err != nil {
		return err
	}
	v.Values = wrapped.Values
	return nil
}
