package event

import "encoding/json"

// DecodePayload decodes an event payload into T via type assertion then JSON fallback.
// In-process publishers hand over the struct itself; dead-letter replays and
// generic consumers go through the JSON round-trip.
func DecodePayload[T any](input any) (T, error) {
	if v, ok := input.(T); ok {
		return v, nil
	}
	var result T
	data, err := json.Marshal(input)
	if err != nil {
		return result, err
	}
	return result, json.Unmarshal(data, &result)
}
