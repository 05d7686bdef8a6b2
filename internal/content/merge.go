package content

import "encoding/json"

// Merge layers stored overrides on top of the baseline tab map. The merge is
// shallow per tab with two exceptions carried over from the export format:
//
//   - a body present in the override replaces the baseline body wholesale,
//     never element-by-element;
//   - contactDetails is merged key-by-key, so an override that only changes
//     the recipient keeps the baseline labels and messages.
//
// Nil override values are ignored, arrays replace, records shallow-merge,
// scalars replace. Neither input is mutated.
func Merge(base, overrides map[string]any) map[string]any {
	merged := make(map[string]any, len(base))
	for key, value := range base {
		merged[key] = value
	}

	for key, value := range overrides {
		if value == nil {
			continue
		}

		switch typed := value.(type) {
		case []any:
			merged[key] = append([]any(nil), typed...)
		case map[string]any:
			merged[key] = mergeRecord(base[key], typed)
		default:
			merged[key] = value
		}
	}

	return merged
}

func mergeRecord(baseValue any, override map[string]any) map[string]any {
	next := map[string]any{}
	baseRecord, _ := baseValue.(map[string]any)
	for key, value := range baseRecord {
		next[key] = value
	}
	for key, value := range override {
		next[key] = value
	}

	if body, ok := override["body"].([]any); ok {
		next["body"] = append([]any(nil), body...)
	}

	overrideContact, hasOverride := override["contactDetails"].(map[string]any)
	baseContact, hasBase := baseRecord["contactDetails"].(map[string]any)
	if hasOverride || hasBase {
		contact := map[string]any{}
		for key, value := range baseContact {
			contact[key] = value
		}
		for key, value := range overrideContact {
			contact[key] = value
		}
		next["contactDetails"] = contact
	}

	return next
}

// MergeContent applies raw stored overrides to typed baseline content.
// A nil or empty override set returns a copy of the baseline unchanged.
func MergeContent(base ContentMap, overrides map[string]any) (ContentMap, error) {
	if len(overrides) == 0 {
		return base.Clone(), nil
	}

	raw, err := toRecord(base)
	if err != nil {
		return nil, err
	}

	merged := Merge(raw, overrides)

	data, err := json.Marshal(merged)
	if err != nil {
		return nil, err
	}
	var out ContentMap
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func toRecord(value any) (map[string]any, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}
