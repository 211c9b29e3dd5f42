package logging

import "sort"

type field struct {
	key   string
	value interface{}
}

// mergeFields flattens key/value lists into ordered fields. Later keys
// override earlier ones in place. Extras only fill keys the entry does not
// already carry; they are appended in sorted key order and skipped when empty.
func mergeFields(base []interface{}, additions []interface{}, extras map[string]interface{}) []field {
	store := make(map[string]interface{})
	order := make([]string, 0)

	addPair := func(key string, value interface{}) {
		if key == "" {
			return
		}
		if _, exists := store[key]; !exists {
			order = append(order, key)
		}
		store[key] = value
	}

	process := func(values []interface{}) {
		for i := 0; i+1 < len(values); i += 2 {
			key, ok := values[i].(string)
			if !ok {
				continue
			}
			addPair(key, values[i+1])
		}
	}

	process(base)
	process(additions)

	extraKeys := make([]string, 0, len(extras))
	for key, value := range extras {
		if value == nil {
			continue
		}
		if s, ok := value.(string); ok && s == "" {
			continue
		}
		if _, exists := store[key]; exists {
			continue
		}
		extraKeys = append(extraKeys, key)
	}
	sort.Strings(extraKeys)
	for _, key := range extraKeys {
		addPair(key, extras[key])
	}

	result := make([]field, 0, len(order))
	for _, key := range order {
		result = append(result, field{key: key, value: store[key]})
	}
	return result
}
