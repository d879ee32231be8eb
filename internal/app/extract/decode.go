package extract

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"voice2site/internal/app/errors"
	"voice2site/internal/app/model"
)

// fieldKeys lists the accepted reply keys per WebsiteSpec field, highest priority first
var fieldKeys = map[string][]string{
	"name":     {"name", "business_name"},
	"type":     {"type", "category", "website_type"},
	"style":    {"style"},
	"services": {"services"},
}

// DecodeReply pulls the JSON object embedded in a model reply and normalises it into a
// structurally complete WebsiteSpec. Only the text between the first '{' and the last '}'
// is parsed, so prose or markdown fences around the object are ignored.
func DecodeReply(reply string) (model.WebsiteSpec, error) {
	start := strings.Index(reply, "{")
	end := strings.LastIndex(reply, "}")
	if start < 0 || end < start {
		return model.WebsiteSpec{}, errors.ErrNoJSONObject
	}

	var fields map[string]interface{}
	if err := json.Unmarshal([]byte(reply[start:end+1]), &fields); err != nil {
		return model.WebsiteSpec{}, errors.Wrap(errors.ErrInvalidJSON, err.Error())
	}

	byKey := normalizeKeys(fields)
	values := make(map[string]interface{}, len(fieldKeys))
	for field, keys := range fieldKeys {
		for _, key := range keys {
			if value, ok := byKey[key]; ok {
				values[field] = value
				break
			}
		}
	}

	return model.WebsiteSpec{
		Name:     scalar(values["name"]),
		Category: scalar(values["type"]),
		Style:    scalar(values["style"]),
		Services: list(values["services"]),
	}.Complete(), nil
}

// DecodeWithDefault is DecodeReply with a guaranteed result: on any failure the fallback is
// returned together with the decode error.
func DecodeWithDefault(reply string, fallback model.WebsiteSpec) (model.WebsiteSpec, error) {
	spec, err := DecodeReply(reply)
	if err != nil {
		return cloneSpec(fallback), err
	}
	return spec, nil
}

// normalizeKeys folds reply keys to trimmed lower case. When several keys fold to the same
// name, the exact lower-case key wins, then the lexically smallest original key.
func normalizeKeys(fields map[string]interface{}) map[string]interface{} {
	chosen := make(map[string]string, len(fields))
	for key := range fields {
		normalized := strings.ToLower(strings.TrimSpace(key))
		current, seen := chosen[normalized]
		switch {
		case !seen:
			chosen[normalized] = key
		case current == normalized:
		case key == normalized || key < current:
			chosen[normalized] = key
		}
	}

	byKey := make(map[string]interface{}, len(chosen))
	for normalized, key := range chosen {
		byKey[normalized] = fields[key]
	}
	return byKey
}

func scalar(v interface{}) string {
	switch value := v.(type) {
	case string:
		return strings.TrimSpace(value)
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(value)
	default:
		return ""
	}
}

func list(v interface{}) []string {
	switch value := v.(type) {
	case []interface{}:
		return lo.FilterMap(value, func(item interface{}, _ int) (string, bool) {
			s := scalar(item)
			return s, s != ""
		})
	case string:
		if s := strings.TrimSpace(value); s != "" {
			return []string{s}
		}
	}
	return []string{}
}

func cloneSpec(spec model.WebsiteSpec) model.WebsiteSpec {
	spec.Services = append([]string{}, spec.Services...)
	return spec
}
