package validate

import "github.com/BaSui01/fusionbrain-go/types"

// ModelInfo builds a catalogue model entry. id, name, version and type are all
// required; the error lists each failing field and which ones were found.
func ModelInfo(v any) (types.ModelInfo, error) {
	c, err := newChecker("ModelInfo", v)
	if err != nil {
		return types.ModelInfo{}, err
	}

	m := types.ModelInfo{
		ID:      c.requireInteger("id"),
		Name:    c.requireString("name", true),
		Version: c.requireNumber("version"),
		Type:    c.requireString("type", true),
	}
	if err := c.err(); err != nil {
		return types.ModelInfo{}, err
	}
	return m, nil
}

// StyleInfo builds a catalogue style entry with the same all-or-fail policy.
func StyleInfo(v any) (types.StyleInfo, error) {
	c, err := newChecker("StyleInfo", v)
	if err != nil {
		return types.StyleInfo{}, err
	}

	s := types.StyleInfo{
		Name:    c.requireString("name", false),
		Title:   c.requireString("title", true),
		TitleEn: c.requireString("titleEn", true),
		Image:   c.requireString("image", true),
	}
	if err := c.err(); err != nil {
		return types.StyleInfo{}, err
	}
	return s, nil
}

// ModelList validates a models listing. One bad element fails the listing.
func ModelList(v any) ([]types.ModelInfo, error) {
	return list(v, "ModelInfo", ModelInfo)
}

// StyleList validates a styles listing. One bad element fails the listing.
func StyleList(v any) ([]types.StyleInfo, error) {
	return list(v, "StyleInfo", StyleInfo)
}

func list[T any](v any, entity string, parse func(any) (T, error)) ([]T, error) {
	arr, ok := v.([]any)
	if !ok {
		return nil, &Error{
			Entity:   entity + " list",
			Index:    -1,
			Fields:   []FieldError{{Field: "$", Problem: wrongType(v, "array")}},
			notArray: true,
		}
	}

	out := make([]T, 0, len(arr))
	for i, item := range arr {
		entry, err := parse(item)
		if err != nil {
			if ve, ok := AsError(err); ok {
				ve.Index = i
			}
			return nil, err
		}
		out = append(out, entry)
	}
	return out, nil
}
