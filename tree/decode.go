package tree

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"
)

// TagName is the struct tag Decode reads field names from.
const TagName = "srcfg"

// ToMap returns an untyped view of the section: entries as strings, single
// sections as map[string]any and arrays as []any of maps. A child section
// hides an entry of the same name.
func (s *Section) ToMap() map[string]any {
	out := make(map[string]any, len(s.entries)+len(s.nodes))
	for key, value := range s.entries {
		out[key] = value
	}

	nodesToMap(out, &s.children)

	return out
}

// ToMap returns an untyped view of the whole file.
func (f *File) ToMap() map[string]any {
	out := make(map[string]any, len(f.nodes))
	nodesToMap(out, &f.children)

	return out
}

func nodesToMap(out map[string]any, c *children) {
	for name, node := range c.nodes {
		switch node := node.(type) {
		case *Section:
			out[name] = node.ToMap()
		case *Array:
			list := make([]any, 0, len(node.Sections))
			for _, section := range node.Sections {
				list = append(list, section.ToMap())
			}

			out[name] = list
		}
	}
}

// Decode fills target, a pointer to a struct or map, from the section.
// Stored strings are converted to the field types on the way: numbers,
// booleans, time.Duration and comma separated slices are understood.
func (s *Section) Decode(target any) error {
	return decode(s.ToMap(), target)
}

// Decode fills target from the whole file.
func (f *File) Decode(target any) error {
	return decode(f.ToMap(), target)
}

func decode(input map[string]any, target any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
		WeaklyTypedInput: true,
		Result:           target,
		TagName:          TagName,
	})
	if err != nil {
		return fmt.Errorf("creating decoder: %w", err)
	}

	err = decoder.Decode(input)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConversion, err)
	}

	return nil
}
