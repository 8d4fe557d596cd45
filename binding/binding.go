// Package binding substitutes ${...} placeholders in text content with
// values looked up in caller-supplied data, typically a decoded JSON
// document.
package binding

import (
	"fmt"
	"strconv"
	"strings"
)

// Interpolate replaces every `${path}` placeholder in text with the
// value found at that path in data. Paths use dotted keys with
// optional `[n]` indexes, e.g. `${speakers[0].name}`. A placeholder
// whose path does not resolve is left verbatim so a typo is visible
// on the slide instead of silently blank.
func Interpolate(text string, data any) string {
	if !strings.Contains(text, "${") {
		return text
	}

	var out strings.Builder
	out.Grow(len(text))
	for i := 0; i < len(text); {
		start := strings.Index(text[i:], "${")
		if start < 0 {
			out.WriteString(text[i:])
			break
		}
		start += i
		end := strings.IndexByte(text[start:], '}')
		if end < 0 {
			out.WriteString(text[i:])
			break
		}
		end += start

		out.WriteString(text[i:start])
		path := text[start+2 : end]
		if value, ok := lookup(data, path); ok {
			out.WriteString(render(value))
		} else {
			out.WriteString(text[start : end+1])
		}
		i = end + 1
	}
	return out.String()
}

func lookup(data any, path string) (any, bool) {
	cur := data
	for _, seg := range splitPath(path) {
		if seg == "" {
			return nil, false
		}
		if idx, err := strconv.Atoi(seg); err == nil {
			list, ok := cur.([]any)
			if !ok || idx < 0 || idx >= len(list) {
				return nil, false
			}
			cur = list[idx]
			continue
		}
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = obj[seg]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// splitPath turns `speakers[0].name` into ["speakers", "0", "name"].
func splitPath(path string) []string {
	var segs []string
	var cur strings.Builder
	flush := func() {
		segs = append(segs, cur.String())
		cur.Reset()
	}
	for _, r := range path {
		switch r {
		case '.', '[':
			flush()
		case ']':
		default:
			cur.WriteRune(r)
		}
	}
	flush()
	return segs
}

func render(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprint(v)
	}
}
