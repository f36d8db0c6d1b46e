package newsportal

import (
	"sort"
	"strings"
)

// ParseTagNames splits tag input the way tag widgets do: quoted names are kept whole,
// commas separate names when present, otherwise whitespace does. The result is sorted and unique.
func ParseTagNames(input string) []string {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil
	}

	var (
		names []string
		rest  strings.Builder
	)

	for {
		start := strings.IndexByte(input, '"')
		if start < 0 {
			break
		}
		end := strings.IndexByte(input[start+1:], '"')
		if end < 0 {
			break
		}
		rest.WriteString(input[:start])
		rest.WriteString(" ")
		names = append(names, input[start+1:start+1+end])
		input = input[start+end+2:]
	}
	rest.WriteString(input)

	remaining := rest.String()
	if strings.Contains(remaining, ",") {
		names = append(names, strings.Split(remaining, ",")...)
	} else {
		names = append(names, strings.Fields(remaining)...)
	}

	seen := make(map[string]struct{}, len(names))
	r := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		r = append(r, name)
	}
	sort.Strings(r)

	return r
}
