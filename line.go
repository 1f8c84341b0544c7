package srcfg

import (
	"regexp"
	"strings"
	"unicode"
)

// opRaw assigns a value without interpolation; "=" interpolates.
const opRaw = ":="

var (
	sectionHeaderRe = regexp.MustCompile(`^\[([\sA-Za-z0-9_.-]+)\]$`)
	arrayHeaderRe   = regexp.MustCompile(`^\[\[([A-Za-z0-9_.-]+)\]\]$`)
	assignmentRe    = regexp.MustCompile(`^\s*([A-Za-z0-9_-]*)\s*(:?=)(.*)$`)
)

// parseHeader extracts the section path from a trimmed "[name]" or
// "[[name]]" line.
func parseHeader(trimmed string) (name string, isArray, ok bool) {
	if m := sectionHeaderRe.FindStringSubmatch(trimmed); m != nil {
		name = strings.TrimSpace(m[1])

		return name, false, name != ""
	}

	if m := arrayHeaderRe.FindStringSubmatch(trimmed); m != nil {
		return m[1], true, true
	}

	return "", false, false
}

// parseAssignment splits a "key = value" or "key := value" line. The key may
// be empty for continuation lines; raw is everything after the operator.
func parseAssignment(text string) (key, op, raw string, ok bool) {
	m := assignmentRe.FindStringSubmatch(text)
	if m == nil {
		return "", "", "", false
	}

	return m[1], m[2], m[3], true
}

// splitDirective splits a trimmed "@name argument" line.
func splitDirective(trimmed string) (name, arg string) {
	body := trimmed[1:]

	idx := strings.IndexFunc(body, unicode.IsSpace)
	if idx < 0 {
		return body, ""
	}

	return body[:idx], strings.TrimSpace(body[idx:])
}
