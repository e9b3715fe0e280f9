package assistant

import "strings"

// ParseLine splits an input line into a lowercased command and its arguments.
// Arguments keep their original case (contact names are case-sensitive).
// An empty or all-whitespace line yields an empty command.
func ParseLine(line string) (string, []string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	return strings.ToLower(fields[0]), fields[1:]
}
