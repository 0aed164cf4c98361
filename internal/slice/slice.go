package slice

import "strings"

// SkipAny returns the first index at or after id whose byte is not in set.
func SkipAny(line string, id int, set string) int {
	for id < len(line) && strings.IndexByte(set, line[id]) >= 0 {
		id++
	}

	return id
}

// SkipNone returns the first index at or after id whose byte is in set.
func SkipNone(line string, id int, set string) int {
	for id < len(line) && strings.IndexByte(set, line[id]) < 0 {
		id++
	}

	return id
}
