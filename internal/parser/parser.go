package parser

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"simplesh/internal/slice"
	"strings"
)

// Delimiters separate tokens: space, tab, carriage return, newline and bell.
const Delimiters = " \t\r\n\a"

// Read returns the next newline-terminated line without its terminator.
// io.EOF is returned once no complete line is left; a trailing partial line
// is dropped.
func Read(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')

	switch {
	case errors.Is(err, io.EOF):
		return "", io.EOF
	case err != nil:
		return "", fmt.Errorf("read line: %w", err)
	}

	return strings.TrimSuffix(line, "\n"), nil
}

func Split(line string) []string {
	return SplitAny(line, Delimiters)
}

// SplitAny cuts line at every run of bytes from delims. Quotes and
// backslashes have no special meaning.
func SplitAny(line string, delims string) []string {
	res := []string{}

	for i := 0; i < len(line); {
		i = slice.SkipAny(line, i, delims)
		if i == len(line) {
			break
		}

		end := slice.SkipNone(line, i, delims)
		res = append(res, line[i:end])
		i = end
	}

	return res
}
