package monitor

import (
	"errors"
	"strconv"
	"strings"
)

const (
	linePrefix = "Frequency is "
	lineSuffix = " Hz"
)

var (
	ErrBadLine  = errors.New("line does not match the report format")
	ErrBadValue = errors.New("report value is not a valid frequency")
)

// ParseLine extracts the frequency from one report line (already stripped
// of its trailing CRLF). The format is strict: exactly
// "Frequency is <decimal> Hz" with no leading zeros.
func ParseLine(line string) (uint16, error) {
	if !strings.HasPrefix(line, linePrefix) || !strings.HasSuffix(line, lineSuffix) {
		return 0, ErrBadLine
	}
	digits := line[len(linePrefix) : len(line)-len(lineSuffix)]
	if digits == "" {
		return 0, ErrBadLine
	}
	if digits[0] == '0' && len(digits) > 1 {
		return 0, ErrBadValue
	}
	n, err := strconv.ParseUint(digits, 10, 16)
	if err != nil {
		return 0, ErrBadValue
	}
	return uint16(n), nil
}
