package sw64

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// variationLabel is the field name the SW64 kernel uses in /proc/cpuinfo to
// report the CPU generation.
const variationLabel = "cpu variation"

// variationModels maps a reported variation code to the model name it
// identifies. The table is fixed architecture knowledge: codes outside it
// leave the host model undetermined, which is not an error.
var variationModels = map[uint64]string{
	3: "core3",
	4: "core4",
}

// isSpace reports whether c is ASCII whitespace, matching what the kernel
// may emit between the label, the colon, and the value.
func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func skipSpace(s string) string {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	return s[i:]
}

// parseVariationLine extracts the variation code from a single cpuinfo line.
// Lines that do not carry the label are reported as non-matching, including
// lines where the label is merely the prefix of a longer token (no colon
// where one is expected). A line that does carry the label but is missing
// its value, or whose value is not a well-terminated base-10 integer, is
// malformed.
func parseVariationLine(line string) (code uint64, ok bool, err error) {
	rest, found := strings.CutPrefix(line, variationLabel)
	if !found {
		return 0, false, nil
	}

	rest = skipSpace(rest)
	if rest == "" {
		return 0, false, ErrMalformedCPUInfo
	}

	// Anything but a colon here means the label was a prefix of some longer
	// token; treat the line as a non-match and move on.
	if rest[0] != ':' {
		return 0, false, nil
	}

	rest = skipSpace(rest[1:])
	if rest == "" {
		return 0, false, ErrMalformedCPUInfo
	}

	end := 0
	for end < len(rest) && rest[end] >= '0' && rest[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false, ErrMalformedCPUInfo
	}
	code, perr := strconv.ParseUint(rest[:end], 10, 32)
	if perr != nil {
		return 0, false, ErrMalformedCPUInfo
	}

	// The value may be followed by end-of-line, whitespace, or a dotted
	// sub-revision; any other trailing character invalidates the line.
	if end < len(rest) && rest[end] != '.' && !isSpace(rest[end]) {
		return 0, false, ErrMalformedCPUInfo
	}

	return code, true, nil
}

// scanVariation reads the host information stream to the end and returns the
// variation code of the last matching line. When no line matches, found is
// false and the code is zero; that is a successful scan with an
// undetermined variation, a deliberate leniency towards hosts whose kernel
// omits the field.
func scanVariation(r io.Reader) (code uint64, found bool, err error) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		c, ok, err := parseVariationLine(scanner.Text())
		if err != nil {
			return 0, false, err
		}
		if ok {
			code = c
			found = true
		}
	}
	if err := scanner.Err(); err != nil {
		return 0, false, err
	}
	return code, found, nil
}

// detectHostModel reads the host information source at path and returns the
// model name the host implements, or "" when the variation code is unknown
// or absent.
func detectHostModel(path string) (string, error) {
	cpuinfo, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("cannot open %s: %w", path, err)
	}
	defer cpuinfo.Close()

	code, found, err := scanVariation(cpuinfo)
	if err != nil {
		return "", fmt.Errorf("%w in %s", err, path)
	}
	if !found {
		return "", nil
	}
	return variationModels[code], nil
}
