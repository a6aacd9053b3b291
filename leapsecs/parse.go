// Package leapsecs parses the IETF leap-seconds.list file and produces
// the data tables used by libtai-style TAI/UTC conversion code.
package leapsecs

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// NTPToUnix is the number of seconds between the NTP epoch
// (1900-01-01) and the Unix epoch (1970-01-01).
const NTPToUnix = 2208988800

// TAI64Base is the TAI64 label bit marking a valid absolute timestamp.
const TAI64Base = uint64(0x4000000000000000)

// Max is the capacity of the generated leapsecs_table.
const Max = 256

// Record is one entry of leap-seconds.list: the NTP timestamp at which
// a new TAI-UTC offset takes effect, and the offset itself.
type Record struct {
	NTP    uint64 // seconds since 1900-01-01
	Offset int64  // cumulative TAI-UTC offset in seconds
}

// TAI64 returns the record's instant as a TAI64 label.
func (r Record) TAI64() uint64 {
	return r.NTP - NTPToUnix + TAI64Base
}

// parseLine parses one non-comment, non-blank line. The first two
// whitespace-separated fields must be integers; extra fields such as
// the customary date comment are ignored.
func parseLine(line string, lineno int) (Record, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return Record{}, fmt.Errorf("line %d: want at least 2 fields, got %d", lineno, len(fields))
	}

	ntp, err := strconv.ParseUint(fields[0], 10, 64)
	if err != nil {
		return Record{}, fmt.Errorf("line %d: bad NTP timestamp %q", lineno, fields[0])
	}

	offset, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		return Record{}, fmt.Errorf("line %d: bad TAI-UTC offset %q", lineno, fields[1])
	}

	return Record{NTP: ntp, Offset: offset}, nil
}

// Parse reads leap-second records in file order. Blank lines and lines
// starting with '#' contribute no records. Order is not validated; the
// consumers assume the file is already in ascending order.
func Parse(r io.Reader) ([]Record, error) {
	var recs []Record

	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		rec, err := parseLine(line, lineno)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return recs, nil
}

// ParseFile reads records from the file at path.
func ParseFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	recs, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %v", path, err)
	}
	return recs, nil
}
