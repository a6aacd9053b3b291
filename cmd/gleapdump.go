package cmd

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/karasz/gleapsecs/leapsecs"
	"github.com/karasz/glibtai"
)

// dumpRecords prints one line per record: the TAI64 label in the
// customary @-hex form, the UTC instant it takes effect, and the
// TAI-UTC offset from then on.
func dumpRecords(w io.Writer, recs []leapsecs.Record) error {
	for _, rec := range recs {
		label := glibtai.TAIUnpack(binary.BigEndian.AppendUint64(nil, rec.TAI64()))
		when := time.Unix(int64(rec.NTP-leapsecs.NTPToUnix), 0).UTC()
		if _, err := fmt.Fprintf(w, "%s  %s  TAI-UTC = %ds\n", label, when, rec.Offset); err != nil {
			return err
		}
	}
	return nil
}

// GLeapDumpRun lists the parsed leap-second table for human review.
func GLeapDumpRun(args []string) int {
	path := defaultList
	switch len(args) {
	case 0:
	case 1:
		path = args[0]
	default:
		_, _ = fmt.Println("unknown number of arguments. Please use 0 or 1")
		return 111
	}

	recs, err := leapsecs.ParseFile(path)
	if err != nil {
		_, _ = fmt.Println(err)
		return 111
	}

	output := bufio.NewWriter(os.Stdout)
	if err := dumpRecords(output, recs); err != nil {
		_, _ = fmt.Println(err)
		return 111
	}
	if err := output.Flush(); err != nil {
		_, _ = fmt.Println(err)
		return 111
	}
	return 0
}
