package leapsecs

import (
	"encoding/binary"
	"fmt"
)

// LabelSize is the packed size of one TAI64 label in bytes.
const LabelSize = 8

// Table holds the TAI64 labels of the leap seconds in file order,
// which for well-formed input is ascending.
type Table []uint64

// NewTable converts parsed records to their TAI64 labels.
func NewTable(recs []Record) Table {
	tbl := make(Table, len(recs))
	for i, rec := range recs {
		tbl[i] = rec.TAI64()
	}
	return tbl
}

// Add converts a leap-free second count into a TAI64 label by
// reinserting the leap seconds recorded at or before it. hit marks the
// input as a leap second itself (a :60 calendar second).
func (tbl Table) Add(u uint64, hit bool) uint64 {
	for _, ls := range tbl {
		if u < ls {
			break
		}
		if !hit || u > ls {
			u++
		}
	}
	return u
}

// Sub removes the leap seconds contained in the TAI64 label u. The
// second result reports whether u lands exactly on a leap second.
func (tbl Table) Sub(u uint64) (uint64, bool) {
	var s uint64
	for _, ls := range tbl {
		if u < ls {
			break
		}
		s++
		if u == ls {
			return u - s, true
		}
	}
	return u - s, false
}

// Pack renders the table in the raw format leapsecs_read consumers
// expect: one big-endian 8-byte label per entry.
func (tbl Table) Pack() []byte {
	out := make([]byte, 0, len(tbl)*LabelSize)
	for _, ls := range tbl {
		out = binary.BigEndian.AppendUint64(out, ls)
	}
	return out
}

// ReadTable parses the raw packed format back into a Table.
func ReadTable(data []byte) (Table, error) {
	if len(data)%LabelSize != 0 {
		return nil, fmt.Errorf("leap-second data length %d is not a multiple of %d", len(data), LabelSize)
	}

	count := len(data) / LabelSize
	if count > Max {
		return nil, fmt.Errorf("%d leap seconds exceed the table capacity of %d", count, Max)
	}

	tbl := make(Table, count)
	for i := range tbl {
		tbl[i] = binary.BigEndian.Uint64(data[i*LabelSize:])
	}
	return tbl, nil
}
