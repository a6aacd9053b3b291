package leapsecs

import (
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	input := "#\tleap-seconds.list\n" +
		"#\tupdated through IERS Bulletin C\n" +
		"#\n" +
		"2272060800\t10\t# 1 Jan 1972\n" +
		"2287785600\t11\t# 1 Jul 1972\n" +
		"\n" +
		"2303683200\t12\t# 1 Jan 1973\n"

	recs, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	want := []Record{
		{NTP: 2272060800, Offset: 10},
		{NTP: 2287785600, Offset: 11},
		{NTP: 2303683200, Offset: 12},
	}
	if len(recs) != len(want) {
		t.Fatalf("Parse returned %d records, want %d", len(recs), len(want))
	}
	for i, rec := range recs {
		if rec != want[i] {
			t.Errorf("record %d = %+v, want %+v", i, rec, want[i])
		}
	}
}

func TestParseOnlyCommentsAndBlanks(t *testing.T) {
	input := "# just a comment\n\n#h\t43e7a160 3c265b22 5f4e22eb 61bfd7c1 a4a0e868\n\n"

	recs, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(recs) != 0 {
		t.Errorf("Parse returned %d records, want 0", len(recs))
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"bad timestamp", "not_a_number 5\n"},
		{"bad offset", "2272060800 ten\n"},
		{"single field", "2272060800\n"},
		{"bad line after good one", "2272060800 10\nbogus line here\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(strings.NewReader(tt.input)); err == nil {
				t.Errorf("Parse(%q) did not fail", tt.input)
			}
		})
	}
}

func TestParseIgnoresExtraFields(t *testing.T) {
	recs, err := Parse(strings.NewReader("2272060800  10  # 1 Jan 1972\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("Parse returned %d records, want 1", len(recs))
	}
	if recs[0].NTP != 2272060800 || recs[0].Offset != 10 {
		t.Errorf("record = %+v, want {2272060800 10}", recs[0])
	}
}

func TestRecordTAI64(t *testing.T) {
	tests := []struct {
		name string
		rec  Record
		want uint64
	}{
		{"first leap second", Record{NTP: 2272060800, Offset: 10}, 0x4000000003c26700},
		{"second leap second", Record{NTP: 2287785600, Offset: 11}, 0x4000000004b25800},
		{"last leap second", Record{NTP: 3692217600, Offset: 37}, 0x4000000058684680},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rec.TAI64(); got != tt.want {
				t.Errorf("TAI64() = %#016x, want %#016x", got, tt.want)
			}
		})
	}
}
