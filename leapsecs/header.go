package leapsecs

import (
	"fmt"
	"io"
	"strings"
)

// WriteHeader emits the static C data table included by libtai-style
// conversion code. The consumer declares struct tai { uint64_t x; }
// before including the result and treats slots past
// LEAPSECS_INIT_COUNT as not in use; static storage keeps them zero.
// Identical records produce byte-identical output.
func WriteHeader(w io.Writer, recs []Record) error {
	if len(recs) > Max {
		return fmt.Errorf("%d leap seconds exceed the table capacity of %d", len(recs), Max)
	}

	var b strings.Builder
	b.WriteString("/* Auto-generated from leap-seconds.list */\n")
	b.WriteString("#ifndef TAI_LEAPSECS_DAT_H\n#define TAI_LEAPSECS_DAT_H\n\n")
	fmt.Fprintf(&b, "#define LEAPSECS_MAX %d\n", Max)
	fmt.Fprintf(&b, "#define LEAPSECS_INIT_COUNT %d\n\n", len(recs))
	b.WriteString("static struct tai leapsecs_table[LEAPSECS_MAX] = {\n")

	for i, rec := range recs {
		fmt.Fprintf(&b, "  { .x = 0x%016xULL }", rec.TAI64())
		if i < len(recs)-1 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "  /* TAI-UTC = %ds */\n", rec.Offset)
	}

	b.WriteString("  /* Remaining entries initialized to zero */\n")
	b.WriteString("};\n\n#endif\n")

	_, err := io.WriteString(w, b.String())
	return err
}
