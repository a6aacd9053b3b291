package cmd

import (
	"fmt"
	"os"
)

// MainDispatcher is called if run as "gleapsecs <subcommand>"
func MainDispatcher(args []string) int {
	ret := 0
	if len(args) == 0 {
		_, _ = fmt.Println("Available applets: gleapgen,gleapdat,gleapdump")
		ret = 1
		return ret
	}

	switch args[0] {
	case "gleapgen":
		ret = GLeapGenRun(args[1:])
	case "gleapdat":
		ret = GLeapDatRun(args[1:])
	case "gleapdump":
		ret = GLeapDumpRun(args[1:])

	default:
		_, _ = fmt.Fprintf(os.Stderr, "Unknown command: %s\n", args[0])
		ret = 1
	}
	return ret
}
