package main

import (
	"os"
	"path/filepath"

	"github.com/karasz/gleapsecs/cmd"
)

func main() {
	_, calledAs := filepath.Split(os.Args[0])
	args := os.Args[1:]
	res := 0
	switch calledAs {
	case "gleapgen":
		res = cmd.GLeapGenRun(args)
	case "gleapdat":
		res = cmd.GLeapDatRun(args)
	case "gleapdump":
		res = cmd.GLeapDumpRun(args)
	default:
		res = cmd.MainDispatcher(args)
	}
	os.Exit(res)
}
