package main

import (
	"os"
)

const usage = `usage: antivibe <command> [flags]

commands:
  tui       interactive hint panel (default)
  hint      get a hint for a file and print it
  analyze   analyze a file (not available yet)
  ping      check that the hint backend is reachable
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
