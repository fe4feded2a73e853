package main

import (
	"fmt"
	"os"

	argparser "github.com/pum1k/arg-parser"
)

func main() {
	input := argparser.String("input", "File to process", true, "")
	output := argparser.String("output", "Destination file, stdout when omitted", false, "-")
	count := argparser.IntOpt([]string{"-n", "--count"}, "Number of repetitions", 1)
	verbose := argparser.Flag([]string{"-v", "--verbose"}, "Enable verbose output")
	help := argparser.Flag([]string{"-h", "--help"}, "Show this help message")
	version := argparser.Flag([]string{"--version"}, "Show version information")
	tail := argparser.Tail([]string{"--"}, "Pass the remaining arguments through")

	opts := []argparser.Option{input, output, count, verbose, help, version, tail}

	ok, unrecognized, err := argparser.Parse(os.Args, opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error parsing arguments:", err)
		os.Exit(1)
	}
	if help.Value() {
		argparser.PrintHelp(os.Stdout, "example", opts)
		os.Exit(0)
	}
	if version.Value() {
		fmt.Println(argparser.BuildVersion("example", "0.1.0"))
		os.Exit(0)
	}
	if !ok {
		fmt.Fprintln(os.Stderr, "Unrecognized arguments:", unrecognized)
	}

	fmt.Printf("input=%q output=%q count=%d verbose=%v passthrough=%v\n",
		input.Value(), output.Value(), count.Value(), verbose.Value(), tail.Values())
}
