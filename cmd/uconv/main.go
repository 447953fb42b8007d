package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/unicode-conv/codec"
)

func main() {
	var (
		inFile      = flag.String("in", "", "Input file (default stdin)")
		outFile     = flag.String("out", "", "Output file (default stdout)")
		from        = flag.String("from", "auto", "Source encoding: utf8, utf16le, utf16be, auto")
		to          = flag.String("to", "utf8", "Destination encoding: utf8, utf16le, utf16be")
		bom         = flag.Bool("bom", false, "Prepend a byte order mark to the output")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		verbose     = flag.Bool("v", false, "Verbose logging")
	)
	flag.Parse()

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: create logger: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		codec.SetLogger(logger)
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode requires a terminal")
			os.Exit(1)
		}
		if err := runInteractive(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*inFile, *outFile, *from, *to, *bom); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(inFile, outFile, from, to string, withBOM bool) error {
	data, err := readInput(inFile)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	out, err := convertData(data, from, to, withBOM)
	if err != nil {
		return err
	}

	if err := writeOutput(outFile, out); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func readInput(name string) ([]byte, error) {
	if name == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(name)
}

func writeOutput(name string, data []byte) error {
	if name == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(name, data, 0o644)
}
