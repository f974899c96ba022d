// Package main provides the entry point for armdec.
// armdec decodes 32-bit ARM (ARMv4T) machine code into structured instructions.
//
// For the full CLI, use: go run ./cmd/armdecode
package main

import (
	"fmt"
	"io"
	"os"
)

func main() {
	printUsage(os.Stdout)

	if len(os.Args) > 1 {
		fmt.Println("\nNote: You provided arguments. Use 'go run ./cmd/armdecode' instead.")
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "armdec - ARM instruction decoder")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Usage: armdecode [options] <program.elf | image.bin>")
	fmt.Fprintln(w, "       armdecode -words <hex word>...")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Options:")
	fmt.Fprintln(w, "  -words     Treat arguments as hexadecimal instruction words")
	fmt.Fprintln(w, "  -raw       Treat the input as a flat little-endian binary")
	fmt.Fprintln(w, "  -base      Load address of a flat binary")
	fmt.Fprintln(w, "  -config    Path to predecode cache configuration JSON file")
	fmt.Fprintln(w, "  -json      Print one JSON object per instruction")
	fmt.Fprintln(w, "  -v         Verbose output")
	fmt.Fprintln(w, "  -version   Print version and exit")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Run 'go run ./cmd/armdecode' for the full CLI.")
}
