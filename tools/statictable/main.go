package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
)

// main regenerates the literal entries of internal/hpack/statictable.go
// from a semicolon-delimited "index;name;value" dump of RFC 7541
// Appendix A, printed to stdout for pasting into the table literal.
func main() {
	var path = flag.String("content", "", "The content of the file to insert")
	flag.Parse()

	if *path == "" {
		panic("The file path is required")
	}

	f, err := os.Open(*path)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		fields := strings.Split(scanner.Text(), ";")
		for i, field := range fields {
			fields[i] = strings.TrimSpace(field)
		}

		fmt.Printf("{Name: %q, Value: %q}, // index %v\n", fields[1], fields[2], fields[0])
	}

	if err := scanner.Err(); err != nil {
		log.Fatal(err)
	}
}
