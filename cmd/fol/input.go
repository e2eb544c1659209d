package main

import (
	"fmt"
	"io"
	"os"
)

// eachInput calls fn with the contents of each file in files, or of stdin
// when files is empty.  "-" names stdin.
func eachInput(files []string, fn func(name string, d []byte) error) error {
	if len(files) == 0 {
		files = []string{"-"}
	}
	for _, file := range files {
		d, err := readInput(file)
		if err != nil {
			return err
		}
		if err := fn(file, d); err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
	}
	return nil
}

func readInput(file string) ([]byte, error) {
	if file == "-" {
		d, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("error reading stdin: %w", err)
		}
		return d, nil
	}
	d, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("could not open %q: %w", file, err)
	}
	return d, nil
}
