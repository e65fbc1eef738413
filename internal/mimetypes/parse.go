package mimetypes

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// AddTypesFromReader reads mime.types-format records from src and
// registers each one. The format is one record per line: a media type
// followed by zero or more extensions, separated by runs of whitespace.
// '#' starts a comment that runs to end of line; blank and comment-only
// lines are skipped. Malformed records are not errors: a type with no '/'
// falls through AddType's silent-ignore path.
func (r *Registry) AddTypesFromReader(src io.Reader) error {
	scanner := bufio.NewScanner(src)
	for scanner.Scan() {
		r.addTypeLine(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading mime.types data: %w", err)
	}
	return nil
}

// AddTypesFromFile opens path and registers its mime.types records. A file
// that cannot be opened or read is an error for the caller to handle;
// malformed lines inside the file are not.
func (r *Registry) AddTypesFromFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening mime.types file: %w", err)
	}
	defer f.Close()

	if err := r.AddTypesFromReader(f); err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	return nil
}

func (r *Registry) addTypeLine(line string) {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return
	}
	r.AddType(fields[0], fields[1:]...)
}
