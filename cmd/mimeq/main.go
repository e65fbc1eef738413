package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"mime-registry/internal/mimetypes"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		printUsage(stderr)
		return 1
	}

	command := args[0]
	flags := flag.NewFlagSet(command, flag.ContinueOnError)
	flags.SetOutput(stderr)
	first := flags.Bool("first", false, "print only the preferred answer")
	short := flags.Bool("short", false, "limit extensions to 3 characters (ext command only)")
	extraFile := flags.String("file", "", "extra mime.types file layered on the built-in table")

	if err := flags.Parse(args[1:]); err != nil {
		return 1
	}
	if flags.NArg() != 1 {
		printUsage(stderr)
		return 1
	}
	query := flags.Arg(0)

	registry, err := buildRegistry(*extraFile)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	switch command {
	case "ext":
		var exts []string
		if *short {
			exts = registry.Ext3sFromType(query)
		} else {
			exts = registry.ExtsFromType(query)
		}
		printList(stdout, exts, *first)
	case "type":
		types, err := registry.TypesFromExt(query)
		if err != nil {
			if errors.Is(err, mimetypes.ErrUnknownExtension) {
				fmt.Fprintf(stderr, "Error: %v\n", err)
				return 1
			}
			fmt.Fprintf(stderr, "Error: lookup failed: %v\n", err)
			return 1
		}
		printList(stdout, types, *first)
	case "alt":
		printList(stdout, registry.AltTypes(query), *first)
	case "check":
		if _, ok := registry.IsType(query); ok {
			fmt.Fprintln(stdout, "registered")
			return 0
		}
		fmt.Fprintln(stdout, "not registered")
		return 1
	default:
		fmt.Fprintf(stderr, "Unknown command: %s\n", sanitizeCommand(command))
		printUsage(stderr)
		return 1
	}

	return 0
}

func buildRegistry(extraFile string) (*mimetypes.Registry, error) {
	registry := mimetypes.NewDefault()

	if extraFile == "" {
		extraFile = os.Getenv("MIME_TYPES_FILE")
	}
	if extraFile != "" {
		if err := registry.AddTypesFromFile(extraFile); err != nil {
			return nil, err
		}
	}
	return registry, nil
}

func printList(out io.Writer, list []string, firstOnly bool) {
	if firstOnly {
		if len(list) > 0 {
			fmt.Fprintln(out, list[0])
		}
		return
	}
	for _, item := range list {
		fmt.Fprintln(out, item)
	}
}

// sanitizeCommand returns a safe representation of a command string for
// display, replacing anything outside [a-zA-Z0-9_-] with '_'.
func sanitizeCommand(cmd string) string {
	var b strings.Builder
	b.Grow(len(cmd))
	for _, r := range cmd {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-' || r == '_' {
			b.WriteRune(r)
		} else {
			b.WriteRune('_')
		}
	}
	return b.String()
}

func printUsage(out io.Writer) {
	fmt.Fprintln(out, "MIME Registry Lookup")
	fmt.Fprintln(out, "")
	fmt.Fprintln(out, "Usage: mimeq <command> [flags] <query>")
	fmt.Fprintln(out, "")
	fmt.Fprintln(out, "Commands:")
	fmt.Fprintln(out, "  ext <type>    - List extensions for a media type")
	fmt.Fprintln(out, "  type <ext>    - List media types for an extension")
	fmt.Fprintln(out, "  alt <type>    - List equivalent registered media types")
	fmt.Fprintln(out, "  check <type>  - Exit 0 if the type is registered")
	fmt.Fprintln(out, "")
	fmt.Fprintln(out, "Flags:")
	fmt.Fprintln(out, "  -first        - Print only the preferred answer")
	fmt.Fprintln(out, "  -short        - Limit extensions to 3 characters (ext only)")
	fmt.Fprintln(out, "  -file <path>  - Extra mime.types file")
	fmt.Fprintln(out, "")
	fmt.Fprintln(out, "Environment:")
	fmt.Fprintln(out, "  MIME_TYPES_FILE - Extra mime.types file (same as -file)")
}
