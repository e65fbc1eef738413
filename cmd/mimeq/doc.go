// Command mimeq is a command-line lookup tool for the mime registry.
//
// It answers the same questions as the HTTP API, seeded from the same
// built-in mime.types table:
//
//	mimeq ext image/jpeg          # jpeg jpg jpe jfif, one per line
//	mimeq ext -short image/jpeg   # extensions of at most 3 characters
//	mimeq ext -first image/jpeg   # just the preferred extension
//	mimeq type jpg                # media types claiming the extension
//	mimeq alt image/jpeg          # equivalent registered types
//	mimeq check image/jpeg        # exit status reports registration
//
// An extra mime.types file can be layered on the built-in table with
// -file or the MIME_TYPES_FILE environment variable. Looking up an
// extension that was never registered exits 1 with an error; looking up
// an unregistered media type prints nothing and exits 0.
package main
