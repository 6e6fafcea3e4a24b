// Command jwtkit issues, verifies and inspects HS256 tokens from a terminal.
//
//	JWT_SECRET=... jwtkit generate --payload '{"uid":"42"}'
//	JWT_SECRET=... jwtkit verify eyJhbGciOi...
//	jwtkit inspect eyJhbGciOi...
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := App().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
