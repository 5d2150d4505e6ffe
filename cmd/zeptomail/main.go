// Command zeptomail sends a single email through the ZeptoMail API.
//
//	export ZEPTOMAIL_API_KEY="Zoho-enczapikey ..."
//	zeptomail send --from "Team <team@example.com>" --to user@example.com \
//		--subject "Hello" --text "Hi there" --attach ./report.pdf
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
