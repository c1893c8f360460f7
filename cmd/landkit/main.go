// Command landkit serves the landing pages and their contact forms, and
// ships small tools to submit test leads and inspect the local lead inbox.
package main

import "os"

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
