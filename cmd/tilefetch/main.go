// Command tilefetch fetches assets through a loader and serves asset directories.
package main

import (
	"os"

	"github.com/0xalexb/hjarta-loader/cmd/tilefetch/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
