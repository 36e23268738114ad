package main

import (
	"os"

	"github.com/karmanyte/matlens/cmd/matlens/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
