package main

import (
	"eventscout/cmd"
	"os"
)

func main() {
	if err := cmd.Run(); err != nil {
		os.Exit(1)
	}
}
