package main

import (
	"os"

	"github.com/Icer178/traffic-val/cmd"
)

func main() {
	if err := cmd.Run(); err != nil {
		os.Exit(1)
	}
}
