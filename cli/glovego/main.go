package main

import (
	"os"

	glovegocmder "github.com/hupe1980/glovego/cmd/glovego"
)

func main() {
	cmd := glovegocmder.NewGlovegoCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
