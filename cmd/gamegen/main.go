package main

import (
	"os"

	"github.com/gookit/color"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		color.Error.Println(err)
		os.Exit(1)
	}
}
