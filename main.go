package main

import (
	"os"

	"github.com/drchandima/youtube-summarizer/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
