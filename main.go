package main

import (
	"os"

	"github.com/Ravipaygan296/talentmatch-ai/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
