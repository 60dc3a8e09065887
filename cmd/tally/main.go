package main

import (
	"github.com/go-tally/tally/cmd/tally/cmd"
)

func main() {
	cmd.Execute()
}
