package main

import (
	"github.com/koisland/covstats/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}
