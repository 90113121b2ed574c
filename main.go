package main

import (
	"github.com/jjtimmons/seqan/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}
