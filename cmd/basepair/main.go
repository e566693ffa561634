package main

import (
	"github.com/TuftsBCB/basepair/cmd/util"
)

func main() {
	util.Assert(rootCmd.Execute())
}
