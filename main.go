// main.go
//
// Minimal entry point that delegates CLI handling to the Cobra root command in cmd/root.go

package main

import (
	"github.com/ae267/engine-trade/cmd"
)

func main() {
	cmd.Execute()
}
