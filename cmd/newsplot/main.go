package main

import (
	"github.com/newsalpha/newsplot/pkg/cmd"
)

func main() {
	cmd.Execute()
}
