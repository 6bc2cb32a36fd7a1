package main

import (
	"github.com/julien-sobczak/the-notekit/cmd"
)

func main() {
	cmd.Execute()
}
