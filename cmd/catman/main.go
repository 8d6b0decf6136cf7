package main

import (
	"github.com/cataloghq/catman/internal/cli"
)

func main() {
	cli.Execute()
}
