package main

import (
	"github.com/agromap-uz/agromap-go/internal/adapters/cli"
)

func main() {
	cli.Execute()
}
