package main

import "github.com/dmitrymomot/patternotp/internal/cli"

func main() {
	cli.Execute()
}
