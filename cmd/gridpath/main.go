package main

import "github.com/katalvlaran/gridpath/internal/cli"

func main() {
	cli.Execute()
}
