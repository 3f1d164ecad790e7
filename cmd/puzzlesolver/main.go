package main

import "github.com/mcoot/puzzlesolver/internal/cli"

func main() {
	cli.Execute()
}
