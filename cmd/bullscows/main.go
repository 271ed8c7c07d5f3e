package main

import "github.com/mcrae/bullscows/internal/cli"

func main() {
	cli.Execute()
}
