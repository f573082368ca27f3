package main

import "github.com/assist-sh/assist/cli"

func main() {
	cli.Execute()
}
