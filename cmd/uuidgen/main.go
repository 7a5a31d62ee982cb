package main

import "github.com/viant/uuidgen/internal/cli"

func main() {
	cli.Execute()
}
