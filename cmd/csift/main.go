package main

import "github.com/mvp-joe/csift/internal/cli"

func main() {
	cli.Execute()
}
