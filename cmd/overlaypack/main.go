package main

import "overlaypack/internal/cli"

func main() {
	cli.Execute()
}
