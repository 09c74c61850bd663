package main

import "gemshub/internal/cli"

func main() {
	cli.Execute()
}
