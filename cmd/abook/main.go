package main

import "github.com/vrylskyj/abook/internal/cli"

func main() {
	cli.Execute()
}
