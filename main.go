package main

import "artistpages/internal/app/cli"

func main() {
	cli.Execute()
}
