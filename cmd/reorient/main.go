package main

import "github.com/SeamusWaldron/reorient/internal/cli"

func main() {
	cli.Execute()
}
