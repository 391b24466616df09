package main

import "github.com/pfrederiksen/ttp-appointments/internal/cli"

func main() {
	cli.Execute()
}
