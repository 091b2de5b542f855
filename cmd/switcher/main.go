package main

import (
	"github.com/switchergame/switcher-go/internal/cli"
)

func main() {
	cli.Execute()
}
