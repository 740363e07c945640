package main

import (
	"github.com/Kyle-Ross/Daily-Data-Check-Push-Notifier/cmd"
)

func main() {
	cmd.Execute()
}
