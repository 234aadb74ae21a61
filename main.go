package main

import (
	"github.com/kako-jun/photo-returns/cmd"
)

func main() {
	cmd.Execute()
}
