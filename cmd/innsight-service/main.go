package main

import (
	"os"

	"github.com/lucianoaf8/InnSight/innsightservice"
)

func main() {
	if err := innsightservice.Run(); err != nil {
		os.Exit(1)
	}
}
