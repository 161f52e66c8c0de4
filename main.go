package main

import (
	"log"

	"github.com/resufit/resufit/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
