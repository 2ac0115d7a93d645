package main

import (
	"log"

	"quranku_backend/internals/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		log.Fatalf("❌ %v", err)
	}
}
