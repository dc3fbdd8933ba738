package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spigell/land-advisor/cmd"
)

func main() {
	// A missing .env file is fine; values can come from the environment directly.
	_ = godotenv.Load()

	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
