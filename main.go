package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/eyespot/eyespot/cmd"
	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; environment defaults cover everything it can set.
	_ = godotenv.Load()

	if err := fang.Execute(context.Background(), cmd.RootCmd); err != nil {
		os.Exit(1)
	}
}
