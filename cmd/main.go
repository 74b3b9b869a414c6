package main

import (
	"clubtix/internal/logger"
	"clubtix/internal/server"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		logger.L.Info("no .env file found, using environment")
	}

	if err := server.Start(); err != nil {
		logger.L.Fatal("server failed to start: " + err.Error())
	}
}
