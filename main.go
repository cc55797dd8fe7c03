package main

import (
	"Frota/FiberConfig"
	"Frota/Models"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	// .env is optional, env vars win either way
	if err := godotenv.Load(); err != nil {
		logrus.Debug("no .env file found")
	}
	setupLogging()

	Models.Connect()

	app := FiberConfig.NewApp(Models.DB)
	if err := FiberConfig.Listen(app); err != nil {
		logrus.Fatal("server stopped: ", err)
	}
}

func setupLogging() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		logrus.SetLevel(level)
	}
}
