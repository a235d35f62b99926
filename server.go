package main

import (
	"flag"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"

	"github.com/magnusbojejuul-dotcom/Hypertensionsapp/score2"
	"github.com/magnusbojejuul-dotcom/Hypertensionsapp/server"
)

func main() {
	// .env is optional; real env vars still apply without it
	_ = godotenv.Load()

	configPath := flag.String("config", os.Getenv("RISKSERVICE_CONFIG"), "Path to the YAML config file")
	flag.Parse()

	cfg := server.DefaultConfig()
	if *configPath != "" {
		data, err := os.ReadFile(*configPath)
		if err != nil {
			logrus.WithError(err).Fatal("cannot read config file")
		}
		cfg, err = server.LoadConfig(data)
		if err != nil {
			logrus.WithError(err).Fatal("cannot parse config file")
		}
	}
	cfg = server.ApplyEnv(cfg)

	service := server.NewEvaluationService()

	if cfg.MatrixFile != "" {
		f, err := os.Open(cfg.MatrixFile)
		if err != nil {
			logrus.WithError(err).Fatal("cannot open matrix file")
		}
		table, err := score2.LoadTable(f)
		f.Close()
		if err != nil {
			logrus.WithError(err).WithField("file", cfg.MatrixFile).Fatal("cannot load matrix file")
		}
		id := service.SetTable(table)
		logrus.WithFields(logrus.Fields{"file": cfg.MatrixFile, "rows": table.Len(), "id": id}).Info("preloaded SCORE2 matrix")
	}

	if cfg.ExamplesFile != "" {
		f, err := os.Open(cfg.ExamplesFile)
		if err != nil {
			logrus.WithError(err).Fatal("cannot open examples file")
		}
		patients, err := score2.LoadExamples(f)
		f.Close()
		if err != nil {
			logrus.WithError(err).WithField("file", cfg.ExamplesFile).Fatal("cannot load examples file")
		}
		service.SetExamples(patients)
		logrus.WithFields(logrus.Fields{"file": cfg.ExamplesFile, "patients": len(patients)}).Info("loaded example patients")
	}

	e := echo.New()
	e.Use(middleware.Logger())
	server.RegisterRoutes(e, service)

	logrus.WithField("listen", cfg.Listen).Info("starting risk service")
	if err := e.Start(cfg.Listen); err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}
}
