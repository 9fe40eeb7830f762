package main

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/kotrzina/dobijecka/pkg/config"
	"github.com/kotrzina/dobijecka/pkg/export"
	"github.com/kotrzina/dobijecka/pkg/extract"
)

func main() {
	// for development purposes
	// we don't care about errors here
	_ = godotenv.Load(".env")
	conf := config.NewConfig()

	logger := createLogger(conf.Debug)

	outputDir := conf.OutputDir
	if len(os.Args) > 1 {
		outputDir = os.Args[1]
	}
	logger.Infof("output directory: %s", outputDir)

	sources := extract.DefaultSources()
	if conf.SourcesFile != "" {
		var err error
		sources, err = extract.LoadSources(conf.SourcesFile)
		if err != nil {
			logger.Fatalf("could not load sources: %v", err)
		}
	}

	downloader := extract.NewHTTPDownloader(time.Duration(conf.HTTPTimeoutSeconds) * time.Second)
	aggregator := extract.NewAggregator(downloader, extract.NewParser(logger), sources, logger)

	announcements, err := aggregator.Run()
	if err != nil {
		logger.Fatalf("extraction failed: %v", err)
	}

	if err := export.Save(announcements, outputDir, logger); err != nil {
		logger.Fatalf("export failed: %v", err)
	}
}

func createLogger(debug bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logger.SetLevel(logrus.InfoLevel)
	if debug {
		logger.SetLevel(logrus.DebugLevel)
	}

	return logger
}
