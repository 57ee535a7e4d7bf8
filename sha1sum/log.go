package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

var logger = logrus.New()
var log logrus.FieldLogger = logger

func setupLog() {
	logger.Out = os.Stderr
	logger.Formatter = &logrus.TextFormatter{
		DisableTimestamp: true,
		DisableColors:    pNoCodes,
		ForceColors:      !pNoCodes,
	}
	switch {
	case pDebug:
		logger.Level = logrus.DebugLevel
	case pQuiet:
		logger.Level = logrus.ErrorLevel
	default:
		logger.Level = logrus.InfoLevel
	}
	log = logger.WithField("prefix", "sha1sum")
}
