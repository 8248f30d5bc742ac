// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Field keys shared by the benchmark and the stress checker
const (
	structureKey = "structure"
	phaseKey     = "phase"
	opsKey       = "ops"
	elapsedKey   = "elapsed"
	seedKey      = "seed"
)

// newLogger builds a logger on stderr from the log section of the config.
// An unknown level falls back to info with a warning.
func newLogger(cfg LogConfig) *log.Logger {
	return newLoggerTo(os.Stderr, cfg)
}

func newLoggerTo(w io.Writer, cfg LogConfig) *log.Logger {
	logger := log.New()
	logger.SetOutput(w)

	if strings.EqualFold(cfg.Format, "json") {
		logger.SetFormatter(&log.JSONFormatter{})
	} else {
		logger.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}

	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		logger.SetLevel(log.InfoLevel)
		logger.WithField("level", cfg.Level).Warn("unknown log level, using info")
		return logger
	}
	logger.SetLevel(level)
	return logger
}
