// SPDX-License-Identifier: MIT

package main

import (
	"io"

	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("lara-edges")

var logFormat = logging.MustStringFormatter(`%{time:15:04:05.000} %{level:.4s} %{message}`)

// setupLogging routes the module logger to w at the level selected by -v.
func setupLogging(w io.Writer, verbosity int) {
	level := logging.WARNING
	switch verbosity {
	case 1:
		level = logging.INFO
	case 2:
		level = logging.DEBUG
	}
	backend := logging.NewBackendFormatter(logging.NewLogBackend(w, "", 0), logFormat)
	leveled := logging.AddModuleLevel(backend)
	leveled.SetLevel(level, "")
	logging.SetBackend(leveled)
}
