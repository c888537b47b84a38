/*
 * chessgen - bitboard chess move-generation and perft engine
 *
 * MIT License
 *
 * Copyright (c) 2026 chessgen contributors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package config holds process-wide configuration for the engine: the log
// level and the path to an optional TOML settings file. Mirrors the
// defaults-then-file-then-flags layering used throughout the engine.
package config

import (
	"log"

	"github.com/BurntSushi/toml"
)

// ConfFile is the path to the optional TOML config file, relative to the
// working directory.
var ConfFile = "./chessgen.toml"

// LogLevel is the active standard log level, defaulted below and
// overridable from the config file or the -loglvl CLI flag.
var LogLevel = LogLevels["info"]

// Settings is the configuration read from ConfFile, or the defaults below
// if that file is absent.
var Settings conf

var initialized = false

type conf struct {
	Log logConfiguration
}

type logConfiguration struct {
	LogLvl string
}

func init() {
	Settings.Log.LogLvl = "info"
}

// Setup reads ConfFile if present and applies its settings over the
// defaults; a missing file is not an error, it just means defaults stand.
func Setup() {
	if initialized {
		return
	}
	if _, err := toml.DecodeFile(ConfFile, &Settings); err != nil {
		log.Println("config file not found, using defaults (", err, ")")
	}
	if Settings.Log.LogLvl != "" {
		if lvl, found := LogLevels[Settings.Log.LogLvl]; found {
			LogLevel = lvl
		}
	}
	initialized = true
}

// LogLevels maps the string log level names accepted on the CLI and in the
// config file to the numeric levels used by applog.
var LogLevels = map[string]int{
	"off":      -1,
	"critical": 0,
	"error":    1,
	"warning":  2,
	"notice":   3,
	"info":     4,
	"debug":    5,
}
