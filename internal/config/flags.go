// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses configuration flags from args.
//
// Flags:
//
//	-a web surface address in format [host]:[port]
//	-api REST service base URL
//	-request-timeout outbound request timeout (e.g. "10s")
//	-d SQLite database file
//	-redirect-delay delay before the dashboard opens after login
//	-toast-duration how long toasts stay visible
//	-log-file client log file
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("shop-panel", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		serverAddress  NetAddress
		apiAddress     string
		requestTimeout time.Duration
		databaseDSN    string
		redirectDelay  time.Duration
		toastDuration  time.Duration
		logFile        string
		jsonConfigPath string
	)

	fs.Var(&serverAddress, "a", "Web surface address host:port")
	fs.StringVar(&apiAddress, "api", "", "REST service base URL")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 10s)")
	fs.StringVar(&databaseDSN, "d", "", "SQLite database file")
	fs.DurationVar(&redirectDelay, "redirect-delay", 0, "Delay before opening the dashboard after login")
	fs.DurationVar(&toastDuration, "toast-duration", 0, "Toast display duration")
	fs.StringVar(&logFile, "log-file", "", "Client log file")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			RedirectDelay: redirectDelay,
			ToastDuration: toastDuration,
			LogFile:       logFile,
		},
		Adapter: Adapter{
			HTTPAddress:    apiAddress,
			RequestTimeout: requestTimeout,
		},
		Storage:      Storage{DB: DB{DSN: databaseDSN}},
		Server:       Server{HTTPAddress: serverAddress.String()},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress, or an empty
// string when neither part is set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
