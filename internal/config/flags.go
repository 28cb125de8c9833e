package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds a host and port. It implements flag.Value.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses command-line flags from args (without the program name).
//
// Flags:
//
//	-a               listen address in format [host]:[port]
//	-api             flight API base URL
//	-d               history database DSN
//	-c/-config       JSON config file path
//	-trips           YAML trips file for the dashboard
//	-log-level       zerolog level name
//	-token-sign-key  viewer token signing key
//	-request-timeout timeout of one flight API request (e.g. "15s")
//	-poll-interval   delay before each poll (e.g. "1s")
//	-max-attempts    failed requests per phase before giving up
func ParseFlags(args []string) (*StructuredConfig, error) {
	var (
		serverAddress  NetAddress
		apiAddress     string
		databaseDSN    string
		jsonConfigPath string
		tripsFile      string
		logLevel       string
		tokenSignKey   string
		requestTimeout time.Duration
		pollInterval   time.Duration
		maxAttempts    int
	)

	fs := flag.NewFlagSet("flight-search", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&apiAddress, "api", "", "Flight API base URL")
	fs.StringVar(&databaseDSN, "d", "", "History database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tripsFile, "trips", "", "YAML trips file")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Viewer token signing key")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Flight API request timeout (e.g. 15s)")
	fs.DurationVar(&pollInterval, "poll-interval", 0, "Poll interval (e.g. 1s)")
	fs.IntVar(&maxAttempts, "max-attempts", 0, "Failed requests per phase before giving up")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogLevel:     logLevel,
			TokenSignKey: tokenSignKey,
		},
		Adapter: Adapter{
			APIAddress:     apiAddress,
			RequestTimeout: requestTimeout,
		},
		Search: Search{
			PollInterval: pollInterval,
			MaxAttempts:  maxAttempts,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Server: Server{
			HTTPAddress: serverAddress.String(),
		},
		Workers: Workers{
			TripsFile: tripsFile,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns host:port, or an empty string when nothing was set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses host:port. The host must be "localhost", an IP or empty.
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

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
