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

// ParseFlags parses configuration flags from args (without the program
// name) into a fresh flag set, so it can be called more than once.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-c/-config json file path with configs
//	-storage-driver storage backend: mongo, postgres or sqlite
//	-mongo-uri MongoDB connection string
//	-mongo-database MongoDB database name
//	-d database DSN for the SQL backends
//	-operation-timeout per-operation storage timeout (e.g., "5s")
//	-token-key token signing key
//	-token-issuer token issuer name
//	-log-level minimal log level
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-mail-api-url e-mail API endpoint
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var jsonConfigPath string
	var storageDriver, mongoURI, mongoDatabase, databaseDSN string
	var operationTimeout, requestTimeout time.Duration
	var tokenKey, tokenIssuer, logLevel string
	var mailAPIURL string

	fs := flag.NewFlagSet("user-management", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&storageDriver, "storage-driver", "", "Storage driver: mongo, postgres or sqlite")
	fs.StringVar(&mongoURI, "mongo-uri", "", "MongoDB connection string")
	fs.StringVar(&mongoDatabase, "mongo-database", "", "MongoDB database name")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.DurationVar(&operationTimeout, "operation-timeout", 0, "Storage operation timeout (e.g., 5s)")
	fs.StringVar(&tokenKey, "token-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&mailAPIURL, "mail-api-url", "", "E-mail API endpoint")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			TokenKey:    tokenKey,
			TokenIssuer: tokenIssuer,
			LogLevel:    logLevel,
		},
		Storage: Storage{
			Driver:           storageDriver,
			OperationTimeout: operationTimeout,
			Mongo: Mongo{
				URI:      mongoURI,
				Database: mongoDatabase,
			},
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Mail: Mail{
			APIURL: mailAPIURL,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
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

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
