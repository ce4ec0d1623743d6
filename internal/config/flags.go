package config

import (
	"errors"
	"flag"
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

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a bind address in format [host]:[port]
//	-tcp-backlog desired listen backlog
//	-request-timeout inbound request timeout (e.g., "30s", "1m")
//	-cookie-secret session cookie signing key
//	-cookie-name session cookie name
//	-cookie-ttl session cookie lifetime (e.g., "24h")
//	-token-sign-key service token signing key
//	-token-issuer service token issuer name
//	-token-duration service token duration (e.g., "1h", "30m")
//	-proxy-timeout outbound fetch timeout (e.g., "15s")
//	-d session registry DSN
//	-c/-config yaml file path with configs
func ParseFlags() *StructuredConfig {
	var bindAddress NetAddress
	var tcpBacklog int
	var requestTimeout time.Duration
	var cookieSecret string
	var cookieName string
	var cookieTTL time.Duration
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var proxyTimeout time.Duration
	var databaseDSN string
	var yamlConfigPath string

	flag.Var(&bindAddress, "a", "Net address host:port")
	flag.IntVar(&tcpBacklog, "tcp-backlog", 0, "Desired listen backlog")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&cookieSecret, "cookie-secret", "", "Session cookie signing key")
	flag.StringVar(&cookieName, "cookie-name", "", "Session cookie name")
	flag.DurationVar(&cookieTTL, "cookie-ttl", 0, "Session cookie lifetime (e.g., 24h)")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Service token signing key")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Service token issuer")
	flag.DurationVar(&tokenDuration, "token-duration", 0, "Service token duration (e.g., 1h, 30m)")
	flag.DurationVar(&proxyTimeout, "proxy-timeout", 0, "Outbound fetch timeout (e.g., 15s)")
	flag.StringVar(&databaseDSN, "d", "", "Session registry DSN")
	flag.StringVar(&yamlConfigPath, "c", "", "YAML config file path")
	flag.StringVar(&yamlConfigPath, "config", "", "YAML config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		Bind: Bind{
			Addr: bindAddress.Host,
			Port: bindAddress.Port,
		},
		HTTP: HTTP{
			TCPBacklog:     tcpBacklog,
			RequestTimeout: requestTimeout,
		},
		Security: Security{
			CookieSecret:  cookieSecret,
			CookieName:    cookieName,
			CookieTTL:     cookieTTL,
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
		},
		Proxy: Proxy{
			Timeout: proxyTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		YAMLFilePath: yamlConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns the empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the
// NetAddress. It validates the port range, checks IP correctness unless
// host is "localhost", and returns an error if the format or values are
// invalid.
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
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
