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
//	-a server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-cors-origin allowed CORS origin
//	-access-token-sign-key access token signing key
//	-access-token-duration access token duration (e.g., "15m")
//	-refresh-token-sign-key refresh token signing key
//	-refresh-token-duration refresh token duration (e.g., "72h")
//	-token-issuer token issuer name
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-media-backend media host backend ("s3" or "http")
//	-media-endpoint S3-compatible media endpoint
//	-media-bucket media bucket name
//	-media-public-base-url public base URL of uploaded media
//	-media-upload-url upload API URL (http backend)
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var corsOrigin string
	var accessTokenSignKey string
	var accessTokenDuration time.Duration
	var refreshTokenSignKey string
	var refreshTokenDuration time.Duration
	var tokenIssuer string
	var requestTimeout time.Duration
	var mediaBackend string
	var mediaEndpoint string
	var mediaBucket string
	var mediaPublicBaseURL string
	var mediaUploadURL string

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&corsOrigin, "cors-origin", "", "Allowed CORS origin")
	flag.StringVar(&accessTokenSignKey, "access-token-sign-key", "", "Access token signing key")
	flag.DurationVar(&accessTokenDuration, "access-token-duration", 0, "Access token duration (e.g., 15m)")
	flag.StringVar(&refreshTokenSignKey, "refresh-token-sign-key", "", "Refresh token signing key")
	flag.DurationVar(&refreshTokenDuration, "refresh-token-duration", 0, "Refresh token duration (e.g., 72h)")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&mediaBackend, "media-backend", "", "Media host backend: s3 or http")
	flag.StringVar(&mediaEndpoint, "media-endpoint", "", "S3-compatible media endpoint")
	flag.StringVar(&mediaBucket, "media-bucket", "", "Media bucket name")
	flag.StringVar(&mediaPublicBaseURL, "media-public-base-url", "", "Public base URL of uploaded media")
	flag.StringVar(&mediaUploadURL, "media-upload-url", "", "Upload API URL (http backend)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			AccessTokenSignKey:   accessTokenSignKey,
			AccessTokenDuration:  accessTokenDuration,
			RefreshTokenSignKey:  refreshTokenSignKey,
			RefreshTokenDuration: refreshTokenDuration,
			TokenIssuer:          tokenIssuer,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			CORSOrigin:     corsOrigin,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Media: Media{
			Backend:       mediaBackend,
			Endpoint:      mediaEndpoint,
			Bucket:        mediaBucket,
			PublicBaseURL: mediaPublicBaseURL,
			UploadURL:     mediaUploadURL,
		},
		JSONFilePath: jsonConfigPath,
	}
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

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "" && host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
