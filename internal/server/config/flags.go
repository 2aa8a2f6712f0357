package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/blog/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   REST bind address (e.g., ":4000")
//	-r string   gRPC health bind address (e.g., ":50051")
//	-d string   PostgreSQL DSN
//	-t int      session validity, hours
//	-o int      store operation timeout, seconds
//	-k          mark the session cookie Secure
//	-u string   S3 root user
//	-p string   S3 root password
//	-b string   S3 bucket name
//	-n string   S3 region
//	-e string   S3 base endpoint (e.g., "http://127.0.0.1:9000/")
//	-m string   MongoDB URI for the audit log
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:],
		[]string{"-a", "-r", "-d", "-t", "-o", "-u", "-p", "-b", "-n", "-e", "-m"},
		"-k")

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "address and port to run REST server")
	fs.StringVar(&config.EndpointAddrGRPC, "r", config.EndpointAddrGRPC, "address and port to run gRPC health server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")

	sessionValidity := fs.Int("t", int(config.SessionValidityDuration.Hours()), "session validity (in hours)")
	storeTimeout := fs.Int("o", int(config.StoreOperationTimeout.Seconds()), "store operation timeout (in seconds)")

	fs.BoolVar(&config.CookieSecure, "k", config.CookieSecure, "secure session cookie")
	fs.StringVar(&config.S3RootUser, "u", config.S3RootUser, "S3 root user")
	fs.StringVar(&config.S3RootPassword, "p", config.S3RootPassword, "S3 root password")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 bucket")
	fs.StringVar(&config.S3Region, "n", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")
	fs.StringVar(&config.AuditMongoURI, "m", config.AuditMongoURI, "audit MongoDB URI")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	// durations are applied only when passed explicitly
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "t":
			config.SessionValidityDuration = time.Duration(*sessionValidity) * time.Hour
		case "o":
			config.StoreOperationTimeout = time.Duration(*storeTimeout) * time.Second
		}
	})
}
