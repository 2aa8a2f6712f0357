package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/blog/internal/flagx"
	"github.com/dmitrijs2005/blog/internal/timex"
)

// JsonConfig is the on-disk shape of the configuration file. Durations accept
// both "1s" style strings and integer nanoseconds.
type JsonConfig struct {
	EndpointAddrHTTP        string         `json:"endpoint_addr_http"`
	EndpointAddrGRPC        string         `json:"endpoint_addr_grpc"`
	DatabaseDSN             string         `json:"database_dsn"`
	SessionValidityDuration timex.Duration `json:"session_validity_duration"`
	StoreOperationTimeout   timex.Duration `json:"store_operation_timeout"`
	CookieSecure            *bool          `json:"cookie_secure"`
	S3RootUser              string         `json:"s3_root_user"`
	S3RootPassword          string         `json:"s3_root_password"`
	S3Bucket                string         `json:"s3_bucket"`
	S3Region                string         `json:"s3_region"`
	S3BaseEndpoint          string         `json:"s3_base_endpoint"`
	AuditMongoURI           string         `json:"audit_mongo_uri"`
	AuditMongoDatabase      string         `json:"audit_mongo_database"`
}

// parseJson overlays values from the file named by -c/-config. Keys missing
// from the file keep their current value. An unreadable file or invalid JSON
// panics.
func parseJson(config *Config) {
	jsonConfigFile := flagx.ConfigPath(os.Args[1:])

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	setString(&config.EndpointAddrHTTP, c.EndpointAddrHTTP)
	setString(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	if c.SessionValidityDuration.Duration > 0 {
		config.SessionValidityDuration = c.SessionValidityDuration.Duration
	}
	if c.StoreOperationTimeout.Duration > 0 {
		config.StoreOperationTimeout = c.StoreOperationTimeout.Duration
	}
	if c.CookieSecure != nil {
		config.CookieSecure = *c.CookieSecure
	}
	setString(&config.S3RootUser, c.S3RootUser)
	setString(&config.S3RootPassword, c.S3RootPassword)
	setString(&config.S3Bucket, c.S3Bucket)
	setString(&config.S3Region, c.S3Region)
	setString(&config.S3BaseEndpoint, c.S3BaseEndpoint)
	setString(&config.AuditMongoURI, c.AuditMongoURI)
	setString(&config.AuditMongoDatabase, c.AuditMongoDatabase)
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
