// Package config handles runtime configuration for the geoportal,
// including defaults, JSON overlay, and command-line flags.
package config

// Blob store backends.
const (
	BlobBackendDisk = "disk"
	BlobBackendS3   = "s3"
)

// Config holds runtime settings for the geoportal service.
//
// Fields:
//   - DatabaseDSN: SQLite file path, or a postgres:// DSN for pgx.
//   - UploadDir: root directory for the disk blob store.
//   - BlobBackend: "disk" or "s3".
//   - S3AccessKey / S3SecretKey: credentials for the S3-compatible backend.
//   - S3Bucket / S3Region / S3BaseEndpoint: object storage settings.
type Config struct {
	DatabaseDSN    string
	UploadDir      string
	BlobBackend    string
	S3AccessKey    string
	S3SecretKey    string
	S3Bucket       string
	S3Region       string
	S3BaseEndpoint string
}

// LoadDefaults populates Config with development defaults: a local SQLite
// file and disk uploads. Override for production.
func (c *Config) LoadDefaults() {
	c.DatabaseDSN = "geoportal.db"
	c.UploadDir = "uploads"
	c.BlobBackend = BlobBackendDisk
	c.S3AccessKey = "admin"
	c.S3SecretKey = "secretpassword"
	c.S3Bucket = "geoportal"
	c.S3Region = "us-east-1"
	c.S3BaseEndpoint = "http://127.0.0.1:9000/"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
