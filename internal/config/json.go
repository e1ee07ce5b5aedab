package config

import (
	"encoding/json"
	"os"

	"github.com/lombokbarat/geoportal/internal/flagx"
)

// JsonConfig mirrors Config for JSON unmarshalling. Only non-empty values are
// copied into the runtime Config, so a partial file overrides just the fields
// it names.
type JsonConfig struct {
	DatabaseDSN    string `json:"database_dsn"`
	UploadDir      string `json:"upload_dir"`
	BlobBackend    string `json:"blob_backend"`
	S3AccessKey    string `json:"s3_access_key"`
	S3SecretKey    string `json:"s3_secret_key"`
	S3Bucket       string `json:"s3_bucket"`
	S3Region       string `json:"s3_region"`
	S3BaseEndpoint string `json:"s3_base_endpoint"`
}

// parseJson overlays configuration from a JSON file onto the provided Config.
// The file path comes from the -c or -config command-line flags; when neither
// is set, no file is loaded. An unreadable or invalid file panics: a config
// file that was asked for but cannot be used is a startup error.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.UploadDir != "" {
		config.UploadDir = c.UploadDir
	}
	if c.BlobBackend != "" {
		config.BlobBackend = c.BlobBackend
	}
	if c.S3AccessKey != "" {
		config.S3AccessKey = c.S3AccessKey
	}
	if c.S3SecretKey != "" {
		config.S3SecretKey = c.S3SecretKey
	}
	if c.S3Bucket != "" {
		config.S3Bucket = c.S3Bucket
	}
	if c.S3Region != "" {
		config.S3Region = c.S3Region
	}
	if c.S3BaseEndpoint != "" {
		config.S3BaseEndpoint = c.S3BaseEndpoint
	}
}
