package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, c.DatabaseDSN, "geoportal.db")
	assert.Equal(t, c.UploadDir, "uploads")
	assert.Equal(t, c.BlobBackend, BlobBackendDisk)
	assert.Equal(t, c.S3AccessKey, "admin")
	assert.Equal(t, c.S3SecretKey, "secretpassword")
	assert.Equal(t, c.S3Bucket, "geoportal")
	assert.Equal(t, c.S3Region, "us-east-1")
	assert.Equal(t, c.S3BaseEndpoint, "http://127.0.0.1:9000/")
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}

	c := LoadConfig()

	require.NotNil(t, c, "LoadConfig must not return nil")

	assert.Equal(t, c.DatabaseDSN, "geoportal.db")
	assert.Equal(t, c.UploadDir, "uploads")
	assert.Equal(t, c.BlobBackend, BlobBackendDisk)
	assert.Equal(t, c.S3Bucket, "geoportal")
}
