package conf_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/opsfront/intake-backend/conf"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := conf.Load("")
	require.NoError(t, err)
	require.Equal(t, ":8080", cfg.HttpAddress)
	require.Equal(t, conf.StoreMemory, cfg.Store.Provider)
	require.Equal(t, conf.NotifyLog, cfg.Notify.Provider)
}

func TestLoadTomlFileWithEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "intake.toml")
	content := `
http_address = ":9090"

[store]
provider = "dynamodb"
ddb_table = "intake_submissions"
region = "eu-central-1"

[notify]
provider = "smtp"
recipient = "staff@example.com"
smtp_host = "mail.example.com"
smtp_port = 587
smtp_from = "intake@example.com"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	t.Setenv("INTAKE_STORE", "s3")
	t.Setenv("INTAKE_S3_BUCKET", "intake-subms")
	t.Setenv("ADMIN_KEY", "from-env")

	cfg, err := conf.Load(path)
	require.NoError(t, err)
	require.Equal(t, ":9090", cfg.HttpAddress)
	require.Equal(t, "s3", cfg.Store.Provider, "env overrides the file")
	require.Equal(t, "intake-subms", cfg.Store.S3Bucket)
	require.Equal(t, "intake_submissions", cfg.Store.DdbTable)
	require.Equal(t, "smtp", cfg.Notify.Provider)
	require.Equal(t, "staff@example.com", cfg.Notify.Recipient)
	require.Equal(t, 587, cfg.Notify.SmtpPort)
	require.Equal(t, "from-env", cfg.AdminKey)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := conf.Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}
