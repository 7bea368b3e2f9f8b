package dsn

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromEnvEmptyWithoutHost(t *testing.T) {
	t.Setenv("DB_HOST", "")
	assert.Equal(t, "", FromEnv())
}

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PORT", "")
	t.Setenv("DB_USER", "")
	t.Setenv("DB_PASS", "secret")
	t.Setenv("DB_NAME", "")

	assert.Equal(t,
		"host=db port=5432 user=postgres password=secret dbname=revenue sslmode=disable TimeZone=UTC",
		FromEnv())
}
