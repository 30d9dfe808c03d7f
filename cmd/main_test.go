package main

import (
	"flag"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetFlags resets the global flag.CommandLine to avoid "flag redefined" panic
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

// resetEnv clears env vars used by parseConfig
func resetEnv() {
	os.Clearenv()
}

func TestParseFlags_Default(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd"}
	configPath := parseFlags()

	assert.Equal(t, "config.env", configPath)
}

func TestParseFlags_Custom(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd", "-c", "myconfig.env"}
	configPath := parseFlags()

	assert.Equal(t, "myconfig.env", configPath)
}

func TestParseConfig_Defaults(t *testing.T) {
	resetEnv()

	appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns,
		kafkaAddr, kafkaTopic,
		jwtSecret, jwtExp, uploadDir,
		err := parseConfig("nonexistent.env")

	require.NoError(t, err)

	assert.Equal(t, "localhost", appHost)
	assert.Equal(t, "8080", appPort)
	assert.Equal(t, "info", logLevel)

	assert.Equal(t, "localhost", pgHost)
	assert.Equal(t, 5432, pgPort)
	assert.Equal(t, "user", pgUser)
	assert.Equal(t, "password", pgPassword)
	assert.Equal(t, "database", pgDB)
	assert.Equal(t, 16, pgMaxOpenConns)
	assert.Equal(t, 8, pgMaxIdleConns)

	assert.Equal(t, "localhost", redisHost)
	assert.Equal(t, 6379, redisPort)
	assert.Equal(t, 0, redisDB)
	assert.Equal(t, "", redisPassword)
	assert.Equal(t, 10, redisPoolSize)
	assert.Equal(t, 2, redisMinIdleConns)

	assert.Equal(t, "", kafkaAddr)
	assert.Equal(t, "travel-diary.audit", kafkaTopic)

	assert.Equal(t, "my_super_secret_key", jwtSecret)
	assert.Equal(t, 3600, jwtExp)
	assert.Equal(t, "./uploads", uploadDir)
}

func TestParseConfig_FromEnv(t *testing.T) {
	resetEnv()

	t.Setenv("APP_PORT", "9090")
	t.Setenv("POSTGRES_PORT", "5433")
	t.Setenv("KAFKA_ADDR", "broker:9092")
	t.Setenv("JWT_EXP_SECOND", "120")
	t.Setenv("UPLOAD_DIR", "/srv/uploads")

	_, appPort, _,
		_, pgPort, _, _, _,
		_, _,
		_, _, _, _,
		_, _,
		kafkaAddr, _,
		_, jwtExp, uploadDir,
		err := parseConfig("nonexistent.env")

	require.NoError(t, err)

	assert.Equal(t, "9090", appPort)
	assert.Equal(t, 5433, pgPort)
	assert.Equal(t, "broker:9092", kafkaAddr)
	assert.Equal(t, 120, jwtExp)
	assert.Equal(t, "/srv/uploads", uploadDir)
}

func TestParseConfig_InvalidInt(t *testing.T) {
	resetEnv()

	t.Setenv("POSTGRES_PORT", "not-a-number")

	_, _, _,
		_, _, _, _, _,
		_, _,
		_, _, _, _,
		_, _,
		_, _,
		_, _, _,
		err := parseConfig("nonexistent.env")

	assert.Error(t, err)
}
