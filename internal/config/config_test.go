package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDatabaseURIPrefersURL(t *testing.T) {
	cfg := &Config{Database: DatabaseConfig{
		URL:  "postgres://user:pass@db:5432/chat",
		Host: "localhost",
	}}
	assert.Equal(t, "postgres://user:pass@db:5432/chat", cfg.DatabaseURI())
}

func TestDatabaseURIAssemblesDSN(t *testing.T) {
	cfg := &Config{Database: DatabaseConfig{
		Host:     "localhost",
		Port:     "5432",
		User:     "postgres",
		Password: "password",
		DBName:   "chat",
		SSLMode:  "disable",
	}}
	assert.Equal(t,
		"host=localhost port=5432 user=postgres password=password dbname=chat sslmode=disable",
		cfg.DatabaseURI())
}
