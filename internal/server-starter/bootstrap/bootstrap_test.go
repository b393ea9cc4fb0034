package bootstrap

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	return Config{
		ServerTableName: "game-servers",
		ScriptsBucket:   "gslm-scripts",
		WorldDataBucket: "gslm-world-data",
		LifecycleAPIURL: "https://lifecycle.internal:8080",
	}
}

func TestBuild(t *testing.T) {
	b := NewBuilder(validConfig())
	payload, err := b.Build(42)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(payload.Plain, "\n"), "\n")
	assert.Equal(t, []string{
		"#!/bin/bash",
		"export SERVER_ID='42'",
		"export SERVER_TABLE_NAME='game-servers'",
		"export SCRIPTS_BUCKET='gslm-scripts'",
		"export WORLD_DATA_BUCKET='gslm-world-data'",
		"export LIFECYCLE_API_URL='https://lifecycle.internal:8080'",
		`aws s3 cp "s3://$SCRIPTS_BUCKET/server-startup/" /home/ec2-user/server-startup --recursive`,
		"sh /home/ec2-user/server-startup/startup.sh",
	}, lines)
	assert.True(t, strings.HasSuffix(payload.Plain, "\n"))
	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte(payload.Plain)), payload.Encoded)
}

func TestBuildQuotesValues(t *testing.T) {
	cfg := validConfig()
	cfg.LifecycleAPIURL = "https://lifecycle.internal/'; rm -rf /"
	b := NewBuilder(cfg)

	payload, err := b.Build(1)
	require.NoError(t, err)
	// The embedded single quote must be escaped so the value stays one token.
	assert.Contains(t, payload.Plain, `export LIFECYCLE_API_URL='https://lifecycle.internal/'\''; rm -rf /'`)
}

func TestBuildValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(cfg *Config)
	}{
		{
			name: "TableNameWithShellMetacharacter",
			mutate: func(cfg *Config) {
				cfg.ServerTableName = "servers;rm"
			},
		},
		{
			name: "TableNameWithSpace",
			mutate: func(cfg *Config) {
				cfg.ServerTableName = "game servers"
			},
		},
		{
			name: "EmptyTableName",
			mutate: func(cfg *Config) {
				cfg.ServerTableName = ""
			},
		},
		{
			name: "UppercaseScriptsBucket",
			mutate: func(cfg *Config) {
				cfg.ScriptsBucket = "GSLM-Scripts"
			},
		},
		{
			name: "ScriptsBucketWithDollar",
			mutate: func(cfg *Config) {
				cfg.ScriptsBucket = "scripts$(whoami)"
			},
		},
		{
			name: "EmptyWorldDataBucket",
			mutate: func(cfg *Config) {
				cfg.WorldDataBucket = ""
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			b := NewBuilder(cfg)

			payload, err := b.Build(1)
			assert.ErrorIs(t, err, ErrInvalidConfiguration)
			assert.Empty(t, payload.Plain)
			assert.Empty(t, payload.Encoded)
		})
	}
}
