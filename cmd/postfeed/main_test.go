package main

import (
	"bytes"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tesso57/postfeed/internal/application/settings"
)

func TestParseFlags(t *testing.T) {
	var cli CLI
	parser, err := newParser(&cli)
	require.NoError(t, err)

	_, err = parser.Parse([]string{
		"--config", "/tmp/postfeed.yaml",
		"--base-url", "https://example.com/api/",
		"--log-level", "debug",
	})
	require.NoError(t, err)

	assert.Equal(t, "/tmp/postfeed.yaml", cli.Config)
	assert.Equal(t, "https://example.com/api/", cli.BaseURL)
	assert.Equal(t, "debug", cli.LogLevel)
	assert.Empty(t, cli.LogFile)
}

func TestVersionFlag(t *testing.T) {
	var cli CLI
	var out bytes.Buffer
	exited := -1
	parser, err := newParser(&cli, kong.Writers(&out, &out), kong.Exit(func(code int) { exited = code }))
	require.NoError(t, err)

	_, _ = parser.Parse([]string{"--version"})

	assert.Equal(t, 0, exited)
	assert.Contains(t, out.String(), "postfeed ")
}

func TestApplyOverrides(t *testing.T) {
	base := settings.Settings{
		API: settings.APIConfig{BaseURL: settings.DefaultBaseURL},
		Log: settings.LogConfig{File: "/var/log/postfeed.log", Level: "info"},
	}

	got := applyOverrides(base, CLI{})
	assert.Equal(t, base, got)

	got = applyOverrides(base, CLI{BaseURL: " https://mirror.example.com/api/ ", LogFile: "/tmp/x.log", LogLevel: "warn"})
	assert.Equal(t, "https://mirror.example.com/api", got.API.BaseURL)
	assert.Equal(t, "/tmp/x.log", got.Log.File)
	assert.Equal(t, "warn", got.Log.Level)
}

func TestResolveVersionInfo(t *testing.T) {
	tests := []struct {
		name          string
		v, c, d       string
		moduleVersion string
		settings      map[string]string
		want          [3]string
	}{
		{
			name: "build info fills dev defaults",
			v:    "dev", c: "none", d: "unknown",
			moduleVersion: "v1.2.3",
			settings:      map[string]string{"vcs.revision": "0123456789abcdef", "vcs.time": "2026-01-14T10:00:00Z"},
			want:          [3]string{"v1.2.3", "0123456789ab", "2026-01-14T10:00:00Z"},
		},
		{
			name: "ldflags win",
			v:    "v2.0.0", c: "abc", d: "today",
			moduleVersion: "v1.2.3",
			settings:      map[string]string{"vcs.revision": "fff"},
			want:          [3]string{"v2.0.0", "abc", "today"},
		},
		{
			name: "devel module keeps dev",
			v:    "dev", c: "none", d: "unknown",
			moduleVersion: "(devel)",
			want:          [3]string{"dev", "none", "unknown"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, c, d := resolveVersionInfo(tt.v, tt.c, tt.d, tt.moduleVersion, tt.settings)
			assert.Equal(t, tt.want, [3]string{v, c, d})
		})
	}
}
