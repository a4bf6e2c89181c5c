package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setTestEnv(t *testing.T) {
	t.Setenv("ENV_FILE", "")
	t.Setenv("DB_TYPE", "sqlite-pure")
	t.Setenv("DB_APP_DATABASE", filepath.Join(t.TempDir(), "maint.db"))
	t.Setenv("AUTHZ_URL", "http://localhost:8080")
	t.Setenv("AUTHZ_CLIENT_ID", "test-client")
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("BLOB_BACKEND", "db")
}

func TestRootCommandHasJobs(t *testing.T) {
	root := rootCommand()

	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"all", "autoremove", "urgency"}, names)
}

func TestAllRunsEveryJob(t *testing.T) {
	setTestEnv(t)

	root := rootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"all"})

	require.NoError(t, root.Execute())
	assert.Equal(t, "removed 0\nescalated 0\n", out.String())
}

func TestJobRejectsArgs(t *testing.T) {
	setTestEnv(t)

	root := rootCommand()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"urgency", "now"})

	assert.Error(t, root.Execute())
}

func TestMissingConfigFails(t *testing.T) {
	setTestEnv(t)
	t.Setenv("DB_APP_DATABASE", "")

	root := rootCommand()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"autoremove"})

	assert.ErrorContains(t, root.Execute(), "DB_APP_DATABASE")
}
