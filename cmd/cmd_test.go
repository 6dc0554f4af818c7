package cmd

import (
	"context"
	"testing"

	"github.com/chrisdamba/foodadmin/internal/analytics"
	"github.com/chrisdamba/foodadmin/internal/models"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenStoreInMemory(t *testing.T) {
	store, closeStore, err := openStore(context.Background(), &models.Config{Server: models.ServerConfig{InMemory: true}})
	require.NoError(t, err)
	defer closeStore()

	n, err := store.Orders.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestMigrateArgs(t *testing.T) {
	assert.NoError(t, migrateCmd.Args(migrateCmd, []string{"up"}))
	assert.NoError(t, migrateCmd.Args(migrateCmd, []string{"down"}))
	assert.Error(t, migrateCmd.Args(migrateCmd, []string{"sideways"}))
	assert.Error(t, migrateCmd.Args(migrateCmd, nil))
}

func TestSubcommandsRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"serve", "report", "seed", "migrate"} {
		assert.True(t, names[want], want)
	}
}

func TestReportQueryUsesConfigDefaults(t *testing.T) {
	cfg := &models.Config{Analytics: models.AnalyticsConfig{DefaultWindow: "last-month", DefaultLimit: 3}}

	flags := pflag.NewFlagSet("report", pflag.ContinueOnError)
	addReportQueryFlags(flags)
	q, err := reportQuery(flags, cfg)
	require.NoError(t, err)
	assert.Equal(t, analytics.WindowLastMonth, q.Window)
	assert.Equal(t, 3, q.Limit)

	require.NoError(t, flags.Parse([]string{"--window", "week", "--limit", "0"}))
	q, err = reportQuery(flags, cfg)
	require.NoError(t, err)
	assert.Equal(t, analytics.WindowLast7Days, q.Window)
	assert.Equal(t, 0, q.Limit)

	flags = pflag.NewFlagSet("report", pflag.ContinueOnError)
	addReportQueryFlags(flags)
	require.NoError(t, flags.Parse([]string{"--window", "fortnight"}))
	_, err = reportQuery(flags, cfg)
	assert.Error(t, err)
}
