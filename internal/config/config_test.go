package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("POSTGRES_USER", "chef")
	t.Setenv("POSTGRES_PASSWORD", "secret")
	t.Setenv("PAYMENT_API_KEY", "sk_test")
}

func TestConfig_Defaults(t *testing.T) {
	setRequired(t)

	conf := New()
	require.NoError(t, conf.Validate())

	assert.Equal(t, "development", conf.Env)
	assert.Equal(t, 24*time.Hour, conf.Orders.ExpireAfter)
	assert.Equal(t, 1000, conf.Payment.PlatformFeeBps)
	assert.Equal(t, "header", conf.Auth.Mode)
	assert.Equal(t, time.UTC, conf.Location())
}

func TestConfig_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("ORDER_EXPIRE_AFTER", "90m")
	t.Setenv("SWEEP_BATCH_SIZE", "10")
	t.Setenv("ADMIN_EMAILS", "ops@example.com, root@example.com")
	t.Setenv("PICKUP_TIMEZONE", "Europe/Berlin")
	t.Setenv("POSTGRES_AUTO_MIGRATE", "false")

	conf := New()
	require.NoError(t, conf.Validate())

	assert.Equal(t, 90*time.Minute, conf.Orders.ExpireAfter)
	assert.Equal(t, 10, conf.Orders.SweepBatchSize)
	assert.Equal(t, []string{"ops@example.com", "root@example.com"}, conf.Auth.AdminEmails)
	assert.Equal(t, "Europe/Berlin", conf.Location().String())
	assert.False(t, conf.Postgres.AutoMigrate)
}

func TestConfig_Invalid(t *testing.T) {
	testCases := []struct {
		name string
		env  map[string]string
	}{
		{name: "unknown env", env: map[string]string{"ENV": "qa"}},
		{name: "fee above 100%", env: map[string]string{"PLATFORM_FEE_BPS": "20000"}},
		{name: "firebase without project", env: map[string]string{"AUTH_MODE": "firebase"}},
		{name: "bad currency", env: map[string]string{"PAYMENT_CURRENCY": "dollars"}},
		{name: "bad admin email", env: map[string]string{"ADMIN_EMAILS": "not-an-email"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			setRequired(t)
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			assert.Error(t, New().Validate())
		})
	}
}
