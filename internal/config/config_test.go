package config

import (
	"flag"
	"os"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetFlagsAndArgs() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	os.Args = []string{"cmd"}
}

func resetEnv(t *testing.T) {
	for _, key := range []string{
		"LOG_LVL", "LOG_OUTPUT", "ACCOUNT_PREFIX", "ACCOUNT_SEQ_START", "INTEREST_RATE",
		"OVERDRAFT_LIMIT", "HASH_COST", "ACCRUAL_INTERVAL", "ACCRUAL_WORKERS",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func setEnv(t *testing.T) {
	t.Setenv("LOG_LVL", "debug")
	t.Setenv("LOG_OUTPUT", "stdout")
	t.Setenv("ACCOUNT_PREFIX", "BNK")
	t.Setenv("ACCOUNT_SEQ_START", "5000")
	t.Setenv("INTEREST_RATE", "4.25")
	t.Setenv("OVERDRAFT_LIMIT", "250")
	t.Setenv("HASH_COST", "4")
	t.Setenv("ACCRUAL_INTERVAL", "1m")
	t.Setenv("ACCRUAL_WORKERS", "2")
}

func TestDefaults(t *testing.T) {
	resetFlagsAndArgs()
	resetEnv(t)

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLvl)
	assert.Equal(t, "stderr", cfg.LogOutput)
	assert.Equal(t, "ACC", cfg.AccountPrefix)
	assert.Equal(t, int64(1000), cfg.AccountSeqStart)
	assert.True(t, cfg.InterestRate.Equal(decimal.RequireFromString("3.5")))
	assert.True(t, cfg.OverdraftLimit.Equal(decimal.NewFromInt(1000)))
	assert.Equal(t, 10, cfg.HashCost)
	assert.Equal(t, time.Duration(0), cfg.AccrualInterval)
	assert.Equal(t, 4, cfg.AccrualWorkers)
}

func TestEnv(t *testing.T) {
	resetFlagsAndArgs()
	resetEnv(t)
	setEnv(t)

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLvl)
	assert.Equal(t, "stdout", cfg.LogOutput)
	assert.Equal(t, "BNK", cfg.AccountPrefix)
	assert.Equal(t, int64(5000), cfg.AccountSeqStart)
	assert.True(t, cfg.InterestRate.Equal(decimal.RequireFromString("4.25")))
	assert.True(t, cfg.OverdraftLimit.Equal(decimal.NewFromInt(250)))
	assert.Equal(t, 4, cfg.HashCost)
	assert.Equal(t, time.Minute, cfg.AccrualInterval)
	assert.Equal(t, 2, cfg.AccrualWorkers)
}

func TestFlagsOverrideEnv(t *testing.T) {
	resetFlagsAndArgs()
	resetEnv(t)
	setEnv(t)
	os.Args = []string{
		"cmd",
		"-l", "error",
		"-p", "XYZ",
		"-i", "1.5",
		"-d", "50",
		"-a", "30s",
		"-w", "0",
	}

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, "error", cfg.LogLvl)
	assert.Equal(t, "XYZ", cfg.AccountPrefix)
	assert.True(t, cfg.InterestRate.Equal(decimal.RequireFromString("1.5")))
	assert.True(t, cfg.OverdraftLimit.Equal(decimal.NewFromInt(50)))
	assert.Equal(t, 30*time.Second, cfg.AccrualInterval)
	assert.Equal(t, 1, cfg.AccrualWorkers)
	assert.Equal(t, int64(5000), cfg.AccountSeqStart)
}

func TestNegativeSequenceStartFlag(t *testing.T) {
	resetFlagsAndArgs()
	resetEnv(t)
	os.Args = []string{"cmd", "-s", "-5"}

	cfg, err := New()
	require.Error(t, err)
	assert.Equal(t, "account sequence start can't be negative: -5", err.Error())
	assert.Nil(t, cfg)
}

func TestInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "Malformed rate", key: "INTEREST_RATE", value: "abc"},
		{name: "Negative rate", key: "INTEREST_RATE", value: "-1"},
		{name: "Negative overdraft", key: "OVERDRAFT_LIMIT", value: "-10"},
		{name: "Negative sequence start", key: "ACCOUNT_SEQ_START", value: "-5"},
		{name: "Malformed interval", key: "ACCRUAL_INTERVAL", value: "soon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlagsAndArgs()
			resetEnv(t)
			t.Setenv(tt.key, tt.value)

			cfg, err := New()
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}
