package config

import (
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/shopspring/decimal"
)

type Config struct {
	LogLvl          string          `env:"LOG_LVL"           envDefault:"info"`
	LogOutput       string          `env:"LOG_OUTPUT"        envDefault:"stderr"`
	AccountPrefix   string          `env:"ACCOUNT_PREFIX"    envDefault:"ACC"`
	AccountSeqStart int64           `env:"ACCOUNT_SEQ_START" envDefault:"1000"`
	InterestRate    decimal.Decimal `env:"INTEREST_RATE"     envDefault:"3.5"`
	OverdraftLimit  decimal.Decimal `env:"OVERDRAFT_LIMIT"   envDefault:"1000"`
	HashCost        int             `env:"HASH_COST"         envDefault:"10"`
	AccrualInterval time.Duration   `env:"ACCRUAL_INTERVAL"  envDefault:"0s"`
	AccrualWorkers  int             `env:"ACCRUAL_WORKERS"   envDefault:"4"`
}

func New() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("can't parse env: %w", err)
	}

	flag.StringVar(&cfg.LogLvl, "l", cfg.LogLvl, "log level")
	flag.StringVar(&cfg.LogOutput, "o", cfg.LogOutput, "log output path")
	flag.StringVar(&cfg.AccountPrefix, "p", cfg.AccountPrefix, "account number prefix")
	flag.Int64Var(&cfg.AccountSeqStart, "s", cfg.AccountSeqStart, "account sequence start")
	flag.TextVar(&cfg.InterestRate, "i", cfg.InterestRate, "savings interest rate, percent")
	flag.TextVar(&cfg.OverdraftLimit, "d", cfg.OverdraftLimit, "current account overdraft limit")
	flag.IntVar(&cfg.HashCost, "c", cfg.HashCost, "bcrypt cost")
	flag.DurationVar(&cfg.AccrualInterval, "a", cfg.AccrualInterval, "interest accrual interval, 0 disables")
	flag.IntVar(&cfg.AccrualWorkers, "w", cfg.AccrualWorkers, "interest accrual workers")
	flag.Parse()

	if cfg.AccountSeqStart < 0 {
		return nil, fmt.Errorf("account sequence start can't be negative: %d", cfg.AccountSeqStart)
	}
	if cfg.InterestRate.IsNegative() {
		return nil, fmt.Errorf("interest rate can't be negative: %s", cfg.InterestRate)
	}
	if cfg.OverdraftLimit.IsNegative() {
		return nil, fmt.Errorf("overdraft limit can't be negative: %s", cfg.OverdraftLimit)
	}
	if cfg.AccrualWorkers < 1 {
		cfg.AccrualWorkers = 1
	}

	return cfg, nil
}
