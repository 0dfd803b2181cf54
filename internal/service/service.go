package service

import (
	"github.com/GlebRadaev/bankledger/internal/account"
	"github.com/GlebRadaev/bankledger/internal/config"
	"github.com/GlebRadaev/bankledger/internal/repo"
	"github.com/GlebRadaev/bankledger/internal/service/bankservice"
	"github.com/GlebRadaev/bankledger/pkg/auth"
)

type Services struct {
	BankService *bankservice.Service
}

func New(cfg *config.Config, repo *repo.Repositories, clock account.Clock) *Services {
	bankService := bankservice.New(repo.AccountRepo, auth.NewHashService(cfg.HashCost), bankservice.Terms{
		Prefix:         cfg.AccountPrefix,
		SeqStart:       cfg.AccountSeqStart,
		InterestRate:   cfg.InterestRate,
		OverdraftLimit: cfg.OverdraftLimit,
	}, clock)

	return &Services{
		BankService: bankService,
	}
}
