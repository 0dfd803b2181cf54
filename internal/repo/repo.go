package repo

import (
	accountrepo "github.com/GlebRadaev/bankledger/internal/repo/account-repo"
	"github.com/GlebRadaev/bankledger/internal/service/bankservice"
)

type Repositories struct {
	AccountRepo bankservice.Repo
}

func New() *Repositories {
	return &Repositories{
		AccountRepo: accountrepo.New(),
	}
}
