package repo

import (
	"github.com/evgzln/iiko-transfer/internal/pg"
	companyrepo "github.com/evgzln/iiko-transfer/internal/repo/company-repo"
	discountrepo "github.com/evgzln/iiko-transfer/internal/repo/discount-repo"
	orderrepo "github.com/evgzln/iiko-transfer/internal/repo/order-repo"
	refrepo "github.com/evgzln/iiko-transfer/internal/repo/ref-repo"
	stoplistrepo "github.com/evgzln/iiko-transfer/internal/repo/stoplist-repo"
	syncjoinrepo "github.com/evgzln/iiko-transfer/internal/repo/syncjoin-repo"
	synclogrepo "github.com/evgzln/iiko-transfer/internal/repo/synclog-repo"
	transferlogrepo "github.com/evgzln/iiko-transfer/internal/repo/transferlog-repo"
)

type Repositories struct {
	OrderRepo       *orderrepo.Repository
	CompanyRepo     *companyrepo.Repository
	DiscountRepo    *discountrepo.Repository
	SyncJoinRepo    *syncjoinrepo.Repository
	TransferLogRepo *transferlogrepo.Repository
	SyncLogRepo     *synclogrepo.Repository
	StopListRepo    *stoplistrepo.Repository
	RefRepo         *refrepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		OrderRepo:       orderrepo.New(conn, txManager),
		CompanyRepo:     companyrepo.New(conn),
		DiscountRepo:    discountrepo.New(conn),
		SyncJoinRepo:    syncjoinrepo.New(conn),
		TransferLogRepo: transferlogrepo.New(conn),
		SyncLogRepo:     synclogrepo.New(conn),
		StopListRepo:    stoplistrepo.New(conn, txManager),
		RefRepo:         refrepo.New(conn, txManager),
	}
}
