package get_revenue_stats

import (
	"context"

	getRevenueStats "github.com/crwnt7462-cloud/ALICIAAA-sub003/internal/usecase/get_revenue_stats"
)

type GetRevenueStatsUseCase interface {
	Execute(ctx context.Context, req *getRevenueStats.Request) (*getRevenueStats.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
