package exchange

import (
	"context"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	converter "go-currency-converter-agent"
)

// loggingService decorates an exchange.Service with logging
type loggingService struct {
	logger log.Logger
	next   Service
}

// NewLoggingService returns a new instance of a logging Service
func NewLoggingService(logger log.Logger, s Service) Service {
	return &loggingService{
		next:   s,
		logger: logger,
	}
}

func (s *loggingService) Convert(ctx context.Context, amount converter.Amount, from converter.Currency, to converter.Currency) (ex converter.Exchanged, err error) {
	defer func(begin time.Time) {
		if err != nil {
			level.Warn(s.logger).Log(
				"method", "convert",
				"amount", amount,
				"from", from,
				"to", to,
				"took", time.Since(begin),
				"err", err,
			)
			return
		}
		level.Info(s.logger).Log(
			"method", "convert",
			"amount", amount,
			"from", from,
			"to", to,
			"rate", ex.Rate,
			"converted_amount", ex.Amount,
			"result", ex.String(),
			"took", time.Since(begin),
		)
	}(time.Now())
	return s.next.Convert(ctx, amount, from, to)
}
