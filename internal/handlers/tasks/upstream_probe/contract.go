//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=upstream_probe_test
package upstream_probe

import (
	"context"

	"gigboard/pkg/logger"
)

type taskLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
}

type Pinger interface {
	Ping(ctx context.Context) error
}
