package presenter

import "gigboard/pkg/logger"

type errorLogger interface {
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
}
