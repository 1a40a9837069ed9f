package fiberlog

import "github.com/sirupsen/logrus"

// Config - настройка middleware логирования запросов
type Config struct {
	Logger *logrus.Logger
	Tags   []string
}

// ConfigDefault - набор тегов по умолчанию
var ConfigDefault = Config{
	Logger: nil,
	Tags: []string{
		TagStatus,
		TagLatency,
		TagMethod,
		TagPath,
	},
}
