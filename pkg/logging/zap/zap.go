package zap

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger returns a development logger in dev mode and a production
// logger otherwise. It never returns nil.
func NewLogger(dev bool) *zap.SugaredLogger {
	var (
		logger *zap.Logger
		err    error
	)
	if dev {
		logger, err = zap.NewDevelopment()
	} else {
		cfg := zap.NewProductionConfig()
		cfg.Encoding = "console"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		logger, err = cfg.Build()
	}
	if err != nil {
		logger = zap.NewNop()
	}
	return logger.Sugar()
}

// WailsLogger adapts a sugared logger to the webview runtime's logger
// interface.
type WailsLogger struct {
	Logger *zap.SugaredLogger
}

func (l WailsLogger) Print(message string)   { l.Logger.Info(message) }
func (l WailsLogger) Trace(message string)   { l.Logger.Debug(message) }
func (l WailsLogger) Debug(message string)   { l.Logger.Debug(message) }
func (l WailsLogger) Info(message string)    { l.Logger.Info(message) }
func (l WailsLogger) Warning(message string) { l.Logger.Warn(message) }
func (l WailsLogger) Error(message string)   { l.Logger.Error(message) }
func (l WailsLogger) Fatal(message string)   { l.Logger.Fatal(message) }
