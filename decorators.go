package num2text

import (
	"time"

	"go.uber.org/zap"
)

// ConversionHook observes or rewrites conversions. BeforeConvert may change
// the value and options; AfterConvert may change the result and error.
type ConversionHook interface {
	BeforeConvert(ctx *ConversionContext)
	AfterConvert(ctx *ConversionContext)
}

// ConversionContext carries one conversion through the hooks.
type ConversionContext struct {
	Locale   string
	Value    any
	Options  Options
	Result   string
	Special  Special
	Error    error
	Metadata map[string]any
}

func (ctx *ConversionContext) ensureMetadata() {
	if ctx.Metadata == nil {
		ctx.Metadata = make(map[string]any)
	}
}

func (ctx *ConversionContext) SetMetadata(key string, value any) {
	if ctx == nil || key == "" {
		return
	}
	ctx.ensureMetadata()
	ctx.Metadata[key] = value
}

func (ctx *ConversionContext) MetadataValue(key string) (any, bool) {
	if ctx == nil || ctx.Metadata == nil {
		return nil, false
	}
	val, ok := ctx.Metadata[key]
	return val, ok
}

// ConversionHookFuncs adapts plain functions to ConversionHook.
type ConversionHookFuncs struct {
	Before func(ctx *ConversionContext)
	After  func(ctx *ConversionContext)
}

func (h ConversionHookFuncs) BeforeConvert(ctx *ConversionContext) {
	if h.Before != nil {
		h.Before(ctx)
	}
}

func (h ConversionHookFuncs) AfterConvert(ctx *ConversionContext) {
	if h.After != nil {
		h.After(ctx)
	}
}

const metadataStartedAt = "num2text.started_at"

// NewLoggingHook logs every conversion at debug level.
func NewLoggingHook(logger *zap.Logger) ConversionHook {
	if logger == nil {
		logger = zap.NewNop()
	}
	return ConversionHookFuncs{
		Before: func(ctx *ConversionContext) {
			ctx.SetMetadata(metadataStartedAt, time.Now())
		},
		After: func(ctx *ConversionContext) {
			fields := []zap.Field{
				zap.String("locale", ctx.Locale),
				zap.String("mode", ctx.Options.Mode.String()),
				zap.Int("length", len(ctx.Result)),
			}
			if started, ok := ctx.MetadataValue(metadataStartedAt); ok {
				if t, ok := started.(time.Time); ok {
					fields = append(fields, zap.Duration("elapsed", time.Since(t)))
				}
			}
			if ctx.Error != nil {
				logger.Debug("num2text: conversion failed", append(fields, zap.Error(ctx.Error))...)
				return
			}
			logger.Debug("num2text: converted", fields...)
		},
	}
}

func filterHooks(hooks []ConversionHook) []ConversionHook {
	var out []ConversionHook
	for _, hook := range hooks {
		if hook == nil {
			continue
		}
		out = append(out, hook)
	}
	return out
}
