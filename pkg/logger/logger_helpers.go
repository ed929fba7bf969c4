package logger

import (
	"time"

	"go.uber.org/zap"
)

const (
	FieldComponent  = "component"
	FieldRunID      = "run_id"
	FieldTargetURL  = "target_url"
	FieldWebhookURL = "webhook_url"
	FieldHasToken   = "has_access_token"
	FieldFallback   = "fallback"
	FieldStatusCode = "status_code"
	FieldRegNo      = "reg_no"
	FieldBodyLength = "body_length"
)

// Helper functions for common field types
func String(key, value string) zap.Field {
	return zap.String(key, value)
}

func Int(key string, value int) zap.Field {
	return zap.Int(key, value)
}

func Duration(key string, value time.Duration) zap.Field {
	return zap.Duration(key, value)
}

func Bool(key string, value bool) zap.Field {
	return zap.Bool(key, value)
}
