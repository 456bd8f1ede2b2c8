package ons

import "fmt"

// code of the configuration check failures, distinguishing them from the
// transport and broker error classes
const configErrorCode = -5

const checkMsgFAQ = "https://help.aliyun.com/document_detail/29532.html"

// ConfigError the error returned when a recognized property receives a
// value its rule disallows
type ConfigError struct {
	Code    int
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("code:%d,message:%s", e.Code, e.Message)
}

func configError(msg string) *ConfigError {
	return &ConfigError{Code: configErrorCode, Message: msg + ", more help:" + checkMsgFAQ}
}
