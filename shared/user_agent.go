package shared

import (
	"net/http"
)

type IUserAgent interface {
	AddUserAgent(req *http.Request)
}

type userAgent struct {
	userAgentValue string
}

func NewUserAgent(cfg *Config) IUserAgent {
	value := cfg.UserAgent
	if value == "" {
		value = defUserAgent
	}
	return &userAgent{
		userAgentValue: value,
	}
}

func (ua *userAgent) AddUserAgent(req *http.Request) {
	req.Header.Set("User-Agent", ua.userAgentValue)
}
