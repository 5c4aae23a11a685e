package collect

import (
	"context"
	"net/url"

	"github.com/webboost/webboost/internal/model"
)

// SecurityCollector records transport security flags for the page URL.
type SecurityCollector struct{}

// NewSecurityCollector creates a transport security collector.
func NewSecurityCollector() *SecurityCollector {
	return &SecurityCollector{}
}

// Name implements Collector.
func (s *SecurityCollector) Name() string {
	return "security"
}

// Collect implements Collector.
func (s *SecurityCollector) Collect(_ context.Context, snapshot *model.PageSnapshot, bundle *model.SignalBundle) error {
	u, err := url.Parse(snapshot.URL)
	if err != nil {
		return err
	}

	https := u.Scheme == "https"
	bundle.Security.HTTPS = https
	bundle.Security.Secure = https
	return nil
}
