package collect

import (
	"context"
	"testing"

	"github.com/webboost/webboost/internal/model"
)

func TestSecurityCollector(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		url  string
		want bool
	}{
		{name: "https", url: "https://example.com/post", want: true},
		{name: "http", url: "http://example.com/post", want: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			bundle := &model.SignalBundle{}
			snap := &model.PageSnapshot{URL: tt.url}
			if err := NewSecurityCollector().Collect(context.Background(), snap, bundle); err != nil {
				t.Fatalf("Collect() error = %v", err)
			}

			if bundle.Security.HTTPS != tt.want || bundle.Security.Secure != tt.want {
				t.Errorf("Security = %+v, want https=%v", bundle.Security, tt.want)
			}
		})
	}
}
