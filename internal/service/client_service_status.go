package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-agent-chat/internal/adapter"
	"github.com/MKhiriev/go-agent-chat/models"
)

type statusService struct {
	adapter adapter.ChatbotAdapter
}

// NewClientStatusService creates a ClientStatusService backed by the health endpoint.
func NewClientStatusService(chatbotAdapter adapter.ChatbotAdapter) ClientStatusService {
	return &statusService{adapter: chatbotAdapter}
}

func (s *statusService) Health(ctx context.Context) (models.HealthStatus, error) {
	status, err := s.adapter.Health(ctx)
	if err != nil {
		return models.HealthStatus{}, fmt.Errorf("health check: %w", err)
	}
	return status, nil
}
