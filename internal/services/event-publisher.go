package services

import (
	"context"
	"encoding/json"

	"github.com/SundayYogurt/jobboard_service/internal/dto"
	"github.com/SundayYogurt/jobboard_service/internal/interfaces"
	"github.com/rs/zerolog/log"
)

type eventPublisher struct {
	producer interfaces.ProducerHandler
}

// publish sends an application event. Failures are logged only.
func (p eventPublisher) publish(ctx context.Context, name string, evt dto.ApplicationEvent) {
	if p.producer == nil {
		return
	}

	payload, err := json.Marshal(evt)
	if err != nil {
		log.Error().Err(err).Str("event", name).Msg("marshal application event")
		return
	}

	if err := p.producer.PublishMessage(ctx, []byte(name), payload); err != nil {
		log.Warn().Err(err).
			Str("event", name).
			Uint("application_id", evt.ApplicationID).
			Msg("publish application event failed")
	}
}
