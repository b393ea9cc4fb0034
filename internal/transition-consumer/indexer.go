package transition_consumer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	apperrors "GSLM_Microservice/internal/server-service/errors"
	"GSLM_Microservice/internal/server-service/model"

	"github.com/elastic/go-elasticsearch/v9"
)

const esTransitionIndexName = "state_transitions"

type TransitionIndexer interface {
	IndexTransition(ctx context.Context, event model.Transition) error
}

type esTransitionIndexer struct {
	es *elasticsearch.Client
}

type esErrorResponse struct {
	Error struct {
		Type   string `json:"type"`
		Reason string `json:"reason"`
	}
}

func (t *esTransitionIndexer) IndexTransition(ctx context.Context, event model.Transition) error {
	b, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("TransitionIndexer.IndexTransition encode event: %w", err)
	}
	res, err := t.es.Index(esTransitionIndexName, bytes.NewReader(b), t.es.Index.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("TransitionIndexer.IndexTransition: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		var e esErrorResponse
		if err = json.NewDecoder(res.Body).Decode(&e); err != nil {
			return fmt.Errorf("TransitionIndexer.IndexTransition decode err response: %w", err)
		}
		return fmt.Errorf("TransitionIndexer.IndexTransition: %w", apperrors.NewElasticSearchError(res.StatusCode, e.Error.Type, e.Error.Reason))
	}
	return nil
}

func NewTransitionIndexer(esClient *elasticsearch.Client) TransitionIndexer {
	return &esTransitionIndexer{
		es: esClient,
	}
}
