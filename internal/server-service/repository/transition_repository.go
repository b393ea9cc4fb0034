package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	apperrors "GSLM_Microservice/internal/server-service/errors"
	"GSLM_Microservice/internal/server-service/model"
	"GSLM_Microservice/pkg/lifecycle"

	"github.com/elastic/go-elasticsearch/v9"
)

// TransitionActivity is the aggregate view of the transition index over a
// time range, used for the daily report.
type TransitionActivity struct {
	TotalTransitions int
	StartedCnt       int
	OnlineCnt        int
	StoppedCnt       int
	ActiveServersCnt int
}

type TransitionRepository interface {
	GetServerTransitions(ctx context.Context, serverID int64, limit int) ([]model.Transition, error)
	GetTransitionActivity(ctx context.Context, startTime time.Time, endTime time.Time) (TransitionActivity, error)
}

const esTransitionIndexName = "state_transitions"

type transitionRepository struct {
	es *elasticsearch.Client
}

type esErrorResponse struct {
	Error struct {
		Type   string `json:"type"`
		Reason string `json:"reason"`
	}
}

type esTransitionsResponse struct {
	Hits struct {
		Hits []struct {
			Source model.Transition `json:"_source"`
		} `json:"hits"`
	} `json:"hits"`
}

func (t *transitionRepository) GetServerTransitions(ctx context.Context, serverID int64, limit int) ([]model.Transition, error) {
	query := map[string]interface{}{
		"size": limit,
		"query": map[string]interface{}{
			"term": map[string]interface{}{
				"server_id": serverID,
			},
		},
		"sort": []map[string]interface{}{
			{
				"timestamp": map[string]interface{}{
					"order": "desc",
				},
			},
		},
	}
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(query); err != nil {
		return nil, fmt.Errorf("TransitionRepository.GetServerTransitions encode query: %w", err)
	}
	res, err := t.es.Search(
		t.es.Search.WithContext(ctx),
		t.es.Search.WithIndex(esTransitionIndexName),
		t.es.Search.WithBody(&buf))
	if err != nil {
		return nil, fmt.Errorf("TransitionRepository.GetServerTransitions: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		var e esErrorResponse
		if err = json.NewDecoder(res.Body).Decode(&e); err != nil {
			return nil, fmt.Errorf("TransitionRepository.GetServerTransitions decode err response: %w", err)
		}
		return nil, fmt.Errorf("TransitionRepository.GetServerTransitions: %w", apperrors.NewElasticSearchError(res.StatusCode, e.Error.Type, e.Error.Reason))
	}

	var transitionsRes esTransitionsResponse
	if err = json.NewDecoder(res.Body).Decode(&transitionsRes); err != nil {
		return nil, fmt.Errorf("TransitionRepository.GetServerTransitions decode response body: %w", err)
	}
	transitions := make([]model.Transition, 0, len(transitionsRes.Hits.Hits))
	for _, hit := range transitionsRes.Hits.Hits {
		transitions = append(transitions, hit.Source)
	}
	return transitions, nil
}

type esActivityResponse struct {
	Hits struct {
		Total struct {
			Value int `json:"value"`
		} `json:"total"`
	} `json:"hits"`
	Aggregations struct {
		ToStates struct {
			Buckets []struct {
				Key      string `json:"key"`
				DocCount int    `json:"doc_count"`
			} `json:"buckets"`
		} `json:"to_states"`
		ActiveServers struct {
			Value int `json:"value"`
		} `json:"active_servers"`
	} `json:"aggregations"`
}

func (t *transitionRepository) GetTransitionActivity(ctx context.Context, startTime time.Time, endTime time.Time) (TransitionActivity, error) {
	query := map[string]interface{}{
		"size": 0,
		"query": map[string]interface{}{
			"range": map[string]interface{}{
				"timestamp": map[string]interface{}{
					"gte": startTime,
					"lt":  endTime,
				},
			},
		},
		"aggs": map[string]interface{}{
			"to_states": map[string]interface{}{
				"terms": map[string]interface{}{
					"field": "to_state",
					"size":  20,
				},
			},
			"active_servers": map[string]interface{}{
				"cardinality": map[string]interface{}{
					"field": "server_id",
				},
			},
		},
	}
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(query); err != nil {
		return TransitionActivity{}, fmt.Errorf("TransitionRepository.GetTransitionActivity encode query: %w", err)
	}
	res, err := t.es.Search(
		t.es.Search.WithContext(ctx),
		t.es.Search.WithIndex(esTransitionIndexName),
		t.es.Search.WithBody(&buf))
	if err != nil {
		return TransitionActivity{}, fmt.Errorf("TransitionRepository.GetTransitionActivity: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		var e esErrorResponse
		if err = json.NewDecoder(res.Body).Decode(&e); err != nil {
			return TransitionActivity{}, fmt.Errorf("TransitionRepository.GetTransitionActivity decode err response: %w", err)
		}
		return TransitionActivity{}, fmt.Errorf("TransitionRepository.GetTransitionActivity: %w", apperrors.NewElasticSearchError(res.StatusCode, e.Error.Type, e.Error.Reason))
	}

	var activityRes esActivityResponse
	if err = json.NewDecoder(res.Body).Decode(&activityRes); err != nil {
		return TransitionActivity{}, fmt.Errorf("TransitionRepository.GetTransitionActivity decode response body: %w", err)
	}
	activity := TransitionActivity{
		TotalTransitions: activityRes.Hits.Total.Value,
		ActiveServersCnt: activityRes.Aggregations.ActiveServers.Value,
	}
	for _, bucket := range activityRes.Aggregations.ToStates.Buckets {
		switch bucket.Key {
		case lifecycle.ServerStarting:
			activity.StartedCnt = bucket.DocCount
		case lifecycle.ServerStarted:
			activity.OnlineCnt = bucket.DocCount
		case lifecycle.ServerOffline:
			activity.StoppedCnt = bucket.DocCount
		}
	}
	return activity, nil
}

func NewTransitionRepository(esClient *elasticsearch.Client) TransitionRepository {
	return &transitionRepository{
		es: esClient,
	}
}
