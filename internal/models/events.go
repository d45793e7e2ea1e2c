package models

import (
	"fmt"
	"time"

	"github.com/lucsky/cuid"
	"github.com/xitongsys/parquet-go/schema"
)

const TopicDecisionEvents = "decision_events"

// DecisionEvent records one draw as emitted to the output destinations.
// Unlike record ids, event ids are not content-derived; each draw is a
// distinct occurrence.
type DecisionEvent struct {
	EventID        string `json:"eventId" parquet:"name=eventId,type=BYTE_ARRAY,convertedtype=UTF8"`
	Timestamp      int64  `json:"timestamp" parquet:"name=timestamp,type=INT64"`
	Filter         string `json:"filter" parquet:"name=filter,type=BYTE_ARRAY,convertedtype=UTF8"`
	PickID         string `json:"pickId" parquet:"name=pickId,type=BYTE_ARRAY,convertedtype=UTF8"`
	PickName       string `json:"pickName" parquet:"name=pickName,type=BYTE_ARRAY,convertedtype=UTF8"`
	CandidateCount int32  `json:"candidateCount" parquet:"name=candidateCount,type=INT32"`
}

func NewDecisionEvent(filter Filter, pick *MenuRecord, candidateCount int) DecisionEvent {
	ev := DecisionEvent{
		EventID:        cuid.New(),
		Timestamp:      time.Now().Unix(),
		Filter:         filter.Describe(),
		CandidateCount: int32(candidateCount),
	}
	if pick != nil {
		ev.PickID = pick.ID
		ev.PickName = pick.Name
	}
	return ev
}

func GetSchema(topic string) (*schema.SchemaHandler, error) {
	switch topic {
	case TopicDecisionEvents:
		return schema.NewSchemaHandlerFromStruct(new(DecisionEvent))
	default:
		return nil, fmt.Errorf("unknown event type: %s", topic)
	}
}
