package repository

import (
	"fmt"
	"sync"

	"fundplanner/internal/domain"

	"github.com/google/uuid"
)

const DefaultLatencyTrackingCapacity = 100

type LatencyRecord struct {
	RequestID       *uuid.UUID `json:"requestID"`
	ProcessingTimes string     `json:"processingTimes"`
}

type LatencyTrackingRepository interface {
	Add(lt domain.PerformanceProfile, requestID *uuid.UUID) error
	List() []LatencyRecord
}

// keeps the most recent profiles in memory, oldest first
type latencyTrackingRepositoryHandler struct {
	mutex    *sync.Mutex
	capacity int
	records  []LatencyRecord
}

func NewLatencyTrackingRepository(capacity int) LatencyTrackingRepository {
	if capacity <= 0 {
		capacity = DefaultLatencyTrackingCapacity
	}
	return &latencyTrackingRepositoryHandler{
		mutex:    &sync.Mutex{},
		capacity: capacity,
	}
}

func (h *latencyTrackingRepositoryHandler) Add(lt domain.PerformanceProfile, requestID *uuid.UUID) error {
	bytes, err := lt.ToJsonBytes()
	if err != nil {
		return fmt.Errorf("failed to add latency tracking: %w", err)
	}

	h.mutex.Lock()
	defer h.mutex.Unlock()

	h.records = append(h.records, LatencyRecord{
		RequestID:       requestID,
		ProcessingTimes: string(bytes),
	})
	if len(h.records) > h.capacity {
		h.records = h.records[len(h.records)-h.capacity:]
	}

	return nil
}

func (h *latencyTrackingRepositoryHandler) List() []LatencyRecord {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	out := make([]LatencyRecord, len(h.records))
	copy(out, h.records)
	return out
}
