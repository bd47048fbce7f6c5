package domain

import (
	"time"

	"github.com/google/uuid"
)

// PromptRole distinguishes what a trackable unit's payload drives. The
// payload itself is opaque to the core.
type PromptRole string

const (
	RoleSentiment PromptRole = "sentiment"
	RoleSelection PromptRole = "selection"
)

// UnitID builds the stable identifier for a trackable unit, e.g.
// "XLK/sentiment".
func UnitID(sectorID string, role PromptRole) string {
	return sectorID + "/" + string(role)
}

// PromptVersion is one immutable version of a unit's payload. Superseded,
// never edited. CreatedFrom is nil only for v0.
type PromptVersion struct {
	PromptVersionID uuid.UUID
	UnitID          string
	Role            PromptRole
	Version         int32
	Payload         string
	CreatedFrom     *uuid.UUID
	Reason          string
	CreatedAt       time.Time
}

// PerformanceRecord is the running outcome counter for one (unit, version).
// Frozen once the version is superseded.
type PerformanceRecord struct {
	UnitID    string
	Version   int32
	Correct   int32
	Total     int32
	Frozen    bool
	UpdatedAt time.Time
}

func (r PerformanceRecord) Accuracy() float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.Correct) / float64(r.Total)
}
