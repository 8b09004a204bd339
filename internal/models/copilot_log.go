package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// CopilotExchange records one proxy exchange for server-side diagnostics.
// The request transcript is kept as JSON; provider error detail lands in
// Detail and never leaves the server.
type CopilotExchange struct {
	UUID       uuid.UUID      `gorm:"type:uuid;primaryKey;" json:"uuid"`
	Transcript datatypes.JSON `json:"transcript"`
	Reply      string         `json:"reply"`
	Failed     bool           `json:"failed"`
	Detail     string         `json:"detail"`
	CreatedAt  time.Time      `json:"created_at"`
}
