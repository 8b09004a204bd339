package repo

import (
	"time"

	"studio-site-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type CopilotLogRepo struct {
	db *gorm.DB
}

type CopilotLogRepoInterface interface {
	RecordExchange(transcript []byte, reply string, failed bool, detail string) error
}

func NewCopilotLogRepository(db *gorm.DB) CopilotLogRepoInterface {
	return &CopilotLogRepo{db: db}
}

// RecordExchange writes one exchange row. Callers treat this as best
// effort; a failed write must not fail the request it describes.
func (r *CopilotLogRepo) RecordExchange(transcript []byte, reply string, failed bool, detail string) error {
	return r.db.Create(&models.CopilotExchange{
		UUID:       uuid.New(),
		Transcript: datatypes.JSON(transcript),
		Reply:      reply,
		Failed:     failed,
		Detail:     detail,
		CreatedAt:  time.Now(),
	}).Error
}
