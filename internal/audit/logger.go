package audit

import (
	"context"
	"encoding/json"

	dbpkg "github.com/pauloryan091/agmais/internal/db"
	"github.com/pauloryan091/agmais/internal/models"
)

type Logger struct {
	conn dbpkg.Conn
}

func New(conn dbpkg.Conn) *Logger {
	return &Logger{conn: conn}
}

func (l *Logger) Log(
	ctx context.Context,
	ownerID uint,
	action string,
	entity string,
	entityID *uint,
	metadata any,
) error {

	db, err := l.conn.Session(ctx)
	if err != nil {
		return err
	}

	var metaJSON string
	if metadata != nil {
		if b, err := json.Marshal(metadata); err == nil {
			metaJSON = string(b)
		}
	}

	row := models.AuditLog{
		OwnerUserID: ownerID,
		Action:      action,
		Entity:      entity,
		EntityID:    entityID,
		Metadata:    metaJSON,
	}

	return db.Create(&row).Error
}
