package logging

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const slowQuery = 200 * time.Millisecond

// GormLogger routes gorm's statement log through logrus. Record-not-found
// is a normal outcome for lookups and is not logged.
type GormLogger struct {
	log   logrus.FieldLogger
	level logger.LogLevel
	slow  time.Duration
}

func NewGormLogger(log logrus.FieldLogger) *GormLogger {
	return &GormLogger{
		log:   log.WithField("component", "gorm"),
		level: logger.Warn,
		slow:  slowQuery,
	}
}

func (g *GormLogger) LogMode(level logger.LogLevel) logger.Interface {
	n := *g
	n.level = level
	return &n
}

func (g *GormLogger) Info(_ context.Context, msg string, args ...any) {
	if g.level >= logger.Info {
		g.log.Infof(msg, args...)
	}
}

func (g *GormLogger) Warn(_ context.Context, msg string, args ...any) {
	if g.level >= logger.Warn {
		g.log.Warnf(msg, args...)
	}
}

func (g *GormLogger) Error(_ context.Context, msg string, args ...any) {
	if g.level >= logger.Error {
		g.log.Errorf(msg, args...)
	}
}

func (g *GormLogger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	if g.level <= logger.Silent {
		return
	}

	elapsed := time.Since(begin)

	switch {
	case err != nil && g.level >= logger.Error && !errors.Is(err, gorm.ErrRecordNotFound):
		sql, rows := fc()
		g.log.WithError(err).WithFields(logrus.Fields{
			"sql":      sql,
			"rows":     rows,
			"duration": elapsed.String(),
		}).Error("query failed")

	case g.slow > 0 && elapsed > g.slow && g.level >= logger.Warn:
		sql, rows := fc()
		g.log.WithFields(logrus.Fields{
			"sql":      sql,
			"rows":     rows,
			"duration": elapsed.String(),
		}).Warn("slow query")

	case g.level >= logger.Info:
		sql, rows := fc()
		g.log.WithFields(logrus.Fields{
			"sql":  sql,
			"rows": rows,
		}).Debug("query")
	}
}

var _ logger.Interface = (*GormLogger)(nil)
