package logger

import (
	"io"

	"github.com/sirupsen/logrus"
)

var Log *logrus.Logger

var discard = func() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}()

// Init инициализирует структурированный логгер.
func Init(level string) {
	Log = logrus.New()

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	Log.SetLevel(lvl)

	// Используем JSON формат для production, text для development
	Log.SetFormatter(&logrus.JSONFormatter{})
}

// SetTextFormatter устанавливает текстовый формат логов (для development).
func SetTextFormatter() {
	if Log != nil {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}
}

// L возвращает глобальный логгер. До Init логи отбрасываются, что удобно в тестах.
func L() *logrus.Logger {
	if Log != nil {
		return Log
	}
	return discard
}

// ForCandidate добавляет к записи идентификатор кандидата.
func ForCandidate(candidateID any) *logrus.Entry {
	return L().WithField("candidate_id", candidateID)
}
