package monitorlog

import (
	"fmt"
	"os"

	"agromon/entities"
)

// Logger appends one plain-text line per registration to a local file.
// Line format is fixed:
//
//	[YYYY-MM-DD HH:MM:SS] Field ID <id> - Stress: <level> - Loss: <pct>%
type Logger struct{ path string }

func New(path string) *Logger { return &Logger{path: path} }

func (l *Logger) Append(rec entities.FieldRecord) error {
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open monitor log: %w", err)
	}
	defer f.Close()

	line := fmt.Sprintf("[%s] Field ID %d - Stress: %s - Loss: %.1f%%\n",
		rec.CreatedAt.Format("2006-01-02 15:04:05"), rec.ID, rec.StressLevel, rec.LossFraction*100)
	if _, err := f.WriteString(line); err != nil {
		return fmt.Errorf("append monitor log: %w", err)
	}
	return nil
}
