/*
File: formatter.go
Description: Text formatter for scan logs. Timestamp, colored level, message,
then structured fields as key=value pairs with long values shortened so file
previews never flood the terminal.
*/

package logging

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const maxFieldValueLen = 60

// ScanFormatter renders log entries for terminal and file output.
type ScanFormatter struct {
	Colors bool
}

// Format formats a single log entry.
func (f *ScanFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	var out strings.Builder

	timestamp := entry.Time.Format("2006-01-02 15:04:05.000")
	if f.Colors {
		out.WriteString(fmt.Sprintf("\033[36m%s\033[0m ", timestamp))
	} else {
		out.WriteString(timestamp + " ")
	}

	level := strings.ToUpper(entry.Level.String())
	if f.Colors {
		out.WriteString(fmt.Sprintf("\033[%dm%s\033[0m ", levelColor(entry.Level), level))
	} else {
		out.WriteString(level + " ")
	}

	out.WriteString(entry.Message)

	if len(entry.Data) > 0 {
		keys := make([]string, 0, len(entry.Data))
		for k := range entry.Data {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, k := range keys {
			out.WriteString(fmt.Sprintf(" %s=%s", k, f.formatValue(entry.Data[k])))
		}
	}

	out.WriteString("\n")
	return []byte(out.String()), nil
}

func (f *ScanFormatter) formatValue(value interface{}) string {
	var s string
	switch v := value.(type) {
	case time.Duration:
		s = v.String()
	case string:
		s = v
	default:
		s = fmt.Sprintf("%v", v)
	}
	if len(s) > maxFieldValueLen {
		s = s[:maxFieldValueLen] + "..."
	}
	return s
}

func levelColor(level logrus.Level) int {
	switch level {
	case logrus.DebugLevel:
		return 37
	case logrus.InfoLevel:
		return 32
	case logrus.WarnLevel:
		return 33
	case logrus.ErrorLevel, logrus.FatalLevel, logrus.PanicLevel:
		return 31
	default:
		return 37
	}
}
