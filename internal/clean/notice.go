package clean

import "fmt"

// Level classifies a cleaning notice for the presentation layer.
type Level string

const (
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Notice is a structured message emitted while cleaning, with the number of
// rows it affected. The cleaner never prints; consumers decide how to render.
type Notice struct {
	Level   Level  `json:"level"`
	Message string `json:"message"`
	Rows    int    `json:"rows"`
}

// Reporter receives cleaning notices.
type Reporter interface {
	Notice(n Notice)
}

// Collector is a Reporter that accumulates notices in order.
type Collector struct {
	Notices []Notice
}

func (c *Collector) Notice(n Notice) { c.Notices = append(c.Notices, n) }

func infof(r Reporter, rows int, format string, args ...any) {
	if r != nil {
		r.Notice(Notice{Level: LevelInfo, Message: fmt.Sprintf(format, args...), Rows: rows})
	}
}

func warnf(r Reporter, rows int, format string, args ...any) {
	if r != nil {
		r.Notice(Notice{Level: LevelWarning, Message: fmt.Sprintf(format, args...), Rows: rows})
	}
}
