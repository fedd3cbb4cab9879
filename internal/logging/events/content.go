package events

import "github.com/atomicstack/coderibbon/internal/logging"

type ContentTracer struct{}

var Content = ContentTracer{}

func (ContentTracer) Open(path, patch string) {
	logging.Trace("content.open", map[string]interface{}{"path": path, "patch": patch})
}

func (ContentTracer) Attach(path, patch string) {
	logging.Trace("content.attach", map[string]interface{}{"path": path, "patch": patch})
}

func (ContentTracer) Orphaned(path, patch string) {
	logging.Trace("content.orphaned", map[string]interface{}{"path": path, "patch": patch})
}

func (ContentTracer) Detach(path string) {
	logging.Trace("content.detach", map[string]interface{}{"path": path})
}

func (ContentTracer) Error(path string, err error) {
	if err == nil {
		return
	}
	logging.Trace("content.error", map[string]interface{}{"path": path, "error": err.Error()})
}
