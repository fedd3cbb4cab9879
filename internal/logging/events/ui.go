package events

import "github.com/atomicstack/coderibbon/internal/logging"

type UITracer struct{}

type PaletteTracer struct{}

var (
	UI      = UITracer{}
	Palette = PaletteTracer{}
)

func (UITracer) Key(key, command string) {
	logging.Trace("ui.key", map[string]interface{}{"key": key, "command": command})
}

func (UITracer) Resize(width, height int) {
	logging.Trace("ui.resize", map[string]interface{}{"width": width, "height": height})
}

func (PaletteTracer) Open(kind string, items int) {
	logging.Trace("palette.open", map[string]interface{}{"kind": kind, "items": items})
}

func (PaletteTracer) Filter(kind, query string, matches int) {
	logging.Trace("palette.filter", map[string]interface{}{"kind": kind, "query": query, "matches": matches})
}

func (PaletteTracer) Select(kind, id string) {
	logging.Trace("palette.select", map[string]interface{}{"kind": kind, "id": id})
}

func (PaletteTracer) Cancel(kind string) {
	logging.Trace("palette.cancel", map[string]interface{}{"kind": kind})
}
