package events

import "github.com/atomicstack/typelog/internal/logging"

type UITracer struct{}

type InputTracer struct{}

type JumpTracer struct{}

type CommandTracer struct{}

var (
	UI      = UITracer{}
	Input   = InputTracer{}
	Jump    = JumpTracer{}
	Command = CommandTracer{}
)

func (UITracer) Focus(target string) {
	logging.Trace("ui.focus", map[string]interface{}{"target": target})
}

func (UITracer) Cursor(cursor, offset int) {
	logging.Trace("ui.cursor", map[string]interface{}{"cursor": cursor, "offset": offset})
}

func (UITracer) Resize(width, height int) {
	logging.Trace("ui.resize", map[string]interface{}{"width": width, "height": height})
}

func (InputTracer) Changed(text string) {
	logging.Trace("input.changed", map[string]interface{}{"text": text})
}

func (JumpTracer) Query(query string, cursor int) {
	logging.Trace("jump.query", map[string]interface{}{"query": query, "cursor": cursor})
}

func (JumpTracer) Cleared() {
	logging.Trace("jump.clear", nil)
}

func (CommandTracer) Queue(pending int) {
	logging.Trace("command.queue", map[string]interface{}{"pending": pending})
}

func (CommandTracer) Drain(ran int) {
	if ran == 0 {
		return
	}
	logging.Trace("command.drain", map[string]interface{}{"ran": ran})
}
