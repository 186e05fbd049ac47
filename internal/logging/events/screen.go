package events

import "github.com/atomicstack/typelog/internal/logging"

type ChannelTracer struct{}

type AdapterTracer struct{}

type ScreenTracer struct{}

type ReplayTracer struct{}

var (
	Channel = ChannelTracer{}
	Adapter = AdapterTracer{}
	Screen  = ScreenTracer{}
	Replay  = ReplayTracer{}
)

func (ChannelTracer) Subscribe(id string) {
	logging.Trace("channel.subscribe", map[string]interface{}{"handle": id})
}

func (ChannelTracer) Publish(entries int, latest string) {
	logging.Trace("channel.publish", map[string]interface{}{"entries": entries, "latest": latest})
}

func (AdapterTracer) Redraw(rows, generation int) {
	logging.Trace("adapter.redraw", map[string]interface{}{"rows": rows, "generation": generation})
}

func (ScreenTracer) Notice(message string) {
	logging.Trace("screen.notice", map[string]interface{}{"message": message})
}

func (ScreenTracer) Teardown(released int) {
	logging.Trace("screen.teardown", map[string]interface{}{"released": released})
}

// Detached records a text change that arrived after teardown.
func (ScreenTracer) Detached(text string) {
	logging.Trace("screen.detached-change", map[string]interface{}{"text": text})
}

func (ReplayTracer) Line(line int, text string) {
	logging.Trace("replay.line", map[string]interface{}{"line": line, "text": text})
}

func (ReplayTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("replay.error", map[string]interface{}{"error": err.Error()})
}

func (ReplayTracer) Done() {
	logging.Trace("replay.done", nil)
}
