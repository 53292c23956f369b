package pipeline

// ChannelSink forwards events into a channel, typically consumed by the
// terminal progress UI.
type ChannelSink struct {
	Ch chan<- Event
}

func (s ChannelSink) OnEvent(evt Event) {
	if s.Ch == nil {
		return
	}
	s.Ch <- evt
}

// NopSink discards events.
type NopSink struct{}

func (NopSink) OnEvent(Event) {}
