package tracker

type (
	follow    Model
	sustain   Model
	beat34    Model
	channelOn struct {
		m       *Model
		channel int
	}
)

// Model methods

func (m *Model) Follow() Bool  { return MakeBool((*follow)(m)) }
func (m *Model) Sustain() Bool { return MakeBool((*sustain)(m)) }
func (m *Model) Beat34() Bool  { return MakeBool((*beat34)(m)) }

// ChannelOn returns a Bool telling if the channel is audible. Disabled
// channels are muted every tick.
func (m *Model) ChannelOn(channel int) Bool {
	if channel < 0 || channel >= len(m.d.ChannelOn) {
		return Bool{}
	}
	return MakeBool(&channelOn{m: m, channel: channel})
}

// follow

func (m *follow) Value() bool         { return m.d.Follow }
func (m *follow) SetValue(value bool) { m.d.Follow = value }

// sustain

func (m *sustain) Value() bool { return m.d.Sustain }
func (m *sustain) SetValue(value bool) {
	m.d.Sustain = value
	m.engine.SetSustain(value)
}

// beat34

func (m *beat34) Value() bool         { return m.d.Beat34 }
func (m *beat34) SetValue(value bool) { m.d.Beat34 = value }

// channelOn

func (c *channelOn) Value() bool         { return c.m.d.ChannelOn[c.channel] }
func (c *channelOn) SetValue(value bool) { c.m.d.ChannelOn[c.channel] = value }
