package scene

// Layers is a membership mask of 32 channels. A node is rendered by a camera
// when their layers share at least one channel.
type Layers struct {
	Mask uint32
}

const layersCount = 32

func NewLayers() Layers { return Layers{Mask: 1} }

func validChannel(channel int) bool {
	if channel < 0 || channel >= layersCount {
		logger().Warn("Layers: channel is out of range", "channel", channel)
		return false
	}
	return true
}

// Set enables only the given channel
func (l *Layers) Set(channel int) {
	if validChannel(channel) {
		l.Mask = 1 << uint(channel)
	}
}

func (l *Layers) Enable(channel int) {
	if validChannel(channel) {
		l.Mask |= 1 << uint(channel)
	}
}

func (l *Layers) EnableAll() { l.Mask = 0xffffffff }

func (l *Layers) Toggle(channel int) {
	if validChannel(channel) {
		l.Mask ^= 1 << uint(channel)
	}
}

func (l *Layers) Disable(channel int) {
	if validChannel(channel) {
		l.Mask &^= 1 << uint(channel)
	}
}

func (l *Layers) DisableAll() { l.Mask = 0 }

func (l Layers) IsEnabled(channel int) bool {
	if channel < 0 || channel >= layersCount {
		return false
	}
	return l.Mask&(1<<uint(channel)) != 0
}

func (l Layers) Test(other Layers) bool {
	return l.Mask&other.Mask != 0
}
