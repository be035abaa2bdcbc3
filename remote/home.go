package remote

// Home holds the actions behind the remote's buttons for the Sony TV, the
// two DVD players and the PVR.
type Home struct {
	TVOnOff, TVOn, TVOff         *IRAction
	TVHome, TVReturn, TVSourceTV *IRAction
	TVHDMI                       [5]*IRAction // HDMI 1-4 at [1:5]
	TVMute, TVVolumeUp           *IRAction
	TVVolumeDown                 *IRAction

	PVROnOff, PVROn, PVROff                      *IRAction
	LaserDVDOnOff, LaserDVDOn, LaserDVDOff       *IRAction
	SamsungDVDOnOff, SamsungDVDOn, SamsungDVDOff *IRAction

	AllOff          *Sequence
	WatchTV         *Sequence
	WatchLaserDVD   *Sequence
	WatchSamsungDVD *Sequence
	WatchPVR        *Sequence

	// FixEach toggles each device without touching the tracked power
	// state, for when it has drifted.
	FixEach []Action
}

// powered returns the toggle, on and off actions of a device whose only
// power command is on_off.
func powered(dev *Device, label string) (onOff, on, off *IRAction) {
	onOff = &IRAction{Label: label + " On/Off", Device: dev, Command: "on_off", Delay: DefaultDelay}
	on = &IRAction{Label: label + " On", Device: dev, Command: "on_off", Delay: DefaultDelay, Status: &dev.Power, Want: true}
	off = &IRAction{Label: label + " Off", Device: dev, Command: "on_off", Delay: DefaultDelay, Status: &dev.Power, Want: false}
	return
}

// NewHome builds the actions from the devices registered with r.
func NewHome(r *Remote) (*Home, error) {
	devs := make(map[string]*Device)
	for _, name := range []string{SonyTV, LaserDVD, TeacPVR, SamsungDVD} {
		d, err := r.Device(name)
		if err != nil {
			return nil, err
		}
		devs[name] = d
	}

	tv := devs[SonyTV]
	tvAction := func(label, cmd string, delay uint32) *IRAction {
		return &IRAction{Label: label, Device: tv, Command: cmd, Delay: delay}
	}

	h := &Home{
		TVOnOff:      tvAction("TV On/Off", "on_off", 1000),
		TVOn:         tvAction("TV On", "on", 1000),
		TVOff:        tvAction("TV Off", "off", DefaultDelay),
		TVHome:       tvAction("TV Home", "home", DefaultDelay),
		TVReturn:     tvAction("TV Return", "return", DefaultDelay),
		TVSourceTV:   tvAction("TV Source TV", "source_tv", DefaultDelay),
		TVMute:       tvAction("TV Mute", "mute", DefaultDelay),
		TVVolumeUp:   tvAction("TV Vol Up", "volume_up", DefaultDelay),
		TVVolumeDown: tvAction("TV Vol Down", "volume_down", DefaultDelay),
	}
	for i := 1; i < len(h.TVHDMI); i++ {
		h.TVHDMI[i] = tvAction(
			"TV Source HDMI "+string(rune('0'+i)),
			"source_hdmi_"+string(rune('0'+i)),
			DefaultDelay,
		)
	}

	h.PVROnOff, h.PVROn, h.PVROff = powered(devs[TeacPVR], "PVR")
	h.LaserDVDOnOff, h.LaserDVDOn, h.LaserDVDOff = powered(devs[LaserDVD], "Laser DVD")
	h.SamsungDVDOnOff, h.SamsungDVDOn, h.SamsungDVDOff = powered(devs[SamsungDVD], "Samsung DVD")

	h.AllOff = (&Sequence{Label: "Seq: All Off"}).Add(
		h.TVOff, h.LaserDVDOff, h.PVROff, h.SamsungDVDOff,
	)
	h.WatchTV = (&Sequence{Label: "Seq: Watch TV"}).Add(
		h.TVOn, h.TVHome, h.TVReturn, h.TVSourceTV,
		h.LaserDVDOff, h.PVROff, h.SamsungDVDOff,
	)
	h.WatchLaserDVD = (&Sequence{Label: "Seq: Watch Laser DVD"}).Add(
		h.TVOn, h.TVHome, h.TVReturn, h.TVHDMI[4],
		h.LaserDVDOn, h.PVROff, h.SamsungDVDOff,
	)
	h.WatchSamsungDVD = (&Sequence{Label: "Seq: Watch Samsung DVD"}).Add(
		h.TVOn, h.TVHome, h.TVReturn, h.TVHDMI[3],
		h.SamsungDVDOn, h.PVROff,
	)
	h.WatchPVR = (&Sequence{Label: "Seq: Watch PVR"}).Add(
		h.TVOn, h.TVHome, h.TVReturn, h.TVHDMI[2],
		h.PVROn, h.LaserDVDOff, h.SamsungDVDOff,
	)

	h.FixEach = []Action{h.TVOnOff, h.PVROnOff, h.LaserDVDOnOff, h.SamsungDVDOnOff}
	return h, nil
}

// Sequences returns the sequences in display order.
func (h *Home) Sequences() []*Sequence {
	return []*Sequence{h.AllOff, h.WatchTV, h.WatchLaserDVD, h.WatchSamsungDVD, h.WatchPVR}
}
