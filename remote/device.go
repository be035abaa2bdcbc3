package remote

import (
	"fmt"

	"github.com/sparques/irremote"
	"github.com/sparques/irremote/cheapo"
	"github.com/sparques/irremote/hexbug"
	"github.com/sparques/irremote/nec"
	"github.com/sparques/irremote/samsung"
	"github.com/sparques/irremote/sony"
)

// Registered device names.
const (
	SonyTV     = "sony-tv"
	LaserDVD   = "laser-dvd"
	TeacPVR    = "teac-pvr"
	TeacDVD    = "teac-dvd"
	SamsungDVD = "samsung-dvd"
	Hexbug     = "hexbug"
	LEDStrip   = "led-strip"
)

// DefaultDelay is the post-transmission delay used by Press.
const DefaultDelay = 100

// Command is the pair of data words passed to the transmitter.
type Command struct {
	Data1, Data2 uint32
	// Descriptor, when set, replaces the device's descriptor for this
	// command.
	Descriptor *irremote.Descriptor
}

// Device is a controllable appliance.
type Device struct {
	Name       string
	Descriptor *irremote.Descriptor
	Commands   map[string]Command
	// Delay is the post-transmission delay in milliseconds for Press.
	Delay uint32
	// Power is the last power state set through a guarded action.
	Power bool
}

// Lookup returns the command called name.
func (d *Device) Lookup(name string) (Command, error) {
	cmd, ok := d.Commands[name]
	if !ok {
		return Command{}, fmt.Errorf("%w: %s %s", ErrUnknownCommand, d.Name, name)
	}
	return cmd, nil
}

// DescriptorFor returns the descriptor cmd is sent with.
func (d *Device) DescriptorFor(cmd Command) *irremote.Descriptor {
	if cmd.Descriptor != nil {
		return cmd.Descriptor
	}
	return d.Descriptor
}

func singleWord[C ~uint32](codes map[string]C) map[string]Command {
	out := make(map[string]Command, len(codes))
	for name, code := range codes {
		out[name] = Command{Data1: uint32(code)}
	}
	return out
}

func samsungCommands(dev samsung.Device) map[string]Command {
	out := make(map[string]Command, len(samsung.Codes))
	for name, code := range samsung.Codes {
		data1, data2 := samsung.Frame{Device: dev, Code: code}.Data()
		out[name] = Command{Data1: data1, Data2: data2}
	}
	return out
}

func hexbugCommands(channel int) map[string]Command {
	ch := hexbug.Channels[channel]
	buttons := map[string]hexbug.Cmd{
		"stop":         hexbug.CmdStop,
		"forward":      hexbug.CmdFwdMask,
		"back":         hexbug.CmdBackMask,
		"left":         hexbug.CmdLeftMask,
		"right":        hexbug.CmdRightMask,
		"left_weapon":  hexbug.CmdLeftWeapMask,
		"right_weapon": hexbug.CmdRightWeapMask,
	}
	out := make(map[string]Command, len(buttons)+1)
	for name, b := range buttons {
		out[name] = Command{Data1: (b | ch).Data()}
	}
	// all buttons up, repeated long enough for the toy to stop
	out["release"] = Command{Data1: ch.Data(), Descriptor: &hexbug.Release}
	return out
}

// Devices returns a fresh set of the known devices, all powered off.
func Devices() []*Device {
	return []*Device{
		{Name: SonyTV, Descriptor: &sony.TV, Commands: singleWord(sony.Codes), Delay: DefaultDelay},
		{Name: LaserDVD, Descriptor: &nec.LaserDVD, Commands: singleWord(nec.LaserDVDCodes), Delay: DefaultDelay},
		{Name: TeacPVR, Descriptor: &nec.TeacPVR, Commands: singleWord(nec.TeacPVRCodes), Delay: DefaultDelay},
		{Name: TeacDVD, Descriptor: &nec.TeacDVD, Commands: singleWord(nec.TeacDVDCodes), Delay: DefaultDelay},
		{Name: SamsungDVD, Descriptor: &samsung.DVD, Commands: samsungCommands(samsung.DeviceDVD), Delay: DefaultDelay},
		{Name: Hexbug, Descriptor: &hexbug.Toy, Commands: hexbugCommands(1)},
		{Name: LEDStrip, Descriptor: &cheapo.LEDStrip, Commands: singleWord(cheapo.Codes()), Delay: DefaultDelay},
	}
}
