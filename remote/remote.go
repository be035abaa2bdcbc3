// Package remote turns button presses into IR transmissions. A Remote owns
// the transmitter, a registry of Devices and the power state of each one;
// Actions are run against it.
package remote

import (
	"errors"
	"fmt"
	"io"
	"log"
	"sort"

	"github.com/sparques/irremote"
)

var (
	ErrUnknownDevice  = errors.New("remote: unknown device")
	ErrUnknownCommand = errors.New("remote: unknown command")
	ErrDuplicate      = errors.New("remote: duplicate device")
)

// Transmitter sends one transmission at a time. *irremote.Engine
// satisfies it.
type Transmitter interface {
	Send(d *irremote.Descriptor, data1, data2 uint32, postDelayMs uint32, repeatOverride uint8)
	WaitUntilComplete()
}

// Option configures a Remote.
type Option func(*Remote) error

// WithLogger sets the logger actions report to. The default discards.
func WithLogger(l *log.Logger) Option {
	return func(r *Remote) error {
		r.log = l
		return nil
	}
}

// WithDevices registers devices in addition to the defaults. A device may
// replace a default of the same name but not another registered device.
// Descriptors are validated.
func WithDevices(devs ...*Device) Option {
	return func(r *Remote) error {
		for _, d := range devs {
			if d.Descriptor == nil {
				return fmt.Errorf("remote: device %q has no descriptor", d.Name)
			}
			if err := d.Descriptor.Validate(); err != nil {
				return fmt.Errorf("remote: device %q: %w", d.Name, err)
			}
			for name, cmd := range d.Commands {
				if cmd.Descriptor == nil {
					continue
				}
				if err := cmd.Descriptor.Validate(); err != nil {
					return fmt.Errorf("remote: device %q command %q: %w", d.Name, name, err)
				}
			}
			if r.registered[d.Name] {
				return fmt.Errorf("%w: %s", ErrDuplicate, d.Name)
			}
			r.registered[d.Name] = true
			r.devices[d.Name] = d
		}
		return nil
	}
}

// WithoutDefaults starts from an empty registry.
func WithoutDefaults() Option {
	return func(r *Remote) error {
		clear(r.devices)
		return nil
	}
}

// Remote dispatches actions to a Transmitter.
type Remote struct {
	tx      Transmitter
	log     *log.Logger
	devices map[string]*Device
	// names added through WithDevices
	registered map[string]bool
}

// New returns a Remote sending through tx with the devices from Devices.
func New(tx Transmitter, opts ...Option) (*Remote, error) {
	r := &Remote{
		tx:         tx,
		log:        log.New(io.Discard, "", 0),
		devices:    make(map[string]*Device),
		registered: make(map[string]bool),
	}
	for _, d := range Devices() {
		r.devices[d.Name] = d
	}
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Device returns the registered device called name.
func (r *Remote) Device(name string) (*Device, error) {
	d, ok := r.devices[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownDevice, name)
	}
	return d, nil
}

// DeviceNames returns the registered device names in order.
func (r *Remote) DeviceNames() []string {
	names := make([]string, 0, len(r.devices))
	for name := range r.devices {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Send waits for the transmitter, then sends cmd to dev and keeps the
// transmitter busy for delayMs afterwards.
func (r *Remote) Send(dev *Device, cmd Command, delayMs uint32) {
	r.tx.WaitUntilComplete()
	r.tx.Send(dev.DescriptorFor(cmd), cmd.Data1, cmd.Data2, delayMs, 0)
}

// Press sends the named command to the named device with the device's
// default delay. Power state is not tracked.
func (r *Remote) Press(device, command string) error {
	dev, err := r.Device(device)
	if err != nil {
		return err
	}
	cmd, err := dev.Lookup(command)
	if err != nil {
		return err
	}
	r.log.Printf("P: %s %s", dev.Name, command)
	r.Send(dev, cmd, dev.Delay)
	return nil
}

// Run performs a with its guard: when a tracks a status that already has the
// wanted value nothing is sent.
func (r *Remote) Run(a Action) error {
	g, ok := a.(Guarded)
	if !ok {
		return a.Do(r)
	}
	status, want := g.Guard()
	if status == nil {
		return a.Do(r)
	}
	if *status == want {
		r.log.Printf("A: %s - no action needed", a.Title())
		return nil
	}
	if err := a.Do(r); err != nil {
		return err
	}
	*status = want
	return nil
}

// Force performs a without its guard. A Sequence is forced member by
// member.
func (r *Remote) Force(a Action) error {
	if s, ok := a.(*Sequence); ok {
		for _, member := range s.Actions {
			r.log.Print("Forced: ")
			if err := member.Do(r); err != nil {
				return err
			}
		}
		return nil
	}
	return a.Do(r)
}

// Wait blocks until the last transmission and its delay are complete.
func (r *Remote) Wait() {
	r.tx.WaitUntilComplete()
}
