package remote

// Action is something a button does.
type Action interface {
	Title() string
	// Do performs the action unconditionally.
	Do(r *Remote) error
}

// Guarded is an Action that only needs doing when a tracked status
// differs from the value it would set.
type Guarded interface {
	Action
	Guard() (status *bool, want bool)
}

// IRAction sends one command. With Status set it is guarded on it and sets
// it to Want once sent.
type IRAction struct {
	Label   string
	Device  *Device
	Command string
	// Delay is the time in milliseconds the transmitter stays busy after
	// the command.
	Delay uint32

	Status *bool
	Want   bool
}

func (a *IRAction) Title() string { return a.Label }

func (a *IRAction) Guard() (*bool, bool) { return a.Status, a.Want }

func (a *IRAction) Do(r *Remote) error {
	cmd, err := a.Device.Lookup(a.Command)
	if err != nil {
		return err
	}
	r.log.Printf("A: %s", a.Label)
	r.Send(a.Device, cmd, a.Delay)
	return nil
}

// Sequence runs its actions in order, each one guarded.
type Sequence struct {
	Label   string
	Actions []Action

	Status *bool
	Want   bool
}

func (s *Sequence) Title() string { return s.Label }

func (s *Sequence) Guard() (*bool, bool) { return s.Status, s.Want }

// Add appends actions to s.
func (s *Sequence) Add(actions ...Action) *Sequence {
	s.Actions = append(s.Actions, actions...)
	return s
}

func (s *Sequence) Do(r *Remote) error {
	r.log.Printf("A: %s", s.Label)
	for _, a := range s.Actions {
		if err := r.Run(a); err != nil {
			return err
		}
	}
	return nil
}

// Forced wraps an action so that running it ignores its guard.
type Forced struct {
	Label  string
	Action Action
}

func (f *Forced) Title() string { return f.Label }

func (f *Forced) Do(r *Remote) error {
	r.log.Printf("A: %s", f.Label)
	return f.Action.Do(r)
}

// Message logs itself.
type Message string

func (m Message) Title() string { return string(m) }

func (m Message) Do(r *Remote) error {
	r.log.Print(string(m))
	return nil
}
