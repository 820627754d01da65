package cashbook

import (
	"context"
	"errors"

	"github.com/etnz/cashbook/date"
	"github.com/rs/zerolog"
)

// Mode is the state of the entry form.
type Mode int

const (
	// Creating means a submitted form creates a new entry.
	Creating Mode = iota
	// Editing means a submitted form updates the entry being edited.
	Editing
)

func (m Mode) String() string {
	if m == Editing {
		return "editing"
	}
	return "creating"
}

// Controller turns user actions into ledger mutations, keeps the form state,
// and saves the ledger after every mutation.
//
// A Controller is not safe for concurrent use: each action is expected to run
// to completion before the next one starts.
type Controller struct {
	ledger   *Ledger
	store    Store
	key      string
	currency string
	log      zerolog.Logger
	confirm  func(Entry) bool

	mode    Mode
	editing int
	form    Form
	filter  FilterMode
}

// Option configures a Controller.
type Option func(*Controller)

// WithKey sets the store key of the snapshot. Defaults to DefaultKey.
func WithKey(key string) Option { return func(c *Controller) { c.key = key } }

// WithCurrency sets the display currency. Defaults to DefaultCurrency.
func WithCurrency(code string) Option { return func(c *Controller) { c.currency = code } }

// WithLogger sets the logger. Defaults to a disabled logger.
func WithLogger(log zerolog.Logger) Option { return func(c *Controller) { c.log = log } }

// WithConfirm sets the function asked before deleting an entry. Without it,
// every deletion is declined.
func WithConfirm(confirm func(Entry) bool) Option {
	return func(c *Controller) { c.confirm = confirm }
}

// NewController returns a controller in Creating mode, owning l and saving it to s.
func NewController(l *Ledger, s Store, opts ...Option) *Controller {
	c := &Controller{
		ledger:   l,
		store:    s,
		key:      DefaultKey,
		currency: DefaultCurrency,
		log:      zerolog.Nop(),
		confirm:  func(Entry) bool { return false },
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Open loads the ledger from s and returns a controller for it.
//
// The controller is always usable. A non nil error is a *PersistenceReadError
// notice: the saved data was unreadable and the ledger starts empty.
func Open(ctx context.Context, s Store, opts ...Option) (*Controller, error) {
	c := NewController(nil, s, opts...)
	l, err := Load(ctx, s, c.key)
	c.ledger = l
	if err != nil {
		c.log.Warn().Err(err).Str("key", c.key).Msg("starting with an empty ledger")
		return c, err
	}
	c.log.Debug().Str("key", c.key).Int("entries", l.Len()).Int("nextId", l.NextID()).Msg("ledger loaded")
	return c, nil
}

// Mode returns the form mode, and the id being edited in Editing mode.
func (c *Controller) Mode() (Mode, int) { return c.mode, c.editing }

// Form returns the current form content.
func (c *Controller) Form() Form { return c.form }

// Filter returns the current filter mode.
func (c *Controller) Filter() FilterMode { return c.filter }

// Entries returns a copy of the ledger entries.
func (c *Controller) Entries() []Entry { return c.ledger.All() }

// Entry returns the entry with this id.
func (c *Controller) Entry(id int) (Entry, bool) { return c.ledger.Entry(id) }

// NextID returns the ledger's id counter.
func (c *Controller) NextID() int { return c.ledger.NextID() }

// Submit validates f and creates or updates an entry depending on the mode.
//
// On invalid input it returns the validation errors and changes nothing but
// the form content. Otherwise the form goes back to Creating mode and the
// ledger is saved. If the edited entry disappeared, the edit is dropped
// silently. A save failure is returned as *PersistenceWriteError; the
// mutation is kept.
func (c *Controller) Submit(ctx context.Context, f Form) error {
	fields, err := Validate(f)
	if err != nil {
		c.form = f
		c.log.Debug().Err(err).Msg("invalid submission")
		return err
	}

	if c.mode == Editing {
		id := c.editing
		if err := c.ledger.Update(id, fields.Patch()); err != nil {
			c.log.Warn().Err(err).Int("id", id).Msg("edit not applied")
		} else {
			c.log.Debug().Int("id", id).Msg("entry updated")
		}
	} else {
		e, err := c.ledger.Create(fields)
		if err != nil {
			return err
		}
		c.log.Debug().Int("id", e.ID).Str("type", e.Type.String()).Stringer("amount", e.Amount).Msg("entry created")
	}

	c.CancelEdit()
	return c.save(ctx)
}

// BeginEdit fills the form with the entry and switches to Editing mode.
// It returns false, and does nothing, if there is no such entry.
func (c *Controller) BeginEdit(id int) bool {
	e, ok := c.ledger.Entry(id)
	if !ok {
		c.log.Debug().Int("id", id).Msg("nothing to edit")
		return false
	}
	c.form = Form{
		Description: e.Description,
		Amount:      e.Amount.String(),
		Type:        e.Type.String(),
		Category:    e.Category,
	}
	c.mode = Editing
	c.editing = id
	return true
}

// CancelEdit switches back to Creating mode and clears the form.
func (c *Controller) CancelEdit() {
	c.mode = Creating
	c.editing = 0
	c.form = Form{}
}

// Delete removes the entry once the user confirmed it.
//
// It returns false if the entry does not exist or the user declined. Deleting
// the entry being edited also cancels the edit.
func (c *Controller) Delete(ctx context.Context, id int) (bool, error) {
	e, ok := c.ledger.Entry(id)
	if !ok {
		c.log.Debug().Int("id", id).Msg("nothing to delete")
		return false, nil
	}
	if !c.confirm(e) {
		c.log.Debug().Int("id", id).Msg("deletion declined")
		return false, nil
	}
	if err := c.ledger.Delete(id); err != nil {
		return false, err
	}
	c.log.Debug().Int("id", id).Msg("entry deleted")
	if c.mode == Editing && c.editing == id {
		c.CancelEdit()
	}
	return true, c.save(ctx)
}

// SetFilter changes the displayed entries. The ledger is neither changed nor saved.
func (c *Controller) SetFilter(mode FilterMode) { c.filter = mode }

// LoadDemo replaces the ledger with the demonstration entries and saves it.
// The counter never goes backward.
func (c *Controller) LoadDemo(ctx context.Context) error {
	now := c.ledger.now()
	if err := c.ledger.Reset(DemoEntries(date.Of(now), now), max(DemoNextID, c.ledger.NextID())); err != nil {
		return err
	}
	c.log.Debug().Int("entries", c.ledger.Len()).Msg("demo data loaded")
	c.CancelEdit()
	return c.save(ctx)
}

// Import replaces the ledger content with l's entries and counter, and saves it.
// The counter never goes backward.
func (c *Controller) Import(ctx context.Context, l *Ledger) error {
	if err := c.ledger.Reset(l.All(), max(l.NextID(), c.ledger.NextID())); err != nil {
		return err
	}
	c.log.Debug().Int("entries", c.ledger.Len()).Msg("ledger imported")
	c.CancelEdit()
	return c.save(ctx)
}

// View returns the view model for the current state.
func (c *Controller) View() ViewModel {
	v := NewView(c.ledger.All(), c.filter, c.currency)
	v.Mode = c.mode
	v.EditingID = c.editing
	v.Form = c.form
	return v
}

func (c *Controller) save(ctx context.Context) error {
	err := Save(ctx, c.store, c.key, c.ledger)
	var werr *PersistenceWriteError
	if errors.As(err, &werr) {
		c.log.Error().Err(werr.Err).Str("key", c.key).Msg("could not save ledger")
	}
	return err
}
