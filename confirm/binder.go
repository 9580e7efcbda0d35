// Package confirm fills the delete confirmation modal from the button that
// opened it.
//
// A Binder listens for the modal's show event. Each time the modal is about to
// open it reads the record identifier from the trigger element, points the
// confirmation form at the entity's delete path and, when a message is
// configured, writes the confirmation sentence into the modal body.
package confirm

import (
	"github.com/pkg/errors"

	"github.com/vcrobe/nojs-confirm/console"
	"github.com/vcrobe/nojs-confirm/dom"
	"github.com/vcrobe/nojs-confirm/events"
	"github.com/vcrobe/nojs-confirm/i18n"
)

var (
	ErrModalNotFound   = errors.New("modal not found")
	ErrFormNotFound    = errors.New("confirmation form not found")
	ErrMessageNotFound = errors.New("message area not found")
	ErrNoTrigger       = errors.New("modal opened without a trigger element")
	ErrAlreadyBound    = errors.New("binder already initialized")
	ErrNotBound        = errors.New("binder not initialized")
)

// FormActionAttribute is the form attribute holding the submission target.
const FormActionAttribute = "action"

// Binder wires one modal to its confirmation form.
type Binder struct {
	cfg     Config
	catalog *i18n.Catalog

	doc   dom.Document
	modal dom.Element
	sub   dom.Subscription
}

// New validates cfg and loads its message catalog.
func New(cfg Config) (*Binder, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	b := &Binder{cfg: cfg}
	if cfg.HasMessage() {
		catalog, err := i18n.Load(cfg.Language)
		if err != nil {
			return nil, errors.Wrapf(err, "confirm: load %s messages", cfg.Entity)
		}
		b.catalog = catalog
	}
	return b, nil
}

// Config returns the binder's configuration.
func (b *Binder) Config() Config {
	return b.cfg
}

// Bound reports whether the show listener is attached.
func (b *Binder) Bound() bool {
	return b.sub != nil
}

// Initialize attaches the show listener to the modal. It must run once the
// page markup has been parsed. A missing modal is an error: nothing on the
// page works without it.
func (b *Binder) Initialize(doc dom.Document) error {
	if b.Bound() {
		return ErrAlreadyBound
	}

	modal := doc.GetElementByID(b.cfg.ModalID)
	if modal == nil {
		return errors.Wrapf(ErrModalNotFound, "confirm: #%s", b.cfg.ModalID)
	}

	b.doc = doc
	b.modal = modal
	b.sub = modal.AddEventListener(events.ShowModal, b.HandleShow)
	console.Log("[confirm] bound", b.cfg.Entity, "delete modal #"+b.cfg.ModalID)
	return nil
}

// Close detaches the show listener. The binder can be initialized again.
func (b *Binder) Close() {
	if b.sub == nil {
		return
	}
	b.sub.Release()
	b.sub = nil
	b.doc = nil
	b.modal = nil
}

// HandleShow is the modal's show listener. It completes before the modal
// becomes visible, so the dialog always reflects the current trigger.
func (b *Binder) HandleShow(ev dom.Event) {
	if err := b.Populate(ev.RelatedTarget()); err != nil {
		console.Error("[confirm]", err.Error())
	}
}

// Populate points the form at trigger's record and writes the message.
//
// A trigger without the id attribute yields an empty identifier; the
// resulting action is left for the server to reject. A nil trigger gets the
// same empty target, so the previous record never survives into a new open,
// and Populate reports ErrNoTrigger.
func (b *Binder) Populate(trigger dom.Element) error {
	if !b.Bound() {
		return ErrNotBound
	}
	if trigger == nil {
		if err := b.write("", ""); err != nil {
			return err
		}
		return ErrNoTrigger
	}

	id, ok := trigger.GetAttribute(b.cfg.IDAttribute)
	if !ok {
		console.Warn("[confirm] trigger has no", b.cfg.IDAttribute, "attribute")
	}

	var name string
	if b.cfg.HasMessage() {
		name, _ = trigger.GetAttribute(b.cfg.NameAttribute)
	}
	return b.write(id, name)
}

// write sets the form action and, in the message variant, the message text.
// The form is updated before the message area is looked up.
func (b *Binder) write(id, name string) error {
	form := b.doc.GetElementByID(b.cfg.FormID)
	if form == nil {
		return errors.Wrapf(ErrFormNotFound, "#%s", b.cfg.FormID)
	}
	form.SetAttribute(FormActionAttribute, b.cfg.Path(id))

	if !b.cfg.HasMessage() {
		return nil
	}

	body := b.modal.QuerySelector(b.cfg.MessageSelector)
	if body == nil {
		return errors.Wrapf(ErrMessageNotFound, "%s in #%s", b.cfg.MessageSelector, b.cfg.ModalID)
	}
	body.SetTextContent(b.Message(name))
	return nil
}

// Message formats the confirmation sentence for a record name.
func (b *Binder) Message(name string) string {
	return b.catalog.Get(b.cfg.Message, name)
}
