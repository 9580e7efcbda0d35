package confirm

import (
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/vcrobe/nojs-confirm/i18n"
)

// IDPlaceholder is replaced by the record identifier in path templates.
const IDPlaceholder = "{id}"

// PathFunc maps a record identifier to the form's submission target.
type PathFunc func(id string) string

// PathTemplate returns a PathFunc that substitutes the identifier for every
// {id} in tpl. The identifier is inserted as-is.
func PathTemplate(tpl string) PathFunc {
	return func(id string) string {
		return strings.ReplaceAll(tpl, IDPlaceholder, id)
	}
}

// Config binds one modal to one entity type.
type Config struct {
	// Entity names the record type in diagnostics ("book", "user").
	Entity string

	// ModalID is the id of the modal container.
	ModalID string

	// FormID is the id of the confirmation form.
	FormID string

	// MessageSelector locates the message area inside the modal.
	MessageSelector string

	// IDAttribute is read from the trigger element.
	IDAttribute string

	// NameAttribute is read from the trigger element for the message.
	NameAttribute string

	// Path builds the form action from the identifier.
	Path PathFunc

	// Message is the message id of the confirmation sentence, formatted
	// with the trigger's name. Empty leaves the message area untouched.
	Message string

	// Language selects the message catalog.
	Language string
}

// Default element ids and selector used by the books/users pages.
const (
	DefaultModalID         = "deleteModal"
	DefaultFormID          = "deleteModalForm"
	DefaultMessageSelector = ".modal-body"
)

// Books is the plain book variant: only the form action is rewritten.
func Books() Config {
	return Config{
		Entity:      "book",
		ModalID:     DefaultModalID,
		FormID:      DefaultFormID,
		IDAttribute: "data-book-id",
		Path:        PathTemplate("/{id}/delete"),
		Language:    i18n.DefaultLanguage,
	}
}

// BooksWithName also writes the book's name into the confirmation sentence.
func BooksWithName() Config {
	cfg := Books()
	cfg.MessageSelector = DefaultMessageSelector
	cfg.NameAttribute = "data-book-name"
	cfg.Message = `Are you sure you want to delete the book "%s"?`
	return cfg
}

// Users targets the user management page.
func Users() Config {
	return Config{
		Entity:      "user",
		ModalID:     DefaultModalID,
		FormID:      DefaultFormID,
		IDAttribute: "data-user-id",
		Path:        PathTemplate("/users/{id}/delete"),
		Language:    i18n.DefaultLanguage,
	}
}

// UsersWithLogin also writes the user's login into the confirmation sentence.
func UsersWithLogin() Config {
	cfg := Users()
	cfg.MessageSelector = DefaultMessageSelector
	cfg.NameAttribute = "data-user-login"
	cfg.Message = `Are you sure you want to delete the user "%s"?`
	return cfg
}

var presets = map[string]func() Config{
	"books":       Books,
	"books-named": BooksWithName,
	"users":       Users,
	"users-named": UsersWithLogin,
}

// Preset returns the named preset.
func Preset(name string) (Config, bool) {
	fn, ok := presets[strings.TrimSpace(name)]
	if !ok {
		return Config{}, false
	}
	return fn(), true
}

// PresetNames lists the known preset names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// HasMessage reports whether the richer variant is active.
func (c Config) HasMessage() bool {
	return c.Message != ""
}

// Validate checks that every element the binder needs is named.
func (c Config) Validate() error {
	switch {
	case c.ModalID == "":
		return errors.New("confirm: modal id is required")
	case c.FormID == "":
		return errors.New("confirm: form id is required")
	case c.IDAttribute == "":
		return errors.New("confirm: id attribute is required")
	case c.Path == nil:
		return errors.New("confirm: path function is required")
	}

	if c.HasMessage() {
		if c.NameAttribute == "" {
			return errors.New("confirm: name attribute is required when a message is set")
		}
		if c.MessageSelector == "" {
			return errors.New("confirm: message selector is required when a message is set")
		}
	}
	return nil
}

// ParsePresets resolves a comma separated list of preset names, as found in
// the page's data-delete-confirm attribute. An empty list selects "books".
// Two presets may not share a modal: each would rewrite the other's action.
func ParsePresets(list string) ([]Config, error) {
	var cfgs []Config
	modals := make(map[string]string)
	for _, name := range strings.Split(list, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		cfg, ok := Preset(name)
		if !ok {
			return nil, errors.Errorf("confirm: unknown preset %q (known: %s)", name, strings.Join(PresetNames(), ", "))
		}
		if prev, taken := modals[cfg.ModalID]; taken {
			return nil, errors.Errorf("confirm: presets %q and %q both bind #%s", prev, name, cfg.ModalID)
		}
		modals[cfg.ModalID] = name
		cfgs = append(cfgs, cfg)
	}
	if len(cfgs) == 0 {
		cfgs = append(cfgs, Books())
	}
	return cfgs, nil
}
