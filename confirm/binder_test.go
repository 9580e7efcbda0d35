//go:build !wasm

package confirm

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vcrobe/nojs-confirm/dom"
	"github.com/vcrobe/nojs-confirm/dom/htmldom"
	"github.com/vcrobe/nojs-confirm/events"
)

const booksPage = `<!DOCTYPE html>
<html><body>
<table>
  <tr><td>Dune</td><td>
    <button id="b5" data-bs-toggle="modal" data-bs-target="#deleteModal" data-book-id="5" data-book-name="Dune">Delete</button>
  </td></tr>
  <tr><td>Solaris</td><td>
    <button id="b42" data-bs-toggle="modal" data-bs-target="#deleteModal" data-book-id="42" data-book-name="Solaris">Delete</button>
  </td></tr>
  <tr><td>Broken</td><td>
    <button id="noid" data-bs-toggle="modal" data-bs-target="#deleteModal">Delete</button>
  </td></tr>
</table>
<div class="modal" id="deleteModal">
  <div class="modal-dialog"><div class="modal-content">
    <div class="modal-body">Are you sure?</div>
    <div class="modal-footer">
      <form id="deleteModalForm" method="post"><button type="submit">Yes</button></form>
    </div>
  </div></div>
</div>
</body></html>`

const usersPage = `<!DOCTYPE html>
<html><body>
<button id="u7" data-bs-toggle="modal" data-bs-target="#deleteModal" data-user-id="7" data-user-login="admin">Delete</button>
<div class="modal" id="deleteModal">
  <div class="modal-body"></div>
  <form id="deleteModalForm" method="post"></form>
</div>
</body></html>`

// bind parses markup and initializes a binder for cfg on it.
func bind(t *testing.T, markup string, cfg Config) (*htmldom.Document, *Binder) {
	t.Helper()
	doc, err := htmldom.ParseString(markup)
	require.NoError(t, err)

	b, err := New(cfg)
	require.NoError(t, err)
	require.NoError(t, b.Initialize(doc))
	return doc, b
}

func click(t *testing.T, doc *htmldom.Document, id string) {
	t.Helper()
	require.NoError(t, doc.Click(doc.GetElementByID(id)))
}

func action(t *testing.T, doc *htmldom.Document) string {
	t.Helper()
	v, ok := doc.GetElementByID(DefaultFormID).GetAttribute(FormActionAttribute)
	require.True(t, ok, "form action should be set")
	return v
}

func message(doc *htmldom.Document) string {
	return doc.QuerySelector(DefaultMessageSelector).TextContent()
}

// TestBinder_BookAction verifies that opening the modal points the form at
// the book's delete path and leaves the message untouched in the plain variant.
func TestBinder_BookAction(t *testing.T) {
	// Arrange: bind the plain book preset
	doc, _ := bind(t, booksPage, Books())

	// Act: open the modal from the second row
	click(t, doc, "b42")

	// Assert: only the action changed
	assert.Equal(t, "/42/delete", action(t, doc))
	assert.Equal(t, "Are you sure?", message(doc))
}

// TestBinder_UserAction verifies the users path template.
func TestBinder_UserAction(t *testing.T) {
	// Arrange
	doc, _ := bind(t, usersPage, Users())

	// Act
	click(t, doc, "u7")

	// Assert
	assert.Equal(t, "/users/7/delete", action(t, doc))
}

// TestBinder_BookMessage verifies the richer variant writes the localized
// sentence with the book name.
func TestBinder_BookMessage(t *testing.T) {
	// Arrange
	doc, _ := bind(t, booksPage, BooksWithName())

	// Act
	click(t, doc, "b5")

	// Assert: action and message both follow the trigger
	assert.Equal(t, "/5/delete", action(t, doc))
	assert.Equal(t, `Вы уверены, что хотите удалить книгу "Dune"?`, message(doc))
}

// TestBinder_UserMessage verifies the user variant with a message.
func TestBinder_UserMessage(t *testing.T) {
	// Arrange
	doc, _ := bind(t, usersPage, UsersWithLogin())

	// Act
	click(t, doc, "u7")

	// Assert
	assert.Equal(t, "/users/7/delete", action(t, doc))
	assert.Equal(t, `Вы уверены, что хотите удалить пользователя "admin"?`, message(doc))
}

// TestBinder_LatestTriggerWins verifies that each open reflects only the
// trigger that caused it, and that reopening via the same trigger is idempotent.
func TestBinder_LatestTriggerWins(t *testing.T) {
	// Arrange
	doc, _ := bind(t, booksPage, BooksWithName())

	// Act: open from one row, then another
	click(t, doc, "b5")
	click(t, doc, "b42")

	// Assert: nothing from the first open remains
	assert.Equal(t, "/42/delete", action(t, doc))
	assert.Equal(t, `Вы уверены, что хотите удалить книгу "Solaris"?`, message(doc))

	// Act + Assert: reopening via the same trigger gives the same result
	click(t, doc, "b42")
	assert.Equal(t, "/42/delete", action(t, doc))
	assert.Equal(t, `Вы уверены, что хотите удалить книгу "Solaris"?`, message(doc))

	click(t, doc, "b5")
	assert.Equal(t, "/5/delete", action(t, doc))
	assert.Equal(t, `Вы уверены, что хотите удалить книгу "Dune"?`, message(doc))
}

// TestBinder_MissingID verifies that a trigger without the id attribute
// produces an empty path segment instead of failing, and that the previous
// identifier does not leak into the new action.
func TestBinder_MissingID(t *testing.T) {
	// Arrange: a previous open left a valid target behind
	doc, b := bind(t, booksPage, BooksWithName())
	click(t, doc, "b5")

	// Act
	require.NoError(t, b.Populate(doc.GetElementByID("noid")))

	// Assert
	assert.Equal(t, "//delete", action(t, doc))
	assert.Equal(t, `Вы уверены, что хотите удалить книгу ""?`, message(doc))
}

// TestBinder_NameInsertedVerbatim verifies that markup in a name is written
// as plain text.
func TestBinder_NameInsertedVerbatim(t *testing.T) {
	// Arrange
	doc, b := bind(t, booksPage, BooksWithName())
	trigger := doc.GetElementByID("b5")
	trigger.SetAttribute("data-book-name", `<b>Tom & "Jerry"</b>`)

	// Act
	require.NoError(t, b.Populate(trigger))

	// Assert
	assert.Equal(t, `Вы уверены, что хотите удалить книгу "<b>Tom & "Jerry"</b>"?`, message(doc))
}

// TestBinder_CustomPath verifies a user supplied PathFunc.
func TestBinder_CustomPath(t *testing.T) {
	// Arrange
	cfg := Books()
	cfg.Path = func(id string) string { return "/admin/books/" + id + "?confirm=1" }
	doc, _ := bind(t, booksPage, cfg)

	// Act
	click(t, doc, "b5")

	// Assert
	assert.Equal(t, "/admin/books/5?confirm=1", action(t, doc))
}

// TestBinder_InitializeMissingModal verifies fail-fast initialization.
func TestBinder_InitializeMissingModal(t *testing.T) {
	// Arrange: a page without the modal
	doc, err := htmldom.ParseString(`<html><body><form id="deleteModalForm"></form></body></html>`)
	require.NoError(t, err)
	b, err := New(Books())
	require.NoError(t, err)

	// Act
	err = b.Initialize(doc)

	// Assert
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrModalNotFound))
	assert.Contains(t, err.Error(), "#deleteModal")
	assert.False(t, b.Bound())
}

// TestBinder_Lifecycle verifies the unbound/bound transitions.
func TestBinder_Lifecycle(t *testing.T) {
	// Arrange
	doc, b := bind(t, booksPage, Books())
	assert.True(t, b.Bound())

	// Act + Assert: bound -> bound is rejected, bound -> unbound detaches
	assert.ErrorIs(t, b.Initialize(doc), ErrAlreadyBound)

	b.Close()
	b.Close()
	assert.False(t, b.Bound())
	assert.ErrorIs(t, b.Populate(doc.GetElementByID("b5")), ErrNotBound)

	// No listener: the action stays unset.
	click(t, doc, "b5")
	_, ok := doc.GetElementByID(DefaultFormID).GetAttribute(FormActionAttribute)
	assert.False(t, ok)

	// Act + Assert: unbound -> bound works again
	require.NoError(t, b.Initialize(doc))
	click(t, doc, "b5")
	assert.Equal(t, "/5/delete", action(t, doc))
}

// TestBinder_MissingElements verifies errors for a trigger-less open and
// for markup lacking the form or the message area.
func TestBinder_MissingElements(t *testing.T) {
	// Arrange + Act + Assert: no trigger
	_, b := bind(t, booksPage, BooksWithName())
	assert.ErrorIs(t, b.Populate(nil), ErrNoTrigger)

	// Arrange: markup without the form
	noForm, err := htmldom.ParseString(`<html><body>
<button id="t" data-book-id="1"></button>
<div id="deleteModal"><div class="modal-body"></div></div>
</body></html>`)
	require.NoError(t, err)
	b, err = New(BooksWithName())
	require.NoError(t, err)
	require.NoError(t, b.Initialize(noForm))

	// Act + Assert
	assert.ErrorIs(t, b.Populate(noForm.GetElementByID("t")), ErrFormNotFound)

	// Arrange: markup without the message area
	noBody, err := htmldom.ParseString(`<html><body>
<button id="t" data-book-id="1"></button>
<div id="deleteModal"><form id="deleteModalForm"></form></div>
</body></html>`)
	require.NoError(t, err)
	b, err = New(BooksWithName())
	require.NoError(t, err)
	require.NoError(t, b.Initialize(noBody))

	// Act
	err = b.Populate(noBody.GetElementByID("t"))
	// Assert
	assert.ErrorIs(t, err, ErrMessageNotFound)

	// The form is updated before the message area is looked up.
	v, _ := noBody.GetElementByID(DefaultFormID).GetAttribute(FormActionAttribute)
	assert.Equal(t, "/1/delete", v)
}

// TestBinder_TriggerlessOpenClearsPrevious verifies that a modal opened by
// code, with no related target, does not keep the previous record's action
// or message.
func TestBinder_TriggerlessOpenClearsPrevious(t *testing.T) {
	// Arrange: a normal open points the form at book 5
	doc, _ := bind(t, booksPage, BooksWithName())
	click(t, doc, "b5")
	require.Equal(t, "/5/delete", action(t, doc))

	// Act: open the modal programmatically
	require.NoError(t, doc.Dispatch(doc.GetElementByID(DefaultModalID), events.ShowModal, nil))

	// Assert: the empty target replaces the stale one
	assert.Equal(t, "//delete", action(t, doc))
	assert.Equal(t, `Вы уверены, что хотите удалить книгу ""?`, message(doc))
}

// TestBinder_TriggerlessOpenPlainVariant verifies the same for the variant
// without a message, where the body text stays as rendered.
func TestBinder_TriggerlessOpenPlainVariant(t *testing.T) {
	// Arrange
	doc, b := bind(t, usersPage, Users())
	click(t, doc, "u7")

	// Act
	err := b.Populate(nil)

	// Assert
	assert.ErrorIs(t, err, ErrNoTrigger)
	assert.Equal(t, "/users//delete", action(t, doc))
	assert.Equal(t, "", message(doc))
}

// TestBinder_HandleShow verifies the handler can be driven by any dom.Event.
func TestBinder_HandleShow(t *testing.T) {
	// Arrange
	doc, b := bind(t, usersPage, Users())

	// Act
	b.HandleShow(showEvent{related: doc.GetElementByID("u7")})

	// Assert
	assert.Equal(t, "/users/7/delete", action(t, doc))
}

type showEvent struct {
	related dom.Element
}

func (e showEvent) Type() string               { return events.ShowModal }
func (e showEvent) RelatedTarget() dom.Element { return e.related }
