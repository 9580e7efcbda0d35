package events

// Event names shared by the browser and native DOM implementations.
const (
	// ShowModal fires on a modal right before it becomes visible.
	// The event's relatedTarget is the element that opened the modal, if any.
	ShowModal = "show.bs.modal"

	// DOMContentLoaded fires on the document once the markup has been parsed.
	DOMContentLoaded = "DOMContentLoaded"
)
