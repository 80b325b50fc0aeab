/*
Package ui implements the interactive component surface of the SDK: items,
the row-bucketing View container and the Modal form built on top of it.

A Modal holds up to five items, each placed into one of five layout rows
by a weight allocator. Serializing a modal with CallbackData produces the
wire payload the platform expects when the form is presented; submissions
come back through pkg/dispatch, which refreshes item state and invokes
the modal's submit handler exactly once.

Modal templates can be declared ahead of time as Schemas, which support
derivation: a derived schema inherits its parent's fields oldest-ancestor
first and may override them by name. Field-count validation happens at
schema definition time, separately from the runtime capacity check on
AddItem.
*/
package ui
