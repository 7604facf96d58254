package dagflow

// Node is the capability set every graph element must satisfy: a display
// name, a tick operation, an input-slot binder, and its declared slot
// types. Source, sink, and interior-component shapes are not distinct
// Go types — they're nodes whose InputTypes/OutputType happen to be
// empty or Void respectively.
type Node interface {
	// Name is a display label. It is not required to be unique.
	Name() string

	// InputTypes is the node's fixed-arity, ordered list of slot types.
	// Its length is the node's arity. Empty for sources.
	InputTypes() []TypeToken

	// OutputType is fixed at construction. Void marks a sink.
	OutputType() TypeToken

	// PollNext is the tick operation. It must be idempotent within the
	// meaning of "at most once per tick" only insofar as the scheduler
	// in package graph guarantees it is never called more than once per
	// tick; PollNext itself has no obligation to track that.
	PollNext() Poll

	// Connect binds an upstream node to the given input slot, or clears
	// it when src is nil. Implementations must downcast src to the
	// Producer[O] type they expect for that slot; the caller (package
	// graph) has already verified OutputType()/InputTypes() compatibility
	// before calling Connect, so the downcast cannot fail in correct
	// usage. Connect on a node with no input slots (a source) must
	// return an error equivalent to graph.ErrNoSuchSlot.
	Connect(src Node, slot int) error
}

// Producer is implemented by any node whose OutputType is not Void. Value
// returns a borrowed reference to the most recently produced output; it
// is only meaningful immediately after a PollNext call that returned
// Ready, and must never be called on a sink.
type Producer[O any] interface {
	Node
	Value() O
}
