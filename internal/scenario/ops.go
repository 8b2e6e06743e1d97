package scenario

import "collections/internal/collection"

type argSet uint8

const (
	argValue argSet = 1 << iota
	argIndex
	argValues
)

type opSpec struct {
	args   argSet
	result bool        // whether the op produces a value that expect can check
	on     []Structure // nil means every structure
}

func (o opSpec) supports(s Structure) bool {
	if o.on == nil {
		return true
	}
	for _, each := range o.on {
		if each == s {
			return true
		}
	}
	return false
}

var (
	queueOnly  = []Structure{Queue}
	listsOnly  = []Structure{LinkedList, ArrayList}
	linkedOnly = []Structure{LinkedList}
	sized      = []Structure{Queue, ArrayList}
)

var ops = map[string]opSpec{
	// shared
	"len":      {result: true},
	"empty":    {result: true},
	"clear":    {},
	"contains": {args: argValue, result: true},
	"to-slice": {result: true},
	// copy-to copies into a zeroed slice of length value from index.
	"copy-to": {args: argValue | argIndex, result: true},

	// sized structures
	"new":      {args: argValue, on: sized},
	"capacity": {result: true, on: sized},

	// queue
	"enqueue": {args: argValue, on: queueOnly},
	"dequeue": {result: true, on: queueOnly},
	"peek":    {result: true, on: queueOnly},

	// lists
	"add":           {args: argValue, on: listsOnly},
	"add-all":       {args: argValues, on: listsOnly},
	"insert":        {args: argIndex | argValue, on: listsOnly},
	"get":           {args: argIndex, result: true, on: listsOnly},
	"set":           {args: argIndex | argValue, on: listsOnly},
	"remove-at":     {args: argIndex, result: true, on: listsOnly},
	"remove":        {args: argValue, result: true, on: listsOnly},
	"index-of":      {args: argValue, result: true, on: listsOnly},
	"last-index-of": {args: argValue, result: true, on: listsOnly},
	// sub-list takes [index, value).
	"sub-list":     {args: argIndex | argValue, result: true, on: listsOnly},
	"remove-all":   {args: argValues, result: true, on: listsOnly},
	"retain-all":   {args: argValues, result: true, on: listsOnly},
	"contains-all": {args: argValues, result: true, on: listsOnly},

	// linked list
	"add-first":    {args: argValue, on: linkedOnly},
	"add-last":     {args: argValue, on: linkedOnly},
	"first":        {result: true, on: linkedOnly},
	"last":         {result: true, on: linkedOnly},
	"remove-first": {result: true, on: linkedOnly},
	"remove-last":  {result: true, on: linkedOnly},
	"backward":     {result: true, on: linkedOnly},

	// list iterators
	"iter.reset":          {on: listsOnly},
	"iter.has-next":       {result: true, on: listsOnly},
	"iter.next":           {result: true, on: listsOnly},
	"iter.has-previous":   {result: true, on: listsOnly},
	"iter.previous":       {result: true, on: listsOnly},
	"iter.next-index":     {result: true, on: listsOnly},
	"iter.previous-index": {result: true, on: listsOnly},
	"iter.remove":         {on: listsOnly},
	"iter.set":            {args: argValue, on: listsOnly},
	"iter.add":            {args: argValue, on: listsOnly},
}

var errorKinds = map[string]error{
	"empty":            collection.ErrEmptyCollection,
	"index":            collection.ErrIndexOutOfRange,
	"no-such-element":  collection.ErrNoSuchElement,
	"invalid-argument": collection.ErrInvalidArgument,
	"stale":            collection.ErrStaleIterator,
}
