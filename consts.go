package extend

// ConstructorName is the reserved member name that is never copied.
const ConstructorName = "constructor"

const (
	ErrMsgNilTarget       = "Target cannot be nil."
	ErrMsgNilSource       = "Source cannot be nil."
	ErrMsgReadOnlyTarget  = "Target has no mutable member table."
	ErrMsgNoMemberTable   = "Value has no member table."
	ErrMsgNotCallable     = "Member is not callable."
	ErrMsgNoSetter        = "Accessor member has no setter."
	ErrMsgNotWritable     = "Member is not writable."
	ErrMsgNotConfigurable = "Member is not configurable."
	ErrMsgReadOnlyTable   = "Member table is read-only."
)
