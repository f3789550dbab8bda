package dialog

// Action is the discriminated code of an inbound event. The mapping from
// display labels to actions lives in the transport adapter; the state
// machine never matches on button text.
type Action int

const (
	ActionText Action = iota // free-form text input
	ActionStart
	ActionCancel
	ActionConfirm
	ActionAddProduction
	ActionMyEntries
	ActionDailyReport
	ActionMonthlyReport
	ActionManageAccounts
	ActionAddAccount
	ActionRemoveAccount
	ActionAddCategory
	ActionRemoveCategory
	ActionEditProfile
	ActionLogout
	ActionSelectEntry // Index carries the list position
	ActionEditCategory
	ActionEditQuantity
	ActionDeleteEntry
)

var actionNames = map[Action]string{
	ActionText:           "text",
	ActionStart:          "start",
	ActionCancel:         "cancel",
	ActionConfirm:        "confirm",
	ActionAddProduction:  "add_production",
	ActionMyEntries:      "my_entries",
	ActionDailyReport:    "daily_report",
	ActionMonthlyReport:  "monthly_report",
	ActionManageAccounts: "manage_accounts",
	ActionAddAccount:     "add_account",
	ActionRemoveAccount:  "remove_account",
	ActionAddCategory:    "add_category",
	ActionRemoveCategory: "remove_category",
	ActionEditProfile:    "edit_profile",
	ActionLogout:         "logout",
	ActionSelectEntry:    "select_entry",
	ActionEditCategory:   "edit_category",
	ActionEditQuantity:   "edit_quantity",
	ActionDeleteEntry:    "delete_entry",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// Event is one inbound message or button press.
type Event struct {
	Sender      int64  // chat identity
	SenderLogin string // messenger handle, informational only
	Action      Action
	Text        string // payload for ActionText
	Index       int    // payload for ActionSelectEntry
}

// Option is one valid next input the state machine offers. The transport
// renders options however it likes (reply keyboard, inline buttons).
type Option struct {
	Action Action
	Label  string // display text for free-form values and list rows
	Index  int    // list position for ActionSelectEntry
}

// Document is a generated file attached to a reply.
type Document struct {
	Name  string
	Bytes []byte
}

// Reply is one outbound message.
type Reply struct {
	Text     string
	Options  []Option
	Document *Document
}

func textOption(label string) Option {
	return Option{Action: ActionText, Label: label}
}

func actionOption(a Action) Option {
	return Option{Action: a}
}
