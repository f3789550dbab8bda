package dialog

// Flow state variants. Each carries only the fields collected by the time
// that state is reached, so a later step can never read an unset field.

type editField int

const (
	editFieldCategory editField = iota
	editFieldQuantity
)

type flowAwaitingUsername struct{}

func (flowAwaitingUsername) Name() string { return "awaiting_username" }

type flowAwaitingPassword struct {
	login string
}

func (flowAwaitingPassword) Name() string { return "awaiting_password" }

// flowIdle is the authenticated resting state; the menu is shown.
type flowIdle struct{}

func (flowIdle) Name() string { return "authenticated" }

type flowAwaitingCategory struct{}

func (flowAwaitingCategory) Name() string { return "awaiting_category" }

type flowAwaitingQuantity struct {
	category string
}

func (flowAwaitingQuantity) Name() string { return "awaiting_quantity" }

type flowAwaitingConfirmation struct {
	category string
	quantity int
}

func (flowAwaitingConfirmation) Name() string { return "awaiting_confirmation" }

type flowBrowsingEntries struct {
	entryIDs []int // store ids in displayed order
}

func (flowBrowsingEntries) Name() string { return "browsing_own_entries" }

type flowAwaitingEditFieldChoice struct {
	entryID int
}

func (flowAwaitingEditFieldChoice) Name() string { return "awaiting_edit_field_choice" }

type flowAwaitingEditValue struct {
	entryID int
	field   editField
}

func (flowAwaitingEditValue) Name() string { return "awaiting_edit_value" }

type flowNewAccountName struct{}

func (flowNewAccountName) Name() string { return "admin_awaiting_new_account_name" }

type flowNewAccountLogin struct {
	name string
}

func (flowNewAccountLogin) Name() string { return "admin_awaiting_new_account_login" }

type flowNewAccountSecret struct {
	name  string
	login string
}

func (flowNewAccountSecret) Name() string { return "admin_awaiting_new_account_secret" }

type flowRemoveAccount struct{}

func (flowRemoveAccount) Name() string { return "admin_awaiting_removed_account_name" }

type flowNewCategory struct{}

func (flowNewCategory) Name() string { return "admin_awaiting_new_category_name" }

type flowRemoveCategory struct{}

func (flowRemoveCategory) Name() string { return "admin_awaiting_removed_category_name" }

type flowRenaming struct{}

func (flowRenaming) Name() string { return "editing_display_name" }
