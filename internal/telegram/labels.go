package telegram

import (
	"strings"

	"factory-backend/internal/dialog"
)

// Display labels for the reply keyboard. The dialog package only knows
// action codes; the text shown to users is decided here.
var actionLabels = map[dialog.Action]string{
	dialog.ActionCancel:         "❌ Cancel",
	dialog.ActionConfirm:        "✅ Confirm",
	dialog.ActionAddProduction:  "➕ Add production",
	dialog.ActionMyEntries:      "📦 My entries",
	dialog.ActionDailyReport:    "📅 Daily report",
	dialog.ActionMonthlyReport:  "📊 Monthly report",
	dialog.ActionManageAccounts: "👥 Accounts",
	dialog.ActionAddAccount:     "➕ Add worker",
	dialog.ActionRemoveAccount:  "➖ Remove worker",
	dialog.ActionAddCategory:    "🆕 Add category",
	dialog.ActionRemoveCategory: "🗑 Remove category",
	dialog.ActionEditProfile:    "✏️ Rename",
	dialog.ActionLogout:         "🚪 Log out",
	dialog.ActionEditCategory:   "✏️ Category",
	dialog.ActionEditQuantity:   "🔢 Quantity",
	dialog.ActionDeleteEntry:    "🗑 Delete",
}

var labelActions = buildLabelActions()

func buildLabelActions() map[string]dialog.Action {
	m := make(map[string]dialog.Action, len(actionLabels))
	for action, label := range actionLabels {
		m[normalizeLabel(label)] = action
	}
	return m
}

func normalizeLabel(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// resolveAction maps inbound message text onto an action code. Text that
// matches no known label is free-form input.
func resolveAction(text string) (dialog.Action, bool) {
	a, ok := labelActions[normalizeLabel(text)]
	return a, ok
}

func labelFor(a dialog.Action) string {
	if label, ok := actionLabels[a]; ok {
		return label
	}
	return a.String()
}
