// Package dialog implements the per-user state machine that drives
// multi-step data entry and editing conversations. One event is consumed
// at a time per session; every step reads and mutates only its own
// session's entry in the registry.
package dialog

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"factory-backend/internal/models"
	"factory-backend/internal/notify"
	"factory-backend/internal/session"
	"factory-backend/internal/store"
)

type Machine struct {
	store    store.Store
	registry *session.Registry
	notifier *notify.Notifier
}

func NewMachine(st store.Store, registry *session.Registry, notifier *notify.Notifier) *Machine {
	return &Machine{store: st, registry: registry, notifier: notifier}
}

// Handle consumes one inbound event against the sender's session and
// returns the replies to deliver. Errors never escape: each is mapped to a
// user-visible reply and the state policy of its kind.
func (m *Machine) Handle(ctx context.Context, ev Event) []Reply {
	sess, ok := m.registry.Lookup(ev.Sender)
	if !ok || ev.Action == ActionStart {
		m.registry.Create(ev.Sender, flowAwaitingUsername{})
		return []Reply{{Text: msgWelcome}}
	}

	next, replies, err := m.step(ctx, sess, ev)
	if err != nil {
		return m.resolveError(sess, err)
	}
	if next != nil {
		sess.Flow = next
	}
	return replies
}

// step dispatches an event against the current flow state. It returns the
// next flow (nil = unchanged), the replies, and at most one error.
func (m *Machine) step(ctx context.Context, sess *session.Session, ev Event) (session.Flow, []Reply, error) {
	// Credential states come first; no account is attached yet.
	switch f := sess.Flow.(type) {
	case flowAwaitingUsername:
		return m.stepUsername(ev)
	case flowAwaitingPassword:
		return m.stepPassword(ctx, sess, f, ev)
	}

	// Cancel always wins: it is resolved here, before any flow gets a
	// chance to claim the event.
	if ev.Action == ActionCancel {
		if _, idle := sess.Flow.(flowIdle); idle {
			return nil, []Reply{m.menuReply(sess, msgNothingToCancel)}, nil
		}
		return flowIdle{}, []Reply{m.menuReply(sess, msgCancelled)}, nil
	}

	switch f := sess.Flow.(type) {
	case flowIdle:
		return m.stepMenu(ctx, sess, ev)
	case flowAwaitingCategory:
		return m.stepCategory(ctx, ev)
	case flowAwaitingQuantity:
		return m.stepQuantity(f, ev)
	case flowAwaitingConfirmation:
		return m.stepConfirmation(ctx, sess, f, ev)
	case flowBrowsingEntries:
		return m.stepSelectEntry(ctx, f, ev)
	case flowAwaitingEditFieldChoice:
		return m.stepEditFieldChoice(ctx, sess, f, ev)
	case flowAwaitingEditValue:
		return m.stepEditValue(ctx, sess, f, ev)
	case flowNewAccountName:
		return m.stepNewAccountName(ev)
	case flowNewAccountLogin:
		return m.stepNewAccountLogin(f, ev)
	case flowNewAccountSecret:
		return m.stepNewAccountSecret(ctx, sess, f, ev)
	case flowRemoveAccount:
		return m.stepRemoveAccount(ctx, sess, ev)
	case flowNewCategory:
		return m.stepNewCategory(ctx, sess, ev)
	case flowRemoveCategory:
		return m.stepRemoveCategory(ctx, sess, ev)
	case flowRenaming:
		return m.stepRename(ctx, sess, ev)
	}

	return nil, nil, &ValidationError{Msg: msgChooseFromMenu}
}

// stepMenu handles events in the authenticated resting state.
func (m *Machine) stepMenu(ctx context.Context, sess *session.Session, ev Event) (session.Flow, []Reply, error) {
	switch ev.Action {
	case ActionAddProduction:
		return m.startAddProduction(ctx)
	case ActionMyEntries:
		return m.startBrowse(ctx, sess)
	case ActionEditProfile:
		return flowRenaming{}, []Reply{{Text: msgNewDisplayName, Options: []Option{actionOption(ActionCancel)}}}, nil
	case ActionLogout:
		m.registry.Evict(sess.Identity)
		return nil, []Reply{{Text: msgLoggedOut}}, nil
	case ActionDailyReport:
		if err := requireAdmin(sess); err != nil {
			return nil, nil, err
		}
		return m.dailyReport(ctx)
	case ActionMonthlyReport:
		if err := requireAdmin(sess); err != nil {
			return nil, nil, err
		}
		return m.monthlyReport(ctx)
	case ActionManageAccounts:
		if err := requireAdmin(sess); err != nil {
			return nil, nil, err
		}
		return m.listAccounts(ctx)
	case ActionAddAccount:
		if err := requireAdmin(sess); err != nil {
			return nil, nil, err
		}
		return flowNewAccountName{}, []Reply{{Text: msgNewAccountName, Options: []Option{actionOption(ActionCancel)}}}, nil
	case ActionRemoveAccount:
		if err := requireAdmin(sess); err != nil {
			return nil, nil, err
		}
		return flowRemoveAccount{}, []Reply{{Text: msgRemoveAccountWho, Options: []Option{actionOption(ActionCancel)}}}, nil
	case ActionAddCategory:
		if err := requireAdmin(sess); err != nil {
			return nil, nil, err
		}
		return flowNewCategory{}, []Reply{{Text: msgNewCategoryName, Options: []Option{actionOption(ActionCancel)}}}, nil
	case ActionRemoveCategory:
		if err := requireAdmin(sess); err != nil {
			return nil, nil, err
		}
		return m.startRemoveCategory(ctx)
	}
	return nil, nil, &ValidationError{Msg: msgChooseFromMenu}
}

// resolveError is the single mapping from the error taxonomy to replies
// and state transitions.
func (m *Machine) resolveError(sess *session.Session, err error) []Reply {
	var (
		vErr  *ValidationError
		pErr  *PermissionError
		nfErr *NotFoundError
		aErr  *AuthError
		rErr  *ReportError
		sErr  *store.StoreError
	)
	switch {
	case errors.As(err, &vErr):
		return []Reply{{Text: vErr.Msg}}
	case errors.As(err, &pErr):
		return []Reply{{Text: msgPermissionDenied}}
	case errors.As(err, &nfErr):
		sess.Flow = flowIdle{}
		return []Reply{m.menuReply(sess, nfErr.What+" not found.")}
	case errors.As(err, &aErr):
		m.registry.Evict(sess.Identity)
		return []Reply{{Text: aErr.Msg}}
	case errors.As(err, &rErr):
		return []Reply{{Text: rErr.Msg}}
	case errors.As(err, &sErr):
		log.Printf("[Dialog] store failure in %s: %v", sess.Flow.Name(), err)
		return []Reply{{Text: msgStoreFailure}}
	default:
		log.Printf("[Dialog] unexpected error in %s: %v", sess.Flow.Name(), err)
		return []Reply{{Text: msgStoreFailure}}
	}
}

func requireAdmin(sess *session.Session) error {
	if sess.Account == nil || !sess.Account.IsAdmin() {
		return &PermissionError{}
	}
	return nil
}

// menuReply pairs a message with the role-specific main menu.
func (m *Machine) menuReply(sess *session.Session, text string) Reply {
	return Reply{Text: text, Options: menuOptions(sess.Account != nil && sess.Account.IsAdmin())}
}

func menuOptions(admin bool) []Option {
	if admin {
		return []Option{
			actionOption(ActionMonthlyReport),
			actionOption(ActionDailyReport),
			actionOption(ActionManageAccounts),
			actionOption(ActionAddAccount),
			actionOption(ActionAddCategory),
			actionOption(ActionRemoveCategory),
			actionOption(ActionEditProfile),
			actionOption(ActionLogout),
		}
	}
	return []Option{
		actionOption(ActionAddProduction),
		actionOption(ActionMyEntries),
		actionOption(ActionEditProfile),
		actionOption(ActionLogout),
	}
}

// stepUsername stores the candidate login and asks for the password.
func (m *Machine) stepUsername(ev Event) (session.Flow, []Reply, error) {
	login := strings.TrimSpace(ev.Text)
	if ev.Action != ActionText || login == "" {
		return nil, nil, &ValidationError{Msg: msgEnterUsername}
	}
	return flowAwaitingPassword{login: login}, []Reply{{Text: msgEnterPassword}}, nil
}

// stepPassword resolves the account. Any mismatch discards the session.
func (m *Machine) stepPassword(ctx context.Context, sess *session.Session, f flowAwaitingPassword, ev Event) (session.Flow, []Reply, error) {
	if ev.Action != ActionText {
		return nil, nil, &ValidationError{Msg: msgEnterPassword}
	}
	acct, err := m.store.GetAccount(ctx, f.login)
	if err != nil {
		if errors.Is(err, store.ErrAccountNotFound) {
			return nil, nil, &AuthError{Msg: msgLoginFailed}
		}
		return nil, nil, err
	}
	if acct.Secret != strings.TrimSpace(ev.Text) {
		return nil, nil, &AuthError{Msg: msgLoginFailed}
	}
	if acct.Blocked {
		return nil, nil, &AuthError{Msg: msgBlocked}
	}

	// Remember which chat identity this account logs in from.
	chatID := sess.Identity
	if err := m.store.UpdateAccount(ctx, acct.Login, models.AccountUpdate{ChatID: &chatID}); err != nil {
		return nil, nil, err
	}

	sess.Account = &session.AccountRef{Login: acct.Login, Name: acct.Name, Role: acct.Role}
	role := "Worker"
	if acct.IsAdmin() {
		role = "Admin"
	}
	return flowIdle{}, []Reply{m.menuReply(sess, fmt.Sprintf(msgLoggedInFmt, acct.Name, role))}, nil
}

// stepRename accepts any non-empty text as the new display name.
func (m *Machine) stepRename(ctx context.Context, sess *session.Session, ev Event) (session.Flow, []Reply, error) {
	name := strings.TrimSpace(ev.Text)
	if ev.Action != ActionText || name == "" {
		return nil, nil, &ValidationError{Msg: msgNameMustNotBeBlank}
	}
	if err := m.store.UpdateAccount(ctx, sess.Account.Login, models.AccountUpdate{Name: &name}); err != nil {
		return nil, nil, err
	}
	sess.Account.Name = name
	return flowIdle{}, []Reply{m.menuReply(sess, fmt.Sprintf(msgRenamedFmt, name))}, nil
}
