package dialog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"factory-backend/internal/models"
	"factory-backend/internal/session"
	"factory-backend/internal/store"
)

// listAccounts shows every account with its stored credentials, the way
// the factory floor actually runs: the admin hands passwords out.
func (m *Machine) listAccounts(ctx context.Context) (session.Flow, []Reply, error) {
	accounts, err := m.store.ListAccounts(ctx)
	if err != nil {
		return nil, nil, err
	}
	if len(accounts) == 0 {
		return nil, []Reply{{Text: "No accounts found.", Options: []Option{actionOption(ActionRemoveAccount), actionOption(ActionCancel)}}}, nil
	}

	var b strings.Builder
	b.WriteString("Accounts:\n")
	for _, a := range accounts {
		role := "worker"
		if a.IsAdmin() {
			role = "admin"
		}
		fmt.Fprintf(&b, "\n%s (@%s) | password: %s | %s", a.Name, a.Login, a.Secret, role)
		if a.Blocked {
			b.WriteString(" | blocked")
		}
	}
	return nil, []Reply{{
		Text:    b.String(),
		Options: []Option{actionOption(ActionRemoveAccount), actionOption(ActionCancel)},
	}}, nil
}

// stepNewAccountName collects the display name of the account being created.
func (m *Machine) stepNewAccountName(ev Event) (session.Flow, []Reply, error) {
	name := strings.TrimSpace(ev.Text)
	if ev.Action != ActionText || name == "" {
		return nil, nil, &ValidationError{Msg: msgNewAccountName}
	}
	return flowNewAccountLogin{name: name},
		[]Reply{{Text: msgNewAccountLogin, Options: []Option{actionOption(ActionCancel)}}}, nil
}

// stepNewAccountLogin collects the login.
func (m *Machine) stepNewAccountLogin(f flowNewAccountLogin, ev Event) (session.Flow, []Reply, error) {
	login := strings.TrimSpace(ev.Text)
	if ev.Action != ActionText || login == "" {
		return nil, nil, &ValidationError{Msg: msgNewAccountLogin}
	}
	return flowNewAccountSecret{name: f.name, login: login},
		[]Reply{{Text: msgNewAccountSecret, Options: []Option{actionOption(ActionCancel)}}}, nil
}

// stepNewAccountSecret completes the flow and writes a worker account.
func (m *Machine) stepNewAccountSecret(ctx context.Context, sess *session.Session, f flowNewAccountSecret, ev Event) (session.Flow, []Reply, error) {
	secret := strings.TrimSpace(ev.Text)
	if ev.Action != ActionText || secret == "" {
		return nil, nil, &ValidationError{Msg: msgNewAccountSecret}
	}
	acct := &models.Account{
		Login:  f.login,
		Secret: secret,
		Name:   f.name,
		Role:   models.RoleWorker,
	}
	if err := m.store.CreateAccount(ctx, acct); err != nil {
		return nil, nil, err
	}
	return flowIdle{}, []Reply{m.menuReply(sess, msgAccountCreated)}, nil
}

// stepRemoveAccount deletes the named account, if it exists.
func (m *Machine) stepRemoveAccount(ctx context.Context, sess *session.Session, ev Event) (session.Flow, []Reply, error) {
	login := strings.TrimPrefix(strings.TrimSpace(ev.Text), "@")
	if ev.Action != ActionText || login == "" {
		return nil, nil, &ValidationError{Msg: msgRemoveAccountWho}
	}
	if _, err := m.store.GetAccount(ctx, login); err != nil {
		if errors.Is(err, store.ErrAccountNotFound) {
			return nil, nil, &NotFoundError{What: "Account"}
		}
		return nil, nil, err
	}
	if err := m.store.DeleteAccount(ctx, login); err != nil {
		return nil, nil, err
	}
	return flowIdle{}, []Reply{m.menuReply(sess, fmt.Sprintf(msgAccountRemovedFmt, login))}, nil
}

// stepNewCategory creates a category. A duplicate label warns and leaves
// the flow; the set itself is unchanged either way.
func (m *Machine) stepNewCategory(ctx context.Context, sess *session.Session, ev Event) (session.Flow, []Reply, error) {
	label := strings.TrimSpace(ev.Text)
	if ev.Action != ActionText || label == "" {
		return nil, nil, &ValidationError{Msg: msgNewCategoryName}
	}
	categories, err := m.store.ListCategories(ctx)
	if err != nil {
		return nil, nil, err
	}
	if contains(categories, label) {
		return flowIdle{}, []Reply{m.menuReply(sess, fmt.Sprintf(msgCategoryExistsFmt, label))}, nil
	}
	if err := m.store.CreateCategory(ctx, label); err != nil {
		return nil, nil, err
	}
	return flowIdle{}, []Reply{m.menuReply(sess, fmt.Sprintf(msgCategoryCreatedFmt, label))}, nil
}

// startRemoveCategory offers the current labels for removal.
func (m *Machine) startRemoveCategory(ctx context.Context) (session.Flow, []Reply, error) {
	categories, err := m.store.ListCategories(ctx)
	if err != nil {
		return nil, nil, err
	}
	if len(categories) == 0 {
		return nil, nil, &ValidationError{Msg: msgNoCategories}
	}
	options := make([]Option, 0, len(categories)+1)
	for _, c := range categories {
		options = append(options, textOption(c))
	}
	options = append(options, actionOption(ActionCancel))
	return flowRemoveCategory{}, []Reply{{Text: msgRemoveCategoryWhich, Options: options}}, nil
}

// stepRemoveCategory deletes the named category, if present.
func (m *Machine) stepRemoveCategory(ctx context.Context, sess *session.Session, ev Event) (session.Flow, []Reply, error) {
	label := strings.TrimSpace(ev.Text)
	if ev.Action != ActionText || label == "" {
		return nil, nil, &ValidationError{Msg: msgRemoveCategoryWhich}
	}
	categories, err := m.store.ListCategories(ctx)
	if err != nil {
		return nil, nil, err
	}
	if !contains(categories, label) {
		return nil, nil, &NotFoundError{What: "Category"}
	}
	if err := m.store.DeleteCategory(ctx, label); err != nil {
		return nil, nil, err
	}
	return flowIdle{}, []Reply{m.menuReply(sess, fmt.Sprintf(msgCategoryRemovedFmt, label))}, nil
}
