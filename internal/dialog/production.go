package dialog

import (
	"context"
	"fmt"

	"factory-backend/internal/metrics"
	"factory-backend/internal/models"
	"factory-backend/internal/session"
	"factory-backend/internal/timeutil"
)

// startAddProduction opens the add flow. It is refused outright when no
// categories exist, so the category step can always offer a real list.
func (m *Machine) startAddProduction(ctx context.Context) (session.Flow, []Reply, error) {
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
	return flowAwaitingCategory{}, []Reply{{Text: msgChooseCategory, Options: options}}, nil
}

// stepCategory accepts only a value from the current category list.
func (m *Machine) stepCategory(ctx context.Context, ev Event) (session.Flow, []Reply, error) {
	if ev.Action != ActionText {
		return nil, nil, &ValidationError{Msg: msgUnknownCategory}
	}
	categories, err := m.store.ListCategories(ctx)
	if err != nil {
		return nil, nil, err
	}
	if !contains(categories, ev.Text) {
		return nil, nil, &ValidationError{Msg: msgUnknownCategory}
	}
	return flowAwaitingQuantity{category: ev.Text},
		[]Reply{{Text: msgEnterQuantity, Options: []Option{actionOption(ActionCancel)}}}, nil
}

// stepQuantity accepts only a non-negative integer literal.
func (m *Machine) stepQuantity(f flowAwaitingQuantity, ev Event) (session.Flow, []Reply, error) {
	if ev.Action != ActionText {
		return nil, nil, &ValidationError{Msg: msgQuantityDigits}
	}
	qty, ok := parseNonNegativeInt(ev.Text)
	if !ok {
		return nil, nil, &ValidationError{Msg: msgQuantityDigits}
	}
	return flowAwaitingConfirmation{category: f.category, quantity: qty},
		[]Reply{{
			Text:    fmt.Sprintf(msgConfirmFmt, f.category, qty),
			Options: []Option{actionOption(ActionConfirm), actionOption(ActionCancel)},
		}}, nil
}

// stepConfirmation performs the store write. Only the confirm action is
// accepted; anything else is malformed-step feedback, not cancellation.
func (m *Machine) stepConfirmation(ctx context.Context, sess *session.Session, f flowAwaitingConfirmation, ev Event) (session.Flow, []Reply, error) {
	if ev.Action != ActionConfirm {
		return nil, nil, &ValidationError{Msg: msgConfirmOrCancel}
	}

	// The category set may have changed while the user was deciding.
	categories, err := m.store.ListCategories(ctx)
	if err != nil {
		return nil, nil, err
	}
	if !contains(categories, f.category) {
		return nil, nil, &ValidationError{Msg: msgUnknownCategory}
	}

	entry := &models.ProductionEntry{
		Owner:     sess.Account.Name,
		Category:  f.category,
		Quantity:  fmt.Sprintf("%d", f.quantity),
		Timestamp: timeutil.Now().Format(timeutil.DateTimeLayout),
	}
	if _, err := m.store.CreateEntry(ctx, entry); err != nil {
		return nil, nil, err
	}
	metrics.EntriesCreated.Inc()

	// Best-effort fan-out; the write above is never rolled back.
	m.notifier.EntryCreated(entry, ev.SenderLogin)

	return flowIdle{}, []Reply{m.menuReply(sess, msgSaved)}, nil
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

// parseNonNegativeInt accepts plain digit strings only: no signs, no
// spaces inside, no exponent tricks.
func parseNonNegativeInt(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + int(r-'0')
		if n < 0 { // overflow
			return 0, false
		}
	}
	return n, true
}
