package dialog

import (
	"context"
	"fmt"

	"factory-backend/internal/models"
	"factory-backend/internal/session"
)

// maxBrowseEntries caps the "my entries" list at the most recent ten.
const maxBrowseEntries = 10

// ownEntries returns the session owner's entries, most recent first.
func (m *Machine) ownEntries(ctx context.Context, sess *session.Session) ([]*models.ProductionEntry, error) {
	all, err := m.store.ListEntries(ctx)
	if err != nil {
		return nil, err
	}
	var own []*models.ProductionEntry
	for _, e := range all {
		if e.Owner == sess.Account.Name {
			own = append(own, e)
			if len(own) == maxBrowseEntries {
				break
			}
		}
	}
	return own, nil
}

// startBrowse lists the ten most recent own entries as a selectable list.
func (m *Machine) startBrowse(ctx context.Context, sess *session.Session) (session.Flow, []Reply, error) {
	own, err := m.ownEntries(ctx, sess)
	if err != nil {
		return nil, nil, err
	}
	if len(own) == 0 {
		return nil, []Reply{{Text: msgNoEntries}}, nil
	}

	ids := make([]int, len(own))
	options := make([]Option, 0, len(own)+1)
	for i, e := range own {
		ids[i] = e.ID
		options = append(options, Option{
			Action: ActionSelectEntry,
			Index:  i,
			Label:  fmt.Sprintf("%d: %s ×%s", i+1, e.Category, e.Quantity),
		})
	}
	options = append(options, actionOption(ActionCancel))
	return flowBrowsingEntries{entryIDs: ids},
		[]Reply{{Text: msgChooseEntry, Options: options}}, nil
}

// stepSelectEntry resolves a list index to an entry id.
func (m *Machine) stepSelectEntry(ctx context.Context, f flowBrowsingEntries, ev Event) (session.Flow, []Reply, error) {
	if ev.Action != ActionSelectEntry || ev.Index < 0 || ev.Index >= len(f.entryIDs) {
		return nil, nil, &ValidationError{Msg: msgBadEntryChoice}
	}
	id := f.entryIDs[ev.Index]

	entry, err := m.findEntry(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	return flowAwaitingEditFieldChoice{entryID: id},
		[]Reply{{
			Text: fmt.Sprintf(msgEntryDetailsFmt, entry.Category, entry.Quantity) + "\n\n" + msgChooseEditField,
			Options: []Option{
				actionOption(ActionEditCategory),
				actionOption(ActionEditQuantity),
				actionOption(ActionDeleteEntry),
				actionOption(ActionCancel),
			},
		}}, nil
}

// stepEditFieldChoice routes to a value prompt, or deletes immediately.
func (m *Machine) stepEditFieldChoice(ctx context.Context, sess *session.Session, f flowAwaitingEditFieldChoice, ev Event) (session.Flow, []Reply, error) {
	switch ev.Action {
	case ActionEditCategory:
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
		return flowAwaitingEditValue{entryID: f.entryID, field: editFieldCategory},
			[]Reply{{Text: msgEnterNewCategory, Options: options}}, nil

	case ActionEditQuantity:
		return flowAwaitingEditValue{entryID: f.entryID, field: editFieldQuantity},
			[]Reply{{Text: msgEnterNewQuantity, Options: []Option{actionOption(ActionCancel)}}}, nil

	case ActionDeleteEntry:
		if err := m.store.DeleteEntry(ctx, f.entryID); err != nil {
			return nil, nil, err
		}
		return flowIdle{}, []Reply{m.menuReply(sess, msgDeleted)}, nil
	}
	return nil, nil, &ValidationError{Msg: msgChooseEditField}
}

// stepEditValue validates the replacement value per field and writes it.
func (m *Machine) stepEditValue(ctx context.Context, sess *session.Session, f flowAwaitingEditValue, ev Event) (session.Flow, []Reply, error) {
	if ev.Action != ActionText {
		return nil, nil, &ValidationError{Msg: msgChooseFromMenu}
	}

	var upd models.EntryUpdate
	switch f.field {
	case editFieldCategory:
		categories, err := m.store.ListCategories(ctx)
		if err != nil {
			return nil, nil, err
		}
		if !contains(categories, ev.Text) {
			return nil, nil, &ValidationError{Msg: msgUnknownCategory}
		}
		upd.Category = &ev.Text
	case editFieldQuantity:
		qty, ok := parseNonNegativeInt(ev.Text)
		if !ok {
			return nil, nil, &ValidationError{Msg: msgQuantityDigits}
		}
		q := fmt.Sprintf("%d", qty)
		upd.Quantity = &q
	}

	if err := m.store.UpdateEntry(ctx, f.entryID, upd); err != nil {
		return nil, nil, err
	}
	return flowIdle{}, []Reply{m.menuReply(sess, msgUpdated)}, nil
}

// findEntry fetches one entry by id from the snapshot list.
func (m *Machine) findEntry(ctx context.Context, id int) (*models.ProductionEntry, error) {
	entries, err := m.store.ListEntries(ctx)
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, &NotFoundError{What: "Entry"}
}
