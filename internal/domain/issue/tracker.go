package issue

import (
	"context"
	"time"

	"etraxis/internal/domain/field"
	"etraxis/internal/domain/security"
)

// Tracker applies field values to issues, converting to storage form via the
// field codec and recording a Change whenever a value actually transitions.
// All writes happen within the transaction carried in the context.
type Tracker struct {
	issues  Repository
	values  FieldValueRepository
	changes ChangeRepository
	stores  field.CodecStores
}

// NewTracker creates a change tracker.
func NewTracker(issues Repository, values FieldValueRepository, changes ChangeRepository, stores field.CodecStores) *Tracker {
	return &Tracker{
		issues:  issues,
		values:  values,
		changes: changes,
		stores:  stores,
	}
}

// SetFieldValue applies a human-entered value to an issue's field.
//
// The value is encoded first; a dangling list/issue reference aborts with
// ok=false and nothing written. A missing value row is created; an existing
// row is updated, with a Change recorded, only when the encoded value
// differs. Re-applying the same value is a no-op: no Change, no touch.
func (t *Tracker) SetFieldValue(ctx context.Context, iss *Issue, event *Event, f *field.Field, human any, loc *time.Location) (bool, error) {
	codec := field.NewCodec(f, t.stores)

	encoded, ok, err := codec.Encode(ctx, human, loc)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}

	current, err := t.values.FindByIssueAndField(ctx, iss.ID(), f.ID())
	if err != nil {
		return false, err
	}

	if current == nil {
		value, err := NewFieldValue(iss.ID(), f.ID(), encoded)
		if err != nil {
			return false, err
		}
		if err := t.values.Save(ctx, value); err != nil {
			return false, err
		}
		iss.Touch()
		if err := t.issues.Update(ctx, iss); err != nil {
			return false, err
		}
		return true, nil
	}

	if current.Equals(encoded) {
		return true, nil
	}

	fieldID := f.ID()
	change, err := NewChange(event.ID(), &fieldID, current.Value(), encoded)
	if err != nil {
		return false, err
	}
	if err := t.changes.Save(ctx, change); err != nil {
		return false, err
	}

	current.Update(encoded)
	if err := t.values.Update(ctx, current); err != nil {
		return false, err
	}

	iss.Touch()
	if err := t.issues.Update(ctx, iss); err != nil {
		return false, err
	}

	return true, nil
}

// MaterializeFields creates the missing value rows for the given fields on
// an issue, encoding each field's configured default. Rows that already
// exist are left untouched, so re-entering a state never rewrites values.
func (t *Tracker) MaterializeFields(ctx context.Context, iss *Issue, fields []*field.Field, loc *time.Location) error {
	for _, f := range fields {
		current, err := t.values.FindByIssueAndField(ctx, iss.ID(), f.ID())
		if err != nil {
			return err
		}
		if current != nil {
			continue
		}

		codec := field.NewCodec(f, t.stores)
		human, err := codec.DefaultValue(ctx, iss.CreatedAt(), loc)
		if err != nil {
			return err
		}
		encoded, ok, err := codec.Encode(ctx, human, loc)
		if err != nil {
			return err
		}
		if !ok {
			// A default pointing at a vanished reference should not block
			// the issue; the field just starts empty.
			encoded = nil
		}

		value, err := NewFieldValue(iss.ID(), f.ID(), encoded)
		if err != nil {
			return err
		}
		if err := t.values.Save(ctx, value); err != nil {
			return err
		}
	}
	return nil
}

// GetFieldValue decodes a stored value back to human form, using the reading
// user's timezone for date fields.
func (t *Tracker) GetFieldValue(ctx context.Context, value *FieldValue, f *field.Field, user *security.User) (any, error) {
	codec := field.NewCodec(f, t.stores)
	return codec.Decode(ctx, value.Value(), user.Location())
}
