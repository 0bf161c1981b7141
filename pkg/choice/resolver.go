package choice

// Resolver applies candidate values to choice fields. It holds configuration
// only and may be shared; callers must serialize calls against the same
// field.
type Resolver struct {
	clearIndexOnFreeText bool
	logger               ResolveLogger
}

// New constructs a Resolver with the legacy defaults.
func New(options ...Option) *Resolver {
	r := &Resolver{logger: noopResolveLogger{}}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

// Resolve checks candidate against the field's options and stores the result.
//
// Rejections (ErrNoOptionsAvailable, *ValueNotAnOptionError) happen before any
// write. An error from SetDisplayValue is returned unchanged and leaves the
// key and index unapplied.
func (r *Resolver) Resolve(field Field, candidate string) error {
	if r == nil {
		r = New()
	}
	if field == nil {
		return ErrNilField
	}
	event := ResolveEvent{Candidate: candidate, Index: -1}
	err := r.resolve(field, candidate, &event)
	event.Err = err
	r.log(event)
	return err
}

func (r *Resolver) resolve(field Field, candidate string, event *ResolveEvent) error {
	options := field.Options()
	editable := field.Flags().Editable()

	if len(options) == 0 && !editable {
		event.Outcome = OutcomeRejected
		return ErrNoOptionsAvailable
	}

	selected := -1
	for i, option := range options {
		if !option.Matches(candidate) {
			continue
		}
		if option.Paired() {
			if err := field.SetDisplayValue(option.Display()); err != nil {
				event.Outcome = OutcomeFailed
				return err
			}
			field.SetStoredKey(option.Export())
		} else {
			if err := field.SetDisplayValue(candidate); err != nil {
				event.Outcome = OutcomeFailed
				return err
			}
		}
		selected = i
		break
	}

	if selected == -1 {
		if !editable {
			event.Outcome = OutcomeRejected
			return &ValueNotAnOptionError{Value: candidate}
		}
		if err := field.SetDisplayValue(candidate); err != nil {
			event.Outcome = OutcomeFailed
			return err
		}
		if r.clearIndexOnFreeText {
			field.SelectedIndex().Clear()
		}
		event.Outcome = OutcomeFreeText
		return nil
	}

	// The record is only ever rewritten, never created.
	if index := field.SelectedIndex(); index != nil {
		index.Replace(selected)
	}
	event.Outcome = OutcomeMatched
	event.Index = selected
	return nil
}

func (r *Resolver) log(event ResolveEvent) {
	if r == nil || r.logger == nil {
		return
	}
	r.logger.LogResolve(event)
}
