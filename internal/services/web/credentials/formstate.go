package credentials

// Phase is the lifecycle position of one auth form.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseSubmitting
	PhaseError
	PhaseDone
)

// FormState tracks one auth form: Idle -> Submitting -> (Done | Error), and
// Error -> Submitting again. Message is set only in PhaseError.
type FormState struct {
	Phase   Phase
	Message string
}

// Submit starts a submission and clears any previous error. A form that is
// already submitting or done is left unchanged.
func (f FormState) Submit() FormState {
	switch f.Phase {
	case PhaseIdle, PhaseError:
		return FormState{Phase: PhaseSubmitting}
	default:
		return f
	}
}

// Fail ends a submission with message.
func (f FormState) Fail(message string) FormState {
	if f.Phase != PhaseSubmitting {
		return f
	}
	return FormState{Phase: PhaseError, Message: message}
}

// Succeed ends a submission; the page navigates away.
func (f FormState) Succeed() FormState {
	if f.Phase != PhaseSubmitting {
		return f
	}
	return FormState{Phase: PhaseDone}
}

// Apply ends a submission according to result.
func (f FormState) Apply(result Result) FormState {
	if result.OK {
		return f.Succeed()
	}
	return f.Fail(result.Message)
}

// Submitting reports whether the submit control should be disabled.
func (f FormState) Submitting() bool {
	return f.Phase == PhaseSubmitting
}

// Failed reports whether an error message should be shown.
func (f FormState) Failed() bool {
	return f.Phase == PhaseError
}
