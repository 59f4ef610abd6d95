package client

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/folio-labs/portfolio/internal/api/types"
	"github.com/folio-labs/portfolio/pkg/logger"
)

// DefaultResetAfter is how long a success or error banner stays up.
const DefaultResetAfter = 5 * time.Second

// ErrSubmitInProgress is returned while an earlier submission is in flight.
var ErrSubmitInProgress = errors.New("submission already in progress")

type Status string

const (
	StatusIdle    Status = "idle"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// ContactSender posts one contact form.
type ContactSender interface {
	SendContact(ctx context.Context, form types.ContactRequest) error
}

// ContactView is the contact form: three fields, a banner status and a
// loading flag that disables submission.
type ContactView struct {
	sender     ContactSender
	resetAfter time.Duration

	mu      sync.Mutex
	form    types.ContactRequest
	status  Status
	loading bool
	gen     uint64
	timer   *time.Timer
}

func NewContactView(sender ContactSender, resetAfter time.Duration) *ContactView {
	if resetAfter <= 0 {
		resetAfter = DefaultResetAfter
	}
	return &ContactView{sender: sender, resetAfter: resetAfter, status: StatusIdle}
}

func (v *ContactView) SetName(s string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.form.Name = s
}

func (v *ContactView) SetEmail(s string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.form.Email = s
}

func (v *ContactView) SetMessage(s string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.form.Message = s
}

// Form returns the current field values.
func (v *ContactView) Form() types.ContactRequest {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.form
}

func (v *ContactView) Status() Status {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.status
}

func (v *ContactView) Loading() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.loading
}

// Submit sends the form. A 2xx answer clears the fields and shows success;
// anything else shows error. Either banner reverts to idle after the reset
// window unless a newer submission replaced it.
func (v *ContactView) Submit(ctx context.Context) error {
	v.mu.Lock()
	if v.loading {
		v.mu.Unlock()
		return ErrSubmitInProgress
	}
	v.loading = true
	v.status = StatusIdle
	v.cancelResetLocked()
	form := v.form
	v.mu.Unlock()

	err := v.sender.SendContact(ctx, form)

	v.mu.Lock()
	defer v.mu.Unlock()
	v.loading = false
	if err != nil {
		logger.L().Warn("contact submission failed", zap.Error(err))
		v.status = StatusError
	} else {
		v.form = types.ContactRequest{}
		v.status = StatusSuccess
	}
	v.scheduleResetLocked()
	return err
}

func (v *ContactView) scheduleResetLocked() {
	v.gen++
	gen := v.gen
	v.timer = time.AfterFunc(v.resetAfter, func() {
		v.mu.Lock()
		defer v.mu.Unlock()
		if v.gen == gen && !v.loading {
			v.status = StatusIdle
		}
	})
}

func (v *ContactView) cancelResetLocked() {
	if v.timer != nil {
		v.timer.Stop()
		v.timer = nil
	}
	v.gen++
}
