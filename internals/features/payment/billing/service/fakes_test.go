package service_test

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	model "skytopia_backend/internals/features/payment/billing/model"
)

// fakePaymentStore: pengganti tabel payments di memory.
// Menegakkan unique (child, category, period) seperti index di Postgres.
type fakePaymentStore struct {
	mu       sync.Mutex
	payments []*model.PaymentModel

	// simulasi kegagalan storage
	failCreateAfter int // >=0: Create ke-N (0-based) dan seterusnya gagal
	failMarkOverdue bool
	createCalls     int

	// simulasi race check-then-insert: exists-check selalu bilang belum ada,
	// unique index (Create) yang menangkap duplikatnya
	existsAlwaysFalse bool
}

func newFakePaymentStore() *fakePaymentStore {
	return &fakePaymentStore{failCreateAfter: -1}
}

func (f *fakePaymentStore) ExistsForPeriod(_ context.Context, childID uuid.UUID, category model.PaymentCategory, period string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.existsAlwaysFalse {
		return false, nil
	}
	return f.findLocked(childID, category, period) != nil, nil
}

func (f *fakePaymentStore) Create(_ context.Context, p *model.PaymentModel) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	call := f.createCalls
	f.createCalls++
	if f.failCreateAfter >= 0 && call >= f.failCreateAfter {
		return errors.New("storage down")
	}

	if p.PaymentPeriod != nil {
		if f.findLocked(p.PaymentChildID, p.PaymentCategory, *p.PaymentPeriod) != nil {
			return errors.New(`duplicate key value violates unique constraint "uniq_payment_child_category_period"`)
		}
	}

	cp := *p
	if cp.PaymentID == uuid.Nil {
		cp.PaymentID = uuid.New()
	}
	f.payments = append(f.payments, &cp)
	return nil
}

func (f *fakePaymentStore) MarkOverdue(_ context.Context, now time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failMarkOverdue {
		return 0, errors.New("storage down")
	}

	var n int64
	for _, p := range f.payments {
		if (p.PaymentStatus == model.PaymentStatusPending || p.PaymentStatus == model.PaymentStatusSubmitted) &&
			p.PaymentDueDate.Before(now) {
			p.PaymentStatus = model.PaymentStatusOverdue
			n++
		}
	}
	return n, nil
}

func (f *fakePaymentStore) findLocked(childID uuid.UUID, category model.PaymentCategory, period string) *model.PaymentModel {
	for _, p := range f.payments {
		if p.PaymentChildID == childID && p.PaymentCategory == category &&
			p.PaymentPeriod != nil && *p.PaymentPeriod == period {
			return p
		}
	}
	return nil
}

func (f *fakePaymentStore) byChild(childID uuid.UUID) []*model.PaymentModel {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*model.PaymentModel
	for _, p := range f.payments {
		if p.PaymentChildID == childID {
			out = append(out, p)
		}
	}
	return out
}

func (f *fakePaymentStore) add(p model.PaymentModel) *model.PaymentModel {
	f.mu.Lock()
	defer f.mu.Unlock()
	if p.PaymentID == uuid.Nil {
		p.PaymentID = uuid.New()
	}
	f.payments = append(f.payments, &p)
	return f.payments[len(f.payments)-1]
}

// fakeChildStore: direktori anak statis.
type fakeChildStore struct {
	children []model.BillableChild
	err      error
}

func (f *fakeChildStore) ListBillable(_ context.Context) ([]model.BillableChild, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.children, nil
}
