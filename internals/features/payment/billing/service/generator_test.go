package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	model "skytopia_backend/internals/features/payment/billing/model"
	service "skytopia_backend/internals/features/payment/billing/service"
)

func TestGeneratorRun_JuneScenario(t *testing.T) {
	// Anak C: monthly 500rb, semester 2jt. Run 1 Juni →
	// satu tagihan Monthly (periode 2026-06, due 10 Juni) +
	// satu tagihan Semester (periode 2026-2, due 15 Juli).
	childID := uuid.New()
	store := newFakePaymentStore()
	children := &fakeChildStore{children: []model.BillableChild{
		{ChildID: childID, MonthlyFeeIDR: 500000, SemesterFeeIDR: 2000000},
	}}
	gen := service.NewGenerator(store, children, time.UTC)

	june1 := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)

	stats, err := gen.Run(context.Background(), june1)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.MonthlyCreated)
	assert.Equal(t, 1, stats.SemesterCreated)

	rows := store.byChild(childID)
	require.Len(t, rows, 2)

	var monthly, semester *model.PaymentModel
	for _, p := range rows {
		switch p.PaymentCategory {
		case model.PaymentCategoryMonthly:
			monthly = p
		case model.PaymentCategorySemester:
			semester = p
		}
	}
	require.NotNil(t, monthly)
	require.NotNil(t, semester)

	assert.Equal(t, "2026-06", *monthly.PaymentPeriod)
	assert.Equal(t, 500000, monthly.PaymentAmountIDR)
	assert.Equal(t, model.PaymentStatusPending, monthly.PaymentStatus)
	assert.Equal(t, time.Date(2026, time.June, 10, 0, 0, 0, 0, time.UTC), monthly.PaymentDueDate)

	assert.Equal(t, "2026-2", *semester.PaymentPeriod)
	assert.Equal(t, 2000000, semester.PaymentAmountIDR)
	assert.Equal(t, time.Date(2026, time.July, 15, 0, 0, 0, 0, time.UTC), semester.PaymentDueDate)

	// run kedua di hari yang sama: tidak ada baris baru
	stats, err = gen.Run(context.Background(), june1)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.MonthlyCreated)
	assert.Equal(t, 0, stats.SemesterCreated)
	assert.Equal(t, 1, stats.MonthlySkipped)
	assert.Equal(t, 1, stats.SemesterSkipped)
	assert.Len(t, store.byChild(childID), 2)

	// lanjutan skenario: sweep 20 Juli → Monthly (due 10 Juni) dan
	// Semester (due 15 Juli) dua-duanya belum dibayar → Overdue
	july20 := time.Date(2026, time.July, 20, 0, 0, 0, 0, time.UTC)
	n, err := gen.Sweep(context.Background(), july20)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
	assert.Equal(t, model.PaymentStatusOverdue, monthly.PaymentStatus)
	assert.Equal(t, model.PaymentStatusOverdue, semester.PaymentStatus)
}

func TestGeneratorRun_DecemberSemester(t *testing.T) {
	childID := uuid.New()
	store := newFakePaymentStore()
	children := &fakeChildStore{children: []model.BillableChild{
		{ChildID: childID, SemesterFeeIDR: 1500000},
	}}
	gen := service.NewGenerator(store, children, time.UTC)

	dec1 := time.Date(2026, time.December, 1, 0, 0, 0, 0, time.UTC)
	stats, err := gen.Run(context.Background(), dec1)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.MonthlyCreated)
	assert.Equal(t, 1, stats.SemesterCreated)

	rows := store.byChild(childID)
	require.Len(t, rows, 1)
	assert.Equal(t, "2027-1", *rows[0].PaymentPeriod)
	assert.Equal(t, time.Date(2027, time.January, 15, 0, 0, 0, 0, time.UTC), rows[0].PaymentDueDate)
}

func TestGeneratorRun_Eligibility(t *testing.T) {
	noFees := uuid.New()
	monthlyOnly := uuid.New()
	store := newFakePaymentStore()
	children := &fakeChildStore{children: []model.BillableChild{
		{ChildID: noFees},
		{ChildID: monthlyOnly, MonthlyFeeIDR: 750000},
	}}
	gen := service.NewGenerator(store, children, time.UTC)

	// Juni = bulan transisi semester, tapi anak tanpa semester_fee tetap tidak kena
	june1 := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)
	stats, err := gen.Run(context.Background(), june1)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.MonthlyCreated)
	assert.Equal(t, 0, stats.SemesterCreated)

	assert.Empty(t, store.byChild(noFees))
	rows := store.byChild(monthlyOnly)
	require.Len(t, rows, 1)
	assert.Equal(t, model.PaymentCategoryMonthly, rows[0].PaymentCategory)
}

func TestGeneratorRun_NoSemesterOutsideTransitionMonths(t *testing.T) {
	childID := uuid.New()
	store := newFakePaymentStore()
	children := &fakeChildStore{children: []model.BillableChild{
		{ChildID: childID, MonthlyFeeIDR: 500000, SemesterFeeIDR: 2000000},
	}}
	gen := service.NewGenerator(store, children, time.UTC)

	march1 := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	stats, err := gen.Run(context.Background(), march1)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.MonthlyCreated)
	assert.Equal(t, 0, stats.SemesterCreated)
	assert.Len(t, store.byChild(childID), 1)
}

func TestGeneratorRun_ChildListFailure(t *testing.T) {
	gen := service.NewGenerator(newFakePaymentStore(), &fakeChildStore{err: errors.New("storage down")}, time.UTC)

	_, err := gen.Run(context.Background(), time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC))
	assert.Error(t, err)
}

func TestGeneratorRun_PartialFailureStandsUncorrected(t *testing.T) {
	// create kedua gagal → run berhenti, baris pertama tetap berdiri (tanpa rollback)
	childA := uuid.New()
	childB := uuid.New()
	store := newFakePaymentStore()
	store.failCreateAfter = 1
	children := &fakeChildStore{children: []model.BillableChild{
		{ChildID: childA, MonthlyFeeIDR: 500000},
		{ChildID: childB, MonthlyFeeIDR: 500000},
	}}
	gen := service.NewGenerator(store, children, time.UTC)

	march1 := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	stats, err := gen.Run(context.Background(), march1)
	require.Error(t, err)
	assert.Equal(t, 1, stats.MonthlyCreated)
	assert.Len(t, store.byChild(childA), 1)
	assert.Empty(t, store.byChild(childB))

	// run bulan yang sama setelah storage pulih: yang bolong terisi, tanpa duplikat
	store.failCreateAfter = -1
	stats, err = gen.Run(context.Background(), march1)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.MonthlyCreated)
	assert.Equal(t, 1, stats.MonthlySkipped)
	assert.Len(t, store.byChild(childA), 1)
	assert.Len(t, store.byChild(childB), 1)
}

func TestGeneratorRun_SweepFailureDoesNotBlockGenerate(t *testing.T) {
	childID := uuid.New()
	store := newFakePaymentStore()
	store.failMarkOverdue = true
	children := &fakeChildStore{children: []model.BillableChild{
		{ChildID: childID, MonthlyFeeIDR: 500000},
	}}
	gen := service.NewGenerator(store, children, time.UTC)

	stats, err := gen.Run(context.Background(), time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 1, stats.MonthlyCreated)
	assert.Equal(t, int64(0), stats.Swept)
}

func TestGeneratorRun_UniqueViolationTreatedAsExisting(t *testing.T) {
	// race dengan create manual: exists-check lolos tapi insert kena unique index →
	// dihitung skip, run jalan terus
	childID := uuid.New()
	store := newFakePaymentStore()
	store.existsAlwaysFalse = true
	children := &fakeChildStore{children: []model.BillableChild{
		{ChildID: childID, MonthlyFeeIDR: 500000},
	}}
	gen := service.NewGenerator(store, children, time.UTC)

	march1 := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)

	// baris "manual" yang sudah ada dengan periode yang sama
	store.add(model.PaymentModel{
		PaymentChildID: childID, PaymentCategory: model.PaymentCategoryMonthly,
		PaymentPeriod: strPtr("2026-03"), PaymentAmountIDR: 500000,
		PaymentStatus: model.PaymentStatusPending, PaymentDueDate: march1,
	})

	stats, err := gen.Run(context.Background(), march1)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.MonthlyCreated)
	assert.Equal(t, 1, stats.MonthlySkipped)
	assert.Len(t, store.byChild(childID), 1)
}
