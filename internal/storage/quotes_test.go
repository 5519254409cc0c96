package storage

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"gitlab.ozon.dev/pupkingeorgij/forwarder/internal/carrier"
	"gitlab.ozon.dev/pupkingeorgij/forwarder/internal/db"
	"gitlab.ozon.dev/pupkingeorgij/forwarder/internal/payment"
	"gitlab.ozon.dev/pupkingeorgij/forwarder/internal/repository"
)

var colissimo = carrier.Option{
	ID:           "colissimo",
	Name:         "Colissimo",
	Price:        decimal.RequireFromString("12.50"),
	DeliveryTime: "5-7 jours",
}

func unpaidQuote() *repository.Quote {
	return &repository.Quote{
		ID:            quoteID,
		QuoteNumber:   "DEV-20250301-A1B2C3",
		PackageID:     packageID,
		OwnerID:       ownerID,
		BaseAmount:    decimal.RequireFromString("5.00"),
		AmountHT:      decimal.RequireFromString("5.00"),
		TaxRate:       decimal.RequireFromString("0.20"),
		TaxAmount:     decimal.RequireFromString("1.00"),
		AmountTTC:     decimal.RequireFromString("6.00"),
		PaymentStatus: string(PaymentUnpaid),
	}
}

func withCarrier(q *repository.Quote) *repository.Quote {
	id, name, eta := colissimo.ID, colissimo.Name, colissimo.DeliveryTime
	q.CarrierID = &id
	q.CarrierName = &name
	q.CarrierDeliveryTime = &eta
	q.CarrierPrice = decimal.NullDecimal{Decimal: colissimo.Price, Valid: true}
	q.AmountHT = decimal.RequireFromString("17.50")
	q.TaxAmount = decimal.RequireFromString("3.50")
	q.AmountTTC = decimal.RequireFromString("21.00")
	return q
}

func TestStorage_GetOrCreateQuote(t *testing.T) {
	t.Run("first call creates the quote with its handling item", func(t *testing.T) {
		f := newFixture(t)
		var created *repository.Quote

		f.packages.EXPECT().GetByOwner(f.ctx, ownerID, packageID).Return(storedPackage(StatusStored), nil)
		f.expectCommit()
		f.quotes.EXPECT().CreateIfAbsentTx(f.ctx, f.tx, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ db.Tx, q *repository.Quote) (bool, error) {
				created = q
				assert.Equal(t, "DEV-20250301-A1B2C3", q.QuoteNumber)
				assert.Equal(t, "5.00", q.AmountHT.StringFixed(2))
				assert.Equal(t, "6.00", q.AmountTTC.StringFixed(2))
				assert.Equal(t, string(PaymentUnpaid), q.PaymentStatus)
				return true, nil
			})
		f.quotes.EXPECT().AddItemTx(f.ctx, f.tx, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ db.Tx, item *repository.QuoteItem) error {
				assert.Equal(t, ItemHandling, item.Kind)
				assert.Equal(t, "5.00", item.Amount.StringFixed(2))
				return nil
			})
		f.quotes.EXPECT().ListItems(f.ctx, fixedUUID).Return([]*repository.QuoteItem{
			{Kind: ItemHandling, Label: "Frais de traitement", Amount: decimal.RequireFromString("5.00")},
		}, nil)

		q, err := f.storage.GetOrCreateQuote(f.ctx, ownerID, packageID)

		require.NoError(t, err)
		assert.Equal(t, created.ID, q.ID)
		assert.Len(t, q.Items, 1)
		assert.Nil(t, q.Carrier)
	})

	t.Run("second call returns the existing quote", func(t *testing.T) {
		f := newFixture(t)
		existing := unpaidQuote()

		f.packages.EXPECT().GetByOwner(f.ctx, ownerID, packageID).Return(storedPackage(StatusStored), nil).Times(2)
		f.db.EXPECT().BeginTx(f.ctx).Return(f.tx, nil).Times(2)
		f.tx.EXPECT().Commit(f.ctx).Return(nil).Times(2)
		f.quotes.EXPECT().CreateIfAbsentTx(f.ctx, f.tx, gomock.Any()).Return(false, nil).Times(2)
		f.quotes.EXPECT().GetByPackageIDTx(f.ctx, f.tx, packageID).Return(existing, nil).Times(2)
		f.quotes.EXPECT().ListItems(f.ctx, quoteID).Return(nil, nil).Times(2)

		first, err := f.storage.GetOrCreateQuote(f.ctx, ownerID, packageID)
		require.NoError(t, err)
		second, err := f.storage.GetOrCreateQuote(f.ctx, ownerID, packageID)
		require.NoError(t, err)

		assert.Equal(t, quoteID, first.ID)
		assert.Equal(t, first.ID, second.ID)
	})

	t.Run("quote number collision retries in a new transaction", func(t *testing.T) {
		f := newFixture(t)

		f.packages.EXPECT().GetByOwner(f.ctx, ownerID, packageID).Return(storedPackage(StatusStored), nil)
		gomock.InOrder(
			f.db.EXPECT().BeginTx(f.ctx).Return(f.tx, nil),
			f.quotes.EXPECT().CreateIfAbsentTx(f.ctx, f.tx, gomock.Any()).
				Return(false, fmt.Errorf("wrapped: %w", repository.ErrDuplicate)),
			f.tx.EXPECT().Rollback(f.ctx).Return(nil),
			f.db.EXPECT().BeginTx(f.ctx).Return(f.tx, nil),
			f.quotes.EXPECT().CreateIfAbsentTx(f.ctx, f.tx, gomock.Any()).Return(true, nil),
			f.quotes.EXPECT().AddItemTx(f.ctx, f.tx, gomock.Any()).Return(nil),
			f.tx.EXPECT().Commit(f.ctx).Return(nil),
		)
		f.quotes.EXPECT().ListItems(f.ctx, fixedUUID).Return(nil, nil)

		q, err := f.storage.GetOrCreateQuote(f.ctx, ownerID, packageID)

		require.NoError(t, err)
		assert.Equal(t, fixedUUID, q.ID)
	})

	t.Run("foreign package is not found", func(t *testing.T) {
		f := newFixture(t)
		f.packages.EXPECT().GetByOwner(f.ctx, "intruder", packageID).Return(nil, repository.ErrObjectNotFound)

		_, err := f.storage.GetOrCreateQuote(f.ctx, "intruder", packageID)

		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestStorage_GetQuoteByTracking(t *testing.T) {
	f := newFixture(t)

	f.packages.EXPECT().GetByTracking(f.ctx, ownerID, "LP1").Return(storedPackage(StatusStored), nil)
	f.expectCommit()
	f.quotes.EXPECT().CreateIfAbsentTx(f.ctx, f.tx, gomock.Any()).Return(false, nil)
	f.quotes.EXPECT().GetByPackageIDTx(f.ctx, f.tx, packageID).Return(unpaidQuote(), nil)
	f.quotes.EXPECT().ListItems(f.ctx, quoteID).Return(nil, nil)

	q, err := f.storage.GetQuoteByTracking(f.ctx, ownerID, " LP1 ")

	require.NoError(t, err)
	assert.Equal(t, quoteID, q.ID)
}

func TestStorage_SelectCarrier(t *testing.T) {
	t.Run("handling fee plus colissimo", func(t *testing.T) {
		f := newFixture(t)
		pending := unpaidQuote()
		session := "cs_old"
		pending.PaymentStatus = string(PaymentPending)
		pending.PaymentSessionID = &session

		f.carriers.EXPECT().Get("colissimo").Return(colissimo, nil)
		f.expectCommit()
		f.quotes.EXPECT().GetByOwnerTx(f.ctx, f.tx, ownerID, quoteID).Return(pending, nil)
		f.quotes.EXPECT().UpdateTx(f.ctx, f.tx, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ db.Tx, q *repository.Quote) error {
				assert.Equal(t, "17.50", q.AmountHT.StringFixed(2))
				assert.Equal(t, "3.50", q.TaxAmount.StringFixed(2))
				assert.Equal(t, "21.00", q.AmountTTC.StringFixed(2))
				assert.Equal(t, string(PaymentUnpaid), q.PaymentStatus)
				assert.Nil(t, q.PaymentSessionID)
				return nil
			})
		f.quotes.EXPECT().DeleteItemsTx(f.ctx, f.tx, quoteID, ItemCarrier).Return(nil)
		f.quotes.EXPECT().AddItemTx(f.ctx, f.tx, gomock.Any()).Return(nil)
		f.quotes.EXPECT().ListItems(f.ctx, quoteID).Return(nil, nil)

		q, err := f.storage.SelectCarrier(f.ctx, ownerID, quoteID, "colissimo")

		require.NoError(t, err)
		require.NotNil(t, q.Carrier)
		assert.Equal(t, "Colissimo", q.Carrier.Name)
		assert.Equal(t, "12.50", q.Carrier.Price.StringFixed(2))
		assert.Equal(t, "21.00", q.AmountTTC.StringFixed(2))
	})

	t.Run("later catalog price changes leave the quote alone", func(t *testing.T) {
		f := newFixture(t)
		var (
			saved repository.Quote
			items []*repository.QuoteItem
		)

		f.carriers.EXPECT().Get("colissimo").Return(colissimo, nil)
		f.expectCommit()
		f.quotes.EXPECT().GetByOwnerTx(f.ctx, f.tx, ownerID, quoteID).Return(unpaidQuote(), nil)
		f.quotes.EXPECT().UpdateTx(f.ctx, f.tx, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ db.Tx, q *repository.Quote) error {
				saved = *q
				return nil
			})
		f.quotes.EXPECT().DeleteItemsTx(f.ctx, f.tx, quoteID, ItemCarrier).Return(nil)
		f.quotes.EXPECT().AddItemTx(f.ctx, f.tx, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ db.Tx, item *repository.QuoteItem) error {
				items = append(items, item)
				return nil
			})
		f.quotes.EXPECT().ListItems(f.ctx, quoteID).DoAndReturn(
			func(context.Context, string) ([]*repository.QuoteItem, error) {
				return items, nil
			}).Times(2)

		_, err := f.storage.SelectCarrier(f.ctx, ownerID, quoteID, "colissimo")
		require.NoError(t, err)

		raised := colissimo
		raised.Price = decimal.RequireFromString("40.00")
		f.carriers.EXPECT().Get("colissimo").Return(raised, nil).AnyTimes()
		f.carriers.EXPECT().List().Return([]carrier.Option{raised}).AnyTimes()

		f.packages.EXPECT().GetByOwner(f.ctx, ownerID, packageID).Return(storedPackage(StatusStored), nil)
		f.expectCommit()
		f.quotes.EXPECT().CreateIfAbsentTx(f.ctx, f.tx, gomock.Any()).Return(false, nil)
		f.quotes.EXPECT().GetByPackageIDTx(f.ctx, f.tx, packageID).Return(&saved, nil)

		q, err := f.storage.GetOrCreateQuote(f.ctx, ownerID, packageID)

		require.NoError(t, err)
		require.NotNil(t, q.Carrier)
		assert.Equal(t, "12.50", q.Carrier.Price.StringFixed(2))
		assert.Equal(t, "21.00", q.AmountTTC.StringFixed(2))
		require.Len(t, q.Items, 1)
		assert.Equal(t, "12.50", q.Items[0].Amount.StringFixed(2))
	})

	t.Run("paid quote is a conflict", func(t *testing.T) {
		f := newFixture(t)
		paid := withCarrier(unpaidQuote())
		paid.PaymentStatus = string(PaymentPaid)

		f.carriers.EXPECT().Get("colissimo").Return(colissimo, nil)
		f.expectRollback()
		f.quotes.EXPECT().GetByOwnerTx(f.ctx, f.tx, ownerID, quoteID).Return(paid, nil)

		_, err := f.storage.SelectCarrier(f.ctx, ownerID, quoteID, "colissimo")

		assert.ErrorIs(t, err, ErrConflict)
	})

	t.Run("unknown carrier is not found", func(t *testing.T) {
		f := newFixture(t)
		f.carriers.EXPECT().Get("pigeon").Return(carrier.Option{}, fmt.Errorf("%w: pigeon", carrier.ErrUnknownCarrier))

		_, err := f.storage.SelectCarrier(f.ctx, ownerID, quoteID, "pigeon")

		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("foreign quote is not found", func(t *testing.T) {
		f := newFixture(t)

		f.carriers.EXPECT().Get("colissimo").Return(colissimo, nil)
		f.expectRollback()
		f.quotes.EXPECT().GetByOwnerTx(f.ctx, f.tx, "intruder", quoteID).Return(nil, repository.ErrObjectNotFound)

		_, err := f.storage.SelectCarrier(f.ctx, "intruder", quoteID, "colissimo")

		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestStorage_StartQuotePayment(t *testing.T) {
	t.Run("opens a session for the ttc amount", func(t *testing.T) {
		f := newFixture(t)

		f.db.EXPECT().BeginTx(f.ctx).Return(f.tx, nil).Times(2)
		f.tx.EXPECT().Commit(f.ctx).Return(nil).Times(2)
		f.quotes.EXPECT().GetByOwnerTx(f.ctx, f.tx, ownerID, quoteID).DoAndReturn(
			func(context.Context, db.Tx, string, string) (*repository.Quote, error) {
				return withCarrier(unpaidQuote()), nil
			}).Times(2)
		f.checkout.EXPECT().CreateSession(f.ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, req payment.SessionRequest) (payment.Session, error) {
				assert.Equal(t, payment.KindQuote, req.Kind)
				assert.Equal(t, quoteID, req.ReferenceID)
				assert.Equal(t, "21.00", req.Amount.StringFixed(2))
				return payment.Session{ID: "cs_1", URL: "https://pay/cs_1"}, nil
			})
		f.quotes.EXPECT().UpdateTx(f.ctx, f.tx, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ db.Tx, q *repository.Quote) error {
				assert.Equal(t, string(PaymentPending), q.PaymentStatus)
				assert.Equal(t, "cs_1", *q.PaymentSessionID)
				return nil
			})

		link, err := f.storage.StartQuotePayment(f.ctx, ownerID, quoteID)

		require.NoError(t, err)
		assert.Equal(t, "https://pay/cs_1", link.URL)
	})

	t.Run("no carrier yet is a conflict", func(t *testing.T) {
		f := newFixture(t)

		f.expectRollback()
		f.quotes.EXPECT().GetByOwnerTx(f.ctx, f.tx, ownerID, quoteID).Return(unpaidQuote(), nil)

		_, err := f.storage.StartQuotePayment(f.ctx, ownerID, quoteID)

		assert.ErrorIs(t, err, ErrConflict)
	})

	t.Run("provider failure blocks the payment", func(t *testing.T) {
		f := newFixture(t)

		f.expectCommit()
		f.quotes.EXPECT().GetByOwnerTx(f.ctx, f.tx, ownerID, quoteID).Return(withCarrier(unpaidQuote()), nil)
		f.checkout.EXPECT().CreateSession(f.ctx, gomock.Any()).Return(payment.Session{}, errors.New("stripe down"))

		_, err := f.storage.StartQuotePayment(f.ctx, ownerID, quoteID)

		assert.ErrorIs(t, err, ErrExternalService)
	})
}

func TestStorage_DeleteQuote(t *testing.T) {
	f := newFixture(t)
	var topics []string

	f.expectCommit()
	f.quotes.EXPECT().GetByIDTx(f.ctx, f.tx, quoteID).Return(unpaidQuote(), nil)
	f.quotes.EXPECT().DeleteTx(f.ctx, f.tx, quoteID).Return(nil)
	f.expectOutbox(&topics)

	require.NoError(t, f.storage.DeleteQuote(f.ctx, "admin", quoteID))
	assert.Equal(t, []string{repository.TopicAuditLogs}, topics)
}
