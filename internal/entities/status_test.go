package entities_test

import (
	"testing"

	"github.com/SergeyBogomolovv/order-tracker/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOrderStatus(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		want    entities.OrderStatus
		wantErr bool
	}{
		{name: "canonical", input: "delivered", want: entities.StatusDelivered},
		{name: "canonical with spaces", input: "  in-preparation ", want: entities.StatusInPreparation},
		{name: "mobile code", input: "HAZIRLANIYOR", want: entities.StatusInPreparation},
		{name: "mobile code lower case", input: "teslim_edildi", want: entities.StatusDelivered},
		{name: "web label prepared", input: "Hazırlandı", want: entities.StatusInPreparation},
		{name: "web label not delivered", input: "Teslim Edilmedi", want: entities.StatusInPreparation},
		{name: "web label delivered", input: "Teslim Edildi", want: entities.StatusDelivered},
		{name: "unknown", input: "shipped", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := entities.ParseOrderStatus(tc.input)
			if tc.wantErr {
				assert.ErrorIs(t, err, entities.ErrInvalidStatus)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParsePaymentStatus(t *testing.T) {
	testCases := []struct {
		input   string
		want    entities.PaymentStatus
		wantErr bool
	}{
		{input: "prepaid", want: entities.PaymentPrepaid},
		{input: "ONDEN_ODEME_ALINDI", want: entities.PaymentPrepaid},
		{input: "Tahsil Edildi", want: entities.PaymentPrepaid},
		{input: "Tahsil Edilmedi", want: entities.PaymentNotCollected},
		{input: "TESLIM_ANINDA", want: entities.PaymentCollectOnDelivery},
		{input: "VERESIYE", want: entities.PaymentCredit},
		{input: "credit", want: entities.PaymentCredit},
		{input: "cash", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := entities.ParsePaymentStatus(tc.input)
			if tc.wantErr {
				assert.ErrorIs(t, err, entities.ErrInvalidStatus)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseInvoiceStatus(t *testing.T) {
	testCases := []struct {
		input   string
		want    entities.InvoiceStatus
		wantErr bool
	}{
		{input: "issued", want: entities.InvoiceIssued},
		{input: "KESILDI", want: entities.InvoiceIssued},
		{input: "Fatura Kesildi", want: entities.InvoiceIssued},
		{input: "Fatura İstemiyor", want: entities.InvoiceCustomerDeclined},
		{input: "ISTEMIYOR", want: entities.InvoiceCustomerDeclined},
		{input: "Fatura Kesilecek", want: entities.InvoiceNotRequired},
		{input: "GEREK_YOK", want: entities.InvoiceNotRequired},
		{input: "lost", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := entities.ParseInvoiceStatus(tc.input)
			if tc.wantErr {
				assert.ErrorIs(t, err, entities.ErrInvalidStatus)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestStatusValid(t *testing.T) {
	assert.True(t, entities.StatusDelivered.Valid())
	assert.False(t, entities.OrderStatus("HAZIRLANIYOR").Valid())
	assert.True(t, entities.PaymentCollectOnDelivery.Valid())
	assert.False(t, entities.PaymentStatus("").Valid())
	assert.True(t, entities.InvoiceNotRequired.Valid())
	assert.False(t, entities.InvoiceStatus("to-be-issued").Valid())
}

func TestLegacyOrder_Normalize(t *testing.T) {
	t.Run("translates labels", func(t *testing.T) {
		l := entities.LegacyOrder{
			Status:        "Teslim Edildi",
			PaymentStatus: "Tahsil Edilmedi",
			InvoiceStatus: "Fatura Kesildi",
		}
		status, payment, invoice, err := l.Normalize()
		require.NoError(t, err)
		assert.Equal(t, entities.StatusDelivered, status)
		assert.Equal(t, entities.PaymentNotCollected, payment)
		assert.Equal(t, entities.InvoiceIssued, invoice)
	})

	t.Run("empty values use defaults", func(t *testing.T) {
		status, payment, invoice, err := entities.LegacyOrder{}.Normalize()
		require.NoError(t, err)
		assert.Equal(t, entities.DefaultOrderStatus, status)
		assert.Equal(t, entities.DefaultPaymentStatus, payment)
		assert.Equal(t, entities.DefaultInvoiceStatus, invoice)
	})

	t.Run("unknown label", func(t *testing.T) {
		_, _, _, err := entities.LegacyOrder{PaymentStatus: "Yarım"}.Normalize()
		assert.ErrorIs(t, err, entities.ErrInvalidStatus)
	})
}
