// file: internals/features/payment/billing/service/midtrans.go
package service

import (
	"fmt"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	model "skytopia_backend/internals/features/payment/billing/model"
)

var SnapClient snap.Client

// InitMidtrans menginisialisasi Midtrans Snap Client dengan server key.
func InitMidtrans(serverKey string) {
	SnapClient.New(serverKey, midtrans.Sandbox)
}

// GenerateSnapToken membuat token Snap Midtrans untuk satu tagihan.
// Order ID = payment_id supaya webhook bisa mencocokkan balik.
func GenerateSnapToken(p model.PaymentModel, parentName string) (string, error) {
	itemName := string(p.PaymentCategory)
	if p.PaymentPeriod != nil {
		itemName = fmt.Sprintf("%s %s", p.PaymentCategory, *p.PaymentPeriod)
	}

	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  p.PaymentID.String(),
			GrossAmt: int64(p.PaymentAmountIDR),
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: parentName,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:    p.PaymentID.String(),
				Name:  itemName,
				Price: int64(p.PaymentAmountIDR),
				Qty:   1,
			},
		},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", err
	}

	return resp.Token, nil
}
