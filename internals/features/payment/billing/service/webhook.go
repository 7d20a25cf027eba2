// file: internals/features/payment/billing/service/webhook.go
package service

import (
	"fmt"
	"log"
	"time"

	"github.com/bytedance/sonic"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	model "skytopia_backend/internals/features/payment/billing/model"
)

// HandlePaymentStatusWebhook dipanggil saat menerima notifikasi dari Midtrans.
// order_id = payment_id (lihat GenerateSnapToken).
func HandlePaymentStatusWebhook(db *gorm.DB, body map[string]interface{}) error {
	orderID, ok1 := body["order_id"].(string)
	status, ok2 := body["transaction_status"].(string)

	if !ok1 || !ok2 {
		log.Println("[ERROR] Payload webhook tidak lengkap:", body)
		return fmt.Errorf("invalid payload")
	}

	log.Println("📄 Order ID:", orderID)
	log.Println("📌 Transaction Status:", status)

	var payment model.PaymentModel
	if err := db.Where("payment_id = ?", orderID).First(&payment).Error; err != nil {
		log.Println("[ERROR] Tagihan tidak ditemukan:", err)
		return fmt.Errorf("payment with order_id %s not found", orderID)
	}

	// simpan payload terakhir untuk audit
	if raw, err := sonic.Marshal(body); err == nil {
		payment.PaymentGatewayMeta = datatypes.JSON(raw)
	}

	switch status {
	case "capture", "settlement":
		now := time.Now()
		payment.PaymentStatus = model.PaymentStatusPaid
		payment.PaymentPaidAt = &now
	case "expire", "cancel", "deny":
		// status tagihan tidak diubah: sweeper/admin yang menentukan Overdue/Rejected
		log.Println("[INFO] Transaksi gateway tidak berhasil:", status)
	default:
		log.Println("[INFO] Status tidak diproses:", status)
	}

	if err := db.Save(&payment).Error; err != nil {
		log.Println("[ERROR] Gagal menyimpan status tagihan:", err)
		return err
	}

	return nil
}
