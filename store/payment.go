package store

import (
	"errors"

	"github.com/TrinhDucTiep/Knowledge-Sharing/models"

	"gorm.io/gorm"
)

var ErrInsufficientFunds = errors.New("insufficient funds")

// PaymentCapability is the opaque "charge account" collaborator of the paid
// registration flow. The production implementation debits the internal wallet
// balance; tests swap in stubs to force declines.
type PaymentCapability interface {
	Charge(email string, amount uint) error
}

// BalanceCharger charges against Account.Balance inside a transaction so a
// concurrent charge cannot overdraw.
type BalanceCharger struct {
	DB *gorm.DB
}

func (b *BalanceCharger) Charge(email string, amount uint) error {
	return b.DB.Transaction(func(tx *gorm.DB) error {
		var account models.Account
		if err := tx.Where("email = ? AND is_deleted = false", email).First(&account).Error; err != nil {
			return err
		}
		if account.Balance < amount {
			return ErrInsufficientFunds
		}
		account.Balance -= amount
		return tx.Save(&account).Error
	})
}
