// Package storage is the transaction boundary for multi-entity writes.
// A handler asks the Transactor to run a closure; every store the closure
// touches through Stores is bound to the same database transaction, so the
// whole mutation commits or rolls back as one unit.
package storage

import (
	"gorm.io/gorm"

	hirestore "carelink-backend/lib/hire/store"
	paymentstore "carelink-backend/lib/payment/store"
	shiftstore "carelink-backend/lib/shift/store"
	timesheetstore "carelink-backend/lib/timesheet/store"
)

// Stores is the transaction-scoped view of the workflow stores.
type Stores interface {
	Shifts() shiftstore.Provider
	Hires() hirestore.Provider
	Timesheets() timesheetstore.Provider
	Payments() paymentstore.Provider
}

// Transactor runs fn inside one all-or-nothing transaction. An error from
// fn rolls everything back.
type Transactor interface {
	InTransaction(fn func(s Stores) error) error
}

func NewTransactor(DB *gorm.DB) Transactor {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) InTransaction(fn func(s Stores) error) error {
	return i.db.Transaction(func(tx *gorm.DB) error {
		return fn(gormStores{tx: tx})
	})
}

type gormStores struct {
	tx *gorm.DB
}

func (s gormStores) Shifts() shiftstore.Provider {
	return shiftstore.NewInstance(s.tx)
}

func (s gormStores) Hires() hirestore.Provider {
	return hirestore.NewInstance(s.tx)
}

func (s gormStores) Timesheets() timesheetstore.Provider {
	return timesheetstore.NewInstance(s.tx)
}

func (s gormStores) Payments() paymentstore.Provider {
	return paymentstore.NewInstance(s.tx)
}
