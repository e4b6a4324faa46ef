// Package storagetest is an in-memory Stores/Transactor used by handler
// tests. Transactions serialize on a mutex and roll back from a snapshot,
// which makes the claim race deterministic without a database.
package storagetest

import (
	"fmt"
	"sync"
	"time"

	hirestore "carelink-backend/lib/hire/store"
	paymentstore "carelink-backend/lib/payment/store"
	shiftstore "carelink-backend/lib/shift/store"
	"carelink-backend/lib/storage"
	timesheetstore "carelink-backend/lib/timesheet/store"
	"carelink-backend/models"
	shiftapimodels "carelink-backend/models/api/shift"
	dbmodels "carelink-backend/models/db"
)

type MemStore struct {
	mu            sync.Mutex
	seq           int
	HomeRows      map[string]dbmodels.Home
	ShiftRows     map[string]dbmodels.Shift
	HireRows      map[string]dbmodels.Hire
	TimesheetRows map[string]dbmodels.Timesheet
	PaymentRows   map[string]dbmodels.Payment
}

func New() *MemStore {
	return &MemStore{
		HomeRows:      map[string]dbmodels.Home{},
		ShiftRows:     map[string]dbmodels.Shift{},
		HireRows:      map[string]dbmodels.Hire{},
		TimesheetRows: map[string]dbmodels.Timesheet{},
		PaymentRows:   map[string]dbmodels.Payment{},
	}
}

func (m *MemStore) NextID() string {
	m.seq++
	return fmt.Sprintf("id-%04d", m.seq)
}

func (m *MemStore) AddHome(rec dbmodels.Home) dbmodels.Home {
	if rec.ID == "" {
		rec.ID = m.NextID()
	}
	m.HomeRows[rec.ID] = rec
	return rec
}

func (m *MemStore) AddShift(rec dbmodels.Shift) dbmodels.Shift {
	if rec.ID == "" {
		rec.ID = m.NextID()
	}
	m.ShiftRows[rec.ID] = rec
	return rec
}

func (m *MemStore) AddTimesheet(rec dbmodels.Timesheet) dbmodels.Timesheet {
	if rec.ID == "" {
		rec.ID = m.NextID()
	}
	m.TimesheetRows[rec.ID] = rec
	return rec
}

// storage.Transactor

func (m *MemStore) InTransaction(fn func(s storage.Stores) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	snapShifts := copyMap(m.ShiftRows)
	snapHires := copyMap(m.HireRows)
	snapTimesheets := copyMap(m.TimesheetRows)
	snapPayments := copyMap(m.PaymentRows)
	if err := fn(m); err != nil {
		m.ShiftRows = snapShifts
		m.HireRows = snapHires
		m.TimesheetRows = snapTimesheets
		m.PaymentRows = snapPayments
		return err
	}
	return nil
}

func copyMap[T any](src map[string]T) map[string]T {
	dst := make(map[string]T, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

// storage.Stores

func (m *MemStore) Shifts() shiftstore.Provider         { return shiftView{m} }
func (m *MemStore) Hires() hirestore.Provider           { return hireView{m} }
func (m *MemStore) Timesheets() timesheetstore.Provider { return timesheetView{m} }
func (m *MemStore) Payments() paymentstore.Provider     { return paymentView{m} }

type shiftView struct{ m *MemStore }

func (v shiftView) GetByID(id string) (*dbmodels.Shift, error) {
	rec, exist := v.m.ShiftRows[id]
	if !exist {
		return nil, nil
	}
	rec.Home = v.m.HomeRows[rec.HomeID]
	return &rec, nil
}

func (v shiftView) openShifts(from time.Time, filter shiftapimodels.ShiftFilter) []dbmodels.Shift {
	list := []dbmodels.Shift{}
	for _, rec := range v.m.ShiftRows {
		if rec.Status != models.ShiftStatusOpen || rec.StartTime.Before(from) {
			continue
		}
		if filter.HomeID != "" && rec.HomeID != filter.HomeID {
			continue
		}
		list = append(list, rec)
	}
	return list
}

func (v shiftView) ListOpen(from time.Time, filter shiftapimodels.ShiftFilter) ([]dbmodels.Shift, error) {
	return v.openShifts(from, filter), nil
}

func (v shiftView) ListOpenCount(from time.Time, filter shiftapimodels.ShiftFilter) (int64, error) {
	return int64(len(v.openShifts(from, filter))), nil
}

func (v shiftView) ListByCaregiver(caregiverID string, page, limit int) ([]dbmodels.Shift, error) {
	list := []dbmodels.Shift{}
	for _, rec := range v.m.ShiftRows {
		if rec.IsAssignedTo(caregiverID) {
			list = append(list, rec)
		}
	}
	return list, nil
}

func (v shiftView) ListByCaregiverCount(caregiverID string) (int64, error) {
	list, _ := v.ListByCaregiver(caregiverID, 1, 100)
	return int64(len(list)), nil
}

func (v shiftView) ClaimOpen(id, caregiverID string) (bool, error) {
	rec, exist := v.m.ShiftRows[id]
	if !exist || rec.Status != models.ShiftStatusOpen {
		return false, nil
	}
	rec.Status = models.ShiftStatusAssigned
	rec.CaregiverID = &caregiverID
	v.m.ShiftRows[id] = rec
	return true, nil
}

func (v shiftView) UpdateStatusIf(id string, current, next models.ShiftStatus) (bool, error) {
	rec, exist := v.m.ShiftRows[id]
	if !exist || rec.Status != current {
		return false, nil
	}
	rec.Status = next
	v.m.ShiftRows[id] = rec
	return true, nil
}

type hireView struct{ m *MemStore }

func (v hireView) Create(rec dbmodels.Hire) (string, error) {
	rec.ID = v.m.NextID()
	v.m.HireRows[rec.ID] = rec
	return rec.ID, nil
}

func (v hireView) GetByShiftID(shiftID string) (*dbmodels.Hire, error) {
	for _, rec := range v.m.HireRows {
		if rec.ShiftID == shiftID {
			rec := rec
			return &rec, nil
		}
	}
	return nil, nil
}

type timesheetView struct{ m *MemStore }

func (v timesheetView) Create(rec dbmodels.Timesheet) (string, error) {
	rec.ID = v.m.NextID()
	v.m.TimesheetRows[rec.ID] = rec
	return rec.ID, nil
}

func (v timesheetView) GetByID(id string) (*dbmodels.Timesheet, error) {
	rec, exist := v.m.TimesheetRows[id]
	if !exist {
		return nil, nil
	}
	shift, _ := shiftView{v.m}.GetByID(rec.ShiftID)
	if shift != nil {
		rec.Shift = *shift
	}
	return &rec, nil
}

func (v timesheetView) ExistsForShift(shiftID string) (bool, error) {
	for _, rec := range v.m.TimesheetRows {
		if rec.ShiftID == shiftID {
			return true, nil
		}
	}
	return false, nil
}

func (v timesheetView) UpdateIf(id string, current models.TimesheetStatus, updMap map[string]interface{}) (bool, error) {
	rec, exist := v.m.TimesheetRows[id]
	if !exist || rec.Status != current {
		return false, nil
	}
	for column, value := range updMap {
		switch column {
		case "status":
			rec.Status = value.(models.TimesheetStatus)
		case "end_time":
			t := value.(time.Time)
			rec.EndTime = &t
		case "break_minutes":
			rec.BreakMinutes = value.(int)
		case "notes":
			rec.Notes = value.(string)
		case "approved_by_id":
			s := value.(string)
			rec.ApprovedByID = &s
		case "approved_at":
			t := value.(time.Time)
			rec.ApprovedAt = &t
		}
	}
	v.m.TimesheetRows[id] = rec
	return true, nil
}

type paymentView struct{ m *MemStore }

func (v paymentView) Create(rec dbmodels.Payment) (string, error) {
	rec.ID = v.m.NextID()
	v.m.PaymentRows[rec.ID] = rec
	return rec.ID, nil
}
