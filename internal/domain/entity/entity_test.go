package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAppointmentStatusTransitions(t *testing.T) {
	a := &Appointment{Status: AppointmentStatusScheduled}
	assert.True(t, a.IsScheduled())

	a.Complete()
	assert.True(t, a.IsCompleted())
	assert.False(t, a.IsScheduled())

	b := &Appointment{Status: AppointmentStatusScheduled}
	b.Cancel()
	assert.True(t, b.IsCancelled())
}

func TestAdmissionIsDischarged(t *testing.T) {
	a := &Admission{Status: AdmissionStatusAdmitted}
	assert.False(t, a.IsDischarged())

	a.Status = AdmissionStatusDischarged
	assert.True(t, a.IsDischarged())
}

func TestPharmacyInventoryIsLowStock(t *testing.T) {
	item := &PharmacyInventory{Stock: 10}

	assert.False(t, item.IsLowStock(10), "stock at threshold is not low")
	assert.False(t, item.IsLowStock(9))
	assert.True(t, item.IsLowStock(11), "stock strictly below threshold is low")
	assert.True(t, (&PharmacyInventory{Stock: 0}).IsLowStock(1))
}

func TestOtpIsExpired(t *testing.T) {
	now := time.Now()
	otp := &Otp{ExpiresAt: now.Add(time.Minute)}

	assert.False(t, otp.IsExpired(now))
	assert.True(t, otp.IsExpired(now.Add(time.Minute)), "expires exactly at the deadline")
	assert.True(t, otp.IsExpired(now.Add(2*time.Minute)))
}

func TestRoleMappingsRoundTrip(t *testing.T) {
	for _, name := range []string{RoleAdmin, RoleDoctor, RoleStaff, RolePharmacy, RoleLab, RolePatient} {
		id := RoleIDByName(name)
		assert.NotZero(t, id, "role %s", name)
		assert.Equal(t, name, RoleNameByID(id))
	}

	assert.Zero(t, RoleIDByName("superuser"))
	assert.Empty(t, RoleNameByID(99))
}
