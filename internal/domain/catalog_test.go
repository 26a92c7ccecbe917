package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCatalog(t *testing.T) {
	types := []AppointmentType{
		{ID: 2, DisplayName: "Acupuncture", InternalName: "acupuncture", DurationMinutes: 50},
		{ID: 3, DisplayName: "Follow-up", InternalName: "followup", DurationMinutes: 30, DualBookable: true},
	}

	catalog, err := NewCatalog(types)
	require.NoError(t, err)
	assert.Equal(t, 2, catalog.Len())

	byID, ok := catalog.ByID(2)
	require.True(t, ok)
	assert.Equal(t, "acupuncture", byID.InternalName)

	byName, ok := catalog.ByInternalName("followup")
	require.True(t, ok)
	assert.Equal(t, AppointmentTypeID(3), byName.ID)
	assert.True(t, byName.DualBookable)

	_, ok = catalog.ByID(42)
	assert.False(t, ok)
	_, ok = catalog.ByInternalName("mystery")
	assert.False(t, ok)
}

func TestNewCatalog_DuplicateID(t *testing.T) {
	_, err := NewCatalog([]AppointmentType{
		{ID: 2, InternalName: "acupuncture"},
		{ID: 2, InternalName: "massage"},
	})
	assert.Error(t, err)
}

func TestNewCatalog_DuplicateInternalName(t *testing.T) {
	_, err := NewCatalog([]AppointmentType{
		{ID: 2, InternalName: "acupuncture"},
		{ID: 3, InternalName: "acupuncture"},
	})
	assert.Error(t, err)
}

func TestAppointmentHelpers(t *testing.T) {
	assert.True(t, Appointment{Status: StatusConfirmed}.IsConfirmedOrCheckedIn())
	assert.True(t, Appointment{Status: StatusCheckedIn}.IsConfirmedOrCheckedIn())
	assert.False(t, Appointment{Status: StatusPending}.IsConfirmedOrCheckedIn())
	assert.False(t, Appointment{Status: StatusCancelled}.IsConfirmedOrCheckedIn())
}
