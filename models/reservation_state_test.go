package models

import (
	"testing"

	"stayhub/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuestActorOnlyCancels(t *testing.T) {
	actor := &GuestActor{}

	r := Reservation{Status: constants.ReservationStatusPending}
	require.NoError(t, actor.SetStatus(&r, constants.ReservationStatusCancelled))
	assert.Equal(t, constants.ReservationStatusCancelled, r.Status)

	for _, status := range []int{
		constants.ReservationStatusPending,
		constants.ReservationStatusAccepted,
		constants.ReservationStatusDeclined,
	} {
		r := Reservation{Status: constants.ReservationStatusPending}
		assert.Error(t, actor.SetStatus(&r, status))
		assert.Equal(t, constants.ReservationStatusPending, r.Status)
	}
}

func TestHostActorAcceptsOrDeclines(t *testing.T) {
	actor := &HostActor{}

	r := Reservation{Status: constants.ReservationStatusPending}
	require.NoError(t, actor.SetStatus(&r, constants.ReservationStatusAccepted))
	assert.Equal(t, constants.ReservationStatusAccepted, r.Status)

	r = Reservation{Status: constants.ReservationStatusPending}
	require.NoError(t, actor.SetStatus(&r, constants.ReservationStatusDeclined))

	r = Reservation{Status: constants.ReservationStatusPending}
	assert.Error(t, actor.SetStatus(&r, constants.ReservationStatusCancelled))
}

func TestAdminActorAnyValidStatus(t *testing.T) {
	actor := &AdminActor{}

	for _, status := range []int{
		constants.ReservationStatusPending,
		constants.ReservationStatusAccepted,
		constants.ReservationStatusDeclined,
		constants.ReservationStatusCancelled,
	} {
		r := Reservation{}
		require.NoError(t, actor.SetStatus(&r, status))
		assert.Equal(t, status, r.Status)
	}

	r := Reservation{}
	assert.Error(t, actor.SetStatus(&r, 99))
}

func TestGetReservationActor(t *testing.T) {
	actor, err := GetReservationActor(constants.RoleGuest)
	require.NoError(t, err)
	assert.IsType(t, &GuestActor{}, actor)

	actor, err = GetReservationActor(constants.RoleHost)
	require.NoError(t, err)
	assert.IsType(t, &HostActor{}, actor)

	actor, err = GetReservationActor(constants.RoleAdmin)
	require.NoError(t, err)
	assert.IsType(t, &AdminActor{}, actor)

	_, err = GetReservationActor(42)
	assert.Error(t, err)
}
