package domain

import "errors"

var (
	ErrGroundNotFound      = errors.New("ground not found")
	ErrPlayerNotFound      = errors.New("player not found")
	ErrBookingNotFound     = errors.New("booking not found")
	ErrPaymentNotFound     = errors.New("payment not found")
	ErrRequestNotFound     = errors.New("join request not found")
	ErrReservationNotFound = errors.New("reservation not found")
)

var (
	ErrSlotTaken          = errors.New("slot is already taken")
	ErrInvalidWindow      = errors.New("requested time is outside ground availability")
	ErrReservationExpired = errors.New("reservation has expired")
	ErrPaymentExists      = errors.New("reservation already has an active payment")
	ErrNotSucceeded       = errors.New("payment is not in succeeded status")
)

var (
	ErrBookingNotTeamType = errors.New("booking is not a team booking")
	ErrAlreadyMember      = errors.New("player is already on the roster")
	ErrDuplicateRequest   = errors.New("player already has a pending join request")
	ErrCapacityExceeded   = errors.New("team roster is at capacity")
	ErrRequestNotPending  = errors.New("join request is not in pending status")
)

var (
	ErrNotParticipant      = errors.New("player is not a participant of this booking")
	ErrDuplicateConnection = errors.New("players are already connected")
	ErrPhoneTaken          = errors.New("phone number is already taken")
)

var (
	ErrValidation = errors.New("validation error")
)
