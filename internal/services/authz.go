package services

import (
	"github.com/adityakx/sangam/backend/internal/apperrors"
	"github.com/adityakx/sangam/backend/internal/models"
)

// Action names a category of operation for the authorization predicate.
type Action int

const (
	// ActAdmin requires the actor to be an active admin.
	ActAdmin Action = iota
	// ActSelf requires the actor to own the named resource.
	ActSelf
	// ActParticipant requires the actor to be one of the two named users.
	ActParticipant
	// ActInitiate requires the actor's own state to permit outbound actions
	// (sending requests or messages, saving preferences).
	ActInitiate
)

// Resource identifies what an action targets. Only the fields the action
// needs are consulted.
type Resource struct {
	OwnerID      uint
	Participants [2]uint
}

func Owned(ownerID uint) Resource { return Resource{OwnerID: ownerID} }

func Between(a, b uint) Resource { return Resource{Participants: [2]uint{a, b}} }

// Authorize is the single authorization predicate combining caller identity
// with ownership, role, and profile-state checks. Every mutating operation
// runs through it before touching storage.
func Authorize(actor *models.User, action Action, res Resource) error {
	if actor == nil {
		return apperrors.Unauthenticated("authentication required")
	}

	switch action {
	case ActAdmin:
		if actor.Role != models.RoleAdmin || !actor.IsActive {
			return apperrors.Forbidden("access denied: admin role required")
		}
	case ActSelf:
		if actor.ID != res.OwnerID {
			return apperrors.Forbidden("you can only act on your own account")
		}
	case ActParticipant:
		if actor.ID != res.Participants[0] && actor.ID != res.Participants[1] {
			return apperrors.Forbidden("you are not a participant of this conversation")
		}
	case ActInitiate:
		if !actor.IsActive {
			return apperrors.Invalid("your account must be active to perform this action")
		}
		if !actor.ProfileApproved {
			return apperrors.Invalid("your profile must be approved by admin before you can perform this action")
		}
	}
	return nil
}
