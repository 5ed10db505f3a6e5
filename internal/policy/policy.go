// Package policy decides, per role and per action, whether an
// operation is permitted. It is pure: no store access, no logging.
package policy

import (
	"errors"

	"verihire/candidate-api/internal/model"
)

var (
	// ErrUnauthenticated means there is no session at all
	ErrUnauthenticated = errors.New("no authenticated session")
	// ErrForbidden means the session exists but the role or ownership
	// does not match
	ErrForbidden = errors.New("forbidden")
)

type Action string

const (
	ActionCandidateProfileRead   Action = "candidate.profile.read"
	ActionCandidateProfileWrite  Action = "candidate.profile.write"
	ActionCandidateSubmit        Action = "candidate.profile.submit"
	ActionCandidateDocumentRead  Action = "candidate.document.read"
	ActionCandidateDocumentWrite Action = "candidate.document.write"

	ActionAdminCandidateList Action = "admin.candidate.list"
	ActionAdminCandidateRead Action = "admin.candidate.read"
	ActionAdminReview        Action = "admin.candidate.review"

	ActionEmployerCandidateList Action = "employer.candidate.list"
	ActionEmployerCandidateRead Action = "employer.candidate.read"
)

// Identity is the caller-supplied session context. The zero value
// means no session.
type Identity struct {
	AccountID string
	Role      model.Role
}

// requiredRole maps every recognized action to the single role that
// may perform it. Admin actions carry global scope, candidate
// mutations are additionally ownership-checked in Authorize.
func requiredRole(action Action) (model.Role, bool) {
	switch action {
	case ActionCandidateProfileRead,
		ActionCandidateProfileWrite,
		ActionCandidateSubmit,
		ActionCandidateDocumentRead,
		ActionCandidateDocumentWrite:
		return model.RoleCandidate, true
	case ActionAdminCandidateList,
		ActionAdminCandidateRead,
		ActionAdminReview:
		return model.RoleAdmin, true
	case ActionEmployerCandidateList,
		ActionEmployerCandidateRead:
		return model.RoleEmployer, true
	default:
		return "", false
	}
}

// Authorize gates an action for an actor. resourceOwner is the
// account ID owning the targeted resource, or "" when the action has
// no ownership constraint. Unknown actions and unknown roles always
// deny.
func Authorize(actor Identity, action Action, resourceOwner string) error {
	if actor.AccountID == "" || actor.Role == "" {
		return ErrUnauthenticated
	}

	if !actor.Role.Valid() {
		return ErrForbidden
	}

	need, known := requiredRole(action)
	if !known {
		return ErrForbidden
	}

	if actor.Role != need {
		return ErrForbidden
	}

	// Admins act globally, everyone else only on what they own
	if resourceOwner != "" && actor.Role != model.RoleAdmin && actor.AccountID != resourceOwner {
		return ErrForbidden
	}

	return nil
}
