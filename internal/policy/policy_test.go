package policy

import (
	"testing"

	"verihire/candidate-api/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allActions = []Action{
	ActionCandidateProfileRead,
	ActionCandidateProfileWrite,
	ActionCandidateSubmit,
	ActionCandidateDocumentRead,
	ActionCandidateDocumentWrite,
	ActionAdminCandidateList,
	ActionAdminCandidateRead,
	ActionAdminReview,
	ActionEmployerCandidateList,
	ActionEmployerCandidateRead,
}

func TestAuthorizeNoSession(t *testing.T) {
	for _, action := range allActions {
		err := Authorize(Identity{}, action, "")
		assert.ErrorIs(t, err, ErrUnauthenticated, string(action))
	}
}

func TestAuthorizeRoleMatrix(t *testing.T) {
	tests := []struct {
		role    model.Role
		allowed map[Action]bool
	}{
		{
			role: model.RoleCandidate,
			allowed: map[Action]bool{
				ActionCandidateProfileRead:   true,
				ActionCandidateProfileWrite:  true,
				ActionCandidateSubmit:        true,
				ActionCandidateDocumentRead:  true,
				ActionCandidateDocumentWrite: true,
			},
		},
		{
			role: model.RoleAdmin,
			allowed: map[Action]bool{
				ActionAdminCandidateList: true,
				ActionAdminCandidateRead: true,
				ActionAdminReview:        true,
			},
		},
		{
			role: model.RoleEmployer,
			allowed: map[Action]bool{
				ActionEmployerCandidateList: true,
				ActionEmployerCandidateRead: true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			actor := Identity{AccountID: "acc1", Role: tt.role}

			for _, action := range allActions {
				err := Authorize(actor, action, "")
				if tt.allowed[action] {
					assert.NoError(t, err, string(action))
				} else {
					assert.ErrorIs(t, err, ErrForbidden, string(action))
				}
			}
		})
	}
}

func TestAuthorizeOwnership(t *testing.T) {
	owner := Identity{AccountID: "owner", Role: model.RoleCandidate}

	require.NoError(t, Authorize(owner, ActionCandidateProfileWrite, "owner"))

	err := Authorize(owner, ActionCandidateProfileWrite, "someone-else")
	assert.ErrorIs(t, err, ErrForbidden)

	// Admins are not ownership-constrained
	admin := Identity{AccountID: "admin", Role: model.RoleAdmin}
	assert.NoError(t, Authorize(admin, ActionAdminReview, "someone-else"))
}

func TestAuthorizeUnknownRoleAndAction(t *testing.T) {
	err := Authorize(Identity{AccountID: "a", Role: "superuser"}, ActionAdminReview, "")
	assert.ErrorIs(t, err, ErrForbidden)

	err = Authorize(Identity{AccountID: "a", Role: model.RoleAdmin}, Action("admin.nuke"), "")
	assert.ErrorIs(t, err, ErrForbidden)
}
