// Package policy decides whether a resolved identity may perform an action on
// a resource. It is pure: no store access, no side effects.
package policy

import (
	"github.com/dmitrijs2005/blog/internal/common"
	"github.com/dmitrijs2005/blog/internal/server/models"
)

type Resource int

const (
	ResourceCredential Resource = iota
	ResourceProfile
	ResourcePost
)

type Action int

const (
	ActionCreate Action = iota
	ActionRead
	ActionList
	ActionUpdate
	ActionDelete
	ActionUploadCover
	ActionReadCover
)

// Request names what the caller wants to do. TargetID is the id in the path,
// empty for create and list.
type Request struct {
	Resource Resource
	Action   Action
	TargetID string
}

// Authorize returns nil when the request is allowed, common.ErrorUnauthorized
// or common.ErrorForbidden otherwise.
//
// Post mutations only require a credential here: ownership is enforced by the
// store lookup on {id, author_id}, which reports a foreign post as not found.
func Authorize(id models.Identity, r Request) error {
	switch r.Resource {
	case ResourceCredential:
		return credential(id, r)
	case ResourceProfile:
		return profile(id, r)
	case ResourcePost:
		return post(id, r)
	}
	return common.ErrorUnauthorized
}

func credential(id models.Identity, r Request) error {
	switch r.Action {
	case ActionCreate:
		return nil
	case ActionList:
		if id.IsDeveloper() {
			return nil
		}
	case ActionRead, ActionUpdate, ActionDelete:
		if id.Auth != nil && id.Auth.ID == r.TargetID && id.IsDeveloper() {
			return nil
		}
	}
	return common.ErrorUnauthorized
}

func profile(id models.Identity, r Request) error {
	switch r.Action {
	case ActionCreate:
		if id.Auth == nil {
			return common.ErrorUnauthorized
		}
		if id.User != nil {
			return common.ErrorForbidden
		}
		return nil
	case ActionList:
		if id.IsDeveloper() {
			return nil
		}
	case ActionRead, ActionUpdate, ActionDelete:
		if id.User != nil && id.User.ID == r.TargetID {
			return nil
		}
	}
	return common.ErrorUnauthorized
}

func post(id models.Identity, r Request) error {
	switch r.Action {
	case ActionRead, ActionList, ActionReadCover:
		return nil
	case ActionCreate, ActionUpdate, ActionDelete, ActionUploadCover:
		if id.Auth != nil {
			return nil
		}
	}
	return common.ErrorUnauthorized
}
