package policy

import (
	"compliancedesk/cmd/internal/domain/entity"
	"compliancedesk/cmd/internal/utils/apierror"
)

// RequestPolicy encapsulates who may touch a service request. Directors
// raise requests; professionals process them.
// It returns apierror.ErrorResponse directly for seamless integration with handlers.
type RequestPolicy struct{}

func NewRequestPolicy() *RequestPolicy {
	return &RequestPolicy{}
}

func (p *RequestPolicy) CanCreate(actor *entity.UserProfile) apierror.ErrorResponse {
	if actor.Role != entity.RoleDirectors {
		return apierror.ForbiddenRoleError
	}
	return nil
}

func (p *RequestPolicy) CanProcess(actor *entity.UserProfile) apierror.ErrorResponse {
	if actor.Role != entity.RoleProfessionals {
		return apierror.ForbiddenRoleError
	}
	return nil
}

func (p *RequestPolicy) CanDelete(actor *entity.UserProfile) apierror.ErrorResponse {
	if actor.Role != entity.RoleProfessionals {
		return apierror.ForbiddenRoleError
	}
	return nil
}

// CanSee limits a director to their own requests; professionals see the
// requests of entities they manage (scoping handled by the query itself).
func (p *RequestPolicy) CanSee(req *entity.ServiceRequest, actor *entity.UserProfile) apierror.ErrorResponse {
	if req == nil {
		return apierror.NotFoundError
	}
	if actor.Role == entity.RoleDirectors && req.DirectorID != actor.UserID {
		return apierror.NotFoundError // ^^
	}
	return nil
}
