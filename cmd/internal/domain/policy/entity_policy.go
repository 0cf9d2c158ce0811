package policy

import (
	"compliancedesk/cmd/internal/domain/entity"
	"compliancedesk/cmd/internal/utils/apierror"
)

// EntityPolicy guards company/LLP registry mutations. Only professionals
// (and admins, who use the operations surface) create or edit entities;
// directors get read access through their associations.
type EntityPolicy struct{}

func NewEntityPolicy() *EntityPolicy {
	return &EntityPolicy{}
}

func (p *EntityPolicy) CanManage(actor *entity.UserProfile) apierror.ErrorResponse {
	if actor.Role != entity.RoleProfessionals && actor.Role != entity.RoleAdmin {
		return apierror.ForbiddenRoleError
	}
	return nil
}

func (p *EntityPolicy) CanAdministerTemplates(actor *entity.UserProfile) apierror.ErrorResponse {
	if actor.Role != entity.RoleAdmin {
		return apierror.ForbiddenRoleError
	}
	return nil
}
