package service

import (
	"compliancedesk/cmd/internal/domain/sqlite/repository"
	"compliancedesk/cmd/internal/infrastructure/mca"
)

// Compile-time checks that the concrete sqlite repositories satisfy the
// interfaces the services consume. Catches signature drift between the
// two packages before it reaches main.
var (
	_ TaskRepository            = (*repository.DefaultTaskRepository)(nil)
	_ ProfileRepository         = (*repository.DefaultProfileRepository)(nil)
	_ PendingDirectorRepository = (*repository.DefaultPendingDirectorRepository)(nil)
	_ CompanyRepository         = (*repository.DefaultCompanyRepository)(nil)
	_ LLPRepository             = (*repository.DefaultLLPRepository)(nil)
	_ AssociationRepository     = (*repository.DefaultAssociationRepository)(nil)
	_ AssignmentRepository      = (*repository.DefaultAssignmentRepository)(nil)
	_ ServiceRequestRepository  = (*repository.DefaultServiceRequestRepository)(nil)
	_ DocumentRepository        = (*repository.DefaultDocumentRepository)(nil)
	_ NotificationRepository    = (*repository.DefaultNotificationRepository)(nil)
	_ AssetTemplateRepository   = (*repository.DefaultAssetTemplateRepository)(nil)

	_ FormGenerator  = (*DefaultFormService)(nil)
	_ RegistryClient = (*mca.Client)(nil)
)
