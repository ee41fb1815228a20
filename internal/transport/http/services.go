package httptransport

import (
	"context"

	accountModels "ims/internal/account/models"
	authModels "ims/internal/auth/models"
	catalogueModels "ims/internal/catalogue/models"
	claimModels "ims/internal/claim/models"
	"ims/internal/identity"
	notificationModels "ims/internal/notification/models"
	policyModels "ims/internal/policy/models"
	policyRequestModels "ims/internal/policyrequest/models"
	"ims/pkg/domain"
	"ims/pkg/paging"
	"ims/pkg/result"
)

// AuthService covers login sessions and user administration.
type AuthService interface {
	Login(ctx context.Context, req authModels.LoginRequest) (*authModels.LoginResult, error)
	Logout(ctx context.Context, p identity.Principal) error
	DeleteAccount(ctx context.Context, p identity.Principal) error
	ListUsers(ctx context.Context) ([]authModels.UserWithRole, error)
}

type AccountService interface {
	RegisterCustomer(ctx context.Context, req accountModels.RegisterCustomerRequest) result.Result[*accountModels.Customer]
	AddCustomer(ctx context.Context, actor identity.Principal, req accountModels.RegisterCustomerRequest) result.Result[*accountModels.Customer]
	AddAgent(ctx context.Context, actor identity.Principal, req accountModels.AddAgentRequest) result.Result[*accountModels.Agent]
	CustomerProfile(ctx context.Context, actor identity.Principal) result.Result[*accountModels.Customer]
	UpdateCustomerProfile(ctx context.Context, actor identity.Principal, upd accountModels.ProfileUpdate) result.Result[*accountModels.Customer]
	AgentProfile(ctx context.Context, actor identity.Principal) result.Result[*accountModels.Agent]
	UpdateAgentProfile(ctx context.Context, actor identity.Principal, upd accountModels.ProfileUpdate) result.Result[*accountModels.Agent]
	GetCustomer(ctx context.Context, actor identity.Principal, id domain.CustomerID) result.Result[*accountModels.Customer]
	GetAgent(ctx context.Context, actor identity.Principal, id domain.AgentID) result.Result[*accountModels.Agent]
	ListCustomers(ctx context.Context, actor identity.Principal, page, size int) result.Result[paging.Page[*accountModels.Customer]]
	ListAgents(ctx context.Context, actor identity.Principal, page, size int) result.Result[paging.Page[*accountModels.Agent]]
}

type CatalogueService interface {
	Create(ctx context.Context, actor identity.Principal, in catalogueModels.AvailablePolicyInput) result.Result[*catalogueModels.AvailablePolicy]
	Update(ctx context.Context, actor identity.Principal, id domain.AvailablePolicyID, in catalogueModels.AvailablePolicyInput) result.Result[*catalogueModels.AvailablePolicy]
	Delete(ctx context.Context, actor identity.Principal, id domain.AvailablePolicyID) result.Result[bool]
	Get(ctx context.Context, id domain.AvailablePolicyID) result.Result[*catalogueModels.AvailablePolicy]
	List(ctx context.Context, page, size int) result.Result[paging.Page[*catalogueModels.AvailablePolicy]]
}

type PolicyService interface {
	ListForCustomer(ctx context.Context, actor identity.Principal) result.Result[[]*policyModels.Policy]
	ListAssigned(ctx context.Context, actor identity.Principal) result.Result[[]*policyModels.Policy]
}

type PolicyRequestService interface {
	Submit(ctx context.Context, actor identity.Principal, customerID domain.CustomerID, availablePolicyID domain.AvailablePolicyID) result.Result[*policyRequestModels.PolicyRequest]
	Approve(ctx context.Context, actor identity.Principal, requestID domain.PolicyRequestID, agentID domain.AgentID) result.Result[*policyModels.Policy]
	Reject(ctx context.Context, actor identity.Principal, requestID domain.PolicyRequestID) result.Result[bool]
	Get(ctx context.Context, actor identity.Principal, id domain.PolicyRequestID) result.Result[*policyRequestModels.PolicyRequest]
	ListForCustomer(ctx context.Context, actor identity.Principal) result.Result[[]*policyRequestModels.PolicyRequest]
	ListAll(ctx context.Context, actor identity.Principal, page, size int, statuses ...domain.Status) result.Result[paging.Page[*policyRequestModels.PolicyRequest]]
}

type ClaimService interface {
	File(ctx context.Context, actor identity.Principal, req claimModels.FileRequest, filedBy domain.Role) result.Result[*claimModels.Claim]
	Adjudicate(ctx context.Context, actor identity.Principal, claimID domain.ClaimID, decision claimModels.Decision) result.Result[bool]
	WasFiledByAgent(ctx context.Context, claimID domain.ClaimID) result.Result[bool]
	ListForCustomer(ctx context.Context, actor identity.Principal) result.Result[[]*claimModels.Claim]
	ListFiledByAgent(ctx context.Context, actor identity.Principal) result.Result[[]*claimModels.Claim]
	ListByCustomerID(ctx context.Context, actor identity.Principal, customerID domain.CustomerID) result.Result[[]*claimModels.Claim]
	ListAll(ctx context.Context, actor identity.Principal, page, size int) result.Result[paging.Page[*claimModels.Claim]]
}

type NotificationService interface {
	ListForCustomer(ctx context.Context, actor identity.Principal) result.Result[[]*notificationModels.Notification]
	ListForAgent(ctx context.Context, actor identity.Principal) result.Result[[]*notificationModels.Notification]
}

// Services bundles what the handlers delegate to. Every field is required.
type Services struct {
	Auth           AuthService
	Accounts       AccountService
	Catalogue      CatalogueService
	Policies       PolicyService
	PolicyRequests PolicyRequestService
	Claims         ClaimService
	Notifications  NotificationService
}
