package service

import (
	"context"
	"strings"

	"compliancedesk/cmd/internal/contract"
	"compliancedesk/cmd/internal/domain/entity"
	cognitoclient "compliancedesk/cmd/internal/infrastructure/aws/cognito"
	"compliancedesk/cmd/internal/utils"
	"compliancedesk/cmd/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/gommon/log"
)

// PlaceholderUserIDPrefix marks profiles created by a professional before
// the director signed up. The prefix is swapped for the Cognito sub on
// signup.
const PlaceholderUserIDPrefix = "pending:"

type DefaultAuthService struct {
	ProfileRepo ProfileRepository
	Profiles    *DefaultProfileService
	Cognito     cognitoclient.CognitoInterface
	Validate    *validator.Validate
}

func NewAuthService(profileRepo ProfileRepository, profiles *DefaultProfileService, cogClient cognitoclient.CognitoInterface, validate *validator.Validate) *DefaultAuthService {
	return &DefaultAuthService{
		ProfileRepo: profileRepo,
		Profiles:    profiles,
		Cognito:     cogClient,
		Validate:    validate,
	}
}

// Signup registers the account with Cognito and creates (or claims) the
// application profile with the requested role.
func (a *DefaultAuthService) Signup(ctx context.Context, req *contract.SignupRequest) (*contract.ProfileResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := a.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	email := strings.ToLower(req.Email)
	sub, err := a.Cognito.SignUp(ctx, &cognitoclient.User{Email: email, Password: req.Password})
	if err != nil {
		log.Errorf("cognito signup failed: %v", err)
		return nil, utils.MapCognitoError(err)
	}

	profile, err := a.ProfileRepo.FindByEmail(email)
	if err != nil {
		log.Errorf("failed to fetch profile: %v", err)
		return nil, apierror.InternalServerError
	}

	now := utils.NowUTC()
	switch {
	case profile == nil:
		profile = &entity.UserProfile{
			ID:        uuid.NewString(),
			UserID:    sub,
			Email:     email,
			Role:      entity.Role(req.Role),
			DSCStatus: entity.DSCStatusNotAvailable,
			CreatedAt: now,
			UpdatedAt: now,
		}
		a.Profiles.claimPendingDIN(profile)
	case strings.HasPrefix(profile.UserID, PlaceholderUserIDPrefix):
		profile.UserID = sub
		profile.UpdatedAt = now
		a.Profiles.claimPendingDIN(profile)
	default:
		// Account re-registered with an email the app already knows.
		return a.Profiles.toResponse(profile), nil
	}

	if err := a.ProfileRepo.Save(profile); err != nil {
		log.Errorf("failed to save profile: %v", err)
		return nil, apierror.InternalServerError
	}
	return a.Profiles.toResponse(profile), nil
}

func (a *DefaultAuthService) Login(ctx context.Context, req *contract.UserLoginRequest) (*contract.UserLoginResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := a.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	auth, err := a.Cognito.SignIn(ctx, &cognitoclient.UserLogin{
		Email:    strings.ToLower(req.Email),
		Password: req.Password,
	})
	if err != nil {
		return nil, utils.MapCognitoError(err)
	}

	return &contract.UserLoginResponse{
		AccessToken: auth.AccessToken,
		IDToken:     auth.IDToken,
	}, nil
}

func (a *DefaultAuthService) Logout(ctx context.Context, accessToken string) apierror.ErrorResponse {
	if accessToken == "" {
		return apierror.UnauthorizedError
	}

	if err := a.Cognito.GlobalSignOut(ctx, accessToken); err != nil {
		return utils.MapCognitoError(err)
	}
	return nil
}

func (a *DefaultAuthService) ConfirmSignup(ctx context.Context, req *contract.ConfirmSignupRequest) apierror.ErrorResponse {
	utils.Sanitize(req)
	if valerr := a.Validate.Struct(req); valerr != nil {
		return apierror.FromValidationError(valerr)
	}

	err := a.Cognito.ConfirmAccount(ctx, &cognitoclient.UserConfirmation{
		Email: strings.ToLower(req.Email),
		Code:  req.Code,
	})
	if err != nil {
		return utils.MapCognitoError(err)
	}
	return nil
}

func (a *DefaultAuthService) ResendConfirmation(ctx context.Context, req *contract.ResendConfirmRequest) apierror.ErrorResponse {
	utils.Sanitize(req)
	if valerr := a.Validate.Struct(req); valerr != nil {
		return apierror.FromValidationError(valerr)
	}

	if err := a.Cognito.ResendConfirmation(ctx, strings.ToLower(req.Email)); err != nil {
		return utils.MapCognitoError(err)
	}
	return nil
}
