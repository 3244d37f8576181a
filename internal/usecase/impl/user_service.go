package impl

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"strings"

	deliverycontext "mytube/internal/delivery/context"
	"mytube/internal/domain/entity"
	domainerrors "mytube/internal/domain/errors"
	"mytube/internal/domain/repository"
	"mytube/internal/domain/service"
	"mytube/internal/errors"
	"mytube/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	media        service.MediaStorage
	assets       *assetReleaser
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Media        service.MediaStorage
	Publisher    service.EventPublisher
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		media:        params.Media,
		assets:       newAssetReleaser(params.Media, params.Publisher, params.Logger),
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates the account after both the uniqueness check and the media uploads succeed.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.User, error) {
	if err := requireFields(
		field{"username", input.Username},
		field{"email", input.Email},
		field{"fullname", input.Fullname},
		field{"password", input.Password},
	); err != nil {
		return nil, err
	}
	if input.AvatarPath == "" {
		return nil, domainerrors.ErrMediaFileMissing.WithDetails("avatar is required")
	}

	username := strings.ToLower(strings.TrimSpace(input.Username))
	email := strings.TrimSpace(input.Email)

	srv.log(ctx).Info("Starting registration", slog.String("username", username))

	existing, err := srv.userRepo.FindByUsernameOrEmail(ctx, username, email)
	if err == nil && existing != nil {
		return nil, domainerrors.ErrUserAlreadyExists
	}
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check existing user")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	avatar, err := srv.media.Upload(ctx, input.AvatarPath, entity.MediaKindImage)
	if err != nil {
		return nil, uploadError(err, "failed to upload avatar")
	}

	var cover *entity.MediaAsset
	if input.CoverImagePath != "" {
		uploaded, err := srv.media.Upload(ctx, input.CoverImagePath, entity.MediaKindImage)
		if err != nil {
			srv.assets.release(ctx, &avatar.MediaAsset, entity.MediaKindImage, "registration aborted")

			return nil, uploadError(err, "failed to upload cover image")
		}
		cover = &uploaded.MediaAsset
	}

	user := &entity.User{
		Username:     username,
		Email:        email,
		Fullname:     strings.TrimSpace(input.Fullname),
		PasswordHash: hash,
		Avatar:       avatar.MediaAsset,
		CoverImage:   cover,
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		srv.assets.release(ctx, &avatar.MediaAsset, entity.MediaKindImage, "registration aborted")
		srv.assets.release(ctx, cover, entity.MediaKindImage, "registration aborted")

		return nil, translate(err, repository.ErrDuplicateUser, domainerrors.ErrUserAlreadyExists, "failed to create user")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", user.ID))

	return user, nil
}

// Login verifies the password and stores the new refresh token, replacing any previous one.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*entity.AuthResult, error) {
	if strings.TrimSpace(input.Username) == "" && strings.TrimSpace(input.Email) == "" {
		return nil, domainerrors.NewValidationError(domainerrors.FieldError{
			Field:   "username",
			Message: "username or email is required",
		})
	}
	if err := requireFields(field{"password", input.Password}); err != nil {
		return nil, err
	}

	user, err := srv.userRepo.FindByUsernameOrEmail(ctx,
		strings.ToLower(strings.TrimSpace(input.Username)),
		strings.TrimSpace(input.Email),
	)
	if err != nil {
		return nil, translate(err, repository.ErrUserNotFound, domainerrors.ErrInvalidCredentials, "failed to find user")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Password mismatch on login", slog.Any("userID", user.ID))

		return nil, domainerrors.ErrInvalidCredentials
	}

	tokens, err := srv.issueTokens(ctx, srv.userRepo, user)
	if err != nil {
		return nil, err
	}

	return &entity.AuthResult{User: user, TokenPair: *tokens}, nil
}

// Logout clears the stored refresh token so it can no longer be rotated.
func (srv *userService) Logout(ctx context.Context, userID uuid.UUID) error {
	if err := srv.userRepo.SetRefreshToken(ctx, userID, nil); err != nil {
		return translate(err, repository.ErrUserNotFound, domainerrors.ErrUserNotFound, "failed to clear refresh token")
	}

	return nil
}

// RefreshTokens rotates under a row lock so two concurrent refreshes with the same token
// cannot both succeed.
func (srv *userService) RefreshTokens(ctx context.Context, refreshToken string) (*entity.TokenPair, error) {
	if strings.TrimSpace(refreshToken) == "" {
		return nil, domainerrors.ErrUnauthorized.WrapMessage("refresh token is missing")
	}

	claims, err := srv.tokenService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, err.Error())
	}

	var tokens *entity.TokenPair
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		user, err := userRepo.FindByIDForUpdate(ctx, claims.UserID)
		if err != nil {
			return translate(err, repository.ErrUserNotFound, domainerrors.ErrRefreshTokenInvalid, "failed to load token owner")
		}

		if user.RefreshToken == nil || subtle.ConstantTimeCompare([]byte(*user.RefreshToken), []byte(refreshToken)) != 1 {
			srv.log(ctx).Warn("Refresh token does not match the stored token", slog.Any("userID", user.ID))

			return domainerrors.ErrRefreshTokenReused
		}

		tokens, err = srv.issueTokens(ctx, userRepo, user)

		return err
	})
	if err != nil {
		return nil, err
	}

	return tokens, nil
}

func (srv *userService) issueTokens(ctx context.Context, userRepo repository.UserRepository, user *entity.User) (*entity.TokenPair, error) {
	pair, err := srv.tokenService.GenerateTokens(entity.IdentityOf(user))
	if err != nil {
		srv.log(ctx).Error("Failed to generate tokens", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrTokenGenerationFailed, err.Error())
	}

	if err := userRepo.SetRefreshToken(ctx, user.ID, &pair.RefreshToken); err != nil {
		return nil, errors.Wrap(err, "failed to store refresh token")
	}

	return &pair, nil
}

// ChangePassword requires the current password before storing the new hash.
func (srv *userService) ChangePassword(ctx context.Context, userID uuid.UUID, input *usecase.ChangePasswordInput) error {
	if err := requireFields(
		field{"oldPassword", input.OldPassword},
		field{"newPassword", input.NewPassword},
	); err != nil {
		return err
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return translate(err, repository.ErrUserNotFound, domainerrors.ErrUserNotFound, "failed to find user")
	}

	if !srv.hasher.Check(input.OldPassword, user.PasswordHash) {
		return domainerrors.ErrInvalidOldPassword
	}

	hash, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	if _, err := srv.userRepo.Update(ctx, userID, entity.UserPatch{PasswordHash: &hash}); err != nil {
		return translate(err, repository.ErrUserNotFound, domainerrors.ErrUserNotFound, "failed to update password")
	}

	srv.log(ctx).Info("Password changed", slog.Any("userID", userID))

	return nil
}

func (srv *userService) CurrentUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, translate(err, repository.ErrUserNotFound, domainerrors.ErrUserNotFound, "failed to find user")
	}

	return user, nil
}

func (srv *userService) UpdateFullname(ctx context.Context, userID uuid.UUID, fullname string) (*entity.User, error) {
	if err := requireFields(field{"fullname", fullname}); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(fullname)
	user, err := srv.userRepo.Update(ctx, userID, entity.UserPatch{Fullname: &name})
	if err != nil {
		return nil, translate(err, repository.ErrUserNotFound, domainerrors.ErrUserNotFound, "failed to update fullname")
	}

	return user, nil
}

func (srv *userService) UpdateAvatar(ctx context.Context, userID uuid.UUID, localPath string) (*entity.User, error) {
	if localPath == "" {
		return nil, domainerrors.ErrMediaFileMissing.WithDetails("avatar is required")
	}

	return srv.replaceImage(ctx, userID, localPath, "avatar",
		func(u *entity.User) *entity.MediaAsset { return &u.Avatar },
		func(asset *entity.MediaAsset) entity.UserPatch { return entity.UserPatch{Avatar: asset} },
	)
}

func (srv *userService) UpdateCoverImage(ctx context.Context, userID uuid.UUID, localPath string) (*entity.User, error) {
	if localPath == "" {
		return nil, domainerrors.ErrMediaFileMissing.WithDetails("cover image is required")
	}

	return srv.replaceImage(ctx, userID, localPath, "cover image",
		func(u *entity.User) *entity.MediaAsset { return u.CoverImage },
		func(asset *entity.MediaAsset) entity.UserPatch { return entity.UserPatch{CoverImage: asset} },
	)
}

// replaceImage uploads first, persists the new descriptor, then releases the old asset.
func (srv *userService) replaceImage(
	ctx context.Context,
	userID uuid.UUID,
	localPath string,
	label string,
	current func(*entity.User) *entity.MediaAsset,
	patch func(*entity.MediaAsset) entity.UserPatch,
) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, translate(err, repository.ErrUserNotFound, domainerrors.ErrUserNotFound, "failed to find user")
	}

	var previous *entity.MediaAsset
	if old := current(user); old != nil {
		copied := *old
		previous = &copied
	}

	uploaded, err := srv.media.Upload(ctx, localPath, entity.MediaKindImage)
	if err != nil {
		return nil, uploadError(err, "failed to upload "+label)
	}

	updated, err := srv.userRepo.Update(ctx, userID, patch(&uploaded.MediaAsset))
	if err != nil {
		srv.assets.release(ctx, &uploaded.MediaAsset, entity.MediaKindImage, label+" update aborted")

		return nil, translate(err, repository.ErrUserNotFound, domainerrors.ErrUserNotFound, "failed to update "+label)
	}

	srv.assets.release(ctx, previous, entity.MediaKindImage, label+" replaced")

	return updated, nil
}
