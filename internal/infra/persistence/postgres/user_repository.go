package postgres

import (
	"context"
	"strings"

	"mytube/internal/domain/entity"
	domainerrors "mytube/internal/domain/errors"
	"mytube/internal/domain/repository"
	"mytube/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// Create persists a new user.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateUser
		}
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid user data")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return repo.findOne(ctx, repo.db.WithContext(ctx).Where("id = ?", id))
}

// FindByIDForUpdate locks the row until the surrounding transaction ends.
func (repo *userRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return repo.findOne(ctx, repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Where("id = ?", id))
}

func (repo *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	return repo.findOne(ctx, repo.db.WithContext(ctx).Where("username = ?", normalizeUsername(username)))
}

func (repo *userRepository) FindByUsernameOrEmail(ctx context.Context, username, email string) (*entity.User, error) {
	username = normalizeUsername(username)
	email = strings.TrimSpace(email)

	query := repo.db.WithContext(ctx)
	switch {
	case username != "" && email != "":
		query = query.Where("username = ? OR email = ?", username, email)
	case username != "":
		query = query.Where("username = ?", username)
	case email != "":
		query = query.Where("email = ?", email)
	default:
		return nil, repository.ErrUserNotFound
	}

	return repo.findOne(ctx, query)
}

// Update applies the non-nil fields of the patch.
func (repo *userRepository) Update(ctx context.Context, id uuid.UUID, patch entity.UserPatch) (*entity.User, error) {
	updates := map[string]any{}
	if patch.Fullname != nil {
		updates["fullname"] = *patch.Fullname
	}
	if patch.PasswordHash != nil {
		updates["password_hash"] = *patch.PasswordHash
	}
	if patch.Avatar != nil {
		updates["avatar_url"] = patch.Avatar.URL
		updates["avatar_storage_id"] = patch.Avatar.StorageID
	}
	if patch.CoverImage != nil {
		updates["cover_image_url"] = patch.CoverImage.URL
		updates["cover_image_storage_id"] = patch.CoverImage.StorageID
	}

	if len(updates) == 0 {
		return repo.FindByID(ctx, id)
	}

	var userM model.UserModel
	result := repo.db.WithContext(ctx).
		Model(&userM).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to update user")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrUserNotFound
	}

	return toUserDomain(&userM), nil
}

func (repo *userRepository) SetRefreshToken(ctx context.Context, id uuid.UUID, token *string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Update("refresh_token", token)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update refresh token")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

func (repo *userRepository) findOne(_ context.Context, query *gorm.DB) (*entity.User, error) {
	var userM model.UserModel
	if err := query.First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return toUserDomain(&userM), nil
}

func normalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:           data.ID,
		Username:     data.Username,
		Email:        data.Email,
		Fullname:     data.Fullname,
		PasswordHash: data.PasswordHash,
		Avatar:       entity.MediaAsset{URL: data.AvatarURL, StorageID: data.AvatarStorageID},
		CoverImage:   toOptionalAsset(data.CoverImageURL, data.CoverImageStorageID),
		RefreshToken: data.RefreshToken,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	userM := &model.UserModel{
		ID:              data.ID,
		Username:        normalizeUsername(data.Username),
		Email:           strings.TrimSpace(data.Email),
		Fullname:        data.Fullname,
		PasswordHash:    data.PasswordHash,
		AvatarURL:       data.Avatar.URL,
		AvatarStorageID: data.Avatar.StorageID,
		RefreshToken:    data.RefreshToken,
	}
	userM.CoverImageURL, userM.CoverImageStorageID = fromOptionalAsset(data.CoverImage)

	return userM
}

func toOptionalAsset(url, storageID *string) *entity.MediaAsset {
	if url == nil || *url == "" {
		return nil
	}

	asset := &entity.MediaAsset{URL: *url}
	if storageID != nil {
		asset.StorageID = *storageID
	}

	return asset
}

func fromOptionalAsset(asset *entity.MediaAsset) (url, storageID *string) {
	if asset == nil || asset.IsZero() {
		return nil, nil
	}

	u, s := asset.URL, asset.StorageID

	return &u, &s
}
