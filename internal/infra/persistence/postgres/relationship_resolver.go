package postgres

import (
	"context"
	"strings"
	"time"

	"mytube/internal/domain/entity"
	"mytube/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// videoOwnerColumns selects a video joined as v with its owner joined as u.
const videoOwnerColumns = `v.id, v.owner_id, v.video_url, v.video_storage_id, v.thumbnail_url, v.thumbnail_storage_id,
	v.title, v.description, v.duration, v.views, v.is_published, v.created_at, v.updated_at,
	u.username AS owner_username, u.fullname AS owner_fullname,
	u.avatar_url AS owner_avatar_url, u.avatar_storage_id AS owner_avatar_storage_id,
	u.cover_image_url AS owner_cover_image_url, u.cover_image_storage_id AS owner_cover_image_storage_id`

const channelSummaryColumns = `u.id, u.username, u.fullname, u.email, u.avatar_url, u.avatar_storage_id,
	u.cover_image_url, u.cover_image_storage_id, s.created_at AS subscribed_at`

var videoSortColumns = map[entity.VideoSortField]string{
	entity.VideoSortViews:     "views",
	entity.VideoSortCreatedAt: "created_at",
	entity.VideoSortDuration:  "duration",
	entity.VideoSortTitle:     "title",
}

type videoOwnerRow struct {
	ID                       uuid.UUID
	OwnerID                  uuid.UUID
	VideoURL                 string
	VideoStorageID           string
	ThumbnailURL             string
	ThumbnailStorageID       string
	Title                    string
	Description              string
	Duration                 float64
	Views                    int64
	IsPublished              bool
	CreatedAt                time.Time
	UpdatedAt                time.Time
	OwnerUsername            string
	OwnerFullname            string
	OwnerAvatarURL           string
	OwnerAvatarStorageID     string
	OwnerCoverImageURL       *string
	OwnerCoverImageStorageID *string
}

func (r *videoOwnerRow) toDomain() *entity.VideoWithOwner {
	return &entity.VideoWithOwner{
		Video: entity.Video{
			ID:          r.ID,
			VideoFile:   entity.MediaAsset{URL: r.VideoURL, StorageID: r.VideoStorageID},
			Thumbnail:   entity.MediaAsset{URL: r.ThumbnailURL, StorageID: r.ThumbnailStorageID},
			OwnerID:     r.OwnerID,
			Title:       r.Title,
			Description: r.Description,
			Duration:    r.Duration,
			Views:       r.Views,
			IsPublished: r.IsPublished,
			CreatedAt:   r.CreatedAt,
			UpdatedAt:   r.UpdatedAt,
		},
		Owner: entity.OwnerSummary{
			ID:         r.OwnerID,
			Username:   r.OwnerUsername,
			Fullname:   r.OwnerFullname,
			Avatar:     entity.MediaAsset{URL: r.OwnerAvatarURL, StorageID: r.OwnerAvatarStorageID},
			CoverImage: toOptionalAsset(r.OwnerCoverImageURL, r.OwnerCoverImageStorageID),
		},
	}
}

type videoDetailRow struct {
	Video videoOwnerRow `gorm:"embedded"`
	Likes int64
}

type likedVideoRow struct {
	Video   videoOwnerRow `gorm:"embedded"`
	LikeID  uuid.UUID
	LikedAt time.Time
}

type channelSummaryRow struct {
	ID                  uuid.UUID
	Username            string
	Fullname            string
	Email               string
	AvatarURL           string
	AvatarStorageID     string
	CoverImageURL       *string
	CoverImageStorageID *string
	SubscribedAt        time.Time
}

type commentOwnerRow struct {
	ID                   uuid.UUID
	Content              string
	VideoID              uuid.UUID
	OwnerID              uuid.UUID
	CreatedAt            time.Time
	UpdatedAt            time.Time
	OwnerFullname        string
	OwnerAvatarURL       string
	OwnerAvatarStorageID string
}

type tweetOwnerRow struct {
	ID                       uuid.UUID
	Content                  string
	OwnerID                  uuid.UUID
	CreatedAt                time.Time
	UpdatedAt                time.Time
	OwnerUsername            string
	OwnerFullname            string
	OwnerAvatarURL           string
	OwnerAvatarStorageID     string
	OwnerCoverImageURL       *string
	OwnerCoverImageStorageID *string
}

type playlistVideoIDRow struct {
	PlaylistID uuid.UUID
	VideoID    uuid.UUID
}

// relationshipResolver implements repository.RelationshipResolver with SQL joins.
type relationshipResolver struct {
	db *gorm.DB
}

// NewRelationshipResolver is the constructor for relationshipResolver.
func NewRelationshipResolver(db *gorm.DB) repository.RelationshipResolver {
	return &relationshipResolver{db: db}
}

func (r *relationshipResolver) videosWithOwner(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("videos AS v").
		Select(videoOwnerColumns).
		Joins("JOIN users AS u ON u.id = v.owner_id")
}

// VideoFeed runs the search. Unpublished videos only show up for their owner.
func (r *relationshipResolver) VideoFeed(ctx context.Context, query entity.VideoFeedQuery) ([]*entity.VideoWithOwner, error) {
	pattern := "%" + escapeLike(strings.TrimSpace(query.Query)) + "%"

	tx := r.videosWithOwner(ctx).
		Where("(v.title ILIKE ? OR v.description ILIKE ?)", pattern, pattern)

	if query.ViewerID != nil {
		tx = tx.Where("(v.is_published OR v.owner_id = ?)", *query.ViewerID)
	} else {
		tx = tx.Where("v.is_published")
	}
	if query.OwnerID != nil {
		tx = tx.Where("v.owner_id = ?", *query.OwnerID)
	}

	column, ok := videoSortColumns[query.SortBy]
	if !ok {
		column = videoSortColumns[entity.VideoSortViews]
	}

	var rows []videoOwnerRow
	if err := tx.
		Order(clause.OrderByColumn{Column: clause.Column{Table: "v", Name: column}, Desc: query.SortDesc}).
		Order("v.id").
		Offset(query.Page.Offset()).
		Limit(query.Page.Limit).
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to query video feed")
	}

	return toVideosWithOwner(rows), nil
}

func (r *relationshipResolver) VideoDetail(ctx context.Context, videoID uuid.UUID) (*entity.VideoDetail, error) {
	var rows []videoDetailRow
	if err := r.db.WithContext(ctx).
		Table("videos AS v").
		Select(videoOwnerColumns+", (SELECT COUNT(*) FROM likes AS l WHERE l.video_id = v.id) AS likes").
		Joins("JOIN users AS u ON u.id = v.owner_id").
		Where("v.id = ?", videoID).
		Limit(1).
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to query video detail")
	}
	if len(rows) == 0 {
		return nil, repository.ErrVideoNotFound
	}

	return &entity.VideoDetail{
		VideoWithOwner: *rows[0].Video.toDomain(),
		Likes:          rows[0].Likes,
	}, nil
}

func (r *relationshipResolver) ChannelVideos(ctx context.Context, ownerID uuid.UUID, includeUnpublished bool) ([]*entity.VideoWithOwner, error) {
	tx := r.videosWithOwner(ctx).Where("v.owner_id = ?", ownerID)
	if !includeUnpublished {
		tx = tx.Where("v.is_published")
	}

	var rows []videoOwnerRow
	if err := tx.Order("v.created_at DESC").Order("v.id").Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to query channel videos")
	}

	return toVideosWithOwner(rows), nil
}

// WatchHistory keeps the order videos were first added.
func (r *relationshipResolver) WatchHistory(ctx context.Context, userID uuid.UUID) ([]*entity.VideoWithOwner, error) {
	var rows []videoOwnerRow
	if err := r.videosWithOwner(ctx).
		Joins("JOIN watch_history AS w ON w.video_id = v.id").
		Where("w.user_id = ?", userID).
		Where("(v.is_published OR v.owner_id = ?)", userID).
		Order("w.seq ASC").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to query watch history")
	}

	return toVideosWithOwner(rows), nil
}

func (r *relationshipResolver) ChannelSubscribers(ctx context.Context, channelID uuid.UUID) ([]*entity.ChannelSummary, error) {
	return r.channelSummaries(ctx, "s.subscriber_id", "s.channel_id", channelID)
}

func (r *relationshipResolver) SubscribedChannels(ctx context.Context, subscriberID uuid.UUID) ([]*entity.ChannelSummary, error) {
	return r.channelSummaries(ctx, "s.channel_id", "s.subscriber_id", subscriberID)
}

// channelSummaries joins subscriptions to the user on joinColumn, filtered by filterColumn.
func (r *relationshipResolver) channelSummaries(ctx context.Context, joinColumn, filterColumn string, id uuid.UUID) ([]*entity.ChannelSummary, error) {
	var rows []channelSummaryRow
	if err := r.db.WithContext(ctx).
		Table("subscriptions AS s").
		Select(channelSummaryColumns).
		Joins("JOIN users AS u ON u.id = "+joinColumn).
		Where(filterColumn+" = ?", id).
		Order("s.created_at DESC").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to query subscriptions")
	}

	summaries := make([]*entity.ChannelSummary, 0, len(rows))
	for i := range rows {
		row := &rows[i]
		summaries = append(summaries, &entity.ChannelSummary{
			ID:           row.ID,
			Username:     row.Username,
			Fullname:     row.Fullname,
			Email:        row.Email,
			Avatar:       entity.MediaAsset{URL: row.AvatarURL, StorageID: row.AvatarStorageID},
			CoverImage:   toOptionalAsset(row.CoverImageURL, row.CoverImageStorageID),
			SubscribedAt: row.SubscribedAt,
		})
	}

	return summaries, nil
}

func (r *relationshipResolver) LikedVideos(ctx context.Context, userID uuid.UUID) ([]*entity.LikedVideo, error) {
	var rows []likedVideoRow
	if err := r.db.WithContext(ctx).
		Table("likes AS l").
		Select("l.id AS like_id, l.created_at AS liked_at, "+videoOwnerColumns).
		Joins("JOIN videos AS v ON v.id = l.video_id").
		Joins("JOIN users AS u ON u.id = v.owner_id").
		Where("l.liked_by = ?", userID).
		Where("(v.is_published OR v.owner_id = ?)", userID).
		Order("l.created_at DESC").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to query liked videos")
	}

	liked := make([]*entity.LikedVideo, 0, len(rows))
	for i := range rows {
		liked = append(liked, &entity.LikedVideo{
			LikeID:  rows[i].LikeID,
			LikedAt: rows[i].LikedAt,
			Video:   *rows[i].Video.toDomain(),
		})
	}

	return liked, nil
}

func (r *relationshipResolver) VideoComments(ctx context.Context, videoID uuid.UUID, page entity.Page) ([]*entity.CommentWithOwner, error) {
	var rows []commentOwnerRow
	if err := r.db.WithContext(ctx).
		Table("comments AS c").
		Select(`c.id, c.content, c.video_id, c.owner_id, c.created_at, c.updated_at,
			u.fullname AS owner_fullname, u.avatar_url AS owner_avatar_url, u.avatar_storage_id AS owner_avatar_storage_id`).
		Joins("JOIN users AS u ON u.id = c.owner_id").
		Where("c.video_id = ?", videoID).
		Order("c.created_at DESC").
		Order("c.id").
		Offset(page.Offset()).
		Limit(page.Limit).
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to query video comments")
	}

	comments := make([]*entity.CommentWithOwner, 0, len(rows))
	for i := range rows {
		row := &rows[i]
		comments = append(comments, &entity.CommentWithOwner{
			Comment: entity.Comment{
				ID:        row.ID,
				Content:   row.Content,
				VideoID:   row.VideoID,
				OwnerID:   row.OwnerID,
				CreatedAt: row.CreatedAt,
				UpdatedAt: row.UpdatedAt,
			},
			Owner: entity.CommentOwner{
				ID:       row.OwnerID,
				Fullname: row.OwnerFullname,
				Avatar:   entity.MediaAsset{URL: row.OwnerAvatarURL, StorageID: row.OwnerAvatarStorageID},
			},
		})
	}

	return comments, nil
}

func (r *relationshipResolver) UserTweets(ctx context.Context, ownerID uuid.UUID) ([]*entity.TweetWithOwner, error) {
	var rows []tweetOwnerRow
	if err := r.db.WithContext(ctx).
		Table("tweets AS t").
		Select(`t.id, t.content, t.owner_id, t.created_at, t.updated_at,
			u.username AS owner_username, u.fullname AS owner_fullname,
			u.avatar_url AS owner_avatar_url, u.avatar_storage_id AS owner_avatar_storage_id,
			u.cover_image_url AS owner_cover_image_url, u.cover_image_storage_id AS owner_cover_image_storage_id`).
		Joins("JOIN users AS u ON u.id = t.owner_id").
		Where("t.owner_id = ?", ownerID).
		Order("t.created_at DESC").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to query user tweets")
	}

	tweets := make([]*entity.TweetWithOwner, 0, len(rows))
	for i := range rows {
		row := &rows[i]
		tweets = append(tweets, &entity.TweetWithOwner{
			Tweet: entity.Tweet{
				ID:        row.ID,
				Content:   row.Content,
				OwnerID:   row.OwnerID,
				CreatedAt: row.CreatedAt,
				UpdatedAt: row.UpdatedAt,
			},
			Owner: entity.OwnerSummary{
				ID:         row.OwnerID,
				Username:   row.OwnerUsername,
				Fullname:   row.OwnerFullname,
				Avatar:     entity.MediaAsset{URL: row.OwnerAvatarURL, StorageID: row.OwnerAvatarStorageID},
				CoverImage: toOptionalAsset(row.OwnerCoverImageURL, row.OwnerCoverImageStorageID),
			},
		})
	}

	return tweets, nil
}

// UserPlaylists loads the playlists and then their members in one extra query.
func (r *relationshipResolver) UserPlaylists(ctx context.Context, ownerID uuid.UUID) ([]*entity.Playlist, error) {
	var playlistModels []*playlistRow
	if err := r.db.WithContext(ctx).
		Table("playlists").
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Scan(&playlistModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to query user playlists")
	}

	playlists := make([]*entity.Playlist, 0, len(playlistModels))
	if len(playlistModels) == 0 {
		return playlists, nil
	}

	ids := make([]uuid.UUID, 0, len(playlistModels))
	for _, p := range playlistModels {
		ids = append(ids, p.ID)
	}

	var members []playlistVideoIDRow
	if err := r.db.WithContext(ctx).
		Table("playlist_videos").
		Select("playlist_id, video_id").
		Where("playlist_id IN ?", ids).
		Order("seq ASC").
		Scan(&members).Error; err != nil {
		return nil, errors.Wrap(err, "failed to query playlist members")
	}

	byPlaylist := make(map[uuid.UUID][]uuid.UUID, len(ids))
	for _, m := range members {
		byPlaylist[m.PlaylistID] = append(byPlaylist[m.PlaylistID], m.VideoID)
	}

	for _, p := range playlistModels {
		videoIDs := byPlaylist[p.ID]
		if videoIDs == nil {
			videoIDs = []uuid.UUID{}
		}
		playlists = append(playlists, &entity.Playlist{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			OwnerID:     p.OwnerID,
			VideoIDs:    videoIDs,
			CoverImage:  toOptionalAsset(p.CoverImageURL, p.CoverImageStorageID),
			CreatedAt:   p.CreatedAt,
			UpdatedAt:   p.UpdatedAt,
		})
	}

	return playlists, nil
}

type playlistRow struct {
	ID                  uuid.UUID
	Name                string
	Description         string
	OwnerID             uuid.UUID
	CoverImageURL       *string
	CoverImageStorageID *string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// PlaylistVideos lists members in playlist order, hiding unpublished videos the viewer does not own.
func (r *relationshipResolver) PlaylistVideos(ctx context.Context, playlistID uuid.UUID, viewerID *uuid.UUID) ([]*entity.VideoWithOwner, error) {
	query := r.videosWithOwner(ctx).
		Joins("JOIN playlist_videos AS pv ON pv.video_id = v.id").
		Where("pv.playlist_id = ?", playlistID)
	if viewerID != nil {
		query = query.Where("(v.is_published OR v.owner_id = ?)", *viewerID)
	} else {
		query = query.Where("v.is_published")
	}

	var rows []videoOwnerRow
	if err := query.
		Order("pv.seq ASC").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to query playlist videos")
	}

	return toVideosWithOwner(rows), nil
}

func (r *relationshipResolver) OwnerSummary(ctx context.Context, userID uuid.UUID) (*entity.OwnerSummary, error) {
	user, err := NewUserRepository(r.db).FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &entity.OwnerSummary{
		ID:         user.ID,
		Username:   user.Username,
		Fullname:   user.Fullname,
		Avatar:     user.Avatar,
		CoverImage: user.CoverImage,
	}, nil
}

func (r *relationshipResolver) CountChannelVideos(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	return r.scalar(ctx, "count channel videos",
		`SELECT COUNT(*) FROM videos WHERE owner_id = ?`, ownerID)
}

func (r *relationshipResolver) SumChannelViews(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	return r.scalar(ctx, "sum channel views",
		`SELECT COALESCE(SUM(views), 0)::bigint FROM videos WHERE owner_id = ?`, ownerID)
}

func (r *relationshipResolver) CountChannelVideoLikes(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	return r.scalar(ctx, "count channel likes",
		`SELECT COUNT(*) FROM likes AS l JOIN videos AS v ON v.id = l.video_id WHERE v.owner_id = ?`, ownerID)
}

func (r *relationshipResolver) CountSubscribers(ctx context.Context, channelID uuid.UUID) (int64, error) {
	return r.scalar(ctx, "count subscribers",
		`SELECT COUNT(*) FROM subscriptions WHERE channel_id = ?`, channelID)
}

func (r *relationshipResolver) CountSubscriptions(ctx context.Context, subscriberID uuid.UUID) (int64, error) {
	return r.scalar(ctx, "count subscriptions",
		`SELECT COUNT(*) FROM subscriptions WHERE subscriber_id = ?`, subscriberID)
}

func (r *relationshipResolver) IsSubscribed(ctx context.Context, subscriberID, channelID uuid.UUID) (bool, error) {
	var exists bool
	if err := r.db.WithContext(ctx).Raw(
		`SELECT EXISTS (SELECT 1 FROM subscriptions WHERE subscriber_id = ? AND channel_id = ?)`,
		subscriberID, channelID,
	).Scan(&exists).Error; err != nil {
		return false, errors.Wrap(err, "failed to check subscription")
	}

	return exists, nil
}

func (r *relationshipResolver) scalar(ctx context.Context, what, sql string, args ...any) (int64, error) {
	var value int64
	if err := r.db.WithContext(ctx).Raw(sql, args...).Scan(&value).Error; err != nil {
		return 0, errors.Wrap(err, "failed to "+what)
	}

	return value, nil
}

func toVideosWithOwner(rows []videoOwnerRow) []*entity.VideoWithOwner {
	videos := make([]*entity.VideoWithOwner, 0, len(rows))
	for i := range rows {
		videos = append(videos, rows[i].toDomain())
	}

	return videos
}

// escapeLike neutralizes LIKE wildcards in user input. Backslash is the default escape in PostgreSQL.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
