package postgres

import (
	"context"
	"fmt"
	"testing"

	"mytube/internal/domain/entity"
	"mytube/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_UniqueUsernameAndEmail(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewUserRepository(db)

	alice := seedUser(t, db, "Alice ")
	assert.Equal(t, "alice", alice.Username)

	dup := &entity.User{Username: "ALICE", Email: "other@example.com", Fullname: "x", PasswordHash: "h",
		Avatar: entity.MediaAsset{URL: "u", StorageID: "s"}}
	assert.ErrorIs(t, repo.Create(ctx, dup), repository.ErrDuplicateUser)

	dup = &entity.User{Username: "bob", Email: "alice@example.com", Fullname: "x", PasswordHash: "h",
		Avatar: entity.MediaAsset{URL: "u", StorageID: "s"}}
	assert.ErrorIs(t, repo.Create(ctx, dup), repository.ErrDuplicateUser)

	found, err := repo.FindByUsernameOrEmail(ctx, "", "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, found.ID)

	_, err = repo.FindByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_UpdateAndRefreshToken(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewUserRepository(db)
	alice := seedUser(t, db, "alice")

	name := "Alice L."
	cover := entity.MediaAsset{URL: "https://cdn/cover", StorageID: "covers/alice"}
	updated, err := repo.Update(ctx, alice.ID, entity.UserPatch{Fullname: &name, CoverImage: &cover})
	require.NoError(t, err)
	assert.Equal(t, name, updated.Fullname)
	require.NotNil(t, updated.CoverImage)
	assert.Equal(t, cover, *updated.CoverImage)

	token := "refresh-token"
	require.NoError(t, repo.SetRefreshToken(ctx, alice.ID, &token))
	found, err := repo.FindByID(ctx, alice.ID)
	require.NoError(t, err)
	require.NotNil(t, found.RefreshToken)
	assert.Equal(t, token, *found.RefreshToken)

	require.NoError(t, repo.SetRefreshToken(ctx, alice.ID, nil))
	found, err = repo.FindByID(ctx, alice.ID)
	require.NoError(t, err)
	assert.Nil(t, found.RefreshToken)

	_, err = repo.Update(ctx, uuid.New(), entity.UserPatch{Fullname: &name})
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestLikeRepository_UniquePerSubjectAndUser(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	video := seedVideo(t, db, alice.ID, "intro", 0, true)
	repo := NewLikeRepository(db)
	subject := entity.LikeSubject{Target: entity.LikeTargetVideo, ID: video.ID}

	require.NoError(t, repo.Create(ctx, entity.NewLike(subject, bob.ID)))
	assert.ErrorIs(t, repo.Create(ctx, entity.NewLike(subject, bob.ID)), repository.ErrDuplicateLike)

	like, err := repo.Find(ctx, subject, bob.ID)
	require.NoError(t, err)
	require.NoError(t, repo.Delete(ctx, like.ID))

	_, err = repo.Find(ctx, subject, bob.ID)
	assert.ErrorIs(t, err, repository.ErrLikeNotFound)
}

func TestRelationshipResolver_FeedPagination(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	alice := seedUser(t, db, "alice")
	for i := 1; i <= 25; i++ {
		seedVideo(t, db, alice.ID, fmt.Sprintf("Cooking %02d", i), int64(i), true)
	}
	resolver := NewRelationshipResolver(db)

	page2, err := resolver.VideoFeed(ctx, entity.VideoFeedQuery{
		Query:  "cooking",
		SortBy: entity.VideoSortViews,
		Page:   entity.Page{Number: 2, Limit: 10},
	})
	require.NoError(t, err)
	require.Len(t, page2, 10)
	for i, v := range page2 {
		assert.Equal(t, int64(11+i), v.Views)
		assert.Equal(t, "alice", v.Owner.Username)
	}

	beyond, err := resolver.VideoFeed(ctx, entity.VideoFeedQuery{
		Query: "cooking",
		Page:  entity.Page{Number: 4, Limit: 10},
	})
	require.NoError(t, err)
	assert.Empty(t, beyond)
}

func TestRelationshipResolver_FeedMatchesAndVisibility(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	seedVideo(t, db, alice.ID, "Go Concurrency", 5, true)
	seedVideo(t, db, alice.ID, "Draft go talk", 1, false)
	seedVideo(t, db, bob.ID, "Baking", 9, true)
	seedVideo(t, db, bob.ID, "100%_real", 2, true)
	resolver := NewRelationshipResolver(db)

	anonymous, err := resolver.VideoFeed(ctx, entity.VideoFeedQuery{Query: "GO", Page: entity.Page{Number: 1, Limit: 12}})
	require.NoError(t, err)
	require.Len(t, anonymous, 1)
	assert.Equal(t, "Go Concurrency", anonymous[0].Title)

	owner, err := resolver.VideoFeed(ctx, entity.VideoFeedQuery{Query: "go", ViewerID: &alice.ID, SortDesc: true, Page: entity.Page{Number: 1, Limit: 12}})
	require.NoError(t, err)
	require.Len(t, owner, 2)
	assert.Equal(t, "Go Concurrency", owner[0].Title)

	byDescription, err := resolver.VideoFeed(ctx, entity.VideoFeedQuery{Query: "about bak", OwnerID: &bob.ID, Page: entity.Page{Number: 1, Limit: 12}})
	require.NoError(t, err)
	require.Len(t, byDescription, 1)

	wildcard, err := resolver.VideoFeed(ctx, entity.VideoFeedQuery{Query: "%_", Page: entity.Page{Number: 1, Limit: 12}})
	require.NoError(t, err)
	require.Len(t, wildcard, 1)
	assert.Equal(t, "100%_real", wildcard[0].Title)
}

func TestRelationshipResolver_VideoDetailAndDeleteCascade(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	video := seedVideo(t, db, alice.ID, "intro", 3, true)
	resolver := NewRelationshipResolver(db)

	require.NoError(t, NewLikeRepository(db).Create(ctx, entity.NewLike(entity.LikeSubject{Target: entity.LikeTargetVideo, ID: video.ID}, bob.ID)))
	require.NoError(t, NewWatchHistoryRepository(db).Add(ctx, bob.ID, video.ID))
	comment := &entity.Comment{Content: "nice", VideoID: video.ID, OwnerID: bob.ID}
	require.NoError(t, NewCommentRepository(db).Create(ctx, comment))

	detail, err := resolver.VideoDetail(ctx, video.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), detail.Likes)
	assert.Equal(t, "alice", detail.Owner.Username)

	require.NoError(t, NewVideoRepository(db).Delete(ctx, video.ID))

	_, err = resolver.VideoDetail(ctx, video.ID)
	assert.ErrorIs(t, err, repository.ErrVideoNotFound)

	history, err := resolver.WatchHistory(ctx, bob.ID)
	require.NoError(t, err)
	assert.Empty(t, history)

	_, err = NewCommentRepository(db).FindByID(ctx, comment.ID)
	assert.ErrorIs(t, err, repository.ErrCommentNotFound)

	assert.ErrorIs(t, NewVideoRepository(db).Delete(ctx, video.ID), repository.ErrVideoNotFound)
}

func TestWatchHistory_IdempotentAndOrdered(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	alice := seedUser(t, db, "alice")
	first := seedVideo(t, db, alice.ID, "first", 0, true)
	second := seedVideo(t, db, alice.ID, "second", 0, true)
	repo := NewWatchHistoryRepository(db)
	resolver := NewRelationshipResolver(db)

	require.NoError(t, repo.Add(ctx, alice.ID, second.ID))
	require.NoError(t, repo.Add(ctx, alice.ID, first.ID))
	require.NoError(t, repo.Add(ctx, alice.ID, second.ID))

	history, err := resolver.WatchHistory(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, second.ID, history[0].ID)
	assert.Equal(t, first.ID, history[1].ID)

	require.NoError(t, repo.Remove(ctx, alice.ID, second.ID))
	require.NoError(t, repo.Remove(ctx, alice.ID, second.ID))

	history, err = resolver.WatchHistory(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, first.ID, history[0].ID)
}

func TestRelationshipResolver_ChannelCounts(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	channel := seedUser(t, db, "channel")
	subs := NewSubscriptionRepository(db)
	resolver := NewRelationshipResolver(db)

	var followers []*entity.User
	for i := 0; i < 3; i++ {
		u := seedUser(t, db, fmt.Sprintf("fan%d", i))
		followers = append(followers, u)
		require.NoError(t, subs.Create(ctx, &entity.Subscription{SubscriberID: u.ID, ChannelID: channel.ID}))
	}
	for i := 0; i < 2; i++ {
		require.NoError(t, subs.Create(ctx, &entity.Subscription{SubscriberID: channel.ID, ChannelID: followers[i].ID}))
	}
	assert.ErrorIs(t, subs.Create(ctx, &entity.Subscription{SubscriberID: followers[0].ID, ChannelID: channel.ID}), repository.ErrDuplicateSubscription)

	v1 := seedVideo(t, db, channel.ID, "one", 10, true)
	seedVideo(t, db, channel.ID, "two", 5, false)
	likes := NewLikeRepository(db)
	require.NoError(t, likes.Create(ctx, entity.NewLike(entity.LikeSubject{Target: entity.LikeTargetVideo, ID: v1.ID}, followers[0].ID)))
	require.NoError(t, likes.Create(ctx, entity.NewLike(entity.LikeSubject{Target: entity.LikeTargetVideo, ID: v1.ID}, followers[1].ID)))

	subscribers, err := resolver.CountSubscribers(ctx, channel.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), subscribers)

	subscriptions, err := resolver.CountSubscriptions(ctx, channel.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), subscriptions)

	videos, err := resolver.CountChannelVideos(ctx, channel.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), videos)

	views, err := resolver.SumChannelViews(ctx, channel.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(15), views)

	totalLikes, err := resolver.CountChannelVideoLikes(ctx, channel.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), totalLikes)

	yes, err := resolver.IsSubscribed(ctx, followers[2].ID, channel.ID)
	require.NoError(t, err)
	assert.True(t, yes)

	no, err := resolver.IsSubscribed(ctx, followers[2].ID, followers[0].ID)
	require.NoError(t, err)
	assert.False(t, no)

	list, err := resolver.ChannelSubscribers(ctx, channel.ID)
	require.NoError(t, err)
	assert.Len(t, list, 3)

	following, err := resolver.SubscribedChannels(ctx, channel.ID)
	require.NoError(t, err)
	assert.Len(t, following, 2)

	published, err := resolver.ChannelVideos(ctx, channel.ID, false)
	require.NoError(t, err)
	assert.Len(t, published, 1)
}

func TestPlaylistRepository_Membership(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	alice := seedUser(t, db, "alice")
	a := seedVideo(t, db, alice.ID, "a", 0, true)
	b := seedVideo(t, db, alice.ID, "b", 0, true)
	repo := NewPlaylistRepository(db)

	playlist := &entity.Playlist{Name: "mix", Description: "stuff", OwnerID: alice.ID}
	require.NoError(t, repo.Create(ctx, playlist))

	require.NoError(t, repo.AddVideo(ctx, playlist.ID, b.ID))
	require.NoError(t, repo.AddVideo(ctx, playlist.ID, a.ID))
	require.NoError(t, repo.AddVideo(ctx, playlist.ID, b.ID))

	found, err := repo.FindByID(ctx, playlist.ID)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{b.ID, a.ID}, found.VideoIDs)

	require.NoError(t, repo.RemoveVideo(ctx, playlist.ID, b.ID))
	require.NoError(t, repo.RemoveVideo(ctx, playlist.ID, b.ID))

	videos, err := NewRelationshipResolver(db).PlaylistVideos(ctx, playlist.ID, nil)
	require.NoError(t, err)
	require.Len(t, videos, 1)
	assert.Equal(t, a.ID, videos[0].ID)

	draft := seedVideo(t, db, alice.ID, "draft", 0, false)
	require.NoError(t, repo.AddVideo(ctx, playlist.ID, draft.ID))

	videos, err = NewRelationshipResolver(db).PlaylistVideos(ctx, playlist.ID, nil)
	require.NoError(t, err)
	require.Len(t, videos, 1)

	videos, err = NewRelationshipResolver(db).PlaylistVideos(ctx, playlist.ID, &alice.ID)
	require.NoError(t, err)
	require.Len(t, videos, 2)
	assert.Equal(t, draft.ID, videos[1].ID)

	require.NoError(t, repo.RemoveVideo(ctx, playlist.ID, draft.ID))

	lists, err := NewRelationshipResolver(db).UserPlaylists(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, lists, 1)
	assert.Equal(t, []uuid.UUID{a.ID}, lists[0].VideoIDs)

	name := "renamed"
	updated, err := repo.Update(ctx, playlist.ID, entity.PlaylistPatch{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, name, updated.Name)
	assert.Equal(t, "stuff", updated.Description)

	require.NoError(t, repo.Delete(ctx, playlist.ID))
	_, err = repo.FindByID(ctx, playlist.ID)
	assert.ErrorIs(t, err, repository.ErrPlaylistNotFound)
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	tm := NewTransactionManager(db)
	sentinel := fmt.Errorf("boom")

	err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		user := &entity.User{Username: "ghost", Email: "ghost@example.com", Fullname: "Ghost", PasswordHash: "h",
			Avatar: entity.MediaAsset{URL: "u", StorageID: "s"}}
		if err := f.NewUserRepository().Create(ctx, user); err != nil {
			return err
		}

		return sentinel
	})
	assert.ErrorIs(t, err, sentinel)

	_, err = NewUserRepository(db).FindByUsername(ctx, "ghost")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}
