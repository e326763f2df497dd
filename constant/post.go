package constant

// PostStatus is the lifecycle state of a post. Stored as varchar.
type PostStatus string

const (
	PostStatusActive    PostStatus = "active"
	PostStatusInactive  PostStatus = "inactive"
	PostStatusExpired   PostStatus = "expired"
	PostStatusCanceled  PostStatus = "canceled"
	PostStatusCompleted PostStatus = "completed"
	PostStatusArchived  PostStatus = "archived"
)

var PostStatuses = []PostStatus{
	PostStatusActive,
	PostStatusInactive,
	PostStatusExpired,
	PostStatusCanceled,
	PostStatusCompleted,
	PostStatusArchived,
}

func (s PostStatus) Valid() bool {
	for _, v := range PostStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further status change is allowed.
func (s PostStatus) IsTerminal() bool {
	switch s {
	case PostStatusExpired, PostStatusCanceled, PostStatusCompleted, PostStatusArchived:
		return true
	}
	return false
}

type FulfilledBy string

const (
	FulfilledByPending  FulfilledBy = "pending"
	FulfilledByH2H      FulfilledBy = "h2h"
	FulfilledByOutsider FulfilledBy = "outsider"
)

type PostHelperStatus string

const (
	PostHelperStatusPending   PostHelperStatus = "pending"
	PostHelperStatusAccepted  PostHelperStatus = "accepted"
	PostHelperStatusDeclined  PostHelperStatus = "declined"
	PostHelperStatusFulfilled PostHelperStatus = "fulfilled"
)

// PostRelation selects which relations are eager loaded with a post.
type PostRelation uint8

const (
	RelationImages PostRelation = 1 << iota
	RelationCategories
	RelationTags
	RelationAuthor
	RelationViewerReport
	RelationHelpers

	RelationFeed = RelationImages | RelationCategories | RelationTags | RelationAuthor | RelationViewerReport
)

func (r PostRelation) Has(rel PostRelation) bool {
	return r&rel != 0
}
