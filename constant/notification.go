package constant

// EventKind identifies a moderation/activity event sent to the notifier.
type EventKind string

const (
	EventPostCreated  EventKind = "post.created"
	EventUserReported EventKind = "user.reported"
	EventPostReported EventKind = "post.reported"
	EventHelpOffered  EventKind = "post.help_offered"
)

// push event codes understood by the mobile clients
const (
	PushCodeGeneral  = "0"
	PushCodeViewPost = "1"
	PushCodeHelpList = "2"
)

const (
	PushEventViewPost = "view_post"
	PushEventHelpList = "help_list"
)
