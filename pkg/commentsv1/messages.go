package commentsv1

// Comment — комментарий в форме ответа comment API.
// Timestamp — unix-секунды; ParentID пуст у корневых комментариев;
// ChannelID/ChannelName пусты у анонимных.
type Comment struct {
	CommentID   string `json:"comment_id"`
	ParentID    string `json:"parent_id,omitempty"`
	ClaimID     string `json:"claim_id"`
	ChannelID   string `json:"channel_id,omitempty"`
	ChannelName string `json:"channel_name,omitempty"`
	ChannelURL  string `json:"channel_url,omitempty"`
	Comment     string `json:"comment"`
	Timestamp   int64  `json:"timestamp"`
	IsHidden    bool   `json:"is_hidden"`
	Replies     int32  `json:"replies"`
}

type CommentListRequest struct {
	ClaimID        string `json:"claim_id"`
	Page           int32  `json:"page"`
	PageSize       int32  `json:"page_size"`
	IncludeReplies bool   `json:"include_replies"`
	SkipValidation bool   `json:"skip_validation"`
}

type CommentListResponse struct {
	Items      []Comment `json:"items"`
	Page       int32     `json:"page"`
	PageSize   int32     `json:"page_size"`
	TotalPages int32     `json:"total_pages"`
	TotalItems int32     `json:"total_items"`
}

// ReactionCounts — счётчики по виду реакции ("like" -> 3).
type ReactionCounts map[string]int

type ReactListRequest struct {
	// CommentIDs — идентификаторы через запятую.
	CommentIDs  string `json:"comment_ids"`
	ChannelName string `json:"channel_name,omitempty"`
	ChannelID   string `json:"channel_id,omitempty"`
}

type ReactListResponse struct {
	MyReactions     map[string]ReactionCounts `json:"my_reactions"`
	OthersReactions map[string]ReactionCounts `json:"others_reactions"`
}

type ReactRequest struct {
	CommentIDs  string `json:"comment_ids"`
	ChannelName string `json:"channel_name"`
	ChannelID   string `json:"channel_id"`
	ReactType   string `json:"react_type"`
	ClearTypes  string `json:"clear_types,omitempty"`
	Remove      bool   `json:"remove,omitempty"`
}

// ReactResponse — пустое подтверждение.
type ReactResponse struct{}

type CommentCreateRequest struct {
	Comment   string `json:"comment"`
	ClaimID   string `json:"claim_id"`
	ChannelID string `json:"channel_id"`
	ParentID  string `json:"parent_id,omitempty"`
}

// CommentUpdateRequest — ответом служит *Comment; nil (JSON null) означает,
// что канал ещё не готов подписывать изменения.
type CommentUpdateRequest struct {
	CommentID string `json:"comment_id"`
	Comment   string `json:"comment"`
}

type CommentHideRequest struct {
	CommentIDs []string `json:"comment_ids"`
}

type HideStatus struct {
	Hidden bool `json:"hidden"`
}

// CommentHideResponse — статус по каждому переданному comment_id.
type CommentHideResponse map[string]HideStatus

type CommentAbandonRequest struct {
	CommentID string `json:"comment_id"`
}

type CommentAbandonResponse struct {
	Abandoned bool `json:"abandoned"`
}

// Value types claim'ов.
const (
	ValueTypeStream  = "stream"
	ValueTypeChannel = "channel"
)

// ClaimMeta — метаданные claim'а. Пустая структура означает «ещё не получены».
type ClaimMeta struct {
	Title        string `json:"title,omitempty"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
	Description  string `json:"description,omitempty"`
}

// Claim — запись контента или канала.
type Claim struct {
	ClaimID      string    `json:"claim_id"`
	Name         string    `json:"name"`
	ValueType    string    `json:"value_type"`
	PermanentURL string    `json:"permanent_url"`
	Meta         ClaimMeta `json:"meta"`
	Timestamp    int64     `json:"timestamp"`
}

type ResolveRequest struct {
	URLs []string `json:"urls"`
}

// ResolveResponse — найденные claim'ы по исходному url; неразрешённые url отсутствуют.
type ResolveResponse map[string]Claim

type ChannelListRequest struct {
	Page     int32 `json:"page"`
	PageSize int32 `json:"page_size"`
}

type ChannelListResponse struct {
	Items []Claim `json:"items"`
}

type ChannelCreateRequest struct {
	Name  string `json:"name"`
	Title string `json:"title,omitempty"`
}
