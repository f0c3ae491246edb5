package models

// Platform is a publishing destination tag for a content item.
type Platform string

const (
	PlatformTechTalks  Platform = "BODHI_TECH_TALKS"
	PlatformBodhiLearn Platform = "BODHI_LEARN"
	PlatformInstagram  Platform = "INSTAGRAM"
	PlatformShorts     Platform = "SHORTS"
)

type ContentType string

const (
	ContentLongVideo ContentType = "LONG_VIDEO"
	ContentShort     ContentType = "SHORT"
	ContentReel      ContentType = "REEL"
)

// ContentStatus is the seven-stage production pipeline.
type ContentStatus string

const (
	ContentIdea           ContentStatus = "IDEA"
	ContentScripted       ContentStatus = "SCRIPTED"
	ContentRecorded       ContentStatus = "RECORDED"
	ContentEditing        ContentStatus = "EDITING"
	ContentThumbnailReady ContentStatus = "THUMBNAIL_READY"
	ContentScheduled      ContentStatus = "SCHEDULED"
	ContentPosted         ContentStatus = "POSTED"
)

type Content struct {
	ID          string        `json:"id"`
	UserID      string        `json:"user_id"`
	Title       string        `json:"title"`
	Platforms   []Platform    `json:"platforms"`
	Type        ContentType   `json:"type"`
	Status      ContentStatus `json:"status"`
	ShootDate   string        `json:"shoot_date,omitempty"`   // YYYY-MM-DD
	PublishDate string        `json:"publish_date,omitempty"` // YYYY-MM-DD
	VideoLink   string        `json:"video_link,omitempty"`
	ScriptLink  string        `json:"script_link,omitempty"`
	Owner       Role          `json:"owner"`
	Remarks     string        `json:"remarks,omitempty"`
	CreatedAt   string        `json:"created_at"`
	UpdatedAt   string        `json:"updated_at"`
}
