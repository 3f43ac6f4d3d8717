package model

// Content is a notifiable object as returned by the content source.
type Content struct {
	Type        string `json:"type"`
	ID          int64  `json:"id"`
	AuthorID    int64  `json:"author_id"`
	Title       string `json:"title"`
	Body        string `json:"body"`
	URL         string `json:"url"`
	ImageURL    string `json:"image_url"`
	ParentType  string `json:"parent_type,omitempty"`
	ParentID    int64  `json:"parent_id,omitempty"`
	ParentTitle string `json:"parent_title,omitempty"`
}

// HasParent reports whether the content lives under another object.
func (c Content) HasParent() bool {
	return c.ParentType != "" && c.ParentID > 0
}

// Target scopes.
const (
	ScopeObject = "object"
	ScopeParent = "parent"
)

// Target is an (object_type, object_id) pair subscriptions are matched against.
type Target struct {
	ObjectType string `json:"object_type"`
	ObjectID   int64  `json:"object_id"`
	Scope      string `json:"scope"`
}

// Envelope is the message bundle handed to a transport for one delivery batch.
type Envelope struct {
	Title    string            `json:"title"`
	Subtitle string            `json:"subtitle,omitempty"`
	Body     string            `json:"body"`
	ImageURL string            `json:"image_url,omitempty"`
	URL      string            `json:"url,omitempty"`
	Badge    *int              `json:"badge,omitempty"`
	Data     map[string]string `json:"data,omitempty"`
}
