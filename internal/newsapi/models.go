// Package newsapi is a minimal client for the NewsAPI v2 REST service.
// It covers the two endpoints this server exposes as tools: /everything
// (free-text article search) and /top-headlines.
package newsapi

import "time"

// Source identifies where an article was published. NewsAPI returns both
// fields as null for unregistered sources, so they are pointers.
type Source struct {
	ID   *string `json:"id"`
	Name *string `json:"name"`
}

// Article is a single news article as returned by the upstream API.
// Every field except Source may be omitted or null upstream; pointer
// fields keep that distinction intact when the response is re-serialized.
type Article struct {
	Source      Source     `json:"source"`
	Author      *string    `json:"author"`
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	URL         *string    `json:"url"`
	URLToImage  *string    `json:"urlToImage"`
	PublishedAt *time.Time `json:"publishedAt"`
	Content     *string    `json:"content"`
}

// Response is the envelope both endpoints return. Status is "ok" on
// success; on failure it is "error" and Message carries the reason.
// Article order is the upstream's relevance/time order and is preserved.
type Response struct {
	Status       string    `json:"status"`
	TotalResults int       `json:"totalResults"`
	Articles     []Article `json:"articles"`
	Message      string    `json:"message,omitempty"`
}

// ErrorResponse builds the error-shaped Response returned to callers in
// place of a thrown error: well-formed, zero results, message set.
func ErrorResponse(message string) *Response {
	return &Response{
		Status:       "error",
		TotalResults: 0,
		Articles:     []Article{},
		Message:      message,
	}
}
