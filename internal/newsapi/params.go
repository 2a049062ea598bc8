package newsapi

import (
	"net/url"
	"strconv"
	"strings"
	"time"
)

// maxPageSize is the upstream API's hard limit on results per page.
const maxPageSize = 100

const dateLayout = "2006-01-02"

// SortOptions lists the sort orders the /everything endpoint accepts.
var SortOptions = []string{"relevancy", "popularity", "publishedAt"}

// Categories lists the fixed category values the /top-headlines endpoint
// accepts.
var Categories = []string{
	"business", "entertainment", "general", "health",
	"science", "sports", "technology",
}

// ValidDate reports whether s is a real calendar date in YYYY-MM-DD form.
// The empty string stands for an absent optional date and is valid.
func ValidDate(s string) bool {
	if s == "" {
		return true
	}
	_, err := time.Parse(dateLayout, s)
	return err == nil
}

// ValidSortBy reports whether s is one of the allowed sort orders.
func ValidSortBy(s string) bool {
	return contains(SortOptions, s)
}

// ValidCategory reports whether s is one of the allowed headline categories.
func ValidCategory(s string) bool {
	return contains(Categories, s)
}

func contains(allowed []string, s string) bool {
	for _, v := range allowed {
		if v == s {
			return true
		}
	}
	return false
}

// SearchParams are the arguments for the /everything endpoint. Zero
// values mean "use the default"; optional fields left empty are omitted
// from the request entirely.
type SearchParams struct {
	Query    string // required
	From     string // optional, YYYY-MM-DD
	To       string // optional, YYYY-MM-DD
	Language string // default "en"
	SortBy   string // default "publishedAt"
	PageSize int    // default 10, max 100
	Page     int    // default 1
}

// Validate checks every field and returns a KindValidation error naming
// the first offending one. It does not mutate the receiver.
func (p SearchParams) Validate() error {
	if strings.TrimSpace(p.Query) == "" {
		return validationErr("query must not be empty")
	}
	if !ValidDate(p.From) {
		return validationErr("invalid from_date %q: use YYYY-MM-DD", p.From)
	}
	if !ValidDate(p.To) {
		return validationErr("invalid to_date %q: use YYYY-MM-DD", p.To)
	}
	if p.From != "" && p.To != "" && p.From > p.To {
		return validationErr("from_date %s is after to_date %s", p.From, p.To)
	}
	if p.SortBy != "" && !ValidSortBy(p.SortBy) {
		return validationErr("invalid sort_by %q: use one of %s", p.SortBy, strings.Join(SortOptions, ", "))
	}
	if p.PageSize < 0 {
		return validationErr("page_size must be positive, got %d", p.PageSize)
	}
	if p.Page < 0 {
		return validationErr("page must be positive, got %d", p.Page)
	}
	return nil
}

// Values builds the outbound query string. Defaults are applied here so a
// zero-valued struct produces a complete, valid request. Only whitelisted
// keys are ever emitted; absent optional fields are omitted, never sent
// as empty values.
func (p SearchParams) Values() url.Values {
	v := url.Values{}
	v.Set("q", p.Query)
	v.Set("language", defaultStr(p.Language, "en"))
	v.Set("sortBy", defaultStr(p.SortBy, "publishedAt"))
	v.Set("pageSize", strconv.Itoa(clampPageSize(p.PageSize)))
	v.Set("page", strconv.Itoa(defaultInt(p.Page, 1)))
	if p.From != "" {
		v.Set("from", p.From)
	}
	if p.To != "" {
		v.Set("to", p.To)
	}
	return v
}

// HeadlineParams are the arguments for the /top-headlines endpoint.
type HeadlineParams struct {
	Country  string // default "us"
	Category string // optional, one of Categories
	Query    string // optional
	PageSize int    // default 10, max 100
	Page     int    // default 1
}

// Validate checks every field and returns a KindValidation error naming
// the first offending one.
func (p HeadlineParams) Validate() error {
	if p.Category != "" && !ValidCategory(p.Category) {
		return validationErr("invalid category %q: use one of %s", p.Category, strings.Join(Categories, ", "))
	}
	if p.PageSize < 0 {
		return validationErr("page_size must be positive, got %d", p.PageSize)
	}
	if p.Page < 0 {
		return validationErr("page must be positive, got %d", p.Page)
	}
	return nil
}

// Values builds the outbound query string, with the same defaulting and
// omission rules as SearchParams.Values.
func (p HeadlineParams) Values() url.Values {
	v := url.Values{}
	v.Set("country", defaultStr(p.Country, "us"))
	v.Set("pageSize", strconv.Itoa(clampPageSize(p.PageSize)))
	v.Set("page", strconv.Itoa(defaultInt(p.Page, 1)))
	if p.Category != "" {
		v.Set("category", p.Category)
	}
	if p.Query != "" {
		v.Set("q", p.Query)
	}
	return v
}

func clampPageSize(n int) int {
	if n == 0 {
		return 10
	}
	if n > maxPageSize {
		return maxPageSize
	}
	return n
}

func defaultStr(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func defaultInt(n, def int) int {
	if n == 0 {
		return def
	}
	return n
}
