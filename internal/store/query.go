package store

import (
	"fmt"
	"sort"
	"strings"
	"time"

	domain "github.com/donaldgifford/quicklist/pkg/types"
)

const (
	defaultLimit = 50
	maxLimit     = 500

	orderByCreated = "created_at"
	orderByTitle   = "title"
	orderBySKU     = "sku"
)

// validOrderBy maps allowed OrderBy values to their SQL column expressions.
var validOrderBy = map[string]string{
	orderByCreated: "created_at DESC",
	orderByTitle:   "title ASC",
	orderBySKU:     "sku ASC",
}

const defaultOrderBy = "created_at DESC"

const baseListingsSelect = `SELECT sku, offer_id, title, published, created_at
FROM listings`

const countListingsSelect = "SELECT COUNT(*) FROM listings"

// ListingQuery defines optional filters for the listing history.
type ListingQuery struct {
	Published *bool
	SKU       *string
	Title     *string // case-insensitive substring
	Since     *time.Time
	Limit     int // default 50
	Offset    int
	OrderBy   string // "created_at", "title", "sku"
}

// PageLimit returns the limit the query is run with.
func (q *ListingQuery) PageLimit() int {
	return q.limit()
}

func (q *ListingQuery) limit() int {
	switch {
	case q.Limit <= 0:
		return defaultLimit
	case q.Limit > maxLimit:
		return maxLimit
	default:
		return q.Limit
	}
}

// ToSQL builds the WHERE clause, ORDER BY, LIMIT, and OFFSET for a history
// query scoped to instance. It returns the data query, the count query and
// the positional parameters shared by both.
func (q *ListingQuery) ToSQL(instance string) (dataSQL, countSQL string, args []any) {
	conditions := []string{"instance = $1"}
	args = []any{instance}
	paramIdx := 2

	if q.Published != nil {
		conditions = append(conditions, fmt.Sprintf("published = $%d", paramIdx))
		args = append(args, *q.Published)
		paramIdx++
	}

	if q.SKU != nil {
		conditions = append(conditions, fmt.Sprintf("sku = $%d", paramIdx))
		args = append(args, *q.SKU)
		paramIdx++
	}

	if q.Title != nil {
		conditions = append(conditions, fmt.Sprintf("title ILIKE '%%' || $%d || '%%'", paramIdx))
		args = append(args, *q.Title)
		paramIdx++
	}

	if q.Since != nil {
		conditions = append(conditions, fmt.Sprintf("created_at >= $%d", paramIdx))
		args = append(args, *q.Since)
	}

	whereClause := " WHERE " + strings.Join(conditions, " AND ")

	orderClause := defaultOrderBy
	if col, ok := validOrderBy[q.OrderBy]; ok {
		orderClause = col
	}

	offset := max(q.Offset, 0)

	dataSQL = fmt.Sprintf(
		"%s%s ORDER BY %s LIMIT %d OFFSET %d",
		baseListingsSelect, whereClause, orderClause, q.limit(), offset,
	)

	countSQL = countListingsSelect + whereClause

	return dataSQL, countSQL, args
}

// Matches reports whether l passes the query filters.
func (q *ListingQuery) Matches(l *domain.LastListing) bool {
	if q.Published != nil && l.Published != *q.Published {
		return false
	}
	if q.SKU != nil && l.SKU != *q.SKU {
		return false
	}
	if q.Title != nil && !strings.Contains(strings.ToLower(l.Title), strings.ToLower(*q.Title)) {
		return false
	}
	if q.Since != nil && l.CreatedAt.Before(*q.Since) {
		return false
	}
	return true
}

// Apply filters, orders and pages an in-memory history the same way ToSQL
// does in Postgres. It returns the page and the total number of matches.
func (q *ListingQuery) Apply(all []domain.LastListing) ([]domain.LastListing, int) {
	matched := make([]domain.LastListing, 0, len(all))
	for i := range all {
		if q.Matches(&all[i]) {
			matched = append(matched, all[i])
		}
	}

	switch q.OrderBy {
	case orderByTitle:
		sort.SliceStable(matched, func(i, j int) bool { return matched[i].Title < matched[j].Title })
	case orderBySKU:
		sort.SliceStable(matched, func(i, j int) bool { return matched[i].SKU < matched[j].SKU })
	default:
		sort.SliceStable(matched, func(i, j int) bool {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		})
	}

	total := len(matched)
	offset := max(q.Offset, 0)
	if offset >= total {
		return []domain.LastListing{}, total
	}
	end := min(offset+q.limit(), total)

	return matched[offset:end], total
}
