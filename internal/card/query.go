package card

import (
	"fmt"
	"strings"
)

// sortColumns maps request-level sort fields to column references. The sort
// field is the only token composed directly into query text, so anything not
// in this map is rejected before composition.
var sortColumns = map[string]string{
	"name":        "name",
	"usd_price":   "usd_price",
	"rarity":      "rarity",
	"released_at": "released_at",
}

// SortFields returns the accepted sort field names.
func SortFields() []string {
	fields := make([]string, 0, len(sortColumns))
	for f := range sortColumns {
		fields = append(fields, f)
	}
	return fields
}

// Validate checks sort, order and pagination constraints. Filter values need
// no validation: they are always bound as parameters, never composed into
// query text.
func (q Query) Validate() error {
	if q.Sort != "" {
		if _, ok := sortColumns[q.Sort]; !ok {
			return fmt.Errorf("%w: unknown sort field %q", ErrInvalidQuery, q.Sort)
		}
	}
	switch strings.ToLower(q.Order) {
	case "", "asc", "desc":
	default:
		return fmt.Errorf("%w: order must be asc or desc, got %q", ErrInvalidQuery, q.Order)
	}
	if q.Limit < MinLimit || q.Limit > MaxLimit {
		return fmt.Errorf("%w: limit must be between %d and %d, got %d", ErrInvalidQuery, MinLimit, MaxLimit, q.Limit)
	}
	if q.Offset < 0 {
		return fmt.Errorf("%w: offset must not be negative, got %d", ErrInvalidQuery, q.Offset)
	}
	return nil
}

const cardColumns = `id, name, released_at, set_name, collector_number, rarity, type_line, usd_price, usd_foil_price, image_url, scryfall_uri`

// buildListQuery composes the parameterized SELECT for a query. Filters are
// AND-combined; filter and pagination values are bound, never interpolated.
// The id tiebreak is always appended so pagination stays deterministic.
func buildListQuery(q Query) (string, []any, error) {
	if err := q.Validate(); err != nil {
		return "", nil, err
	}

	clauses := []string{"1=1"}
	args := []any{}
	argn := 1

	if q.Rarity != "" {
		clauses = append(clauses, fmt.Sprintf("rarity = $%d", argn))
		args = append(args, q.Rarity)
		argn++
	}

	if q.Search != "" {
		clauses = append(clauses, fmt.Sprintf("name ILIKE $%d", argn))
		args = append(args, "%"+q.Search+"%")
		argn++
	}

	orderBy := "name ASC, id ASC"
	if q.Sort != "" {
		dir := "ASC"
		if strings.EqualFold(q.Order, "desc") {
			dir = "DESC"
		}
		orderBy = fmt.Sprintf("%s %s, id ASC", sortColumns[q.Sort], dir)
	}

	sql := fmt.Sprintf(`
		SELECT %s
		FROM cards
		WHERE %s
		ORDER BY %s
		LIMIT $%d OFFSET $%d`,
		cardColumns, strings.Join(clauses, " AND "), orderBy, argn, argn+1)

	args = append(args, q.Limit, q.Offset)
	return sql, args, nil
}
